package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gradebook/domain"
)

type settingRepository struct {
	db *pgxpool.Pool
}

func NewSettingRepository(database *pgxpool.Pool) domain.SettingRepo {
	return &settingRepository{
		db: database,
	}
}

// GetActiveSemesterID reads the pointer fresh on every call; there is no
// cache to invalidate when the admin switches semesters.
func (sr *settingRepository) GetActiveSemesterID(ctx context.Context) (*int, error) {
	var value string
	err := sr.db.QueryRow(ctx, `SELECT value FROM settings WHERE key = $1;`, domain.SettingActiveSemester).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("could not read active semester: %v", err)
	}

	id, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("active semester setting is not a number: %v", err)
	}

	return &id, nil
}

func (sr *settingRepository) SetActiveSemester(ctx context.Context, semesterID int) error {
	query := `
		INSERT INTO settings (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW();
	`

	if _, err := sr.db.Exec(ctx, query, domain.SettingActiveSemester, strconv.Itoa(semesterID)); err != nil {
		return fmt.Errorf("could not set active semester: %v", err)
	}

	return nil
}

func (sr *settingRepository) GetAllSettings(ctx context.Context) (*[]domain.Setting, error) {
	rows, err := sr.db.Query(ctx, `SELECT key, value, updated_at FROM settings ORDER BY key;`)
	if err != nil {
		return nil, fmt.Errorf("could not get settings: %v", err)
	}
	defer rows.Close()

	var settings []domain.Setting
	for rows.Next() {
		var s domain.Setting
		if err := rows.Scan(&s.Key, &s.Value, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("could not scan setting: %v", err)
		}
		settings = append(settings, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %v", err)
	}

	return &settings, nil
}
