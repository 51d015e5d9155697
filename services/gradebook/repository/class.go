package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gradebook/domain"
)

type classRepository struct {
	db *pgxpool.Pool
}

func NewClassRepository(database *pgxpool.Pool) domain.ClassRepo {
	return &classRepository{
		db: database,
	}
}

func (cr *classRepository) CreateClass(ctx context.Context, class *domain.Class) error {
	query := `
		INSERT INTO classes (name, homeroom_teacher_id, created_at, updated_at)
		VALUES ($1, $2, $3, $3)
		RETURNING class_id;
	`

	now := time.Now()
	if err := cr.db.QueryRow(ctx, query, class.Name, class.HomeroomTeacherID, now).Scan(&class.ClassID); err != nil {
		return fmt.Errorf("could not insert class: %v", err)
	}
	class.CreatedAt = now
	class.UpdatedAt = now

	return nil
}

func (cr *classRepository) GetAllClasses(ctx context.Context) (*[]domain.Class, error) {
	query := `
		SELECT class_id, name, homeroom_teacher_id, created_at, updated_at
		FROM classes
		ORDER BY name;
	`

	rows, err := cr.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("could not get all classes: %v", err)
	}
	defer rows.Close()

	var classes []domain.Class
	for rows.Next() {
		var class domain.Class
		if err := rows.Scan(&class.ClassID, &class.Name, &class.HomeroomTeacherID, &class.CreatedAt, &class.UpdatedAt); err != nil {
			return nil, fmt.Errorf("could not scan class: %v", err)
		}
		classes = append(classes, class)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %v", err)
	}

	return &classes, nil
}

func (cr *classRepository) GetClassByID(ctx context.Context, id int) (*domain.Class, error) {
	query := `
		SELECT class_id, name, homeroom_teacher_id, created_at, updated_at
		FROM classes
		WHERE class_id = $1;
	`

	var class domain.Class
	err := cr.db.QueryRow(ctx, query, id).Scan(&class.ClassID, &class.Name, &class.HomeroomTeacherID, &class.CreatedAt, &class.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("class not found")
		}
		return nil, fmt.Errorf("could not get class: %v", err)
	}

	return &class, nil
}

func (cr *classRepository) UpdateClass(ctx context.Context, class *domain.Class) error {
	query := `
		UPDATE classes SET name = $1, homeroom_teacher_id = $2, updated_at = NOW()
		WHERE class_id = $3;
	`

	tag, err := cr.db.Exec(ctx, query, class.Name, class.HomeroomTeacherID, class.ClassID)
	if err != nil {
		return fmt.Errorf("could not update class: %v", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("class not found")
	}

	return nil
}

func (cr *classRepository) DeleteClass(ctx context.Context, id int) error {
	tag, err := cr.db.Exec(ctx, `DELETE FROM classes WHERE class_id = $1;`, id)
	if err != nil {
		return fmt.Errorf("could not delete class: %v", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("class not found")
	}

	return nil
}

func (cr *classRepository) GetHomeroomClass(ctx context.Context, teacherID int) (*domain.Class, error) {
	query := `
		SELECT class_id, name, homeroom_teacher_id, created_at, updated_at
		FROM classes
		WHERE homeroom_teacher_id = $1;
	`

	var class domain.Class
	err := cr.db.QueryRow(ctx, query, teacherID).Scan(&class.ClassID, &class.Name, &class.HomeroomTeacherID, &class.CreatedAt, &class.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("no homeroom class for this teacher")
		}
		return nil, fmt.Errorf("could not get homeroom class: %v", err)
	}

	return &class, nil
}
