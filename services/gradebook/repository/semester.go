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

type semesterRepository struct {
	db *pgxpool.Pool
}

func NewSemesterRepository(database *pgxpool.Pool) domain.SemesterRepo {
	return &semesterRepository{
		db: database,
	}
}

func (sr *semesterRepository) CreateSemester(ctx context.Context, semester *domain.Semester) error {
	query := `
		INSERT INTO semesters (name, academic_year, start_date, end_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		RETURNING semester_id;
	`

	now := time.Now()
	err := sr.db.QueryRow(ctx, query, semester.Name, semester.AcademicYear, semester.StartDate, semester.EndDate, now).
		Scan(&semester.SemesterID)
	if err != nil {
		return fmt.Errorf("could not insert semester: %v", err)
	}
	semester.CreatedAt = now
	semester.UpdatedAt = now

	return nil
}

func (sr *semesterRepository) GetAllSemesters(ctx context.Context) (*[]domain.Semester, error) {
	query := `
		SELECT semester_id, name, academic_year, start_date, end_date, created_at, updated_at
		FROM semesters
		ORDER BY start_date DESC;
	`

	rows, err := sr.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("could not get all semesters: %v", err)
	}
	defer rows.Close()

	var semesters []domain.Semester
	for rows.Next() {
		var s domain.Semester
		if err := rows.Scan(&s.SemesterID, &s.Name, &s.AcademicYear, &s.StartDate, &s.EndDate, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("could not scan semester: %v", err)
		}
		semesters = append(semesters, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %v", err)
	}

	return &semesters, nil
}

func (sr *semesterRepository) GetSemesterByID(ctx context.Context, id int) (*domain.Semester, error) {
	query := `
		SELECT semester_id, name, academic_year, start_date, end_date, created_at, updated_at
		FROM semesters
		WHERE semester_id = $1;
	`

	var s domain.Semester
	err := sr.db.QueryRow(ctx, query, id).Scan(&s.SemesterID, &s.Name, &s.AcademicYear, &s.StartDate, &s.EndDate, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("semester not found")
		}
		return nil, fmt.Errorf("could not get semester: %v", err)
	}

	return &s, nil
}

func (sr *semesterRepository) DeleteSemester(ctx context.Context, id int) error {
	tag, err := sr.db.Exec(ctx, `DELETE FROM semesters WHERE semester_id = $1;`, id)
	if err != nil {
		return fmt.Errorf("could not delete semester: %v", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("semester not found")
	}

	return nil
}
