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

type enrollmentRepository struct {
	db *pgxpool.Pool
}

func NewEnrollmentRepository(database *pgxpool.Pool) domain.EnrollmentRepo {
	return &enrollmentRepository{
		db: database,
	}
}

func (er *enrollmentRepository) CreateEnrollment(ctx context.Context, studentID, classID int) error {
	query := `
		INSERT INTO enrollments (student_id, class_id, created_at, updated_at)
		VALUES ($1, $2, $3, $3);
	`

	if _, err := er.db.Exec(ctx, query, studentID, classID, time.Now()); err != nil {
		return fmt.Errorf("could not insert enrollment: %v", err)
	}

	return nil
}

func (er *enrollmentRepository) GetEnrollmentByStudent(ctx context.Context, studentID int) (*domain.Enrollment, error) {
	query := `
		SELECT enrollment_id, student_id, class_id, created_at, updated_at
		FROM enrollments
		WHERE student_id = $1;
	`

	var e domain.Enrollment
	err := er.db.QueryRow(ctx, query, studentID).Scan(&e.EnrollmentID, &e.StudentID, &e.ClassID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("enrollment not found")
		}
		return nil, fmt.Errorf("could not get enrollment: %v", err)
	}

	return &e, nil
}

func (er *enrollmentRepository) GetClassRoster(ctx context.Context, classID int) (*[]domain.RosterEntry, error) {
	query := `
		SELECT e.enrollment_id, u.user_id, u.name
		FROM enrollments e
		JOIN users u ON u.user_id = e.student_id
		WHERE e.class_id = $1 AND u.deleted_at IS NULL
		ORDER BY u.name;
	`

	rows, err := er.db.Query(ctx, query, classID)
	if err != nil {
		return nil, fmt.Errorf("could not get class roster: %v", err)
	}
	defer rows.Close()

	var roster []domain.RosterEntry
	for rows.Next() {
		var entry domain.RosterEntry
		if err := rows.Scan(&entry.EnrollmentID, &entry.StudentID, &entry.StudentName); err != nil {
			return nil, fmt.Errorf("could not scan roster entry: %v", err)
		}
		roster = append(roster, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %v", err)
	}

	return &roster, nil
}

func (er *enrollmentRepository) ReassignClass(ctx context.Context, studentID, classID int) error {
	query := `
		UPDATE enrollments SET class_id = $1, updated_at = NOW()
		WHERE student_id = $2;
	`

	tag, err := er.db.Exec(ctx, query, classID, studentID)
	if err != nil {
		return fmt.Errorf("could not reassign class: %v", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("enrollment not found")
	}

	return nil
}
