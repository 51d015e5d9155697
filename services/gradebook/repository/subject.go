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

type subjectRepository struct {
	db *pgxpool.Pool
}

func NewSubjectRepository(database *pgxpool.Pool) domain.SubjectRepo {
	return &subjectRepository{
		db: database,
	}
}

func (sr *subjectRepository) CreateSubject(ctx context.Context, subject *domain.Subject) error {
	query := `
		INSERT INTO subjects (name, created_at, updated_at)
		VALUES ($1, $2, $2)
		RETURNING subject_id;
	`

	now := time.Now()
	if err := sr.db.QueryRow(ctx, query, subject.Name, now).Scan(&subject.SubjectID); err != nil {
		return fmt.Errorf("could not insert subject: %v", err)
	}
	subject.CreatedAt = now
	subject.UpdatedAt = now

	return nil
}

func (sr *subjectRepository) GetAllSubjects(ctx context.Context) (*[]domain.Subject, error) {
	rows, err := sr.db.Query(ctx, `SELECT subject_id, name, created_at, updated_at FROM subjects ORDER BY name;`)
	if err != nil {
		return nil, fmt.Errorf("could not get all subjects: %v", err)
	}
	defer rows.Close()

	var subjects []domain.Subject
	for rows.Next() {
		var subject domain.Subject
		if err := rows.Scan(&subject.SubjectID, &subject.Name, &subject.CreatedAt, &subject.UpdatedAt); err != nil {
			return nil, fmt.Errorf("could not scan subject: %v", err)
		}
		subjects = append(subjects, subject)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %v", err)
	}

	return &subjects, nil
}

func (sr *subjectRepository) GetSubjectByID(ctx context.Context, id int) (*domain.Subject, error) {
	var subject domain.Subject
	err := sr.db.QueryRow(ctx, `SELECT subject_id, name, created_at, updated_at FROM subjects WHERE subject_id = $1;`, id).
		Scan(&subject.SubjectID, &subject.Name, &subject.CreatedAt, &subject.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("subject not found")
		}
		return nil, fmt.Errorf("could not get subject: %v", err)
	}

	return &subject, nil
}

func (sr *subjectRepository) UpdateSubject(ctx context.Context, subject *domain.Subject) error {
	tag, err := sr.db.Exec(ctx, `UPDATE subjects SET name = $1, updated_at = NOW() WHERE subject_id = $2;`, subject.Name, subject.SubjectID)
	if err != nil {
		return fmt.Errorf("could not update subject: %v", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("subject not found")
	}

	return nil
}

func (sr *subjectRepository) DeleteSubject(ctx context.Context, id int) error {
	tag, err := sr.db.Exec(ctx, `DELETE FROM subjects WHERE subject_id = $1;`, id)
	if err != nil {
		return fmt.Errorf("could not delete subject: %v", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("subject not found")
	}

	return nil
}
