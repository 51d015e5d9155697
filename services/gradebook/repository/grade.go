package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gradebook/domain"
)

type gradeRepository struct {
	db *pgxpool.Pool
}

func NewGradeRepository(database *pgxpool.Pool) domain.GradeRepo {
	return &gradeRepository{
		db: database,
	}
}

// UpsertGrade relies on the natural-key unique constraint; a re-submission
// for the same (teacher, enrollment, subject, semester, grade type)
// overwrites score and exam date. Last write wins, no version column.
func (gr *gradeRepository) UpsertGrade(ctx context.Context, grade *domain.Grade) error {
	query := `
		INSERT INTO grades (enrollment_id, subject_id, teacher_id, semester_id, grade_type, score, exam_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		ON CONFLICT (teacher_id, enrollment_id, subject_id, semester_id, grade_type)
		DO UPDATE SET score = EXCLUDED.score, exam_date = EXCLUDED.exam_date, updated_at = EXCLUDED.updated_at
		RETURNING grade_id;
	`

	now := time.Now()
	err := gr.db.QueryRow(ctx, query,
		grade.EnrollmentID, grade.SubjectID, grade.TeacherID, grade.SemesterID,
		grade.GradeType, grade.Score, grade.ExamDate, now,
	).Scan(&grade.GradeID)
	if err != nil {
		return fmt.Errorf("could not upsert grade: %v", err)
	}

	return nil
}

const gradeRowSelect = `
	SELECT u.user_id, u.name, s.subject_id, s.name, g.grade_type, g.score, g.exam_date
	FROM grades g
	JOIN enrollments e ON e.enrollment_id = g.enrollment_id
	JOIN users u ON u.user_id = e.student_id
	JOIN subjects s ON s.subject_id = g.subject_id
`

func (gr *gradeRepository) scanGradeRows(rows pgx.Rows) (*[]domain.GradeRow, error) {
	defer rows.Close()

	var result []domain.GradeRow
	for rows.Next() {
		var row domain.GradeRow
		err := rows.Scan(&row.StudentID, &row.StudentName, &row.SubjectID, &row.SubjectName, &row.GradeType, &row.Score, &row.ExamDate)
		if err != nil {
			return nil, fmt.Errorf("could not scan grade row: %v", err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %v", err)
	}

	return &result, nil
}

func (gr *gradeRepository) GetGradesByClass(ctx context.Context, classID, semesterID int) (*[]domain.GradeRow, error) {
	rows, err := gr.db.Query(ctx, gradeRowSelect+`
		WHERE e.class_id = $1 AND g.semester_id = $2
		ORDER BY u.name, s.name, g.exam_date;
	`, classID, semesterID)
	if err != nil {
		return nil, fmt.Errorf("could not get class grades: %v", err)
	}
	return gr.scanGradeRows(rows)
}

func (gr *gradeRepository) GetGradesByStudent(ctx context.Context, studentID, semesterID int) (*[]domain.GradeRow, error) {
	rows, err := gr.db.Query(ctx, gradeRowSelect+`
		WHERE e.student_id = $1 AND g.semester_id = $2
		ORDER BY s.name, g.exam_date;
	`, studentID, semesterID)
	if err != nil {
		return nil, fmt.Errorf("could not get student grades: %v", err)
	}
	return gr.scanGradeRows(rows)
}

func (gr *gradeRepository) GetGradesByTeacher(ctx context.Context, teacherID, classID, subjectID, semesterID int) (*[]domain.GradeRow, error) {
	rows, err := gr.db.Query(ctx, gradeRowSelect+`
		WHERE g.teacher_id = $1 AND e.class_id = $2 AND g.subject_id = $3 AND g.semester_id = $4
		ORDER BY u.name, g.exam_date;
	`, teacherID, classID, subjectID, semesterID)
	if err != nil {
		return nil, fmt.Errorf("could not get teacher grades: %v", err)
	}
	return gr.scanGradeRows(rows)
}
