package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gradebook/domain"
)

type assignmentRepository struct {
	db *pgxpool.Pool
}

func NewAssignmentRepository(database *pgxpool.Pool) domain.AssignmentRepo {
	return &assignmentRepository{
		db: database,
	}
}

func (ar *assignmentRepository) CreateAssignment(ctx context.Context, assignment *domain.TeachingAssignment) error {
	duplicateCheckQuery := `
		SELECT assignment_id FROM teaching_assignments
		WHERE teacher_id = $1 AND subject_id = $2 AND class_id = $3;
	`
	var existingID int

	err := ar.db.QueryRow(ctx, duplicateCheckQuery, assignment.TeacherID, assignment.SubjectID, assignment.ClassID).Scan(&existingID)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("could not check for duplicate assignment: %v", err)
	}
	if existingID != 0 {
		return fmt.Errorf("assignment already exists with ID: %d", existingID)
	}

	insertQuery := `
		INSERT INTO teaching_assignments (teacher_id, subject_id, class_id)
		VALUES ($1, $2, $3)
		RETURNING assignment_id;
	`

	err = ar.db.QueryRow(ctx, insertQuery, assignment.TeacherID, assignment.SubjectID, assignment.ClassID).Scan(&assignment.AssignmentID)
	if err != nil {
		return fmt.Errorf("could not insert assignment: %v", err)
	}

	return nil
}

const assignmentSelect = `
	SELECT a.assignment_id, a.teacher_id, a.subject_id, a.class_id,
		u.name, s.name, c.name
	FROM teaching_assignments a
	JOIN users u ON u.user_id = a.teacher_id
	JOIN subjects s ON s.subject_id = a.subject_id
	JOIN classes c ON c.class_id = a.class_id
`

func (ar *assignmentRepository) scanAssignments(rows pgx.Rows) (*[]domain.TeachingAssignment, error) {
	defer rows.Close()

	var assignments []domain.TeachingAssignment
	for rows.Next() {
		var a domain.TeachingAssignment
		err := rows.Scan(&a.AssignmentID, &a.TeacherID, &a.SubjectID, &a.ClassID, &a.TeacherName, &a.SubjectName, &a.ClassName)
		if err != nil {
			return nil, fmt.Errorf("could not scan assignment: %v", err)
		}
		assignments = append(assignments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %v", err)
	}

	return &assignments, nil
}

func (ar *assignmentRepository) GetAssignmentsByTeacher(ctx context.Context, teacherID int) (*[]domain.TeachingAssignment, error) {
	rows, err := ar.db.Query(ctx, assignmentSelect+` WHERE a.teacher_id = $1 ORDER BY c.name, s.name;`, teacherID)
	if err != nil {
		return nil, fmt.Errorf("could not get teacher assignments: %v", err)
	}
	return ar.scanAssignments(rows)
}

func (ar *assignmentRepository) GetAllAssignments(ctx context.Context) (*[]domain.TeachingAssignment, error) {
	rows, err := ar.db.Query(ctx, assignmentSelect+` ORDER BY c.name, s.name;`)
	if err != nil {
		return nil, fmt.Errorf("could not get all assignments: %v", err)
	}
	return ar.scanAssignments(rows)
}

func (ar *assignmentRepository) DeleteAssignment(ctx context.Context, id int) error {
	tag, err := ar.db.Exec(ctx, `DELETE FROM teaching_assignments WHERE assignment_id = $1;`, id)
	if err != nil {
		return fmt.Errorf("could not delete assignment: %v", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("assignment not found")
	}

	return nil
}

func (ar *assignmentRepository) HasAssignment(ctx context.Context, teacherID, subjectID, classID int) (bool, error) {
	var id int
	err := ar.db.QueryRow(ctx, `
		SELECT assignment_id FROM teaching_assignments
		WHERE teacher_id = $1 AND subject_id = $2 AND class_id = $3;
	`, teacherID, subjectID, classID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("could not check assignment: %v", err)
	}

	return true, nil
}
