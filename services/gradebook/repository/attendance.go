package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gradebook/domain"
)

type attendanceRepository struct {
	db *pgxpool.Pool
}

func NewAttendanceRepository(database *pgxpool.Pool) domain.AttendanceRepo {
	return &attendanceRepository{
		db: database,
	}
}

// UpsertAttendance keeps one status per student per day per class; marking
// the same day again overwrites status, note and recording teacher.
func (ar *attendanceRepository) UpsertAttendance(ctx context.Context, attendance *domain.Attendance) error {
	query := `
		INSERT INTO attendances (enrollment_id, class_id, teacher_id, semester_id, date, status, note, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		ON CONFLICT (enrollment_id, date, class_id)
		DO UPDATE SET status = EXCLUDED.status, note = EXCLUDED.note, teacher_id = EXCLUDED.teacher_id, updated_at = EXCLUDED.updated_at
		RETURNING attendance_id;
	`

	now := time.Now()
	err := ar.db.QueryRow(ctx, query,
		attendance.EnrollmentID, attendance.ClassID, attendance.TeacherID, attendance.SemesterID,
		attendance.Date, attendance.Status, attendance.Note, now,
	).Scan(&attendance.AttendanceID)
	if err != nil {
		return fmt.Errorf("could not upsert attendance: %v", err)
	}

	return nil
}

const attendanceRowSelect = `
	SELECT u.user_id, u.name, a.date, a.status, a.note
	FROM attendances a
	JOIN enrollments e ON e.enrollment_id = a.enrollment_id
	JOIN users u ON u.user_id = e.student_id
`

func (ar *attendanceRepository) scanAttendanceRows(rows pgx.Rows) (*[]domain.AttendanceRow, error) {
	defer rows.Close()

	var result []domain.AttendanceRow
	for rows.Next() {
		var row domain.AttendanceRow
		if err := rows.Scan(&row.StudentID, &row.StudentName, &row.Date, &row.Status, &row.Note); err != nil {
			return nil, fmt.Errorf("could not scan attendance row: %v", err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %v", err)
	}

	return &result, nil
}

func (ar *attendanceRepository) GetAttendanceByStudent(ctx context.Context, studentID, semesterID int) (*[]domain.AttendanceRow, error) {
	rows, err := ar.db.Query(ctx, attendanceRowSelect+`
		WHERE e.student_id = $1 AND a.semester_id = $2
		ORDER BY a.date;
	`, studentID, semesterID)
	if err != nil {
		return nil, fmt.Errorf("could not get student attendance: %v", err)
	}
	return ar.scanAttendanceRows(rows)
}

func (ar *attendanceRepository) GetAttendanceByClass(ctx context.Context, classID, semesterID int) (*[]domain.AttendanceRow, error) {
	rows, err := ar.db.Query(ctx, attendanceRowSelect+`
		WHERE a.class_id = $1 AND a.semester_id = $2
		ORDER BY u.name, a.date;
	`, classID, semesterID)
	if err != nil {
		return nil, fmt.Errorf("could not get class attendance: %v", err)
	}
	return ar.scanAttendanceRows(rows)
}
