package usecase

import (
	"context"
	"fmt"
	"time"

	"gradebook/domain"
)

// In-memory fakes keyed the same way the SQL natural keys are.

type fakeSettingRepo struct {
	activeSemester *int
}

func (f *fakeSettingRepo) GetActiveSemesterID(ctx context.Context) (*int, error) {
	return f.activeSemester, nil
}

func (f *fakeSettingRepo) SetActiveSemester(ctx context.Context, semesterID int) error {
	f.activeSemester = &semesterID
	return nil
}

func (f *fakeSettingRepo) GetAllSettings(ctx context.Context) (*[]domain.Setting, error) {
	return &[]domain.Setting{}, nil
}

type fakeEnrollmentRepo struct {
	byStudent map[int]domain.Enrollment
}

func (f *fakeEnrollmentRepo) CreateEnrollment(ctx context.Context, studentID, classID int) error {
	f.byStudent[studentID] = domain.Enrollment{EnrollmentID: studentID, StudentID: studentID, ClassID: classID}
	return nil
}

func (f *fakeEnrollmentRepo) GetEnrollmentByStudent(ctx context.Context, studentID int) (*domain.Enrollment, error) {
	e, ok := f.byStudent[studentID]
	if !ok {
		return nil, fmt.Errorf("enrollment not found")
	}
	return &e, nil
}

func (f *fakeEnrollmentRepo) GetClassRoster(ctx context.Context, classID int) (*[]domain.RosterEntry, error) {
	var roster []domain.RosterEntry
	for _, e := range f.byStudent {
		if e.ClassID == classID {
			roster = append(roster, domain.RosterEntry{
				EnrollmentID: e.EnrollmentID,
				StudentID:    e.StudentID,
				StudentName:  fmt.Sprintf("student-%d", e.StudentID),
			})
		}
	}
	return &roster, nil
}

func (f *fakeEnrollmentRepo) ReassignClass(ctx context.Context, studentID, classID int) error {
	e, ok := f.byStudent[studentID]
	if !ok {
		return fmt.Errorf("enrollment not found")
	}
	e.ClassID = classID
	f.byStudent[studentID] = e
	return nil
}

type fakeAssignmentRepo struct {
	assigned bool
}

func (f *fakeAssignmentRepo) CreateAssignment(ctx context.Context, a *domain.TeachingAssignment) error {
	return nil
}

func (f *fakeAssignmentRepo) GetAssignmentsByTeacher(ctx context.Context, teacherID int) (*[]domain.TeachingAssignment, error) {
	return &[]domain.TeachingAssignment{}, nil
}

func (f *fakeAssignmentRepo) GetAllAssignments(ctx context.Context) (*[]domain.TeachingAssignment, error) {
	return &[]domain.TeachingAssignment{}, nil
}

func (f *fakeAssignmentRepo) DeleteAssignment(ctx context.Context, id int) error {
	return nil
}

func (f *fakeAssignmentRepo) HasAssignment(ctx context.Context, teacherID, subjectID, classID int) (bool, error) {
	return f.assigned, nil
}

type gradeKey struct {
	teacherID    int
	enrollmentID int
	subjectID    int
	semesterID   int
	gradeType    domain.GradeType
}

type fakeGradeRepo struct {
	records map[gradeKey]domain.Grade
}

func (f *fakeGradeRepo) UpsertGrade(ctx context.Context, grade *domain.Grade) error {
	key := gradeKey{grade.TeacherID, grade.EnrollmentID, grade.SubjectID, grade.SemesterID, grade.GradeType}
	f.records[key] = *grade
	return nil
}

func (f *fakeGradeRepo) GetGradesByClass(ctx context.Context, classID, semesterID int) (*[]domain.GradeRow, error) {
	return &[]domain.GradeRow{}, nil
}

func (f *fakeGradeRepo) GetGradesByStudent(ctx context.Context, studentID, semesterID int) (*[]domain.GradeRow, error) {
	return &[]domain.GradeRow{}, nil
}

func (f *fakeGradeRepo) GetGradesByTeacher(ctx context.Context, teacherID, classID, subjectID, semesterID int) (*[]domain.GradeRow, error) {
	return &[]domain.GradeRow{}, nil
}

type attendanceKey struct {
	enrollmentID int
	date         string
	classID      int
}

type fakeAttendanceRepo struct {
	records map[attendanceKey]domain.Attendance
}

func (f *fakeAttendanceRepo) UpsertAttendance(ctx context.Context, attendance *domain.Attendance) error {
	key := attendanceKey{attendance.EnrollmentID, attendance.Date.Format("2006-01-02"), attendance.ClassID}
	f.records[key] = *attendance
	return nil
}

func (f *fakeAttendanceRepo) GetAttendanceByStudent(ctx context.Context, studentID, semesterID int) (*[]domain.AttendanceRow, error) {
	return &[]domain.AttendanceRow{}, nil
}

func (f *fakeAttendanceRepo) GetAttendanceByClass(ctx context.Context, classID, semesterID int) (*[]domain.AttendanceRow, error) {
	return &[]domain.AttendanceRow{}, nil
}

func intPtr(v int) *int { return &v }

var testTimeout = 2 * time.Second
