package domain

import (
	"context"
	"time"
)

type Class struct {
	ClassID           int       `json:"class_id"`
	Name              string    `json:"name" valid:"required~Class name is required"`
	HomeroomTeacherID *int      `json:"homeroom_teacher_id,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type Subject struct {
	SubjectID int       `json:"subject_id"`
	Name      string    `json:"name" valid:"required~Subject name is required"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TeachingAssignment says which teacher enters grades for which subject in
// which class.
type TeachingAssignment struct {
	AssignmentID int    `json:"assignment_id"`
	TeacherID    int    `json:"teacher_id" valid:"required~Teacher ID is required"`
	SubjectID    int    `json:"subject_id" valid:"required~Subject ID is required"`
	ClassID      int    `json:"class_id" valid:"required~Class ID is required"`
	TeacherName  string `json:"teacher_name,omitempty"`
	SubjectName  string `json:"subject_name,omitempty"`
	ClassName    string `json:"class_name,omitempty"`
}

type ClassRepo interface {
	CreateClass(ctx context.Context, class *Class) error
	GetAllClasses(ctx context.Context) (*[]Class, error)
	GetClassByID(ctx context.Context, id int) (*Class, error)
	UpdateClass(ctx context.Context, class *Class) error
	DeleteClass(ctx context.Context, id int) error
	GetHomeroomClass(ctx context.Context, teacherID int) (*Class, error)
}

type SubjectRepo interface {
	CreateSubject(ctx context.Context, subject *Subject) error
	GetAllSubjects(ctx context.Context) (*[]Subject, error)
	GetSubjectByID(ctx context.Context, id int) (*Subject, error)
	UpdateSubject(ctx context.Context, subject *Subject) error
	DeleteSubject(ctx context.Context, id int) error
}

type AssignmentRepo interface {
	CreateAssignment(ctx context.Context, assignment *TeachingAssignment) error
	GetAssignmentsByTeacher(ctx context.Context, teacherID int) (*[]TeachingAssignment, error)
	GetAllAssignments(ctx context.Context) (*[]TeachingAssignment, error)
	DeleteAssignment(ctx context.Context, id int) error
	HasAssignment(ctx context.Context, teacherID, subjectID, classID int) (bool, error)
}

type AcademicUseCase interface {
	CreateClass(ctx context.Context, class *Class) error
	GetAllClasses(ctx context.Context) (*[]Class, error)
	GetClassDetail(ctx context.Context, id int) (*Class, error)
	ModifyClass(ctx context.Context, class *Class) error
	DeleteClass(ctx context.Context, id int) error

	CreateSubject(ctx context.Context, subject *Subject) error
	GetAllSubjects(ctx context.Context) (*[]Subject, error)
	GetSubjectDetail(ctx context.Context, id int) (*Subject, error)
	ModifySubject(ctx context.Context, subject *Subject) error
	DeleteSubject(ctx context.Context, id int) error

	CreateSemester(ctx context.Context, semester *Semester) error
	GetAllSemesters(ctx context.Context) (*[]Semester, error)
	DeleteSemester(ctx context.Context, id int) error

	CreateAssignment(ctx context.Context, assignment *TeachingAssignment) error
	GetAllAssignments(ctx context.Context) (*[]TeachingAssignment, error)
	GetTeacherAssignments(ctx context.Context, teacherID int) (*[]TeachingAssignment, error)
	DeleteAssignment(ctx context.Context, id int) error

	GetClassRoster(ctx context.Context, classID int) (*[]RosterEntry, error)
	ReassignStudentClass(ctx context.Context, studentID, classID int) error
}
