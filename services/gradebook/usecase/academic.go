package usecase

import (
	"context"
	"time"

	"gradebook/domain"
)

type academicUC struct {
	classRepo      domain.ClassRepo
	subjectRepo    domain.SubjectRepo
	semesterRepo   domain.SemesterRepo
	assignmentRepo domain.AssignmentRepo
	enrollmentRepo domain.EnrollmentRepo
	TimeOut        time.Duration
}

func NewAcademicUseCase(
	classRepo domain.ClassRepo,
	subjectRepo domain.SubjectRepo,
	semesterRepo domain.SemesterRepo,
	assignmentRepo domain.AssignmentRepo,
	enrollmentRepo domain.EnrollmentRepo,
	timeOut time.Duration,
) domain.AcademicUseCase {
	return &academicUC{
		classRepo:      classRepo,
		subjectRepo:    subjectRepo,
		semesterRepo:   semesterRepo,
		assignmentRepo: assignmentRepo,
		enrollmentRepo: enrollmentRepo,
		TimeOut:        timeOut,
	}
}

func (aUC *academicUC) CreateClass(ctx context.Context, class *domain.Class) error {
	ctx, cancel := context.WithTimeout(ctx, aUC.TimeOut)
	defer cancel()

	return aUC.classRepo.CreateClass(ctx, class)
}

func (aUC *academicUC) GetAllClasses(ctx context.Context) (*[]domain.Class, error) {
	ctx, cancel := context.WithTimeout(ctx, aUC.TimeOut)
	defer cancel()

	return aUC.classRepo.GetAllClasses(ctx)
}

func (aUC *academicUC) GetClassDetail(ctx context.Context, id int) (*domain.Class, error) {
	ctx, cancel := context.WithTimeout(ctx, aUC.TimeOut)
	defer cancel()

	return aUC.classRepo.GetClassByID(ctx, id)
}

func (aUC *academicUC) ModifyClass(ctx context.Context, class *domain.Class) error {
	ctx, cancel := context.WithTimeout(ctx, aUC.TimeOut)
	defer cancel()

	return aUC.classRepo.UpdateClass(ctx, class)
}

func (aUC *academicUC) DeleteClass(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, aUC.TimeOut)
	defer cancel()

	return aUC.classRepo.DeleteClass(ctx, id)
}

func (aUC *academicUC) CreateSubject(ctx context.Context, subject *domain.Subject) error {
	ctx, cancel := context.WithTimeout(ctx, aUC.TimeOut)
	defer cancel()

	return aUC.subjectRepo.CreateSubject(ctx, subject)
}

func (aUC *academicUC) GetAllSubjects(ctx context.Context) (*[]domain.Subject, error) {
	ctx, cancel := context.WithTimeout(ctx, aUC.TimeOut)
	defer cancel()

	return aUC.subjectRepo.GetAllSubjects(ctx)
}

func (aUC *academicUC) GetSubjectDetail(ctx context.Context, id int) (*domain.Subject, error) {
	ctx, cancel := context.WithTimeout(ctx, aUC.TimeOut)
	defer cancel()

	return aUC.subjectRepo.GetSubjectByID(ctx, id)
}

func (aUC *academicUC) ModifySubject(ctx context.Context, subject *domain.Subject) error {
	ctx, cancel := context.WithTimeout(ctx, aUC.TimeOut)
	defer cancel()

	return aUC.subjectRepo.UpdateSubject(ctx, subject)
}

func (aUC *academicUC) DeleteSubject(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, aUC.TimeOut)
	defer cancel()

	return aUC.subjectRepo.DeleteSubject(ctx, id)
}

func (aUC *academicUC) CreateSemester(ctx context.Context, semester *domain.Semester) error {
	ctx, cancel := context.WithTimeout(ctx, aUC.TimeOut)
	defer cancel()

	return aUC.semesterRepo.CreateSemester(ctx, semester)
}

func (aUC *academicUC) GetAllSemesters(ctx context.Context) (*[]domain.Semester, error) {
	ctx, cancel := context.WithTimeout(ctx, aUC.TimeOut)
	defer cancel()

	return aUC.semesterRepo.GetAllSemesters(ctx)
}

func (aUC *academicUC) DeleteSemester(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, aUC.TimeOut)
	defer cancel()

	return aUC.semesterRepo.DeleteSemester(ctx, id)
}

func (aUC *academicUC) CreateAssignment(ctx context.Context, assignment *domain.TeachingAssignment) error {
	ctx, cancel := context.WithTimeout(ctx, aUC.TimeOut)
	defer cancel()

	return aUC.assignmentRepo.CreateAssignment(ctx, assignment)
}

func (aUC *academicUC) GetAllAssignments(ctx context.Context) (*[]domain.TeachingAssignment, error) {
	ctx, cancel := context.WithTimeout(ctx, aUC.TimeOut)
	defer cancel()

	return aUC.assignmentRepo.GetAllAssignments(ctx)
}

func (aUC *academicUC) GetTeacherAssignments(ctx context.Context, teacherID int) (*[]domain.TeachingAssignment, error) {
	ctx, cancel := context.WithTimeout(ctx, aUC.TimeOut)
	defer cancel()

	return aUC.assignmentRepo.GetAssignmentsByTeacher(ctx, teacherID)
}

func (aUC *academicUC) DeleteAssignment(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, aUC.TimeOut)
	defer cancel()

	return aUC.assignmentRepo.DeleteAssignment(ctx, id)
}

func (aUC *academicUC) GetClassRoster(ctx context.Context, classID int) (*[]domain.RosterEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, aUC.TimeOut)
	defer cancel()

	return aUC.enrollmentRepo.GetClassRoster(ctx, classID)
}

func (aUC *academicUC) ReassignStudentClass(ctx context.Context, studentID, classID int) error {
	ctx, cancel := context.WithTimeout(ctx, aUC.TimeOut)
	defer cancel()

	if _, err := aUC.classRepo.GetClassByID(ctx, classID); err != nil {
		return err
	}

	return aUC.enrollmentRepo.ReassignClass(ctx, studentID, classID)
}
