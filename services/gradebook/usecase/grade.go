package usecase

import (
	"context"
	"fmt"
	"time"

	"gradebook/domain"
)

type gradeUC struct {
	gradeRepo      domain.GradeRepo
	enrollmentRepo domain.EnrollmentRepo
	assignmentRepo domain.AssignmentRepo
	settingRepo    domain.SettingRepo
	TimeOut        time.Duration
}

func NewGradeUseCase(
	gradeRepo domain.GradeRepo,
	enrollmentRepo domain.EnrollmentRepo,
	assignmentRepo domain.AssignmentRepo,
	settingRepo domain.SettingRepo,
	timeOut time.Duration,
) domain.GradeUseCase {
	return &gradeUC{
		gradeRepo:      gradeRepo,
		enrollmentRepo: enrollmentRepo,
		assignmentRepo: assignmentRepo,
		settingRepo:    settingRepo,
		TimeOut:        timeOut,
	}
}

func activeSemester(ctx context.Context, settingRepo domain.SettingRepo) (int, error) {
	id, err := settingRepo.GetActiveSemesterID(ctx)
	if err != nil {
		return 0, err
	}
	if id == nil {
		return 0, fmt.Errorf("no active semester has been set")
	}
	return *id, nil
}

// BulkUpsertGrades writes one row per student, idempotent on the natural
// key. One bad row never aborts the batch; every row is accounted for in
// the report.
func (gUC *gradeUC) BulkUpsertGrades(ctx context.Context, teacherID int, payload *domain.BulkGradePayload) (*domain.BatchReport, error) {
	ctx, cancel := context.WithTimeout(ctx, gUC.TimeOut)
	defer cancel()

	if !payload.GradeType.Valid() {
		return nil, fmt.Errorf("invalid grade type: %s", payload.GradeType)
	}
	if len(payload.Scores) == 0 {
		return nil, fmt.Errorf("no scores submitted")
	}

	semesterID, err := activeSemester(ctx, gUC.settingRepo)
	if err != nil {
		return nil, err
	}

	assigned, err := gUC.assignmentRepo.HasAssignment(ctx, teacherID, payload.SubjectID, payload.ClassID)
	if err != nil {
		return nil, err
	}
	if !assigned {
		return nil, fmt.Errorf("teacher is not assigned to this subject in this class")
	}

	examDate := payload.ExamDate
	if examDate.IsZero() {
		examDate = time.Now()
	}

	report := &domain.BatchReport{}
	for _, entry := range payload.Scores {
		if entry.Score < 0 || entry.Score > 100 {
			report.Add(entry.StudentID, domain.RowFailed, "score must be between 0 and 100")
			continue
		}

		enrollment, err := gUC.enrollmentRepo.GetEnrollmentByStudent(ctx, entry.StudentID)
		if err != nil {
			report.Add(entry.StudentID, domain.RowSkipped, "student has no enrollment record")
			continue
		}
		if enrollment.ClassID != payload.ClassID {
			report.Add(entry.StudentID, domain.RowSkipped, "student is not enrolled in this class")
			continue
		}

		grade := &domain.Grade{
			EnrollmentID: enrollment.EnrollmentID,
			SubjectID:    payload.SubjectID,
			TeacherID:    teacherID,
			SemesterID:   semesterID,
			GradeType:    payload.GradeType,
			Score:        entry.Score,
			ExamDate:     examDate,
		}
		if err := gUC.gradeRepo.UpsertGrade(ctx, grade); err != nil {
			report.Add(entry.StudentID, domain.RowFailed, err.Error())
			continue
		}

		report.Add(entry.StudentID, domain.RowOK, "")
	}

	return report, nil
}

func (gUC *gradeUC) GetTeacherGrades(ctx context.Context, teacherID, classID, subjectID int) (*[]domain.GradeRow, error) {
	ctx, cancel := context.WithTimeout(ctx, gUC.TimeOut)
	defer cancel()

	semesterID, err := activeSemester(ctx, gUC.settingRepo)
	if err != nil {
		return nil, err
	}

	return gUC.gradeRepo.GetGradesByTeacher(ctx, teacherID, classID, subjectID, semesterID)
}
