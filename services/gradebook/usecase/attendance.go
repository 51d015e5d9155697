package usecase

import (
	"context"
	"fmt"
	"time"

	"gradebook/domain"
)

type attendanceUC struct {
	attendanceRepo domain.AttendanceRepo
	enrollmentRepo domain.EnrollmentRepo
	settingRepo    domain.SettingRepo
	TimeOut        time.Duration
}

func NewAttendanceUseCase(
	attendanceRepo domain.AttendanceRepo,
	enrollmentRepo domain.EnrollmentRepo,
	settingRepo domain.SettingRepo,
	timeOut time.Duration,
) domain.AttendanceUseCase {
	return &attendanceUC{
		attendanceRepo: attendanceRepo,
		enrollmentRepo: enrollmentRepo,
		settingRepo:    settingRepo,
		TimeOut:        timeOut,
	}
}

// BulkUpsertAttendance records one day for one class: one mark per student,
// re-submission for the same day overwrites.
func (aUC *attendanceUC) BulkUpsertAttendance(ctx context.Context, teacherID int, payload *domain.BulkAttendancePayload) (*domain.BatchReport, error) {
	ctx, cancel := context.WithTimeout(ctx, aUC.TimeOut)
	defer cancel()

	if len(payload.Marks) == 0 {
		return nil, fmt.Errorf("no marks submitted")
	}

	semesterID, err := activeSemester(ctx, aUC.settingRepo)
	if err != nil {
		return nil, err
	}

	date := payload.Date
	if date.IsZero() {
		date = time.Now()
	}

	report := &domain.BatchReport{}
	for _, mark := range payload.Marks {
		if !mark.Status.Valid() {
			report.Add(mark.StudentID, domain.RowFailed, fmt.Sprintf("invalid status: %s", mark.Status))
			continue
		}

		enrollment, err := aUC.enrollmentRepo.GetEnrollmentByStudent(ctx, mark.StudentID)
		if err != nil {
			report.Add(mark.StudentID, domain.RowSkipped, "student has no enrollment record")
			continue
		}
		if enrollment.ClassID != payload.ClassID {
			report.Add(mark.StudentID, domain.RowSkipped, "student is not enrolled in this class")
			continue
		}

		attendance := &domain.Attendance{
			EnrollmentID: enrollment.EnrollmentID,
			ClassID:      payload.ClassID,
			TeacherID:    teacherID,
			SemesterID:   semesterID,
			Date:         date,
			Status:       mark.Status,
			Note:         mark.Note,
		}
		if err := aUC.attendanceRepo.UpsertAttendance(ctx, attendance); err != nil {
			report.Add(mark.StudentID, domain.RowFailed, err.Error())
			continue
		}

		report.Add(mark.StudentID, domain.RowOK, "")
	}

	return report, nil
}
