package usecase

import (
	"context"
	"testing"
	"time"

	"gradebook/domain"
)

func newAttendanceFixture() (*fakeAttendanceRepo, domain.AttendanceUseCase) {
	attendanceRepo := &fakeAttendanceRepo{records: map[attendanceKey]domain.Attendance{}}
	enrollmentRepo := &fakeEnrollmentRepo{byStudent: map[int]domain.Enrollment{
		1: {EnrollmentID: 11, StudentID: 1, ClassID: 5},
		2: {EnrollmentID: 12, StudentID: 2, ClassID: 5},
	}}
	uc := NewAttendanceUseCase(attendanceRepo, enrollmentRepo, &fakeSettingRepo{activeSemester: intPtr(1)}, testTimeout)
	return attendanceRepo, uc
}

func TestBulkUpsertAttendanceOverwrites(t *testing.T) {
	attendanceRepo, uc := newAttendanceFixture()

	day := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	payload := &domain.BulkAttendancePayload{
		ClassID: 5,
		Date:    day,
		Marks:   []domain.StudentMark{{StudentID: 1, Status: domain.AttendanceAbsent}},
	}
	if _, err := uc.BulkUpsertAttendance(context.Background(), 99, payload); err != nil {
		t.Fatalf("first submission: %v", err)
	}

	// Same student, same day, corrected status.
	payload.Marks[0].Status = domain.AttendanceSick
	if _, err := uc.BulkUpsertAttendance(context.Background(), 99, payload); err != nil {
		t.Fatalf("second submission: %v", err)
	}

	if len(attendanceRepo.records) != 1 {
		t.Fatalf("got %d stored records, want exactly 1", len(attendanceRepo.records))
	}
	for _, a := range attendanceRepo.records {
		if a.Status != domain.AttendanceSick {
			t.Errorf("stored status: got %s, want sick (latest write)", a.Status)
		}
	}
}

func TestBulkUpsertAttendanceRowReport(t *testing.T) {
	attendanceRepo, uc := newAttendanceFixture()

	payload := &domain.BulkAttendancePayload{
		ClassID: 5,
		Date:    time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
		Marks: []domain.StudentMark{
			{StudentID: 1, Status: domain.AttendancePresent},
			{StudentID: 42, Status: domain.AttendancePresent}, // no enrollment
			{StudentID: 2, Status: "late"},                    // unknown status
		},
	}

	report, err := uc.BulkUpsertAttendance(context.Background(), 99, payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Saved != 1 || report.Skipped != 1 || report.Failed != 1 {
		t.Errorf("report counts: %+v", report)
	}
	if len(attendanceRepo.records) != 1 {
		t.Errorf("got %d stored records, want 1", len(attendanceRepo.records))
	}
}
