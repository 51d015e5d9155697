package usecase

import (
	"context"
	"testing"

	"gradebook/domain"
)

func newGradeFixture() (*fakeGradeRepo, *fakeEnrollmentRepo, domain.GradeUseCase) {
	gradeRepo := &fakeGradeRepo{records: map[gradeKey]domain.Grade{}}
	enrollmentRepo := &fakeEnrollmentRepo{byStudent: map[int]domain.Enrollment{
		1: {EnrollmentID: 11, StudentID: 1, ClassID: 5},
		2: {EnrollmentID: 12, StudentID: 2, ClassID: 5},
		3: {EnrollmentID: 13, StudentID: 3, ClassID: 9}, // other class
	}}
	uc := NewGradeUseCase(gradeRepo, enrollmentRepo, &fakeAssignmentRepo{assigned: true}, &fakeSettingRepo{activeSemester: intPtr(1)}, testTimeout)
	return gradeRepo, enrollmentRepo, uc
}

func TestBulkUpsertGradesOverwrites(t *testing.T) {
	gradeRepo, _, uc := newGradeFixture()

	payload := &domain.BulkGradePayload{
		ClassID:   5,
		SubjectID: 7,
		GradeType: domain.GradeTypeQuiz,
		Scores:    []domain.StudentScore{{StudentID: 1, Score: 70}},
	}
	if _, err := uc.BulkUpsertGrades(context.Background(), 99, payload); err != nil {
		t.Fatalf("first submission: %v", err)
	}

	payload.Scores[0].Score = 85
	report, err := uc.BulkUpsertGrades(context.Background(), 99, payload)
	if err != nil {
		t.Fatalf("second submission: %v", err)
	}
	if report.Saved != 1 {
		t.Errorf("saved: got %d, want 1", report.Saved)
	}

	if len(gradeRepo.records) != 1 {
		t.Fatalf("got %d stored records, want exactly 1", len(gradeRepo.records))
	}
	for _, g := range gradeRepo.records {
		if g.Score != 85 {
			t.Errorf("stored score: got %v, want 85 (latest write)", g.Score)
		}
	}
}

func TestBulkUpsertGradesRowReport(t *testing.T) {
	gradeRepo, _, uc := newGradeFixture()

	payload := &domain.BulkGradePayload{
		ClassID:   5,
		SubjectID: 7,
		GradeType: domain.GradeTypeMidterm,
		Scores: []domain.StudentScore{
			{StudentID: 1, Score: 80},  // ok
			{StudentID: 42, Score: 75}, // no enrollment -> skipped
			{StudentID: 3, Score: 90},  // enrolled elsewhere -> skipped
			{StudentID: 2, Score: 150}, // out of range -> failed
		},
	}

	report, err := uc.BulkUpsertGrades(context.Background(), 99, payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Saved != 1 || report.Skipped != 2 || report.Failed != 1 {
		t.Errorf("report counts: %+v", report)
	}
	if len(report.Rows) != 4 {
		t.Errorf("every row must be reported, got %d", len(report.Rows))
	}
	if len(gradeRepo.records) != 1 {
		t.Errorf("got %d stored records, want 1", len(gradeRepo.records))
	}
}

func TestBulkUpsertGradesRequiresAssignment(t *testing.T) {
	gradeRepo := &fakeGradeRepo{records: map[gradeKey]domain.Grade{}}
	enrollmentRepo := &fakeEnrollmentRepo{byStudent: map[int]domain.Enrollment{}}
	uc := NewGradeUseCase(gradeRepo, enrollmentRepo, &fakeAssignmentRepo{assigned: false}, &fakeSettingRepo{activeSemester: intPtr(1)}, testTimeout)

	payload := &domain.BulkGradePayload{
		ClassID:   5,
		SubjectID: 7,
		GradeType: domain.GradeTypeQuiz,
		Scores:    []domain.StudentScore{{StudentID: 1, Score: 70}},
	}
	if _, err := uc.BulkUpsertGrades(context.Background(), 99, payload); err == nil {
		t.Error("expected error for unassigned teacher")
	}
}

func TestBulkUpsertGradesNoActiveSemester(t *testing.T) {
	gradeRepo := &fakeGradeRepo{records: map[gradeKey]domain.Grade{}}
	enrollmentRepo := &fakeEnrollmentRepo{byStudent: map[int]domain.Enrollment{}}
	uc := NewGradeUseCase(gradeRepo, enrollmentRepo, &fakeAssignmentRepo{assigned: true}, &fakeSettingRepo{}, testTimeout)

	payload := &domain.BulkGradePayload{
		ClassID:   5,
		SubjectID: 7,
		GradeType: domain.GradeTypeQuiz,
		Scores:    []domain.StudentScore{{StudentID: 1, Score: 70}},
	}
	if _, err := uc.BulkUpsertGrades(context.Background(), 99, payload); err == nil {
		t.Error("expected error when no semester is active")
	}
}

func TestBulkUpsertGradesInvalidType(t *testing.T) {
	_, _, uc := newGradeFixture()

	payload := &domain.BulkGradePayload{
		ClassID:   5,
		SubjectID: 7,
		GradeType: "pop-quiz",
		Scores:    []domain.StudentScore{{StudentID: 1, Score: 70}},
	}
	if _, err := uc.BulkUpsertGrades(context.Background(), 99, payload); err == nil {
		t.Error("expected error for unknown grade type")
	}
}
