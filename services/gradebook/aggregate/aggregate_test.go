package aggregate

import (
	"testing"

	"gradebook/domain"
)

func gradeRow(studentID int, name, subject string, score float64) domain.GradeRow {
	return domain.GradeRow{
		StudentID:   studentID,
		StudentName: name,
		SubjectName: subject,
		Score:       score,
	}
}

func TestSubjectAverage(t *testing.T) {
	if got := SubjectAverage(nil); got != 0 {
		t.Errorf("empty input: got %v, want 0", got)
	}

	rows := []domain.GradeRow{
		gradeRow(1, "Ana", "Math", 80),
		gradeRow(1, "Ana", "Math", 90),
	}
	if got := SubjectAverage(rows); got != 85.00 {
		t.Errorf("got %v, want 85.00", got)
	}
}

func TestSubjectAverageRounding(t *testing.T) {
	rows := []domain.GradeRow{
		gradeRow(1, "Ana", "Math", 80),
		gradeRow(1, "Ana", "Math", 85),
		gradeRow(1, "Ana", "Math", 86),
	}
	// 251/3 = 83.666... -> 83.67
	if got := SubjectAverage(rows); got != 83.67 {
		t.Errorf("got %v, want 83.67", got)
	}
}

func TestStudentOverallAverageIsTwoLevel(t *testing.T) {
	// Subject A: [60, 100] -> 80, Subject B: [90] -> 90.
	// Two-level: (80+90)/2 = 85.00, not the flat mean 83.33.
	rows := []domain.GradeRow{
		gradeRow(1, "Ana", "Math", 60),
		gradeRow(1, "Ana", "Math", 100),
		gradeRow(1, "Ana", "Biology", 90),
	}
	if got := StudentOverallAverage(rows); got != 85.00 {
		t.Errorf("got %v, want 85.00 (two-level average)", got)
	}
}

func TestStudentOverallAverageEmpty(t *testing.T) {
	if got := StudentOverallAverage(nil); got != 0 {
		t.Errorf("got %v, want 0", got)
	}
}

func TestClassSubjectAveragesOmitsEmptySubjects(t *testing.T) {
	rows := []domain.GradeRow{
		gradeRow(1, "Ana", "Math", 70),
		gradeRow(2, "Budi", "Math", 90),
		gradeRow(1, "Ana", "History", 88),
	}
	got := ClassSubjectAverages(rows)
	if len(got) != 2 {
		t.Fatalf("got %d subjects, want 2", len(got))
	}
	// Sorted by subject name.
	if got[0].SubjectName != "History" || got[0].Average != 88.00 {
		t.Errorf("History: got %+v", got[0])
	}
	if got[1].SubjectName != "Math" || got[1].Average != 80.00 || got[1].Count != 2 {
		t.Errorf("Math: got %+v", got[1])
	}

	if out := ClassSubjectAverages(nil); len(out) != 0 {
		t.Errorf("empty input: got %d subjects, want 0", len(out))
	}
}

func attendanceRows(present, sick, excused, absent int) []domain.AttendanceRow {
	var rows []domain.AttendanceRow
	add := func(n int, status domain.AttendanceStatus) {
		for i := 0; i < n; i++ {
			rows = append(rows, domain.AttendanceRow{StudentID: 1, Status: status})
		}
	}
	add(present, domain.AttendancePresent)
	add(sick, domain.AttendanceSick)
	add(excused, domain.AttendanceExcused)
	add(absent, domain.AttendanceAbsent)
	return rows
}

func TestAttendanceSummary(t *testing.T) {
	s := AttendanceSummary(attendanceRows(8, 1, 1, 0))
	if s.Present != 8 || s.Sick != 1 || s.Excused != 1 || s.Absent != 0 {
		t.Errorf("counts wrong: %+v", s)
	}
	if s.Total != 10 {
		t.Errorf("total: got %d, want 10", s.Total)
	}
	if s.Percentage != 80.00 {
		t.Errorf("percentage: got %v, want 80.00", s.Percentage)
	}
}

func TestAttendanceSummaryNoData(t *testing.T) {
	s := AttendanceSummary(nil)
	if s.Total != 0 || s.Percentage != 0 {
		t.Errorf("no data must yield 0%%: %+v", s)
	}
}

func TestTopStudents(t *testing.T) {
	rows := []domain.GradeRow{
		gradeRow(1, "Ana", "Math", 70),
		gradeRow(2, "Budi", "Math", 95),
		gradeRow(3, "Citra", "Math", 80),
		gradeRow(4, "Dewi", "Math", 60),
		gradeRow(5, "Eka", "Math", 85),
	}
	got := TopStudents(rows, 3)
	if len(got) != 3 {
		t.Fatalf("got %d entries, want 3", len(got))
	}
	wantOrder := []string{"Budi", "Eka", "Citra"}
	for i, name := range wantOrder {
		if got[i].StudentName != name {
			t.Errorf("position %d: got %s, want %s", i, got[i].StudentName, name)
		}
	}
}

func TestTopStudentsFlatMeanNotTwoLevel(t *testing.T) {
	// Ana: Math [60, 100], Biology [90]. Flat mean = 250/3 = 83.33,
	// while the two-level average would be 85.
	rows := []domain.GradeRow{
		gradeRow(1, "Ana", "Math", 60),
		gradeRow(1, "Ana", "Math", 100),
		gradeRow(1, "Ana", "Biology", 90),
	}
	got := TopStudents(rows, 1)
	if len(got) != 1 {
		t.Fatalf("got %d entries, want 1", len(got))
	}
	if got[0].Average != 83.33 {
		t.Errorf("got %v, want flat mean 83.33", got[0].Average)
	}
}

func TestTopStudentsTieBreakByName(t *testing.T) {
	rows := []domain.GradeRow{
		gradeRow(2, "Budi", "Math", 90),
		gradeRow(1, "Ana", "Math", 90),
		gradeRow(3, "Citra", "Math", 90),
	}
	got := TopStudents(rows, 3)
	wantOrder := []string{"Ana", "Budi", "Citra"}
	for i, name := range wantOrder {
		if got[i].StudentName != name {
			t.Errorf("position %d: got %s, want %s", i, got[i].StudentName, name)
		}
	}

	// Same input again must produce the same order.
	again := TopStudents(rows, 3)
	for i := range got {
		if got[i] != again[i] {
			t.Errorf("ordering not stable at %d: %+v vs %+v", i, got[i], again[i])
		}
	}
}

func TestTopStudentsSmallerThanN(t *testing.T) {
	rows := []domain.GradeRow{gradeRow(1, "Ana", "Math", 75)}
	if got := TopStudents(rows, 10); len(got) != 1 {
		t.Errorf("got %d entries, want 1", len(got))
	}
	if got := TopStudents(rows, 0); len(got) != 0 {
		t.Errorf("n=0: got %d entries, want 0", len(got))
	}
}

func TestSubjectBreakdowns(t *testing.T) {
	rows := []domain.GradeRow{
		gradeRow(1, "Ana", "Math", 60),
		gradeRow(1, "Ana", "Math", 100),
		gradeRow(1, "Ana", "Biology", 90),
	}
	got := SubjectBreakdowns(rows)
	if len(got) != 2 {
		t.Fatalf("got %d subjects, want 2", len(got))
	}
	if got[0].SubjectName != "Biology" || got[0].Average != 90.00 {
		t.Errorf("Biology: got %+v", got[0])
	}
	if got[1].SubjectName != "Math" || got[1].Average != 80.00 || len(got[1].Grades) != 2 {
		t.Errorf("Math: got %+v", got[1])
	}
}

func TestGroupByStudentPreservesOrder(t *testing.T) {
	rows := []domain.GradeRow{
		gradeRow(3, "Citra", "Math", 80),
		gradeRow(1, "Ana", "Math", 70),
		gradeRow(3, "Citra", "History", 85),
	}
	byStudent, order := GroupByStudent(rows)
	if len(order) != 2 || order[0] != 3 || order[1] != 1 {
		t.Errorf("order: got %v, want [3 1]", order)
	}
	if len(byStudent[3]) != 2 || len(byStudent[1]) != 1 {
		t.Errorf("grouping wrong: %v", byStudent)
	}
}
