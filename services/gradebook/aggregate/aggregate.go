// Package aggregate holds the pure grade and attendance arithmetic used by
// the report endpoints. Functions never error on empty input; they return
// zero-valued summaries and leave semester/class scoping to the caller.
package aggregate

import (
	"math"
	"sort"

	"gradebook/domain"
)

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// SubjectAverage is the arithmetic mean of the scores, 0 for no records.
func SubjectAverage(records []domain.GradeRow) float64 {
	if len(records) == 0 {
		return 0
	}
	var sum float64
	for _, r := range records {
		sum += r.Score
	}
	return round2(sum / float64(len(records)))
}

// StudentOverallAverage is the two-level average: group by subject, average
// the per-subject averages. A subject with one final counts the same as a
// subject with ten quizzes.
func StudentOverallAverage(records []domain.GradeRow) float64 {
	if len(records) == 0 {
		return 0
	}
	bySubject := make(map[string][]domain.GradeRow)
	for _, r := range records {
		bySubject[r.SubjectName] = append(bySubject[r.SubjectName], r)
	}
	var sum float64
	for _, rows := range bySubject {
		sum += SubjectAverage(rows)
	}
	return round2(sum / float64(len(bySubject)))
}

// ClassSubjectAverages groups by subject name and averages each group.
// Subjects with no records simply do not appear; nothing is zero-filled.
func ClassSubjectAverages(records []domain.GradeRow) []domain.SubjectAverage {
	bySubject := make(map[string][]domain.GradeRow)
	for _, r := range records {
		bySubject[r.SubjectName] = append(bySubject[r.SubjectName], r)
	}
	out := make([]domain.SubjectAverage, 0, len(bySubject))
	for name, rows := range bySubject {
		out = append(out, domain.SubjectAverage{
			SubjectName: name,
			Average:     SubjectAverage(rows),
			Count:       len(rows),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SubjectName < out[j].SubjectName })
	return out
}

// AttendanceSummary tallies the four statuses and computes present/total.
// With no rows at all the percentage is 0, uniformly across call sites.
func AttendanceSummary(records []domain.AttendanceRow) domain.AttendanceSummary {
	var s domain.AttendanceSummary
	for _, r := range records {
		switch r.Status {
		case domain.AttendancePresent:
			s.Present++
		case domain.AttendanceSick:
			s.Sick++
		case domain.AttendanceExcused:
			s.Excused++
		case domain.AttendanceAbsent:
			s.Absent++
		}
	}
	s.Total = s.Present + s.Sick + s.Excused + s.Absent
	if s.Total > 0 {
		s.Percentage = round2(float64(s.Present) / float64(s.Total) * 100)
	}
	return s
}

// TopStudents ranks students by the flat mean of all their scores. This is
// deliberately not the two-level average used on the per-student dashboard;
// the leaderboard has always been a plain mean and the two stay distinct.
// Ties break by student name ascending so output order is reproducible.
func TopStudents(records []domain.GradeRow, n int) []domain.LeaderboardEntry {
	if n <= 0 {
		return []domain.LeaderboardEntry{}
	}
	type acc struct {
		name  string
		sum   float64
		count int
	}
	byStudent := make(map[int]*acc)
	order := make([]int, 0)
	for _, r := range records {
		a, ok := byStudent[r.StudentID]
		if !ok {
			a = &acc{name: r.StudentName}
			byStudent[r.StudentID] = a
			order = append(order, r.StudentID)
		}
		a.sum += r.Score
		a.count++
	}
	entries := make([]domain.LeaderboardEntry, 0, len(order))
	for _, id := range order {
		a := byStudent[id]
		entries = append(entries, domain.LeaderboardEntry{
			StudentID:   id,
			StudentName: a.name,
			Average:     round2(a.sum / float64(a.count)),
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Average != entries[j].Average {
			return entries[i].Average > entries[j].Average
		}
		return entries[i].StudentName < entries[j].StudentName
	})
	if n < len(entries) {
		entries = entries[:n]
	}
	return entries
}

// SubjectBreakdowns groups a student's rows per subject with the rows kept,
// for the student-facing grade page.
func SubjectBreakdowns(records []domain.GradeRow) []domain.SubjectBreakdown {
	bySubject := make(map[string][]domain.GradeRow)
	for _, r := range records {
		bySubject[r.SubjectName] = append(bySubject[r.SubjectName], r)
	}
	out := make([]domain.SubjectBreakdown, 0, len(bySubject))
	for name, rows := range bySubject {
		out = append(out, domain.SubjectBreakdown{
			SubjectName: name,
			Grades:      rows,
			Average:     SubjectAverage(rows),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SubjectName < out[j].SubjectName })
	return out
}

// GroupByStudent splits class-wide rows into per-student slices preserving
// first-seen order of students.
func GroupByStudent(records []domain.GradeRow) (map[int][]domain.GradeRow, []int) {
	byStudent := make(map[int][]domain.GradeRow)
	order := make([]int, 0)
	for _, r := range records {
		if _, ok := byStudent[r.StudentID]; !ok {
			order = append(order, r.StudentID)
		}
		byStudent[r.StudentID] = append(byStudent[r.StudentID], r)
	}
	return byStudent, order
}

// GroupAttendanceByStudent does the same for attendance rows.
func GroupAttendanceByStudent(records []domain.AttendanceRow) map[int][]domain.AttendanceRow {
	byStudent := make(map[int][]domain.AttendanceRow)
	for _, r := range records {
		byStudent[r.StudentID] = append(byStudent[r.StudentID], r)
	}
	return byStudent
}
