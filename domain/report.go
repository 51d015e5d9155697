package domain

import "context"

type SubjectAverage struct {
	SubjectName string  `json:"subject_name"`
	Average     float64 `json:"average"`
	Count       int     `json:"count"`
}

type AttendanceSummary struct {
	Present    int     `json:"present"`
	Sick       int     `json:"sick"`
	Excused    int     `json:"excused"`
	Absent     int     `json:"absent"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

type StudentReportRow struct {
	StudentID      int               `json:"student_id"`
	StudentName    string            `json:"student_name"`
	Subjects       []SubjectAverage  `json:"subjects"`
	OverallAverage float64           `json:"overall_average"`
	Attendance     AttendanceSummary `json:"attendance"`
}

type ClassReport struct {
	ClassID      int                `json:"class_id"`
	ClassName    string             `json:"class_name"`
	SemesterID   int                `json:"semester_id"`
	SemesterName string             `json:"semester_name"`
	Students     []StudentReportRow `json:"students"`
}

type LeaderboardEntry struct {
	StudentID   int     `json:"student_id"`
	StudentName string  `json:"student_name"`
	Average     float64 `json:"average"`
}

type SubjectBreakdown struct {
	SubjectName string     `json:"subject_name"`
	Grades      []GradeRow `json:"grades"`
	Average     float64    `json:"average"`
}

type StudentGradeReport struct {
	StudentID      int                `json:"student_id"`
	SemesterID     int                `json:"semester_id"`
	Subjects       []SubjectBreakdown `json:"subjects"`
	OverallAverage float64            `json:"overall_average"`
}

// AIComment is the narrative produced by the external model for one student.
type AIComment struct {
	Summary             string `json:"summary"`
	Strengths           string `json:"strengths"`
	AreasForImprovement string `json:"areas_for_improvement"`
	Recommendation      string `json:"recommendation"`
}

// CommentGenerator is the outbound AI collaborator. Failures surface as a
// single generic error to the caller, no retry.
type CommentGenerator interface {
	GenerateComment(ctx context.Context, studentName, gradeSummary string) (*AIComment, error)
}

// ReportExporter turns a class report into a downloadable spreadsheet.
type ReportExporter interface {
	ClassReportSheet(report *ClassReport) ([]byte, error)
}

type ReportUseCase interface {
	GetClassReport(ctx context.Context, homeroomTeacherID int) (*ClassReport, error)
	GetTopStudents(ctx context.Context, homeroomTeacherID, n int) (*[]LeaderboardEntry, error)
	GetClassSubjectAverages(ctx context.Context, homeroomTeacherID int) (*[]SubjectAverage, error)
	GenerateStudentComment(ctx context.Context, homeroomTeacherID, studentID int) (*AIComment, error)
	ExportClassReport(ctx context.Context, homeroomTeacherID int) ([]byte, string, error)
	GetStudentGrades(ctx context.Context, studentID int, semesterID *int) (*StudentGradeReport, error)
	GetStudentAttendance(ctx context.Context, studentID int) (*AttendanceSummary, error)
}
