package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gradebook/domain"
	"gradebook/services/gradebook/aggregate"
)

type reportUC struct {
	classRepo      domain.ClassRepo
	semesterRepo   domain.SemesterRepo
	gradeRepo      domain.GradeRepo
	attendanceRepo domain.AttendanceRepo
	enrollmentRepo domain.EnrollmentRepo
	settingRepo    domain.SettingRepo
	commentGen     domain.CommentGenerator
	exporter       domain.ReportExporter
	TimeOut        time.Duration
	AITimeOut      time.Duration
}

func NewReportUseCase(
	classRepo domain.ClassRepo,
	semesterRepo domain.SemesterRepo,
	gradeRepo domain.GradeRepo,
	attendanceRepo domain.AttendanceRepo,
	enrollmentRepo domain.EnrollmentRepo,
	settingRepo domain.SettingRepo,
	commentGen domain.CommentGenerator,
	exporter domain.ReportExporter,
	timeOut time.Duration,
	aiTimeOut time.Duration,
) domain.ReportUseCase {
	return &reportUC{
		classRepo:      classRepo,
		semesterRepo:   semesterRepo,
		gradeRepo:      gradeRepo,
		attendanceRepo: attendanceRepo,
		enrollmentRepo: enrollmentRepo,
		settingRepo:    settingRepo,
		commentGen:     commentGen,
		exporter:       exporter,
		TimeOut:        timeOut,
		AITimeOut:      aiTimeOut,
	}
}

// homeroomScope resolves the caller's homeroom class and the active
// semester; every homeroom report starts here.
func (rUC *reportUC) homeroomScope(ctx context.Context, teacherID int) (*domain.Class, int, error) {
	class, err := rUC.classRepo.GetHomeroomClass(ctx, teacherID)
	if err != nil {
		return nil, 0, err
	}

	semesterID, err := activeSemester(ctx, rUC.settingRepo)
	if err != nil {
		return nil, 0, err
	}

	return class, semesterID, nil
}

func (rUC *reportUC) GetClassReport(ctx context.Context, homeroomTeacherID int) (*domain.ClassReport, error) {
	ctx, cancel := context.WithTimeout(ctx, rUC.TimeOut)
	defer cancel()

	class, semesterID, err := rUC.homeroomScope(ctx, homeroomTeacherID)
	if err != nil {
		return nil, err
	}

	semester, err := rUC.semesterRepo.GetSemesterByID(ctx, semesterID)
	if err != nil {
		return nil, err
	}

	roster, err := rUC.enrollmentRepo.GetClassRoster(ctx, class.ClassID)
	if err != nil {
		return nil, err
	}

	grades, err := rUC.gradeRepo.GetGradesByClass(ctx, class.ClassID, semesterID)
	if err != nil {
		return nil, err
	}

	attendance, err := rUC.attendanceRepo.GetAttendanceByClass(ctx, class.ClassID, semesterID)
	if err != nil {
		return nil, err
	}

	gradesByStudent, _ := aggregate.GroupByStudent(*grades)
	attendanceByStudent := aggregate.GroupAttendanceByStudent(*attendance)

	report := &domain.ClassReport{
		ClassID:      class.ClassID,
		ClassName:    class.Name,
		SemesterID:   semester.SemesterID,
		SemesterName: semester.Name,
		Students:     make([]domain.StudentReportRow, 0, len(*roster)),
	}

	// Every rostered student gets a row, graded or not.
	for _, entry := range *roster {
		studentGrades := gradesByStudent[entry.StudentID]
		report.Students = append(report.Students, domain.StudentReportRow{
			StudentID:      entry.StudentID,
			StudentName:    entry.StudentName,
			Subjects:       aggregate.ClassSubjectAverages(studentGrades),
			OverallAverage: aggregate.StudentOverallAverage(studentGrades),
			Attendance:     aggregate.AttendanceSummary(attendanceByStudent[entry.StudentID]),
		})
	}

	return report, nil
}

func (rUC *reportUC) GetTopStudents(ctx context.Context, homeroomTeacherID, n int) (*[]domain.LeaderboardEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, rUC.TimeOut)
	defer cancel()

	class, semesterID, err := rUC.homeroomScope(ctx, homeroomTeacherID)
	if err != nil {
		return nil, err
	}

	grades, err := rUC.gradeRepo.GetGradesByClass(ctx, class.ClassID, semesterID)
	if err != nil {
		return nil, err
	}

	entries := aggregate.TopStudents(*grades, n)
	return &entries, nil
}

func (rUC *reportUC) GetClassSubjectAverages(ctx context.Context, homeroomTeacherID int) (*[]domain.SubjectAverage, error) {
	ctx, cancel := context.WithTimeout(ctx, rUC.TimeOut)
	defer cancel()

	class, semesterID, err := rUC.homeroomScope(ctx, homeroomTeacherID)
	if err != nil {
		return nil, err
	}

	grades, err := rUC.gradeRepo.GetGradesByClass(ctx, class.ClassID, semesterID)
	if err != nil {
		return nil, err
	}

	averages := aggregate.ClassSubjectAverages(*grades)
	return &averages, nil
}

// gradeSummaryText flattens a student's averages into the prose block the
// model receives.
func gradeSummaryText(breakdowns []domain.SubjectBreakdown, overall float64) string {
	var b strings.Builder
	for _, subject := range breakdowns {
		fmt.Fprintf(&b, "%s: %.2f (%d assessments)\n", subject.SubjectName, subject.Average, len(subject.Grades))
	}
	fmt.Fprintf(&b, "Overall average: %.2f", overall)
	return b.String()
}

func (rUC *reportUC) GenerateStudentComment(ctx context.Context, homeroomTeacherID, studentID int) (*domain.AIComment, error) {
	scopeCtx, cancel := context.WithTimeout(ctx, rUC.TimeOut)
	defer cancel()

	class, semesterID, err := rUC.homeroomScope(scopeCtx, homeroomTeacherID)
	if err != nil {
		return nil, err
	}

	enrollment, err := rUC.enrollmentRepo.GetEnrollmentByStudent(scopeCtx, studentID)
	if err != nil {
		return nil, err
	}
	if enrollment.ClassID != class.ClassID {
		return nil, fmt.Errorf("student is not in this homeroom class")
	}

	grades, err := rUC.gradeRepo.GetGradesByStudent(scopeCtx, studentID, semesterID)
	if err != nil {
		return nil, err
	}

	studentName := ""
	if len(*grades) > 0 {
		studentName = (*grades)[0].StudentName
	}
	breakdowns := aggregate.SubjectBreakdowns(*grades)
	overall := aggregate.StudentOverallAverage(*grades)

	// The model call gets its own, much longer deadline.
	aiCtx, aiCancel := context.WithTimeout(ctx, rUC.AITimeOut)
	defer aiCancel()

	return rUC.commentGen.GenerateComment(aiCtx, studentName, gradeSummaryText(breakdowns, overall))
}

func (rUC *reportUC) ExportClassReport(ctx context.Context, homeroomTeacherID int) ([]byte, string, error) {
	report, err := rUC.GetClassReport(ctx, homeroomTeacherID)
	if err != nil {
		return nil, "", err
	}

	data, err := rUC.exporter.ClassReportSheet(report)
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("report_%s_%s.xlsx",
		strings.ReplaceAll(report.ClassName, " ", "_"),
		strings.ReplaceAll(report.SemesterName, " ", "_"))

	return data, filename, nil
}

func (rUC *reportUC) GetStudentGrades(ctx context.Context, studentID int, semesterID *int) (*domain.StudentGradeReport, error) {
	ctx, cancel := context.WithTimeout(ctx, rUC.TimeOut)
	defer cancel()

	var scope int
	if semesterID != nil {
		scope = *semesterID
	} else {
		active, err := activeSemester(ctx, rUC.settingRepo)
		if err != nil {
			return nil, err
		}
		scope = active
	}

	grades, err := rUC.gradeRepo.GetGradesByStudent(ctx, studentID, scope)
	if err != nil {
		return nil, err
	}

	return &domain.StudentGradeReport{
		StudentID:      studentID,
		SemesterID:     scope,
		Subjects:       aggregate.SubjectBreakdowns(*grades),
		OverallAverage: aggregate.StudentOverallAverage(*grades),
	}, nil
}

func (rUC *reportUC) GetStudentAttendance(ctx context.Context, studentID int) (*domain.AttendanceSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, rUC.TimeOut)
	defer cancel()

	semesterID, err := activeSemester(ctx, rUC.settingRepo)
	if err != nil {
		return nil, err
	}

	rows, err := rUC.attendanceRepo.GetAttendanceByStudent(ctx, studentID, semesterID)
	if err != nil {
		return nil, err
	}

	summary := aggregate.AttendanceSummary(*rows)
	return &summary, nil
}
