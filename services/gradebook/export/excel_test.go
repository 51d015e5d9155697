package export

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"gradebook/domain"
)

func TestClassReportSheet(t *testing.T) {
	report := &domain.ClassReport{
		ClassID:   1,
		ClassName: "10A",
		Students: []domain.StudentReportRow{
			{
				StudentID:   1,
				StudentName: "Ana",
				Subjects: []domain.SubjectAverage{
					{SubjectName: "Math", Average: 85},
					{SubjectName: "Biology", Average: 90},
				},
				OverallAverage: 87.5,
				Attendance:     domain.AttendanceSummary{Present: 8, Total: 10, Percentage: 80},
			},
			{
				StudentID:   2,
				StudentName: "Budi",
				Subjects: []domain.SubjectAverage{
					{SubjectName: "Math", Average: 70},
				},
				OverallAverage: 70,
				Attendance:     domain.AttendanceSummary{Present: 10, Total: 10, Percentage: 100},
			},
		},
	}

	data, err := NewExcelExporter().ClassReportSheet(report)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a readable workbook: %v", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		t.Fatalf("could not read rows: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3 (header + 2 students)", len(rows))
	}

	// Subject columns are sorted: Biology before Math.
	wantHeader := []string{"Student", "Biology", "Math", "Overall Average", "Attendance %"}
	for i, want := range wantHeader {
		if rows[0][i] != want {
			t.Errorf("header[%d]: got %q, want %q", i, rows[0][i], want)
		}
	}

	if rows[1][0] != "Ana" || rows[2][0] != "Budi" {
		t.Errorf("student order wrong: %v / %v", rows[1], rows[2])
	}
	// Budi has no Biology grade; that cell stays blank.
	if len(rows[2]) > 1 && rows[2][1] != "" {
		t.Errorf("expected blank Biology cell for Budi, got %q", rows[2][1])
	}
}

func TestClassReportSheetEmpty(t *testing.T) {
	data, err := NewExcelExporter().ClassReportSheet(&domain.ClassReport{ClassName: "10A"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := excelize.OpenReader(bytes.NewReader(data)); err != nil {
		t.Errorf("empty report must still be a valid workbook: %v", err)
	}
}
