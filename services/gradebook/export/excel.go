// Package export renders report rows into a downloadable xlsx stream. Pure
// formatting; the usecase decides what goes into the report.
package export

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"gradebook/domain"
)

type excelExporter struct{}

func NewExcelExporter() domain.ReportExporter {
	return &excelExporter{}
}

// ClassReportSheet writes one row per student: name, one column per subject
// average, overall average and attendance percentage. Subject columns are
// the union over all students, sorted by name, blank where a student has no
// grades in that subject.
func (e *excelExporter) ClassReportSheet(report *domain.ClassReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	subjectSet := make(map[string]bool)
	for _, student := range report.Students {
		for _, subject := range student.Subjects {
			subjectSet[subject.SubjectName] = true
		}
	}
	subjects := make([]string, 0, len(subjectSet))
	for name := range subjectSet {
		subjects = append(subjects, name)
	}
	sort.Strings(subjects)

	headers := append([]string{"Student"}, subjects...)
	headers = append(headers, "Overall Average", "Attendance %")
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("could not build header cell: %v", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("could not write header: %v", err)
		}
	}

	for rowIdx, student := range report.Students {
		row := rowIdx + 2

		averages := make(map[string]float64, len(student.Subjects))
		for _, subject := range student.Subjects {
			averages[subject.SubjectName] = subject.Average
		}

		setCell := func(col int, value interface{}) error {
			cell, err := excelize.CoordinatesToCellName(col, row)
			if err != nil {
				return err
			}
			return f.SetCellValue(sheet, cell, value)
		}

		if err := setCell(1, student.StudentName); err != nil {
			return nil, fmt.Errorf("could not write student row: %v", err)
		}
		for i, name := range subjects {
			if avg, ok := averages[name]; ok {
				if err := setCell(i+2, avg); err != nil {
					return nil, fmt.Errorf("could not write student row: %v", err)
				}
			}
		}
		if err := setCell(len(subjects)+2, student.OverallAverage); err != nil {
			return nil, fmt.Errorf("could not write student row: %v", err)
		}
		if err := setCell(len(subjects)+3, student.Attendance.Percentage); err != nil {
			return nil, fmt.Errorf("could not write student row: %v", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("could not serialize workbook: %v", err)
	}

	return buf.Bytes(), nil
}
