package bulletin

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExportXLSX returns the bulletin as an XLSX workbook: one sheet of notices,
// one of extraction issues.
func (b Bulletin) ExportXLSX() ([]byte, error) {
	f := excelize.NewFile()

	const noticesSheet = "Notices"
	if index, _ := f.GetSheetIndex(noticesSheet); index == -1 {
		if _, err := f.NewSheet(noticesSheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(noticesSheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Notice Number",
		"Gazette Number",
		"Publication Date",
		"Major Type",
		"Minor Type",
		"Page",
		"ISSN",
		"Summary",
		"Citation",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(noticesSheet, cell, h)
	}

	for row, n := range b.Notices {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row+2)
			_ = f.SetCellValue(noticesSheet, cell, v)
		}
		write(1, n.NoticeNumber)
		write(2, n.GazetteNumber)
		write(3, fmt.Sprintf("%d %s %d", n.PublishDay, n.PublishMonthName, n.PublishYear))
		write(4, string(n.MajorType))
		write(5, n.MinorType)
		if n.PageNumber != nil {
			write(6, *n.PageNumber)
		}
		if n.ISSN != nil {
			write(7, *n.ISSN)
		}
		write(8, n.Description)
		write(9, Citation(n))
	}

	if err := writeIssuesSheet(f, b.Issues); err != nil {
		return nil, err
	}

	// Drop the default sheet excelize creates alongside ours.
	if index, _ := f.GetSheetIndex("Sheet1"); index != -1 {
		_ = f.DeleteSheet("Sheet1")
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeIssuesSheet(f *excelize.File, issues []Issue) error {
	const sheet = "Issues"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	for i, h := range []string{"Gazette Number", "Notice Number", "Reason"} {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}
	for row, issue := range issues {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, issue.GazetteNumber)
		write(2, issue.NoticeNumber)
		write(3, issue.Reason)
	}
	return nil
}
