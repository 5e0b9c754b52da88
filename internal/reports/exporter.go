package reports

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/samajconnect/portal-backend/internal/member"
)

const (
	FormatCSV   = "csv"
	FormatExcel = "excel"
	FormatPDF   = "pdf"
)

// Exporter renders the member directory in downloadable formats.
type Exporter interface {
	ExportMembers(format string, members []member.Member) ([]byte, string, string, error)
}

type exporter struct{}

func NewExporter() Exporter {
	return &exporter{}
}

// ExportMembers returns the file bytes, a timestamped filename and the
// content type for the requested format.
func (e *exporter) ExportMembers(format string, members []member.Member) ([]byte, string, string, error) {
	timestamp := time.Now().Format("20060102_150405")

	switch format {
	case FormatCSV:
		data, err := e.exportMembersCSV(members)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("members_report_%s.csv", timestamp), "text/csv", nil

	case FormatExcel:
		data, err := e.exportMembersExcel(members)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("members_report_%s.xlsx", timestamp), "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", nil

	case FormatPDF:
		data, err := e.exportMembersPDF(members)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("members_report_%s.pdf", timestamp), "application/pdf", nil

	default:
		return nil, "", "", fmt.Errorf("unsupported format: %s", format)
	}
}

var memberHeaders = []string{
	"ID", "Family Head Name", "Name", "Firm Name", "Firm City", "City",
	"State", "Business", "Gotra", "Mobile", "Email", "Total Members", "Status",
}

func memberRecord(m member.Member) []string {
	return []string{
		strconv.FormatUint(uint64(m.ID), 10),
		m.FamilyHeadName,
		m.Name,
		m.FirmFullName,
		m.FirmCity,
		m.City,
		m.State,
		m.Business,
		m.Gotra,
		m.MobileNo1,
		m.Email,
		strconv.Itoa(m.TotalMembers),
		m.Status,
	}
}

func (e *exporter) exportMembersCSV(members []member.Member) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(memberHeaders); err != nil {
		return nil, err
	}
	for _, m := range members {
		if err := w.Write(memberRecord(m)); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *exporter) exportMembersExcel(members []member.Member) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "Members"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	for i, h := range memberHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(sheet, cell, h)
	}

	for rIdx, m := range members {
		record := memberRecord(m)
		for cIdx, value := range record {
			cell, err := excelize.CoordinatesToCellName(cIdx+1, rIdx+2)
			if err != nil {
				return nil, err
			}
			f.SetCellValue(sheet, cell, value)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *exporter) exportMembersPDF(members []member.Member) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(40, 10, "Member Directory Report")
	pdf.Ln(10)

	headers := []string{"ID", "Family Head", "Firm Name", "City", "State", "Business", "Mobile", "Members"}
	widths := []float64{14, 55, 55, 30, 30, 40, 30, 18}

	pdf.SetFont("Arial", "B", 9)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	for _, m := range members {
		pdf.CellFormat(widths[0], 6, strconv.FormatUint(uint64(m.ID), 10), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[1], 6, m.FamilyHeadName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 6, m.FirmFullName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[3], 6, m.City, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[4], 6, m.State, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[5], 6, m.Business, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[6], 6, m.MobileNo1, "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[7], 6, strconv.Itoa(m.TotalMembers), "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
