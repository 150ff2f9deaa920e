package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/jfmartinez/leadpilot/pkg/leads"
	"github.com/jfmartinez/leadpilot/pkg/models"
)

const (
	maxExportLeads = 10000
	exportPageSize = 200
)

// Service generates downloadable lead exports
type Service struct {
	leadService *leads.Service
}

// NewService creates a new export service
func NewService(leadService *leads.Service) *Service {
	return &Service{leadService: leadService}
}

// Export generates a lead export in the requested format (csv or excel) and
// returns the file bytes plus a suggested filename.
func (s *Service) Export(ctx context.Context, format string, filters models.LeadListRequest) ([]byte, string, error) {
	if format != "csv" && format != "excel" {
		return nil, "", fmt.Errorf("invalid format: must be csv or excel")
	}

	rows, err := s.collect(ctx, filters)
	if err != nil {
		return nil, "", err
	}

	timestamp := time.Now().Format("20060102-150405")
	if format == "csv" {
		data, err := s.generateCSV(rows)
		if err != nil {
			return nil, "", err
		}
		return data, fmt.Sprintf("leads-%s.csv", timestamp), nil
	}

	data, err := s.generateExcel(rows)
	if err != nil {
		return nil, "", err
	}
	return data, fmt.Sprintf("leads-%s.xlsx", timestamp), nil
}

// collect pages through the filtered lead list up to maxExportLeads rows.
func (s *Service) collect(ctx context.Context, filters models.LeadListRequest) ([]models.LeadResponse, error) {
	filters.Limit = exportPageSize

	var rows []models.LeadResponse
	for page := 1; len(rows) < maxExportLeads; page++ {
		filters.Page = page
		results, err := s.leadService.List(ctx, filters)
		if err != nil {
			return nil, fmt.Errorf("failed to load leads: %w", err)
		}
		rows = append(rows, results.Data...)
		if !results.Pagination.HasNext {
			break
		}
	}
	if len(rows) > maxExportLeads {
		rows = rows[:maxExportLeads]
	}
	return rows, nil
}

var exportHeaders = []string{
	"ID", "Name", "Email", "Company", "Phone", "Stage", "Source", "Owner",
	"Probability", "Revenue", "Archived", "Last Contacted", "Converted At",
	"Created At",
}

func exportRow(lead models.LeadResponse) []string {
	revenue := ""
	if lead.Revenue != nil {
		revenue = fmt.Sprintf("%.2f", *lead.Revenue)
	}
	return []string{
		strconv.Itoa(lead.ID),
		lead.Name,
		lead.Email,
		lead.Company,
		lead.Phone,
		lead.Stage,
		lead.Source,
		lead.Owner,
		strconv.Itoa(lead.ConversionProbability),
		revenue,
		strconv.FormatBool(lead.Archived),
		formatTime(lead.LastContacted),
		formatTime(lead.ConvertedAt),
		lead.CreatedAt.Format(time.RFC3339),
	}
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}

// generateCSV generates CSV bytes from leads
func (s *Service) generateCSV(leads []models.LeadResponse) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(exportHeaders); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for _, lead := range leads {
		if err := writer.Write(exportRow(lead)); err != nil {
			return nil, fmt.Errorf("failed to write row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// generateExcel generates an Excel workbook from leads
func (s *Service) generateExcel(leads []models.LeadResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Leads"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create style: %w", err)
	}

	for i, header := range exportHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for rowIdx, lead := range leads {
		row := rowIdx + 2 // Start from row 2 (after header)
		for colIdx, value := range exportRow(lead) {
			cell := fmt.Sprintf("%c%d", 'A'+colIdx, row)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	for i := 0; i < len(exportHeaders); i++ {
		col := string(rune('A' + i))
		f.SetColWidth(sheetName, col, col, 15)
	}

	f.SetActiveSheet(index)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
