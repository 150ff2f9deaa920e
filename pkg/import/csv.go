package importpkg

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/jfmartinez/leadpilot/ent"
	"github.com/jfmartinez/leadpilot/ent/lead"
	"github.com/jfmartinez/leadpilot/pkg/leads"
	"github.com/jfmartinez/leadpilot/pkg/lifecycle"
	"github.com/jfmartinez/leadpilot/pkg/models"
)

// Service handles bulk import of leads from CSV
type Service struct {
	client      *ent.Client
	leadService *leads.Service
}

// NewService creates a new CSV import service
func NewService(client *ent.Client, leadService *leads.Service) *Service {
	return &Service{
		client:      client,
		leadService: leadService,
	}
}

// Result holds the outcome of a CSV import operation
type Result struct {
	TotalRows    int        `json:"total_rows"`
	SuccessCount int        `json:"success_count"`
	SkippedCount int        `json:"skipped_count"`
	FailureCount int        `json:"failure_count"`
	Errors       []RowError `json:"errors,omitempty"`
	Duration     string     `json:"duration"`
}

// RowError describes why a single row was rejected
type RowError struct {
	Row     int    `json:"row"`
	Field   string `json:"field,omitempty"`
	Value   string `json:"value,omitempty"`
	Message string `json:"message"`
}

// Config holds configuration for CSV import
type Config struct {
	MaxRows      int  // Maximum rows to import (0 = unlimited)
	ValidateOnly bool // Only validate, don't import
}

// DefaultConfig returns the default import configuration
func DefaultConfig() Config {
	return Config{
		MaxRows: 10000,
	}
}

// RequiredFields defines the required CSV columns
var RequiredFields = []string{
	"name",
	"email",
}

// OptionalFields defines optional CSV columns
var OptionalFields = []string{
	"company",
	"phone",
	"stage",
	"source",
	"owner",
	"probability",
	"revenue",
	"notes",
}

var validSources = map[string]bool{
	"website": true, "linkedin": true, "referral": true, "email": true,
	"instagram": true, "meta_ads": true, "google_ads": true, "other": true,
}

// ImportFromCSV reads leads from r and inserts them through the lead service.
// Rows whose email already exists are skipped, not treated as failures.
func (s *Service) ImportFromCSV(ctx context.Context, r io.Reader, config Config) (*Result, error) {
	startTime := time.Now()

	result := &Result{
		Errors: []RowError{},
	}

	csvReader := csv.NewReader(r)
	csvReader.TrimLeadingSpace = true
	csvReader.FieldsPerRecord = -1

	headers, err := csvReader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	headerMap := make(map[string]int)
	for i, header := range headers {
		headerMap[strings.ToLower(strings.TrimSpace(header))] = i
	}

	for _, field := range RequiredFields {
		if _, ok := headerMap[field]; !ok {
			return nil, fmt.Errorf("missing required column: %s", field)
		}
	}

	log.Printf("✅ CSV headers validated: %v", headers)

	rowNum := 1
	for {
		if config.MaxRows > 0 && rowNum > config.MaxRows {
			log.Printf("⚠️  Reached max rows limit: %d", config.MaxRows)
			break
		}

		row, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.Errors = append(result.Errors, RowError{
				Row:     rowNum,
				Message: fmt.Sprintf("CSV read error: %v", err),
			})
			result.FailureCount++
			rowNum++
			continue
		}

		result.TotalRows++

		req, rowErr := parseRow(row, headerMap, rowNum)
		if rowErr != nil {
			result.Errors = append(result.Errors, *rowErr)
			result.FailureCount++
			rowNum++
			continue
		}

		// Existing email means the lead is already in the pipeline.
		email := strings.ToLower(strings.TrimSpace(req.Email))
		exists, err := s.client.Lead.Query().
			Where(lead.EmailEQ(email)).
			Exist(ctx)
		if err != nil {
			result.Errors = append(result.Errors, RowError{
				Row:     rowNum,
				Message: fmt.Sprintf("Lookup failed: %v", err),
			})
			result.FailureCount++
			rowNum++
			continue
		}
		if exists {
			result.SkippedCount++
			rowNum++
			continue
		}

		if config.ValidateOnly {
			result.SuccessCount++
			rowNum++
			continue
		}

		if _, err := s.leadService.Create(ctx, *req); err != nil {
			result.Errors = append(result.Errors, RowError{
				Row:     rowNum,
				Message: fmt.Sprintf("Failed to create lead: %v", err),
			})
			result.FailureCount++
			rowNum++
			continue
		}

		result.SuccessCount++
		rowNum++
	}

	result.Duration = time.Since(startTime).String()

	log.Printf("✅ CSV import completed: %d imported, %d skipped, %d failed in %s",
		result.SuccessCount, result.SkippedCount, result.FailureCount, result.Duration)

	return result, nil
}

// parseRow parses and validates a CSV row into a lead create request
func parseRow(row []string, headerMap map[string]int, rowNum int) (*models.LeadCreateRequest, *RowError) {
	getField := func(fieldName string) string {
		if idx, ok := headerMap[fieldName]; ok && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	req := &models.LeadCreateRequest{
		Name:    getField("name"),
		Email:   getField("email"),
		Company: getField("company"),
		Phone:   getField("phone"),
		Stage:   getField("stage"),
		Source:  getField("source"),
		Owner:   getField("owner"),
		Notes:   getField("notes"),
	}

	if req.Name == "" {
		return nil, &RowError{Row: rowNum, Field: "name", Message: "Name is required"}
	}
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		return nil, &RowError{Row: rowNum, Field: "email", Value: req.Email, Message: "A valid email is required"}
	}
	if req.Stage != "" && !lifecycle.Stage(req.Stage).Valid() {
		return nil, &RowError{Row: rowNum, Field: "stage", Value: req.Stage, Message: "Invalid stage"}
	}
	if req.Source != "" && !validSources[req.Source] {
		return nil, &RowError{Row: rowNum, Field: "source", Value: req.Source, Message: "Invalid source"}
	}

	if raw := getField("probability"); raw != "" {
		probability, err := strconv.Atoi(raw)
		if err != nil || probability < 0 || probability > 100 {
			return nil, &RowError{Row: rowNum, Field: "probability", Value: raw, Message: "Probability must be an integer between 0 and 100"}
		}
		req.ConversionProbability = &probability
	}
	if raw := getField("revenue"); raw != "" {
		revenue, err := strconv.ParseFloat(raw, 64)
		if err != nil || revenue < 0 {
			return nil, &RowError{Row: rowNum, Field: "revenue", Value: raw, Message: "Revenue must be a non-negative number"}
		}
		req.Revenue = &revenue
	}

	return req, nil
}
