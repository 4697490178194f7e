package report

import (
	"fmt"
	"log/slog"

	apperrors "github.com/smartexpense/expense-tracker/internal"
	"github.com/google/uuid"
)

type ExportFormat string

const (
	FormatPDF ExportFormat = "pdf"
	FormatCSV ExportFormat = "csv"
)

// ExportResult is what the report screen shows after an export: a job id and
// a user-facing status message.
type ExportResult struct {
	JobID   string       `json:"job_id"`
	Format  ExportFormat `json:"format"`
	Message string       `json:"message"`
}

// Exporter hands a finished report off for document generation. Byte-level
// PDF/CSV rendering lives outside this service.
type Exporter interface {
	Export(report *WeeklyReport, format ExportFormat) (*ExportResult, error)
}

// StubExporter acknowledges export requests without generating documents,
// matching the app's simulated export flow.
type StubExporter struct {
	logger *slog.Logger
}

func NewStubExporter(logger *slog.Logger) *StubExporter {
	return &StubExporter{logger: logger}
}

func (e *StubExporter) Export(report *WeeklyReport, format ExportFormat) (*ExportResult, error) {
	jobID := uuid.NewString()

	var message string
	switch format {
	case FormatPDF:
		message = "PDF exported successfully! Saved to Downloads/expense_report.pdf"
	case FormatCSV:
		message = "CSV exported successfully! Saved to Downloads/expense_report.csv"
	default:
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("unsupported export format %q", format),
			apperrors.ErrCodeInvalidExport)
	}

	e.logger.Info("report export requested",
		"job_id", jobID,
		"format", string(format),
		"week_start", report.StartOfWeek,
		"total_amount", report.TotalAmount)

	return &ExportResult{JobID: jobID, Format: format, Message: message}, nil
}
