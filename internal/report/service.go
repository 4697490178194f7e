package report

import (
	"log/slog"
	"time"

	apperrors "github.com/smartexpense/expense-tracker/internal"
	"github.com/smartexpense/expense-tracker/internal/expense"
)

// Service produces weekly reports from the expense store and hands exports
// to the configured exporter.
type Service struct {
	repo     expense.Repository
	exporter Exporter
	logger   *slog.Logger
}

func NewService(repo expense.Repository, exporter Exporter, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		exporter: exporter,
		logger:   logger,
	}
}

// WeeklyReport builds the report for the current week.
func (s *Service) WeeklyReport() (*WeeklyReport, error) {
	expenses, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to load expenses for report", "error", err)
		return nil, apperrors.NewStorageError("Failed to load report data", err)
	}

	rep := Weekly(expenses, time.Now())

	s.logger.Info("weekly report generated",
		"week_start", rep.StartOfWeek,
		"total_amount", rep.TotalAmount,
		"categories", len(rep.CategoryData))

	return &rep, nil
}

// Export builds the current weekly report and submits it for export.
func (s *Service) Export(format ExportFormat) (*ExportResult, error) {
	rep, err := s.WeeklyReport()
	if err != nil {
		return nil, err
	}

	result, err := s.exporter.Export(rep, format)
	if err != nil {
		s.logger.Error("report export failed", "error", err, "format", string(format))
		return nil, err
	}

	return result, nil
}
