package report_test

import (
	"errors"
	"log/slog"
	"os"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	apperrors "github.com/smartexpense/expense-tracker/internal"
	"github.com/smartexpense/expense-tracker/internal/expense"
	"github.com/smartexpense/expense-tracker/internal/report"
)

// Mock repository backed by a fixed slice
type mockRepository struct {
	expenses    []*expense.Expense
	getAllError error
}

func (m *mockRepository) Create(exp *expense.Expense) error            { return nil }
func (m *mockRepository) GetByID(id int64) (*expense.Expense, error)   { return nil, apperrors.ErrExpenseNotFound }
func (m *mockRepository) Update(exp *expense.Expense) error            { return nil }
func (m *mockRepository) Delete(id int64) error                        { return nil }

func (m *mockRepository) GetAll() ([]*expense.Expense, error) {
	if m.getAllError != nil {
		return nil, m.getAllError
	}
	return m.expenses, nil
}

var _ = Describe("ReportService", func() {
	var (
		service  *report.Service
		mockRepo *mockRepository
		logger   *slog.Logger
	)

	BeforeEach(func() {
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		mockRepo = &mockRepository{}
		service = report.NewService(mockRepo, report.NewStubExporter(logger), logger)
	})

	Describe("WeeklyReport", func() {
		It("should build the report over the stored collection", func() {
			mockRepo.expenses = []*expense.Expense{
				makeExpense(1, 450, "Food", time.Now()),
			}

			rep, err := service.WeeklyReport()

			Expect(err).ToNot(HaveOccurred())
			Expect(rep.TotalAmount).To(Equal(450.0))
			Expect(rep.DailyData).To(HaveLen(7))
		})

		It("should wrap store failures", func() {
			mockRepo.getAllError = errors.New("store gone")

			_, err := service.WeeklyReport()

			var appErr *apperrors.AppError
			Expect(errors.As(err, &appErr)).To(BeTrue())
			Expect(appErr.Type).To(Equal(apperrors.ErrorTypeStorage))
		})
	})

	Describe("Export", func() {
		It("should acknowledge a PDF export with a job id", func() {
			result, err := service.Export(report.FormatPDF)

			Expect(err).ToNot(HaveOccurred())
			Expect(result.JobID).NotTo(BeEmpty())
			Expect(result.Message).To(Equal("PDF exported successfully! Saved to Downloads/expense_report.pdf"))
		})

		It("should acknowledge a CSV export", func() {
			result, err := service.Export(report.FormatCSV)

			Expect(err).ToNot(HaveOccurred())
			Expect(result.Message).To(Equal("CSV exported successfully! Saved to Downloads/expense_report.csv"))
		})

		It("should reject an unknown format", func() {
			_, err := service.Export(report.ExportFormat("xlsx"))

			var appErr *apperrors.AppError
			Expect(errors.As(err, &appErr)).To(BeTrue())
			Expect(appErr.Code).To(Equal(apperrors.ErrCodeInvalidExport))
		})
	})
})
