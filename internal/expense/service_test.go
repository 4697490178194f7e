package expense_test

import (
	"errors"
	"log/slog"
	"os"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	apperrors "github.com/smartexpense/expense-tracker/internal"
	"github.com/smartexpense/expense-tracker/internal/expense"
)

// Mock repository for testing
type mockExpenseRepository struct {
	expenses    map[int64]*expense.Expense
	nextID      int64
	createError error
	getAllError error
	updateError error
	deleteError error
}

func newMockExpenseRepository() *mockExpenseRepository {
	return &mockExpenseRepository{
		expenses: make(map[int64]*expense.Expense),
		nextID:   1,
	}
}

func (m *mockExpenseRepository) Create(exp *expense.Expense) error {
	if m.createError != nil {
		return m.createError
	}
	exp.ID = m.nextID
	m.nextID++
	m.expenses[exp.ID] = exp
	return nil
}

func (m *mockExpenseRepository) GetByID(id int64) (*expense.Expense, error) {
	exp, exists := m.expenses[id]
	if !exists {
		return nil, apperrors.ErrExpenseNotFound
	}
	return exp, nil
}

func (m *mockExpenseRepository) GetAll() ([]*expense.Expense, error) {
	if m.getAllError != nil {
		return nil, m.getAllError
	}
	all := make([]*expense.Expense, 0, len(m.expenses))
	for _, exp := range m.expenses {
		all = append(all, exp)
	}
	return all, nil
}

func (m *mockExpenseRepository) Update(exp *expense.Expense) error {
	if m.updateError != nil {
		return m.updateError
	}
	if _, exists := m.expenses[exp.ID]; !exists {
		return apperrors.ErrExpenseNotFound
	}
	m.expenses[exp.ID] = exp
	return nil
}

func (m *mockExpenseRepository) Delete(id int64) error {
	if m.deleteError != nil {
		return m.deleteError
	}
	delete(m.expenses, id)
	return nil
}

var _ = Describe("ExpenseService", func() {
	var (
		service  *expense.Service
		mockRepo *mockExpenseRepository
		watcher  *expense.Watcher
		logger   *slog.Logger
	)

	BeforeEach(func() {
		mockRepo = newMockExpenseRepository()
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		watcher = expense.NewWatcher(logger)
		service = expense.NewService(mockRepo, watcher, logger)
	})

	Describe("CreateExpense", func() {
		It("should persist a valid expense", func() {
			dto := expense.CreateExpenseDTO{
				Amount:      450,
				Description: "Team lunch",
				Category:    "Food",
				Date:        time.Now().AddDate(0, 0, -1),
			}

			result, err := service.CreateExpense(dto)

			Expect(err).ToNot(HaveOccurred())
			Expect(result.ID).To(Equal(int64(1)))
			Expect(result.Amount).To(Equal(450.0))
			Expect(mockRepo.expenses).To(HaveLen(1))
		})

		It("should default a zero date to the current moment", func() {
			before := time.Now()
			result, err := service.CreateExpense(expense.CreateExpenseDTO{
				Amount:      100,
				Description: "Coffee",
				Category:    "Food",
			})

			Expect(err).ToNot(HaveOccurred())
			Expect(result.Date).To(BeTemporally(">=", before))
		})

		It("should reject a non-positive amount", func() {
			_, err := service.CreateExpense(expense.CreateExpenseDTO{
				Amount:      0,
				Description: "Coffee",
				Category:    "Food",
			})

			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("Please enter a valid amount greater than 0"))
			Expect(mockRepo.expenses).To(BeEmpty())
		})

		It("should reject a missing description", func() {
			_, err := service.CreateExpense(expense.CreateExpenseDTO{
				Amount:   100,
				Category: "Food",
			})

			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("Description is required"))
		})

		It("should wrap store failures", func() {
			mockRepo.createError = errors.New("disk full")

			_, err := service.CreateExpense(expense.CreateExpenseDTO{
				Amount:      100,
				Description: "Coffee",
				Category:    "Food",
			})

			var appErr *apperrors.AppError
			Expect(errors.As(err, &appErr)).To(BeTrue())
			Expect(appErr.Type).To(Equal(apperrors.ErrorTypeStorage))
		})

		It("should push a snapshot to subscribers", func() {
			sizes := make(chan int, 1)
			sub := watcher.Subscribe(func(snap expense.Snapshot) {
				sizes <- len(snap)
			})
			defer sub.Cancel()

			_, err := service.CreateExpense(expense.CreateExpenseDTO{
				Amount:      100,
				Description: "Coffee",
				Category:    "Food",
			})
			Expect(err).ToNot(HaveOccurred())

			Eventually(sizes).Should(Receive(Equal(1)))
		})
	})

	Describe("UpdateExpense", func() {
		var created *expense.Expense

		BeforeEach(func() {
			var err error
			created, err = service.CreateExpense(expense.CreateExpenseDTO{
				Amount:      100,
				Description: "Coffee",
				Category:    "Food",
				Date:        time.Now().AddDate(0, 0, -1),
			})
			Expect(err).ToNot(HaveOccurred())
		})

		It("should replace the record wholesale", func() {
			updated, err := service.UpdateExpense(created.ID, expense.UpdateExpenseDTO{
				Amount:      250,
				Description: "Dinner",
				Category:    "Food",
				Notes:       "team outing",
				Date:        time.Now(),
			})

			Expect(err).ToNot(HaveOccurred())
			Expect(updated.Amount).To(Equal(250.0))
			Expect(updated.Description).To(Equal("Dinner"))
			Expect(mockRepo.expenses[created.ID].Amount).To(Equal(250.0))
		})

		It("should preserve the creation timestamp", func() {
			updated, err := service.UpdateExpense(created.ID, expense.UpdateExpenseDTO{
				Amount:      250,
				Description: "Dinner",
				Category:    "Food",
				Date:        time.Now(),
			})

			Expect(err).ToNot(HaveOccurred())
			Expect(updated.CreatedAt).To(Equal(created.CreatedAt))
		})

		It("should report an unknown id instead of inserting", func() {
			_, err := service.UpdateExpense(9999, expense.UpdateExpenseDTO{
				Amount:      250,
				Description: "Dinner",
				Category:    "Food",
				Date:        time.Now(),
			})

			Expect(errors.Is(err, apperrors.ErrExpenseNotFound)).To(BeTrue())
		})

		It("should reject an invalid replacement before touching the store", func() {
			_, err := service.UpdateExpense(created.ID, expense.UpdateExpenseDTO{
				Amount:      -5,
				Description: "Dinner",
				Category:    "Food",
				Date:        time.Now(),
			})

			Expect(err).To(HaveOccurred())
			Expect(mockRepo.expenses[created.ID].Amount).To(Equal(100.0))
		})
	})

	Describe("DeleteExpense", func() {
		It("should remove the record", func() {
			created, err := service.CreateExpense(expense.CreateExpenseDTO{
				Amount:      100,
				Description: "Coffee",
				Category:    "Food",
			})
			Expect(err).ToNot(HaveOccurred())

			Expect(service.DeleteExpense(created.ID)).To(Succeed())
			Expect(mockRepo.expenses).To(BeEmpty())
		})

		It("should treat an absent id as already deleted", func() {
			Expect(service.DeleteExpense(9999)).To(Succeed())
		})
	})

	Describe("ListExpenses", func() {
		BeforeEach(func() {
			seed := []expense.CreateExpenseDTO{
				{Amount: 450, Description: "Lunch", Category: "Food", Date: time.Now().AddDate(0, 0, -1)},
				{Amount: 120, Description: "Coffee", Category: "Food", Date: time.Now().AddDate(0, 0, -2)},
				{Amount: 350, Description: "Taxi", Category: "Travel", Date: time.Now().AddDate(0, 0, -3)},
			}
			for _, dto := range seed {
				_, err := service.CreateExpense(dto)
				Expect(err).ToNot(HaveOccurred())
			}
		})

		It("should return filtered expenses with sections and summary", func() {
			result, err := service.ListExpenses(expense.ListQuery{
				Selector: expense.DateSelector{Range: expense.RangeAllTime},
				Category: expense.AllCategories,
				Mode:     expense.GroupByCategory,
			})

			Expect(err).ToNot(HaveOccurred())
			Expect(result.Expenses).To(HaveLen(3))
			Expect(result.Summary.Total).To(Equal(920.0))
			Expect(result.Summary.Count).To(Equal(3))
			Expect(result.Sections[0].Title).To(Equal("Food"))
			Expect(result.Sections[1].Title).To(Equal("Travel"))
		})

		It("should default to time grouping", func() {
			result, err := service.ListExpenses(expense.ListQuery{
				Selector: expense.DateSelector{Range: expense.RangeAllTime},
			})

			Expect(err).ToNot(HaveOccurred())
			Expect(result.Sections[0].Title).To(Equal("Yesterday"))
		})

		It("should narrow by category", func() {
			result, err := service.ListExpenses(expense.ListQuery{
				Selector: expense.DateSelector{Range: expense.RangeAllTime},
				Category: "Travel",
			})

			Expect(err).ToNot(HaveOccurred())
			Expect(result.Expenses).To(HaveLen(1))
			Expect(result.Summary.Total).To(Equal(350.0))
		})

		It("should wrap store failures", func() {
			mockRepo.getAllError = errors.New("store gone")

			_, err := service.ListExpenses(expense.ListQuery{
				Selector: expense.DateSelector{Range: expense.RangeAllTime},
			})

			var appErr *apperrors.AppError
			Expect(errors.As(err, &appErr)).To(BeTrue())
			Expect(appErr.Type).To(Equal(apperrors.ErrorTypeStorage))
		})
	})

	Describe("TodaysTotal", func() {
		It("should sum only today's expenses", func() {
			_, err := service.CreateExpense(expense.CreateExpenseDTO{
				Amount: 100, Description: "Coffee", Category: "Food", Date: time.Now(),
			})
			Expect(err).ToNot(HaveOccurred())
			_, err = service.CreateExpense(expense.CreateExpenseDTO{
				Amount: 900, Description: "Old", Category: "Food", Date: time.Now().AddDate(0, 0, -2),
			})
			Expect(err).ToNot(HaveOccurred())

			total, err := service.TodaysTotal()

			Expect(err).ToNot(HaveOccurred())
			Expect(total).To(Equal(100.0))
		})

		It("should be zero with no spending today", func() {
			total, err := service.TodaysTotal()

			Expect(err).ToNot(HaveOccurred())
			Expect(total).To(BeZero())
		})
	})
})
