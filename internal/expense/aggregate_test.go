package expense_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smartexpense/expense-tracker/internal/expense"
)

var _ = Describe("Aggregate", func() {
	It("should compute total, count and average over a mixed collection", func() {
		now := time.Now()
		expenses := []*expense.Expense{
			makeExpense(1, 450, "Food", now.AddDate(0, 0, -1)),
			makeExpense(2, 120, "Food", now.AddDate(0, 0, -2)),
			makeExpense(3, 350, "Travel", now.AddDate(0, 0, -3)),
		}

		summary := expense.Aggregate(expenses)

		Expect(summary.Total).To(Equal(920.0))
		Expect(summary.Count).To(Equal(3))
		Expect(summary.Average).To(BeNumerically("~", 306.67, 0.01))
	})

	It("should yield zeros for the empty collection", func() {
		summary := expense.Aggregate(nil)

		Expect(summary.Total).To(BeZero())
		Expect(summary.Count).To(BeZero())
		Expect(summary.Average).To(BeZero())
	})

	It("should equal the single amount when there is one expense", func() {
		summary := expense.Aggregate([]*expense.Expense{makeExpense(1, 75.5, "Other", time.Now())})

		Expect(summary.Total).To(Equal(75.5))
		Expect(summary.Average).To(Equal(75.5))
	})
})

var _ = Describe("FormatAmount", func() {
	It("should round to whole units for display", func() {
		Expect(expense.FormatAmount(306.666)).To(Equal("307"))
		Expect(expense.FormatAmount(920)).To(Equal("920"))
		Expect(expense.FormatAmount(0)).To(Equal("0"))
	})
})

var _ = Describe("CountLabel", func() {
	It("should render the list header count", func() {
		Expect(expense.CountLabel(3)).To(Equal("3 expenses"))
		Expect(expense.CountLabel(0)).To(Equal("0 expenses"))
	})
})
