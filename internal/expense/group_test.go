package expense_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smartexpense/expense-tracker/internal/expense"
)

var _ = Describe("Group", func() {
	now := time.Date(2024, 1, 10, 15, 30, 0, 0, time.Local)

	Describe("by category", func() {
		It("should order sections by total descending", func() {
			expenses := []*expense.Expense{
				makeExpense(1, 450, "Food", now.AddDate(0, 0, -1)),
				makeExpense(2, 120, "Food", now.AddDate(0, 0, -2)),
				makeExpense(3, 350, "Travel", now.AddDate(0, 0, -3)),
			}

			sections := expense.Group(expenses, expense.GroupByCategory, now)

			Expect(sections).To(HaveLen(2))
			Expect(sections[0].Title).To(Equal("Food"))
			Expect(sections[0].TotalAmount).To(Equal(570.0))
			Expect(sections[0].Items).To(HaveLen(2))
			Expect(sections[1].Title).To(Equal("Travel"))
			Expect(sections[1].TotalAmount).To(Equal(350.0))
		})

		It("should keep discovery order for equal totals", func() {
			expenses := []*expense.Expense{
				makeExpense(1, 100, "Staff", now),
				makeExpense(2, 100, "Other", now),
			}

			sections := expense.Group(expenses, expense.GroupByCategory, now)

			Expect(sections[0].Title).To(Equal("Staff"))
			Expect(sections[1].Title).To(Equal("Other"))
		})

		It("should sort items inside a section most recent first", func() {
			expenses := []*expense.Expense{
				makeExpense(1, 10, "Food", now.AddDate(0, 0, -5)),
				makeExpense(2, 10, "Food", now.AddDate(0, 0, -1)),
				makeExpense(3, 10, "Food", now.AddDate(0, 0, -3)),
			}

			sections := expense.Group(expenses, expense.GroupByCategory, now)

			Expect(idsOf(sections[0].Items)).To(Equal([]int64{2, 3, 1}))
		})
	})

	Describe("by time", func() {
		It("should label today and yesterday and format older days", func() {
			expenses := []*expense.Expense{
				makeExpense(1, 100, "Food", now),
				makeExpense(2, 200, "Travel", now.AddDate(0, 0, -1)),
				makeExpense(3, 300, "Food", time.Date(2024, 1, 2, 12, 0, 0, 0, time.Local)),
			}

			sections := expense.Group(expenses, expense.GroupByTime, now)

			Expect(sections).To(HaveLen(3))
			Expect(sections[0].Title).To(Equal("Today"))
			Expect(sections[1].Title).To(Equal("Yesterday"))
			Expect(sections[2].Title).To(Equal("2 Jan"))
		})

		It("should put Today first even when discovered last", func() {
			expenses := []*expense.Expense{
				makeExpense(1, 300, "Food", now.AddDate(0, 0, -4)),
				makeExpense(2, 200, "Travel", now.AddDate(0, 0, -1)),
				makeExpense(3, 100, "Food", now),
			}

			sections := expense.Group(expenses, expense.GroupByTime, now)

			Expect(sections[0].Title).To(Equal("Today"))
			Expect(sections[1].Title).To(Equal("Yesterday"))
		})

		It("should order dated sections by their most recent item", func() {
			expenses := []*expense.Expense{
				makeExpense(1, 100, "Food", now.AddDate(0, 0, -5)),
				makeExpense(2, 200, "Travel", now.AddDate(0, 0, -3)),
			}

			sections := expense.Group(expenses, expense.GroupByTime, now)

			Expect(sections[0].Title).To(Equal("7 Jan"))
			Expect(sections[1].Title).To(Equal("5 Jan"))
		})

		It("should total each day bucket", func() {
			expenses := []*expense.Expense{
				makeExpense(1, 100, "Food", now),
				makeExpense(2, 250, "Travel", now.Add(-2 * time.Hour)),
			}

			sections := expense.Group(expenses, expense.GroupByTime, now)

			Expect(sections).To(HaveLen(1))
			Expect(sections[0].TotalAmount).To(Equal(350.0))
		})
	})

	It("should produce no sections for an empty collection", func() {
		Expect(expense.Group(nil, expense.GroupByTime, now)).To(BeEmpty())
		Expect(expense.Group(nil, expense.GroupByCategory, now)).To(BeEmpty())
	})
})
