package expense_test

import (
	"log/slog"
	"os"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smartexpense/expense-tracker/internal/expense"
)

var _ = Describe("Watcher", func() {
	var watcher *expense.Watcher

	BeforeEach(func() {
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		watcher = expense.NewWatcher(logger)
	})

	It("should deliver the full snapshot to every subscriber", func() {
		first := make(chan expense.Snapshot, 1)
		second := make(chan expense.Snapshot, 1)
		watcher.Subscribe(func(snap expense.Snapshot) { first <- snap })
		watcher.Subscribe(func(snap expense.Snapshot) { second <- snap })

		snap := expense.Snapshot{makeExpense(1, 100, "Food", time.Now())}
		watcher.PublishSync(snap)

		Expect(first).To(Receive(HaveLen(1)))
		Expect(second).To(Receive(HaveLen(1)))
	})

	It("should stop delivering after a subscription is cancelled", func() {
		received := make(chan expense.Snapshot, 2)
		sub := watcher.Subscribe(func(snap expense.Snapshot) { received <- snap })

		watcher.PublishSync(expense.Snapshot{})
		Expect(received).To(Receive())

		sub.Cancel()
		watcher.PublishSync(expense.Snapshot{})
		Consistently(received).ShouldNot(Receive())
	})

	It("should deliver asynchronously via Publish", func() {
		received := make(chan int, 1)
		watcher.Subscribe(func(snap expense.Snapshot) { received <- len(snap) })

		watcher.Publish(expense.Snapshot{makeExpense(1, 100, "Food", time.Now())})

		Eventually(received).Should(Receive(Equal(1)))
	})

	It("should tolerate publishing with no subscribers", func() {
		Expect(func() { watcher.PublishSync(expense.Snapshot{}) }).NotTo(Panic())
	})
})
