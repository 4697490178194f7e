package expense

import (
	"log/slog"
	"time"

	apperrors "github.com/smartexpense/expense-tracker/internal"
)

// ListQuery carries the list view's filter and grouping selection.
type ListQuery struct {
	Selector DateSelector
	Category string
	Mode     GroupMode
}

// ListResult is everything the list view renders: the filtered collection,
// its grouped sections, and the aggregate summary.
type ListResult struct {
	Expenses []*Expense
	Sections []Section
	Summary  Summary
}

// Service handles expense business logic
type Service struct {
	repo    Repository
	watcher *Watcher
	logger  *slog.Logger
}

// NewService creates a new expense service
func NewService(repo Repository, watcher *Watcher, logger *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		watcher: watcher,
		logger:  logger,
	}
}

// Watcher exposes the snapshot stream for consumers that re-render on every
// store change.
func (s *Service) Watcher() *Watcher {
	return s.watcher
}

// CreateExpense validates and persists a new record, then pushes a fresh
// snapshot to subscribers.
func (s *Service) CreateExpense(dto CreateExpenseDTO) (*Expense, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("expense validation failed", "error", err)
		return nil, err
	}

	exp := NewExpense(dto)
	if err := s.repo.Create(exp); err != nil {
		s.logger.Error("failed to create expense", "error", err)
		return nil, apperrors.NewStorageError("Failed to add expense", err)
	}

	s.logger.Info("expense created successfully",
		"expense_id", exp.ID,
		"amount", exp.Amount,
		"category", exp.Category)

	s.notifySnapshot()
	return exp, nil
}

// GetExpenseByID retrieves a single expense.
func (s *Service) GetExpenseByID(id int64) (*Expense, error) {
	exp, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to get expense", "error", err, "expense_id", id)
		return nil, err
	}
	return exp, nil
}

// UpdateExpense replaces the stored record wholesale. The creation timestamp
// is immutable and survives the replace; updating an unknown id is an error
// rather than a silent no-op.
func (s *Service) UpdateExpense(id int64, dto UpdateExpenseDTO) (*Expense, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("expense validation failed", "error", err, "expense_id", id)
		return nil, err
	}

	existing, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("expense not found for update", "error", err, "expense_id", id)
		return nil, err
	}

	exp := &Expense{
		ID:          id,
		Amount:      dto.Amount,
		Description: dto.Description,
		Category:    dto.Category,
		Notes:       dto.Notes,
		Date:        dto.Date,
		CreatedAt:   existing.CreatedAt,
	}

	if err := s.repo.Update(exp); err != nil {
		s.logger.Error("failed to update expense", "error", err, "expense_id", id)
		return nil, apperrors.NewStorageError("Failed to update expense", err)
	}

	s.logger.Info("expense updated successfully", "expense_id", id)

	s.notifySnapshot()
	return exp, nil
}

// DeleteExpense removes a record irreversibly. Deleting an absent id is not
// an error.
func (s *Service) DeleteExpense(id int64) error {
	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete expense", "error", err, "expense_id", id)
		return apperrors.NewStorageError("Failed to delete expense", err)
	}

	s.logger.Info("expense deleted", "expense_id", id)

	s.notifySnapshot()
	return nil
}

// ListExpenses loads the full collection and runs the filter, grouping and
// aggregation pipeline over it for the list view.
func (s *Service) ListExpenses(q ListQuery) (*ListResult, error) {
	expenses, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to load expenses", "error", err)
		return nil, apperrors.NewStorageError("Failed to load expenses", err)
	}

	now := time.Now()
	filtered := Filter(expenses, q.Selector, q.Category, now)

	mode := q.Mode
	if mode == "" {
		mode = GroupByTime
	}

	result := &ListResult{
		Expenses: filtered,
		Sections: Group(filtered, mode, now),
		Summary:  Aggregate(filtered),
	}

	s.logger.Debug("expenses listed",
		"total_records", len(expenses),
		"filtered_records", len(filtered),
		"sections", len(result.Sections),
		"range", string(q.Selector.Range),
		"category", q.Category)

	return result, nil
}

// TodaysTotal sums today's spending for the entry screen header.
func (s *Service) TodaysTotal() (float64, error) {
	expenses, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to load expenses for today's total", "error", err)
		return 0, apperrors.NewStorageError("Failed to load expenses", err)
	}

	now := time.Now()
	today := Filter(expenses, DateSelector{Range: RangeToday}, AllCategories, now)
	return Aggregate(today).Total, nil
}

// Snapshot reads the current full collection.
func (s *Service) Snapshot() (Snapshot, error) {
	expenses, err := s.repo.GetAll()
	if err != nil {
		return nil, apperrors.NewStorageError("Failed to load expenses", err)
	}
	return Snapshot(expenses), nil
}

// notifySnapshot pushes the current collection to subscribers after a
// mutation. A read failure here only costs the notification; the mutation
// itself already succeeded.
func (s *Service) notifySnapshot() {
	snap, err := s.Snapshot()
	if err != nil {
		s.logger.Error("failed to read snapshot for notification", "error", err)
		return
	}
	s.watcher.Publish(snap)
}
