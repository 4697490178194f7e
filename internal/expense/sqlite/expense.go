package sqlite

import (
	apperrors "github.com/smartexpense/expense-tracker/internal"
	"github.com/smartexpense/expense-tracker/internal/expense"
	"gorm.io/gorm"
)

// ExpenseRepository implements the expense.Repository interface using GORM
// over the embedded store.
type ExpenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(db *gorm.DB) expense.Repository {
	return &ExpenseRepository{db: db}
}

// Create saves a new expense; the store assigns the id.
func (r *ExpenseRepository) Create(exp *expense.Expense) error {
	return r.db.Create(exp).Error
}

// GetByID retrieves an expense by its ID
func (r *ExpenseRepository) GetByID(id int64) (*expense.Expense, error) {
	var exp expense.Expense
	err := r.db.Where("id = ?", id).First(&exp).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrExpenseNotFound
		}
		return nil, err
	}
	return &exp, nil
}

// GetAll retrieves the full collection, most recent first.
func (r *ExpenseRepository) GetAll() ([]*expense.Expense, error) {
	var expenses []*expense.Expense
	err := r.db.Order("date DESC").Find(&expenses).Error
	return expenses, err
}

// Update replaces an existing record wholesale. Unknown ids are reported
// explicitly rather than silently inserted.
func (r *ExpenseRepository) Update(exp *expense.Expense) error {
	result := r.db.Model(&expense.Expense{}).
		Where("id = ?", exp.ID).
		Updates(map[string]interface{}{
			"amount":      exp.Amount,
			"description": exp.Description,
			"category":    exp.Category,
			"notes":       exp.Notes,
			"date":        exp.Date,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrExpenseNotFound
	}
	return nil
}

// Delete removes an expense by id. Deleting an absent id is a no-op.
func (r *ExpenseRepository) Delete(id int64) error {
	return r.db.Delete(&expense.Expense{}, id).Error
}
