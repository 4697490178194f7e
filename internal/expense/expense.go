package expense

import (
	"time"
)

// Expense is the sole domain entity: one spending record. Category is an
// open string here; the presentation layer constrains input to the catalog
// in internal/category.
type Expense struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	Amount      float64   `json:"amount" gorm:"not null"`
	Description string    `json:"description" gorm:"not null"`
	Category    string    `json:"category" gorm:"not null"`
	Notes       string    `json:"notes"`
	Date        time.Time `json:"date" gorm:"column:date;not null"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at"`
}

// TableName returns the table name for GORM
func (Expense) TableName() string {
	return "expenses"
}

// Repository defines the data access methods for expenses. The store owns id
// generation; Update is a full-record replace and must report unknown ids;
// Delete is idempotent.
type Repository interface {
	Create(expense *Expense) error
	GetByID(id int64) (*Expense, error)
	GetAll() ([]*Expense, error)
	Update(expense *Expense) error
	Delete(id int64) error
}

// NewExpense builds an unsaved record from the entry payload. A zero date
// defaults to submission time, matching the entry form behavior.
func NewExpense(dto CreateExpenseDTO) *Expense {
	now := time.Now()

	date := dto.Date
	if date.IsZero() {
		date = now
	}

	return &Expense{
		Amount:      dto.Amount,
		Description: dto.Description,
		Category:    dto.Category,
		Notes:       dto.Notes,
		Date:        date,
		CreatedAt:   now,
	}
}
