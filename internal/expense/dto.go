package expense

import (
	"time"

	apperrors "github.com/smartexpense/expense-tracker/internal"
)

const (
	MaxDescriptionLength = 100
	MaxNotesLength       = 100
)

// CreateExpenseDTO represents the request payload for creating an expense
type CreateExpenseDTO struct {
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Notes       string    `json:"notes,omitempty"`
	Date        time.Time `json:"date,omitempty"`
}

// Validate rejects invalid entry input before it reaches the store.
func (dto CreateExpenseDTO) Validate() error {
	return validateFields(dto.Amount, dto.Description, dto.Category, dto.Notes)
}

// UpdateExpenseDTO carries a full replacement record; partial patches are not
// supported.
type UpdateExpenseDTO struct {
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Notes       string    `json:"notes,omitempty"`
	Date        time.Time `json:"date"`
}

// Validate validates the UpdateExpenseDTO
func (dto UpdateExpenseDTO) Validate() error {
	if err := validateFields(dto.Amount, dto.Description, dto.Category, dto.Notes); err != nil {
		return err
	}
	if dto.Date.IsZero() {
		return apperrors.NewValidationFieldError("date", "Date is required", apperrors.ErrCodeInvalidDate)
	}
	return nil
}

func validateFields(amount float64, description, category, notes string) error {
	if amount <= 0 {
		return apperrors.NewValidationFieldError("amount", "Please enter a valid amount greater than 0", apperrors.ErrCodeInvalidAmount)
	}
	if description == "" {
		return apperrors.NewValidationFieldError("description", "Description is required", apperrors.ErrCodeInvalidDescription)
	}
	if len(description) > MaxDescriptionLength {
		return apperrors.NewValidationFieldError("description", "Description must be less than 100 characters", apperrors.ErrCodeInvalidDescription)
	}
	if category == "" {
		return apperrors.NewValidationFieldError("category", "Category is required", apperrors.ErrCodeInvalidCategory)
	}
	if len(notes) > MaxNotesLength {
		return apperrors.NewValidationFieldError("notes", "Notes must be less than 100 characters", apperrors.ErrCodeInvalidNotes)
	}
	return nil
}
