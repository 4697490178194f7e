// Package entry models the expense entry form as an explicit state machine:
// an immutable State advanced by Apply(State, Event). The transition function
// is pure, so form behavior is testable without any rendering layer.
package entry

import (
	"strconv"
	"strings"
)

const maxDescriptionLength = 100

// State is the complete entry form at one instant. Fields hold the raw text
// the user typed; parsing happens at submit time.
type State struct {
	Title       string
	Amount      string
	Category    string
	Notes       string
	TodaysTotal string
	Submitting  bool
	Error       string
	Success     string
}

// NewState returns the form's initial state.
func NewState() State {
	return State{TodaysTotal: "0"}
}

type Event interface {
	isEvent()
}

type SetTitle struct{ Value string }
type SetAmount struct{ Value string }
type SetCategory struct{ Value string }
type SetNotes struct{ Value string }

// Submit asks the form to validate and enter the submitting state. The
// driver performs the actual store call and feeds back SubmitSucceeded or
// SubmitFailed.
type Submit struct{}

type SubmitSucceeded struct{}
type SubmitFailed struct{ Reason string }

// TotalLoaded carries a refreshed today's-total figure.
type TotalLoaded struct{ Total string }

type ClearError struct{}
type ClearSuccess struct{}

func (SetTitle) isEvent()        {}
func (SetAmount) isEvent()       {}
func (SetCategory) isEvent()     {}
func (SetNotes) isEvent()        {}
func (Submit) isEvent()          {}
func (SubmitSucceeded) isEvent() {}
func (SubmitFailed) isEvent()    {}
func (TotalLoaded) isEvent()     {}
func (ClearError) isEvent()      {}
func (ClearSuccess) isEvent()    {}

// Apply advances the form state. It never mutates its input.
func Apply(s State, e Event) State {
	switch ev := e.(type) {
	case SetTitle:
		s.Title = ev.Value
		if ev.Value != "" {
			s.Error = ""
		}
	case SetAmount:
		s.Amount = ev.Value
		if ev.Value != "" {
			s.Error = ""
		}
	case SetCategory:
		s.Category = ev.Value
		if ev.Value != "" {
			s.Error = ""
		}
	case SetNotes:
		s.Notes = ev.Value
	case Submit:
		if s.Title == "" || s.Amount == "" || s.Category == "" {
			s.Error = "Please fill all required fields"
			return s
		}
		if amount, err := strconv.ParseFloat(s.Amount, 64); err != nil || amount <= 0 {
			s.Error = "Please enter a valid amount"
			return s
		}
		s.Submitting = true
		s.Error = ""
	case SubmitSucceeded:
		s.Submitting = false
		s.Title = ""
		s.Amount = ""
		s.Category = ""
		s.Notes = ""
		s.Success = "Expense added successfully!"
		s.Error = ""
	case SubmitFailed:
		s.Submitting = false
		s.Error = "Failed to add expense: " + ev.Reason
	case TotalLoaded:
		s.TodaysTotal = ev.Total
	case ClearError:
		s.Error = ""
	case ClearSuccess:
		s.Success = ""
	}
	return s
}

// ----------------- FIELD VALIDATION -----------------

// AmountError returns the user-facing reason an amount string is invalid, or
// "" when valid.
func AmountError(amount string) string {
	if strings.TrimSpace(amount) == "" {
		return "Amount is required"
	}
	v, err := strconv.ParseFloat(amount, 64)
	if err != nil || v <= 0 {
		return "Please enter a valid amount greater than 0"
	}
	return ""
}

func DescriptionError(description string) string {
	if strings.TrimSpace(description) == "" {
		return "Description is required"
	}
	if len(description) > maxDescriptionLength {
		return "Description must be less than 100 characters"
	}
	return ""
}

func CategoryError(category string) string {
	if strings.TrimSpace(category) == "" {
		return "Category is required"
	}
	return ""
}

// FieldErrors runs every field validator and collects the failures by field
// name. An empty map means the entry is submittable.
func FieldErrors(title, amount, category string) map[string]string {
	errs := make(map[string]string)
	if msg := DescriptionError(title); msg != "" {
		errs["title"] = msg
	}
	if msg := AmountError(amount); msg != "" {
		errs["amount"] = msg
	}
	if msg := CategoryError(category); msg != "" {
		errs["category"] = msg
	}
	return errs
}
