package expense

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/smartexpense/expense-tracker/internal/transport"
	"github.com/smartexpense/expense-tracker/pkg/logger"

	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	CreateExpense(dto CreateExpenseDTO) (*Expense, error)
	GetExpenseByID(id int64) (*Expense, error)
	UpdateExpense(id int64, dto UpdateExpenseDTO) (*Expense, error)
	DeleteExpense(id int64) error
	ListExpenses(q ListQuery) (*ListResult, error)
	TodaysTotal() (float64, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(logger.L()),
		Service:     service,
	}
}

// ListResponse mirrors what the list screen renders: filtered expenses,
// grouped sections and the formatted summary line.
type ListResponse struct {
	Expenses      []*Expense `json:"expenses"`
	Sections      []Section  `json:"sections"`
	TotalAmount   string     `json:"total_amount"`
	ExpenseCount  string     `json:"expense_count"`
	AverageAmount string     `json:"average_amount"`
}

type SummaryResponse struct {
	TotalAmount   string `json:"total_amount"`
	ExpenseCount  string `json:"expense_count"`
	AverageAmount string `json:"average_amount"`
}

func (h *Handler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var dto CreateExpenseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateExpense: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	exp, err := h.Service.CreateExpense(dto)
	if err != nil {
		h.Logger.Error("CreateExpense: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("CreateExpense: expense created successfully",
		"expense_id", exp.ID,
		"amount", exp.Amount,
		"category", exp.Category)

	h.WriteJSON(w, http.StatusCreated, exp)
}

func (h *Handler) GetExpense(w http.ResponseWriter, r *http.Request) {
	id, ok := h.expenseID(w, r)
	if !ok {
		return
	}

	exp, err := h.Service.GetExpenseByID(id)
	if err != nil {
		h.Logger.Error("GetExpense: service error", "error", err, "expense_id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, exp)
}

func (h *Handler) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	id, ok := h.expenseID(w, r)
	if !ok {
		return
	}

	var dto UpdateExpenseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdateExpense: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	exp, err := h.Service.UpdateExpense(id, dto)
	if err != nil {
		h.Logger.Error("UpdateExpense: service error", "error", err, "expense_id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, exp)
}

func (h *Handler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	id, ok := h.expenseID(w, r)
	if !ok {
		return
	}

	if err := h.Service.DeleteExpense(id); err != nil {
		h.Logger.Error("DeleteExpense: service error", "error", err, "expense_id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	query, err := parseListQuery(r)
	if err != nil {
		h.Logger.Error("ListExpenses: invalid query", "error", err)
		h.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.Service.ListExpenses(query)
	if err != nil {
		h.Logger.Error("ListExpenses: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, ListResponse{
		Expenses:      result.Expenses,
		Sections:      result.Sections,
		TotalAmount:   FormatAmount(result.Summary.Total),
		ExpenseCount:  CountLabel(result.Summary.Count),
		AverageAmount: FormatAmount(result.Summary.Average),
	})
}

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	query, err := parseListQuery(r)
	if err != nil {
		h.Logger.Error("GetSummary: invalid query", "error", err)
		h.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.Service.ListExpenses(query)
	if err != nil {
		h.Logger.Error("GetSummary: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, SummaryResponse{
		TotalAmount:   FormatAmount(result.Summary.Total),
		ExpenseCount:  CountLabel(result.Summary.Count),
		AverageAmount: FormatAmount(result.Summary.Average),
	})
}

func (h *Handler) GetTodaysTotal(w http.ResponseWriter, r *http.Request) {
	total, err := h.Service.TodaysTotal()
	if err != nil {
		h.Logger.Error("GetTodaysTotal: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"todays_total": FormatAmount(total)})
}

func (h *Handler) expenseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.Logger.Error("invalid expense ID", "id", idStr)
		h.WriteError(w, http.StatusBadRequest, "invalid expense ID")
		return 0, false
	}
	return id, true
}

// parseListQuery reads the filter selection off the query string. Defaults
// match the list screen's initial state: all time, all categories, grouped
// by time.
func parseListQuery(r *http.Request) (ListQuery, error) {
	query := ListQuery{
		Selector: DateSelector{Range: RangeAllTime},
		Category: AllCategories,
		Mode:     GroupByTime,
	}

	if rangeStr := r.URL.Query().Get("range"); rangeStr != "" {
		switch DateRange(rangeStr) {
		case RangeToday, RangeThisWeek, RangeThisMonth, RangeAllTime, RangeCustom:
			query.Selector.Range = DateRange(rangeStr)
		default:
			return ListQuery{}, errInvalidParam("range", rangeStr)
		}
	}

	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		day, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
		if err != nil {
			return ListQuery{}, errInvalidParam("date", dateStr)
		}
		query.Selector.Range = RangeCustom
		query.Selector.Day = day
	}

	if category := r.URL.Query().Get("category"); category != "" {
		query.Category = category
	}

	if mode := r.URL.Query().Get("group_by"); mode != "" {
		switch GroupMode(mode) {
		case GroupByTime, GroupByCategory:
			query.Mode = GroupMode(mode)
		default:
			return ListQuery{}, errInvalidParam("group_by", mode)
		}
	}

	return query, nil
}

type invalidParamError struct {
	param string
	value string
}

func (e invalidParamError) Error() string {
	return "invalid " + e.param + " parameter: " + e.value
}

func errInvalidParam(param, value string) error {
	return invalidParamError{param: param, value: value}
}
