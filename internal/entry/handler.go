package entry

import (
	"encoding/json"
	"net/http"

	"github.com/smartexpense/expense-tracker/internal/transport"
	"github.com/smartexpense/expense-tracker/pkg/logger"
)

// CategoryChecker reports whether a name is an active catalog entry. The
// closed set is enforced here, at the presentation layer; the expense core
// keeps category an open string.
type CategoryChecker interface {
	IsValidCategory(name string) bool
}

// Handler exposes entry-form validation so the mobile client can surface
// per-field messages before attempting a create.
type Handler struct {
	*transport.BaseHandler
	categories CategoryChecker
}

func NewHandler(categories CategoryChecker) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(logger.L()),
		categories:  categories,
	}
}

type validateRequest struct {
	Title    string `json:"title"`
	Amount   string `json:"amount"`
	Category string `json:"category"`
}

type validateResponse struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors,omitempty"`
}

func (h *Handler) Validate(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Error("Validate: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	errs := FieldErrors(req.Title, req.Amount, req.Category)
	if _, hasCategoryError := errs["category"]; !hasCategoryError && h.categories != nil {
		if !h.categories.IsValidCategory(req.Category) {
			errs["category"] = "Please select a valid category"
		}
	}

	h.WriteJSON(w, http.StatusOK, validateResponse{
		Valid:  len(errs) == 0,
		Errors: errs,
	})
}
