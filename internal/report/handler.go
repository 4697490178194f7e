package report

import (
	"encoding/json"
	"net/http"

	"github.com/smartexpense/expense-tracker/internal/expense"
	"github.com/smartexpense/expense-tracker/internal/transport"
	"github.com/smartexpense/expense-tracker/pkg/logger"
)

type ServiceAPI interface {
	WeeklyReport() (*WeeklyReport, error)
	Export(format ExportFormat) (*ExportResult, error)
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

// WeeklyResponse mirrors the report screen: formatted headline figures plus
// the raw chart series.
type WeeklyResponse struct {
	WeeklyTotal  string            `json:"weekly_total"`
	AverageDaily string            `json:"average_daily"`
	VsLastWeek   string            `json:"vs_last_week"`
	ChangeType   string            `json:"change_type"`
	DailyData    []DailyTotal      `json:"daily_data"`
	CategoryData []CategoryDisplay `json:"category_data"`
}

type CategoryDisplay struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Percentage string  `json:"percentage"`
}

type exportRequest struct {
	Format string `json:"format"`
}

func (h *Handler) GetWeeklyReport(w http.ResponseWriter, r *http.Request) {
	rep, err := h.Service.WeeklyReport()
	if err != nil {
		h.Logger.Error("GetWeeklyReport: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	categories := make([]CategoryDisplay, 0, len(rep.CategoryData))
	for _, share := range rep.CategoryData {
		categories = append(categories, CategoryDisplay{
			Category:   share.Category,
			Amount:     share.Amount,
			Percentage: expense.FormatAmount(share.Percentage),
		})
	}

	h.WriteJSON(w, http.StatusOK, WeeklyResponse{
		WeeklyTotal:  expense.FormatAmount(rep.TotalAmount),
		AverageDaily: expense.FormatAmount(rep.AverageDaily),
		VsLastWeek:   rep.VsLastWeek,
		ChangeType:   rep.ChangeType,
		DailyData:    rep.DailyData,
		CategoryData: categories,
	})
}

func (h *Handler) ExportReport(w http.ResponseWriter, r *http.Request) {
	var req exportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Error("ExportReport: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.Service.Export(ExportFormat(req.Format))
	if err != nil {
		h.Logger.Error("ExportReport: service error", "error", err, "format", req.Format)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("ExportReport: export accepted", "job_id", result.JobID, "format", req.Format)
	h.WriteJSON(w, http.StatusAccepted, result)
}
