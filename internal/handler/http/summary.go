package http

import (
	"net/http"
	"strings"

	"github.com/clockwise-hq/attendance-backend-go/internal/domain/summary"
	"github.com/clockwise-hq/attendance-backend-go/internal/handler/http/response"
)

type SummaryHandler interface {
	Daily(w http.ResponseWriter, r *http.Request)
	Range(w http.ResponseWriter, r *http.Request)
}

type summaryHandlerImpl struct {
	summaryService summary.Service
}

func NewSummaryHandler(summaryService summary.Service) SummaryHandler {
	return &summaryHandlerImpl{summaryService: summaryService}
}

// Daily implements SummaryHandler.
func (h *summaryHandlerImpl) Daily(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	detailed := strings.EqualFold(r.URL.Query().Get("detailed"), "true")

	result, err := h.summaryService.DailySummary(r.Context(), date, detailed)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, "Attendance summary generated successfully", result)
}

// Range implements SummaryHandler.
func (h *summaryHandlerImpl) Range(w http.ResponseWriter, r *http.Request) {
	start := r.URL.Query().Get("start_date")
	end := r.URL.Query().Get("end_date")

	result, err := h.summaryService.RangeSummary(r.Context(), start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, "Attendance range summary generated successfully", result)
}
