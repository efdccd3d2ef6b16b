package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/clockwise-hq/attendance-backend-go/internal/domain/attendance"
	"github.com/clockwise-hq/attendance-backend-go/internal/domain/geofence"
	"github.com/clockwise-hq/attendance-backend-go/internal/domain/summary"
	"github.com/clockwise-hq/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	Record(w http.ResponseWriter, r *http.Request)
	ByDate(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	Status(w http.ResponseWriter, r *http.Request)
	Logs(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.Service
	summaryService    summary.Service
	geofenceService   geofence.Service
}

func NewAttendanceHandler(
	attendanceService attendance.Service,
	summaryService summary.Service,
	geofenceService geofence.Service,
) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
		summaryService:    summaryService,
		geofenceService:   geofenceService,
	}
}

// Record implements AttendanceHandler. One endpoint serves both transitions;
// the clock_in flag selects clock-in (true) or clock-out (false).
func (h *attendanceHandlerImpl) Record(w http.ResponseWriter, r *http.Request) {
	var req attendance.ClockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("failed to decode clock request", "error", err)
		response.BadRequest(w, "Invalid request body")
		return
	}

	// Validate before branching: a missing clock_in flag must fail here, not
	// fall through to a clock-out.
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	var rec attendance.Record
	var err error
	if *req.ClockIn {
		rec, err = h.attendanceService.ClockIn(r.Context(), req)
	} else {
		rec, err = h.attendanceService.ClockOut(r.Context(), req)
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, "Attendance recorded successfully", rec)
}

// ByDate implements AttendanceHandler.
func (h *attendanceHandlerImpl) ByDate(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		response.BadRequest(w, "date query parameter is required")
		return
	}
	employeeID := r.URL.Query().Get("employee_id")

	records, err := h.summaryService.RecordsByDate(r.Context(), date, employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, "Records fetched", records)
}

// History implements AttendanceHandler.
func (h *attendanceHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	start := r.URL.Query().Get("start_date")
	end := r.URL.Query().Get("end_date")

	records, err := h.summaryService.EmployeeHistory(r.Context(), employeeID, start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, "Attendance history fetched", records)
}

// Status implements AttendanceHandler.
func (h *attendanceHandlerImpl) Status(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employee_id")
	if employeeID == "" {
		response.BadRequest(w, "employee_id query parameter is required")
		return
	}

	status, err := h.summaryService.EmployeeStatus(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, statusMessage(status.Status), status)
}

func statusMessage(status string) string {
	switch status {
	case summary.StatusClockedIn:
		return "Employee is currently clocked in"
	case summary.StatusClockedOut:
		return "Employee is currently clocked out"
	default:
		return "Employee has not clocked in today"
	}
}

// Logs implements AttendanceHandler.
func (h *attendanceHandlerImpl) Logs(w http.ResponseWriter, r *http.Request) {
	filter := geofence.LogFilter{
		EmployeeID: r.URL.Query().Get("employee_id"),
		Date:       r.URL.Query().Get("date"),
	}
	if l := r.URL.Query().Get("limit"); l != "" {
		if limit, err := strconv.Atoi(l); err == nil && limit > 0 {
			filter.Limit = limit
		}
	}

	logs, err := h.geofenceService.Logs(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, "Rejection logs fetched", logs)
}
