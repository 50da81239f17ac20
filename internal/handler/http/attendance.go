package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/clockwise-hr/timeclock-backend-go/internal/domain/attendance"
	"github.com/clockwise-hr/timeclock-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	RecordPunch(w http.ResponseWriter, r *http.Request)
	GetForEmployee(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// RecordPunch implements AttendanceHandler.
func (h *AttendanceHandlerImpl) RecordPunch(w http.ResponseWriter, r *http.Request) {
	var req attendance.RecordPunchRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("RecordPunch decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.RecordPunch(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if result.Warning != "" {
		response.SuccessWithMessage(w, result.Warning, result)
		return
	}
	response.Created(w, "Punch recorded successfully", result)
}

// GetForEmployee implements AttendanceHandler. Supplying both from and to
// narrows the listing to that day range.
func (h *AttendanceHandlerImpl) GetForEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	query := r.URL.Query()
	if query.Get("from") != "" || query.Get("to") != "" {
		from, err := time.Parse("2006-01-02", query.Get("from"))
		if err != nil {
			response.BadRequest(w, "from must be a valid YYYY-MM-DD date", nil)
			return
		}
		to, err := time.Parse("2006-01-02", query.Get("to"))
		if err != nil {
			response.BadRequest(w, "to must be a valid YYYY-MM-DD date", nil)
			return
		}

		records, err := h.attendanceService.GetForEmployeeBetween(r.Context(), employeeID, from, to)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, records)
		return
	}

	records, err := h.attendanceService.GetForEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}
