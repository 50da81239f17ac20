package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/clockwise-hr/timeclock-backend-go/internal/domain/timeexception"
	"github.com/clockwise-hr/timeclock-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ExceptionHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
}

type ExceptionHandlerImpl struct {
	exceptionService timeexception.ExceptionService
}

func NewExceptionHandler(exceptionService timeexception.ExceptionService) ExceptionHandler {
	return &ExceptionHandlerImpl{exceptionService: exceptionService}
}

// Create implements ExceptionHandler.
func (h *ExceptionHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req timeexception.CreateExceptionRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create exception decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	exc, err := h.exceptionService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Time exception created successfully", exc)
}

// GetByID implements ExceptionHandler.
func (h *ExceptionHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Exception ID is required", nil)
		return
	}

	exc, err := h.exceptionService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, exc)
}

// List implements ExceptionHandler.
func (h *ExceptionHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := parseExceptionFilter(r)

	exceptions, err := h.exceptionService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, exceptions, &response.Meta{
		Limit: filter.Limit,
		Skip:  filter.Skip,
		Count: len(exceptions),
	})
}

// UpdateStatus implements ExceptionHandler.
func (h *ExceptionHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Exception ID is required", nil)
		return
	}

	var req timeexception.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateStatus decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	exc, err := h.exceptionService.UpdateStatus(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Exception status updated successfully", exc)
}

func parseExceptionFilter(r *http.Request) timeexception.ExceptionFilter {
	var filter timeexception.ExceptionFilter
	query := r.URL.Query()

	if s := query.Get("status"); s != "" {
		status := timeexception.Status(s)
		filter.Status = &status
	}
	if e := query.Get("employee_id"); e != "" {
		filter.EmployeeID = &e
	}
	if a := query.Get("assigned_to"); a != "" {
		filter.AssignedTo = &a
	}
	if l := query.Get("limit"); l != "" {
		if limit, err := strconv.Atoi(l); err == nil {
			filter.Limit = limit
		}
	}
	if s := query.Get("skip"); s != "" {
		if skip, err := strconv.Atoi(s); err == nil {
			filter.Skip = skip
		}
	}

	return filter
}
