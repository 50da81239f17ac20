package http

import (
	"net/http"
	"time"

	"github.com/clockwise-hr/timeclock-backend-go/internal/handler/http/response"
	"github.com/clockwise-hr/timeclock-backend-go/internal/service/payrollinput"
	"github.com/go-chi/chi/v5"
)

type PayrollInputHandler interface {
	GetPeriodSummary(w http.ResponseWriter, r *http.Request)
}

type PayrollInputHandlerImpl struct {
	payrollInputService payrollinput.Service
}

func NewPayrollInputHandler(payrollInputService payrollinput.Service) PayrollInputHandler {
	return &PayrollInputHandlerImpl{payrollInputService: payrollInputService}
}

// GetPeriodSummary implements PayrollInputHandler.
func (h *PayrollInputHandlerImpl) GetPeriodSummary(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	query := r.URL.Query()
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
	if to.Before(from) {
		response.BadRequest(w, "to must not be before from", nil)
		return
	}

	summary, err := h.payrollInputService.BuildSummary(r.Context(), employeeID, from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}
