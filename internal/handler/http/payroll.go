package http

import (
	"net/http"
	"time"

	"github.com/blubridge/hrms-backend-go/internal/domain/payroll"
	"github.com/blubridge/hrms-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	ListMonth(w http.ResponseWriter, r *http.Request)
	GetEmployee(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService: payrollService,
	}
}

// ListMonth implements PayrollHandler.
func (h *payrollHandlerImpl) ListMonth(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")

	var department *string
	if d := r.URL.Query().Get("department"); d != "" {
		department = &d
	}

	result, err := h.payrollService.ComputeMonth(r.Context(), month, department, time.Now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetEmployee implements PayrollHandler.
func (h *payrollHandlerImpl) GetEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	month := r.URL.Query().Get("month")

	result, err := h.payrollService.ComputeEmployeeMonth(r.Context(), employeeID, month, time.Now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Summary implements PayrollHandler.
func (h *payrollHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	month := chi.URLParam(r, "month")

	var department *string
	if d := r.URL.Query().Get("department"); d != "" {
		department = &d
	}

	result, err := h.payrollService.Summary(r.Context(), month, department, time.Now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
