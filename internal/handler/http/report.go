package http

import (
	"net/http"

	"github.com/blubridge/hrms-backend-go/internal/domain/report"
	"github.com/blubridge/hrms-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Attendance(w http.ResponseWriter, r *http.Request)
	Leaves(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

func rangeFilterFromQuery(r *http.Request) report.RangeFilter {
	filter := report.RangeFilter{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}
	if team := r.URL.Query().Get("team"); team != "" {
		filter.Team = &team
	}
	return filter
}

// Attendance implements ReportHandler.
func (h *reportHandlerImpl) Attendance(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.AttendanceReport(r.Context(), rangeFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Leaves implements ReportHandler.
func (h *reportHandlerImpl) Leaves(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.LeaveReport(r.Context(), rangeFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
