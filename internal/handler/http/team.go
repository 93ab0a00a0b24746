package http

import (
	"net/http"

	"github.com/blubridge/hrms-backend-go/internal/domain/team"
	"github.com/blubridge/hrms-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type TeamHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	ListDepartments(w http.ResponseWriter, r *http.Request)
}

type teamHandlerImpl struct {
	teamService team.TeamService
}

func NewTeamHandler(teamService team.TeamService) TeamHandler {
	return &teamHandlerImpl{
		teamService: teamService,
	}
}

// List implements TeamHandler.
func (h *teamHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var department *string
	if d := r.URL.Query().Get("department"); d != "" {
		department = &d
	}

	result, err := h.teamService.ListTeams(r.Context(), department)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Get implements TeamHandler.
func (h *teamHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.teamService.GetTeam(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListDepartments implements TeamHandler.
func (h *teamHandlerImpl) ListDepartments(w http.ResponseWriter, r *http.Request) {
	result, err := h.teamService.ListDepartments(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
