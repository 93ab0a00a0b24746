package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/blubridge/hrms-backend-go/internal/domain/reward"
	"github.com/blubridge/hrms-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type RewardHandler interface {
	Award(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	Leaderboard(w http.ResponseWriter, r *http.Request)
}

type rewardHandlerImpl struct {
	rewardService reward.RewardService
}

func NewRewardHandler(rewardService reward.RewardService) RewardHandler {
	return &rewardHandlerImpl{
		rewardService: rewardService,
	}
}

// Award implements RewardHandler.
func (h *rewardHandlerImpl) Award(w http.ResponseWriter, r *http.Request) {
	var req reward.AwardRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.rewardService.Award(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Stars awarded", result)
}

// History implements RewardHandler.
func (h *rewardHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	result, err := h.rewardService.History(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Leaderboard implements RewardHandler.
func (h *rewardHandlerImpl) Leaderboard(w http.ResponseWriter, r *http.Request) {
	filter := reward.LeaderboardFilter{}

	if team := r.URL.Query().Get("team"); team != "" {
		filter.Team = &team
	}
	if search := r.URL.Query().Get("search"); search != "" {
		filter.Search = &search
	}
	if limit := r.URL.Query().Get("limit"); limit != "" {
		if l, err := strconv.Atoi(limit); err == nil {
			filter.Limit = l
		}
	}

	result, err := h.rewardService.Leaderboard(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
