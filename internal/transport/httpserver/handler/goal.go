package handler

import (
	"errors"
	"net/http"

	goaldomain "protein-tracker/internal/domain/goal"
	"protein-tracker/internal/domain/nutrition"
)

type setGoalRequest struct {
	Protein      *float64 `json:"protein"`
	Carbohydrate *float64 `json:"carbohydrate"`
	Fat          *float64 `json:"fat"`
	Calories     *float64 `json:"calories"`
}

type goalResponse struct {
	Protein      float64  `json:"protein"`
	Carbohydrate *float64 `json:"carbohydrate"`
	Fat          *float64 `json:"fat"`
	Calories     *float64 `json:"calories"`
	UpdatedAt    string   `json:"updated_at,omitempty"`
}

func (h *Handlers) GetDailyGoal(w http.ResponseWriter, r *http.Request) {
	stored, err := h.Goals.GetDailyGoal(r.Context())
	if err != nil {
		h.writeInternal(w, r, "daily goal: get failed", err)
		return
	}

	var response *goalResponse
	if stored != nil {
		response = toStoredGoalResponse(*stored)
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"daily_goal": response})
}

func (h *Handlers) SetDailyGoal(w http.ResponseWriter, r *http.Request) {
	var req setGoalRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if req.Protein == nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "protein is required")
		return
	}

	stored, err := h.Goals.SetDailyGoal(r.Context(), goaldomain.SetGoalInput{
		Protein:      *req.Protein,
		Carbohydrate: req.Carbohydrate,
		Fat:          req.Fat,
		Calories:     req.Calories,
	})
	if err != nil {
		if errors.Is(err, goaldomain.ErrInvalidInput) {
			h.logger(r).BusinessError("daily goal: update rejected", err)
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
			return
		}
		h.writeInternal(w, r, "daily goal: update failed", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"daily_goal": toStoredGoalResponse(*stored)})
}

func toStoredGoalResponse(stored goaldomain.DailyGoal) *goalResponse {
	response := toGoalResponse(stored.Goal())
	response.UpdatedAt = formatTime(stored.UpdatedAt)
	return response
}

func toGoalResponse(goal *nutrition.Goal) *goalResponse {
	if goal == nil {
		return nil
	}
	return &goalResponse{
		Protein:      goal.Protein,
		Carbohydrate: goal.Carbohydrate,
		Fat:          goal.Fat,
		Calories:     goal.Calories,
	}
}
