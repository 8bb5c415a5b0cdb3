package handler

import (
	"errors"
	"net/http"

	fooddomain "protein-tracker/internal/domain/food"
)

type createFoodRequest struct {
	Name              string  `json:"name"`
	PortionType       string  `json:"portion_type"`
	PortionAmount     float64 `json:"portion_amount"`
	ProteinPerPortion float64 `json:"protein_per_portion"`
}

type foodResponse struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	PortionType       string  `json:"portion_type"`
	PortionAmount     float64 `json:"portion_amount"`
	ProteinPerPortion float64 `json:"protein_per_portion"`
	CreatedAt         string  `json:"created_at"`
}

func (h *Handlers) ListFoods(w http.ResponseWriter, r *http.Request) {
	foods, err := h.Foods.ListFoods(r.Context())
	if err != nil {
		h.writeInternal(w, r, "foods: list failed", err)
		return
	}

	response := make([]foodResponse, 0, len(foods))
	for _, f := range foods {
		response = append(response, toFoodResponse(f))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"foods": response})
}

func (h *Handlers) GetFood(w http.ResponseWriter, r *http.Request) {
	foodID, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusNotFound, "food_not_found", "food not found")
		return
	}

	f, err := h.Foods.GetFood(r.Context(), foodID)
	if err != nil {
		if errors.Is(err, fooddomain.ErrFoodNotFound) {
			writeError(w, http.StatusNotFound, "food_not_found", "food not found")
			return
		}
		h.writeInternal(w, r, "foods: get failed", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"food": toFoodResponse(*f)})
}

func (h *Handlers) CreateFood(w http.ResponseWriter, r *http.Request) {
	var req createFoodRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	created, err := h.Foods.CreateFood(r.Context(), fooddomain.CreateFoodInput{
		Name:              req.Name,
		PortionType:       req.PortionType,
		PortionAmount:     req.PortionAmount,
		ProteinPerPortion: req.ProteinPerPortion,
	})
	if err != nil {
		if errors.Is(err, fooddomain.ErrInvalidInput) {
			h.logger(r).BusinessError("foods: create rejected", err)
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
			return
		}
		h.writeInternal(w, r, "foods: create failed", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"food": toFoodResponse(*created)})
}

func (h *Handlers) DeleteFood(w http.ResponseWriter, r *http.Request) {
	foodID, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusNotFound, "food_not_found", "food not found")
		return
	}

	if err := h.Foods.DeleteFood(r.Context(), foodID); err != nil {
		if errors.Is(err, fooddomain.ErrFoodNotFound) {
			writeError(w, http.StatusNotFound, "food_not_found", "food not found")
			return
		}
		h.writeInternal(w, r, "foods: delete failed", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toFoodResponse(f fooddomain.Food) foodResponse {
	return foodResponse{
		ID:                f.ID,
		Name:              f.Name,
		PortionType:       string(f.PortionType),
		PortionAmount:     f.PortionAmount,
		ProteinPerPortion: f.ProteinPerPortion,
		CreatedAt:         formatTime(f.CreatedAt),
	}
}
