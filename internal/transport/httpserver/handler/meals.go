package handler

import (
	"errors"
	"net/http"
	"strings"

	mealsdomain "protein-tracker/internal/domain/meals"
)

type createMealRequest struct {
	Name  string                  `json:"name"`
	Items []createMealItemRequest `json:"items"`
}

type createMealItemRequest struct {
	FoodID string  `json:"food_id"`
	Amount float64 `json:"amount"`
}

type mealResponse struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Protein   float64            `json:"protein"`
	Items     []lineItemResponse `json:"items"`
	CreatedAt string             `json:"created_at"`
}

type lineItemResponse struct {
	ID                string  `json:"id,omitempty"`
	FoodID            string  `json:"food_id"`
	FoodName          string  `json:"food_name"`
	PortionType       string  `json:"portion_type"`
	PortionAmount     float64 `json:"portion_amount"`
	ProteinPerPortion float64 `json:"protein_per_portion"`
	Amount            float64 `json:"amount"`
	Protein           float64 `json:"protein"`
}

func (h *Handlers) ListMeals(w http.ResponseWriter, r *http.Request) {
	meals, err := h.Meals.ListMeals(r.Context())
	if err != nil {
		if h.writeCalcError(w, r, err) {
			return
		}
		h.writeInternal(w, r, "meals: list failed", err)
		return
	}

	response := make([]mealResponse, 0, len(meals))
	for _, meal := range meals {
		response = append(response, toMealResponse(meal))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"meals": response})
}

func (h *Handlers) GetMeal(w http.ResponseWriter, r *http.Request) {
	mealID, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusNotFound, "meal_not_found", "meal not found")
		return
	}

	meal, err := h.Meals.GetMeal(r.Context(), mealID)
	if err != nil {
		if errors.Is(err, mealsdomain.ErrMealNotFound) {
			writeError(w, http.StatusNotFound, "meal_not_found", "meal not found")
			return
		}
		if h.writeCalcError(w, r, err) {
			return
		}
		h.writeInternal(w, r, "meals: get failed", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"meal": toMealResponse(*meal)})
}

func (h *Handlers) CreateMeal(w http.ResponseWriter, r *http.Request) {
	var req createMealRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	input := mealsdomain.CreateMealInput{
		Name:  req.Name,
		Items: make([]mealsdomain.CreateItemInput, 0, len(req.Items)),
	}
	for _, item := range req.Items {
		if foodID := strings.TrimSpace(item.FoodID); foodID != "" && !isID(foodID) {
			writeError(w, http.StatusBadRequest, "food_not_found", "food does not exist: "+foodID)
			return
		}
		input.Items = append(input.Items, mealsdomain.CreateItemInput{
			FoodID: item.FoodID,
			Amount: item.Amount,
		})
	}

	created, err := h.Meals.CreateMeal(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, mealsdomain.ErrInvalidInput):
			h.logger(r).BusinessError("meals: create rejected", err)
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		case errors.Is(err, mealsdomain.ErrUnknownFood):
			h.logger(r).BusinessError("meals: create rejected", err)
			writeError(w, http.StatusBadRequest, "food_not_found", err.Error())
		case h.writeCalcError(w, r, err):
		default:
			h.writeInternal(w, r, "meals: create failed", err)
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"meal": toMealResponse(*created)})
}

func (h *Handlers) DeleteMeal(w http.ResponseWriter, r *http.Request) {
	mealID, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusNotFound, "meal_not_found", "meal not found")
		return
	}

	if err := h.Meals.DeleteMeal(r.Context(), mealID); err != nil {
		if errors.Is(err, mealsdomain.ErrMealNotFound) {
			writeError(w, http.StatusNotFound, "meal_not_found", "meal not found")
			return
		}
		h.writeInternal(w, r, "meals: delete failed", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toMealResponse(meal mealsdomain.MealWithItems) mealResponse {
	items := make([]lineItemResponse, 0, len(meal.Items))
	for _, item := range meal.Items {
		items = append(items, lineItemResponse{
			ID:                item.ID,
			FoodID:            item.FoodID,
			FoodName:          item.FoodName,
			PortionType:       string(item.PortionType),
			PortionAmount:     item.PortionAmount,
			ProteinPerPortion: item.ProteinPerPortion,
			Amount:            item.Amount,
			Protein:           item.Protein,
		})
	}
	return mealResponse{
		ID:        meal.ID,
		Name:      meal.Name,
		Protein:   meal.Protein,
		Items:     items,
		CreatedAt: formatTime(meal.CreatedAt),
	}
}
