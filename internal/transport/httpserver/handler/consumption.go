package handler

import (
	"errors"
	"net/http"
	"strings"

	consumptiondomain "protein-tracker/internal/domain/consumption"
	"protein-tracker/internal/domain/nutrition"
)

type logMealRequest struct {
	MealID     string `json:"meal_id"`
	ConsumedAt string `json:"consumed_at"`
}

type consumedMealResponse struct {
	ID         string `json:"id"`
	MealID     string `json:"meal_id"`
	ConsumedAt string `json:"consumed_at"`
}

type consumedMealDetailResponse struct {
	ID         string             `json:"id"`
	MealID     string             `json:"meal_id"`
	MealName   string             `json:"meal_name"`
	ConsumedAt string             `json:"consumed_at"`
	Protein    float64            `json:"protein"`
	Items      []lineItemResponse `json:"items"`
}

type consumedDayResponse struct {
	Date     string                       `json:"date"`
	Timezone string                       `json:"timezone"`
	Start    string                       `json:"start"`
	End      string                       `json:"end"`
	Protein  float64                      `json:"protein"`
	Meals    []consumedMealDetailResponse `json:"meals"`
}

func (h *Handlers) ListConsumedMeals(w http.ResponseWriter, r *http.Request) {
	day, err := h.Consumption.ListDay(r.Context(), dateParam(r), h.timezoneParam(r))
	if err != nil {
		if h.writeCalcError(w, r, err) {
			return
		}
		h.writeInternal(w, r, "consumed meals: list failed", err)
		return
	}

	writeJSON(w, http.StatusOK, consumedDayResponse{
		Date:     day.Date,
		Timezone: day.Timezone,
		Start:    formatTime(day.Range.Start),
		End:      formatTime(day.Range.End),
		Protein:  day.Protein,
		Meals:    toMealTotalResponses(day.Meals),
	})
}

func (h *Handlers) LogConsumedMeal(w http.ResponseWriter, r *http.Request) {
	var req logMealRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	consumedAt, err := parseTimestampParam(req.ConsumedAt)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid consumed_at")
		return
	}
	if mealID := strings.TrimSpace(req.MealID); mealID != "" && !isID(mealID) {
		writeError(w, http.StatusNotFound, "meal_not_found", "meal not found")
		return
	}

	created, err := h.Consumption.LogMeal(r.Context(), consumptiondomain.LogMealInput{
		MealID:     req.MealID,
		ConsumedAt: consumedAt,
	})
	if err != nil {
		switch {
		case errors.Is(err, consumptiondomain.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		case errors.Is(err, consumptiondomain.ErrMealNotFound):
			writeError(w, http.StatusNotFound, "meal_not_found", "meal not found")
		default:
			h.writeInternal(w, r, "consumed meals: log failed", err)
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"consumed_meal": consumedMealResponse{
			ID:         created.ID,
			MealID:     created.MealID,
			ConsumedAt: formatTime(created.CreatedAt),
		},
	})
}

func (h *Handlers) DeleteConsumedMeal(w http.ResponseWriter, r *http.Request) {
	consumedID, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusNotFound, "consumed_meal_not_found", "consumed meal not found")
		return
	}

	if err := h.Consumption.DeleteConsumedMeal(r.Context(), consumedID); err != nil {
		if errors.Is(err, consumptiondomain.ErrConsumedMealNotFound) {
			writeError(w, http.StatusNotFound, "consumed_meal_not_found", "consumed meal not found")
			return
		}
		h.writeInternal(w, r, "consumed meals: delete failed", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toMealTotalResponses(meals []nutrition.MealTotal) []consumedMealDetailResponse {
	response := make([]consumedMealDetailResponse, 0, len(meals))
	for _, meal := range meals {
		items := make([]lineItemResponse, 0, len(meal.Items))
		for _, item := range meal.Items {
			items = append(items, lineItemResponse{
				FoodID:            item.FoodID,
				FoodName:          item.FoodName,
				PortionType:       string(item.PortionType),
				PortionAmount:     item.PortionAmount,
				ProteinPerPortion: item.ProteinPerPortion,
				Amount:            item.Amount,
				Protein:           item.Protein,
			})
		}
		response = append(response, consumedMealDetailResponse{
			ID:         meal.ID,
			MealID:     meal.MealID,
			MealName:   meal.MealName,
			ConsumedAt: formatTime(meal.ConsumedAt),
			Protein:    meal.Protein,
			Items:      items,
		})
	}
	return response
}
