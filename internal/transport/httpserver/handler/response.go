package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"protein-tracker/internal/domain/nutrition"
	"protein-tracker/pkg/logger"
)

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorEnvelope{Error: errorBody{Code: code, Message: message}})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func decodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func (h *Handlers) logger(r *http.Request) logger.Logger {
	return logger.FromContext(r.Context(), h.log)
}

// writeCalcError answers the errors the nutrition engine can return and
// reports whether err was one of them.
func (h *Handlers) writeCalcError(w http.ResponseWriter, r *http.Request, err error) bool {
	var dateErr *nutrition.InvalidDateError
	var tzErr *nutrition.InvalidTimezoneError
	var calcErr *nutrition.CalculationError

	switch {
	case errors.As(err, &dateErr):
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid date")
	case errors.As(err, &tzErr):
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid timezone")
	case errors.As(err, &calcErr):
		h.logger(r).BusinessError("nutrition: calculation failed", err, "food_id", calcErr.FoodID)
		writeError(w, http.StatusUnprocessableEntity, "calculation_error", calcErr.Error())
	default:
		return false
	}
	return true
}

func (h *Handlers) writeInternal(w http.ResponseWriter, r *http.Request, message string, err error) {
	h.logger(r).InternalError(message, err, "method", r.Method, "path", r.URL.Path)
	writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
}
