package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// idParam returns the {id} path value and whether it is a well formed uuid.
// Ids are uuids in storage, so anything else cannot match a row.
func idParam(r *http.Request) (string, bool) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	return id, isID(id)
}

func isID(value string) bool {
	_, err := uuid.Parse(value)
	return err == nil
}

// dateParam reads date, falling back to the startDate alias.
func dateParam(r *http.Request) string {
	query := r.URL.Query()
	if value := strings.TrimSpace(query.Get("date")); value != "" {
		return value
	}
	return strings.TrimSpace(query.Get("startDate"))
}

func (h *Handlers) timezoneParam(r *http.Request) string {
	if value := strings.TrimSpace(r.URL.Query().Get("timezone")); value != "" {
		return value
	}
	return h.defaultTimezone
}

func parseTimestampParam(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func formatTime(value time.Time) string {
	return value.UTC().Format(time.RFC3339)
}
