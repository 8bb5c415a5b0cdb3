package handler

import "net/http"

type daySummaryResponse struct {
	Date            string                       `json:"date"`
	Timezone        string                       `json:"timezone"`
	Start           string                       `json:"start"`
	End             string                       `json:"end"`
	ProteinConsumed float64                      `json:"protein_consumed"`
	Achieved        bool                         `json:"achieved"`
	Percentage      float64                      `json:"percentage"`
	Goal            *goalResponse                `json:"goal"`
	Meals           []consumedMealDetailResponse `json:"meals"`
}

type weekDayResponse struct {
	Total               float64 `json:"total"`
	GoalAchieved        bool    `json:"goal_achieved"`
	DailyGoalPercentage float64 `json:"daily_goal_percentage"`
}

type weekProgressResponse struct {
	StartDate    string                     `json:"start_date"`
	Timezone     string                     `json:"timezone"`
	Start        string                     `json:"start"`
	End          string                     `json:"end"`
	Goal         *goalResponse              `json:"goal"`
	WeekProgress map[string]weekDayResponse `json:"week_progress"`
}

func (h *Handlers) DailySummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Progress.DaySummary(r.Context(), dateParam(r), h.timezoneParam(r))
	if err != nil {
		if h.writeCalcError(w, r, err) {
			return
		}
		h.writeInternal(w, r, "daily goal: summary failed", err)
		return
	}

	writeJSON(w, http.StatusOK, daySummaryResponse{
		Date:            summary.Date,
		Timezone:        summary.Timezone,
		Start:           formatTime(summary.Range.Start),
		End:             formatTime(summary.Range.End),
		ProteinConsumed: summary.Protein,
		Achieved:        summary.Achieved,
		Percentage:      summary.Percentage,
		Goal:            toGoalResponse(summary.Goal),
		Meals:           toMealTotalResponses(summary.Meals),
	})
}

func (h *Handlers) WeekProgress(w http.ResponseWriter, r *http.Request) {
	progress, err := h.Progress.WeekProgress(r.Context(), dateParam(r), h.timezoneParam(r))
	if err != nil {
		if h.writeCalcError(w, r, err) {
			return
		}
		h.writeInternal(w, r, "week progress: failed", err)
		return
	}

	keyed := progress.Week.Keyed()
	days := make(map[string]weekDayResponse, len(keyed))
	for key, day := range keyed {
		days[key] = weekDayResponse{
			Total:               day.Protein,
			GoalAchieved:        day.Achieved,
			DailyGoalPercentage: day.Percentage,
		}
	}

	writeJSON(w, http.StatusOK, weekProgressResponse{
		StartDate:    progress.Date,
		Timezone:     progress.Timezone,
		Start:        formatTime(progress.Week.Start),
		End:          formatTime(progress.Week.End),
		Goal:         toGoalResponse(progress.Goal),
		WeekProgress: days,
	})
}
