package nutrition

import (
	"strings"
	"time"
)

type ItemTotal struct {
	LineItem
	Protein float64
}

type MealTotal struct {
	ID         string
	MealID     string
	MealName   string
	ConsumedAt time.Time
	Items      []ItemTotal
	Protein    float64
}

type DayTotal struct {
	Meals   []MealTotal
	Protein float64
}

type WeekDay struct {
	Weekday time.Weekday
	Protein float64
	Evaluation
}

type Week struct {
	Range
	Days [7]WeekDay
}

// Keyed returns the buckets by lowercase weekday name, sunday through saturday.
func (w Week) Keyed() map[string]WeekDay {
	out := make(map[string]WeekDay, len(w.Days))
	for _, day := range w.Days {
		out[weekdayKey(day.Weekday)] = day
	}
	return out
}

func weekdayKey(day time.Weekday) string {
	return strings.ToLower(day.String())
}

// MealProtein sums the line items of one meal, rounded to 2 decimals.
// Items are returned in input order with their unrounded share.
func MealProtein(items []LineItem) (float64, []ItemTotal, error) {
	totals := make([]ItemTotal, 0, len(items))
	var sum float64
	for _, item := range items {
		protein, err := ProteinFor(item.Portion(), item.Amount)
		if err != nil {
			return 0, nil, err
		}
		sum += protein
		totals = append(totals, ItemTotal{LineItem: item, Protein: protein})
	}
	if !finite(sum) {
		return 0, nil, &CalculationError{Reason: "meal protein total is not a finite number"}
	}
	return round(sum, 2), totals, nil
}

// Aggregate reduces consumed meals to per-meal totals and a day total.
func Aggregate(rows []ConsumedMealRow) (DayTotal, error) {
	result := DayTotal{Meals: make([]MealTotal, 0, len(rows))}
	var sum float64
	for _, row := range rows {
		protein, items, err := MealProtein(row.Items)
		if err != nil {
			return DayTotal{}, err
		}
		sum += protein
		result.Meals = append(result.Meals, MealTotal{
			ID:         row.ID,
			MealID:     row.MealID,
			MealName:   row.MealName,
			ConsumedAt: row.ConsumedAt,
			Items:      items,
			Protein:    protein,
		})
	}
	if !finite(sum) {
		return DayTotal{}, &CalculationError{Reason: "day protein total is not a finite number"}
	}
	result.Protein = round(sum, 2)
	return result, nil
}

// Weekly buckets rows by the weekday they fall on in loc and evaluates each
// bucket against goal. All seven buckets are present.
func Weekly(rows []ConsumedMealRow, bounds Range, loc *time.Location, goal *Goal) (Week, error) {
	week := Week{Range: bounds}
	var sums [7]float64
	for _, row := range rows {
		protein, _, err := MealProtein(row.Items)
		if err != nil {
			return Week{}, err
		}
		sums[row.ConsumedAt.In(loc).Weekday()] += protein
	}
	for i := range week.Days {
		if !finite(sums[i]) {
			return Week{}, &CalculationError{Reason: time.Weekday(i).String() + " protein total is not a finite number"}
		}
		total := round(sums[i], 2)
		week.Days[i] = WeekDay{
			Weekday:    time.Weekday(i),
			Protein:    total,
			Evaluation: Evaluate(total, goal),
		}
	}
	return week, nil
}
