package progress

import "protein-tracker/internal/domain/nutrition"

type DaySummary struct {
	Date     string
	Timezone string
	Range    nutrition.Range
	Meals    []nutrition.MealTotal
	Protein  float64
	Goal     *nutrition.Goal
	nutrition.Evaluation
}

type WeekProgress struct {
	Date     string
	Timezone string
	Goal     *nutrition.Goal
	Week     nutrition.Week
}
