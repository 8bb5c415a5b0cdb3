package nutrition

import "time"

type PortionType string

const (
	PortionUnit  PortionType = "unit"
	PortionGrams PortionType = "grams"
)

func (p PortionType) Valid() bool {
	return p == PortionUnit || p == PortionGrams
}

// Portion is the part of a food the calculator needs.
type Portion struct {
	FoodID            string
	Type              PortionType
	Amount            float64
	ProteinPerPortion float64
}

// LineItem is one food inside a consumed meal, denormalized for aggregation.
type LineItem struct {
	FoodID            string
	FoodName          string
	PortionType       PortionType
	PortionAmount     float64
	ProteinPerPortion float64
	Amount            float64
}

func (i LineItem) Portion() Portion {
	return Portion{
		FoodID:            i.FoodID,
		Type:              i.PortionType,
		Amount:            i.PortionAmount,
		ProteinPerPortion: i.ProteinPerPortion,
	}
}

// ConsumedMealRow is a consumed-meal event joined with its meal and line items.
type ConsumedMealRow struct {
	ID         string
	MealID     string
	MealName   string
	ConsumedAt time.Time
	Items      []LineItem
}

// Goal carries the daily targets. Only Protein is evaluated.
type Goal struct {
	Protein      float64
	Carbohydrate *float64
	Fat          *float64
	Calories     *float64
}

type Range struct {
	Start time.Time
	End   time.Time
}

func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}
