package meals

import (
	"time"

	"protein-tracker/internal/domain/nutrition"
)

type Meal struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Meal) TableName() string {
	return "meals"
}

// MealFood links a meal to a food with the amount eaten, in the food's native unit.
type MealFood struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	MealID    string    `gorm:"type:uuid;index;not null"`
	FoodID    string    `gorm:"type:uuid;index;not null"`
	Amount    float64   `gorm:"type:double precision;not null"`
	ItemOrder int       `gorm:"not null;default:0"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (MealFood) TableName() string {
	return "meal_foods"
}

// ItemDetail is a line item joined with its food.
type ItemDetail struct {
	ID                string
	MealID            string
	FoodID            string
	FoodName          string
	PortionType       nutrition.PortionType
	PortionAmount     float64
	ProteinPerPortion float64
	Amount            float64
	CreatedAt         time.Time
}

func (d ItemDetail) LineItem() nutrition.LineItem {
	return nutrition.LineItem{
		FoodID:            d.FoodID,
		FoodName:          d.FoodName,
		PortionType:       d.PortionType,
		PortionAmount:     d.PortionAmount,
		ProteinPerPortion: d.ProteinPerPortion,
		Amount:            d.Amount,
	}
}

type Item struct {
	ItemDetail
	Protein float64
}

type MealWithItems struct {
	Meal
	Items   []Item
	Protein float64
}

type CreateMealInput struct {
	Name  string
	Items []CreateItemInput
}

type CreateItemInput struct {
	FoodID string
	Amount float64
}
