package consumption

import (
	"time"

	"protein-tracker/internal/domain/nutrition"
)

// ConsumedMeal records that a meal was eaten. CreatedAt is the consumption instant.
type ConsumedMeal struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	MealID    string    `gorm:"type:uuid;index;not null"`
	CreatedAt time.Time `gorm:"index;not null"`
}

func (ConsumedMeal) TableName() string {
	return "consumed_meals"
}

type LogMealInput struct {
	MealID     string
	ConsumedAt *time.Time
}

// Day is the consumption on one local calendar day.
type Day struct {
	Date     string
	Timezone string
	Range    nutrition.Range
	nutrition.DayTotal
}
