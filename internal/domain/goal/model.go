package goal

import (
	"time"

	"protein-tracker/internal/domain/nutrition"
)

// activeGoalID is the key of the single stored goal row.
const activeGoalID = 1

type DailyGoal struct {
	ID           int       `gorm:"primaryKey;autoIncrement:false"`
	Protein      float64   `gorm:"type:double precision;not null"`
	Carbohydrate *float64  `gorm:"type:double precision"`
	Fat          *float64  `gorm:"type:double precision"`
	Calories     *float64  `gorm:"type:double precision"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (DailyGoal) TableName() string {
	return "daily_goal"
}

func (g DailyGoal) Goal() *nutrition.Goal {
	return &nutrition.Goal{
		Protein:      g.Protein,
		Carbohydrate: g.Carbohydrate,
		Fat:          g.Fat,
		Calories:     g.Calories,
	}
}

type SetGoalInput struct {
	Protein      float64
	Carbohydrate *float64
	Fat          *float64
	Calories     *float64
}
