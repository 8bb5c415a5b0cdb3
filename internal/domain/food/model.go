package food

import (
	"time"

	"protein-tracker/internal/domain/nutrition"
)

type Food struct {
	ID                string                `gorm:"type:uuid;primaryKey"`
	Name              string                `gorm:"not null"`
	PortionType       nutrition.PortionType `gorm:"not null"`
	PortionAmount     float64               `gorm:"type:double precision;not null"`
	ProteinPerPortion float64               `gorm:"type:double precision;not null"`
	CreatedAt         time.Time             `gorm:"autoCreateTime"`
}

func (Food) TableName() string {
	return "food"
}

func (f Food) Portion() nutrition.Portion {
	return nutrition.Portion{
		FoodID:            f.ID,
		Type:              f.PortionType,
		Amount:            f.PortionAmount,
		ProteinPerPortion: f.ProteinPerPortion,
	}
}

type CreateFoodInput struct {
	Name              string
	PortionType       string
	PortionAmount     float64
	ProteinPerPortion float64
}
