package consumption

import (
	"context"
	"time"

	consumptiondomain "protein-tracker/internal/domain/consumption"
	mealsdomain "protein-tracker/internal/domain/meals"
	"protein-tracker/internal/domain/nutrition"

	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) MealExists(ctx context.Context, mealID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&mealsdomain.Meal{}).Where("id = ?", mealID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresRepository) CreateConsumedMeal(ctx context.Context, consumed *consumptiondomain.ConsumedMeal) error {
	return r.db.WithContext(ctx).Create(consumed).Error
}

func (r *PostgresRepository) DeleteConsumedMeal(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&consumptiondomain.ConsumedMeal{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}

type consumedRow struct {
	ID         string    `gorm:"column:id"`
	MealID     string    `gorm:"column:meal_id"`
	MealName   string    `gorm:"column:meal_name"`
	ConsumedAt time.Time `gorm:"column:consumed_at"`
}

type lineRow struct {
	MealID            string  `gorm:"column:meal_id"`
	FoodID            string  `gorm:"column:food_id"`
	FoodName          string  `gorm:"column:food_name"`
	PortionType       string  `gorm:"column:portion_type"`
	PortionAmount     float64 `gorm:"column:portion_amount"`
	ProteinPerPortion float64 `gorm:"column:protein_per_portion"`
	Amount            float64 `gorm:"column:amount"`
}

func (r *PostgresRepository) ListRows(ctx context.Context, bounds nutrition.Range) ([]nutrition.ConsumedMealRow, error) {
	var consumed []consumedRow
	if err := r.db.WithContext(ctx).
		Table("consumed_meals").
		Select("consumed_meals.id, consumed_meals.meal_id, meals.name AS meal_name, consumed_meals.created_at AS consumed_at").
		Joins("JOIN meals ON meals.id = consumed_meals.meal_id").
		Where("consumed_meals.created_at >= ? AND consumed_meals.created_at < ?", bounds.Start.UTC(), bounds.End.UTC()).
		Order("consumed_meals.created_at asc, consumed_meals.id asc").
		Scan(&consumed).Error; err != nil {
		return nil, err
	}

	if len(consumed) == 0 {
		return []nutrition.ConsumedMealRow{}, nil
	}

	mealIDs := make([]string, 0, len(consumed))
	seen := make(map[string]struct{}, len(consumed))
	for _, row := range consumed {
		if _, ok := seen[row.MealID]; ok {
			continue
		}
		seen[row.MealID] = struct{}{}
		mealIDs = append(mealIDs, row.MealID)
	}

	var lines []lineRow
	if err := r.db.WithContext(ctx).
		Table("meal_foods").
		Select("meal_foods.meal_id, meal_foods.food_id, food.name AS food_name, food.portion_type, food.portion_amount, food.protein_per_portion, meal_foods.amount").
		Joins("JOIN food ON food.id = meal_foods.food_id").
		Where("meal_foods.meal_id IN ?", mealIDs).
		Order("meal_foods.created_at asc, meal_foods.item_order asc").
		Scan(&lines).Error; err != nil {
		return nil, err
	}

	itemsByMeal := make(map[string][]nutrition.LineItem, len(mealIDs))
	for _, line := range lines {
		itemsByMeal[line.MealID] = append(itemsByMeal[line.MealID], nutrition.LineItem{
			FoodID:            line.FoodID,
			FoodName:          line.FoodName,
			PortionType:       nutrition.PortionType(line.PortionType),
			PortionAmount:     line.PortionAmount,
			ProteinPerPortion: line.ProteinPerPortion,
			Amount:            line.Amount,
		})
	}

	result := make([]nutrition.ConsumedMealRow, 0, len(consumed))
	for _, row := range consumed {
		result = append(result, nutrition.ConsumedMealRow{
			ID:         row.ID,
			MealID:     row.MealID,
			MealName:   row.MealName,
			ConsumedAt: row.ConsumedAt.UTC(),
			Items:      itemsByMeal[row.MealID],
		})
	}
	return result, nil
}
