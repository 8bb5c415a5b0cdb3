package meals

import (
	"context"
	"errors"
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

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(mealsdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) ListMeals(ctx context.Context) ([]mealsdomain.Meal, error) {
	var items []mealsdomain.Meal
	if err := r.db.WithContext(ctx).Order("created_at desc, id asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) GetMealByID(ctx context.Context, id string) (*mealsdomain.Meal, error) {
	var meal mealsdomain.Meal
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&meal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, mealsdomain.ErrMealNotFound
		}
		return nil, err
	}
	return &meal, nil
}

func (r *PostgresRepository) CreateMeal(ctx context.Context, meal *mealsdomain.Meal) error {
	return r.db.WithContext(ctx).Create(meal).Error
}

// DeleteMeal removes the meal, its line items and its consumption events.
func (r *PostgresRepository) DeleteMeal(ctx context.Context, id string) (bool, error) {
	var deleted bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("meal_id = ?", id).Delete(&consumptiondomain.ConsumedMeal{}).Error; err != nil {
			return err
		}
		if err := tx.Where("meal_id = ?", id).Delete(&mealsdomain.MealFood{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&mealsdomain.Meal{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected > 0
		return nil
	})
	return deleted, err
}

func (r *PostgresRepository) CreateMealFoods(ctx context.Context, items []mealsdomain.MealFood) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

type itemRow struct {
	ID                string    `gorm:"column:id"`
	MealID            string    `gorm:"column:meal_id"`
	FoodID            string    `gorm:"column:food_id"`
	FoodName          string    `gorm:"column:food_name"`
	PortionType       string    `gorm:"column:portion_type"`
	PortionAmount     float64   `gorm:"column:portion_amount"`
	ProteinPerPortion float64   `gorm:"column:protein_per_portion"`
	Amount            float64   `gorm:"column:amount"`
	CreatedAt         time.Time `gorm:"column:created_at"`
}

func (r *PostgresRepository) GetItemsByMealIDs(ctx context.Context, mealIDs []string) (map[string][]mealsdomain.ItemDetail, error) {
	result := make(map[string][]mealsdomain.ItemDetail, len(mealIDs))
	if len(mealIDs) == 0 {
		return result, nil
	}

	var rows []itemRow
	if err := r.db.WithContext(ctx).
		Table("meal_foods").
		Select("meal_foods.id, meal_foods.meal_id, meal_foods.food_id, food.name AS food_name, food.portion_type, food.portion_amount, food.protein_per_portion, meal_foods.amount, meal_foods.created_at").
		Joins("JOIN food ON food.id = meal_foods.food_id").
		Where("meal_foods.meal_id IN ?", mealIDs).
		Order("meal_foods.created_at asc, meal_foods.item_order asc").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		result[row.MealID] = append(result[row.MealID], mealsdomain.ItemDetail{
			ID:                row.ID,
			MealID:            row.MealID,
			FoodID:            row.FoodID,
			FoodName:          row.FoodName,
			PortionType:       nutrition.PortionType(row.PortionType),
			PortionAmount:     row.PortionAmount,
			ProteinPerPortion: row.ProteinPerPortion,
			Amount:            row.Amount,
			CreatedAt:         row.CreatedAt,
		})
	}

	return result, nil
}
