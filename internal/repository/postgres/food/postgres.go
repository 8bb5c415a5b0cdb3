package food

import (
	"context"
	"errors"

	fooddomain "protein-tracker/internal/domain/food"
	mealsdomain "protein-tracker/internal/domain/meals"

	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListFoods(ctx context.Context) ([]fooddomain.Food, error) {
	var items []fooddomain.Food
	if err := r.db.WithContext(ctx).Order("name asc, created_at asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) GetFoodByID(ctx context.Context, id string) (*fooddomain.Food, error) {
	var item fooddomain.Food
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fooddomain.ErrFoodNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *PostgresRepository) GetFoodsByIDs(ctx context.Context, ids []string) (map[string]fooddomain.Food, error) {
	result := make(map[string]fooddomain.Food, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var items []fooddomain.Food
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&items).Error; err != nil {
		return nil, err
	}
	for _, item := range items {
		result[item.ID] = item
	}
	return result, nil
}

func (r *PostgresRepository) CreateFood(ctx context.Context, item *fooddomain.Food) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// DeleteFood removes the food and every meal line item that references it.
func (r *PostgresRepository) DeleteFood(ctx context.Context, id string) (bool, error) {
	var deleted bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("food_id = ?", id).Delete(&mealsdomain.MealFood{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&fooddomain.Food{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected > 0
		return nil
	})
	return deleted, err
}
