package meals

import (
	"context"

	"protein-tracker/internal/domain/food"
)

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error

	ListMeals(ctx context.Context) ([]Meal, error)
	GetMealByID(ctx context.Context, id string) (*Meal, error)
	CreateMeal(ctx context.Context, meal *Meal) error
	DeleteMeal(ctx context.Context, id string) (bool, error)

	CreateMealFoods(ctx context.Context, items []MealFood) error
	// GetItemsByMealIDs returns line items per meal in creation order.
	GetItemsByMealIDs(ctx context.Context, mealIDs []string) (map[string][]ItemDetail, error)
}

type FoodLookup interface {
	GetFoodsByIDs(ctx context.Context, ids []string) (map[string]food.Food, error)
}
