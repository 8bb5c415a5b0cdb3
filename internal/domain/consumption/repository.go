package consumption

import (
	"context"

	"protein-tracker/internal/domain/nutrition"
)

type Repository interface {
	MealExists(ctx context.Context, mealID string) (bool, error)
	CreateConsumedMeal(ctx context.Context, consumed *ConsumedMeal) error
	DeleteConsumedMeal(ctx context.Context, id string) (bool, error)
	// ListRows returns consumed meals in [r.Start, r.End) with their line items,
	// ordered by consumption time.
	ListRows(ctx context.Context, r nutrition.Range) ([]nutrition.ConsumedMealRow, error)
}
