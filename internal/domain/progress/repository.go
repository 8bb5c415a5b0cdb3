package progress

import (
	"context"

	"protein-tracker/internal/domain/nutrition"
)

type RowSource interface {
	ListRows(ctx context.Context, r nutrition.Range) ([]nutrition.ConsumedMealRow, error)
}

type GoalSource interface {
	Goal(ctx context.Context) (*nutrition.Goal, error)
}
