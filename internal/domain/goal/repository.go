package goal

import "context"

type Repository interface {
	// GetGoal returns nil when no goal has been set.
	GetGoal(ctx context.Context, id int) (*DailyGoal, error)
	UpsertGoal(ctx context.Context, goal *DailyGoal) error
}
