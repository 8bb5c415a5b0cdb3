package food

import "context"

type Repository interface {
	ListFoods(ctx context.Context) ([]Food, error)
	GetFoodByID(ctx context.Context, id string) (*Food, error)
	GetFoodsByIDs(ctx context.Context, ids []string) (map[string]Food, error)
	CreateFood(ctx context.Context, food *Food) error
	DeleteFood(ctx context.Context, id string) (bool, error)
}
