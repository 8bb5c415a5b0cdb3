package goal

import (
	"context"
	"errors"

	goaldomain "protein-tracker/internal/domain/goal"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetGoal(ctx context.Context, id int) (*goaldomain.DailyGoal, error) {
	var stored goaldomain.DailyGoal
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&stored).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &stored, nil
}

func (r *PostgresRepository) UpsertGoal(ctx context.Context, goal *goaldomain.DailyGoal) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"protein", "carbohydrate", "fat", "calories", "updated_at"}),
		}).
		Create(goal).Error
}
