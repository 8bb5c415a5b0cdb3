package consumption

import (
	"context"
	"fmt"
	"strings"
	"time"

	"protein-tracker/internal/domain/nutrition"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// LogMeal records a consumption of an existing meal, at input.ConsumedAt or now.
func (s *Service) LogMeal(ctx context.Context, input LogMealInput) (*ConsumedMeal, error) {
	mealID := strings.TrimSpace(input.MealID)
	if mealID == "" {
		return nil, fmt.Errorf("%w: meal_id is required", ErrInvalidInput)
	}

	exists, err := s.repo.MealExists(ctx, mealID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrMealNotFound
	}

	consumedAt := s.now()
	if input.ConsumedAt != nil {
		consumedAt = *input.ConsumedAt
	}

	consumed := ConsumedMeal{
		ID:        uuid.NewString(),
		MealID:    mealID,
		CreatedAt: consumedAt.UTC(),
	}
	if err := s.repo.CreateConsumedMeal(ctx, &consumed); err != nil {
		return nil, err
	}

	return &consumed, nil
}

// ListDay returns the meals consumed on date in tz with their protein breakdown.
// An empty date means today in tz.
func (s *Service) ListDay(ctx context.Context, date, tz string) (Day, error) {
	loc, err := nutrition.LoadTimezone(tz)
	if err != nil {
		return Day{}, err
	}
	if date == "" {
		date = nutrition.Today(s.now(), loc)
	}

	bounds, err := nutrition.DayBounds(date, loc.String())
	if err != nil {
		return Day{}, err
	}

	rows, err := s.repo.ListRows(ctx, bounds)
	if err != nil {
		return Day{}, err
	}

	total, err := nutrition.Aggregate(rows)
	if err != nil {
		return Day{}, err
	}
	return Day{Date: date, Timezone: loc.String(), Range: bounds, DayTotal: total}, nil
}

func (s *Service) DeleteConsumedMeal(ctx context.Context, id string) error {
	deleted, err := s.repo.DeleteConsumedMeal(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrConsumedMealNotFound
	}
	return nil
}
