package goal

import (
	"context"
	"fmt"
	"math"
	"time"

	"protein-tracker/internal/domain/nutrition"
)

type Service struct {
	repo     Repository
	cache    Cache
	cacheTTL time.Duration
	now      func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, cache: noopCache{}, now: time.Now}
}

// WithCache serves reads of the active goal from cache for up to ttl.
func (s *Service) WithCache(cache Cache, ttl time.Duration) *Service {
	if cache == nil || ttl <= 0 {
		return s
	}
	s.cache = cache
	s.cacheTTL = ttl
	return s
}

func (s *Service) GetDailyGoal(ctx context.Context) (*DailyGoal, error) {
	if cached, ok := s.cache.Get(); ok {
		return cached, nil
	}

	stored, err := s.repo.GetGoal(ctx, activeGoalID)
	if err != nil {
		return nil, err
	}
	s.cache.Set(stored, s.cacheTTL)
	return stored, nil
}

// Goal returns the active goal for evaluation, or nil when none is set.
func (s *Service) Goal(ctx context.Context) (*nutrition.Goal, error) {
	stored, err := s.GetDailyGoal(ctx)
	if err != nil || stored == nil {
		return nil, err
	}
	return stored.Goal(), nil
}

// SetDailyGoal overwrites the active goal.
func (s *Service) SetDailyGoal(ctx context.Context, input SetGoalInput) (*DailyGoal, error) {
	if math.IsNaN(input.Protein) || input.Protein <= 0 {
		return nil, fmt.Errorf("%w: protein must be positive", ErrInvalidInput)
	}
	if !nutrition.ValidQuantity(input.Protein) {
		return nil, fmt.Errorf("%w: protein must be at most %d", ErrInvalidInput, nutrition.MaxQuantity)
	}
	macros := []struct {
		name  string
		value *float64
	}{
		{name: "carbohydrate", value: input.Carbohydrate},
		{name: "fat", value: input.Fat},
		{name: "calories", value: input.Calories},
	}
	for _, macro := range macros {
		if macro.value == nil {
			continue
		}
		if math.IsNaN(*macro.value) || *macro.value < 0 {
			return nil, fmt.Errorf("%w: %s must not be negative", ErrInvalidInput, macro.name)
		}
		if !nutrition.ValidQuantity(*macro.value) {
			return nil, fmt.Errorf("%w: %s must be at most %d", ErrInvalidInput, macro.name, nutrition.MaxQuantity)
		}
	}

	now := s.now().UTC()
	stored := DailyGoal{
		ID:           activeGoalID,
		Protein:      input.Protein,
		Carbohydrate: input.Carbohydrate,
		Fat:          input.Fat,
		Calories:     input.Calories,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.UpsertGoal(ctx, &stored); err != nil {
		s.cache.Delete()
		return nil, err
	}
	s.cache.Set(&stored, s.cacheTTL)
	return &stored, nil
}
