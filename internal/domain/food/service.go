package food

import (
	"context"
	"fmt"
	"math"
	"strings"

	"protein-tracker/internal/domain/nutrition"

	"github.com/google/uuid"
)

const maxNameLen = 100

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListFoods(ctx context.Context) ([]Food, error) {
	return s.repo.ListFoods(ctx)
}

func (s *Service) GetFood(ctx context.Context, id string) (*Food, error) {
	return s.repo.GetFoodByID(ctx, id)
}

// GetFoodsByIDs returns the foods that exist among ids, keyed by id.
func (s *Service) GetFoodsByIDs(ctx context.Context, ids []string) (map[string]Food, error) {
	if len(ids) == 0 {
		return map[string]Food{}, nil
	}
	return s.repo.GetFoodsByIDs(ctx, ids)
}

func (s *Service) CreateFood(ctx context.Context, input CreateFoodInput) (*Food, error) {
	name, err := validateName(input.Name)
	if err != nil {
		return nil, err
	}

	portionType := nutrition.PortionType(strings.ToLower(strings.TrimSpace(input.PortionType)))
	if !portionType.Valid() {
		return nil, fmt.Errorf("%w: portion_type must be unit or grams", ErrInvalidInput)
	}

	portionAmount := input.PortionAmount
	switch portionType {
	case nutrition.PortionGrams:
		if math.IsNaN(portionAmount) || portionAmount <= 0 {
			return nil, fmt.Errorf("%w: portion_amount must be positive for grams", ErrInvalidInput)
		}
	case nutrition.PortionUnit:
		if math.IsNaN(portionAmount) || portionAmount <= 0 {
			portionAmount = 1
		}
	}
	if !nutrition.ValidQuantity(portionAmount) {
		return nil, fmt.Errorf("%w: portion_amount must be at most %d", ErrInvalidInput, nutrition.MaxQuantity)
	}

	if math.IsNaN(input.ProteinPerPortion) || input.ProteinPerPortion < 0 {
		return nil, fmt.Errorf("%w: protein_per_portion must not be negative", ErrInvalidInput)
	}
	if !nutrition.ValidQuantity(input.ProteinPerPortion) {
		return nil, fmt.Errorf("%w: protein_per_portion must be at most %d", ErrInvalidInput, nutrition.MaxQuantity)
	}

	food := Food{
		ID:                uuid.NewString(),
		Name:              name,
		PortionType:       portionType,
		PortionAmount:     portionAmount,
		ProteinPerPortion: input.ProteinPerPortion,
	}

	if err := s.repo.CreateFood(ctx, &food); err != nil {
		return nil, err
	}

	return &food, nil
}

func (s *Service) DeleteFood(ctx context.Context, id string) error {
	deleted, err := s.repo.DeleteFood(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrFoodNotFound
	}
	return nil
}

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len([]rune(name)) > maxNameLen {
		return "", fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, maxNameLen)
	}
	return name, nil
}
