package meals

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"protein-tracker/internal/domain/nutrition"

	"github.com/google/uuid"
)

const maxNameLen = 100

type Service struct {
	repo  Repository
	foods FoodLookup
	now   func() time.Time
}

func NewService(repo Repository, foods FoodLookup) *Service {
	return &Service{
		repo:  repo,
		foods: foods,
		now:   time.Now,
	}
}

// ListMeals returns every meal with its items and protein breakdown.
func (s *Service) ListMeals(ctx context.Context) ([]MealWithItems, error) {
	meals, err := s.repo.ListMeals(ctx)
	if err != nil {
		return nil, err
	}

	if len(meals) == 0 {
		return []MealWithItems{}, nil
	}

	mealIDs := make([]string, 0, len(meals))
	for _, meal := range meals {
		mealIDs = append(mealIDs, meal.ID)
	}

	itemsByMeal, err := s.repo.GetItemsByMealIDs(ctx, mealIDs)
	if err != nil {
		return nil, err
	}

	result := make([]MealWithItems, 0, len(meals))
	for _, meal := range meals {
		withItems, err := breakdown(meal, itemsByMeal[meal.ID])
		if err != nil {
			return nil, err
		}
		result = append(result, withItems)
	}

	return result, nil
}

func (s *Service) GetMeal(ctx context.Context, id string) (*MealWithItems, error) {
	meal, err := s.repo.GetMealByID(ctx, id)
	if err != nil {
		return nil, err
	}

	itemsByMeal, err := s.repo.GetItemsByMealIDs(ctx, []string{id})
	if err != nil {
		return nil, err
	}

	withItems, err := breakdown(*meal, itemsByMeal[id])
	if err != nil {
		return nil, err
	}
	return &withItems, nil
}

// CreateMeal stores a meal and its line items atomically.
func (s *Service) CreateMeal(ctx context.Context, input CreateMealInput) (*MealWithItems, error) {
	name, err := validateName(input.Name)
	if err != nil {
		return nil, err
	}
	if len(input.Items) == 0 {
		return nil, fmt.Errorf("%w: at least one food is required", ErrInvalidInput)
	}

	foodIDs := make([]string, 0, len(input.Items))
	for _, item := range input.Items {
		foodID := strings.TrimSpace(item.FoodID)
		if foodID == "" {
			return nil, fmt.Errorf("%w: food_id is required", ErrInvalidInput)
		}
		if math.IsNaN(item.Amount) || item.Amount <= 0 {
			return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
		}
		if !nutrition.ValidQuantity(item.Amount) {
			return nil, fmt.Errorf("%w: amount must be at most %d", ErrInvalidInput, nutrition.MaxQuantity)
		}
		foodIDs = append(foodIDs, foodID)
	}

	foods, err := s.foods.GetFoodsByIDs(ctx, foodIDs)
	if err != nil {
		return nil, err
	}
	for _, foodID := range foodIDs {
		if _, ok := foods[foodID]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownFood, foodID)
		}
	}

	createdAt := s.now().UTC()
	meal := Meal{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: createdAt,
	}

	links := make([]MealFood, 0, len(input.Items))
	details := make([]ItemDetail, 0, len(input.Items))
	for i, item := range input.Items {
		link := MealFood{
			ID:        uuid.NewString(),
			MealID:    meal.ID,
			FoodID:    foodIDs[i],
			Amount:    item.Amount,
			ItemOrder: i,
			CreatedAt: createdAt,
		}
		links = append(links, link)

		f := foods[link.FoodID]
		details = append(details, ItemDetail{
			ID:                link.ID,
			MealID:            meal.ID,
			FoodID:            f.ID,
			FoodName:          f.Name,
			PortionType:       f.PortionType,
			PortionAmount:     f.PortionAmount,
			ProteinPerPortion: f.ProteinPerPortion,
			Amount:            link.Amount,
			CreatedAt:         createdAt,
		})
	}

	withItems, err := breakdown(meal, details)
	if err != nil {
		return nil, err
	}

	err = s.repo.Transaction(ctx, func(tx Repository) error {
		if err := tx.CreateMeal(ctx, &meal); err != nil {
			return err
		}
		return tx.CreateMealFoods(ctx, links)
	})
	if err != nil {
		return nil, err
	}

	return &withItems, nil
}

// DeleteMeal removes a meal together with its line items and consumption events.
func (s *Service) DeleteMeal(ctx context.Context, id string) error {
	deleted, err := s.repo.DeleteMeal(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrMealNotFound
	}
	return nil
}

func breakdown(meal Meal, details []ItemDetail) (MealWithItems, error) {
	lines := make([]nutrition.LineItem, 0, len(details))
	for _, detail := range details {
		lines = append(lines, detail.LineItem())
	}

	protein, totals, err := nutrition.MealProtein(lines)
	if err != nil {
		return MealWithItems{}, err
	}

	items := make([]Item, 0, len(details))
	for i, detail := range details {
		items = append(items, Item{ItemDetail: detail, Protein: totals[i].Protein})
	}

	return MealWithItems{Meal: meal, Items: items, Protein: protein}, nil
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
