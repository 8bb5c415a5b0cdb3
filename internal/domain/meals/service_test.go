package meals

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"protein-tracker/internal/domain/food"
	"protein-tracker/internal/domain/nutrition"
)

type fakeMealsRepo struct {
	meals    map[string]Meal
	order    []string
	items    map[string][]ItemDetail
	links    []MealFood
	foods    map[string]food.Food
	txCalls  int
	failLink error
}

func newFakeMealsRepo(foods map[string]food.Food) *fakeMealsRepo {
	return &fakeMealsRepo{
		meals: map[string]Meal{},
		items: map[string][]ItemDetail{},
		foods: foods,
	}
}

func (f *fakeMealsRepo) Transaction(ctx context.Context, fn func(Repository) error) error {
	f.txCalls++
	snapshotMeals := make(map[string]Meal, len(f.meals))
	for k, v := range f.meals {
		snapshotMeals[k] = v
	}
	snapshotOrder := append([]string(nil), f.order...)
	if err := fn(f); err != nil {
		f.meals = snapshotMeals
		f.order = snapshotOrder
		return err
	}
	return nil
}

func (f *fakeMealsRepo) ListMeals(ctx context.Context) ([]Meal, error) {
	items := make([]Meal, 0, len(f.order))
	for _, id := range f.order {
		if meal, ok := f.meals[id]; ok {
			items = append(items, meal)
		}
	}
	return items, nil
}

func (f *fakeMealsRepo) GetMealByID(ctx context.Context, id string) (*Meal, error) {
	meal, ok := f.meals[id]
	if !ok {
		return nil, ErrMealNotFound
	}
	return &meal, nil
}

func (f *fakeMealsRepo) CreateMeal(ctx context.Context, meal *Meal) error {
	f.meals[meal.ID] = *meal
	f.order = append(f.order, meal.ID)
	return nil
}

func (f *fakeMealsRepo) DeleteMeal(ctx context.Context, id string) (bool, error) {
	if _, ok := f.meals[id]; !ok {
		return false, nil
	}
	delete(f.meals, id)
	delete(f.items, id)
	return true, nil
}

func (f *fakeMealsRepo) CreateMealFoods(ctx context.Context, links []MealFood) error {
	if f.failLink != nil {
		return f.failLink
	}
	for _, link := range links {
		fd := f.foods[link.FoodID]
		f.items[link.MealID] = append(f.items[link.MealID], ItemDetail{
			ID:                link.ID,
			MealID:            link.MealID,
			FoodID:            link.FoodID,
			FoodName:          fd.Name,
			PortionType:       fd.PortionType,
			PortionAmount:     fd.PortionAmount,
			ProteinPerPortion: fd.ProteinPerPortion,
			Amount:            link.Amount,
			CreatedAt:         link.CreatedAt,
		})
	}
	f.links = append(f.links, links...)
	return nil
}

func (f *fakeMealsRepo) GetItemsByMealIDs(ctx context.Context, mealIDs []string) (map[string][]ItemDetail, error) {
	result := make(map[string][]ItemDetail, len(mealIDs))
	for _, id := range mealIDs {
		if items, ok := f.items[id]; ok {
			result[id] = items
		}
	}
	return result, nil
}

type fakeFoods map[string]food.Food

func (f fakeFoods) GetFoodsByIDs(ctx context.Context, ids []string) (map[string]food.Food, error) {
	result := make(map[string]food.Food, len(ids))
	for _, id := range ids {
		if item, ok := f[id]; ok {
			result[id] = item
		}
	}
	return result, nil
}

func testFoods() fakeFoods {
	return fakeFoods{
		"chicken": {ID: "chicken", Name: "Chicken", PortionType: nutrition.PortionGrams, PortionAmount: 100, ProteinPerPortion: 20},
		"egg":     {ID: "egg", Name: "Egg", PortionType: nutrition.PortionUnit, PortionAmount: 1, ProteinPerPortion: 6},
	}
}

func TestCreateMealComputesBreakdown(t *testing.T) {
	foods := testFoods()
	repo := newFakeMealsRepo(foods)
	svc := NewService(repo, foods)
	svc.now = func() time.Time { return time.Date(2024, 6, 12, 8, 0, 0, 0, time.UTC) }

	created, err := svc.CreateMeal(context.Background(), CreateMealInput{
		Name: "Breakfast",
		Items: []CreateItemInput{
			{FoodID: "chicken", Amount: 150},
			{FoodID: "egg", Amount: 2},
		},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if created.Protein != 42 {
		t.Fatalf("expected 42, got %v", created.Protein)
	}
	if len(created.Items) != 2 || created.Items[0].Protein != 30 || created.Items[1].Protein != 12 {
		t.Fatalf("unexpected items %+v", created.Items)
	}
	if repo.txCalls != 1 {
		t.Fatalf("expected one transaction, got %d", repo.txCalls)
	}
	if len(repo.links) != 2 || repo.links[0].ItemOrder != 0 || repo.links[1].ItemOrder != 1 {
		t.Fatalf("expected ordered links, got %+v", repo.links)
	}
}

func TestCreateMealRejectsUnknownFood(t *testing.T) {
	foods := testFoods()
	repo := newFakeMealsRepo(foods)
	svc := NewService(repo, foods)

	_, err := svc.CreateMeal(context.Background(), CreateMealInput{
		Name:  "Lunch",
		Items: []CreateItemInput{{FoodID: "tofu", Amount: 100}},
	})
	if !errors.Is(err, ErrUnknownFood) {
		t.Fatalf("expected ErrUnknownFood, got %v", err)
	}
	if repo.txCalls != 0 || len(repo.meals) != 0 {
		t.Fatalf("expected nothing stored")
	}
}

func TestCreateMealValidation(t *testing.T) {
	foods := testFoods()
	cases := []CreateMealInput{
		{Name: "", Items: []CreateItemInput{{FoodID: "egg", Amount: 1}}},
		{Name: "Snack"},
		{Name: "Snack", Items: []CreateItemInput{{FoodID: "egg", Amount: 0}}},
		{Name: "Snack", Items: []CreateItemInput{{FoodID: " ", Amount: 1}}},
		{Name: "Snack", Items: []CreateItemInput{{FoodID: "egg", Amount: 1e8}}},
		{Name: "Snack", Items: []CreateItemInput{{FoodID: "egg", Amount: math.Inf(1)}}},
	}

	for i, input := range cases {
		svc := NewService(newFakeMealsRepo(foods), foods)
		if _, err := svc.CreateMeal(context.Background(), input); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
	}
}

func TestCreateMealRollsBackOnItemFailure(t *testing.T) {
	foods := testFoods()
	repo := newFakeMealsRepo(foods)
	repo.failLink = errors.New("insert failed")
	svc := NewService(repo, foods)

	_, err := svc.CreateMeal(context.Background(), CreateMealInput{
		Name:  "Dinner",
		Items: []CreateItemInput{{FoodID: "egg", Amount: 3}},
	})
	if err == nil {
		t.Fatalf("expected error")
	}
	if len(repo.meals) != 0 {
		t.Fatalf("expected meal to be rolled back, got %d", len(repo.meals))
	}
}

func TestListMealsIncludesProtein(t *testing.T) {
	foods := testFoods()
	repo := newFakeMealsRepo(foods)
	svc := NewService(repo, foods)

	for _, input := range []CreateMealInput{
		{Name: "A", Items: []CreateItemInput{{FoodID: "egg", Amount: 2}}},
		{Name: "B", Items: []CreateItemInput{{FoodID: "chicken", Amount: 50}, {FoodID: "egg", Amount: 1}}},
	} {
		if _, err := svc.CreateMeal(context.Background(), input); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	items, err := svc.ListMeals(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 meals, got %d", len(items))
	}
	if items[0].Protein != 12 || items[1].Protein != 16 {
		t.Fatalf("unexpected protein %v / %v", items[0].Protein, items[1].Protein)
	}
}

func TestListMealsEmpty(t *testing.T) {
	svc := NewService(newFakeMealsRepo(nil), fakeFoods{})
	items, err := svc.ListMeals(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Fatalf("expected empty slice, got %v", items)
	}
}

func TestGetMealSurfacesCalculationError(t *testing.T) {
	foods := fakeFoods{
		"broken": {ID: "broken", Name: "Broken", PortionType: nutrition.PortionGrams, PortionAmount: 0, ProteinPerPortion: 10},
	}
	repo := newFakeMealsRepo(foods)
	repo.meals["m1"] = Meal{ID: "m1", Name: "Bad"}
	repo.order = []string{"m1"}
	repo.items["m1"] = []ItemDetail{{ID: "i1", MealID: "m1", FoodID: "broken", PortionType: nutrition.PortionGrams, ProteinPerPortion: 10, Amount: 100}}
	svc := NewService(repo, foods)

	if _, err := svc.GetMeal(context.Background(), "m1"); !errors.Is(err, nutrition.ErrCalculation) {
		t.Fatalf("expected calculation error, got %v", err)
	}
}

func TestDeleteMeal(t *testing.T) {
	foods := testFoods()
	repo := newFakeMealsRepo(foods)
	svc := NewService(repo, foods)

	created, err := svc.CreateMeal(context.Background(), CreateMealInput{
		Name:  "A",
		Items: []CreateItemInput{{FoodID: "egg", Amount: 2}},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.DeleteMeal(context.Background(), created.ID); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := svc.DeleteMeal(context.Background(), created.ID); !errors.Is(err, ErrMealNotFound) {
		t.Fatalf("expected ErrMealNotFound, got %v", err)
	}
}
