package goal

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

type fakeGoalRepo struct {
	goals   map[int]DailyGoal
	upserts int
}

func (f *fakeGoalRepo) GetGoal(ctx context.Context, id int) (*DailyGoal, error) {
	stored, ok := f.goals[id]
	if !ok {
		return nil, nil
	}
	return &stored, nil
}

func (f *fakeGoalRepo) UpsertGoal(ctx context.Context, goal *DailyGoal) error {
	if f.goals == nil {
		f.goals = map[int]DailyGoal{}
	}
	f.goals[goal.ID] = *goal
	f.upserts++
	return nil
}

func TestGoalMissingIsNil(t *testing.T) {
	svc := NewService(&fakeGoalRepo{})
	got, err := svc.Goal(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil goal, got %+v", got)
	}
}

func TestSetDailyGoalOverwrites(t *testing.T) {
	repo := &fakeGoalRepo{}
	svc := NewService(repo)

	fat := 70.0
	if _, err := svc.SetDailyGoal(context.Background(), SetGoalInput{Protein: 120, Fat: &fat}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, err := svc.SetDailyGoal(context.Background(), SetGoalInput{Protein: 150}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(repo.goals) != 1 {
		t.Fatalf("expected a single goal row, got %d", len(repo.goals))
	}
	got, err := svc.Goal(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.Protein != 150 {
		t.Fatalf("expected 150, got %v", got.Protein)
	}
	if got.Fat != nil {
		t.Fatalf("expected fat to be cleared, got %v", *got.Fat)
	}
}

func TestSetDailyGoalValidation(t *testing.T) {
	negative := -1.0
	huge := 1e9
	cases := []SetGoalInput{
		{Protein: 0},
		{Protein: -10},
		{Protein: 100, Calories: &negative},
		{Protein: 1e308},
		{Protein: 100, Fat: &huge},
	}
	for i, input := range cases {
		repo := &fakeGoalRepo{}
		svc := NewService(repo)
		if _, err := svc.SetDailyGoal(context.Background(), input); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
		if repo.upserts != 0 {
			t.Fatalf("case %d: expected no write", i)
		}
	}
}

func TestSetDailyGoalReportsFirstInvalidMacro(t *testing.T) {
	negative := -1.0
	svc := NewService(&fakeGoalRepo{})
	for i := 0; i < 20; i++ {
		_, err := svc.SetDailyGoal(context.Background(), SetGoalInput{
			Protein:      100,
			Carbohydrate: &negative,
			Fat:          &negative,
			Calories:     &negative,
		})
		if err == nil || !strings.Contains(err.Error(), "carbohydrate") {
			t.Fatalf("expected carbohydrate error, got %v", err)
		}
	}
}

type mapCache struct {
	value *DailyGoal
	set   bool
}

func (c *mapCache) Get() (*DailyGoal, bool) { return c.value, c.set }

func (c *mapCache) Set(goal *DailyGoal, _ time.Duration) {
	c.value, c.set = goal, true
}

func (c *mapCache) Delete() { c.value, c.set = nil, false }

type countingGoalRepo struct {
	fakeGoalRepo
	reads int
}

func (c *countingGoalRepo) GetGoal(ctx context.Context, id int) (*DailyGoal, error) {
	c.reads++
	return c.fakeGoalRepo.GetGoal(ctx, id)
}

func TestGoalReadsAreCached(t *testing.T) {
	repo := &countingGoalRepo{}
	svc := NewService(repo).WithCache(&mapCache{}, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		got, err := svc.Goal(ctx)
		if err != nil || got != nil {
			t.Fatalf("expected nil goal, got %+v err=%v", got, err)
		}
	}
	if repo.reads != 1 {
		t.Fatalf("expected a single repository read, got %d", repo.reads)
	}

	if _, err := svc.SetDailyGoal(ctx, SetGoalInput{Protein: 90}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	got, err := svc.Goal(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got == nil || got.Protein != 90 {
		t.Fatalf("expected updated goal from cache, got %+v", got)
	}
	if repo.reads != 1 {
		t.Fatalf("expected set to refresh the cache, got %d reads", repo.reads)
	}
}
