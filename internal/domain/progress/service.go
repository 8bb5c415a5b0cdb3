package progress

import (
	"context"
	"time"

	"protein-tracker/internal/domain/nutrition"

	"golang.org/x/sync/errgroup"
)

type Service struct {
	rows  RowSource
	goals GoalSource
	now   func() time.Time
}

func NewService(rows RowSource, goals GoalSource) *Service {
	return &Service{
		rows:  rows,
		goals: goals,
		now:   time.Now,
	}
}

// DaySummary aggregates the meals consumed on date in tz and evaluates the
// day total against the active goal. An empty date means today in tz.
func (s *Service) DaySummary(ctx context.Context, date, tz string) (DaySummary, error) {
	date, loc, err := s.resolveDate(date, tz)
	if err != nil {
		return DaySummary{}, err
	}
	bounds, err := nutrition.DayBounds(date, tz)
	if err != nil {
		return DaySummary{}, err
	}

	rows, goal, err := s.fetch(ctx, bounds)
	if err != nil {
		return DaySummary{}, err
	}

	day, err := nutrition.Aggregate(rows)
	if err != nil {
		return DaySummary{}, err
	}

	return DaySummary{
		Date:       date,
		Timezone:   loc.String(),
		Range:      bounds,
		Meals:      day.Meals,
		Protein:    day.Protein,
		Goal:       goal,
		Evaluation: nutrition.Evaluate(day.Protein, goal),
	}, nil
}

// WeekProgress rolls up the Sunday-started week containing date into seven
// weekday buckets. An empty date means the current week in tz.
func (s *Service) WeekProgress(ctx context.Context, date, tz string) (WeekProgress, error) {
	date, loc, err := s.resolveDate(date, tz)
	if err != nil {
		return WeekProgress{}, err
	}
	bounds, err := nutrition.WeekBounds(date, tz)
	if err != nil {
		return WeekProgress{}, err
	}

	rows, goal, err := s.fetch(ctx, bounds)
	if err != nil {
		return WeekProgress{}, err
	}

	week, err := nutrition.Weekly(rows, bounds, loc, goal)
	if err != nil {
		return WeekProgress{}, err
	}

	return WeekProgress{
		Date:     date,
		Timezone: loc.String(),
		Goal:     goal,
		Week:     week,
	}, nil
}

func (s *Service) resolveDate(date, tz string) (string, *time.Location, error) {
	loc, err := nutrition.LoadTimezone(tz)
	if err != nil {
		return "", nil, err
	}
	if date == "" {
		return nutrition.Today(s.now(), loc), loc, nil
	}
	if _, err := nutrition.ParseDate(date); err != nil {
		return "", nil, err
	}
	return date, loc, nil
}

func (s *Service) fetch(ctx context.Context, bounds nutrition.Range) ([]nutrition.ConsumedMealRow, *nutrition.Goal, error) {
	var (
		rows []nutrition.ConsumedMealRow
		goal *nutrition.Goal
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, err = s.rows.ListRows(gctx, bounds)
		return err
	})
	g.Go(func() error {
		var err error
		goal, err = s.goals.Goal(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return rows, goal, nil
}
