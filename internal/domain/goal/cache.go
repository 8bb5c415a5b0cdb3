package goal

import "time"

// Cache holds the active goal. A cached nil means no goal is set.
type Cache interface {
	Get() (*DailyGoal, bool)
	Set(goal *DailyGoal, ttl time.Duration)
	Delete()
}

type noopCache struct{}

func (noopCache) Get() (*DailyGoal, bool) {
	return nil, false
}

func (noopCache) Set(*DailyGoal, time.Duration) {}

func (noopCache) Delete() {}
