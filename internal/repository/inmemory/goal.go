package inmemory

import (
	"sync"
	"time"

	goaldomain "protein-tracker/internal/domain/goal"
)

type GoalCache struct {
	mu        sync.RWMutex
	value     *goaldomain.DailyGoal
	set       bool
	expiresAt time.Time
	now       func() time.Time
}

func NewGoalCache() *GoalCache {
	return &GoalCache{now: time.Now}
}

func (c *GoalCache) Get() (*goaldomain.DailyGoal, bool) {
	now := c.now()

	c.mu.RLock()
	value, set, expiresAt := c.value, c.set, c.expiresAt
	c.mu.RUnlock()
	if !set {
		return nil, false
	}

	if !expiresAt.After(now) {
		c.mu.Lock()
		if c.set && !c.expiresAt.After(now) {
			c.value, c.set = nil, false
		}
		c.mu.Unlock()
		return nil, false
	}

	return cloneGoal(value), true
}

func (c *GoalCache) Set(goal *goaldomain.DailyGoal, ttl time.Duration) {
	if ttl <= 0 {
		c.Delete()
		return
	}

	c.mu.Lock()
	c.value = cloneGoal(goal)
	c.set = true
	c.expiresAt = c.now().Add(ttl)
	c.mu.Unlock()
}

func (c *GoalCache) Delete() {
	c.mu.Lock()
	c.value, c.set = nil, false
	c.mu.Unlock()
}

func cloneGoal(goal *goaldomain.DailyGoal) *goaldomain.DailyGoal {
	if goal == nil {
		return nil
	}
	cloned := *goal
	cloned.Carbohydrate = cloneFloat(goal.Carbohydrate)
	cloned.Fat = cloneFloat(goal.Fat)
	cloned.Calories = cloneFloat(goal.Calories)
	return &cloned
}

func cloneFloat(value *float64) *float64 {
	if value == nil {
		return nil
	}
	v := *value
	return &v
}
