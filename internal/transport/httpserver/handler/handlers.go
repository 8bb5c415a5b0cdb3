package handler

import (
	consumptiondomain "protein-tracker/internal/domain/consumption"
	fooddomain "protein-tracker/internal/domain/food"
	goaldomain "protein-tracker/internal/domain/goal"
	mealsdomain "protein-tracker/internal/domain/meals"
	progressdomain "protein-tracker/internal/domain/progress"
	"protein-tracker/pkg/logger"
)

type Handlers struct {
	Foods       *fooddomain.Service
	Meals       *mealsdomain.Service
	Consumption *consumptiondomain.Service
	Goals       *goaldomain.Service
	Progress    *progressdomain.Service

	defaultTimezone string
	log             logger.Logger
}

type Services struct {
	Foods       *fooddomain.Service
	Meals       *mealsdomain.Service
	Consumption *consumptiondomain.Service
	Goals       *goaldomain.Service
	Progress    *progressdomain.Service
}

func New(services Services, defaultTimezone string, log logger.Logger) *Handlers {
	if defaultTimezone == "" {
		defaultTimezone = "UTC"
	}
	return &Handlers{
		Foods:           services.Foods,
		Meals:           services.Meals,
		Consumption:     services.Consumption,
		Goals:           services.Goals,
		Progress:        services.Progress,
		defaultTimezone: defaultTimezone,
		log:             log,
	}
}
