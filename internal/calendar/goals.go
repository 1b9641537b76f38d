package calendar

import (
	"time"

	"github.com/yearpeer/yearpeer-api/internal/models"
)

// ColorOption is a named palette entry offered for goals.
type ColorOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ColorOptions is the default goal color palette.
var ColorOptions = []ColorOption{
	{Value: "#BF76DE", Label: "Pink"},
	{Value: "#888FFF", Label: "Purple"},
	{Value: "#E9BA9A", Label: "Brown"},
	{Value: "#E78888", Label: "Orange"},
	{Value: "#88FFAA", Label: "Green"},
	{Value: "#FFD700", Label: "Gold"},
}

// ActiveOnDate reports whether the goal's span covers the given date.
// The goal runs from the start's midnight to the end's last instant and
// the date is probed at noon, so stray times-of-day cannot shift a day.
func ActiveOnDate(goal models.Goal, date time.Time) bool {
	probe := Noon(date)
	return !probe.Before(Midnight(goal.StartDate)) && !probe.After(EndOfDay(goal.EndDate))
}

// GoalsOnDate filters the goals active on the given date.
func GoalsOnDate(goals []models.Goal, date time.Time) []models.Goal {
	var active []models.Goal
	for _, g := range goals {
		if ActiveOnDate(g, date) {
			active = append(active, g)
		}
	}
	return active
}

// GoalStatus describes a goal's position relative to now.
func GoalStatus(goal models.Goal, now time.Time) string {
	switch {
	case Midnight(now).Before(Midnight(goal.StartDate)):
		return "upcoming"
	case Midnight(now).After(Midnight(goal.EndDate)):
		return "completed"
	default:
		return "active"
	}
}
