package handlers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/yearpeer/yearpeer-api/internal/calendar"
	"github.com/yearpeer/yearpeer-api/internal/middleware"
)

type monthView struct {
	Month int    `json:"month"`
	Name  string `json:"name"`
	Grid  []int  `json:"grid"`
}

// GetYearView returns the twelve month grids for a year together with
// the goals intersecting it, enough to paint the year calendar.
func (a *API) GetYearView(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	year, err := strconv.Atoi(c.Params("year"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid year",
		})
	}

	goals, err := a.Planner.GoalsByYear(c.UserContext(), userID, year)
	if err != nil {
		return fail(c, err, "Failed to fetch calendar")
	}

	months := make([]monthView, 12)
	for m := time.January; m <= time.December; m++ {
		months[m-1] = monthView{
			Month: int(m),
			Name:  calendar.MonthNames[m-1],
			Grid:  calendar.MonthGrid(m, year),
		}
	}

	return c.JSON(fiber.Map{
		"year":     year,
		"weekdays": calendar.DayNames,
		"months":   months,
		"goals":    goals,
		"colors":   calendar.ColorOptions,
	})
}

// GetMonthView returns one month's grid plus the goals active in it and
// the month's tasks grouped by day.
func (a *API) GetMonthView(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	year, err := strconv.Atoi(c.Params("year"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid year",
		})
	}
	monthNum, err := strconv.Atoi(c.Params("month"))
	if err != nil || monthNum < 1 || monthNum > 12 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid month",
		})
	}
	month := time.Month(monthNum)

	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := time.Date(year, month, calendar.DaysInMonth(month, year), 0, 0, 0, 0, time.UTC)

	goals, err := a.Planner.GoalsByRange(c.UserContext(), userID, monthStart, monthEnd)
	if err != nil {
		return fail(c, err, "Failed to fetch calendar")
	}

	tasks, err := a.Planner.TasksByRange(c.UserContext(), userID, monthStart, monthEnd)
	if err != nil {
		return fail(c, err, "Failed to fetch calendar")
	}

	return c.JSON(fiber.Map{
		"year":     year,
		"month":    monthNum,
		"name":     calendar.MonthNames[month-1],
		"weekdays": calendar.DayNames,
		"grid":     calendar.MonthGrid(month, year),
		"goals":    goals,
		"tasks":    tasks,
	})
}
