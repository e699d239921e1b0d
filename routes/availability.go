package routes

import (
	"errors"
	"net/http"
	"time"

	"github.com/czdsgnr/roubenky/services"
	"github.com/czdsgnr/roubenky/utils"

	"github.com/kataras/iris/v12"
)

// Availability and pricing routes for the public booking calendar.

// GetCalendar returns the day-by-day classification of one month. The
// guest's current selection rides along as checkin/checkout query params so
// the server can mark the picked range.
func GetCalendar(ctx iris.Context) {
	now := time.Now()
	year := ctx.URLParamIntDefault("year", now.Year())
	month := ctx.URLParamIntDefault("month", int(now.Month()))
	if month < 1 || month > 12 || year < 2000 || year > 2200 {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_month", "invalid year or month")
		return
	}

	sel := parseSelection(ctx)
	window := services.MonthWindow(year, time.Month(month), services.CurrentReservations(), sel, now)

	ctx.JSON(iris.Map{
		"success": true,
		"data":    window,
	})
}

// GetOccupiedDates returns the booked spans for the public calendar. Guest
// identity never leaves the server, only dates.
func GetOccupiedDates(ctx iris.Context) {
	ranges := services.OccupiedRanges(services.CurrentReservations())
	ctx.JSON(iris.Map{
		"success": true,
		"data":    ranges,
	})
}

type SelectDateInput struct {
	Day      string `json:"day" validate:"required"`
	CheckIn  string `json:"checkin"`
	CheckOut string `json:"checkout"`
}

// SelectDate applies one calendar click to the guest's selection. A
// rejected click answers 409 with a notice and echoes the unchanged
// selection so the client can keep rendering it.
func SelectDate(ctx iris.Context) {
	var input SelectDateInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	day, err := time.Parse("2006-01-02", input.Day)
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_date", "invalid day format")
		return
	}

	sel := services.Selection{}
	if t, parseErr := time.Parse("2006-01-02", input.CheckIn); parseErr == nil {
		sel.CheckIn = &t
	}
	if t, parseErr := time.Parse("2006-01-02", input.CheckOut); parseErr == nil {
		sel.CheckOut = &t
	}

	next, selectErr := services.Select(sel, day, services.CurrentReservations(), time.Now())
	if selectErr != nil {
		ctx.StatusCode(iris.StatusConflict)
		ctx.JSON(iris.Map{
			"success": false,
			"notice":  selectionNotice(selectErr),
			"data":    selectionPayload(sel),
		})
		return
	}

	ctx.JSON(iris.Map{
		"success": true,
		"data":    selectionPayload(next),
	})
}

type QuoteInput struct {
	CheckIn  string `json:"checkin" validate:"required"`
	CheckOut string `json:"checkout" validate:"required"`
}

// QuoteStay prices a date range. A zero quote means the selection is
// incomplete, not that the stay is free.
func QuoteStay(ctx iris.Context) {
	var input QuoteInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	checkIn, checkInErr := time.Parse("2006-01-02", input.CheckIn)
	checkOut, checkOutErr := time.Parse("2006-01-02", input.CheckOut)
	if checkInErr != nil || checkOutErr != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_date", "invalid date format")
		return
	}

	ctx.JSON(iris.Map{
		"success": true,
		"data":    services.QuoteStay(checkIn, checkOut),
	})
}

func parseSelection(ctx iris.Context) services.Selection {
	sel := services.Selection{}
	if s := ctx.URLParam("checkin"); s != "" {
		if t, err := time.Parse("2006-01-02", s); err == nil {
			sel.CheckIn = &t
		}
	}
	if s := ctx.URLParam("checkout"); s != "" {
		if t, err := time.Parse("2006-01-02", s); err == nil {
			sel.CheckOut = &t
		}
	}
	return sel
}

func selectionPayload(sel services.Selection) iris.Map {
	payload := iris.Map{"checkin": nil, "checkout": nil}
	if sel.CheckIn != nil {
		payload["checkin"] = sel.CheckIn.Format("2006-01-02")
	}
	if sel.CheckOut != nil {
		payload["checkout"] = sel.CheckOut.Format("2006-01-02")
	}
	return payload
}

func selectionNotice(err error) string {
	switch {
	case errors.Is(err, services.ErrRangeCrossesOccupied):
		return "Vybraný termín zasahuje do obsazených dnů"
	case errors.Is(err, services.ErrDayOccupied):
		return "Tento den je již obsazený"
	case errors.Is(err, services.ErrPastDay):
		return "Tento den je v minulosti"
	default:
		return "Tento den nelze vybrat"
	}
}
