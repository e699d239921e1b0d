package services

import (
	"math"
	"time"
)

// Published price list for renting the whole cottage, in whole CZK.
// The per-night rate is degressive and does not follow a formula below
// 8 nights, hence the table.
var nightlyRates = map[int]int{
	2: 23000,
	3: 30000,
	4: 36000,
	5: 43000,
	6: 49000,
	7: 55000,
}

const weeklyRate = 55000

// extraDayRates prices the partial week of stays longer than 7 nights,
// indexed by nights mod 7. It reuses the 2-7 night values, which makes
// 8 nights cost 11500 more than 7 while 7 costs only 6000 more than 6.
// That jump is the published policy; confirm with the owner before
// changing it.
var extraDayRates = [7]int{0, 11500, 23000, 30000, 36000, 43000, 49000}

const (
	CurrencyCZK = "CZK"

	// DamageDeposit is collected on arrival and returned at check-out.
	DamageDeposit = 5000

	// MinNights is enforced by the booking wizard, never by the price
	// table itself.
	MinNights = 2

	// MaxGuests is the cottage capacity (4 apartments).
	MaxGuests = 14
)

// Nights returns the number of calendar nights between the two dates.
// Ceiling guards against any time-of-day skew in the inputs.
func Nights(checkIn, checkOut time.Time) int {
	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
}

// StayPrice maps a night count to the total price in CZK. Pure and total:
// zero for nights <= 0, a positive value otherwise. Callers must reject
// 1-night stays during validation; the decomposition would price them at
// the single extra-day rate, which is not an offered stay.
func StayPrice(nights int) int {
	if nights <= 0 {
		return 0
	}
	if price, ok := nightlyRates[nights]; ok {
		return price
	}
	weeks := nights / 7
	extraDays := nights % 7
	return weeks*weeklyRate + extraDayRates[extraDays]
}

// Quote is the price breakdown shown on the confirmation step: 50% deposit
// up front, the balance on arrival, plus the fixed damage deposit.
type Quote struct {
	Nights        int    `json:"nights"`
	TotalPrice    int    `json:"totalPrice"`
	Deposit       int    `json:"deposit"`
	Balance       int    `json:"balance"`
	DamageDeposit int    `json:"damageDeposit"`
	Currency      string `json:"currency"`
}

// QuoteStay prices a (check-in, check-out) pair. A non-positive night count
// yields a zero quote, meaning "incomplete selection", not a valid price.
func QuoteStay(checkIn, checkOut time.Time) Quote {
	nights := Nights(checkIn, checkOut)
	total := StayPrice(nights)
	deposit := total / 2
	return Quote{
		Nights:        nights,
		TotalPrice:    total,
		Deposit:       deposit,
		Balance:       total - deposit,
		DamageDeposit: DamageDeposit,
		Currency:      CurrencyCZK,
	}
}
