package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStayPriceTable(t *testing.T) {
	cases := map[int]int{
		2: 23000,
		3: 30000,
		4: 36000,
		5: 43000,
		6: 49000,
		7: 55000,
	}
	for nights, want := range cases {
		assert.Equal(t, want, StayPrice(nights), "nights=%d", nights)
	}
}

func TestStayPriceLongStays(t *testing.T) {
	// week + partial week decomposition
	assert.Equal(t, 66500, StayPrice(8))   // 55000 + 11500
	assert.Equal(t, 85000, StayPrice(10))  // 55000 + 30000
	assert.Equal(t, 110000, StayPrice(14)) // two full weeks
	assert.Equal(t, 121500, StayPrice(15)) // 110000 + 11500
}

func TestStayPriceIncompleteSelection(t *testing.T) {
	assert.Equal(t, 0, StayPrice(0))
	assert.Equal(t, 0, StayPrice(-3))
}

func TestNights(t *testing.T) {
	in := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	out := time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 3, Nights(in, out))
	assert.Equal(t, 0, Nights(in, in))
	assert.Equal(t, -3, Nights(out, in))
}

func TestQuoteStay(t *testing.T) {
	in := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	out := time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC)

	q := QuoteStay(in, out)
	assert.Equal(t, 3, q.Nights)
	assert.Equal(t, 30000, q.TotalPrice)
	assert.Equal(t, 15000, q.Deposit)
	assert.Equal(t, 15000, q.Balance)
	assert.Equal(t, q.TotalPrice, q.Deposit+q.Balance)
	assert.Equal(t, DamageDeposit, q.DamageDeposit)
	assert.Equal(t, CurrencyCZK, q.Currency)

	// quoting the same dates again yields the identical breakdown
	assert.Equal(t, q, QuoteStay(in, out))
}

func TestQuoteStayIncomplete(t *testing.T) {
	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	q := QuoteStay(day, day)
	assert.Equal(t, 0, q.Nights)
	assert.Equal(t, 0, q.TotalPrice)
	assert.Equal(t, 0, q.Deposit)
	assert.Equal(t, 0, q.Balance)
}
