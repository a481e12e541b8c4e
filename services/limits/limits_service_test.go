package limits

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNilServiceAllowsEverything(t *testing.T) {
	var s *Service
	assert.NoError(t, s.Allow(context.Background(), 1, decimal.NewFromInt(1_000_000)))
	assert.NoError(t, s.Track(context.Background(), 1, decimal.NewFromInt(1_000_000), "ARS"))
}

func TestZeroCapDisablesLimit(t *testing.T) {
	s := &Service{cap: decimal.Zero}
	assert.NoError(t, s.Allow(context.Background(), 1, decimal.NewFromInt(1_000_000)))
}

func TestIsSameDay(t *testing.T) {
	noon := time.Date(2023, 6, 15, 12, 0, 0, 0, time.UTC)

	assert.True(t, isSameDay(noon, noon.Add(11*time.Hour)))
	assert.False(t, isSameDay(noon, noon.Add(24*time.Hour)))
	assert.False(t, isSameDay(noon, noon.AddDate(-1, 0, 0)))
}

func TestDailyKey(t *testing.T) {
	assert.Equal(t, "daily_transfers:42", dailyKey(42))
}
