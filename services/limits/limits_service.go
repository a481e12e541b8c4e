package limits

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// Tracks how much each user has transferred today. A zero cap disables the
// limit entirely; redis being unavailable never blocks a transfer on its own.

var ErrDailyCapExceeded = fmt.Errorf("daily transfer limit reached, try again tomorrow")

type Service struct {
	client *redis.Client
	cap    decimal.Decimal
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

func NewService(config *RedisConfig, dailyCap decimal.Decimal) (*Service, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", config.Host, config.Port),
		Password: config.Password,
		DB:       config.DB,
	})

	// Test the connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return &Service{
		client: client,
		cap:    dailyCap,
	}, nil
}

func dailyKey(userID int64) string {
	return fmt.Sprintf("daily_transfers:%d", userID)
}

// isSameDay checks if two times are on the same calendar day
func isSameDay(t1, t2 time.Time) bool {
	y1, m1, d1 := t1.Date()
	y2, m2, d2 := t2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// Allow reports whether a transfer of amount would keep the user under the
// daily cap.
func (s *Service) Allow(ctx context.Context, userID int64, amount decimal.Decimal) error {
	if s == nil || s.cap.IsZero() {
		return nil
	}

	total, err := s.transferredToday(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get daily transfers: %w", err)
	}

	if total.Add(amount).GreaterThan(s.cap) {
		return ErrDailyCapExceeded
	}

	return nil
}

// Track accumulates a committed transfer into today's total.
func (s *Service) Track(ctx context.Context, userID int64, amount decimal.Decimal, currency string) error {
	if s == nil {
		return nil
	}

	key := dailyKey(userID)

	total, err := s.transferredToday(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get daily transfers: %w", err)
	}

	err = s.client.HSet(ctx, key, map[string]interface{}{
		"total_amount": total.Add(amount).String(),
		"currency":     currency,
		"created_at":   time.Now().Format(time.RFC3339),
	}).Err()
	if err != nil {
		return fmt.Errorf("failed to store daily transfer: %w", err)
	}

	// Set expiration for end of day
	midnight := time.Now().Add(24 * time.Hour).Truncate(24 * time.Hour)
	if err := s.client.ExpireAt(ctx, key, midnight).Err(); err != nil {
		return fmt.Errorf("failed to set expiration: %w", err)
	}

	return nil
}

func (s *Service) transferredToday(ctx context.Context, userID int64) (decimal.Decimal, error) {
	fields, err := s.client.HGetAll(ctx, dailyKey(userID)).Result()
	if err != nil {
		return decimal.Zero, err
	}

	if len(fields) == 0 {
		return decimal.Zero, nil
	}

	createdAt, err := time.Parse(time.RFC3339, fields["created_at"])
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse created_at: %w", err)
	}

	// A stale entry from a previous day counts as nothing transferred.
	if !isSameDay(createdAt, time.Now()) {
		return decimal.Zero, nil
	}

	total, err := decimal.NewFromString(fields["total_amount"])
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse total_amount: %w", err)
	}

	return total, nil
}
