package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		Enabled:         true,
		WindowDuration:  time.Minute,
		DefaultRequests: 60,
		BookingRequests: 20,
		ImageRequests:   120,
		HealthRequests:  200,
	}
}

func TestResultFromEvalAllowed(t *testing.T) {
	result, err := resultFromEval([]interface{}{int64(1), int64(5), int64(15)}, 20, 1234)

	require.NoError(t, err)
	assert.True(t, result.Allowed)
	assert.Equal(t, 20, result.Limit)
	assert.Equal(t, 15, result.Remaining)
	assert.Equal(t, int64(1234), result.ResetTime)
}

func TestResultFromEvalDenied(t *testing.T) {
	result, err := resultFromEval([]interface{}{int64(0), int64(20), int64(0)}, 20, 1234)

	require.NoError(t, err)
	assert.False(t, result.Allowed, "a full window must deny the request")
	assert.Equal(t, 0, result.Remaining)
}

func TestResultFromEvalMalformed(t *testing.T) {
	_, err := resultFromEval("not-a-slice", 20, 0)
	assert.Error(t, err)

	_, err = resultFromEval([]interface{}{int64(1), int64(2)}, 20, 0)
	assert.Error(t, err)

	_, err = resultFromEval([]interface{}{"1", "2", "3"}, 20, 0)
	assert.Error(t, err)
}

func TestIsAllowedWhenDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Enabled = false
	limiter := NewRateLimiter(nil, cfg)

	result, err := limiter.IsAllowed(context.Background(), "203.0.113.9", RateLimitTypeBooking)

	require.NoError(t, err)
	assert.True(t, result.Allowed)
	assert.Equal(t, 20, result.Limit)
	assert.Equal(t, 20, result.Remaining)
}

func TestIsAllowedWhitelistedIP(t *testing.T) {
	cfg := testConfig()
	cfg.WhitelistedIPs = []string{"203.0.113.9"}
	limiter := NewRateLimiter(nil, cfg)

	result, err := limiter.IsAllowed(context.Background(), "203.0.113.9", RateLimitTypeDefault)

	require.NoError(t, err)
	assert.True(t, result.Allowed)
}

func TestGetLimitPerType(t *testing.T) {
	limiter := NewRateLimiter(nil, testConfig())

	assert.Equal(t, 20, limiter.getLimit(RateLimitTypeBooking))
	assert.Equal(t, 120, limiter.getLimit(RateLimitTypeImages))
	assert.Equal(t, 200, limiter.getLimit(RateLimitTypeHealth))
	assert.Equal(t, 60, limiter.getLimit(RateLimitTypeDefault))
	assert.Equal(t, 60, limiter.getLimit(RateLimitType("unknown")))
}

func TestGetRateLimitType(t *testing.T) {
	tests := map[string]RateLimitType{
		"/health":                           RateLimitTypeHealth,
		"/ping":                             RateLimitTypeHealth,
		"/api/ballrooms/images/:filename":   RateLimitTypeImages,
		"/api/booking":                      RateLimitTypeBooking,
		"/api/booking/:id/status":           RateLimitTypeBooking,
		"/api/ballrooms":                    RateLimitTypeDefault,
		"/api/ballrooms/:id":                RateLimitTypeDefault,
	}
	for path, want := range tests {
		assert.Equal(t, want, getRateLimitType(path), "path %s", path)
	}
}
