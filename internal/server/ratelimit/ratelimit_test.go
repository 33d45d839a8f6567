package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  600,
		DefaultWindow: time.Minute,
		Trusted:       map[string]bool{},
		EndpointConfigs: []EndpointConfig{
			{Path: "/job-interview/start", Method: "POST", Limit: 30, Window: time.Hour, Burst: 2},
			{Path: "/job-interview/", Method: "POST", Limit: 60, Window: time.Hour, Burst: 3},
		},
	}
}

func TestLimiter_BurstThenDenied(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	for i := 0; i < 2; i++ {
		allowed, info := limiter.Allow("1.2.3.4", "/job-interview/start", "POST")
		assert.True(t, allowed, "request %d", i+1)
		assert.Equal(t, 30, info.Limit)
	}

	allowed, info := limiter.Allow("1.2.3.4", "/job-interview/start", "POST")
	assert.False(t, allowed)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestLimiter_ClientsAreIndependent(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	for i := 0; i < 2; i++ {
		limiter.Allow("1.2.3.4", "/job-interview/start", "POST")
	}
	allowed, _ := limiter.Allow("1.2.3.4", "/job-interview/start", "POST")
	require.False(t, allowed)

	allowed, _ = limiter.Allow("5.6.7.8", "/job-interview/start", "POST")
	assert.True(t, allowed)
}

func TestLimiter_TrustedClientExempt(t *testing.T) {
	cfg := testConfig()
	cfg.Trusted = map[string]bool{"10.0.0.1": true}
	limiter := NewLimiter(cfg)
	defer limiter.Stop()

	for i := 0; i < 50; i++ {
		allowed, _ := limiter.Allow("10.0.0.1", "/job-interview/start", "POST")
		assert.True(t, allowed)
	}
}

func TestLimiter_DisabledAllowsEverything(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := limiter.Allow("1.2.3.4", "/job-interview/start", "POST")
		assert.True(t, allowed)
	}
}

func TestLimiter_UnmatchedEndpointUsesDefaults(t *testing.T) {
	cfg := testConfig()
	cfg.DefaultLimit = 1
	cfg.DefaultWindow = time.Hour
	limiter := NewLimiter(cfg)
	defer limiter.Stop()

	allowed, _ := limiter.Allow("1.2.3.4", "/jobs/abc", "GET")
	assert.True(t, allowed)
	allowed, _ = limiter.Allow("1.2.3.4", "/jobs/abc", "GET")
	assert.False(t, allowed)
}

func TestTokenBucket_Refills(t *testing.T) {
	// 1 token capacity refilling 100 tokens/second
	bucket := newTokenBucket(1, 100)

	assert.True(t, bucket.allow())
	assert.False(t, bucket.allow())

	time.Sleep(50 * time.Millisecond)
	assert.True(t, bucket.allow())
}

func TestMatchEndpoint(t *testing.T) {
	configs := testConfig().EndpointConfigs

	exact := MatchEndpoint("/job-interview/start", "POST", configs)
	require.NotNil(t, exact)
	assert.Equal(t, 30, exact.Limit)

	// prefix pattern covers path parameters
	prefix := MatchEndpoint("/job-interview/abc123/withdraw", "POST", configs)
	require.NotNil(t, prefix)
	assert.Equal(t, 60, prefix.Limit)

	assert.Nil(t, MatchEndpoint("/job-interview/start", "GET", configs))
	assert.Nil(t, MatchEndpoint("/unknown", "POST", configs))
}

func TestMatchEndpoint_HealthUnlimited(t *testing.T) {
	cfg := MatchEndpoint("/health", "GET", testConfig().EndpointConfigs)
	require.NotNil(t, cfg)
	assert.LessOrEqual(t, cfg.Limit, 0)
}

func TestDefaultEndpointConfigs_CoverGenerationEndpoints(t *testing.T) {
	configs := DefaultEndpointConfigs()

	for _, path := range []string{"/job-interview/start", "/job-interview/next", "/job-interview/submit", "/jobs/import", "/auth/register", "/auth/login"} {
		cfg := MatchEndpoint(path, "POST", configs)
		require.NotNil(t, cfg, "no config for %s", path)
		assert.Greater(t, cfg.Limit, 0, "%s should be limited", path)
	}
}
