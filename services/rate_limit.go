package services

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"github.com/kali-linux-uz/academy_api/dto"
	"github.com/kali-linux-uz/academy_api/shared"
)

// RateLimitService throttles abuse-prone endpoints. Counters live in memory;
// a single instance serves one deployment so nothing needs to be shared.
type RateLimitService struct {
	context.DefaultService

	configs map[string]*RateLimitConfig
	records map[string]*rateLimitRecord
	mutex   sync.Mutex

	closed chan struct{}
}

// RateLimitConfig represents rate limiting configuration
type RateLimitConfig struct {
	EndpointType string
	MaxRequests  int
	WindowSize   time.Duration
	BlockTime    time.Duration
	Description  string
	IsActive     bool
}

type rateLimitRecord struct {
	requestCount int
	windowStart  time.Time
	blockedUntil *time.Time
}

const RATE_LIMIT_SVC = "rate_limit_svc"

func (svc *RateLimitService) Id() string {
	return RATE_LIMIT_SVC
}

func (svc *RateLimitService) Configure(ctx *context.Context) error {
	svc.configs = make(map[string]*RateLimitConfig)
	svc.records = make(map[string]*rateLimitRecord)
	svc.closed = make(chan struct{}, 1)
	return svc.DefaultService.Configure(ctx)
}

func (svc *RateLimitService) Start() error {
	svc.initDefaultConfigs()

	go svc.startCleanupJob()

	return nil
}

func (svc *RateLimitService) Shutdown() {
	svc.closed <- struct{}{}
}

// ==================== CONFIGURATION MANAGEMENT ====================

func (svc *RateLimitService) initDefaultConfigs() {
	svc.mutex.Lock()
	defer svc.mutex.Unlock()

	svc.configs = map[string]*RateLimitConfig{
		"xp_grant": {
			EndpointType: "xp_grant",
			MaxRequests:  60,
			WindowSize:   time.Hour,
			BlockTime:    time.Hour,
			Description:  "Direct XP grant rate limit",
			IsActive:     true,
		},
		"lesson_complete": {
			EndpointType: "lesson_complete",
			MaxRequests:  20,
			WindowSize:   time.Hour,
			BlockTime:    2 * time.Hour,
			Description:  "Lesson completion rate limit",
			IsActive:     true,
		},
		"terminal_run": {
			EndpointType: "terminal_run",
			MaxRequests:  300,
			WindowSize:   10 * time.Minute,
			BlockTime:    10 * time.Minute,
			Description:  "Simulated terminal submission rate limit",
			IsActive:     true,
		},
		"progress_reset": {
			EndpointType: "progress_reset",
			MaxRequests:  3,
			WindowSize:   time.Hour,
			BlockTime:    time.Hour,
			Description:  "Progress reset rate limit",
			IsActive:     true,
		},
		"api_general": {
			EndpointType: "api_general",
			MaxRequests:  1000,
			WindowSize:   time.Hour,
			BlockTime:    time.Hour,
			Description:  "General API rate limit per IP",
			IsActive:     true,
		},
	}
}

// ==================== CORE RATE LIMITING LOGIC ====================

func (svc *RateLimitService) IsAllowed(identifier, endpointType string) (bool, *dto.RateLimitInfo) {
	svc.mutex.Lock()
	defer svc.mutex.Unlock()

	config, exists := svc.configs[endpointType]
	if !exists || !config.IsActive {
		// No config or inactive, allow the request
		return true, &dto.RateLimitInfo{
			Allowed:   true,
			Remaining: -1,
		}
	}

	now := time.Now()
	key := endpointType + ":" + identifier
	record := svc.records[key]

	// Check if currently blocked
	if record != nil && record.blockedUntil != nil && now.Before(*record.blockedUntil) {
		return false, &dto.RateLimitInfo{
			Allowed:      false,
			Remaining:    0,
			ResetTime:    record.blockedUntil,
			BlockedUntil: record.blockedUntil,
		}
	}

	// No record or window has passed, start a fresh window
	if record == nil || record.windowStart.Before(now.Add(-config.WindowSize)) {
		svc.records[key] = &rateLimitRecord{
			requestCount: 1,
			windowStart:  now,
		}

		resetTime := now.Add(config.WindowSize)
		return true, &dto.RateLimitInfo{
			Allowed:   true,
			Remaining: config.MaxRequests - 1,
			ResetTime: &resetTime,
		}
	}

	// Limit exceeded, block the identifier
	if record.requestCount >= config.MaxRequests {
		blockedUntil := now.Add(config.BlockTime)
		record.blockedUntil = &blockedUntil

		return false, &dto.RateLimitInfo{
			Allowed:      false,
			Remaining:    0,
			ResetTime:    &blockedUntil,
			BlockedUntil: &blockedUntil,
		}
	}

	record.requestCount++

	resetTime := record.windowStart.Add(config.WindowSize)
	return true, &dto.RateLimitInfo{
		Allowed:   true,
		Remaining: config.MaxRequests - record.requestCount,
		ResetTime: &resetTime,
	}
}

// ==================== MIDDLEWARE FUNCTIONS ====================

// RateLimit creates a rate limiting middleware for a specific endpoint type
func (svc *RateLimitService) RateLimit(endpointType string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identifier := getClientIP(c)

		allowed, info := svc.IsAllowed(identifier, endpointType)

		svc.addRateLimitHeaders(c, info)

		if !allowed {
			return svc.handleRateLimitExceeded(c, endpointType, info)
		}

		return c.Next()
	}
}

// IPRateLimit applies general rate limiting by IP address
func (svc *RateLimitService) IPRateLimit() fiber.Handler {
	return svc.RateLimit("api_general")
}

// ==================== HELPER FUNCTIONS ====================

func (svc *RateLimitService) addRateLimitHeaders(c *fiber.Ctx, info *dto.RateLimitInfo) {
	if info == nil {
		return
	}

	if info.Remaining >= 0 {
		c.Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
	}

	if info.ResetTime != nil {
		c.Set("X-RateLimit-Reset", strconv.FormatInt(info.ResetTime.Unix(), 10))
	}

	if info.BlockedUntil != nil {
		retryAfter := int(time.Until(*info.BlockedUntil).Seconds())
		if retryAfter > 0 {
			c.Set("Retry-After", strconv.Itoa(retryAfter))
		}
	}
}

func (svc *RateLimitService) handleRateLimitExceeded(c *fiber.Ctx, endpointType string, info *dto.RateLimitInfo) error {
	message := svc.getRateLimitMessage(endpointType)

	response := map[string]interface{}{
		"error":   "Rate limit exceeded",
		"message": message,
	}

	if info.BlockedUntil != nil {
		response["blocked_until"] = info.BlockedUntil.Unix()
		response["retry_after"] = int(time.Until(*info.BlockedUntil).Seconds())
	}

	log.WithFields(log.Fields{
		"endpoint_type": endpointType,
		"ip":            getClientIP(c),
	}).Warn("Rate limit exceeded")

	return shared.ResponseJSON(c, http.StatusTooManyRequests, message, response)
}

func (svc *RateLimitService) getRateLimitMessage(endpointType string) string {
	messages := map[string]string{
		"xp_grant":        "Too many XP grants. Please slow down.",
		"lesson_complete": "Too many lesson completions. Please take a break.",
		"terminal_run":    "Too many terminal submissions. Please slow down.",
		"progress_reset":  "Too many reset requests. Please try again later.",
		"api_general":     "Too many requests. Please slow down.",
	}

	if message, exists := messages[endpointType]; exists {
		return message
	}

	return "Too many requests. Please try again later."
}

// startCleanupJob drops stale records so the map does not grow unbounded
func (svc *RateLimitService) startCleanupJob() {
	ticker := time.NewTicker(15 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			svc.cleanup()
		case <-svc.closed:
			return
		}
	}
}

func (svc *RateLimitService) cleanup() {
	svc.mutex.Lock()
	defer svc.mutex.Unlock()

	now := time.Now()
	for key, record := range svc.records {
		expired := record.windowStart.Before(now.Add(-24 * time.Hour))
		blocked := record.blockedUntil != nil && now.Before(*record.blockedUntil)
		if expired && !blocked {
			delete(svc.records, key)
		}
	}
}

// ==================== UTILITY FUNCTIONS ====================

func getClientIP(c *fiber.Ctx) string {
	// Forwarded IP first, for load balancers and proxies
	forwarded := c.Get("X-Forwarded-For")
	if forwarded != "" {
		ips := strings.Split(forwarded, ",")
		if len(ips) > 0 {
			ip := strings.TrimSpace(ips[0])
			if ip != "" {
				return ip
			}
		}
	}

	realIP := c.Get("X-Real-IP")
	if realIP != "" {
		return realIP
	}

	ip, _, err := net.SplitHostPort(c.Context().RemoteAddr().String())
	if err != nil {
		return c.Context().RemoteAddr().String()
	}

	return ip
}
