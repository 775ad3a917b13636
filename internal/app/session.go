package app

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shrimpsizemoose/trekker/logger"
)

const timeFormat = "2006-01-02T15:04:05Z"

// Sessions binds role and student identity to an opaque token at login, so
// the profile endpoint never has to trust a client-supplied role. With auth
// disabled the whole layer is inert and the legacy query-parameter role is
// honored instead.
type Sessions struct {
	enabled     bool
	redis       *redis.Client
	keyTemplate string
	tokenHeader string
	ttl         time.Duration
}

type SessionInfo struct {
	Role      string
	StudentID int64
}

func NewSessions(config *Config) (*Sessions, error) {
	if !config.Server.EnableAuth {
		return &Sessions{enabled: false}, nil
	}

	opt, err := redis.ParseURL(config.Auth.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	client := redis.NewClient(opt)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	ttl := time.Duration(config.Auth.SessionTTLHours) * time.Hour
	if ttl == 0 {
		ttl = 12 * time.Hour
	}

	return &Sessions{
		enabled:     true,
		redis:       client,
		keyTemplate: config.Auth.SessionKeyTemplate,
		tokenHeader: config.Auth.TokenHeader,
		ttl:         ttl,
	}, nil
}

func (s *Sessions) Enabled() bool {
	return s.enabled
}

func (s *Sessions) TokenHeader() string {
	return s.tokenHeader
}

func (s *Sessions) Close() error {
	if s.redis != nil {
		return s.redis.Close()
	}
	return nil
}

func (s *Sessions) key(token string) string {
	return strings.NewReplacer("{token}", token).Replace(s.keyTemplate)
}

func generateToken() (string, error) {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}

// Create issues a fresh token for the given role, with studentID zero for
// staff roles.
func (s *Sessions) Create(ctx context.Context, role string, studentID int64) (string, error) {
	if !s.enabled {
		return "", nil
	}

	token, err := generateToken()
	if err != nil {
		return "", err
	}

	key := s.key(token)
	now := time.Now().UTC()

	if err := s.redis.HSet(ctx, key, map[string]interface{}{
		"role":             role,
		"student_id":       strconv.FormatInt(studentID, 10),
		"created_dttm_utc": now.Format(timeFormat),
	}).Err(); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}
	if err := s.redis.Expire(ctx, key, s.ttl).Err(); err != nil {
		logger.Error.Printf("Failed to set session TTL for %s: %v", key, err)
	}

	return token, nil
}

func (s *Sessions) Lookup(ctx context.Context, token string) (*SessionInfo, error) {
	if !s.enabled {
		return nil, fmt.Errorf("sessions are disabled")
	}

	key := s.key(token)
	fields, err := s.redis.HGetAll(ctx, key).Result()
	if err != nil {
		logger.Debug.Printf("Redis error: %v", err)
		return nil, fmt.Errorf("redis error: %w", err)
	}
	if len(fields) == 0 {
		logger.Debug.Printf("Session not found for key: %s", key)
		return nil, fmt.Errorf("session not found")
	}

	studentID, err := strconv.ParseInt(fields["student_id"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("malformed session for key %s: %w", key, err)
	}

	return &SessionInfo{
		Role:      fields["role"],
		StudentID: studentID,
	}, nil
}
