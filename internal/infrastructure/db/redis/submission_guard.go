package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shiftboard/jobboard-api/internal/core/ports"
)

const defaultGuardTTL = 30 * time.Second

// SubmissionGuard marks in-flight application submissions in Redis.
// Key format: apply:<job_id>:<jobseeker_id>
type SubmissionGuard struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSubmissionGuard wraps client. The ttl bounds how long a crashed
// submission can hold its key.
func NewSubmissionGuard(client *redis.Client, ttl time.Duration) ports.SubmissionGuard {
	if ttl <= 0 {
		ttl = defaultGuardTTL
	}
	return &SubmissionGuard{client: client, ttl: ttl}
}

// Acquire reports false when another submission for the same pair holds the key.
func (g *SubmissionGuard) Acquire(ctx context.Context, jobID, jobSeekerID string) (bool, error) {
	ok, err := g.client.SetNX(ctx, guardKey(jobID, jobSeekerID), "1", g.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("submission guard acquire: %w", err)
	}
	return ok, nil
}

func (g *SubmissionGuard) Release(ctx context.Context, jobID, jobSeekerID string) error {
	if err := g.client.Del(ctx, guardKey(jobID, jobSeekerID)).Err(); err != nil {
		return fmt.Errorf("submission guard release: %w", err)
	}
	return nil
}

func guardKey(jobID, jobSeekerID string) string {
	return fmt.Sprintf("apply:%s:%s", jobID, jobSeekerID)
}
