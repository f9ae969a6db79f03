package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"sarrisk/internal/model"
)

// AssessmentCache holds in-progress assessments. Nothing here outlives the TTL.
type AssessmentCache interface {
	Set(ctx context.Context, a *model.Assessment) error
	Get(ctx context.Context, id string) (*model.Assessment, error)
	Delete(ctx context.Context, a *model.Assessment) error
	ListByTeam(ctx context.Context, teamID string) ([]*model.Assessment, error)
}

type assessmentCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewAssessmentCache creates a new assessment cache
func NewAssessmentCache(client *redis.Client, ttl time.Duration) AssessmentCache {
	return &assessmentCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *assessmentCache) key(id string) string {
	return fmt.Sprintf("assessment:%s", id)
}

func (c *assessmentCache) teamKey(teamID string) string {
	return fmt.Sprintf("team:%s:assessments", teamID)
}

func (c *assessmentCache) Set(ctx context.Context, a *model.Assessment) error {
	data, err := json.Marshal(a)
	if err != nil {
		return err
	}

	pipe := c.client.TxPipeline()
	pipe.Set(ctx, c.key(a.ID), data, c.ttl)
	pipe.SAdd(ctx, c.teamKey(a.TeamID), a.ID)
	pipe.Expire(ctx, c.teamKey(a.TeamID), c.ttl)
	_, err = pipe.Exec(ctx)
	return err
}

func (c *assessmentCache) Get(ctx context.Context, id string) (*model.Assessment, error) {
	data, err := c.client.Get(ctx, c.key(id)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var a model.Assessment
	if err := json.Unmarshal([]byte(data), &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *assessmentCache) Delete(ctx context.Context, a *model.Assessment) error {
	pipe := c.client.TxPipeline()
	pipe.Del(ctx, c.key(a.ID))
	pipe.SRem(ctx, c.teamKey(a.TeamID), a.ID)
	_, err := pipe.Exec(ctx)
	return err
}

// ListByTeam returns the team's assessments that have not expired
func (c *assessmentCache) ListByTeam(ctx context.Context, teamID string) ([]*model.Assessment, error) {
	ids, err := c.client.SMembers(ctx, c.teamKey(teamID)).Result()
	if err != nil {
		return nil, err
	}

	var out []*model.Assessment
	for _, id := range ids {
		a, err := c.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if a == nil {
			// expired; drop the dangling index entry
			c.client.SRem(ctx, c.teamKey(teamID), id)
			continue
		}
		out = append(out, a)
	}
	return out, nil
}
