package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"sarrisk/internal/model"
)

// BoardCache handles the Redis ZSET ranking a mission's finalized
// assessments by normalized risk, highest first
type BoardCache interface {
	Record(ctx context.Context, missionCode string, entry *model.BoardEntry) error
	Top(ctx context.Context, missionCode string, limit int) ([]model.BoardEntry, error)
	Rank(ctx context.Context, missionCode, reportID string) (int64, error)
}

type boardCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewBoardCache creates a new risk board cache
func NewBoardCache(client *redis.Client) BoardCache {
	return &boardCache{
		client: client,
		ttl:    72 * time.Hour,
	}
}

func (c *boardCache) key(missionCode string) string {
	return fmt.Sprintf("mission:%s:board", missionCode)
}

func (c *boardCache) detailKey(missionCode string) string {
	return fmt.Sprintf("mission:%s:board:detail", missionCode)
}

func (c *boardCache) Record(ctx context.Context, missionCode string, entry *model.BoardEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	pipe := c.client.TxPipeline()
	pipe.ZAdd(ctx, c.key(missionCode), redis.Z{
		Score:  entry.Risk,
		Member: entry.ReportID,
	})
	pipe.HSet(ctx, c.detailKey(missionCode), entry.ReportID, data)
	pipe.Expire(ctx, c.key(missionCode), c.ttl)
	pipe.Expire(ctx, c.detailKey(missionCode), c.ttl)
	_, err = pipe.Exec(ctx)
	return err
}

func (c *boardCache) Top(ctx context.Context, missionCode string, limit int) ([]model.BoardEntry, error) {
	results, err := c.client.ZRevRangeWithScores(ctx, c.key(missionCode), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return []model.BoardEntry{}, nil
	}

	ids := make([]string, len(results))
	for i, z := range results {
		ids[i] = z.Member.(string)
	}
	details, err := c.client.HMGet(ctx, c.detailKey(missionCode), ids...).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]model.BoardEntry, len(results))
	for i, z := range results {
		var e model.BoardEntry
		if s, ok := details[i].(string); ok {
			if err := json.Unmarshal([]byte(s), &e); err != nil {
				return nil, err
			}
		}
		e.ReportID = ids[i]
		e.Risk = z.Score
		e.Rank = i + 1
		entries[i] = e
	}
	return entries, nil
}

func (c *boardCache) Rank(ctx context.Context, missionCode, reportID string) (int64, error) {
	rank, err := c.client.ZRevRank(ctx, c.key(missionCode), reportID).Result()
	if err == redis.Nil {
		return -1, nil
	}
	return rank + 1, err // 1-indexed
}
