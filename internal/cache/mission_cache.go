package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"sarrisk/internal/model"
)

// MissionCache handles Redis operations for mission state and joined teams
type MissionCache interface {
	SetMeta(ctx context.Context, code string, meta *model.MissionMeta) error
	GetMeta(ctx context.Context, code string) (*model.MissionMeta, error)
	SetStatus(ctx context.Context, code string, status model.MissionStatus) error
	Exists(ctx context.Context, code string) (bool, error)
	AddTeam(ctx context.Context, team *model.Team) error
	GetTeam(ctx context.Context, code, teamID string) (*model.Team, error)
	Teams(ctx context.Context, code string) ([]*model.Team, error)
}

type missionCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewMissionCache creates a new mission cache
func NewMissionCache(client *redis.Client) MissionCache {
	return &missionCache{
		client: client,
		ttl:    72 * time.Hour, // Missions expire after 3 days
	}
}

func (c *missionCache) key(code string) string {
	return fmt.Sprintf("mission:%s", code)
}

func (c *missionCache) teamsKey(code string) string {
	return fmt.Sprintf("mission:%s:teams", code)
}

func (c *missionCache) SetMeta(ctx context.Context, code string, meta *model.MissionMeta) error {
	data, err := json.Marshal(meta)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(code), data, c.ttl).Err()
}

func (c *missionCache) GetMeta(ctx context.Context, code string) (*model.MissionMeta, error) {
	data, err := c.client.Get(ctx, c.key(code)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var meta model.MissionMeta
	if err := json.Unmarshal([]byte(data), &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (c *missionCache) SetStatus(ctx context.Context, code string, status model.MissionStatus) error {
	meta, err := c.GetMeta(ctx, code)
	if err != nil {
		return err
	}
	if meta == nil {
		return fmt.Errorf("mission %s not found", code)
	}
	meta.Status = status
	return c.SetMeta(ctx, code, meta)
}

func (c *missionCache) Exists(ctx context.Context, code string) (bool, error) {
	n, err := c.client.Exists(ctx, c.key(code)).Result()
	return n > 0, err
}

func (c *missionCache) AddTeam(ctx context.Context, team *model.Team) error {
	data, err := json.Marshal(team)
	if err != nil {
		return err
	}
	key := c.teamsKey(team.MissionCode)
	pipe := c.client.TxPipeline()
	pipe.HSet(ctx, key, team.ID, data)
	pipe.Expire(ctx, key, c.ttl)
	_, err = pipe.Exec(ctx)
	return err
}

func (c *missionCache) GetTeam(ctx context.Context, code, teamID string) (*model.Team, error) {
	data, err := c.client.HGet(ctx, c.teamsKey(code), teamID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var team model.Team
	if err := json.Unmarshal([]byte(data), &team); err != nil {
		return nil, err
	}
	return &team, nil
}

func (c *missionCache) Teams(ctx context.Context, code string) ([]*model.Team, error) {
	all, err := c.client.HGetAll(ctx, c.teamsKey(code)).Result()
	if err != nil {
		return nil, err
	}
	teams := make([]*model.Team, 0, len(all))
	for _, data := range all {
		var team model.Team
		if err := json.Unmarshal([]byte(data), &team); err != nil {
			return nil, err
		}
		teams = append(teams, &team)
	}
	return teams, nil
}
