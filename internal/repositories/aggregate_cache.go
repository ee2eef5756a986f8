package repositories

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Rakshith-Airdit/AISP-PRICE-COMPARISION/internal/models"
)

// AggregateCache keeps dashboard aggregates in redis for a short TTL so the
// detail screen does not hit the database on every poll. A nil client
// disables caching.
type AggregateCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewAggregateCache(client *redis.Client) *AggregateCache {
	return &AggregateCache{Client: client, TTL: 30 * time.Second}
}

func (c *AggregateCache) GetStatusDistribution(ctx context.Context, rfqNumber string) (models.StatusDistribution, bool) {
	var dist models.StatusDistribution
	if c == nil || c.Client == nil {
		return dist, false
	}
	data, err := c.Client.Get(ctx, "rfq:dist:"+rfqNumber).Bytes()
	if err != nil {
		return dist, false
	}
	if err := json.Unmarshal(data, &dist); err != nil {
		return dist, false
	}
	return dist, true
}

func (c *AggregateCache) SetStatusDistribution(ctx context.Context, dist models.StatusDistribution) error {
	if c == nil || c.Client == nil {
		return nil
	}
	data, err := json.Marshal(dist)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, "rfq:dist:"+dist.RfqNumber, data, c.TTL).Err()
}

func (c *AggregateCache) GetProcessFlowSource(ctx context.Context, rfqNumber string) (models.ProcessFlowSource, bool) {
	var src models.ProcessFlowSource
	if c == nil || c.Client == nil {
		return src, false
	}
	data, err := c.Client.Get(ctx, "rfq:flow:"+rfqNumber).Bytes()
	if err != nil {
		return src, false
	}
	if err := json.Unmarshal(data, &src); err != nil {
		return src, false
	}
	return src, true
}

func (c *AggregateCache) SetProcessFlowSource(ctx context.Context, src models.ProcessFlowSource) error {
	if c == nil || c.Client == nil {
		return nil
	}
	data, err := json.Marshal(src)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, "rfq:flow:"+src.RfqNumber, data, c.TTL).Err()
}

// Invalidate drops the cached aggregates of one RFQ, called after award or
// reject decisions.
func (c *AggregateCache) Invalidate(ctx context.Context, rfqNumber string) {
	if c == nil || c.Client == nil {
		return
	}
	c.Client.Del(ctx, "rfq:dist:"+rfqNumber, "rfq:flow:"+rfqNumber)
}
