package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/bodyharmony/salon-scheduler/internal/config"
	domain "github.com/bodyharmony/salon-scheduler/internal/domain/schedule"
)

const freeSlotsTTL = 60 * time.Second

// SlotCache is a read-through redis cache for free-slot listings. Every
// failure path degrades to the database; the cache is never authoritative.
type SlotCache struct {
	rdb *redis.Client
}

func New(cfg *config.Config) *SlotCache {
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Println("redis unavailable, slot cache disabled:", err)
		return nil
	}

	return &SlotCache{rdb: rdb}
}

func freeSlotsKey(employeeID uint) string {
	return fmt.Sprintf("slots:free:%d", employeeID)
}

func (c *SlotCache) GetFreeSlots(ctx context.Context, employeeID uint) (*domain.FreeSlots, bool) {
	if c == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, freeSlotsKey(employeeID)).Result()
	if err != nil {
		if err != redis.Nil {
			log.Println("slot cache get error:", err)
		}
		return nil, false
	}

	var fs domain.FreeSlots
	if err := json.Unmarshal([]byte(raw), &fs); err != nil {
		return nil, false
	}
	return &fs, true
}

func (c *SlotCache) SetFreeSlots(ctx context.Context, employeeID uint, fs *domain.FreeSlots) {
	if c == nil {
		return
	}

	b, err := json.Marshal(fs)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, freeSlotsKey(employeeID), b, freeSlotsTTL).Err(); err != nil {
		log.Println("slot cache set error:", err)
	}
}

func (c *SlotCache) Invalidate(ctx context.Context, employeeID uint) {
	if c == nil {
		return
	}

	if err := c.rdb.Del(ctx, freeSlotsKey(employeeID)).Err(); err != nil {
		log.Println("slot cache invalidate error:", err)
	}
}
