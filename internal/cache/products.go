// Package cache keeps short-lived Redis copies of the product listings.
// A nil *ProductCache is valid and does nothing, so callers never need to
// check whether caching is enabled.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	models "github.com/Githubspruchir/InventoryStore/internal/models"
)

const (
	listKey     = "products:all"
	lowStockKey = "products:low-stock"
	ttl         = 30 * time.Second
)

type ProductCache struct {
	rdb *redis.Client
	ctx context.Context
}

func NewProductCache(rdb *redis.Client, ctx context.Context) *ProductCache {
	return &ProductCache{rdb: rdb, ctx: ctx}
}

func (c *ProductCache) GetList() ([]models.Product, bool) {
	return c.get(listKey)
}

func (c *ProductCache) SetList(products []models.Product) {
	c.set(listKey, products)
}

func (c *ProductCache) GetLowStock() ([]models.Product, bool) {
	return c.get(lowStockKey)
}

func (c *ProductCache) SetLowStock(products []models.Product) {
	c.set(lowStockKey, products)
}

// Invalidate drops both listings. Called after every product mutation.
func (c *ProductCache) Invalidate() {
	if c == nil {
		return
	}
	_ = c.rdb.Del(c.ctx, listKey, lowStockKey).Err()
}

func (c *ProductCache) get(key string) ([]models.Product, bool) {
	if c == nil {
		return nil, false
	}
	data, err := c.rdb.Get(c.ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, false
	}
	return products, true
}

func (c *ProductCache) set(key string, products []models.Product) {
	if c == nil {
		return
	}
	data, err := json.Marshal(products)
	if err != nil {
		return
	}
	_ = c.rdb.Set(c.ctx, key, data, ttl).Err()
}
