package cache

import (
	"context"
	"encoding/json"
	"time"

	"storefront_back_end/internal/database"
)

const (
	CategoryCacheTTL = 1 * time.Hour
	ProductCacheTTL  = 10 * time.Minute
)

// Cache JSON générique au-dessus de Redis. Toutes les fonctions sont
// no-op quand Redis n'est pas connecté : un cache absent se comporte
// comme un cache vide.

// GetJSON récupère et désérialise une entrée. Retourne false sur miss.
func GetJSON(key string, dest interface{}) bool {
	if database.Redis == nil {
		return false
	}

	ctx := context.Background()
	data, err := database.Redis.Get(ctx, key).Result()
	if err != nil || data == "" {
		return false
	}
	return json.Unmarshal([]byte(data), dest) == nil
}

// SetJSON sérialise et stocke une entrée avec TTL.
func SetJSON(key string, value interface{}, ttl time.Duration) {
	if database.Redis == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	database.Redis.Set(context.Background(), key, data, ttl)
}

// Invalidate supprime des clés précises.
func Invalidate(keys ...string) {
	if database.Redis == nil || len(keys) == 0 {
		return
	}
	database.Redis.Del(context.Background(), keys...)
}

// InvalidatePattern supprime toutes les clés correspondant au motif
// (ex: "products:*" après une mutation produit).
func InvalidatePattern(pattern string) {
	if database.Redis == nil {
		return
	}

	ctx := context.Background()
	iter := database.Redis.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		database.Redis.Del(ctx, iter.Val())
	}
}
