package clients

import (
	"context"
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"
)

type RedisClient interface {
	Scan(ctx context.Context, cursor uint64, match string, count int64) *redis.ScanCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Ping(ctx context.Context) *redis.StatusCmd
	PoolStats() *redis.PoolStats
	Close() error
}

// HTTPClient expõe Do em vez de Post para que o chamador controle os
// cabeçalhos da requisição (o endpoint de ingestão recebe o corpo bruto,
// sem Content-Type explícito).
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}
