package storage

import (
	"encoding/json"
	stderrors "errors"
	"time"

	"github.com/gomodule/redigo/redis"
	"github.com/rs/zerolog"

	"github.com/compasshq/compass/internal/errors"
)

// redisKeyPrefix namespaces Compass keys inside a shared Redis instance.
const redisKeyPrefix = "compass:"

// Connection pool sizing for a single-user tool.
const (
	redisMaxIdle     = 2
	redisIdleTimeout = 240 * time.Second
	redisDialTimeout = 5 * time.Second
)

// RedisKV implements KV against a Redis server. It carries the same total
// semantics as FileKV: connection and command failures are logged and
// reported as false, never raised.
type RedisKV struct {
	pool *redis.Pool
	log  zerolog.Logger
}

// NewRedisKV creates a RedisKV connected to addr (host:port). The address
// is probed once with PING so misconfiguration surfaces at startup rather
// than as silent data loss later.
func NewRedisKV(addr string, log zerolog.Logger) (*RedisKV, error) {
	if addr == "" {
		return nil, errors.Wrap(errors.ErrEmptyValue, "redis address")
	}

	pool := &redis.Pool{
		MaxIdle:     redisMaxIdle,
		IdleTimeout: redisIdleTimeout,
		Dial: func() (redis.Conn, error) {
			return redis.Dial("tcp", addr, redis.DialConnectTimeout(redisDialTimeout))
		},
	}

	conn := pool.Get()
	defer func() { _ = conn.Close() }()
	if _, err := conn.Do("PING"); err != nil {
		_ = pool.Close()
		return nil, errors.Wrapf(errors.ErrStorageUnavailable, "redis at %s: %v", addr, err)
	}

	return &RedisKV{pool: pool, log: log}, nil
}

// Get reads and decodes the JSON payload stored under key into out.
func (s *RedisKV) Get(key string, out any) bool {
	conn := s.pool.Get()
	defer func() { _ = conn.Close() }()

	data, err := redis.Bytes(conn.Do("GET", redisKeyPrefix+key))
	if err != nil {
		if !stderrors.Is(err, redis.ErrNil) {
			s.log.Warn().Err(err).Str("key", key).Msg("storage read failed")
		}
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("storage payload corrupt")
		return false
	}
	return true
}

// Set encodes value as JSON and stores it under key.
func (s *RedisKV) Set(key string, value any) bool {
	data, err := json.Marshal(value)
	if err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("storage encode failed")
		return false
	}

	conn := s.pool.Get()
	defer func() { _ = conn.Close() }()

	if _, err := conn.Do("SET", redisKeyPrefix+key, data); err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("storage write failed")
		return false
	}
	return true
}

// Remove deletes the value stored under key.
func (s *RedisKV) Remove(key string) bool {
	conn := s.pool.Get()
	defer func() { _ = conn.Close() }()

	if _, err := conn.Do("DEL", redisKeyPrefix+key); err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("storage remove failed")
		return false
	}
	return true
}

// Close releases the connection pool.
func (s *RedisKV) Close() error {
	return s.pool.Close()
}

// Ensure RedisKV implements KV.
var _ KV = (*RedisKV)(nil)
