package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	idempotencyCacheKey = "idempotency_cache_key"
	idempotencyLockKey  = "idempotency_lock_key"

	idempotencyLockTTL   = 30 * time.Second
	idempotencyResultTTL = 24 * time.Hour
)

// storedResponse is the envelope cached per Idempotency-Key. It carries
// the status code alongside the body so a replay reproduces the first
// response exactly (a replayed upload must answer 201, not 200).
type storedResponse struct {
	Status int             `json:"status"`
	Body   json.RawMessage `json:"body"`
}

// Idempotency guards POST endpoints that clients may retry (the payslip
// upload). A replayed Idempotency-Key returns the stored first response;
// a key whose first request is still in flight gets a 409.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		cacheKey := fmt.Sprintf("idemp:%s:%s", c.FullPath(), idempKey)
		lockKey := cacheKey + ":lock"

		if val, err := rdb.Get(c.Request.Context(), cacheKey).Result(); err == nil {
			var stored storedResponse
			if json.Unmarshal([]byte(val), &stored) == nil && stored.Status != 0 {
				var body any
				if json.Unmarshal(stored.Body, &body) == nil {
					c.AbortWithStatusJSON(stored.Status, body)
					return
				}
			}
		}

		// Lock expires on its own if the process dies mid-request.
		isNew, _ := rdb.SetNX(c.Request.Context(), lockKey, "locked", idempotencyLockTTL).Result()
		if !isNew {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"message": "A request with this Idempotency-Key is already being processed.",
			})
			return
		}

		c.Set(idempotencyCacheKey, cacheKey)
		c.Set(idempotencyLockKey, lockKey)

		c.Next()
	}
}

// StoreIdempotentResult records the response for the key claimed by
// Idempotency and releases the in-flight lock.
func StoreIdempotentResult(c *gin.Context, rdb *redis.Client, status int, body any) {
	cacheKey := c.GetString(idempotencyCacheKey)
	lockKey := c.GetString(idempotencyLockKey)
	if cacheKey == "" || rdb == nil {
		return
	}

	if payload, err := json.Marshal(body); err == nil {
		if envelope, err := json.Marshal(storedResponse{Status: status, Body: payload}); err == nil {
			rdb.Set(c.Request.Context(), cacheKey, envelope, idempotencyResultTTL)
		}
	}
	rdb.Del(c.Request.Context(), lockKey)
}

// ReleaseIdempotentLock drops the in-flight lock without caching
// anything, letting a failed request be retried with the same key.
func ReleaseIdempotentLock(c *gin.Context, rdb *redis.Client) {
	cacheKey := c.GetString(idempotencyCacheKey)
	lockKey := c.GetString(idempotencyLockKey)
	if cacheKey == "" || rdb == nil {
		return
	}
	rdb.Del(c.Request.Context(), lockKey)
}
