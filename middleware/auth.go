package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"telecare/utils"
)

// JWTAuthMiddleware validates the bearer token and stores the caller's ID in
// the gin context under "patientID". A token hash cached per subject lets a
// rotated token invalidate older ones without a database round-trip.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		subjectID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || subjectID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		computedHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + subjectID

		authCache := utils.GetAuthCacheClient()
		cachedHash, err := authCache.Get(ctx, cacheKey).Result()
		switch {
		case err == nil:
			if cachedHash != computedHash {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error": "Token mismatch",
					"code":  0,
				})
				return
			}
			_ = authCache.Expire(ctx, cacheKey, time.Hour).Err()
		case err == redis.Nil:
			// First sighting of this subject: remember the hash so a later
			// token rotation supersedes this one.
			_ = authCache.Set(ctx, cacheKey, computedHash, time.Hour).Err()
		default:
			// Cache unavailable; the signature check above already passed.
		}

		c.Set("patientID", subjectID)
		c.Next()
	}
}
