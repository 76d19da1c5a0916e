package handler

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/Wellify-Group/wellify-business-sub000/internal/infra"
	"github.com/Wellify-Group/wellify-business-sub000/internal/worker"
)

// Health returns a JSON health check response.
// Checks data directory and Redis connectivity; never exposes credentials or internals.
func Health(dataDir string, rdb *redis.Client, cb *infra.CircuitBreaker) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		storageStatus := "ok"
		if info, err := os.Stat(dataDir); err != nil || !info.IsDir() {
			storageStatus = "error"
		}

		redisStatus := "connected"
		var dlqDepth int64
		if rdb == nil {
			redisStatus = "disabled"
		} else if rdb.Ping(ctx).Err() != nil {
			redisStatus = "error"
		} else {
			dlqDepth, _ = worker.DLQLength(ctx, rdb, worker.QueueShiftReport)
		}

		status := http.StatusOK
		if storageStatus != "ok" || redisStatus == "error" {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"ok":        status == http.StatusOK,
			"storage":   storageStatus,
			"redis":     redisStatus,
			"queue_cb":  cb.State().String(),
			"dlq_depth": dlqDepth,
		})
	}
}
