package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// DLQSuffix is appended to the source queue name to form its dead letter
// queue, e.g. jobs:shift_report:dlq.
const DLQSuffix = ":dlq"

type dlqEntry struct {
	Job      Job       `json:"job"`
	Queue    string    `json:"queue"`
	Error    string    `json:"error"`
	FailedAt time.Time `json:"failed_at"`
}

// SendToDLQ parks a permanently failed job for manual inspection. Best
// effort: if redis itself is the problem the entry is only logged.
func SendToDLQ(ctx context.Context, rdb *redis.Client, queue string, job Job, cause string) {
	entry := dlqEntry{
		Job:      job,
		Queue:    queue,
		Error:    cause,
		FailedAt: time.Now().UTC(),
	}
	encoded, err := json.Marshal(entry)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal DLQ entry")
		return
	}
	if rdb == nil {
		log.Error().Str("queue", queue).RawJSON("entry", encoded).Msg("no redis, DLQ entry dropped")
		return
	}
	if err := rdb.LPush(ctx, queue+DLQSuffix, encoded).Err(); err != nil {
		log.Error().Str("queue", queue).Err(err).RawJSON("entry", encoded).Msg("failed to push DLQ entry")
	}
}

// DLQLength reports how many entries sit in a queue's DLQ. Used by the
// health endpoint.
func DLQLength(ctx context.Context, rdb *redis.Client, queue string) (int64, error) {
	if rdb == nil {
		return 0, nil
	}
	return rdb.LLen(ctx, queue+DLQSuffix).Result()
}
