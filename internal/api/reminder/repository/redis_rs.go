package reminderRepository

import (
	"HealthcareGolang/internal/entity"
	redisPkg "HealthcareGolang/pkg/redis"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const pendingKey = "reminders:pending"

type redisRepository struct {
	redis redisPkg.IRedis
	log   *logrus.Logger
}

// NewRedisRepository keeps pending reminders in a sorted set scored by due
// unix time, so they survive restarts.
func NewRedisRepository(redis redisPkg.IRedis, log *logrus.Logger) Repository {
	return &redisRepository{
		redis: redis,
		log:   log,
	}
}

func (r *redisRepository) Add(ctx context.Context, rem entity.Reminder) error {
	payload, err := json.Marshal(rem)
	if err != nil {
		return err
	}
	return r.redis.AddPending(ctx, pendingKey, rem.DueAt, string(payload))
}

func (r *redisRepository) Due(ctx context.Context, now time.Time) ([]entity.Reminder, error) {
	members, err := r.redis.DuePending(ctx, pendingKey, now)
	if err != nil {
		return nil, err
	}

	var due []entity.Reminder
	for _, member := range members {
		var rem entity.Reminder
		if err := json.Unmarshal([]byte(member), &rem); err != nil {
			r.log.WithFields(logrus.Fields{
				"error":  err.Error(),
				"member": member,
			}).Warn("Skipping undecodable pending reminder")
			continue
		}
		due = append(due, rem)
	}
	return due, nil
}

func (r *redisRepository) Remove(ctx context.Context, rem entity.Reminder) error {
	payload, err := json.Marshal(rem)
	if err != nil {
		return err
	}
	return r.redis.RemovePending(ctx, pendingKey, string(payload))
}
