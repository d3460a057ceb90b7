package redis

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// IRedis is the pending-reminder store: a sorted set scored by the reminder's
// due unix time, so due members are one range query away.
type IRedis interface {
	AddPending(ctx context.Context, key string, dueAt time.Time, payload string) error
	DuePending(ctx context.Context, key string, now time.Time) ([]string, error)
	RemovePending(ctx context.Context, key string, payload string) error
}

type redisClient struct {
	client *redis.Client
}

func New() IRedis {
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	redisAddr := os.Getenv("REDIS_ADDRESS")
	redisPassword := os.Getenv("REDIS_PASSWORD")

	logrus.Info(fmt.Sprintf("Connecting to Redis at %s...", redisAddr))

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		logrus.Error(fmt.Sprintf("Failed to connect to Redis: %v", err))
	} else {
		logrus.Info("Successfully connected to Redis")
	}

	return &redisClient{client: client}
}

func (r *redisClient) AddPending(ctx context.Context, key string, dueAt time.Time, payload string) error {
	err := r.client.ZAdd(ctx, key, redis.Z{
		Score:  float64(dueAt.Unix()),
		Member: payload,
	}).Err()
	if err != nil {
		logrus.Error(fmt.Sprintf("Error adding pending member to %s: %v", key, err))
		return err
	}
	return nil
}

func (r *redisClient) DuePending(ctx context.Context, key string, now time.Time) ([]string, error) {
	members, err := r.client.ZRangeByScore(ctx, key, &redis.ZRangeBy{
		Min: "-inf",
		Max: strconv.FormatInt(now.Unix(), 10),
	}).Result()
	if err != nil {
		logrus.Error(fmt.Sprintf("Error reading due members from %s: %v", key, err))
		return nil, err
	}
	return members, nil
}

func (r *redisClient) RemovePending(ctx context.Context, key string, payload string) error {
	if err := r.client.ZRem(ctx, key, payload).Err(); err != nil {
		logrus.Error(fmt.Sprintf("Error removing pending member from %s: %v", key, err))
		return err
	}
	return nil
}
