package keystore

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const redisKey = "travel:signing_key"

// LoadRedis returns the signing key held in the shared Redis secret store,
// generating it once when absent. SETNX makes the generate-once step safe
// under concurrent startup: all processes converge on whichever key was
// written first.
func LoadRedis(ctx context.Context, client *redis.Client) ([]byte, error) {
	key, err := client.Get(ctx, redisKey).Bytes()
	if err == nil {
		return key, nil
	}
	if err != redis.Nil {
		return nil, fmt.Errorf("keystore: redis get: %w", err)
	}

	key, err = generateKey()
	if err != nil {
		return nil, err
	}

	set, err := client.SetNX(ctx, redisKey, key, 0).Result()
	if err != nil {
		return nil, fmt.Errorf("keystore: redis setnx: %w", err)
	}
	if set {
		return key, nil
	}

	// Another process won the race; use its key.
	key, err = client.Get(ctx, redisKey).Bytes()
	if err != nil {
		return nil, fmt.Errorf("keystore: redis get after setnx: %w", err)
	}
	return key, nil
}
