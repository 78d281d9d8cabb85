package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/scrabble-go/internal/model"
	"github.com/mcoot/scrabble-go/internal/storage"
)

// Storage is a Redis-backed word store. Games are never written to Redis.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.WordStore = (*Storage)(nil)

// Dictionary operations

func (s *Storage) GetDictionaryWords(ctx context.Context) ([]string, error) {
	key := dictionaryKey()

	// Check if dictionary exists
	exists, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, model.ErrDictionaryNotLoaded
	}

	// Get all words from the set
	return s.client.SMembers(ctx, key).Result()
}

// SaveDictionaryWords replaces the stored word list. Words are written to a
// staging set in batches and renamed over the live set in one step.
func (s *Storage) SaveDictionaryWords(ctx context.Context, words []string) error {
	staging := dictionaryStagingKey()

	if err := s.client.Del(ctx, staging).Err(); err != nil {
		return err
	}

	batchSize := s.cfg.BatchSize
	if batchSize <= 0 {
		batchSize = len(words)
	}

	pipe := s.client.Pipeline()
	for start := 0; start < len(words); start += batchSize {
		end := min(start+batchSize, len(words))
		// Convert []string to []interface{} for SAdd
		members := make([]interface{}, 0, end-start)
		for _, w := range words[start:end] {
			members = append(members, w)
		}
		pipe.SAdd(ctx, staging, members...)
	}

	if len(words) == 0 {
		pipe.Del(ctx, dictionaryKey())
	} else {
		pipe.Rename(ctx, staging, dictionaryKey())
		if s.cfg.DictionaryTTL > 0 {
			pipe.Expire(ctx, dictionaryKey(), s.cfg.DictionaryTTL)
		}
	}

	_, err := pipe.Exec(ctx)
	return err
}

// DictionarySize returns the number of stored words
func (s *Storage) DictionarySize(ctx context.Context) (int64, error) {
	return s.client.SCard(ctx, dictionaryKey()).Result()
}
