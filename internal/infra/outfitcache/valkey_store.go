package outfitcache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/closet-stylist/internal/domain/outfit"
)

// ValkeyStore caches outfit suggestions in a Valkey-compatible database.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs a new store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "outfits"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

func (s *ValkeyStore) Get(ctx context.Context, key string) ([]outfit.Outfit, bool, error) {
	if key == "" {
		return nil, false, nil
	}
	cmd := s.client.B().Get().Key(s.entryKey(key)).Build()
	result := s.client.Do(ctx, cmd)
	payload, err := result.ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var outfits []outfit.Outfit
	if err := json.Unmarshal([]byte(payload), &outfits); err != nil {
		return nil, false, err
	}
	return outfits, true, nil
}

func (s *ValkeyStore) Save(ctx context.Context, key string, outfits []outfit.Outfit, ttl time.Duration) error {
	if key == "" {
		return nil
	}
	payload, err := json.Marshal(outfits)
	if err != nil {
		return err
	}
	builder := s.client.B().Set().Key(s.entryKey(key)).Value(string(payload))
	var cmd valkey.Completed
	if ttl > 0 {
		if ttl < time.Second {
			ttl = time.Second
		}
		cmd = builder.Ex(ttl).Build()
	} else {
		cmd = builder.Build()
	}
	return s.client.Do(ctx, cmd).Error()
}

func (s *ValkeyStore) entryKey(key string) string {
	return fmt.Sprintf("%s:%s", s.prefix, key)
}

var _ outfit.Store = (*ValkeyStore)(nil)
