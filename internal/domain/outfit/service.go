package outfit

import (
	"context"
	"hash/fnv"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

// Service is the engine facade: one call from wardrobe + profile to a ranked
// outfit list. The computation is pure and synchronous; repeated calls with
// identical inputs return identical results.
type Service interface {
	Suggest(ctx context.Context, wardrobe []Garment, profile Profile) []Outfit
}

// Store memoizes suggestions for a wardrobe+profile snapshot. Caching is an
// optimization only: the engine recomputes whenever the store misses or fails.
type Store interface {
	Get(ctx context.Context, key string) ([]Outfit, bool, error)
	Save(ctx context.Context, key string, outfits []Outfit, ttl time.Duration) error
}

// Config drives the engine facade.
type Config struct {
	CacheTTL time.Duration
}

type service struct {
	cfg    Config
	store  Store
	logger *slog.Logger
}

// NewService wires up the outfit engine. The store may be nil, in which case
// every call is a fresh computation.
func NewService(cfg Config, store Store, logger *slog.Logger) Service {
	return &service{
		cfg:    cfg,
		store:  store,
		logger: logger.With("component", "outfit.service"),
	}
}

func (s *service) Suggest(ctx context.Context, wardrobe []Garment, profile Profile) []Outfit {
	key := snapshotKey(wardrobe, profile)
	if s.store != nil {
		cached, ok, err := s.store.Get(ctx, key)
		if err != nil {
			s.logger.Warn("suggestion cache lookup failed", "error", err)
		} else if ok {
			return cached
		}
	}

	outfits := Compose(wardrobe, profile)

	if s.store != nil {
		if err := s.store.Save(ctx, key, outfits, s.cfg.CacheTTL); err != nil {
			s.logger.Warn("suggestion cache save failed", "error", err)
		}
	}
	return outfits
}

// snapshotKey hashes every field that can surface in the returned outfits,
// not just the ones matching consults: cached outfits embed full garment
// values, so name and tag edits must produce a fresh key too.
func snapshotKey(wardrobe []Garment, profile Profile) string {
	hash := fnv.New64a()
	write := func(parts ...string) {
		for _, part := range parts {
			_, _ = hash.Write([]byte(part))
			_, _ = hash.Write([]byte{0})
		}
	}
	for _, g := range wardrobe {
		write(g.ID, g.Name, string(g.Type), g.Color.Hex(), g.ColorName)
		write(strings.Join(g.Tags, ","))
	}
	write(string(profile.BodyType), string(profile.Undertone))
	write(strings.Join(profile.FavoriteColors, ","))
	write(strings.Join(profile.DislikedColors, ","))
	return strconv.FormatUint(hash.Sum64(), 16)
}
