package colorextract

import (
	"context"
	"hash/fnv"

	"github.com/yanqian/closet-stylist/internal/domain/closet"
	"github.com/yanqian/closet-stylist/internal/domain/outfit"
)

// DeterministicExtractor avoids network calls by hashing photo bytes into a
// stable color. The same photo always yields the same color, which is all the
// dev and test environments need.
type DeterministicExtractor struct{}

// NewDeterministicExtractor constructs the extractor.
func NewDeterministicExtractor() *DeterministicExtractor {
	return &DeterministicExtractor{}
}

// Extract hashes the photo into a pseudo-random color.
func (e *DeterministicExtractor) Extract(_ context.Context, data []byte, _ string) (outfit.Color, error) {
	hash := fnv.New64a()
	_, _ = hash.Write(data)
	seed := hash.Sum64()
	return outfit.Color{
		R: uint8(seed >> 16),
		G: uint8(seed >> 8),
		B: uint8(seed),
	}, nil
}

var _ closet.ColorExtractor = (*DeterministicExtractor)(nil)
