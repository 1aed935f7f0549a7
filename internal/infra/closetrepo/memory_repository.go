package closetrepo

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/yanqian/closet-stylist/internal/domain/closet"
	"github.com/yanqian/closet-stylist/internal/domain/outfit"
)

// MemoryRepository keeps garments in memory for tests/dev.
type MemoryRepository struct {
	mu       sync.RWMutex
	garments map[uuid.UUID]closet.Garment
	order    []uuid.UUID
}

// NewMemoryRepository constructs an empty repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		garments: make(map[uuid.UUID]closet.Garment),
	}
}

// Create stores a garment record.
func (r *MemoryRepository) Create(_ context.Context, garment closet.Garment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.garments[garment.ID]; !exists {
		r.order = append(r.order, garment.ID)
	}
	r.garments[garment.ID] = cloneGarment(garment)
	return nil
}

// Get fetches a garment owned by the user.
func (r *MemoryRepository) Get(_ context.Context, userID int64, id uuid.UUID) (closet.Garment, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	garment, ok := r.garments[id]
	if !ok || garment.UserID != userID {
		return closet.Garment{}, false, nil
	}
	return cloneGarment(garment), true, nil
}

// List returns the user's garments in creation order.
func (r *MemoryRepository) List(_ context.Context, userID int64) ([]closet.Garment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []closet.Garment
	for _, id := range r.order {
		garment, ok := r.garments[id]
		if !ok || garment.UserID != userID {
			continue
		}
		out = append(out, cloneGarment(garment))
	}
	return out, nil
}

// Update overwrites the stored garment.
func (r *MemoryRepository) Update(_ context.Context, garment closet.Garment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.garments[garment.ID]; !exists {
		r.order = append(r.order, garment.ID)
	}
	r.garments[garment.ID] = cloneGarment(garment)
	return nil
}

// Delete removes a garment owned by the user.
func (r *MemoryRepository) Delete(_ context.Context, userID int64, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	garment, ok := r.garments[id]
	if !ok || garment.UserID != userID {
		return false, nil
	}
	delete(r.garments, id)
	for i, orderID := range r.order {
		if orderID == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true, nil
}

// NearestByColor linearly scans the user's garments sorted by color
// distance.
func (r *MemoryRepository) NearestByColor(_ context.Context, userID int64, color outfit.Color, exclude uuid.UUID, limit int) ([]closet.SimilarGarment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var matches []closet.SimilarGarment
	for _, id := range r.order {
		garment, ok := r.garments[id]
		if !ok || garment.UserID != userID || garment.ID == exclude {
			continue
		}
		matches = append(matches, closet.SimilarGarment{
			Garment:  cloneGarment(garment),
			Distance: outfit.Distance(color, garment.Color),
		})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Distance < matches[j].Distance
	})
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

// MemoryProfileRepository keeps style profiles in memory for tests/dev.
type MemoryProfileRepository struct {
	mu       sync.RWMutex
	profiles map[int64]closet.StyleProfile
}

// NewMemoryProfileRepository constructs an empty profile repository.
func NewMemoryProfileRepository() *MemoryProfileRepository {
	return &MemoryProfileRepository{profiles: make(map[int64]closet.StyleProfile)}
}

// Get fetches the stored style profile.
func (r *MemoryProfileRepository) Get(_ context.Context, userID int64) (closet.StyleProfile, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	profile, ok := r.profiles[userID]
	return profile, ok, nil
}

// Save stores the style profile.
func (r *MemoryProfileRepository) Save(_ context.Context, profile closet.StyleProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[profile.UserID] = profile
	return nil
}

// Delete removes the stored style profile.
func (r *MemoryProfileRepository) Delete(_ context.Context, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.profiles, userID)
	return nil
}

func cloneGarment(garment closet.Garment) closet.Garment {
	out := garment
	if garment.Tags != nil {
		out.Tags = append([]string(nil), garment.Tags...)
	}
	return out
}

var (
	_ closet.GarmentRepository = (*MemoryRepository)(nil)
	_ closet.ProfileRepository = (*MemoryProfileRepository)(nil)
)
