package closetrepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	pgvector "github.com/pgvector/pgvector-go"

	"github.com/yanqian/closet-stylist/internal/domain/closet"
	"github.com/yanqian/closet-stylist/internal/domain/outfit"
)

// PostgresRepository persists garments in Postgres. Colors are stored twice,
// as the canonical hex string and as a vector(3) column so nearest-color
// lookups run inside the database.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Create inserts a new garment row.
func (r *PostgresRepository) Create(ctx context.Context, garment closet.Garment) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO garments (id, user_id, name, garment_type, color_hex, color_name, color_vec, tags, photo_key, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, garment.ID, garment.UserID, garment.Name, string(garment.Type), garment.ColorHex, garment.ColorName,
		colorVector(garment.Color), garment.Tags, garment.PhotoKey, garment.CreatedAt, garment.UpdatedAt)
	return err
}

// Get fetches a garment owned by the user.
func (r *PostgresRepository) Get(ctx context.Context, userID int64, id uuid.UUID) (closet.Garment, bool, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, name, garment_type, color_hex, color_name, tags, photo_key, created_at, updated_at
		FROM garments
		WHERE user_id = $1 AND id = $2
		LIMIT 1
	`, userID, id)
	if err != nil {
		return closet.Garment{}, false, err
	}
	defer rows.Close()
	if !rows.Next() {
		return closet.Garment{}, false, rows.Err()
	}
	garment, err := scanGarment(rows)
	if err != nil {
		return closet.Garment{}, false, err
	}
	return garment, true, rows.Err()
}

// List returns the user's garments in creation order.
func (r *PostgresRepository) List(ctx context.Context, userID int64) ([]closet.Garment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, name, garment_type, color_hex, color_name, tags, photo_key, created_at, updated_at
		FROM garments
		WHERE user_id = $1
		ORDER BY created_at, id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []closet.Garment
	for rows.Next() {
		garment, err := scanGarment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, garment)
	}
	return out, rows.Err()
}

// Update overwrites mutable garment columns.
func (r *PostgresRepository) Update(ctx context.Context, garment closet.Garment) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE garments
		SET name = $3, garment_type = $4, color_hex = $5, color_name = $6, color_vec = $7, tags = $8, updated_at = $9
		WHERE user_id = $1 AND id = $2
	`, garment.UserID, garment.ID, garment.Name, string(garment.Type), garment.ColorHex, garment.ColorName,
		colorVector(garment.Color), garment.Tags, garment.UpdatedAt)
	return err
}

// Delete removes a garment owned by the user.
func (r *PostgresRepository) Delete(ctx context.Context, userID int64, id uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM garments
		WHERE user_id = $1 AND id = $2
	`, userID, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// NearestByColor returns the closest color matches ordered by vector
// distance.
func (r *PostgresRepository) NearestByColor(ctx context.Context, userID int64, color outfit.Color, exclude uuid.UUID, limit int) ([]closet.SimilarGarment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, name, garment_type, color_hex, color_name, tags, photo_key, created_at, updated_at, color_vec <-> $3 AS distance
		FROM garments
		WHERE user_id = $1 AND id <> $2
		ORDER BY color_vec <-> $3
		LIMIT $4
	`, userID, exclude, colorVector(color), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []closet.SimilarGarment
	for rows.Next() {
		var distance float64
		garment, err := scanGarment(rows, &distance)
		if err != nil {
			return nil, err
		}
		out = append(out, closet.SimilarGarment{Garment: garment, Distance: distance})
	}
	return out, rows.Err()
}

// PostgresProfileRepository persists style profiles in Postgres.
type PostgresProfileRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresProfileRepository constructs the profile repository.
func NewPostgresProfileRepository(pool *pgxpool.Pool) *PostgresProfileRepository {
	return &PostgresProfileRepository{pool: pool}
}

// Get fetches the stored style profile.
func (r *PostgresProfileRepository) Get(ctx context.Context, userID int64) (closet.StyleProfile, bool, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT user_id, body_type, undertone, preferred_styles, favorite_colors, disliked_colors, formality, updated_at
		FROM style_profiles
		WHERE user_id = $1
		LIMIT 1
	`, userID)
	if err != nil {
		return closet.StyleProfile{}, false, err
	}
	defer rows.Close()
	if !rows.Next() {
		return closet.StyleProfile{}, false, rows.Err()
	}
	profile, err := scanProfile(rows)
	if err != nil {
		return closet.StyleProfile{}, false, err
	}
	return profile, true, rows.Err()
}

// Save upserts the style profile.
func (r *PostgresProfileRepository) Save(ctx context.Context, profile closet.StyleProfile) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO style_profiles (user_id, body_type, undertone, preferred_styles, favorite_colors, disliked_colors, formality, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id) DO UPDATE SET
			body_type = EXCLUDED.body_type,
			undertone = EXCLUDED.undertone,
			preferred_styles = EXCLUDED.preferred_styles,
			favorite_colors = EXCLUDED.favorite_colors,
			disliked_colors = EXCLUDED.disliked_colors,
			formality = EXCLUDED.formality,
			updated_at = EXCLUDED.updated_at
	`, profile.UserID, string(profile.BodyType), string(profile.Undertone), profile.PreferredStyles,
		profile.FavoriteColors, profile.DislikedColors, profile.Formality, profile.UpdatedAt)
	return err
}

// Delete removes the stored style profile.
func (r *PostgresProfileRepository) Delete(ctx context.Context, userID int64) error {
	_, err := r.pool.Exec(ctx, `
		DELETE FROM style_profiles
		WHERE user_id = $1
	`, userID)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGarment(row rowScanner, extras ...any) (closet.Garment, error) {
	var (
		garment     closet.Garment
		garmentType string
		created     time.Time
		updated     time.Time
	)
	args := []any{
		&garment.ID, &garment.UserID, &garment.Name, &garmentType,
		&garment.ColorHex, &garment.ColorName, &garment.Tags, &garment.PhotoKey,
		&created, &updated,
	}
	args = append(args, extras...)
	if err := row.Scan(args...); err != nil {
		return closet.Garment{}, err
	}
	parsedType, err := outfit.ParseGarmentType(garmentType)
	if err != nil {
		return closet.Garment{}, err
	}
	color, err := outfit.ParseHex(garment.ColorHex)
	if err != nil {
		return closet.Garment{}, err
	}
	garment.Type = parsedType
	garment.Color = color
	garment.CreatedAt = created.UTC()
	garment.UpdatedAt = updated.UTC()
	return garment, nil
}

func scanProfile(row rowScanner) (closet.StyleProfile, error) {
	var (
		profile   closet.StyleProfile
		bodyType  string
		undertone string
		updated   time.Time
	)
	if err := row.Scan(
		&profile.UserID, &bodyType, &undertone, &profile.PreferredStyles,
		&profile.FavoriteColors, &profile.DislikedColors, &profile.Formality, &updated,
	); err != nil {
		return closet.StyleProfile{}, err
	}
	parsedBody, err := outfit.ParseBodyType(bodyType)
	if err != nil {
		return closet.StyleProfile{}, err
	}
	parsedUndertone, err := outfit.ParseUndertone(undertone)
	if err != nil {
		return closet.StyleProfile{}, err
	}
	profile.BodyType = parsedBody
	profile.Undertone = parsedUndertone
	profile.UpdatedAt = updated.UTC()
	return profile, nil
}

func colorVector(color outfit.Color) pgvector.Vector {
	return pgvector.NewVector([]float32{float32(color.R), float32(color.G), float32(color.B)})
}

var (
	_ closet.GarmentRepository = (*PostgresRepository)(nil)
	_ closet.ProfileRepository = (*PostgresProfileRepository)(nil)
)
