package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/closet-stylist/internal/domain/auth"
	"github.com/yanqian/closet-stylist/internal/domain/closet"
	"github.com/yanqian/closet-stylist/internal/domain/outfit"
	"github.com/yanqian/closet-stylist/internal/infra/closetrepo"
	"github.com/yanqian/closet-stylist/internal/infra/colorextract"
	"github.com/yanqian/closet-stylist/internal/infra/config"
	"github.com/yanqian/closet-stylist/internal/infra/outfitcache"
	"github.com/yanqian/closet-stylist/internal/infra/photostore"
	"github.com/yanqian/closet-stylist/internal/infra/userrepo"
)

func provideAuthConfig(cfg *config.Config) auth.Config {
	return auth.Config{
		Secret:          cfg.Auth.Secret,
		TokenTTL:        cfg.Auth.TokenTTL,
		RefreshTokenTTL: cfg.Auth.RefreshTokenTTL,
		Google: auth.GoogleConfig{
			ClientID:             cfg.Auth.Google.ClientID,
			ClientSecret:         cfg.Auth.Google.ClientSecret,
			RedirectURL:          cfg.Auth.Google.RedirectURL,
			TokenEncryptionKey:   cfg.Auth.Google.TokenEncryptionKey,
			PostLoginRedirectURL: cfg.Auth.Google.PostLoginRedirectURL,
		},
	}
}

func provideClosetConfig(cfg *config.Config) closet.Config {
	return closet.Config{
		SimilarLimit: cfg.Closet.SimilarLimit,
	}
}

func provideOutfitConfig(cfg *config.Config) outfit.Config {
	return outfit.Config{
		CacheTTL: cfg.Suggest.CacheTTL,
	}
}

// providePostgresPool returns a shared pool, or nil when Postgres is not
// configured or unreachable. Repositories fall back to memory on nil.
func providePostgresPool(cfg *config.Config, logger *slog.Logger) *pgxpool.Pool {
	dsn := strings.TrimSpace(cfg.Closet.Postgres.DSN)
	if dsn == "" {
		logger.Info("postgres dsn not set, using memory repositories")
		return nil
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, using memory repositories", "error", err)
		return nil
	}
	if cfg.Closet.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.Closet.Postgres.MaxConns
	}
	if cfg.Closet.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.Closet.Postgres.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, using memory repositories", "error", err)
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, using memory repositories", "error", err)
		pool.Close()
		return nil
	}
	logger.Info("postgres repositories enabled")
	return pool
}

func provideAuthRepository(pool *pgxpool.Pool) auth.Repository {
	if pool == nil {
		return userrepo.NewMemoryRepository()
	}
	return userrepo.NewPostgresRepository(pool)
}

func provideGarmentRepository(pool *pgxpool.Pool) closet.GarmentRepository {
	if pool == nil {
		return closetrepo.NewMemoryRepository()
	}
	return closetrepo.NewPostgresRepository(pool)
}

func provideProfileRepository(pool *pgxpool.Pool) closet.ProfileRepository {
	if pool == nil {
		return closetrepo.NewMemoryProfileRepository()
	}
	return closetrepo.NewPostgresProfileRepository(pool)
}

func provideOutfitStore(cfg *config.Config, logger *slog.Logger) outfit.Store {
	if cfg.Suggest.Redis.Enabled {
		opt, err := buildValkeyOptions(cfg)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back to memory store", "error", err)
			return outfitcache.NewMemoryStore()
		}
		client, err := valkey.NewClient(opt)
		if err != nil {
			logger.Error("failed to create valkey client, falling back to memory store", "error", err)
			return outfitcache.NewMemoryStore()
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			logger.Error("valkey ping failed, falling back to memory store", "error", err)
		} else {
			logger.Info("valkey suggestion cache enabled", "addr", cfg.Suggest.Redis.Addr)
			return outfitcache.NewValkeyStore(client, "outfits")
		}
	}
	return outfitcache.NewMemoryStore()
}

func buildValkeyOptions(cfg *config.Config) (valkey.ClientOption, error) {
	var (
		opt valkey.ClientOption
		err error
	)
	if strings.Contains(cfg.Suggest.Redis.Addr, "://") {
		opt, err = valkey.ParseURL(cfg.Suggest.Redis.Addr)
	} else {
		opt = valkey.ClientOption{InitAddress: []string{cfg.Suggest.Redis.Addr}}
	}
	if err != nil {
		return valkey.ClientOption{}, err
	}
	return opt, nil
}

func providePhotoStorage(cfg *config.Config, logger *slog.Logger) closet.PhotoStorage {
	endpoint := strings.TrimSpace(cfg.Storage.Endpoint)
	if endpoint == "" {
		logger.Info("storage endpoint not set, keeping photos in memory")
		return photostore.NewMemoryStorage()
	}
	storage, err := photostore.NewS3Storage(endpoint, cfg.Storage.AccessKey, cfg.Storage.SecretKey, cfg.Storage.Bucket, cfg.Storage.Region, logger)
	if err != nil {
		logger.Error("failed to initialize photo storage, keeping photos in memory", "error", err)
		return photostore.NewMemoryStorage()
	}
	logger.Info("s3 photo storage enabled", "bucket", cfg.Storage.Bucket)
	return storage
}

func provideColorExtractor(cfg *config.Config, logger *slog.Logger) closet.ColorExtractor {
	baseURL := strings.TrimSpace(cfg.ColorExtract.BaseURL)
	if baseURL == "" {
		logger.Info("color extract base url not set, using deterministic extractor")
		return colorextract.NewDeterministicExtractor()
	}
	logger.Info("color extract client enabled", "baseUrl", baseURL)
	return colorextract.NewClient(baseURL)
}
