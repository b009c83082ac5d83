package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"pix_direct_sales/internal/domain/entities"
	"pix_direct_sales/internal/infrastructure/cache"
	"pix_direct_sales/internal/infrastructure/logging"
	"pix_direct_sales/internal/infrastructure/metrics"
	"pix_direct_sales/internal/usecase/interfaces"

	"github.com/rs/zerolog"
)

const credentialCacheName = "credential"

var _ interfaces.ICredentialRepository = (*credentialRepoCacheDecorator)(nil)

// cachedCredential mirrors entities.Credential without hiding the token from
// the JSON encoder.
type cachedCredential struct {
	SellerID    string    `json:"user_id"`
	AccessToken string    `json:"access_token"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type credentialRepoCacheDecorator struct {
	inner  interfaces.ICredentialRepository
	cache  cache.RedisClient
	ttl    time.Duration
	logger *zerolog.Logger
}

// NewCredentialRepoCacheDecorator caches seller credentials, which are read on
// every sale intent and sale reconciliation. Unknown sellers are not cached.
func NewCredentialRepoCacheDecorator(inner interfaces.ICredentialRepository, c cache.RedisClient, ttl time.Duration, logger *zerolog.Logger) interfaces.ICredentialRepository {
	if logger == nil {
		logger = logging.Nop()
	}
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &credentialRepoCacheDecorator{inner: inner, cache: c, ttl: ttl, logger: logger}
}

func credentialKey(sellerID string) string {
	return "mp_credential:" + sellerID
}

func (d *credentialRepoCacheDecorator) GetBySellerID(ctx context.Context, sellerID string) (entities.Credential, error) {
	key := credentialKey(sellerID)
	val, err := d.cache.Get(ctx, key)
	if err == nil {
		var cc cachedCredential
		if json.Unmarshal([]byte(val), &cc) == nil {
			metrics.IncCacheRequest(credentialCacheName, "hit")
			return entities.Credential{SellerID: cc.SellerID, AccessToken: cc.AccessToken, UpdatedAt: cc.UpdatedAt}, nil
		}
	} else if !errors.Is(err, cache.ErrMiss) {
		d.logger.Warn().Err(err).Str("seller_id", sellerID).Msg("credential cache read failed")
	}

	metrics.IncCacheRequest(credentialCacheName, "miss")
	c, err := d.inner.GetBySellerID(ctx, sellerID)
	if err != nil || c.AccessToken == "" {
		return c, err
	}
	b, _ := json.Marshal(cachedCredential{SellerID: c.SellerID, AccessToken: c.AccessToken, UpdatedAt: c.UpdatedAt})
	if err := d.cache.Set(ctx, key, b, d.ttl); err != nil {
		d.logger.Warn().Err(err).Str("seller_id", sellerID).Msg("credential cache write failed")
	}
	return c, nil
}

// Upsert drops the cached entry on both sides of the write. A read racing the
// write may re-cache the old token; the second delete clears it.
func (d *credentialRepoCacheDecorator) Upsert(ctx context.Context, c entities.Credential) error {
	d.invalidate(ctx, c.SellerID)
	if err := d.inner.Upsert(ctx, c); err != nil {
		return err
	}
	d.invalidate(ctx, c.SellerID)
	return nil
}

func (d *credentialRepoCacheDecorator) invalidate(ctx context.Context, sellerID string) {
	if err := d.cache.Del(ctx, credentialKey(sellerID)); err != nil {
		d.logger.Warn().Err(err).Str("seller_id", sellerID).Msg("credential cache invalidation failed")
	}
}
