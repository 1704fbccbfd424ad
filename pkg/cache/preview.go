package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"logistics/pkg/domain"
)

// PreviewCache хранит непросмотренные PreviewToken до commit или истечения
// срока (SPEC_FULL.md §4.2): Redis-backed при настроенном Cache, in-process
// иначе.
type PreviewCache struct {
	cache      Cache
	defaultTTL time.Duration
}

// NewPreviewCache создаёт кэш preview-токенов
func NewPreviewCache(cache Cache, defaultTTL time.Duration) *PreviewCache {
	if defaultTTL <= 0 {
		defaultTTL = 5 * time.Minute
	}
	return &PreviewCache{cache: cache, defaultTTL: defaultTTL}
}

func previewKey(token string) string {
	return fmt.Sprintf("preview:%s", token)
}

// Set сохраняет preview-токен с заданным TTL (или дефолтным, если ttl <= 0)
func (pc *PreviewCache) Set(ctx context.Context, preview *domain.PreviewToken, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = pc.defaultTTL
	}

	data, err := json.Marshal(preview)
	if err != nil {
		return fmt.Errorf("failed to marshal preview token: %w", err)
	}

	return pc.cache.Set(ctx, previewKey(preview.Token), data, ttl)
}

// Get возвращает preview-токен по значению токена. found=false, если
// отсутствует в кэше (§7: PREVIEW_NOT_FOUND — отличается от истечения срока,
// которое проверяется вызывающей стороной через PreviewToken.Expired).
func (pc *PreviewCache) Get(ctx context.Context, token string) (*domain.PreviewToken, bool, error) {
	data, err := pc.cache.Get(ctx, previewKey(token))
	if err != nil {
		if err == ErrKeyNotFound {
			return nil, false, nil
		}
		return nil, false, err
	}

	var preview domain.PreviewToken
	if err := json.Unmarshal(data, &preview); err != nil {
		_ = pc.cache.Delete(ctx, previewKey(token)) //nolint:errcheck // best effort cleanup
		return nil, false, nil
	}

	return &preview, true, nil
}

// Delete удаляет preview-токен (после commit или явной отмены)
func (pc *PreviewCache) Delete(ctx context.Context, token string) error {
	return pc.cache.Delete(ctx, previewKey(token))
}
