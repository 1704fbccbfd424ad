package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"logistics/pkg/domain"
)

// MatrixEntry полная N×N матрица расстояний/длительностей между точками
// одного запроса, плюс геометрия отдельных лёгов, если адаптер её вернул.
type MatrixEntry struct {
	DistanceKm  [][]float64           `json:"distance_km"`
	DurationMin [][]float64           `json:"duration_min"`
	Geometry    map[string]domain.LineString `json:"geometry,omitempty"`
	ProviderName string               `json:"provider_name"`
	ComputedAt  time.Time             `json:"computed_at"`
}

// geometryKey строит ключ карты геометрии для пары точек i->j
func geometryKey(i, j int) string {
	return fmt.Sprintf("%d:%d", i, j)
}

// GeometryFor возвращает геометрию лёга i->j, если она была сохранена
func (m *MatrixEntry) GeometryFor(i, j int) (domain.LineString, bool) {
	g, ok := m.Geometry[geometryKey(i, j)]
	return g, ok
}

// SetGeometry сохраняет геометрию лёга i->j
func (m *MatrixEntry) SetGeometry(i, j int, ls domain.LineString) {
	if m.Geometry == nil {
		m.Geometry = make(map[string]domain.LineString)
	}
	m.Geometry[geometryKey(i, j)] = ls
}

// MatrixFingerprint вычисляет детерминированный ключ кэша матрицы по точкам,
// профилю и целевой метрике. Координаты округляются до 6 знаков, так что
// незначимые отличия плавающей точки не порождают разные ключи (§3).
func MatrixFingerprint(points []domain.LatLon, profile domain.Profile, objective domain.Objective) string {
	var buf []byte
	buf = append(buf, []byte(fmt.Sprintf("p:%s;o:%s;n:%d;", profile, objective, len(points)))...)
	for _, pt := range points {
		buf = append(buf, []byte(fmt.Sprintf("%.6f,%.6f;", pt.Lat, pt.Lon))...)
	}
	hash := sha256.Sum256(buf)
	return hex.EncodeToString(hash[:16])
}

// MatrixCache кэш полных матриц расстояний с дедупликацией конкурентных
// вычислений одного и того же fingerprint через singleflight (§3, §4.3).
type MatrixCache struct {
	cache      Cache
	defaultTTL time.Duration
	group      singleflight.Group
}

// NewMatrixCache создаёт кэш матриц поверх базового Cache (Redis или in-memory)
func NewMatrixCache(cache Cache, defaultTTL time.Duration) *MatrixCache {
	if defaultTTL <= 0 {
		defaultTTL = 5 * time.Minute
	}
	return &MatrixCache{cache: cache, defaultTTL: defaultTTL}
}

func matrixKey(fingerprint string) string {
	return "matrix:" + fingerprint
}

// Get возвращает кэшированную матрицу по fingerprint, если она присутствует
func (mc *MatrixCache) Get(ctx context.Context, fingerprint string) (*MatrixEntry, bool, error) {
	data, err := mc.cache.Get(ctx, matrixKey(fingerprint))
	if err != nil {
		if err == ErrKeyNotFound {
			return nil, false, nil
		}
		return nil, false, err
	}

	var entry MatrixEntry
	if jsonErr := json.Unmarshal(data, &entry); jsonErr != nil {
		_ = mc.cache.Delete(ctx, matrixKey(fingerprint)) //nolint:errcheck // best effort cleanup
		return nil, false, nil
	}
	return &entry, true, nil
}

// Set сохраняет матрицу под fingerprint с TTL по умолчанию
func (mc *MatrixCache) Set(ctx context.Context, fingerprint string, entry *MatrixEntry, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = mc.defaultTTL
	}
	entry.ComputedAt = time.Now()

	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return mc.cache.Set(ctx, matrixKey(fingerprint), data, ttl)
}

// GetOrCompute возвращает кэшированную запись по fingerprint, либо вычисляет
// её через compute ровно один раз среди конкурентных вызовов с одинаковым
// fingerprint (singleflight): промах кэша, гонящийся с уже идущим
// вычислением того же ключа, дожидается его результата вместо повторного запуска.
func (mc *MatrixCache) GetOrCompute(
	ctx context.Context,
	fingerprint string,
	compute func(ctx context.Context) (*MatrixEntry, error),
) (*MatrixEntry, error) {
	if entry, found, err := mc.Get(ctx, fingerprint); err == nil && found {
		return entry, nil
	}

	v, err, _ := mc.group.Do(fingerprint, func() (any, error) {
		if entry, found, err := mc.Get(ctx, fingerprint); err == nil && found {
			return entry, nil
		}

		entry, err := compute(ctx)
		if err != nil {
			return nil, err
		}

		if setErr := mc.Set(ctx, fingerprint, entry, 0); setErr != nil {
			return entry, nil //nolint:nilerr // cache write failure should not fail the caller
		}
		return entry, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*MatrixEntry), nil
}
