package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"logistics/pkg/domain"
)

// StopsHash вычисляет детерминированный хеш упорядоченного набора точек дня,
// учитывая роль и фиксированную позицию каждой. Используется там, где нужен
// компактный идентификатор входа, отдельный от MatrixFingerprint (который
// привязан конкретно к ключу кэша матрицы расстояний).
func StopsHash(points []domain.RoutePoint) string {
	if len(points) == 0 {
		return ""
	}

	data := pointsToCanonical(points)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:16])
}

// pointsToCanonical строит детерминированное байтовое представление точек в
// их входном порядке: порядок сам по себе значим для оптимизатора (стартовая
// и конечная точки фиксированы позицией в списке), так что в отличие от
// графового хеша сортировка здесь не нужна и была бы ошибкой.
func pointsToCanonical(points []domain.RoutePoint) []byte {
	var result []byte
	for _, p := range points {
		fixedSeq := -1
		if p.FixedSeq != nil {
			fixedSeq = *p.FixedSeq
		}
		result = append(result, []byte(fmt.Sprintf("p:%s:%s:%.6f:%.6f:%d;",
			p.StopID, p.Kind, p.Point.Lat, p.Point.Lon, fixedSeq))...)
	}
	return result
}

// QuickHash быстрый хеш для произвольных данных
func QuickHash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// ShortHash короткий хеш (16 символов)
func ShortHash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:8])
}
