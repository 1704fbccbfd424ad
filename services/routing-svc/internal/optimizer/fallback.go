package optimizer

import (
	"logistics/pkg/domain"
)

// solveFallback строит порядок ближайшим соседом по haversine-оценке, без
// матрицы провайдера и без 2-opt (N > MatrixHeuristicMaxPoints или матрица
// недоступна, §4.4 "Fallback"). Фиксированные позиции сохраняются.
func solveFallback(in Input) *Result {
	sk := buildSkeleton(in)
	order := make([]int, len(sk.order))
	copy(order, sk.order)

	remaining := append([]int(nil), sk.freePointIdxs...)
	current := sk.startIdx

	for pos := 1; pos < len(order)-1; pos++ {
		if order[pos] != -1 {
			current = order[pos]
			continue
		}

		bestPos := 0
		bestDist := domain.Infinity
		for ri, idx := range remaining {
			d := domain.HaversineKm(in.Points[current].Point, in.Points[idx].Point)
			if domain.FloatLess(d, bestDist) {
				bestDist = d
				bestPos = ri
			}
		}

		chosen := remaining[bestPos]
		order[pos] = chosen
		remaining = append(remaining[:bestPos], remaining[bestPos+1:]...)
		current = chosen
	}

	var distKm, durMin float64
	for i := 0; i+1 < len(order); i++ {
		a, b := in.Points[order[i]].Point, in.Points[order[i+1]].Point
		d := domain.HaversineKm(a, b)
		distKm += d
		durMin += domain.EstimateDurationMin(d, in.Profile)
	}

	return &Result{
		OrderedStopIDs:   orderToStopIDs(in, order),
		TotalDistanceKm:  distKm,
		TotalDurationMin: durMin,
	}
}
