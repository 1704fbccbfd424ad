package optimizer

import (
	"context"

	"logistics/pkg/apperror"
	"logistics/pkg/domain"
)

// solveExact перебирает все перестановки свободных VIA (N ≤ ExactSolverMaxPoints,
// §4.4 "Small-N exact") и выбирает минимальную по целевой метрике, с
// лексикографическим tie-break по итоговой последовательности stop id.
func solveExact(ctx context.Context, mp MatrixProvider, in Input) (*Result, error) {
	points := make([]domain.LatLon, len(in.Points))
	for i, p := range in.Points {
		points[i] = p.Point
	}

	dist, dur, err := mp.ComputeMatrix(ctx, points, in.Profile, in.Objective)
	if err != nil {
		fallback := solveFallback(in)
		fallback.AddWarning("fallback=nearest_neighbor matrix unavailable")
		return fallback, nil
	}

	sk := buildSkeleton(in)

	var (
		bestOrder  []int
		bestCost   = domain.Infinity
		bestIDs    []string
		foundAny   bool
	)

	permute(sk.freePointIdxs, func(perm []int) {
		select {
		case <-ctx.Done():
			return
		default:
		}

		candidate := make([]int, len(sk.order))
		copy(candidate, sk.order)
		for i, pos := range sk.freePositions {
			candidate[pos] = perm[i]
		}

		cost := objectiveCost(candidate, dist, dur, in.Objective)
		ids := orderToStopIDs(in, candidate)

		if !foundAny || domain.FloatLess(cost, bestCost) ||
			(domain.FloatEquals(cost, bestCost) && stopIDsLess(ids, bestIDs)) {
			foundAny = true
			bestCost = cost
			bestOrder = candidate
			bestIDs = ids
		}
	})

	if !foundAny {
		return nil, apperror.ErrOptimizationInfeasible
	}

	distKm, durMin := totalCost(bestOrder, dist, dur)
	return &Result{
		OrderedStopIDs:   bestIDs,
		TotalDistanceKm:  distKm,
		TotalDurationMin: durMin,
	}, nil
}

// objectiveCost выбирает метрику, по которой сравниваются кандидаты
func objectiveCost(order []int, dist, dur [][]float64, objective domain.Objective) float64 {
	distKm, durMin := totalCost(order, dist, dur)
	if objective == domain.ObjectiveDistance {
		return distKm
	}
	return durMin
}

// permute вызывает fn для каждой перестановки idxs (алгоритм Хипа), по месту
func permute(idxs []int, fn func([]int)) {
	n := len(idxs)
	if n == 0 {
		fn(idxs)
		return
	}

	work := make([]int, n)
	copy(work, idxs)

	c := make([]int, n)
	fn(append([]int(nil), work...))

	i := 0
	for i < n {
		if c[i] < i {
			if i%2 == 0 {
				work[0], work[i] = work[i], work[0]
			} else {
				work[c[i]], work[i] = work[i], work[c[i]]
			}
			fn(append([]int(nil), work...))
			c[i]++
			i = 0
		} else {
			c[i] = 0
			i++
		}
	}
}
