package optimizer

import (
	"context"

	"logistics/pkg/domain"
)

// solveHeuristic реализует матричную эвристику (9 ≤ N ≤ 20, §4.4): одна
// матрица, greedy-построение с фиксированными VIA как скелетом, затем
// 2-opt улучшение внутри смежных блоков свободных позиций.
func solveHeuristic(ctx context.Context, mp MatrixProvider, in Input) (*Result, error) {
	points := make([]domain.LatLon, len(in.Points))
	for i, p := range in.Points {
		points[i] = p.Point
	}

	dist, dur, err := mp.ComputeMatrix(ctx, points, in.Profile, in.Objective)
	if err != nil {
		return nil, err
	}

	sk := buildSkeleton(in)
	order := greedyFill(sk, dist, dur, in.Objective)

	warnings := twoOptImprove(ctx, order, sk.freePositions, dist, dur, in.Objective)

	distKm, durMin := totalCost(order, dist, dur)
	return &Result{
		OrderedStopIDs:   orderToStopIDs(in, order),
		TotalDistanceKm:  distKm,
		TotalDurationMin: durMin,
		Warnings:         warnings,
	}, nil
}

// greedyFill проходит по позициям слева направо: фиксированные позиции
// просто сдвигают "текущую" точку, свободные заполняются ближайшей
// оставшейся свободной VIA по целевой метрике (§4.4 шаг 1)
func greedyFill(sk skeleton, dist, dur [][]float64, objective domain.Objective) []int {
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
		bestCost := domain.Infinity
		for ri, idx := range remaining {
			c := metric(dist, dur, objective, current, idx)
			if domain.FloatLess(c, bestCost) {
				bestCost = c
				bestPos = ri
			}
		}

		chosen := remaining[bestPos]
		order[pos] = chosen
		remaining = append(remaining[:bestPos], remaining[bestPos+1:]...)
		current = chosen
	}

	return order
}

// twoOptImprove улучшает order внутри каждого максимального смежного блока
// свободных позиций, не трогая фиксированные позиции и bookend'ы (§4.4 шаг 2).
// Возвращает предупреждение, если бюджет проходов был исчерпан без сходимости.
func twoOptImprove(ctx context.Context, order []int, freePositions []int, dist, dur [][]float64, objective domain.Objective) []string {
	blocks := groupContiguous(freePositions)

	var warnings []string
	for _, block := range blocks {
		if len(block) < 2 {
			continue
		}
		if !twoOptBlock(ctx, order, block, dist, dur, objective) {
			warnings = append(warnings, "optimization_timeout: 2-opt pass budget exhausted")
		}
	}
	return warnings
}

// groupContiguous группирует отсортированные позиции в максимальные блоки
// последовательных целых чисел
func groupContiguous(positions []int) [][]int {
	var blocks [][]int
	var cur []int
	for i, p := range positions {
		if i > 0 && p != positions[i-1]+1 {
			blocks = append(blocks, cur)
			cur = nil
		}
		cur = append(cur, p)
	}
	if len(cur) > 0 {
		blocks = append(blocks, cur)
	}
	return blocks
}

// twoOptBlock выполняет 2-opt внутри одного блока [lo, hi], используя соседей
// снаружи блока (order[lo-1], order[hi+1]) как неподвижные якоря. Возвращает
// false, если остановился по исчерпанию бюджета проходов, а не по сходимости.
func twoOptBlock(ctx context.Context, order []int, block []int, dist, dur [][]float64, objective domain.Objective) bool {
	lo, hi := block[0], block[len(block)-1]

	cost := func(a, b int) float64 { return metric(dist, dur, objective, a, b) }

	improved := true
	passes := 0
	for improved && passes < domain.TwoOptMaxPasses {
		select {
		case <-ctx.Done():
			return false
		default:
		}

		improved = false
		passes++

		for i := lo; i < hi; i++ {
			for j := i + 1; j <= hi; j++ {
				a, b := order[i-1], order[i]
				c, d := order[j], order[j+1]

				delta := (cost(a, c) + cost(b, d)) - (cost(a, b) + cost(c, d))
				if domain.FloatLess(delta, 0) {
					reverse(order[i : j+1])
					improved = true
				}
			}
		}
	}

	return passes < domain.TwoOptMaxPasses || !improved
}

// reverse разворачивает срез по месту
func reverse(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
