// Package optimizer решает задачу коммивояжёра с фиксированными bookend'ами
// (START/END) и опционально зафиксированными VIA для одного Day (SPEC_FULL.md §4.4).
package optimizer

import (
	"context"
	"fmt"
	"time"

	"logistics/pkg/apperror"
	"logistics/pkg/domain"
)

// MatrixProvider поставляет полную N×N матрицу расстояний/длительностей между
// точками. Реализуется оркестратором провайдеров поверх Matrix Cache (§4.3).
type MatrixProvider interface {
	ComputeMatrix(ctx context.Context, points []domain.LatLon, profile domain.Profile, objective domain.Objective) (distanceKm, durationMin [][]float64, err error)
}

// Input вход оптимизатора: точки дня, профиль передвижения и целевая метрика
type Input struct {
	Points    []domain.RoutePoint
	Profile   domain.Profile
	Objective domain.Objective
}

// Result результат оптимизации: порядок stop id и совокупные метрики
type Result struct {
	OrderedStopIDs   []string
	TotalDistanceKm  float64
	TotalDurationMin float64
	Warnings         []string
}

// Optimize выбирает стратегию по размеру входа и решает задачу (§4.4):
// точное переборное решение для N ≤ ExactSolverMaxPoints, матричная эвристика
// (greedy + 2-opt) для N ≤ MatrixHeuristicMaxPoints, ближайший сосед по
// haversine-оценке иначе или если матрица недоступна.
func Optimize(ctx context.Context, mp MatrixProvider, in Input) (*Result, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	n := len(in.Points)

	ctx, cancel := context.WithTimeout(ctx, domain.DefaultOptimizeBudgetSeconds*time.Second)
	defer cancel()

	switch {
	case n <= domain.ExactSolverMaxPoints:
		return solveExact(ctx, mp, in)
	case n <= domain.MatrixHeuristicMaxPoints:
		result, err := solveHeuristic(ctx, mp, in)
		if err != nil {
			// матрица недоступна — деградация на haversine-фолбэк, не ошибка
			fallback := solveFallback(in)
			fallback.AddWarning("fallback=nearest_neighbor matrix unavailable")
			return fallback, nil
		}
		return result, nil
	default:
		return solveFallback(in), nil
	}
}

// Validate проверяет внутренние инварианты входа (единственный START/END,
// уникальность id, границы fixed_seq) без выполнения самой оптимизации —
// используется сервисом Day-Route Breakdown, когда optimize=false и порядок
// точек сохраняется как есть (§4.5 шаг 2)
func Validate(in Input) error {
	return validate(in)
}

// AddWarning добавляет предупреждение, если оно ещё не присутствует
func (r *Result) AddWarning(w string) {
	for _, existing := range r.Warnings {
		if existing == w {
			return
		}
	}
	r.Warnings = append(r.Warnings, w)
}

// validate проверяет инварианты входа, специфичные для оптимизатора:
// ровно один START и END, уникальность id, валидность координат, границы и
// уникальность fixed_seq у VIA (§4.4). Форма запроса (обязательные поля)
// проверяется заранее в validation-svc; здесь повторно проверяется только то,
// что внутренне необходимо самому алгоритму.
func validate(in Input) error {
	n := len(in.Points)

	var startCount, endCount int
	ids := make(map[string]bool, n)
	fixedSeqs := make(map[int]bool)

	for _, p := range in.Points {
		if ids[p.StopID] {
			return apperror.NewWithField(apperror.CodeValidationDuplicateID, "duplicate stop id in route points", "stop_id")
		}
		ids[p.StopID] = true

		if !p.Point.Valid() {
			return apperror.NewWithField(apperror.CodeValidationInvalidCoords, "coordinates out of range", "point")
		}

		switch p.Kind {
		case domain.StopKindStart:
			startCount++
			if p.FixedSeq != nil && *p.FixedSeq != 1 {
				return apperror.New(apperror.CodeValidationFixedSeqConflict, "start fixed_seq must be 1 when present")
			}
		case domain.StopKindEnd:
			endCount++
		case domain.StopKindVia:
			if p.FixedSeq == nil {
				continue
			}
			seq := *p.FixedSeq
			if seq < 2 || seq > n-1 {
				return apperror.New(apperror.CodeValidationFixedSeqConflict,
					fmt.Sprintf("fixed_seq %d out of range [2, %d]", seq, n-1))
			}
			if fixedSeqs[seq] {
				return apperror.New(apperror.CodeValidationFixedSeqConflict,
					fmt.Sprintf("duplicate fixed_seq %d among via points", seq))
			}
			fixedSeqs[seq] = true
		default:
			return apperror.New(apperror.CodeInvalidArgument, "unknown stop kind")
		}
	}

	if startCount == 0 {
		return apperror.New(apperror.CodeValidationMissingStart, "route points must include exactly one start")
	}
	if startCount > 1 {
		return apperror.New(apperror.CodeValidationMultipleStart, "route points must include exactly one start")
	}
	if endCount == 0 {
		return apperror.New(apperror.CodeValidationMissingEnd, "route points must include exactly one end")
	}
	if endCount > 1 {
		return apperror.New(apperror.CodeValidationMultipleEnd, "route points must include exactly one end")
	}

	return nil
}

// skeleton позиционная заготовка маршрута: зафиксированные позиции уже
// заполнены индексами точек, свободные помечены -1
type skeleton struct {
	order          []int // order[pos] = индекс точки в in.Points, -1 если свободно
	freePositions  []int // позиции (кроме 0 и n-1), ещё не занятые
	freePointIdxs  []int // индексы свободных VIA-точек, которые нужно расставить
	startIdx       int
	endIdx         int
}

// buildSkeleton раскладывает START на позицию 0, END на последнюю позицию,
// зафиксированные VIA — на их fixed_seq-1, остальные VIA остаются свободными.
func buildSkeleton(in Input) skeleton {
	n := len(in.Points)
	s := skeleton{order: make([]int, n)}
	for i := range s.order {
		s.order[i] = -1
	}

	for i, p := range in.Points {
		switch p.Kind {
		case domain.StopKindStart:
			s.startIdx = i
			s.order[0] = i
		case domain.StopKindEnd:
			s.endIdx = i
			s.order[n-1] = i
		case domain.StopKindVia:
			if p.FixedSeq != nil {
				s.order[*p.FixedSeq-1] = i
			} else {
				s.freePointIdxs = append(s.freePointIdxs, i)
			}
		}
	}

	for pos := 1; pos < n-1; pos++ {
		if s.order[pos] == -1 {
			s.freePositions = append(s.freePositions, pos)
		}
	}

	return s
}

// metric выбирает ячейку матрицы по целевой метрике
func metric(dist, dur [][]float64, objective domain.Objective, a, b int) float64 {
	if objective == domain.ObjectiveDistance {
		return dist[a][b]
	}
	return dur[a][b]
}

// totalCost суммирует метрики дистанции и длительности по полному порядку
func totalCost(order []int, dist, dur [][]float64) (distKm, durMin float64) {
	for i := 0; i+1 < len(order); i++ {
		a, b := order[i], order[i+1]
		distKm += dist[a][b]
		durMin += dur[a][b]
	}
	return
}

// orderToStopIDs переводит порядок индексов в порядок stop id
func orderToStopIDs(in Input, order []int) []string {
	ids := make([]string, len(order))
	for i, idx := range order {
		ids[i] = in.Points[idx].StopID
	}
	return ids
}

// stopIDsLess лексикографическое сравнение последовательностей stop id,
// используется как детерминированный tie-break (§4.4 "Determinism")
func stopIDsLess(a, b []string) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
