// Package service реализует gRPC RoutingService: composes the Route
// Optimizer, Provider Orchestrator and Route Version Store into the
// Day-Route Breakdown Service (SPEC_FULL.md §4.5), following the same
// request-lifecycle scaffolding as the other services in this module
// (tracked in-flight counters, cache-first lookup, errgroup-bounded leg
// fan-out, sync.Once shutdown).
package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	commonv1 "logistics/gen/go/logistics/common/v1"
	routingv1 "logistics/gen/go/logistics/routing/v1"
	validationv1 "logistics/gen/go/logistics/validation/v1"
	"logistics/pkg/apperror"
	"logistics/pkg/cache"
	"logistics/pkg/client"
	"logistics/pkg/domain"
	"logistics/pkg/logger"
	"logistics/services/routing-svc/internal/optimizer"
	"logistics/services/routing-svc/internal/orchestrator"
	"logistics/services/routing-svc/internal/repository"
)

// ServiceConfig holds the tunables for the Day-Route Breakdown Service (§4.5, §5).
type ServiceConfig struct {
	// MaxConcurrentLegs limits in-flight compute_route calls per breakdown request.
	MaxConcurrentLegs int

	// SegmentDeadline is the hard per-segment deadline (§5 "Cancellation and timeouts").
	SegmentDeadline time.Duration

	// OverallDeadline is the soft deadline for the whole breakdown request.
	OverallDeadline time.Duration

	// MinSuccessFraction is the minimum fraction of legs that must complete
	// before the overall deadline for a partial result to be returned.
	MinSuccessFraction float64

	// PreviewTTL is the lifetime of an uncommitted preview token (§4.2, §6).
	PreviewTTL time.Duration

	// ShutdownTimeout bounds how long Shutdown waits for in-flight requests.
	ShutdownTimeout time.Duration
}

// DefaultServiceConfig returns sensible defaults matching SPEC_FULL.md §4.5/§5.
func DefaultServiceConfig() *ServiceConfig {
	return &ServiceConfig{
		MaxConcurrentLegs:  8,
		SegmentDeadline:    30 * time.Second,
		OverallDeadline:    60 * time.Second,
		MinSuccessFraction: 0.8,
		PreviewTTL:         5 * time.Minute,
		ShutdownTimeout:    30 * time.Second,
	}
}

// serviceStats holds atomic counters for service metrics, mirroring the
// same pattern used across this module's other services.
type serviceStats struct {
	requestsTotal   atomic.Int64
	requestsActive  atomic.Int64
	requestsSuccess atomic.Int64
	requestsFailed  atomic.Int64
}

// RoutingService implements routingv1.RoutingServiceServer.
type RoutingService struct {
	routingv1.UnimplementedRoutingServiceServer

	version string
	config  *ServiceConfig

	orchestrator *orchestrator.Orchestrator
	repo         repository.RouteVersionRepository
	previews     *cache.PreviewCache
	validation   *client.ValidationClient

	dayLocks *dayLockTable

	stats serviceStats
	start time.Time

	shutdownCh   chan struct{}
	shutdownOnce sync.Once
	wg           sync.WaitGroup
}

// NewRoutingService creates a RoutingService with default configuration.
func NewRoutingService(version string, orch *orchestrator.Orchestrator, repo repository.RouteVersionRepository, previews *cache.PreviewCache) *RoutingService {
	return NewRoutingServiceWithConfig(version, orch, repo, previews, DefaultServiceConfig())
}

// NewRoutingServiceWithConfig creates a RoutingService with custom configuration.
func NewRoutingServiceWithConfig(version string, orch *orchestrator.Orchestrator, repo repository.RouteVersionRepository, previews *cache.PreviewCache, config *ServiceConfig) *RoutingService {
	if config == nil {
		config = DefaultServiceConfig()
	}
	return &RoutingService{
		version:      version,
		config:       config,
		orchestrator: orch,
		repo:         repo,
		previews:     previews,
		dayLocks:     newDayLockTable(),
		start:        time.Now(),
		shutdownCh:   make(chan struct{}),
	}
}

// SetValidationClient wires an optional validation-svc client that
// ComputeDayBreakdown calls before the Optimizer. Leaving it unset (nil)
// skips the remote check; the Optimizer independently re-validates the
// invariants that are load-bearing for its own algorithm regardless.
func (s *RoutingService) SetValidationClient(c *client.ValidationClient) {
	s.validation = c
}

// =============================================================================
// Request lifecycle
// =============================================================================

func (s *RoutingService) trackRequest() error {
	select {
	case <-s.shutdownCh:
		return apperror.New(apperror.CodeInternal, "service is shutting down")
	default:
	}

	s.wg.Add(1)
	s.stats.requestsTotal.Add(1)
	s.stats.requestsActive.Add(1)
	return nil
}

func (s *RoutingService) untrackRequest() {
	s.stats.requestsActive.Add(-1)
	s.wg.Done()
}

// Shutdown stops accepting new requests and waits for in-flight ones to drain.
func (s *RoutingService) Shutdown(ctx context.Context) error {
	var err error

	s.shutdownOnce.Do(func() {
		close(s.shutdownCh)

		done := make(chan struct{})
		go func() {
			s.wg.Wait()
			close(done)
		}()

		select {
		case <-done:
			logger.Log.Info("routing-svc: all requests completed gracefully")
		case <-ctx.Done():
			err = ctx.Err()
			logger.Log.Warn("routing-svc: shutdown timeout, some requests may be interrupted",
				"active_requests", s.stats.requestsActive.Load())
		}
	})

	return err
}

// =============================================================================
// ComputeDayBreakdown
// =============================================================================

// ComputeDayBreakdown implements the algorithm of SPEC_FULL.md §4.5.
func (s *RoutingService) ComputeDayBreakdown(ctx context.Context, req *routingv1.ComputeDayBreakdownRequest) (*routingv1.ComputeDayBreakdownResponse, error) {
	if err := s.trackRequest(); err != nil {
		return nil, err
	}
	defer s.untrackRequest()

	if req.DayId == "" {
		s.stats.requestsFailed.Add(1)
		return nil, apperror.NewWithField(apperror.CodeInvalidArgument, "day_id is required", "day_id")
	}

	points := buildRoutePoints(req)
	if len(points) < 2 {
		s.stats.requestsFailed.Add(1)
		return nil, apperror.New(apperror.CodeValidationTooFewPoints, "day breakdown requires at least 2 points")
	}

	profile := profileFromWire(req.Profile)
	objective := objectiveFromWire(req.Objective)
	opts := routeOptionsFromWire(req.Options)

	if err := s.validateStopsRemote(ctx, req.DayId, req.Profile, points); err != nil {
		s.stats.requestsFailed.Add(1)
		return nil, err
	}

	orderedIDs, warnings, err := s.resolveOrder(ctx, points, profile, objective, req.Optimize)
	if err != nil {
		s.stats.requestsFailed.Add(1)
		return nil, err
	}

	byID := make(map[string]domain.LatLon, len(points))
	for _, p := range points {
		byID[p.StopID] = p.Point
	}

	ctx, cancel := context.WithTimeout(ctx, s.config.OverallDeadline)
	defer cancel()

	legs, providerNames, legWarnings, completed, total, err := s.computeLegs(ctx, orderedIDs, byID, profile, opts)
	if err != nil {
		s.stats.requestsFailed.Add(1)
		return nil, err
	}

	fraction := 1.0
	if total > 0 {
		fraction = float64(completed) / float64(total)
	}
	if fraction < s.config.MinSuccessFraction {
		s.stats.requestsFailed.Add(1)
		return nil, apperror.New(apperror.CodeRouteProviderError,
			fmt.Sprintf("only %d/%d legs completed before the overall deadline", completed, total))
	}
	if completed < total {
		warnings = append(warnings, "partial_result")
	}
	warnings = append(warnings, legWarnings...)

	totals := domain.SumLegs(legs)
	legGeometries := make([]domain.LineString, 0, len(legs))
	for _, l := range legs {
		if l.Geometry != nil {
			legGeometries = append(legGeometries, *l.Geometry)
		}
	}
	geometry := domain.StitchLineStrings(legGeometries)

	version := domain.RouteVersion{
		ID:             uuid.NewString(),
		DayID:          req.DayId,
		Profile:        profile,
		Objective:      objective,
		Options:        opts,
		OrderedStopIDs: orderedIDs,
		Totals:         totals,
		Legs:           legs,
		Geometry:       geometry,
		Warnings:       dedupeWarnings(warnings),
		ComputedAt:     time.Now(),
		ProviderName:   dominantProviderName(providerNames),
	}

	preview := &domain.PreviewToken{
		Token:      uuid.NewString(),
		DayID:      req.DayId,
		ExpiresAt:  time.Now().Add(s.config.PreviewTTL),
		Route:      version,
		InputsHash: inputsHash(orderedIDs, profile, objective, opts),
	}

	if s.previews != nil {
		if err := s.previews.Set(ctx, preview, s.config.PreviewTTL); err != nil {
			s.stats.requestsFailed.Add(1)
			return nil, apperror.Wrap(err, apperror.CodeInternal, "failed to store preview token")
		}
	}

	s.stats.requestsSuccess.Add(1)
	return &routingv1.ComputeDayBreakdownResponse{Preview: previewTokenToWire(preview)}, nil
}

// buildRoutePoints assembles the day's points from start/stops/end, forcing
// the bookend kinds regardless of what the caller set on the wire (§4.4).
func buildRoutePoints(req *routingv1.ComputeDayBreakdownRequest) []domain.RoutePoint {
	points := make([]domain.RoutePoint, 0, len(req.Stops)+2)

	if req.Start != nil {
		p := routePointFromWire(req.Start)
		p.Kind = domain.StopKindStart
		points = append(points, p)
	}
	for _, stop := range req.Stops {
		p := routePointFromWire(stop)
		if p.Kind == domain.StopKindStart || p.Kind == domain.StopKindEnd {
			p.Kind = domain.StopKindVia
		}
		points = append(points, p)
	}
	if req.End != nil {
		p := routePointFromWire(req.End)
		p.Kind = domain.StopKindEnd
		points = append(points, p)
	}

	return points
}

// validateStopsRemote asks validation-svc to check the day's stop shape
// before the Optimizer runs (§10.2). A nil client (not configured) or a
// transport failure is logged and swallowed: the Optimizer re-validates the
// invariants it actually depends on, so this call is an early rejection
// path, not a correctness dependency.
func (s *RoutingService) validateStopsRemote(ctx context.Context, dayID string, wireProfile commonv1.Profile, points []domain.RoutePoint) error {
	if s.validation == nil {
		return nil
	}

	stops := make([]*validationv1.StopInput, len(points))
	for i, p := range points {
		stop := &validationv1.StopInput{
			StopId: p.StopID,
			Point:  &commonv1.LatLon{Lat: p.Point.Lat, Lon: p.Point.Lon},
			Kind:   stopKindToWire(p.Kind),
			Fixed:  p.FixedSeq != nil,
		}
		if p.FixedSeq != nil {
			seq := int32(*p.FixedSeq)
			stop.FixedSeq = &seq
		}
		stops[i] = stop
	}

	resp, err := s.validation.ValidateStops(ctx, &validationv1.ValidateStopsRequest{
		DayId:   dayID,
		Profile: wireProfile,
		Stops:   stops,
	})
	if err != nil {
		logger.Log.Warn("validation-svc call failed, continuing without remote validation", "error", err)
		return nil
	}
	if resp.Result != nil && !resp.Result.IsValid {
		msgs := make([]string, 0, len(resp.Result.Errors))
		for _, e := range resp.Result.Errors {
			msgs = append(msgs, e.Message)
		}
		return apperror.New(apperror.CodeInvalidArgument, strings.Join(msgs, "; "))
	}
	return nil
}

// resolveOrder runs the optimizer when requested, otherwise validates and
// keeps the caller's order (§4.5 step 2).
func (s *RoutingService) resolveOrder(ctx context.Context, points []domain.RoutePoint, profile domain.Profile, objective domain.Objective, optimize bool) ([]string, []string, error) {
	in := optimizer.Input{Points: points, Profile: profile, Objective: objective}

	if optimize {
		result, err := optimizer.Optimize(ctx, s.orchestrator, in)
		if err != nil {
			return nil, nil, err
		}
		return result.OrderedStopIDs, result.Warnings, nil
	}

	if err := optimizer.Validate(in); err != nil {
		return nil, nil, err
	}
	ids := make([]string, len(points))
	for i, p := range points {
		ids[i] = p.StopID
	}
	return ids, nil, nil
}

// computeLegs computes one compute_route call per consecutive stop pair,
// fanned out through an errgroup bounded to MaxConcurrentLegs, tagging
// provider-failed segments with a Haversine fallback and leaving segments
// cancelled by the overall deadline missing (§4.5 step 3, §5 "Cancellation
// and timeouts").
func (s *RoutingService) computeLegs(
	ctx context.Context,
	orderedIDs []string,
	byID map[string]domain.LatLon,
	profile domain.Profile,
	opts domain.RouteOptions,
) (legs []domain.Leg, providerNames []string, warnings []string, completed, total int, err error) {
	total = len(orderedIDs) - 1
	if total <= 0 {
		return nil, nil, nil, 0, 0, nil
	}

	slots := make([]*domain.Leg, total)
	providerBySlot := make([]string, total)
	warnBySlot := make([][]string, total)

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.MaxConcurrentLegs)

	for i := 0; i < total; i++ {
		i := i
		g.Go(func() error {
			fromID, toID := orderedIDs[i], orderedIDs[i+1]
			from, to := byID[fromID], byID[toID]

			segCtx, cancel := context.WithTimeout(gCtx, s.config.SegmentDeadline)
			defer cancel()

			result, callErr := s.orchestrator.ComputeRoute(segCtx, []domain.LatLon{from, to}, profile, opts)
			if callErr != nil {
				if errors.Is(callErr, context.DeadlineExceeded) || errors.Is(callErr, context.Canceled) {
					return nil // overall/segment deadline hit before any result; leg stays missing
				}
				// orchestrator itself already degrades to Haversine; this branch
				// only fires for hard validation errors (e.g. unsupported profile),
				// so fill the segment directly rather than drop it.
				d := domain.HaversineKm(from, to)
				dur := domain.EstimateDurationMin(d, profile)
				ls := domain.NewLineString([]domain.LatLon{from, to})
				slots[i] = &domain.Leg{FromStopID: fromID, ToStopID: toID, DistanceKm: d, DurationMin: dur, Geometry: &ls}
				providerBySlot[i] = "haversine"
				warnBySlot[i] = []string{"fallback=haversine"}
				return nil
			}

			leg := domain.Leg{
				FromStopID:  fromID,
				ToStopID:    toID,
				DistanceKm:  result.DistanceKm,
				DurationMin: result.DurationMin,
			}
			geom := result.Geometry
			leg.Geometry = &geom
			slots[i] = &leg
			providerBySlot[i] = result.ProviderName
			warnBySlot[i] = result.Warnings
			return nil
		})
	}
	_ = g.Wait() // every goroutine above returns nil; deadlines are handled per-leg, not propagated

	for i, slot := range slots {
		if slot == nil {
			continue
		}
		legs = append(legs, *slot)
		if providerBySlot[i] != "" {
			providerNames = append(providerNames, providerBySlot[i])
		}
		warnings = append(warnings, warnBySlot[i]...)
		completed++
	}

	return legs, providerNames, warnings, completed, total, nil
}

// dominantProviderName returns the name shared by every leg, or "mixed" if
// legs were served by more than one provider.
func dominantProviderName(names []string) string {
	if len(names) == 0 {
		return ""
	}
	first := names[0]
	for _, n := range names[1:] {
		if n != first {
			return "mixed"
		}
	}
	return first
}

func dedupeWarnings(warnings []string) []string {
	seen := make(map[string]bool, len(warnings))
	out := make([]string, 0, len(warnings))
	for _, w := range warnings {
		if w == "" || seen[w] {
			continue
		}
		seen[w] = true
		out = append(out, w)
	}
	return out
}

// inputsHash fingerprints the tuple that determines a day breakdown's
// payload, per the idempotence property of §4.5.
func inputsHash(orderedIDs []string, profile domain.Profile, objective domain.Objective, opts domain.RouteOptions) string {
	h := sha256.New()
	h.Write([]byte(strings.Join(orderedIDs, "|")))
	h.Write([]byte(string(profile)))
	h.Write([]byte(string(objective)))
	fmt.Fprintf(h, "%t|%t|%t|%t", opts.AvoidTolls, opts.AvoidFerries, opts.AvoidHighways, opts.Optimize)
	return hex.EncodeToString(h.Sum(nil))
}

// =============================================================================
// Preview -> commit -> active lifecycle
// =============================================================================

// CommitPreview persists the previewed route as the day's new active version,
// atomically clearing the prior active version (§4.2).
func (s *RoutingService) CommitPreview(ctx context.Context, req *routingv1.CommitPreviewRequest) (*routingv1.CommitPreviewResponse, error) {
	if err := s.trackRequest(); err != nil {
		return nil, err
	}
	defer s.untrackRequest()

	preview, err := s.loadPreview(ctx, req.PreviewToken)
	if err != nil {
		s.stats.requestsFailed.Add(1)
		return nil, err
	}

	var committed *domain.RouteVersion
	lockErr := s.dayLocks.withDayLock(preview.DayID, func() error {
		row, convErr := domainToRepoRow(&preview.Route)
		if convErr != nil {
			return apperror.Wrap(convErr, apperror.CodeInternal, "failed to encode route version")
		}
		row.IsActive = false

		if createErr := s.repo.Create(ctx, preview.DayID, row); createErr != nil {
			return apperror.Wrap(createErr, apperror.CodeInternal, "failed to persist route version")
		}

		active, setErr := s.repo.SetActive(ctx, preview.DayID, row.ID)
		if setErr != nil {
			return apperror.Wrap(setErr, apperror.CodeInternal, "failed to activate route version")
		}

		version, convErr := repoRowToDomain(active)
		if convErr != nil {
			return apperror.Wrap(convErr, apperror.CodeInternal, "failed to decode route version")
		}
		committed = version
		return nil
	})
	if lockErr != nil {
		s.stats.requestsFailed.Add(1)
		return nil, lockErr
	}

	if s.previews != nil {
		_ = s.previews.Delete(ctx, req.PreviewToken) //nolint:errcheck // best effort cleanup
	}

	s.stats.requestsSuccess.Add(1)
	return &routingv1.CommitPreviewResponse{Version: routeVersionToWire(committed)}, nil
}

// GetPreview returns a previously computed, not-yet-committed preview.
func (s *RoutingService) GetPreview(ctx context.Context, req *routingv1.GetPreviewRequest) (*routingv1.GetPreviewResponse, error) {
	if err := s.trackRequest(); err != nil {
		return nil, err
	}
	defer s.untrackRequest()

	preview, err := s.loadPreview(ctx, req.PreviewToken)
	if err != nil {
		s.stats.requestsFailed.Add(1)
		return nil, err
	}

	s.stats.requestsSuccess.Add(1)
	return &routingv1.GetPreviewResponse{Preview: previewTokenToWire(preview)}, nil
}

// loadPreview fetches a preview token and checks expiry (§4.2, §7).
func (s *RoutingService) loadPreview(ctx context.Context, token string) (*domain.PreviewToken, error) {
	if token == "" {
		return nil, apperror.NewWithField(apperror.CodeInvalidArgument, "preview_token is required", "preview_token")
	}
	if s.previews == nil {
		return nil, apperror.ErrPreviewNotFound
	}

	preview, found, err := s.previews.Get(ctx, token)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInternal, "failed to load preview token")
	}
	if !found {
		return nil, apperror.ErrPreviewNotFound
	}
	if preview.Expired(time.Now()) {
		_ = s.previews.Delete(ctx, token) //nolint:errcheck // best effort cleanup
		return nil, apperror.ErrPreviewExpired
	}

	return preview, nil
}

// ListVersions returns the committed route versions of a day (§4.2).
func (s *RoutingService) ListVersions(ctx context.Context, req *routingv1.ListVersionsRequest) (*routingv1.ListVersionsResponse, error) {
	if err := s.trackRequest(); err != nil {
		return nil, err
	}
	defer s.untrackRequest()

	if req.DayId == "" {
		s.stats.requestsFailed.Add(1)
		return nil, apperror.NewWithField(apperror.CodeInvalidArgument, "day_id is required", "day_id")
	}

	opts := &repository.ListOptions{Limit: 20, Sort: repository.SortByVersionDesc}
	if req.Pagination != nil {
		if req.Pagination.PageSize > 0 {
			opts.Limit = int(req.Pagination.PageSize)
		}
		if req.Pagination.Page > 1 {
			opts.Offset = int(req.Pagination.Page-1) * opts.Limit
		}
	}

	rows, total, err := s.repo.List(ctx, req.DayId, opts)
	if err != nil {
		s.stats.requestsFailed.Add(1)
		return nil, apperror.Wrap(err, apperror.CodeInternal, "failed to list route versions")
	}

	summaries := make([]*routingv1.RouteVersionSummary, len(rows))
	for i, row := range rows {
		summaries[i] = routeVersionSummaryToWire(repoSummaryToDomain(row))
	}

	page := int32(1)
	pageSize := int32(opts.Limit)
	if req.Pagination != nil && req.Pagination.Page > 0 {
		page = req.Pagination.Page
	}
	totalPages := int32(0)
	if pageSize > 0 {
		totalPages = int32((total + int64(pageSize) - 1) / int64(pageSize))
	}

	s.stats.requestsSuccess.Add(1)
	return &routingv1.ListVersionsResponse{
		Versions: summaries,
		Pagination: &commonv1.PaginationResponse{
			CurrentPage: page,
			PageSize:    pageSize,
			TotalPages:  totalPages,
			TotalItems:  total,
			HasNext:     page < totalPages,
			HasPrevious: page > 1,
		},
	}, nil
}

// GetActiveVersion returns the day's currently active route version, if any (§4.2).
func (s *RoutingService) GetActiveVersion(ctx context.Context, req *routingv1.GetActiveVersionRequest) (*routingv1.GetActiveVersionResponse, error) {
	if err := s.trackRequest(); err != nil {
		return nil, err
	}
	defer s.untrackRequest()

	if req.DayId == "" {
		s.stats.requestsFailed.Add(1)
		return nil, apperror.NewWithField(apperror.CodeInvalidArgument, "day_id is required", "day_id")
	}

	row, err := s.repo.GetActive(ctx, req.DayId)
	if err != nil {
		s.stats.requestsFailed.Add(1)
		if errors.Is(err, repository.ErrVersionNotFound) {
			return nil, apperror.New(apperror.CodeNotFound, "no active route version for this day")
		}
		return nil, apperror.Wrap(err, apperror.CodeInternal, "failed to load active route version")
	}

	version, err := repoRowToDomain(row)
	if err != nil {
		s.stats.requestsFailed.Add(1)
		return nil, apperror.Wrap(err, apperror.CodeInternal, "failed to decode route version")
	}

	s.stats.requestsSuccess.Add(1)
	return &routingv1.GetActiveVersionResponse{Version: routeVersionToWire(version)}, nil
}

// SetActiveVersion switches the day's active version, serialized by the per-day lock (§4.2, §5).
func (s *RoutingService) SetActiveVersion(ctx context.Context, req *routingv1.SetActiveVersionRequest) (*routingv1.SetActiveVersionResponse, error) {
	if err := s.trackRequest(); err != nil {
		return nil, err
	}
	defer s.untrackRequest()

	if req.DayId == "" || req.VersionId == "" {
		s.stats.requestsFailed.Add(1)
		return nil, apperror.New(apperror.CodeInvalidArgument, "day_id and version_id are required")
	}

	var version *domain.RouteVersion
	lockErr := s.dayLocks.withDayLock(req.DayId, func() error {
		row, setErr := s.repo.SetActive(ctx, req.DayId, req.VersionId)
		if setErr != nil {
			if errors.Is(setErr, repository.ErrVersionNotFound) {
				return apperror.New(apperror.CodeNotFound, "route version not found")
			}
			return apperror.Wrap(setErr, apperror.CodeInternal, "failed to set active route version")
		}
		v, convErr := repoRowToDomain(row)
		if convErr != nil {
			return apperror.Wrap(convErr, apperror.CodeInternal, "failed to decode route version")
		}
		version = v
		return nil
	})
	if lockErr != nil {
		s.stats.requestsFailed.Add(1)
		return nil, lockErr
	}

	s.stats.requestsSuccess.Add(1)
	return &routingv1.SetActiveVersionResponse{Version: routeVersionToWire(version)}, nil
}

// Health reports liveness and basic counters, in the teacher's style.
func (s *RoutingService) Health(_ context.Context, _ *routingv1.HealthRequest) (*routingv1.HealthResponse, error) {
	return &routingv1.HealthResponse{
		Status:        "SERVING",
		Version:       s.version,
		UptimeSeconds: int64(time.Since(s.start).Seconds()),
	}, nil
}

// Stats is a snapshot of service counters, exposed for metrics/debugging.
type Stats struct {
	RequestsTotal   int64
	RequestsActive  int64
	RequestsSuccess int64
	RequestsFailed  int64
	GoroutineCount  int
}

// GetStats returns a snapshot of the service's request counters.
func (s *RoutingService) GetStats() Stats {
	return Stats{
		RequestsTotal:   s.stats.requestsTotal.Load(),
		RequestsActive:  s.stats.requestsActive.Load(),
		RequestsSuccess: s.stats.requestsSuccess.Load(),
		RequestsFailed:  s.stats.requestsFailed.Load(),
		GoroutineCount:  runtime.NumGoroutine(),
	}
}
