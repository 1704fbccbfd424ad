package service

import (
	"encoding/json"
	"fmt"

	commonv1 "logistics/gen/go/logistics/common/v1"
	routingv1 "logistics/gen/go/logistics/routing/v1"
	"logistics/pkg/domain"
	"logistics/services/routing-svc/internal/repository"
)

// =============================================================================
// Wire (commonv1/routingv1) -> domain
// =============================================================================

func latLonFromWire(p *commonv1.LatLon) domain.LatLon {
	if p == nil {
		return domain.LatLon{}
	}
	return domain.LatLon{Lat: p.Lat, Lon: p.Lon}
}

func stopKindFromWire(k commonv1.StopKind) domain.StopKind {
	switch k {
	case commonv1.StopKind_STOP_KIND_START:
		return domain.StopKindStart
	case commonv1.StopKind_STOP_KIND_END:
		return domain.StopKindEnd
	default:
		return domain.StopKindVia
	}
}

func stopKindToWire(k domain.StopKind) commonv1.StopKind {
	switch k {
	case domain.StopKindStart:
		return commonv1.StopKind_STOP_KIND_START
	case domain.StopKindEnd:
		return commonv1.StopKind_STOP_KIND_END
	default:
		return commonv1.StopKind_STOP_KIND_VIA
	}
}

func profileFromWire(p commonv1.Profile) domain.Profile {
	switch p {
	case commonv1.Profile_PROFILE_CAR:
		return domain.ProfileCar
	case commonv1.Profile_PROFILE_BIKE:
		return domain.ProfileBike
	case commonv1.Profile_PROFILE_WALKING:
		return domain.ProfileWalking
	default:
		return domain.ProfileCar
	}
}

func profileToWire(p domain.Profile) commonv1.Profile {
	switch p {
	case domain.ProfileCar:
		return commonv1.Profile_PROFILE_CAR
	case domain.ProfileBike:
		return commonv1.Profile_PROFILE_BIKE
	case domain.ProfileWalking:
		return commonv1.Profile_PROFILE_WALKING
	default:
		return commonv1.Profile_PROFILE_UNSPECIFIED
	}
}

func objectiveFromWire(o commonv1.Objective) domain.Objective {
	if o == commonv1.Objective_OBJECTIVE_DISTANCE {
		return domain.ObjectiveDistance
	}
	return domain.ObjectiveTime
}

func objectiveToWire(o domain.Objective) commonv1.Objective {
	if o == domain.ObjectiveDistance {
		return commonv1.Objective_OBJECTIVE_DISTANCE
	}
	return commonv1.Objective_OBJECTIVE_TIME
}

func routeOptionsFromWire(o *routingv1.RouteOptions) domain.RouteOptions {
	if o == nil {
		return domain.RouteOptions{}
	}
	return domain.RouteOptions{
		AvoidTolls:    o.AvoidTolls,
		AvoidFerries:  o.AvoidFerries,
		AvoidHighways: o.AvoidHighways,
		Optimize:      o.Optimize,
	}
}

func routePointFromWire(p *routingv1.RoutePoint) domain.RoutePoint {
	if p == nil {
		return domain.RoutePoint{}
	}
	rp := domain.RoutePoint{
		StopID: p.StopId,
		Point:  latLonFromWire(p.Point),
		Kind:   stopKindFromWire(p.Kind),
	}
	if p.FixedSeq != nil {
		seq := int(*p.FixedSeq)
		rp.FixedSeq = &seq
	}
	return rp
}

// =============================================================================
// domain -> wire (routingv1/commonv1)
// =============================================================================

func latLonToWire(p domain.LatLon) *commonv1.LatLon {
	return &commonv1.LatLon{Lat: p.Lat, Lon: p.Lon}
}

func lineStringToWire(ls domain.LineString) *commonv1.LineString {
	return &commonv1.LineString{Type: ls.Type, Coordinates: ls.Coordinates}
}

func legToWire(l domain.Leg) *routingv1.Leg {
	out := &routingv1.Leg{
		FromStopId:  l.FromStopID,
		ToStopId:    l.ToStopID,
		DistanceKm:  l.DistanceKm,
		DurationMin: l.DurationMin,
	}
	if l.Geometry != nil {
		out.Geometry = lineStringToWire(*l.Geometry)
	}
	return out
}

func routeOptionsToWire(o domain.RouteOptions) *routingv1.RouteOptions {
	return &routingv1.RouteOptions{
		AvoidTolls:    o.AvoidTolls,
		AvoidFerries:  o.AvoidFerries,
		AvoidHighways: o.AvoidHighways,
		Optimize:      o.Optimize,
	}
}

func routeVersionToWire(v *domain.RouteVersion) *routingv1.RouteVersion {
	legs := make([]*routingv1.Leg, len(v.Legs))
	for i, l := range v.Legs {
		legs[i] = legToWire(l)
	}

	return &routingv1.RouteVersion{
		Id:               v.ID,
		DayId:            v.DayID,
		VersionNumber:    int32(v.VersionNumber),
		Name:             v.Name,
		IsActive:         v.IsActive,
		Profile:          profileToWire(v.Profile),
		Objective:        objectiveToWire(v.Objective),
		Options:          routeOptionsToWire(v.Options),
		OrderedStopIds:   v.OrderedStopIDs,
		TotalDistanceKm:  v.Totals.DistanceKm,
		TotalDurationMin: v.Totals.DurationMin,
		Legs:             legs,
		Geometry:         lineStringToWire(v.Geometry),
		Warnings:         v.Warnings,
		ComputedAt:       v.ComputedAt.Unix(),
		ProviderName:     v.ProviderName,
	}
}

func routeVersionSummaryToWire(s *domain.RouteVersionSummary) *routingv1.RouteVersionSummary {
	return &routingv1.RouteVersionSummary{
		Id:               s.ID,
		DayId:            s.DayID,
		VersionNumber:    int32(s.VersionNumber),
		Name:             s.Name,
		IsActive:         s.IsActive,
		Profile:          profileToWire(s.Profile),
		Objective:        objectiveToWire(s.Objective),
		TotalDistanceKm:  s.Totals.DistanceKm,
		TotalDurationMin: s.Totals.DurationMin,
		ComputedAt:       s.ComputedAt.Unix(),
	}
}

func previewTokenToWire(p *domain.PreviewToken) *routingv1.PreviewToken {
	return &routingv1.PreviewToken{
		Token:      p.Token,
		DayId:      p.DayID,
		ExpiresAt:  p.ExpiresAt.Unix(),
		Route:      routeVersionToWire(&p.Route),
		InputsHash: p.InputsHash,
	}
}

// =============================================================================
// repository row <-> domain
// =============================================================================

// domainToRepoRow сериализует RouteVersion в строку хранилища: options/legs/
// geometry хранятся как JSON-колонки (§4.2)
func domainToRepoRow(v *domain.RouteVersion) (*repository.RouteVersion, error) {
	optionsData, err := json.Marshal(v.Options)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal options: %w", err)
	}
	legsData, err := json.Marshal(v.Legs)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal legs: %w", err)
	}
	geometryData, err := json.Marshal(v.Geometry)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal geometry: %w", err)
	}

	return &repository.RouteVersion{
		ID:               v.ID,
		DayID:            v.DayID,
		VersionNumber:    v.VersionNumber,
		Name:             v.Name,
		IsActive:         v.IsActive,
		Profile:          string(v.Profile),
		Objective:        string(v.Objective),
		OptionsData:      optionsData,
		OrderedStopIDs:   v.OrderedStopIDs,
		TotalDistanceKm:  v.Totals.DistanceKm,
		TotalDurationMin: v.Totals.DurationMin,
		LegsData:         legsData,
		GeometryData:     geometryData,
		Warnings:         v.Warnings,
		ProviderName:     v.ProviderName,
		ComputedAt:       v.ComputedAt,
	}, nil
}

// repoRowToDomain десериализует строку хранилища обратно в RouteVersion
func repoRowToDomain(row *repository.RouteVersion) (*domain.RouteVersion, error) {
	var options domain.RouteOptions
	if len(row.OptionsData) > 0 {
		if err := json.Unmarshal(row.OptionsData, &options); err != nil {
			return nil, fmt.Errorf("failed to unmarshal options: %w", err)
		}
	}
	var legs []domain.Leg
	if len(row.LegsData) > 0 {
		if err := json.Unmarshal(row.LegsData, &legs); err != nil {
			return nil, fmt.Errorf("failed to unmarshal legs: %w", err)
		}
	}
	var geometry domain.LineString
	if len(row.GeometryData) > 0 {
		if err := json.Unmarshal(row.GeometryData, &geometry); err != nil {
			return nil, fmt.Errorf("failed to unmarshal geometry: %w", err)
		}
	}

	return &domain.RouteVersion{
		ID:             row.ID,
		DayID:          row.DayID,
		VersionNumber:  row.VersionNumber,
		Name:           row.Name,
		IsActive:       row.IsActive,
		Profile:        domain.Profile(row.Profile),
		Objective:      domain.Objective(row.Objective),
		Options:        options,
		OrderedStopIDs: row.OrderedStopIDs,
		Totals:         domain.RouteTotals{DistanceKm: row.TotalDistanceKm, DurationMin: row.TotalDurationMin},
		Legs:           legs,
		Geometry:       geometry,
		Warnings:       row.Warnings,
		ComputedAt:     row.ComputedAt,
		ProviderName:   row.ProviderName,
	}, nil
}

func repoSummaryToDomain(s *repository.RouteVersionSummary) *domain.RouteVersionSummary {
	return &domain.RouteVersionSummary{
		ID:            s.ID,
		DayID:         s.DayID,
		VersionNumber: s.VersionNumber,
		Name:          s.Name,
		IsActive:      s.IsActive,
		Profile:       domain.Profile(s.Profile),
		Objective:     domain.Objective(s.Objective),
		Totals:        domain.RouteTotals{DistanceKm: s.TotalDistanceKm, DurationMin: s.TotalDurationMin},
		ComputedAt:    s.ComputedAt,
	}
}
