package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"logistics/pkg/domain"
)

// httpAdapter реализация Adapter поверх GraphHopper-совместимого HTTP API
// (§4.1, §6). Cloud и Self-Host адаптеры отличаются только конфигурацией
// (base URL, API-ключ), таксономия ошибок идентична.
type httpAdapter struct {
	name       string
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// newHTTPAdapter создаёт httpAdapter с выделенным http.Client и таймаутом на вызов (§4.1)
func newHTTPAdapter(name, baseURL, apiKey string, timeout time.Duration) *httpAdapter {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &httpAdapter{
		name:    name,
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// NewCloudAdapter строит облачный адаптер по конфигурации провайдера (§4.1.1)
func NewCloudAdapter(baseURL, apiKey string, timeout time.Duration) Adapter {
	return newHTTPAdapter("cloud", baseURL, apiKey, timeout)
}

// NewSelfHostAdapter строит self-host адаптер по конфигурации провайдера (§4.1.2)
func NewSelfHostAdapter(baseURL string, timeout time.Duration) Adapter {
	return newHTTPAdapter("selfhost", baseURL, "", timeout)
}

func (a *httpAdapter) Name() string { return a.name }

// routeRequestBody тело POST /route. Поля упорядочены struct-тегами, а не
// map-ом, чтобы кодирование было детерминированным (§4.1 "must encode request
// bodies deterministically").
type routeRequestBody struct {
	Points        [][2]float64 `json:"points"`
	Profile       string       `json:"profile"`
	AvoidTolls    bool         `json:"avoid_tolls,omitempty"`
	AvoidFerries  bool         `json:"avoid_ferries,omitempty"`
	AvoidHighways bool         `json:"avoid_highways,omitempty"`
}

type routeResponseLeg struct {
	DistanceM float64      `json:"distance_m"`
	TimeMs    float64      `json:"time_ms"`
	Points    [][2]float64 `json:"points,omitempty"`
}

type routeResponseBody struct {
	DistanceM float64             `json:"distance_m"`
	TimeMs    float64             `json:"time_ms"`
	Points    [][2]float64        `json:"points"`
	Legs      []routeResponseLeg  `json:"legs,omitempty"`
}

// ComputeRoute вызывает POST {base_url}/route и нормализует ответ в км/мин (§6)
func (a *httpAdapter) ComputeRoute(ctx context.Context, points []domain.LatLon, profile domain.Profile, opts domain.RouteOptions) (*RouteResult, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	body := routeRequestBody{
		Points:        toLonLat(points),
		Profile:       string(profile),
		AvoidTolls:    opts.AvoidTolls,
		AvoidFerries:  opts.AvoidFerries,
		AvoidHighways: opts.AvoidHighways,
	}

	var resp routeResponseBody
	if err := a.post(ctx, "/route", body, &resp); err != nil {
		return nil, err
	}

	distKm := resp.DistanceM / 1000.0
	durMin := resp.TimeMs / 60000.0
	if !domain.IsFinitePositive(durMin) {
		durMin = estimateFallbackDuration(points, profile)
	}

	var legs []domain.Leg
	var warnings []string
	if len(resp.Legs) == len(points)-1 {
		for i, rl := range resp.Legs {
			legDist := rl.DistanceM / 1000.0
			legDur := rl.TimeMs / 60000.0
			if !domain.IsFinitePositive(legDur) {
				legDur = domain.EstimateDurationMin(legDist, profile)
				warnings = append(warnings, "duration substituted with haversine estimate")
			}
			ls := domain.NewLineString([]domain.LatLon{points[i], points[i+1]})
			if len(rl.Points) > 0 {
				ls = domain.LineString{Type: "LineString", Coordinates: rl.Points}
			}
			legs = append(legs, domain.Leg{DistanceKm: legDist, DurationMin: legDur, Geometry: &ls})
		}
	}

	geometry := domain.NewLineString(points)
	if len(resp.Points) > 0 {
		geometry = domain.LineString{Type: "LineString", Coordinates: resp.Points}
	}

	return &RouteResult{
		DistanceKm:   distKm,
		DurationMin:  durMin,
		Geometry:     geometry,
		Legs:         legs,
		Warnings:     warnings,
		ProviderName: a.name,
	}, nil
}

type matrixRequestBody struct {
	Points  [][2]float64 `json:"points"`
	Profile string       `json:"profile"`
}

type matrixResponseBody struct {
	Distances [][]float64 `json:"distances"`
	Times     [][]float64 `json:"times"`
}

// ComputeMatrix вызывает POST {base_url}/matrix и нормализует ответ в км/мин (§6)
func (a *httpAdapter) ComputeMatrix(ctx context.Context, points []domain.LatLon, profile domain.Profile, _ domain.Objective) (*MatrixResult, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	body := matrixRequestBody{Points: toLonLat(points), Profile: string(profile)}

	var resp matrixResponseBody
	if err := a.post(ctx, "/matrix", body, &resp); err != nil {
		return nil, err
	}

	n := len(points)
	distance := make([][]float64, n)
	duration := make([][]float64, n)
	for i := 0; i < n; i++ {
		distance[i] = make([]float64, n)
		duration[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			if i == j || i >= len(resp.Distances) || j >= len(resp.Distances[i]) {
				continue
			}
			distance[i][j] = resp.Distances[i][j] / 1000.0
			durMin := resp.Times[i][j] / 60000.0
			if !domain.IsFinitePositive(durMin) && i != j {
				durMin = domain.EstimateDurationMin(distance[i][j], profile)
			}
			duration[i][j] = durMin
		}
	}

	return &MatrixResult{DistanceKm: distance, DurationMin: duration}, nil
}

// post выполняет один POST-запрос к провайдеру и декодирует JSON-ответ,
// классифицируя неудачи по таксономии §4.1
func (a *httpAdapter) post(ctx context.Context, path string, reqBody, respBody any) error {
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("%s: encode request: %w", a.name, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%s: build request: %w", a.name, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if a.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+a.apiKey)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return errTimeout(a.name)
		}
		return errNetwork(a.name, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return errRateLimited(a.name, retryAfterSeconds(resp))
	case resp.StatusCode >= 500:
		return errUpstream5xx(a.name, resp.StatusCode)
	case resp.StatusCode >= 400:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return errUpstream4xx(a.name, resp.StatusCode, string(msg))
	}

	if err := json.NewDecoder(resp.Body).Decode(respBody); err != nil {
		return fmt.Errorf("%s: decode response: %w", a.name, err)
	}
	return nil
}

// retryAfterSeconds извлекает заголовок Retry-After, 0 если отсутствует/невалиден
func retryAfterSeconds(resp *http.Response) int {
	v := resp.Header.Get("Retry-After")
	if v == "" {
		return 0
	}
	seconds, err := strconv.Atoi(v)
	if err != nil || seconds < 0 {
		return 0
	}
	return seconds
}

// toLonLat конвертирует точки в формат [lon, lat], ожидаемый проводом (§6)
func toLonLat(points []domain.LatLon) [][2]float64 {
	out := make([][2]float64, len(points))
	for i, p := range points {
		out[i] = [2]float64{p.Lon, p.Lat}
	}
	return out
}

// estimateFallbackDuration используется, когда провайдер вернул невалидную
// суммарную длительность — заменяется гаверсинусной оценкой по всей цепочке (§4.1)
func estimateFallbackDuration(points []domain.LatLon, profile domain.Profile) float64 {
	var total float64
	for i := 0; i+1 < len(points); i++ {
		d := domain.HaversineKm(points[i], points[i+1])
		total += domain.EstimateDurationMin(d, profile)
	}
	return total
}
