package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"logistics/pkg/database"
	"logistics/pkg/telemetry"
)

// PostgresRouteVersionRepository PostgreSQL реализация хранилища версий
type PostgresRouteVersionRepository struct {
	db database.DB
}

// NewPostgresRouteVersionRepository создаёт новый репозиторий
func NewPostgresRouteVersionRepository(db database.DB) *PostgresRouteVersionRepository {
	return &PostgresRouteVersionRepository{db: db}
}

// Create сохраняет новую версию маршрута. Номер версии присваивается внутри
// транзакции после блокировки строки-счётчика Day (SELECT ... FOR UPDATE),
// поэтому конкурентные commit для одного Day всегда сериализуются и
// получают соседние номера N+1, N+2 (см. route_days.next_version_number).
func (r *PostgresRouteVersionRepository) Create(ctx context.Context, dayID string, v *RouteVersion) error {
	ctx, span := telemetry.StartSpan(ctx, "PostgresRouteVersionRepository.Create")
	defer span.End()

	_, err := database.WithTransactionResult(ctx, r.db, func(tx pgx.Tx) (struct{}, error) {
		var nextNumber int
		err := tx.QueryRow(ctx, `
			INSERT INTO route_days (day_id, next_version_number)
			VALUES ($1, 1)
			ON CONFLICT (day_id) DO UPDATE
				SET next_version_number = route_days.next_version_number + 1
			RETURNING next_version_number - 1
		`, dayID).Scan(&nextNumber)
		if err != nil {
			return struct{}{}, fmt.Errorf("failed to allocate version number: %w", err)
		}

		if v.ID == "" {
			v.ID = uuid.NewString()
		}
		v.DayID = dayID
		v.VersionNumber = nextNumber

		err = tx.QueryRow(ctx, `
			INSERT INTO route_versions (
				id, day_id, version_number, name, is_active, profile, objective,
				options_data, ordered_stop_ids, total_distance_km, total_duration_min,
				legs_data, geometry_data, warnings, provider_name, computed_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
			RETURNING created_at
		`,
			v.ID, v.DayID, v.VersionNumber, v.Name, v.IsActive, v.Profile, v.Objective,
			v.OptionsData, v.OrderedStopIDs, v.TotalDistanceKm, v.TotalDurationMin,
			v.LegsData, v.GeometryData, v.Warnings, v.ProviderName, v.ComputedAt,
		).Scan(&v.CreatedAt)
		if err != nil {
			return struct{}{}, fmt.Errorf("failed to create route version: %w", err)
		}

		return struct{}{}, nil
	})

	return err
}

func (r *PostgresRouteVersionRepository) GetByID(ctx context.Context, id string) (*RouteVersion, error) {
	ctx, span := telemetry.StartSpan(ctx, "PostgresRouteVersionRepository.GetByID")
	defer span.End()

	query := `
		SELECT
			id, day_id, version_number, name, is_active, profile, objective,
			options_data, ordered_stop_ids, total_distance_km, total_duration_min,
			legs_data, geometry_data, warnings, provider_name, computed_at, created_at
		FROM route_versions
		WHERE id = $1
	`

	v := &RouteVersion{}
	var stopIDs, warnings pgtype.Array[string]

	err := r.db.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.DayID, &v.VersionNumber, &v.Name, &v.IsActive, &v.Profile, &v.Objective,
		&v.OptionsData, &stopIDs, &v.TotalDistanceKm, &v.TotalDurationMin,
		&v.LegsData, &v.GeometryData, &warnings, &v.ProviderName, &v.ComputedAt, &v.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrVersionNotFound
		}
		return nil, fmt.Errorf("failed to get route version: %w", err)
	}

	v.OrderedStopIDs = stopIDs.Elements
	v.Warnings = warnings.Elements

	return v, nil
}

func (r *PostgresRouteVersionRepository) GetActive(ctx context.Context, dayID string) (*RouteVersion, error) {
	ctx, span := telemetry.StartSpan(ctx, "PostgresRouteVersionRepository.GetActive")
	defer span.End()

	query := `
		SELECT
			id, day_id, version_number, name, is_active, profile, objective,
			options_data, ordered_stop_ids, total_distance_km, total_duration_min,
			legs_data, geometry_data, warnings, provider_name, computed_at, created_at
		FROM route_versions
		WHERE day_id = $1 AND is_active = true
	`

	v := &RouteVersion{}
	var stopIDs, warnings pgtype.Array[string]

	err := r.db.QueryRow(ctx, query, dayID).Scan(
		&v.ID, &v.DayID, &v.VersionNumber, &v.Name, &v.IsActive, &v.Profile, &v.Objective,
		&v.OptionsData, &stopIDs, &v.TotalDistanceKm, &v.TotalDurationMin,
		&v.LegsData, &v.GeometryData, &warnings, &v.ProviderName, &v.ComputedAt, &v.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrVersionNotFound
		}
		return nil, fmt.Errorf("failed to get active route version: %w", err)
	}

	v.OrderedStopIDs = stopIDs.Elements
	v.Warnings = warnings.Elements

	return v, nil
}

func (r *PostgresRouteVersionRepository) List(
	ctx context.Context,
	dayID string,
	opts *ListOptions,
) ([]*RouteVersionSummary, int64, error) {
	ctx, span := telemetry.StartSpan(ctx, "PostgresRouteVersionRepository.List")
	defer span.End()

	if opts == nil {
		opts = &ListOptions{Limit: 20, Offset: 0, Sort: SortByVersionDesc}
	}
	if opts.Limit <= 0 {
		opts.Limit = 20
	}
	if opts.Limit > 100 {
		opts.Limit = 100
	}

	where, args := r.buildWhereClause(dayID, opts.Filter)

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM route_versions WHERE %s`, where)
	var total int64
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count route versions: %w", err)
	}

	orderBy := r.buildOrderBy(opts.Sort)

	selectQuery := fmt.Sprintf(`
		SELECT
			id, day_id, version_number, name, is_active, profile, objective,
			total_distance_km, total_duration_min, computed_at
		FROM route_versions
		WHERE %s
		ORDER BY %s
		LIMIT $%d OFFSET $%d
	`, where, orderBy, len(args)+1, len(args)+2)

	args = append(args, opts.Limit, opts.Offset)

	rows, err := r.db.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list route versions: %w", err)
	}
	defer rows.Close()

	var results []*RouteVersionSummary
	for rows.Next() {
		s := &RouteVersionSummary{}
		if err := rows.Scan(
			&s.ID, &s.DayID, &s.VersionNumber, &s.Name, &s.IsActive, &s.Profile, &s.Objective,
			&s.TotalDistanceKm, &s.TotalDurationMin, &s.ComputedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan route version: %w", err)
		}
		results = append(results, s)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return results, total, nil
}

func (r *PostgresRouteVersionRepository) buildWhereClause(dayID string, filter *ListFilter) (string, []any) {
	conditions := []string{"day_id = $1"}
	args := []any{dayID}
	argNum := 2

	if filter != nil {
		if filter.Profile != "" {
			conditions = append(conditions, fmt.Sprintf("profile = $%d", argNum))
			args = append(args, filter.Profile)
			argNum++
		}
		if filter.ActiveOnly {
			conditions = append(conditions, "is_active = true")
		}
		if filter.ProviderName != "" {
			conditions = append(conditions, fmt.Sprintf("provider_name = $%d", argNum))
			args = append(args, filter.ProviderName)
			argNum++
		}
	}

	return joinConditions(conditions), args
}

func joinConditions(conditions []string) string {
	out := conditions[0]
	for _, c := range conditions[1:] {
		out += " AND " + c
	}
	return out
}

func (r *PostgresRouteVersionRepository) buildOrderBy(sort SortOrder) string {
	switch sort {
	case SortByVersionAsc:
		return "version_number ASC"
	case SortByComputedDesc:
		return "computed_at DESC"
	default:
		return "version_number DESC"
	}
}

// SetActive переключает активную версию Day. Снятие флага со старой
// активной версии и установка флага на новую выполняются в одной
// транзакции, так что читатели никогда не видят ни ноль, ни две активные
// версии одновременно.
func (r *PostgresRouteVersionRepository) SetActive(ctx context.Context, dayID, versionID string) (*RouteVersion, error) {
	ctx, span := telemetry.StartSpan(ctx, "PostgresRouteVersionRepository.SetActive")
	defer span.End()

	return database.WithTransactionResult(ctx, r.db, func(tx pgx.Tx) (*RouteVersion, error) {
		var exists bool
		err := tx.QueryRow(ctx, `
			SELECT EXISTS(SELECT 1 FROM route_versions WHERE id = $1 AND day_id = $2)
		`, versionID, dayID).Scan(&exists)
		if err != nil {
			return nil, fmt.Errorf("failed to check route version: %w", err)
		}
		if !exists {
			return nil, ErrVersionNotFound
		}

		if _, err := tx.Exec(ctx, `
			UPDATE route_versions SET is_active = false WHERE day_id = $1 AND is_active = true
		`, dayID); err != nil {
			return nil, fmt.Errorf("failed to clear active route version: %w", err)
		}

		if _, err := tx.Exec(ctx, `
			UPDATE route_versions SET is_active = true WHERE id = $1
		`, versionID); err != nil {
			return nil, fmt.Errorf("failed to set active route version: %w", err)
		}

		v := &RouteVersion{}
		var stopIDs, warnings pgtype.Array[string]
		err = tx.QueryRow(ctx, `
			SELECT
				id, day_id, version_number, name, is_active, profile, objective,
				options_data, ordered_stop_ids, total_distance_km, total_duration_min,
				legs_data, geometry_data, warnings, provider_name, computed_at, created_at
			FROM route_versions
			WHERE id = $1
		`, versionID).Scan(
			&v.ID, &v.DayID, &v.VersionNumber, &v.Name, &v.IsActive, &v.Profile, &v.Objective,
			&v.OptionsData, &stopIDs, &v.TotalDistanceKm, &v.TotalDurationMin,
			&v.LegsData, &v.GeometryData, &warnings, &v.ProviderName, &v.ComputedAt, &v.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to reload route version: %w", err)
		}
		v.OrderedStopIDs = stopIDs.Elements
		v.Warnings = warnings.Elements

		return v, nil
	})
}
