package repository

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log/slog"

	"github.com/bjhara/temp-hum-logger/internal/modules/telemetry/types"
)

//go:embed sql/get-clients.sql
var getClientsSQL string

//go:embed sql/get-measurements.sql
var getMeasurementsSQL string

//go:embed sql/insert-measurement.sql
var insertMeasurementSQL string

type MeasurementRepository interface {
	GetClients(ctx context.Context) ([]string, error)
	GetMeasurements(ctx context.Context, clientID string) ([]types.Measurement, error)
	// InsertMeasurement reports false when a row with the same client and
	// timestamp already exists.
	InsertMeasurement(ctx context.Context, m types.Measurement) (bool, error)
}

type repositoryImpl struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) MeasurementRepository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) GetClients(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, getClientsSQL)
	if err != nil {
		return nil, fmt.Errorf("query clients: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("close clients rows", "error", err)
		}
	}()
	out := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

func (r *repositoryImpl) GetMeasurements(ctx context.Context, clientID string) ([]types.Measurement, error) {
	rows, err := r.db.QueryContext(ctx, getMeasurementsSQL, clientID)
	if err != nil {
		return nil, fmt.Errorf("query measurements: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("close measurements rows", "error", err)
		}
	}()
	out := []types.Measurement{}
	for rows.Next() {
		var m types.Measurement
		if err := rows.Scan(&m.ClientID, &m.Timestamp, &m.Temp, &m.Hum); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *repositoryImpl) InsertMeasurement(ctx context.Context, m types.Measurement) (bool, error) {
	if m.ClientID == "" {
		return false, fmt.Errorf("insert measurement: empty client id")
	}
	res, err := r.db.ExecContext(ctx, insertMeasurementSQL, m.ClientID, m.Timestamp, m.Temp, m.Hum)
	if err != nil {
		return false, fmt.Errorf("insert measurement: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("insert measurement: %w", err)
	}
	return n == 1, nil
}
