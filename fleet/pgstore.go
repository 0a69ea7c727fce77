package fleet

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// PGStore is the Postgres-backed Store. Whole-record consistency under
// concurrent ingestion comes from single-statement UPDATE ... RETURNING; no
// bus row is ever written field-by-field across statements.
type PGStore struct {
	db  *sql.DB
	now func() time.Time
}

var _ Store = (*PGStore)(nil)

// OpenPG connects to Postgres via the pgx stdlib driver and ensures the
// fleet schema exists.
func OpenPG(ctx context.Context, dsn string) (*PGStore, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	s := &PGStore{db: db, now: time.Now}
	if err := s.ensureSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return s, nil
}

// Close releases the underlying connection pool.
func (s *PGStore) Close() error { return s.db.Close() }

func (s *PGStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS buses (
	bus_number    TEXT PRIMARY KEY,
	route         TEXT NOT NULL,
	area          TEXT NOT NULL,
	from_city     TEXT NOT NULL,
	to_city       TEXT NOT NULL,
	driver_name   TEXT NOT NULL DEFAULT '',
	driver_phone  TEXT NOT NULL DEFAULT '',
	capacity      INT NOT NULL DEFAULT 0,
	cur_lat       DOUBLE PRECISION NOT NULL,
	cur_lon       DOUBLE PRECISION NOT NULL,
	dest_lat      DOUBLE PRECISION NOT NULL,
	dest_lon      DOUBLE PRECISION NOT NULL,
	is_active     BOOLEAN NOT NULL DEFAULT TRUE,
	current_speed DOUBLE PRECISION NOT NULL DEFAULT 0,
	last_updated  TIMESTAMPTZ NOT NULL DEFAULT now(),
	inserted_seq  BIGINT GENERATED ALWAYS AS IDENTITY
);
CREATE TABLE IF NOT EXISTS routes (
	route_name TEXT NOT NULL,
	area       TEXT NOT NULL,
	stops      JSONB NOT NULL DEFAULT '[]'
);`
	_, err := s.db.ExecContext(ctx, ddl)
	return err
}

const busColumns = `bus_number, route, area, from_city, to_city, driver_name, driver_phone,
	capacity, cur_lat, cur_lon, dest_lat, dest_lon, is_active, current_speed, last_updated`

func scanBus(row interface{ Scan(...any) error }) (Bus, error) {
	var b Bus
	err := row.Scan(&b.BusNumber, &b.Route, &b.Area, &b.FromCity, &b.ToCity,
		&b.DriverName, &b.DriverPhone, &b.Capacity,
		&b.CurrentLocation.Latitude, &b.CurrentLocation.Longitude,
		&b.Destination.Latitude, &b.Destination.Longitude,
		&b.IsActive, &b.CurrentSpeed, &b.LastUpdated)
	return b, err
}

func (s *PGStore) Insert(ctx context.Context, b Bus) error {
	if b.LastUpdated.IsZero() {
		b.LastUpdated = s.now()
	}
	q := `INSERT INTO buses (` + busColumns + `)
	VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
	ON CONFLICT (bus_number) DO NOTHING`
	res, err := s.db.ExecContext(ctx, q, b.BusNumber, b.Route, b.Area, b.FromCity, b.ToCity,
		b.DriverName, b.DriverPhone, b.Capacity,
		b.CurrentLocation.Latitude, b.CurrentLocation.Longitude,
		b.Destination.Latitude, b.Destination.Longitude,
		b.IsActive, b.CurrentSpeed, b.LastUpdated)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrDuplicateBus
	}
	return nil
}

func (s *PGStore) listBuses(ctx context.Context, where string, args ...any) ([]Bus, error) {
	q := `SELECT ` + busColumns + ` FROM buses ` + where + ` ORDER BY inserted_seq`
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Bus
	for rows.Next() {
		b, err := scanBus(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (s *PGStore) ListActive(ctx context.Context) ([]Bus, error) {
	return s.listBuses(ctx, `WHERE is_active`)
}

func (s *PGStore) ListActiveByArea(ctx context.Context, area string) ([]Bus, error) {
	return s.listBuses(ctx, `WHERE is_active AND area = $1`, area)
}

func (s *PGStore) GetByNumber(ctx context.Context, busNumber string) (Bus, error) {
	q := `SELECT ` + busColumns + ` FROM buses WHERE bus_number = $1`
	b, err := scanBus(s.db.QueryRowContext(ctx, q, busNumber))
	if errors.Is(err, sql.ErrNoRows) {
		return Bus{}, ErrBusNotFound
	}
	return b, err
}

func (s *PGStore) distinct(ctx context.Context, column string) ([]string, error) {
	// column is one of two fixed identifiers, never caller input
	q := `SELECT DISTINCT ` + column + ` FROM buses WHERE ` + column + ` <> '' ORDER BY 1`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (s *PGStore) Areas(ctx context.Context) ([]string, error) {
	return s.distinct(ctx, "area")
}

func (s *PGStore) FromCities(ctx context.Context) ([]string, error) {
	return s.distinct(ctx, "from_city")
}

func (s *PGStore) UpdateLocation(ctx context.Context, busNumber string, pos Position) (Bus, error) {
	q := `UPDATE buses
	SET cur_lat = $2, cur_lon = $3,
	    current_speed = COALESCE($4::double precision, current_speed),
	    last_updated = $5
	WHERE bus_number = $1
	RETURNING ` + busColumns
	var speed sql.NullFloat64
	if pos.SpeedKMH != nil {
		speed = sql.NullFloat64{Float64: *pos.SpeedKMH, Valid: true}
	}
	b, err := scanBus(s.db.QueryRowContext(ctx, q, busNumber,
		pos.Location.Latitude, pos.Location.Longitude, speed, s.now()))
	if errors.Is(err, sql.ErrNoRows) {
		return Bus{}, ErrBusNotFound
	}
	return b, err
}

func (s *PGStore) SetActive(ctx context.Context, busNumber string, active bool) (Bus, error) {
	q := `UPDATE buses SET is_active = $2 WHERE bus_number = $1 RETURNING ` + busColumns
	b, err := scanBus(s.db.QueryRowContext(ctx, q, busNumber, active))
	if errors.Is(err, sql.ErrNoRows) {
		return Bus{}, ErrBusNotFound
	}
	return b, err
}

func (s *PGStore) InsertRoute(ctx context.Context, r Route) error {
	stops, err := json.Marshal(r.Stops)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO routes (route_name, area, stops) VALUES ($1, $2, $3)`,
		r.RouteName, r.Area, stops)
	return err
}

func (s *PGStore) listRoutes(ctx context.Context, where string, args ...any) ([]Route, error) {
	q := `SELECT route_name, area, stops FROM routes ` + where + ` ORDER BY route_name`
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Route
	for rows.Next() {
		var r Route
		var stops []byte
		if err := rows.Scan(&r.RouteName, &r.Area, &stops); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(stops, &r.Stops); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *PGStore) Routes(ctx context.Context) ([]Route, error) {
	return s.listRoutes(ctx, ``)
}

func (s *PGStore) RoutesByArea(ctx context.Context, area string) ([]Route, error) {
	return s.listRoutes(ctx, `WHERE area = $1`, area)
}

func (s *PGStore) ReplaceFleet(ctx context.Context, buses []Bus, routes []Route) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	if _, err := tx.ExecContext(ctx, `DELETE FROM buses`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM routes`); err != nil {
		return err
	}
	q := `INSERT INTO buses (` + busColumns + `)
	VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)`
	for _, b := range buses {
		if b.LastUpdated.IsZero() {
			b.LastUpdated = s.now()
		}
		if _, err := tx.ExecContext(ctx, q, b.BusNumber, b.Route, b.Area, b.FromCity, b.ToCity,
			b.DriverName, b.DriverPhone, b.Capacity,
			b.CurrentLocation.Latitude, b.CurrentLocation.Longitude,
			b.Destination.Latitude, b.Destination.Longitude,
			b.IsActive, b.CurrentSpeed, b.LastUpdated); err != nil {
			return err
		}
	}
	for _, r := range routes {
		stops, err := json.Marshal(r.Stops)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO routes (route_name, area, stops) VALUES ($1, $2, $3)`,
			r.RouteName, r.Area, stops); err != nil {
			return err
		}
	}
	return tx.Commit()
}
