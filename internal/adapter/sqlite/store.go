// Package sqlite persists widget placements and their string preferences.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/couchcryptid/weather-presenter/internal/domain"
	"github.com/couchcryptid/weather-presenter/internal/settings"

	_ "modernc.org/sqlite" // SQLite driver.
)

// ErrWidgetNotFound is returned when no widget has the requested id.
var ErrWidgetNotFound = errors.New("widget not found")

// Store wraps SQLite access for widget settings.
// It implements pipeline.WidgetSource.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create settings dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open settings db: %w", err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate settings db: %w", err)
	}
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS widgets (
			id TEXT PRIMARY KEY,
			location_id TEXT NOT NULL,
			kind TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS widget_prefs (
			widget_id TEXT NOT NULL,
			key TEXT NOT NULL,
			value TEXT NOT NULL,
			PRIMARY KEY (widget_id, key)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_widgets_location_id ON widgets(location_id);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// UpsertWidget stores w, replacing any previous placement and preferences
// with the same id.
func (s *Store) UpsertWidget(ctx context.Context, w settings.Widget) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("upsert widget %s: %w", w.ID, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	kind := w.Kind
	if kind == "" {
		kind = domain.SurfaceWidget
	}
	if _, err = tx.ExecContext(ctx,
		`INSERT INTO widgets (id, location_id, kind) VALUES (?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET location_id = excluded.location_id, kind = excluded.kind`,
		w.ID, w.LocationID, string(kind),
	); err != nil {
		return fmt.Errorf("upsert widget %s: %w", w.ID, err)
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM widget_prefs WHERE widget_id = ?`, w.ID); err != nil {
		return fmt.Errorf("upsert widget %s: clear prefs: %w", w.ID, err)
	}
	for key, value := range w.Prefs {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO widget_prefs (widget_id, key, value) VALUES (?, ?, ?)`,
			w.ID, key, value,
		); err != nil {
			return fmt.Errorf("upsert widget %s: pref %s: %w", w.ID, key, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("upsert widget %s: commit: %w", w.ID, err)
	}
	return nil
}

// SetPref writes a single preference for an existing widget.
func (s *Store) SetPref(ctx context.Context, widgetID, key, value string) error {
	if _, err := s.Widget(ctx, widgetID); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO widget_prefs (widget_id, key, value) VALUES (?, ?, ?)
		 ON CONFLICT(widget_id, key) DO UPDATE SET value = excluded.value`,
		widgetID, key, value,
	); err != nil {
		return fmt.Errorf("set pref %s for widget %s: %w", key, widgetID, err)
	}
	return nil
}

// DeleteWidget removes a widget and its preferences.
func (s *Store) DeleteWidget(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM widgets WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete widget %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete widget %s: %w", id, err)
	}
	if n == 0 {
		return ErrWidgetNotFound
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM widget_prefs WHERE widget_id = ?`, id); err != nil {
		return fmt.Errorf("delete widget %s: prefs: %w", id, err)
	}
	return nil
}

// Widget returns one widget with its preferences.
func (s *Store) Widget(ctx context.Context, id string) (settings.Widget, error) {
	widgets, err := s.query(ctx, `w.id = ?`, id)
	if err != nil {
		return settings.Widget{}, fmt.Errorf("get widget %s: %w", id, err)
	}
	if len(widgets) == 0 {
		return settings.Widget{}, ErrWidgetNotFound
	}
	return widgets[0], nil
}

// WidgetsForLocation returns every widget bound to locationID, ordered by id.
func (s *Store) WidgetsForLocation(ctx context.Context, locationID string) ([]settings.Widget, error) {
	widgets, err := s.query(ctx, `w.location_id = ?`, locationID)
	if err != nil {
		return nil, fmt.Errorf("widgets for location %s: %w", locationID, err)
	}
	return widgets, nil
}

// query loads widgets matching where, folding their preference rows in.
func (s *Store) query(ctx context.Context, where string, arg any) ([]settings.Widget, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT w.id, w.location_id, w.kind, p.key, p.value
		 FROM widgets w
		 LEFT JOIN widget_prefs p ON p.widget_id = w.id
		 WHERE `+where+`
		 ORDER BY w.id, p.key`, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var widgets []settings.Widget
	for rows.Next() {
		var (
			id, locationID, kind string
			key, value           sql.NullString
		)
		if err := rows.Scan(&id, &locationID, &kind, &key, &value); err != nil {
			return nil, err
		}
		if n := len(widgets); n == 0 || widgets[n-1].ID != id {
			widgets = append(widgets, settings.Widget{
				ID:         id,
				Kind:       domain.SurfaceKind(kind),
				LocationID: locationID,
				Prefs:      map[string]string{},
			})
		}
		if key.Valid {
			widgets[len(widgets)-1].Prefs[key.String] = value.String
		}
	}
	return widgets, rows.Err()
}
