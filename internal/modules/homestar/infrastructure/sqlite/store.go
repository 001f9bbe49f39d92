// Package sqlite provides a SQLite-backed home storage implementation.
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/sglre6355/homestar/internal/modules/homestar/domain"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schema string

// HomeStore persists player homes in SQLite.
type HomeStore struct {
	sqlDB *sql.DB
	now   func() time.Time
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

// Open opens a SQLite home store and creates its schema.
func Open(path string) (*HomeStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := "file:" + cleanPath +
		"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &HomeStore{sqlDB: sqlDB, now: time.Now}, nil
}

// Close closes the SQLite handle.
func (s *HomeStore) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Get returns the player's home, or domain.ErrHomeNotFound.
func (s *HomeStore) Get(ctx context.Context, id domain.PlayerID) (domain.Location, error) {
	if err := ctx.Err(); err != nil {
		return domain.Location{}, err
	}

	var (
		home    domain.Location
		x, y, z float64
	)
	err := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT world, x, y, z, yaw, pitch FROM homes WHERE player_id = ?`,
		id.String(),
	).Scan(&home.World, &x, &y, &z, &home.Yaw, &home.Pitch)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Location{}, domain.ErrHomeNotFound
	}
	if err != nil {
		return domain.Location{}, fmt.Errorf("get home: %w", err)
	}
	home.Position = mgl64.Vec3{x, y, z}
	return home, nil
}

// Save records the player's home, replacing any previous one.
func (s *HomeStore) Save(ctx context.Context, id domain.PlayerID, home domain.Location) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(home.World) == "" {
		return fmt.Errorf("world is required")
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO homes (player_id, world, x, y, z, yaw, pitch, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(player_id) DO UPDATE SET
		   world = excluded.world,
		   x = excluded.x,
		   y = excluded.y,
		   z = excluded.z,
		   yaw = excluded.yaw,
		   pitch = excluded.pitch,
		   updated_at = excluded.updated_at`,
		id.String(),
		home.World,
		home.Position.X(),
		home.Position.Y(),
		home.Position.Z(),
		home.Yaw,
		home.Pitch,
		toMillis(s.now()),
	)
	if err != nil {
		return fmt.Errorf("save home: %w", err)
	}
	return nil
}

// Delete forgets the player's home.
func (s *HomeStore) Delete(ctx context.Context, id domain.PlayerID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM homes WHERE player_id = ?`, id.String()); err != nil {
		return fmt.Errorf("delete home: %w", err)
	}
	return nil
}

// Ensure HomeStore implements HomeRepository.
var _ domain.HomeRepository = (*HomeStore)(nil)
