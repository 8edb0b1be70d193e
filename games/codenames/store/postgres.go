/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Seednode/codenames/games/codenames"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const createGamesTable = `
CREATE TABLE IF NOT EXISTS codenames_games (
	id         TEXT PRIMARY KEY,
	snapshot   JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// Postgres stores snapshots as JSONB rows in codenames_games.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres connects to url and creates the games table if needed.
func NewPostgres(ctx context.Context, url string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	if _, err := pool.Exec(ctx, createGamesTable); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create games table: %w", err)
	}

	return &Postgres{pool: pool}, nil
}

func (p *Postgres) Close() error {
	p.pool.Close()
	return nil
}

func (p *Postgres) Get(ctx context.Context, id string) (*codenames.Game, error) {
	var data []byte
	err := p.pool.QueryRow(ctx, `SELECT snapshot FROM codenames_games WHERE id = $1`, id).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read game from postgres: %w", err)
	}

	return decode(data)
}

func (p *Postgres) Set(ctx context.Context, id string, g *codenames.Game) error {
	data, err := encode(g)
	if err != nil {
		return err
	}

	_, err = p.pool.Exec(ctx, `
		INSERT INTO codenames_games (id, snapshot, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (id) DO UPDATE SET snapshot = EXCLUDED.snapshot, updated_at = now()`,
		id, data)
	if err != nil {
		return fmt.Errorf("failed to write game to postgres: %w", err)
	}

	return nil
}

func (p *Postgres) Delete(ctx context.Context, id string) error {
	if _, err := p.pool.Exec(ctx, `DELETE FROM codenames_games WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete game from postgres: %w", err)
	}

	return nil
}

// Stale lists the games that have not been written for longer than idle.
func (p *Postgres) Stale(ctx context.Context, idle time.Duration) ([]string, error) {
	rows, err := p.pool.Query(ctx, `SELECT id FROM codenames_games WHERE updated_at < $1`, time.Now().Add(-idle))
	if err != nil {
		return nil, fmt.Errorf("failed to list stale games: %w", err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to list stale games: %w", err)
	}

	return ids, nil
}

func (p *Postgres) DeleteStale(ctx context.Context, id string, idle time.Duration) (bool, error) {
	tag, err := p.pool.Exec(ctx, `DELETE FROM codenames_games WHERE id = $1 AND updated_at < $2`, id, time.Now().Add(-idle))
	if err != nil {
		return false, fmt.Errorf("failed to reap game: %w", err)
	}

	return tag.RowsAffected() == 1, nil
}
