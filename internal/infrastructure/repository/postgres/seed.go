package postgres

import (
	"context"
	"fmt"
	"sync"

	"github.com/jmoiron/sqlx"
	"github.com/panjf2000/ants/v2"

	"github.com/neocamp/partidas-futebol/internal/infrastructure/repository/memory"
)

const seedWorkerCount = 4

// BootstrapSeed loads the demo clubs and stadiums when the database is
// empty. Rows are keyed by id with ON CONFLICT DO NOTHING, so rerunning
// the seed is safe.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM clubs`); err != nil {
		return fmt.Errorf("count clubs for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	type seedRow struct {
		query string
		args  map[string]any
		label string
	}

	rows := make([]seedRow, 0)
	for _, c := range memory.SeedClubs() {
		rows = append(rows, seedRow{
			query: `
INSERT INTO clubs (id, name, state, founded_on, active)
VALUES (:id, :name, :state, :founded_on, :active)
ON CONFLICT (id) DO NOTHING`,
			args: map[string]any{
				"id":         c.ID,
				"name":       c.Name,
				"state":      c.State,
				"founded_on": c.FoundedOn,
				"active":     c.Active,
			},
			label: fmt.Sprintf("club %s", c.Name),
		})
	}
	for _, s := range memory.SeedStadiums() {
		rows = append(rows, seedRow{
			query: `
INSERT INTO stadiums (id, name)
VALUES (:id, :name)
ON CONFLICT (id) DO NOTHING`,
			args:  map[string]any{"id": s.ID, "name": s.Name},
			label: fmt.Sprintf("stadium %s", s.Name),
		})
	}

	pool, err := ants.NewPool(seedWorkerCount)
	if err != nil {
		return fmt.Errorf("create seed worker pool: %w", err)
	}
	defer pool.Release()

	errs := make(chan error, len(rows))
	var workers sync.WaitGroup
	for _, row := range rows {
		row := row
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			sqlQuery, args, err := sqlx.Named(row.query, row.args)
			if err != nil {
				errs <- fmt.Errorf("bind seed %s query: %w", row.label, err)
				return
			}
			sqlQuery = db.Rebind(sqlQuery)
			if _, err := db.ExecContext(ctx, sqlQuery, args...); err != nil {
				errs <- fmt.Errorf("seed %s: %w", row.label, err)
			}
		}); err != nil {
			workers.Done()
			return fmt.Errorf("submit seed row to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(errs)
	for err := range errs {
		return err
	}

	// Seeded rows carry explicit ids, so the sequences must catch up.
	for _, table := range []string{"clubs", "stadiums"} {
		bump := fmt.Sprintf(
			`SELECT setval(pg_get_serial_sequence('%s', 'id'), (SELECT COALESCE(MAX(id), 1) FROM %s))`,
			table, table,
		)
		if _, err := db.ExecContext(ctx, bump); err != nil {
			return fmt.Errorf("advance %s id sequence: %w", table, err)
		}
	}

	return nil
}
