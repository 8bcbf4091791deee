package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/wizards/internal/data"
)

// EffectRepository manages effect_definitions table.
type EffectRepository struct {
	db *pgxpool.Pool
}

// NewEffectRepository creates a new EffectRepository.
func NewEffectRepository(db *pgxpool.Pool) *EffectRepository {
	return &EffectRepository{db: db}
}

// Upsert inserts or replaces the definition stored under entry.Name.
func (r *EffectRepository) Upsert(ctx context.Context, entry data.EffectEntry) error {
	spec := data.SpecFromEntry(entry)
	query := `
		INSERT INTO effect_definitions (name, attribute, operation, modification, layer, duration_ms)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (name)
		DO UPDATE SET attribute = $2, operation = $3, modification = $4, layer = $5, duration_ms = $6
	`

	if _, err := r.db.Exec(ctx, query,
		spec.Name, spec.Attribute, spec.Operation, spec.Modification, spec.Layer, spec.Duration.Milliseconds(),
	); err != nil {
		return fmt.Errorf("upserting effect %q: %w", entry.Name, err)
	}
	return nil
}

// ImportCatalog upserts every catalog entry in one transaction.
func (r *EffectRepository) ImportCatalog(ctx context.Context, catalog *data.EffectCatalog) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	batch := &pgx.Batch{}
	for _, entry := range catalog.Entries() {
		spec := data.SpecFromEntry(entry)
		batch.Queue(`
			INSERT INTO effect_definitions (name, attribute, operation, modification, layer, duration_ms)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (name)
			DO UPDATE SET attribute = $2, operation = $3, modification = $4, layer = $5, duration_ms = $6`,
			spec.Name, spec.Attribute, spec.Operation, spec.Modification, spec.Layer, spec.Duration.Milliseconds(),
		)
	}

	br := tx.SendBatch(ctx, batch)
	for range batch.Len() {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return fmt.Errorf("importing effects: %w", err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("closing batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing effects: %w", err)
	}

	slog.Info("imported effect catalog", "count", catalog.Len())
	return nil
}

// Delete removes the definition stored under name.
// Returns false if nothing was stored.
func (r *EffectRepository) Delete(ctx context.Context, name string) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM effect_definitions WHERE name = $1`, name)
	if err != nil {
		return false, fmt.Errorf("deleting effect %q: %w", name, err)
	}
	return tag.RowsAffected() > 0, nil
}

// LoadCatalog reads every stored definition into a catalog.
// Rows are validated exactly like YAML content.
func (r *EffectRepository) LoadCatalog(ctx context.Context) (*data.EffectCatalog, error) {
	query := `
		SELECT name, attribute, operation, modification, layer, duration_ms
		FROM effect_definitions
		ORDER BY created_at, name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying effects: %w", err)
	}
	defer rows.Close()

	catalog := data.NewEffectCatalog()
	for rows.Next() {
		var (
			spec       data.EffectSpec
			durationMS int64
		)
		if err := rows.Scan(&spec.Name, &spec.Attribute, &spec.Operation, &spec.Modification, &spec.Layer, &durationMS); err != nil {
			return nil, fmt.Errorf("scanning effect row: %w", err)
		}
		spec.Duration = time.Duration(durationMS) * time.Millisecond

		entry, err := spec.Entry()
		if err != nil {
			return nil, fmt.Errorf("loading effects: %w", err)
		}
		if err := catalog.Add(entry); err != nil {
			return nil, fmt.Errorf("loading effects: %w", err)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating effect rows: %w", err)
	}

	slog.Info("loaded effect catalog from database", "count", catalog.Len())
	return catalog, nil
}
