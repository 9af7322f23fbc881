package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v4"

	"taphoa/models"
)

// slotName is the single row key the snapshot lives under.
const slotName = "retail_app_data"

// PgStore keeps the snapshot in a single Postgres row, upserted on every
// save. Used when DATABASE_URL is set.
type PgStore struct {
	conn *pgx.Conn
}

func OpenPgStore(ctx context.Context, databaseURL string) (*PgStore, error) {
	conn, err := pgx.Connect(ctx, databaseURL)
	if err != nil {
		return nil, err
	}

	_, err = conn.Exec(ctx, `
        CREATE TABLE IF NOT EXISTS app_state (
            slot       TEXT PRIMARY KEY,
            data       JSONB NOT NULL,
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`)
	if err != nil {
		conn.Close(ctx)
		return nil, err
	}

	return &PgStore{conn: conn}, nil
}

func (s *PgStore) Load(ctx context.Context) (models.Snapshot, bool, error) {
	var snap models.Snapshot
	var raw []byte

	err := s.conn.QueryRow(ctx,
		`SELECT data FROM app_state WHERE slot = $1`, slotName,
	).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return snap, false, nil
	}
	if err != nil {
		return snap, false, err
	}

	if err := json.Unmarshal(raw, &snap); err != nil {
		return models.Snapshot{}, false, nil
	}
	return snap, true, nil
}

func (s *PgStore) Save(ctx context.Context, snap models.Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	_, err = s.conn.Exec(ctx, `
        INSERT INTO app_state (slot, data, updated_at)
        VALUES ($1, $2, NOW())
        ON CONFLICT (slot) DO UPDATE
        SET data = EXCLUDED.data,
            updated_at = NOW()`,
		slotName, raw,
	)
	return err
}

func (s *PgStore) Close(ctx context.Context) error {
	return s.conn.Close(ctx)
}
