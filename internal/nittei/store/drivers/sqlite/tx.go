package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/nittei/internal/nittei/store"
)

type txStore struct {
	tx *sql.Tx
}

func newTx(tx *sql.Tx) *txStore {
	return &txStore{tx: tx}
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

// Close is a no-op; the outer store owns the database handle.
func (t *txStore) Close() error { return nil }

func (t *txStore) Ping(ctx context.Context) error { return nil }

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

func (t *txStore) Events() store.Events             { return &eventsRepo{db: t.tx} }
func (t *txStore) Slots() store.Slots               { return &slotsRepo{db: t.tx} }
func (t *txStore) Participants() store.Participants { return &participantsRepo{db: t.tx} }
func (t *txStore) Votes() store.Votes               { return &votesRepo{db: t.tx} }
func (t *txStore) Decisions() store.Decisions       { return &decisionsRepo{db: t.tx} }
func (t *txStore) RateLimits() store.RateLimits     { return &rateLimitsRepo{db: t.tx} }

func (t *txStore) ApplyMigrations() error { return nil }
