package tx

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

type TxRepository interface {
	BeginTx(ctx context.Context) (*sqlx.Tx, error)
	CommitTx(tx *sqlx.Tx) error
	RollbackTx(tx *sqlx.Tx) error
}

type txRepo struct {
	db *sqlx.DB
}

func NewTxRepository(db *sqlx.DB) TxRepository {
	return &txRepo{db: db}
}

// BeginTx opens the unit of work a single service call runs in.
func (r *txRepo) BeginTx(ctx context.Context) (*sqlx.Tx, error) {
	return r.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
}

func (r *txRepo) CommitTx(tx *sqlx.Tx) error {
	return tx.Commit()
}

func (r *txRepo) RollbackTx(tx *sqlx.Tx) error {
	err := tx.Rollback()
	if err == sql.ErrTxDone {
		return nil
	}
	return err
}

// WithinTx runs fn in a transaction from r, committing when fn succeeds and rolling
// back otherwise.
func WithinTx(ctx context.Context, r TxRepository, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.BeginTx(ctx)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = r.RollbackTx(tx)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}
	if err := r.CommitTx(tx); err != nil {
		return err
	}
	committed = true
	return nil
}
