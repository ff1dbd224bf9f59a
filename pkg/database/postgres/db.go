package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type ctxTxKey struct{}
type ctxTxIsolationKey struct{}

var (
	ErrAlreadyInTx = errors.New("already executing in existing db tx")
	ErrNotInTx     = errors.New("not executing in existing db tx")
)

// ExecuteTxWithinCtx executes a DB transaction scoped to a call to fn. The
// transaction travels with the context, so store methods invoked inside fn
// join it via ExecuteInTx. Commit or rollback happens when fn returns.
func ExecuteTxWithinCtx(ctx context.Context, db *sqlx.DB, isolation sql.IsolationLevel, fn func(context.Context) error) error {
	if isolation == sql.LevelDefault {
		isolation = sql.LevelReadCommitted // Postgres default
	}

	if ctx.Value(ctxTxKey{}) != nil {
		return ErrAlreadyInTx
	}

	tx, err := db.BeginTxx(ctx, &sql.TxOptions{
		Isolation: isolation,
	})
	if err != nil {
		return err
	}

	ctx = context.WithValue(ctx, ctxTxKey{}, tx)
	ctx = context.WithValue(ctx, ctxTxIsolationKey{}, isolation)

	if err := fn(ctx); err != nil {
		// Rollback() must always run so sql.DB releases the connection.
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return fmt.Errorf("failed to rollback transaction: %w", rollbackErr)
		}
		return err
	}
	return tx.Commit()
}

// ExecuteInTx runs fn within the scope of a DB transaction. If the context
// already carries one from ExecuteTxWithinCtx, fn joins it and the outer
// caller owns commit/rollback. Otherwise a new transaction is started and
// resolved here.
func ExecuteInTx(ctx context.Context, db *sqlx.DB, isolation sql.IsolationLevel, fn func(tx *sqlx.Tx) error) (err error) {
	if isolation == sql.LevelDefault {
		isolation = sql.LevelReadCommitted // Postgres default
	}

	tx, err := txFromCtx(ctx, isolation)
	if err != nil && err != ErrNotInTx {
		return err
	}

	var startedNewTx bool
	if err == ErrNotInTx {
		startedNewTx = true
		tx, err = db.BeginTxx(ctx, &sql.TxOptions{
			Isolation: isolation,
		})
		if err != nil {
			return err
		}
	}

	if err := fn(tx); err != nil {
		if startedNewTx {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				return fmt.Errorf("failed to rollback transaction: %w", rollbackErr)
			}
		}
		return err
	}
	if startedNewTx {
		return tx.Commit()
	}
	return nil
}

func txFromCtx(ctx context.Context, desiredIsolation sql.IsolationLevel) (*sqlx.Tx, error) {
	txValue := ctx.Value(ctxTxKey{})
	if txValue == nil {
		return nil, ErrNotInTx
	}

	tx, ok := txValue.(*sqlx.Tx)
	if !ok {
		return nil, errors.New("invalid type for tx")
	}

	isolationValue := ctx.Value(ctxTxIsolationKey{})
	if isolationValue == nil {
		return nil, errors.New("unexpectedly don't have isolation level set")
	}

	currentIsolation, ok := isolationValue.(sql.IsolationLevel)
	if !ok {
		return nil, errors.New("invalid type for isolation")
	}

	if currentIsolation < desiredIsolation {
		return nil, errors.New("current tx doesn't meet isolation level requirements")
	}

	return tx, nil
}
