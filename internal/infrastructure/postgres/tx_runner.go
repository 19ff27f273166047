package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dgm-logistikk/frakt-api/internal/application/usecase"
	"github.com/dgm-logistikk/frakt-api/internal/domain/repository"
)

// Ensure TxRunner implements usecase.CompanyTxRunner.
var _ usecase.CompanyTxRunner = (*TxRunner)(nil)

// TxRunner executes callbacks inside one PostgreSQL transaction. Used for the
// two-document company writes (register: insert company + point user at it;
// reject: delete company + clear the pointer) so partial states cannot be
// observed.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner builds the runner over the pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run begins a transaction, executes fn with repos bound to it, and commits
// or rolls back.
func (r *TxRunner) Run(ctx context.Context, fn func(
	companyRepo repository.CompanyRepository,
	userRepo repository.UserRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	companyRepo := NewCompanyRepository(tx)
	userRepo := NewUserRepository(tx)

	if err := fn(companyRepo, userRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
