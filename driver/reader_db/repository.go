package reader_db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBPool is the subset of pgxpool.Pool the repository uses. pgxmock's pool
// interface satisfies it, which is what the driver tests rely on.
type DBPool interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ReaderDBRepository owns all durable article storage access. Every exported
// method is one atomic save: either a single statement or a single
// transaction.
type ReaderDBRepository struct {
	pool DBPool
}

func NewReaderDBRepository(pool *pgxpool.Pool) *ReaderDBRepository {
	return &ReaderDBRepository{pool: pool}
}

// NewReaderDBRepositoryWithPool wires an arbitrary pool implementation,
// used by tests to substitute pgxmock.
func NewReaderDBRepositoryWithPool(pool DBPool) *ReaderDBRepository {
	return &ReaderDBRepository{pool: pool}
}
