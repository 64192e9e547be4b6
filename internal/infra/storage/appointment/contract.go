package appointment

import (
	"context"
	"database/sql"

	"github.com/ecrodrig/SLN-AgendaService/pkg/dbmetrics"
)

// Executor interfaces reused from dbmetrics so the repository works both
// over the instrumented wrapper and a bare *sql.DB.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// TxBeginner opens transactions. Satisfied by *sql.DB and *dbmetrics.DB.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error)
}
