package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/pharmadmin/internal/dbx"
	"github.com/dmitrijs2005/pharmadmin/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX (connection or
// transaction) and exposes a schema migration hook.
type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
}
