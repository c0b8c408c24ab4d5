package db

import (
	"context"
	"os"

	"github.com/jackc/pgx/v5"
)

// Migrate applies the schema file. Statements are written to be idempotent
// (CREATE TABLE IF NOT EXISTS), so running on every boot is safe.
func (db *DB) Migrate(ctx context.Context, schemaPath string) error {
	schema, err := os.ReadFile(schemaPath)
	if err != nil {
		return err
	}
	// Schema files hold multiple statements, which the extended protocol
	// rejects. Run them through the simple protocol instead.
	_, err = db.pool.Exec(ctx, string(schema), pgx.QueryExecModeSimpleProtocol)
	return err
}
