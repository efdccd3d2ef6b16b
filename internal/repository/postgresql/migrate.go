package postgresql

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/clockwise-hq/attendance-backend-go/internal/pkg/database"
)

//go:embed schema.sql
var schema string

// Migrate applies the idempotent schema. Intended for development and test
// environments; production deployments run the schema out of band.
func Migrate(ctx context.Context, db *database.DB) error {
	if _, err := db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
