package services

import (
	"fmt"
	"strings"
	"testing"

	"asset_ops_server/internal/db"

	"github.com/stretchr/testify/require"
)

// setupTestDB opens a fresh in-memory database for one test. The DSN is
// derived from the test name so parallel packages never share state.
func setupTestDB(t *testing.T) {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	require.NoError(t, db.InitializeSQLite(dsn))
}
