package migrate

import (
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readMigration(t *testing.T, suffix string) string {
	t.Helper()
	matches, err := fs.Glob(Migrations, Dir+"/*_"+suffix+".sql")
	require.NoError(t, err)
	require.Len(t, matches, 1, "migración %s", suffix)
	b, err := fs.ReadFile(Migrations, matches[0])
	require.NoError(t, err)
	return string(b)
}

func TestValidate_Embebidas(t *testing.T) {
	assert.NoError(t, Validate())
}

func TestValidateFS_Errores(t *testing.T) {
	ok := "-- +goose Up\nSELECT 1;\n-- +goose Down\nSELECT 1;\n"
	tests := []struct {
		name  string
		files fstest.MapFS
		want  string
	}{
		{"nombre inválido", fstest.MapFS{"create.sql": {Data: []byte(ok)}}, "invalid migration filename"},
		{"versión duplicada", fstest.MapFS{
			"20240101000001_a.sql": {Data: []byte(ok)},
			"20240101000001_b.sql": {Data: []byte(ok)},
		}, "duplicate migration version"},
		{"sin down", fstest.MapFS{"20240101000001_a.sql": {Data: []byte("-- +goose Up\nSELECT 1;")}}, "missing \"-- +goose Down\""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFS(tt.files)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestInventoryMigrationContainsConstraints(t *testing.T) {
	content := readMigration(t, "create_inventory")
	for _, sub := range []string{
		"CREATE TABLE IF NOT EXISTS product_inventory",
		"CREATE TABLE IF NOT EXISTS raw_material_inventory",
		"FOREIGN KEY (product_id) REFERENCES products(id) ON DELETE RESTRICT",
		"FOREIGN KEY (raw_material_id) REFERENCES raw_materials(id) ON DELETE RESTRICT",
		"CHECK (total_stock >= 0)",
		"CHECK (quantity >= 0)",
		"WHERE NOT retired",
		"DROP TABLE IF EXISTS product_inventory",
	} {
		assert.True(t, strings.Contains(content, sub), "falta %q", sub)
	}
}

func TestLedgerMigrationContainsConstraints(t *testing.T) {
	content := readMigration(t, "create_ledger")
	for _, sub := range []string{
		"CHECK (quantity_change <> 0)",
		"stock_change_id BIGINT NOT NULL UNIQUE",
		"CHECK (btrim(reason) <> '')",
		"CREATE INDEX IF NOT EXISTS stock_changes_date_idx ON stock_changes (date DESC, id DESC)",
		"DROP TABLE IF EXISTS stock_changes",
	} {
		assert.True(t, strings.Contains(content, sub), "falta %q", sub)
	}
}

func TestFinanceMigrationContainsConstraints(t *testing.T) {
	content := readMigration(t, "create_finance")
	for _, sub := range []string{
		"CREATE TABLE IF NOT EXISTS sales",
		"CREATE TABLE IF NOT EXISTS expenses",
		"NUMERIC(12,2) NOT NULL",
		"CHECK (amount > 0)",
	} {
		assert.True(t, strings.Contains(content, sub), "falta %q", sub)
	}
}

func TestUsersMigrationSeedsLogTypes(t *testing.T) {
	content := readMigration(t, "create_users")
	for _, code := range []string{"login", "logout", "sale_recorded", "expense_recorded", "catalog_created", "catalog_deleted", "threshold_set"} {
		assert.Contains(t, content, "('"+code+"')")
	}
}
