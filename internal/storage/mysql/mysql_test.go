package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"decor-golang/internal/config"
	"decor-golang/internal/storage"
)

var testDB *sql.DB

// TestMain connects to the database named by DECOR_TEST_DSN. Without it the
// database tests are skipped and only the pure helpers run.
func TestMain(m *testing.M) {
	dsn := os.Getenv("DECOR_TEST_DSN")
	if dsn != "" {
		var err error
		testDB, err = sql.Open("mysql", dsn)
		if err != nil {
			panic(fmt.Errorf("open test db: %w", err))
		}
		if err := testDB.Ping(); err != nil {
			panic(fmt.Errorf("ping failed: %w", err))
		}
	}

	code := m.Run()

	if testDB != nil {
		testDB.Close()
	}
	os.Exit(code)
}

func requireDB(t *testing.T) *Storage {
	t.Helper()
	if testDB == nil {
		t.Skip("DECOR_TEST_DSN is not set")
	}
	return NewWithDB(testDB)
}

func TestDSN(t *testing.T) {
	dsn := DSN(config.DB{
		DBUser:     "decor",
		DBPassword: "secret",
		DBHost:     "db.internal",
		DBPort:     3307,
		DBName:     "orders",
		ParseTime:  true,
	})

	cfg, err := mysql.ParseDSN(dsn)
	require.NoError(t, err)
	assert.Equal(t, "decor", cfg.User)
	assert.Equal(t, "secret", cfg.Passwd)
	assert.Equal(t, "tcp", cfg.Net)
	assert.Equal(t, "db.internal:3307", cfg.Addr)
	assert.Equal(t, "orders", cfg.DBName)
	assert.True(t, cfg.ParseTime)
	assert.True(t, cfg.ClientFoundRows)
}

func TestMapError(t *testing.T) {
	assert.ErrorIs(t, mapError(sql.ErrNoRows), storage.ErrNotFound)
	assert.ErrorIs(t, mapError(&mysql.MySQLError{Number: errDuplicateEntry}), storage.ErrExists)
	assert.ErrorIs(t, mapError(fmt.Errorf("insert: %w", &mysql.MySQLError{Number: errNoReferencedRow})), storage.ErrNotFound)

	other := errors.New("connection refused")
	assert.Equal(t, other, mapError(other))
}

func cleanupTestDB(t *testing.T) {
	tables := []string{"decoration_upcharges", "decoration_techniques", "decoration_placements", "line_items", "company_users"}
	for _, table := range tables {
		_, err := testDB.Exec("DELETE FROM " + table)
		require.NoError(t, err)
	}
}

func TestStorage_HasCompanyAccess(t *testing.T) {
	s := requireDB(t)
	cleanupTestDB(t)
	t.Cleanup(func() { cleanupTestDB(t) })

	_, err := testDB.Exec(`INSERT INTO company_users (user_id, company_id, role) VALUES
		('u-member', 'c-1', 'member'), ('u-owner', 'c-9', 'owner')`)
	require.NoError(t, err)

	ctx := context.Background()

	ok, err := s.HasCompanyAccess(ctx, "u-member", "c-1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.HasCompanyAccess(ctx, "u-member", "c-2")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = s.HasCompanyAccess(ctx, "u-owner", "c-2")
	require.NoError(t, err)
	assert.True(t, ok)
}
