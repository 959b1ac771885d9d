// Package testdb provides an isolated document-store environment for
// acceptance testing.
//
// Tests that use this package run real queries against a real SurrealDB
// instance. Each TestDB gets its own namespace so tests never see each
// other's documents. When TEST_DATABASE_URL is not set the calling test is
// skipped, keeping the unit suite runnable without infrastructure.
//
// Usage:
//
//	func TestSomething(t *testing.T) {
//	    tdb := testdb.New(t)
//	    defer tdb.Close()
//
//	    id, err := tdb.Store.CreateDocument(tdb.Ctx(), "host", doc)
//	}
package testdb

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/surrealdb/surrealdb.go"

	"github.com/sanctuaryofnature/api/internal/database"
)

// TestDB provides an isolated document-store environment for testing.
// Each instance gets a unique namespace to ensure test isolation.
type TestDB struct {
	Store     *database.SurrealStore
	Namespace string
	Database  string

	raw *surrealdb.DB
	t   *testing.T
}

var (
	// counterMu protects the namespace counter
	counterMu sync.Mutex
	counter   int64
)

// getTestConfig returns store config from environment. The empty URL return
// means the environment has no test database and callers should skip.
func getTestConfig() database.Config {
	url := os.Getenv("TEST_DATABASE_URL")

	user := os.Getenv("TEST_DATABASE_USER")
	if user == "" {
		user = "root"
	}

	password := os.Getenv("TEST_DATABASE_PASSWORD")
	if password == "" {
		password = "root"
	}

	return database.Config{
		URL:      url,
		User:     user,
		Password: password,
	}
}

// uniqueNamespace generates a unique namespace for test isolation
func uniqueNamespace() string {
	counterMu.Lock()
	defer counterMu.Unlock()
	counter++
	return fmt.Sprintf("test_%d_%d", time.Now().UnixNano(), counter)
}

// New creates an isolated test store in a fresh namespace. The calling test
// is skipped when TEST_DATABASE_URL is not set.
// Call Close() when done to remove the namespace.
func New(t *testing.T) *TestDB {
	t.Helper()

	cfg := getTestConfig()
	if cfg.URL == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping store-backed test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg.Namespace = uniqueNamespace()
	cfg.Database = "test"

	store := database.NewSurrealStore(cfg)
	if err := store.Connect(ctx); err != nil {
		t.Fatalf("testdb: failed to connect: %v", err)
	}

	// A second raw connection handles namespace cleanup; the Store interface
	// deliberately has no query escape hatch.
	raw, err := surrealdb.FromEndpointURLString(ctx, cfg.URL)
	if err != nil {
		_ = store.Close()
		t.Fatalf("testdb: failed to open admin connection: %v", err)
	}
	if _, err := raw.SignIn(ctx, &surrealdb.Auth{
		Username: cfg.User,
		Password: cfg.Password,
	}); err != nil {
		_ = raw.Close(ctx)
		_ = store.Close()
		t.Fatalf("testdb: admin signin failed: %v", err)
	}

	return &TestDB{
		Store:     store,
		Namespace: cfg.Namespace,
		Database:  cfg.Database,
		raw:       raw,
		t:         t,
	}
}

// Close removes the test namespace and shuts both connections down.
func (tdb *TestDB) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if tdb.raw != nil {
		// Ignore errors on cleanup
		query := fmt.Sprintf("REMOVE NAMESPACE `%s`", tdb.Namespace)
		_, _ = surrealdb.Query[interface{}](ctx, tdb.raw, query, nil)
		_ = tdb.raw.Close(ctx)
	}

	if tdb.Store != nil {
		_ = tdb.Store.Close()
	}
}

// Ctx returns a context with a reasonable timeout for test operations.
// Note: The cancel function is intentionally not returned as tests should
// complete within the timeout and the context will be garbage collected.
func (tdb *TestDB) Ctx() context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	_ = cancel
	return ctx
}
