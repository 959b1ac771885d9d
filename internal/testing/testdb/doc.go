// Package testdb provides test document-store utilities for the Sanctuary API.
//
// The testdb package manages store connections for acceptance tests with
// automatic namespace setup and cleanup.
//
// # Environment Gating
//
// Tests are skipped unless a real SurrealDB endpoint is configured:
//
//	TEST_DATABASE_URL      - endpoint, e.g. ws://localhost:8000/rpc
//	TEST_DATABASE_USER     - username (default: root)
//	TEST_DATABASE_PASSWORD - password (default: root)
//
// Start a disposable instance with:
//
//	surreal start memory -A --user root --pass root
//
// # Isolation
//
// Each test gets an isolated namespace:
//
//	func TestA(t *testing.T) {
//	    tdb := testdb.New(t) // namespace: test_1700000000_1
//	    defer tdb.Close()
//	}
//
// Close removes the namespace, so runs leave nothing behind.
//
// # Timeout Context
//
// Use tdb.Ctx() for store operations; it carries a 10 second timeout.
package testdb
