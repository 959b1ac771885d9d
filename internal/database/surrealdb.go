package database

import (
	"context"
	"fmt"
	"sort"

	"github.com/surrealdb/surrealdb.go"
	"github.com/surrealdb/surrealdb.go/pkg/models"
)

// SurrealStore implements the Store interface for SurrealDB
type SurrealStore struct {
	db     *surrealdb.DB
	config Config
}

// NewSurrealStore creates a new SurrealStore. The store starts disconnected;
// call Connect before use, or leave it disconnected to run in degraded mode.
func NewSurrealStore(cfg Config) *SurrealStore {
	return &SurrealStore{
		config: cfg,
	}
}

// Connect establishes a connection to SurrealDB
func (s *SurrealStore) Connect(ctx context.Context) error {
	if s.config.URL == "" {
		return fmt.Errorf("%w: no connection string configured", ErrUnavailable)
	}

	db, err := surrealdb.FromEndpointURLString(ctx, s.config.URL)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	// Sign in as root user
	_, err = db.SignIn(ctx, &surrealdb.Auth{
		Username: s.config.User,
		Password: s.config.Password,
	})
	if err != nil {
		_ = db.Close(ctx)
		return fmt.Errorf("%w: signin failed: %v", ErrUnavailable, err)
	}

	// Use namespace and database
	if err := db.Use(ctx, s.config.Namespace, s.config.Database); err != nil {
		_ = db.Close(ctx)
		return fmt.Errorf("%w: use failed: %v", ErrUnavailable, err)
	}

	s.db = db
	return nil
}

// Close closes the store connection
func (s *SurrealStore) Close() error {
	if s.db != nil {
		err := s.db.Close(context.Background())
		s.db = nil
		return err
	}
	return nil
}

// Ping checks the store connection
func (s *SurrealStore) Ping(ctx context.Context) error {
	if s.db == nil {
		return fmt.Errorf("%w: store is not connected", ErrUnavailable)
	}
	if _, err := s.db.Version(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// CreateDocument inserts one document and returns its id as a plain string
func (s *SurrealStore) CreateDocument(ctx context.Context, collection string, data map[string]interface{}) (string, error) {
	if s.db == nil {
		return "", fmt.Errorf("%w: store is not connected", ErrUnavailable)
	}
	if !identPattern.MatchString(collection) {
		return "", fmt.Errorf("%w: unsafe collection name %q", ErrInvalidFilter, collection)
	}

	result, err := s.queryFirst(ctx, ErrWrite,
		"CREATE type::table($tb) CONTENT $data",
		map[string]interface{}{"tb": collection, "data": data})
	if err != nil {
		return "", err
	}

	rows := asRows(result)
	if len(rows) == 0 {
		return "", fmt.Errorf("%w: no record returned for %s", ErrWrite, collection)
	}
	doc, ok := rows[0].(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("%w: unexpected record shape for %s", ErrWrite, collection)
	}

	id := recordIDString(doc["id"])
	if id == "" {
		return "", fmt.Errorf("%w: created record has no id", ErrWrite)
	}
	return id, nil
}

// GetDocuments returns documents matching every filter condition
func (s *SurrealStore) GetDocuments(ctx context.Context, collection string, filter Filter, limit int) ([]Document, error) {
	if s.db == nil {
		return nil, fmt.Errorf("%w: store is not connected", ErrUnavailable)
	}
	if !identPattern.MatchString(collection) {
		return nil, fmt.Errorf("%w: unsafe collection name %q", ErrInvalidFilter, collection)
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	vars := map[string]interface{}{"tb": collection, "limit": limit}
	query := "SELECT * FROM type::table($tb)"
	where, err := renderWhere(filter, vars)
	if err != nil {
		return nil, err
	}
	if where != "" {
		query += " WHERE " + where
	}
	query += " LIMIT $limit"

	result, err := s.queryFirst(ctx, ErrRead, query, vars)
	if err != nil {
		return nil, err
	}

	rows := asRows(result)
	docs := make([]Document, 0, len(rows))
	for _, row := range rows {
		m, ok := row.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("%w: unexpected record shape in %s", ErrRead, collection)
		}
		doc := Document(m)
		// Rewrite the store-internal id into a plain string field.
		if id := recordIDString(doc["id"]); id != "" {
			doc["id"] = id
		}
		docs = append(docs, doc)
	}

	return docs, nil
}

// ListCollections returns up to limit existing collection names, sorted
func (s *SurrealStore) ListCollections(ctx context.Context, limit int) ([]string, error) {
	if s.db == nil {
		return nil, fmt.Errorf("%w: store is not connected", ErrUnavailable)
	}

	result, err := s.queryFirst(ctx, ErrRead, "INFO FOR DB", nil)
	if err != nil {
		return nil, err
	}

	info, ok := result.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: unexpected INFO FOR DB shape", ErrRead)
	}
	tables, ok := info["tables"].(map[string]interface{})
	if !ok {
		return []string{}, nil
	}

	names := make([]string, 0, len(tables))
	for name := range tables {
		names = append(names, name)
	}
	sort.Strings(names)

	if limit > 0 && len(names) > limit {
		names = names[:limit]
	}
	return names, nil
}

// queryFirst runs a query and returns the first statement's raw result.
// Failures are wrapped with the given sentinel so callers stay on the
// read/write error taxonomy.
func (s *SurrealStore) queryFirst(ctx context.Context, sentinel error, query string, vars map[string]interface{}) (interface{}, error) {
	results, err := surrealdb.Query[interface{}](ctx, s.db, query, vars)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", sentinel, err)
	}
	if results == nil || len(*results) == 0 {
		return nil, fmt.Errorf("%w: empty response", sentinel)
	}

	first := (*results)[0]
	if first.Status != "OK" {
		if first.Error != nil {
			return nil, fmt.Errorf("%w: %s", sentinel, first.Error.Message)
		}
		return nil, fmt.Errorf("%w: statement status %s", sentinel, first.Status)
	}

	return first.Result, nil
}

// asRows normalizes a statement result into a row slice. SELECT and CREATE
// return arrays; a bare object becomes a single row.
func asRows(result interface{}) []interface{} {
	switch v := result.(type) {
	case nil:
		return nil
	case []interface{}:
		return v
	default:
		return []interface{}{v}
	}
}

// recordIDString converts a SurrealDB record id into its string form
func recordIDString(id interface{}) string {
	switch v := id.(type) {
	case string:
		return v
	case models.RecordID:
		return v.String()
	case *models.RecordID:
		if v != nil {
			return v.String()
		}
	}
	return ""
}
