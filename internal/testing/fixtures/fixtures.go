// Package fixtures provides test data factories for acceptance testing.
//
// Each factory method creates entities with sensible defaults while allowing
// customization via option functions. Factories insert through the
// repository layer and return fully populated models.
//
// Usage:
//
//	f := fixtures.New(tdb.Store)
//	host := f.CreateHost(t)
//	retreat := f.CreateRetreat(t, func(o *fixtures.RetreatOpts) {
//	    o.HostName = host.Name
//	})
package fixtures

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/sanctuaryofnature/api/internal/database"
	"github.com/sanctuaryofnature/api/internal/model"
	"github.com/sanctuaryofnature/api/internal/repository"
)

// Factory creates test entities in the document store
type Factory struct {
	hosts     *repository.HostRepository
	locations *repository.LocationRepository
	retreats  *repository.RetreatRepository
	messages  *repository.MessageRepository
}

// New creates a new fixture factory
func New(store database.Store) *Factory {
	return &Factory{
		hosts:     repository.NewHostRepository(store),
		locations: repository.NewLocationRepository(store),
		retreats:  repository.NewRetreatRepository(store),
		messages:  repository.NewMessageRepository(store),
	}
}

// randomID generates a random hex ID
func randomID() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// ctx returns a context with timeout
func ctx() context.Context {
	c, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	// Store cancel to prevent leak warning
	_ = cancel
	return c
}

// ============================================================================
// Host Fixtures
// ============================================================================

// HostOpts customizes host creation
type HostOpts struct {
	Name        string
	Bio         string
	Specialties []string
}

// CreateHost creates a host with optional customizations
func (f *Factory) CreateHost(t *testing.T, opts ...func(*HostOpts)) *model.Host {
	t.Helper()

	o := &HostOpts{
		Name:        fmt.Sprintf("Host %s", randomID()),
		Bio:         "Holds space for quiet mornings and long silences.",
		Specialties: []string{"meditation", "breathwork"},
	}
	for _, fn := range opts {
		fn(o)
	}

	host := &model.Host{
		Name:        o.Name,
		Bio:         &o.Bio,
		Specialties: o.Specialties,
	}

	if err := f.hosts.Create(ctx(), host); err != nil {
		t.Fatalf("fixtures: failed to create host: %v", err)
	}
	return host
}

// ============================================================================
// Location Fixtures
// ============================================================================

// LocationOpts customizes location creation
type LocationOpts struct {
	Title      string
	Region     string
	NatureType string
}

// CreateLocation creates a location with optional customizations
func (f *Factory) CreateLocation(t *testing.T, opts ...func(*LocationOpts)) *model.Location {
	t.Helper()

	o := &LocationOpts{
		Title:      fmt.Sprintf("Sanctuary %s", randomID()),
		Region:     "Pacific Northwest",
		NatureType: model.NatureForest,
	}
	for _, fn := range opts {
		fn(o)
	}

	loc := &model.Location{
		Title:      o.Title,
		Region:     o.Region,
		NatureType: o.NatureType,
	}

	if err := f.locations.Create(ctx(), loc); err != nil {
		t.Fatalf("fixtures: failed to create location: %v", err)
	}
	return loc
}

// ============================================================================
// Retreat Fixtures
// ============================================================================

// RetreatOpts customizes retreat creation
type RetreatOpts struct {
	Title         string
	HostName      string
	LocationTitle string
	NatureType    string
	Focus         []string
	DurationDays  int
	PriceUSD      float64
}

// CreateRetreat creates a retreat with optional customizations. Host and
// location references are symbolic names; they do not need to exist.
func (f *Factory) CreateRetreat(t *testing.T, opts ...func(*RetreatOpts)) *model.Retreat {
	t.Helper()

	suffix := randomID()
	o := &RetreatOpts{
		Title:         fmt.Sprintf("Retreat %s", suffix),
		HostName:      fmt.Sprintf("Host %s", suffix),
		LocationTitle: fmt.Sprintf("Sanctuary %s", suffix),
		NatureType:    model.NatureForest,
		Focus:         []string{"meditation"},
		DurationDays:  5,
		PriceUSD:      450,
	}
	for _, fn := range opts {
		fn(o)
	}

	retreat := &model.Retreat{
		Title:         o.Title,
		HostName:      o.HostName,
		LocationTitle: o.LocationTitle,
		NatureType:    o.NatureType,
		Focus:         o.Focus,
		DurationDays:  o.DurationDays,
		PriceUSD:      o.PriceUSD,
	}

	if err := f.retreats.Create(ctx(), retreat); err != nil {
		t.Fatalf("fixtures: failed to create retreat: %v", err)
	}
	return retreat
}

// ============================================================================
// Message Fixtures
// ============================================================================

// MessageOpts customizes message creation
type MessageOpts struct {
	Author  string
	Content string
	Topic   string
}

// CreateMessage creates a community message with optional customizations
func (f *Factory) CreateMessage(t *testing.T, opts ...func(*MessageOpts)) *model.Message {
	t.Helper()

	o := &MessageOpts{
		Author:  fmt.Sprintf("seeker_%s", randomID()),
		Content: "Looking for a quiet week near water.",
		Topic:   model.TopicGeneral,
	}
	for _, fn := range opts {
		fn(o)
	}

	msg := &model.Message{
		Author:  o.Author,
		Content: o.Content,
	}
	if o.Topic != "" {
		msg.Topic = &o.Topic
	}

	if err := f.messages.Create(ctx(), msg); err != nil {
		t.Fatalf("fixtures: failed to create message: %v", err)
	}
	return msg
}
