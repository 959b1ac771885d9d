// Package fixtures provides test data factories for the Sanctuary API.
//
// The fixtures package contains factory functions for creating test data
// with sensible defaults and optional customization.
//
// # Factory Pattern
//
// Create a factory over a document store:
//
//	f := fixtures.New(tdb.Store)
//
// # Creating Test Data
//
// Factory methods create domain entities:
//
//	host := f.CreateHost(t)         // Default host
//	loc := f.CreateLocation(t)      // Default forest sanctuary
//	retreat := f.CreateRetreat(t)   // 5 days, 450 USD
//	msg := f.CreateMessage(t)       // General board message
//
// # Customization
//
// Use option functions for customization:
//
//	loc := f.CreateLocation(t, func(o *fixtures.LocationOpts) {
//	    o.NatureType = "desert"
//	    o.Region = "Sonoran Desert"
//	})
//
// # Random Data
//
// Unique names are generated automatically:
//
//	host1 := f.CreateHost(t) // Host ab12cd34...
//	host2 := f.CreateHost(t) // Host ef56ab78...
//
// # Cleanup
//
// Test data is cleaned up when the test namespace is closed.
package fixtures
