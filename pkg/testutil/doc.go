// Package testutil provides utilities for testing game components.
//
// Fixtures build cards and containers from card names so tests can
// state their setup inline, and the assertion helpers cover the
// comparisons the standard assertion library does not, such as
// order-insensitive slice equality.
//
// All test data should be defined inline, not in external files, and
// each test should be completely isolated with no shared state.
package testutil
