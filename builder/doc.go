// SPDX-License-Identifier: MIT
//
// Package builder provides deterministic, labeled test fixtures for
// the rpq and cfpq packages: the "two cycles sharing a vertex"
// topology family plus a matching CFG fixture for the Hellings/matrix
// CFPQ equivalence tests.
//
// Fixtures compose as Constructors applied in order by BuildGraph,
// configured through functional BuilderOptions (see api.go and
// options.go), so a test
// can build unusual topologies by stacking constructors without the
// package having to anticipate them.
package builder
