// Package domain contains the core entities of the VDP scanner: the domain
// records read from a DotGov listing, the outcome of checking a single domain
// for a published Vulnerability Disclosure Policy, and the per-agency tallies
// derived from those outcomes. These types are free of infrastructure
// concerns so they can be shared across packages.
package domain
