// Package category models the category mapping attached to a design:
// for every atom name, the concrete part-role memberships available to it.
//
//	promoter:
//	  promoter: [pJ23100, pJ23106]
//	gene:
//	  cds: [gfp, rfp]
//
// A Map never drives the product construction itself. Combination strategies
// consult it to decide whether two atoms name "the same slot" and write the
// surviving category information for the combined design.
//
// Member sets are kept in sorted gods tree sets so that Roles, Members and
// the YAML/JSON encodings are deterministic.
//
// Nil handling: a nil *Entry behaves as an empty entry, and Map.Get returns an
// empty entry for atoms without categories.
package category
