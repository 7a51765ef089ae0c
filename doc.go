// Package metanetx loads the MetaNetX biochemical reference dataset into an
// in-memory catalog and serves exact-key and ranked fuzzy lookups against it.
//
// # Quick Start
//
//	ctx := context.Background()
//	catalog, err := metanetx.Open(ctx, source.NewDir("./data"))
//	if err != nil {
//	    // a missing or undecodable source table is fatal
//	}
//
//	// Exact lookup by canonical ID, name, EC number or external reference.
//	entity, ok := catalog.Lookup("MNXR100024")
//
//	// Ranked free-text search.
//	reactions := catalog.SearchReactions("atp synthase")
//	metabolites := catalog.SearchMetabolites("glucose")
//
// Ingestion runs once, single-threaded, before any queries. The catalog is
// immutable afterwards and safe for concurrent readers without locking; it is
// rebuilt from the source tables on every process start (there is no
// persistence layer).
//
// Source tables are read through the source.Opener interface; see the source
// package for local-directory and object-store implementations.
package metanetx
