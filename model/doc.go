// Package model defines the core catalog types shared across the module.
//
// # Entities
//
//   - Compartment: a cellular compartment (e.g. cytosol)
//   - Metabolite: a chemical species
//   - Reaction: a biochemical reaction with parsed stoichiometry
//
// All three implement Entity and are immutable once ingestion has completed.
//
// # Cross-references
//
// Annotation maps a MIRIAM namespace to the external identifiers known for an
// entity, in source-file order. Duplicates are preserved because multiple
// source rows may repeat the same reference.
package model
