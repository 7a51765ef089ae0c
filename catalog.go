package metanetx

import (
	"github.com/dd-decaf/metanetx/model"
)

// Catalog holds the fully ingested MetaNetX dataset: the record store, the
// exact-key index and the ingestion statistics.
//
// A Catalog is built once by Open and never mutated afterwards, so all query
// methods are safe for concurrent use without locking.
type Catalog struct {
	compartments map[string]*model.Compartment
	reactions    map[string]*model.Reaction
	metabolites  map[string]*model.Metabolite

	// Insertion-ordered views over the maps. Search iterates these so that
	// ranking ties resolve deterministically to source-file order.
	compartmentOrder []*model.Compartment
	reactionOrder    []*model.Reaction
	metaboliteOrder  []*model.Metabolite

	keys  keyIndex
	stats Stats

	log     *Logger
	metrics MetricsCollector
}

// Stats reports how ingestion went. Dropped rows are expected and bounded;
// they are telemetry, not failures.
type Stats struct {
	Compartments int
	Reactions    int
	Metabolites  int

	ReactionNames int

	CompartmentXrefs int
	ReactionXrefs    int
	MetaboliteXrefs  int

	// FilteredReactions counts reaction rows dropped because their equation
	// did not parse (typically the "(n)" inexact-stoichiometry marker).
	FilteredReactions int
	// SkippedXrefs counts cross-reference rows carrying free text instead of
	// a "namespace:identifier" pair.
	SkippedXrefs int
	// UnknownNamespaces counts cross-reference rows dropped because their
	// namespace has no MIRIAM mapping.
	UnknownNamespaces int
	// DanglingXrefs counts cross-reference rows pointing at entities that
	// are not in the catalog (filtered reactions, deprecated IDs).
	DanglingXrefs int
}

func newCatalog(o *options) *Catalog {
	return &Catalog{
		compartments: make(map[string]*model.Compartment),
		reactions:    make(map[string]*model.Reaction),
		metabolites:  make(map[string]*model.Metabolite),
		keys:         make(keyIndex),
		log:          o.logger,
		metrics:      o.metrics,
	}
}

func (c *Catalog) addCompartment(comp *model.Compartment) {
	c.compartments[comp.ID] = comp
	c.compartmentOrder = append(c.compartmentOrder, comp)
	c.keys.add(comp.ID, comp)
}

func (c *Catalog) addReaction(r *model.Reaction) {
	c.reactions[r.ID] = r
	c.reactionOrder = append(c.reactionOrder, r)
	c.keys.add(r.ID, r)
	c.keys.add(r.Name, r)
	c.keys.add(r.EC, r)
}

func (c *Catalog) addMetabolite(m *model.Metabolite) {
	c.metabolites[m.ID] = m
	c.metaboliteOrder = append(c.metaboliteOrder, m)
	c.keys.add(m.ID, m)
	c.keys.add(m.Name, m)
}

// Stats returns the ingestion statistics.
func (c *Catalog) Stats() Stats { return c.stats }

// Compartment returns the compartment with the given canonical ID.
func (c *Catalog) Compartment(id string) (*model.Compartment, bool) {
	comp, ok := c.compartments[id]
	return comp, ok
}

// Reaction returns the reaction with the given canonical ID.
func (c *Catalog) Reaction(id string) (*model.Reaction, bool) {
	r, ok := c.reactions[id]
	return r, ok
}

// Metabolite returns the metabolite with the given canonical ID.
func (c *Catalog) Metabolite(id string) (*model.Metabolite, bool) {
	m, ok := c.metabolites[id]
	return m, ok
}

// Lookup retrieves the entity owning the given key: a canonical ID, display
// name, EC number or external reference, matched case-insensitively. The
// boolean result is the not-found marker; Lookup never fails otherwise.
func (c *Catalog) Lookup(key string) (model.Entity, bool) {
	e, ok := c.keys.lookup(key)
	c.metrics.RecordLookup(ok)
	return e, ok
}

// BatchLookup resolves an ordered list of keys positionally. The result
// always has the same length as keys; slots for unknown keys are nil, so
// callers can zip results back to their query list.
func (c *Catalog) BatchLookup(keys []string) []model.Entity {
	results := make([]model.Entity, len(keys))
	for i, key := range keys {
		if e, ok := c.Lookup(key); ok {
			results[i] = e
		}
	}
	return results
}

// ReactionDetail bundles a reaction with the compartments and metabolites its
// equation references.
type ReactionDetail struct {
	Reaction     *model.Reaction      `json:"reaction"`
	Metabolites  []*model.Metabolite  `json:"metabolites"`
	Compartments []*model.Compartment `json:"compartments"`
}

// Describe dereferences every equation term of r against the record store.
// References that do not resolve are skipped: the dataset occasionally points
// at IDs that were filtered or never existed, and that must not break
// queries. Duplicates are collapsed, first-seen order is kept.
func (c *Catalog) Describe(r *model.Reaction) ReactionDetail {
	detail := ReactionDetail{
		Reaction:     r,
		Metabolites:  []*model.Metabolite{},
		Compartments: []*model.Compartment{},
	}
	seenMetabolites := make(map[string]bool, len(r.Terms))
	seenCompartments := make(map[string]bool, len(r.Terms))
	for _, term := range r.Terms {
		if !seenMetabolites[term.MetaboliteID] {
			seenMetabolites[term.MetaboliteID] = true
			if m, ok := c.metabolites[term.MetaboliteID]; ok {
				detail.Metabolites = append(detail.Metabolites, m)
			}
		}
		if !seenCompartments[term.CompartmentID] {
			seenCompartments[term.CompartmentID] = true
			if comp, ok := c.compartments[term.CompartmentID]; ok {
				detail.Compartments = append(detail.Compartments, comp)
			}
		}
	}
	return detail
}
