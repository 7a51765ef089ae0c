package model

// EntityKind discriminates the three catalog entity types.
type EntityKind string

const (
	KindCompartment EntityKind = "compartment"
	KindReaction    EntityKind = "reaction"
	KindMetabolite  EntityKind = "metabolite"
)

// Entity is implemented by all catalog record types.
type Entity interface {
	// EntityID returns the canonical MetaNetX identifier.
	EntityID() string
	// Kind returns the entity kind.
	Kind() EntityKind
}

// Annotation maps a MIRIAM namespace to the external identifiers registered
// for an entity. Values keep source-file order and may repeat.
type Annotation map[string][]string

// Add appends an identifier under the given namespace.
func (a Annotation) Add(namespace, identifier string) {
	a[namespace] = append(a[namespace], identifier)
}

// EquationTerm is one stoichiometry term of a reaction equation. Coefficient
// is negative for substrates and positive for products; zero never occurs in
// a parsed equation.
type EquationTerm struct {
	MetaboliteID  string  `json:"metabolite_id"`
	CompartmentID string  `json:"compartment_id"`
	Coefficient   float64 `json:"coefficient"`
}

// Compartment is a cellular compartment record.
type Compartment struct {
	ID         string     `json:"mnx_id"`
	Name       string     `json:"name,omitempty"`
	Xref       string     `json:"xref,omitempty"`
	Annotation Annotation `json:"annotation"`
}

// EntityID implements Entity.
func (c *Compartment) EntityID() string { return c.ID }

// Kind implements Entity.
func (c *Compartment) Kind() EntityKind { return KindCompartment }

// Metabolite is a chemical species record.
type Metabolite struct {
	ID         string     `json:"mnx_id"`
	Name       string     `json:"name,omitempty"`
	Formula    string     `json:"formula,omitempty"`
	Annotation Annotation `json:"annotation"`
}

// EntityID implements Entity.
func (m *Metabolite) EntityID() string { return m.ID }

// Kind implements Entity.
func (m *Metabolite) Kind() EntityKind { return KindMetabolite }

// Reaction is a biochemical reaction record.
//
// Terms hold the parsed stoichiometry of Equation. The referenced metabolite
// and compartment IDs are expected to resolve against the catalog, but a
// reaction is kept even when a reference turns out to be missing; consumers
// dereference defensively at query time.
type Reaction struct {
	ID         string         `json:"mnx_id"`
	Name       string         `json:"name,omitempty"`
	EC         string         `json:"ec,omitempty"`
	Equation   string         `json:"equation"`
	Terms      []EquationTerm `json:"equation_parsed"`
	Annotation Annotation     `json:"annotation"`
}

// EntityID implements Entity.
func (r *Reaction) EntityID() string { return r.ID }

// Kind implements Entity.
func (r *Reaction) Kind() EntityKind { return KindReaction }
