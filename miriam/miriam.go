// Package miriam reconciles MetaNetX cross-reference namespaces with the
// MIRIAM registry.
//
// MetaNetX source files label external references with informal namespace
// tokens ("bigg", "kegg", "slm", ...) that do not line up with the stable
// MIRIAM namespaces used elsewhere. Normalize maps each (kind, namespace,
// identifier) triple onto its MIRIAM equivalent, including the identifier
// rewrites some schemes require (CHEBI:/SLM: prefixes) and the per-identifier
// split of the KEGG metabolite namespace.
package miriam

import (
	"fmt"

	"github.com/dd-decaf/metanetx/model"
)

// UnknownNamespaceError reports a source namespace with no known MIRIAM
// mapping for the given entity kind.
type UnknownNamespaceError struct {
	Kind       model.EntityKind
	Namespace  string
	Identifier string
}

func (e *UnknownNamespaceError) Error() string {
	return fmt.Sprintf("no MIRIAM mapping for %s namespace %q (identifier %q)", e.Kind, e.Namespace, e.Identifier)
}

var compartmentNamespaces = map[string]string{
	"bigg": "bigg.compartment",
	"cco":  "cco",
	"go":   "go",
	"name": "name", // unconfirmed
	"seed": "seed",
}

var reactionNamespaces = map[string]string{
	"bigg":       "bigg.reaction",
	"deprecated": "metanetx.reaction",
	"kegg":       "kegg.reaction",
	"metacyc":    "metacyc.reaction",
	"reactome":   "reactome",
	"rhea":       "rhea",
	"sabiork":    "sabiork.reaction",
	"seed":       "seed.reaction",
}

var metaboliteNamespaces = map[string]string{
	"bigg":       "bigg.metabolite",
	"deprecated": "metanetx.chemical",
	"envipath":   "envipath", // unconfirmed
	"hmdb":       "hmdb",
	"lipidmaps":  "lipidmaps",
	"metacyc":    "metacyc.compound",
	"reactome":   "reactome",
	"sabiork":    "sabiork.compound",
	"seed":       "seed.compound",
}

// KEGG metabolite identifiers encode their sub-database in the first letter.
var keggMetabolites = map[byte]string{
	'C': "kegg.compound",
	'D': "kegg.drug",
	'E': "kegg.environ",
	'G': "kegg.glycan",
}

// Normalize maps a source (namespace, identifier) pair onto its canonical
// MIRIAM form for the given entity kind.
//
// Normalize is a pure lookup; it returns an *UnknownNamespaceError when the
// namespace (or, for KEGG metabolites, the identifier prefix) is not
// recognized.
func Normalize(kind model.EntityKind, namespace, identifier string) (string, string, error) {
	switch kind {
	case model.KindCompartment:
		if canonical, ok := compartmentNamespaces[namespace]; ok {
			return canonical, identifier, nil
		}
	case model.KindReaction:
		if canonical, ok := reactionNamespaces[namespace]; ok {
			return canonical, identifier, nil
		}
	case model.KindMetabolite:
		switch namespace {
		case "kegg":
			if len(identifier) > 0 {
				if canonical, ok := keggMetabolites[identifier[0]]; ok {
					return canonical, identifier, nil
				}
			}
		case "slm":
			return "swisslipid", "SLM:" + identifier, nil
		case "chebi":
			return "chebi", "CHEBI:" + identifier, nil
		default:
			if canonical, ok := metaboliteNamespaces[namespace]; ok {
				return canonical, identifier, nil
			}
		}
	}
	return "", "", &UnknownNamespaceError{Kind: kind, Namespace: namespace, Identifier: identifier}
}
