// Package equation parses MetaNetX reaction equations into stoichiometry
// terms.
//
// The grammar is strict on purpose: a reaction with even one unparseable term
// is chemically unusable, so the whole equation is rejected rather than
// returning the terms that did match. The most common rejection in practice
// is the "(n)" marker MetaNetX uses for undetermined stoichiometry.
package equation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/dd-decaf/metanetx/model"
)

// Term shape: "<coefficient> <metabolite>@<compartment>" with a non-negative
// decimal coefficient.
var termPattern = regexp.MustCompile(`^(\d+(?:\.\d+)?) (\w+)@(\w+)$`)

// MalformedError reports an equation that does not match the grammar.
//
// Term carries the first offending term when the failure is term-level; it is
// empty when the equation as a whole has the wrong shape.
type MalformedError struct {
	Equation string
	Term     string
}

func (e *MalformedError) Error() string {
	if e.Term != "" {
		return fmt.Sprintf("malformed equation %q: bad term %q", e.Equation, e.Term)
	}
	return fmt.Sprintf("malformed equation %q", e.Equation)
}

// Parse splits an equation into its stoichiometry terms, substrates first.
// Substrate coefficients are negated, product coefficients stay positive, and
// input order is preserved.
//
// Parse is pure: it performs no I/O and holds no state.
func Parse(text string) ([]model.EquationTerm, error) {
	sides := strings.Split(text, " = ")
	if len(sides) != 2 {
		return nil, &MalformedError{Equation: text}
	}

	terms, err := parseSide(text, sides[0], -1)
	if err != nil {
		return nil, err
	}
	products, err := parseSide(text, sides[1], 1)
	if err != nil {
		return nil, err
	}
	return append(terms, products...), nil
}

func parseSide(equation, side string, sign float64) ([]model.EquationTerm, error) {
	raw := strings.Split(side, " + ")
	terms := make([]model.EquationTerm, 0, len(raw))
	for _, term := range raw {
		m := termPattern.FindStringSubmatch(term)
		if m == nil {
			return nil, &MalformedError{Equation: equation, Term: term}
		}
		coefficient, err := strconv.ParseFloat(m[1], 64)
		if err != nil || coefficient == 0 {
			return nil, &MalformedError{Equation: equation, Term: term}
		}
		terms = append(terms, model.EquationTerm{
			MetaboliteID:  m[2],
			CompartmentID: m[3],
			Coefficient:   sign * coefficient,
		})
	}
	return terms, nil
}
