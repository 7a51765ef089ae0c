package miriam

import (
	"testing"

	"github.com/dd-decaf/metanetx/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Run("Compartment", func(t *testing.T) {
		namespace, identifier, err := Normalize(model.KindCompartment, "bigg", "c")
		require.NoError(t, err)
		assert.Equal(t, "bigg.compartment", namespace)
		assert.Equal(t, "c", identifier)
	})

	t.Run("Reaction", func(t *testing.T) {
		for source, want := range map[string]string{
			"bigg":       "bigg.reaction",
			"deprecated": "metanetx.reaction",
			"kegg":       "kegg.reaction",
			"sabiork":    "sabiork.reaction",
		} {
			namespace, identifier, err := Normalize(model.KindReaction, source, "R00001")
			require.NoError(t, err)
			assert.Equal(t, want, namespace)
			assert.Equal(t, "R00001", identifier)
		}
	})

	t.Run("KeggMetaboliteBranches", func(t *testing.T) {
		for identifier, want := range map[string]string{
			"C00031": "kegg.compound",
			"D00001": "kegg.drug",
			"E00010": "kegg.environ",
			"G00001": "kegg.glycan",
		} {
			namespace, got, err := Normalize(model.KindMetabolite, "kegg", identifier)
			require.NoError(t, err)
			assert.Equal(t, want, namespace)
			assert.Equal(t, identifier, got)
		}
	})

	t.Run("KeggMetaboliteUnknownPrefix", func(t *testing.T) {
		_, _, err := Normalize(model.KindMetabolite, "kegg", "X00001")
		var unknown *UnknownNamespaceError
		require.ErrorAs(t, err, &unknown)

		_, _, err = Normalize(model.KindMetabolite, "kegg", "")
		require.ErrorAs(t, err, &unknown)
	})

	t.Run("ChebiPrefix", func(t *testing.T) {
		namespace, identifier, err := Normalize(model.KindMetabolite, "chebi", "15377")
		require.NoError(t, err)
		assert.Equal(t, "chebi", namespace)
		assert.Equal(t, "CHEBI:15377", identifier)
	})

	t.Run("SwissLipidPrefix", func(t *testing.T) {
		namespace, identifier, err := Normalize(model.KindMetabolite, "slm", "000000510")
		require.NoError(t, err)
		assert.Equal(t, "swisslipid", namespace)
		assert.Equal(t, "SLM:000000510", identifier)
	})

	t.Run("UnknownNamespace", func(t *testing.T) {
		_, _, err := Normalize(model.KindMetabolite, "bogus", "x")
		var unknown *UnknownNamespaceError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, "bogus", unknown.Namespace)
		assert.Equal(t, model.KindMetabolite, unknown.Kind)
	})

	t.Run("NamespaceValidForOtherKindOnly", func(t *testing.T) {
		// "rhea" is a reaction namespace; it must not normalize for
		// metabolites.
		_, _, err := Normalize(model.KindMetabolite, "rhea", "12345")
		var unknown *UnknownNamespaceError
		require.ErrorAs(t, err, &unknown)
	})
}
