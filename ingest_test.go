package metanetx

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd-decaf/metanetx/source"
)

// fixtureSource mirrors the shape of the published MetaNetX tables: one
// malformed reaction, one dangling reference per xref table, one free-text
// xref, one unknown namespace per xref table.
func fixtureSource() source.Map {
	return source.Map{
		TableReactionNames: `{"MNXR1": "Glyceraldehyde dehydrogenase"}`,
		TableCompartments: "# comment line\n" +
			"MNXC1\tcytosol\tGO:0005829\n" +
			"MNXC2\textracellular\tGO:0005576\n",
		TableCompartmentXref: "bigg:c\tMNXC1\tsecondary\n" +
			"go:GO:0005829\tMNXC1\tx\n" +
			"cytosol\tMNXC1\tx\n",
		TableReactions: "# id\tequation\tbalanced\tpathway\tec\tsource\n" +
			"MNXR1\t1 MNXM1@MNXC1 = 1 MNXM2@MNXC2\tbal\t.\t1.1.1.1\tx\n" +
			"MNXR2\t(n) MNXM1@MNXC1 = 1 MNXM2@MNXC2\tbal\t.\t2.2.2.2\tx\n" +
			"MNXR3\t1 MNXM404@MNXC1 = 1 MNXM1@MNXC1\tbal\t.\t\tx\n",
		TableReactionXref: "bigg:GAPD\tMNXR1\tx\n" +
			"rhea:12345\tMNXR2\tx\n" +
			"bogusns:zz\tMNXR1\tx\n" +
			"R00001\tMNXR1\tx\n",
		TableMetabolites: "MNXM1\talpha-D-glucose\tC6H12O6\t180\t0\tInChI=x\tkey\tSMILES\tsrc\n" +
			"MNXM2\twater\tH2O\t18\t0\tInChI=y\tkey\tSMILES\tsrc\n" +
			"MNXM3\twater\tH2O\t18\t0\tInChI=y\tkey\tSMILES\tsrc\n",
		TableMetaboliteXref: "chebi:15377\tMNXM2\tx\ty\n" +
			"kegg:C00031\tMNXM1\tx\ty\n" +
			"slm:000000510\tMNXM1\tx\ty\n" +
			"kegg:X999\tMNXM1\tx\ty\n" +
			"deprecated:MNXM99\tMNXM404\tx\ty\n",
	}
}

func openFixture(t *testing.T) *Catalog {
	t.Helper()
	catalog, err := Open(context.Background(), fixtureSource(), WithLogger(NoopLogger()))
	require.NoError(t, err)
	return catalog
}

func TestOpen(t *testing.T) {
	catalog := openFixture(t)
	stats := catalog.Stats()

	t.Run("EntityCounts", func(t *testing.T) {
		assert.Equal(t, 2, stats.Compartments)
		assert.Equal(t, 2, stats.Reactions)
		assert.Equal(t, 3, stats.Metabolites)
		assert.Equal(t, 1, stats.ReactionNames)
	})

	t.Run("FilteredPlusLoadedEqualsRows", func(t *testing.T) {
		// The reaction table has three non-comment rows.
		assert.Equal(t, 3, stats.Reactions+stats.FilteredReactions)
		assert.Equal(t, 1, stats.FilteredReactions)
	})

	t.Run("XrefCounts", func(t *testing.T) {
		assert.Equal(t, 2, stats.CompartmentXrefs)
		assert.Equal(t, 1, stats.ReactionXrefs)
		assert.Equal(t, 3, stats.MetaboliteXrefs)
		assert.Equal(t, 2, stats.SkippedXrefs)
		assert.Equal(t, 2, stats.UnknownNamespaces)
		assert.Equal(t, 2, stats.DanglingXrefs)
	})

	t.Run("ReactionConstruction", func(t *testing.T) {
		r, ok := catalog.Reaction("MNXR1")
		require.True(t, ok)
		assert.Equal(t, "Glyceraldehyde dehydrogenase", r.Name)
		assert.Equal(t, "1.1.1.1", r.EC)
		require.Len(t, r.Terms, 2)
		assert.Equal(t, float64(-1), r.Terms[0].Coefficient)
		assert.Equal(t, float64(1), r.Terms[1].Coefficient)

		// Name data is merged from the side table; MNXR3 has none.
		r3, ok := catalog.Reaction("MNXR3")
		require.True(t, ok)
		assert.Empty(t, r3.Name)
	})

	t.Run("MalformedReactionDropped", func(t *testing.T) {
		_, ok := catalog.Reaction("MNXR2")
		assert.False(t, ok)
	})

	t.Run("AnnotationsNormalized", func(t *testing.T) {
		water, ok := catalog.Metabolite("MNXM2")
		require.True(t, ok)
		assert.Equal(t, []string{"CHEBI:15377"}, water.Annotation["chebi"])

		glucose, ok := catalog.Metabolite("MNXM1")
		require.True(t, ok)
		assert.Equal(t, []string{"C00031"}, glucose.Annotation["kegg.compound"])
		assert.Equal(t, []string{"SLM:000000510"}, glucose.Annotation["swisslipid"])

		cytosol, ok := catalog.Compartment("MNXC1")
		require.True(t, ok)
		assert.Equal(t, []string{"c"}, cytosol.Annotation["bigg.compartment"])
		assert.Equal(t, []string{"GO:0005829"}, cytosol.Annotation["go"])

		gapd, ok := catalog.Reaction("MNXR1")
		require.True(t, ok)
		assert.Equal(t, []string{"GAPD"}, gapd.Annotation["bigg.reaction"])
	})

	t.Run("UniqueCanonicalIDs", func(t *testing.T) {
		assert.Len(t, catalog.reactions, len(catalog.reactionOrder))
		assert.Len(t, catalog.metabolites, len(catalog.metaboliteOrder))
		assert.Len(t, catalog.compartments, len(catalog.compartmentOrder))
	})
}

func TestOpenFatalErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("MissingTable", func(t *testing.T) {
		src := fixtureSource()
		delete(src, TableMetaboliteXref)
		_, err := Open(ctx, src, WithLogger(NoopLogger()))
		var serr *SourceError
		require.ErrorAs(t, err, &serr)
		assert.Equal(t, TableMetaboliteXref, serr.Table)
		assert.True(t, errors.Is(err, source.ErrNotFound))
	})

	t.Run("UndecodableNames", func(t *testing.T) {
		src := fixtureSource()
		src[TableReactionNames] = "not json"
		_, err := Open(ctx, src, WithLogger(NoopLogger()))
		var serr *SourceError
		require.ErrorAs(t, err, &serr)
		assert.Equal(t, TableReactionNames, serr.Table)
	})

	t.Run("ShortRow", func(t *testing.T) {
		src := fixtureSource()
		src[TableReactions] = "MNXR1\tonly-two-columns\n"
		_, err := Open(ctx, src, WithLogger(NoopLogger()))
		var serr *SourceError
		require.ErrorAs(t, err, &serr)
		assert.Equal(t, TableReactions, serr.Table)
	})
}

func TestCommaDelimitedRows(t *testing.T) {
	src := fixtureSource()
	src[TableCompartments] = "MNXC1,cytosol,GO:0005829\nMNXC2,extracellular,GO:0005576\n"
	catalog, err := Open(context.Background(), src, WithLogger(NoopLogger()))
	require.NoError(t, err)
	comp, ok := catalog.Compartment("MNXC1")
	require.True(t, ok)
	assert.Equal(t, "cytosol", comp.Name)
}
