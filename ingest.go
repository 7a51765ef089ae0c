package metanetx

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/dd-decaf/metanetx/equation"
	"github.com/dd-decaf/metanetx/miriam"
	"github.com/dd-decaf/metanetx/model"
	"github.com/dd-decaf/metanetx/source"
)

// Table names as published by MetaNetX, plus the reaction-name side table.
const (
	TableReactionNames   = "reaction_names.json"
	TableCompartments    = "comp_prop.tsv"
	TableCompartmentXref = "comp_xref.tsv"
	TableReactions       = "reac_prop.tsv"
	TableReactionXref    = "reac_xref.tsv"
	TableMetabolites     = "chem_prop.tsv"
	TableMetaboliteXref  = "chem_xref.tsv"
)

var allTables = []string{
	TableReactionNames,
	TableCompartments,
	TableCompartmentXref,
	TableReactions,
	TableReactionXref,
	TableMetabolites,
	TableMetaboliteXref,
}

// Drop reasons reported to the metrics collector.
const (
	dropMalformedEquation = "malformed_equation"
	dropUnnamespaced      = "unnamespaced"
	dropUnknownNamespace  = "unknown_namespace"
	dropMissingOwner      = "missing_owner"
)

// Open ingests all MetaNetX source tables from src and returns the populated
// catalog.
//
// Tables are fetched concurrently but installed in a fixed order, one pass
// each, so that cross-reference tables always see the entities they point at.
// Per-row problems are counted and dropped (see Stats); a table that cannot
// be fetched or decoded at all yields a *SourceError and no catalog.
func Open(ctx context.Context, src source.Opener, opts ...Option) (*Catalog, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	tables, err := fetchTables(ctx, src)
	if err != nil {
		return nil, err
	}

	c := newCatalog(o)
	names, err := decodeReactionNames(tables[TableReactionNames])
	if err != nil {
		return nil, err
	}
	c.stats.ReactionNames = len(names)
	c.log.InfoContext(ctx, "reaction name mappings loaded", "count", len(names))

	if err := c.loadCompartments(ctx, tables[TableCompartments]); err != nil {
		return nil, err
	}
	if err := c.loadXrefs(ctx, TableCompartmentXref, tables[TableCompartmentXref], model.KindCompartment); err != nil {
		return nil, err
	}
	if err := c.loadReactions(ctx, tables[TableReactions], names); err != nil {
		return nil, err
	}
	if err := c.loadXrefs(ctx, TableReactionXref, tables[TableReactionXref], model.KindReaction); err != nil {
		return nil, err
	}
	if err := c.loadMetabolites(ctx, tables[TableMetabolites]); err != nil {
		return nil, err
	}
	if err := c.loadXrefs(ctx, TableMetaboliteXref, tables[TableMetaboliteXref], model.KindMetabolite); err != nil {
		return nil, err
	}
	return c, nil
}

// fetchTables reads every source table into memory, concurrently. Ingestion
// itself stays single-threaded; only the transfer is parallel.
func fetchTables(ctx context.Context, src source.Opener) (map[string][]byte, error) {
	buffers := make([][]byte, len(allTables))
	g, gctx := errgroup.WithContext(ctx)
	for i, name := range allTables {
		g.Go(func() error {
			rc, err := src.Open(gctx, name)
			if err != nil {
				return &SourceError{Table: name, cause: err}
			}
			defer rc.Close()
			data, err := io.ReadAll(rc)
			if err != nil {
				return &SourceError{Table: name, cause: err}
			}
			buffers[i] = data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	tables := make(map[string][]byte, len(allTables))
	for i, name := range allTables {
		tables[name] = buffers[i]
	}
	return tables, nil
}

func decodeReactionNames(data []byte) (map[string]string, error) {
	names := make(map[string]string)
	if err := json.Unmarshal(data, &names); err != nil {
		return nil, &SourceError{Table: TableReactionNames, cause: err}
	}
	return names, nil
}

func (c *Catalog) loadCompartments(ctx context.Context, data []byte) error {
	count := 0
	err := eachRow(TableCompartments, data, 3, func(cols []string) {
		c.addCompartment(&model.Compartment{
			ID:         cols[0],
			Name:       cols[1],
			Xref:       cols[2],
			Annotation: model.Annotation{},
		})
		count++
	})
	if err != nil {
		return err
	}
	c.stats.Compartments = count
	c.metrics.RecordRowsLoaded(TableCompartments, count)
	c.log.LogEntitiesLoaded(ctx, model.KindCompartment, count)
	return nil
}

func (c *Catalog) loadReactions(ctx context.Context, data []byte, names map[string]string) error {
	loaded, filtered := 0, 0
	err := eachRow(TableReactions, data, 5, func(cols []string) {
		id, text, ec := cols[0], cols[1], cols[4]
		terms, perr := equation.Parse(text)
		if perr != nil {
			// Expected for a bounded number of rows with inexact
			// stoichiometry; the reaction is unusable, drop it.
			filtered++
			c.metrics.RecordRowDropped(TableReactions, dropMalformedEquation)
			return
		}
		c.addReaction(&model.Reaction{
			ID:         id,
			Name:       names[id],
			EC:         ec,
			Equation:   text,
			Terms:      terms,
			Annotation: model.Annotation{},
		})
		loaded++
	})
	if err != nil {
		return err
	}
	c.stats.Reactions = loaded
	c.stats.FilteredReactions = filtered
	c.metrics.RecordRowsLoaded(TableReactions, loaded)
	c.log.LogReactionsLoaded(ctx, loaded, filtered)
	return nil
}

func (c *Catalog) loadMetabolites(ctx context.Context, data []byte) error {
	count := 0
	err := eachRow(TableMetabolites, data, 3, func(cols []string) {
		c.addMetabolite(&model.Metabolite{
			ID:         cols[0],
			Name:       cols[1],
			Formula:    cols[2],
			Annotation: model.Annotation{},
		})
		count++
	})
	if err != nil {
		return err
	}
	c.stats.Metabolites = count
	c.metrics.RecordRowsLoaded(TableMetabolites, count)
	c.log.LogEntitiesLoaded(ctx, model.KindMetabolite, count)
	return nil
}

// loadXrefs ingests one cross-reference table. The policy for bad rows is
// drop-and-count across the board: rows without a namespace separator, rows
// whose namespace has no MIRIAM mapping and rows pointing at unknown owners
// are all expected in the published dataset.
func (c *Catalog) loadXrefs(ctx context.Context, table string, data []byte, kind model.EntityKind) error {
	loaded, skipped, unknown, dangling := 0, 0, 0, 0
	err := eachRow(table, data, 2, func(cols []string) {
		xref, id := cols[0], cols[1]
		namespace, identifier, ok := strings.Cut(xref, ":")
		if !ok {
			// Free-text reference, not namespaced.
			skipped++
			c.metrics.RecordRowDropped(table, dropUnnamespaced)
			return
		}
		owner, annotation := c.resolveOwner(kind, id)
		if owner == nil {
			dangling++
			c.metrics.RecordRowDropped(table, dropMissingOwner)
			return
		}
		canonicalNS, canonicalID, nerr := miriam.Normalize(kind, namespace, identifier)
		if nerr != nil {
			unknown++
			c.metrics.RecordRowDropped(table, dropUnknownNamespace)
			return
		}
		annotation.Add(canonicalNS, canonicalID)
		c.keys.add(canonicalID, owner)
		loaded++
	})
	if err != nil {
		return err
	}
	switch kind {
	case model.KindCompartment:
		c.stats.CompartmentXrefs = loaded
	case model.KindReaction:
		c.stats.ReactionXrefs = loaded
	case model.KindMetabolite:
		c.stats.MetaboliteXrefs = loaded
	}
	c.stats.SkippedXrefs += skipped
	c.stats.UnknownNamespaces += unknown
	c.stats.DanglingXrefs += dangling
	c.metrics.RecordRowsLoaded(table, loaded)
	c.log.LogXrefsLoaded(ctx, kind, loaded, skipped, unknown, dangling)
	return nil
}

func (c *Catalog) resolveOwner(kind model.EntityKind, id string) (model.Entity, model.Annotation) {
	switch kind {
	case model.KindCompartment:
		if comp, ok := c.compartments[id]; ok {
			return comp, comp.Annotation
		}
	case model.KindReaction:
		if r, ok := c.reactions[id]; ok {
			return r, r.Annotation
		}
	case model.KindMetabolite:
		if m, ok := c.metabolites[id]; ok {
			return m, m.Annotation
		}
	}
	return nil, nil
}

// eachRow streams a delimited table, skipping comment and blank lines. The
// tables are published tab-delimited but comma-delimited variants exist, so
// the delimiter is sniffed per line. A row with too few columns fails the
// whole table.
func eachRow(table string, data []byte, minCols int, fn func(cols []string)) error {
	sc := bufio.NewScanner(bytes.NewReader(data))
	// Some metabolite rows carry very long names and InChI strings.
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		cols := splitRow(line)
		if len(cols) < minCols {
			return &SourceError{
				Table: table,
				cause: fmt.Errorf("line %d: expected at least %d columns, got %d", lineNo, minCols, len(cols)),
			}
		}
		fn(cols)
	}
	if err := sc.Err(); err != nil {
		return &SourceError{Table: table, cause: err}
	}
	return nil
}

func splitRow(line string) []string {
	if strings.ContainsRune(line, '\t') {
		return strings.Split(line, "\t")
	}
	return strings.Split(line, ",")
}
