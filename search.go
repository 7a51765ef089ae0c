package metanetx

import (
	"sort"
	"strings"
	"time"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/dd-decaf/metanetx/model"
)

// MaxSearchResults caps the result list of every free-text search.
const MaxSearchResults = 30

// SearchReactions ranks all reactions against a free-text query and returns
// the best MaxSearchResults matches, descending by score. Ties keep
// source-file order.
//
// A reaction's score is the best of: whole-string similarity against its
// canonical ID, against its EC number, against every annotation value, and
// substring-aware similarity against its display name (so a query that is a
// prefix of a long name still scores well). Scores are normalized
// edit-distance ratios in [0,100].
//
// The scan is linear over the corpus; that is acceptable only because the
// corpus is static and bounded. Anything bigger or mutable needs an inverted
// token index instead.
func (c *Catalog) SearchReactions(query string) []*model.Reaction {
	start := time.Now()

	scores := make([]int, len(c.reactionOrder))
	order := make([]int, len(c.reactionOrder))
	for i, r := range c.reactionOrder {
		scores[i] = reactionScore(query, r)
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	n := min(len(order), MaxSearchResults)
	results := make([]*model.Reaction, n)
	for i := 0; i < n; i++ {
		results[i] = c.reactionOrder[order[i]]
	}
	c.metrics.RecordSearch(model.KindReaction, len(results), time.Since(start))
	return results
}

func reactionScore(query string, r *model.Reaction) int {
	score := fuzzy.Ratio(query, r.ID)
	if r.EC != "" {
		score = max(score, fuzzy.Ratio(query, r.EC))
	}
	if r.Name != "" {
		score = max(score, fuzzy.PartialRatio(query, r.Name))
	}
	for _, values := range r.Annotation {
		for _, value := range values {
			score = max(score, fuzzy.Ratio(query, value))
		}
	}
	return score
}

// SearchMetabolites filters metabolites whose case-folded canonical ID or
// display name contains the case-folded query, in source-file order, capped
// at MaxSearchResults.
//
// Unlike reactions, metabolites are not ranked: grading hundreds of
// thousands of records by edit distance per query costs too much, so the
// cheap substring predicate wins the precision/cost trade-off here.
func (c *Catalog) SearchMetabolites(query string) []*model.Metabolite {
	start := time.Now()
	folded := strings.ToLower(query)

	results := make([]*model.Metabolite, 0, MaxSearchResults)
	for _, m := range c.metaboliteOrder {
		if strings.Contains(strings.ToLower(m.ID), folded) ||
			strings.Contains(strings.ToLower(m.Name), folded) {
			results = append(results, m)
			if len(results) == MaxSearchResults {
				break
			}
		}
	}
	c.metrics.RecordSearch(model.KindMetabolite, len(results), time.Since(start))
	return results
}
