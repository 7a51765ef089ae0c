package metanetx

import (
	"strings"

	"github.com/dd-decaf/metanetx/model"
)

// keyIndex maps case-folded identifier strings (canonical IDs, display names,
// EC numbers, external references) to their owning entity.
//
// On collision the most recently ingested owner wins. Collisions across the
// real dataset are rare and non-adversarial, so last-write-wins is an
// accepted trade-off against keeping multi-valued buckets around.
type keyIndex map[string]model.Entity

// add registers a key for an entity. Empty keys are ignored.
func (ix keyIndex) add(key string, e model.Entity) {
	if key == "" {
		return
	}
	ix[strings.ToLower(key)] = e
}

// lookup retrieves the entity owning the case-folded key.
func (ix keyIndex) lookup(key string) (model.Entity, bool) {
	e, ok := ix[strings.ToLower(key)]
	return e, ok
}
