// Package server exposes the catalog over HTTP.
//
// The API surface is a readiness check, ranked
// free-text search per entity kind, exact lookup by any known key and a
// positional batch lookup. All query failures are ordinary empty results;
// only malformed requests produce error status codes.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dd-decaf/metanetx"
	"github.com/dd-decaf/metanetx/model"
)

// Server handles HTTP requests against an ingested catalog.
type Server struct {
	catalog *metanetx.Catalog
	log     *metanetx.Logger
}

// Config carries the router dependencies.
type Config struct {
	Catalog *metanetx.Catalog
	Logger  *metanetx.Logger
	// Metrics, when set, is mounted at GET /metrics (typically a
	// promhttp handler).
	Metrics http.Handler
}

// NewRouter builds the gin engine with all routes registered.
func NewRouter(cfg Config) *gin.Engine {
	s := &Server{
		catalog: cfg.Catalog,
		log:     cfg.Logger,
	}
	if s.log == nil {
		s.log = metanetx.NoopLogger()
	}

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", s.healthz)
	r.GET("/reactions", s.searchReactions)
	r.GET("/metabolites", s.searchMetabolites)
	r.GET("/lookup", s.lookup)
	r.POST("/keys", s.batchLookup)
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics))
	}
	return r
}

// healthz signals that ingestion has completed and the catalog is queryable.
func (s *Server) healthz(c *gin.Context) {
	c.String(http.StatusOK, "")
}

func (s *Server) searchReactions(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter is required"})
		return
	}
	reactions := s.catalog.SearchReactions(query)
	results := make([]metanetx.ReactionDetail, 0, len(reactions))
	for _, r := range reactions {
		results = append(results, s.catalog.Describe(r))
	}
	s.log.DebugContext(c.Request.Context(), "reaction search",
		"query", query,
		"results", len(results),
	)
	c.JSON(http.StatusOK, results)
}

func (s *Server) searchMetabolites(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter is required"})
		return
	}
	results := s.catalog.SearchMetabolites(query)
	s.log.DebugContext(c.Request.Context(), "metabolite search",
		"query", query,
		"results", len(results),
	)
	c.JSON(http.StatusOK, results)
}

// LookupResult is one resolved key. Exactly one of the entity fields is set,
// according to Kind.
type LookupResult struct {
	Kind        model.EntityKind         `json:"kind"`
	Reaction    *metanetx.ReactionDetail `json:"reaction,omitempty"`
	Metabolite  *model.Metabolite        `json:"metabolite,omitempty"`
	Compartment *model.Compartment       `json:"compartment,omitempty"`
}

func (s *Server) resolve(e model.Entity) *LookupResult {
	switch entity := e.(type) {
	case *model.Reaction:
		detail := s.catalog.Describe(entity)
		return &LookupResult{Kind: model.KindReaction, Reaction: &detail}
	case *model.Metabolite:
		return &LookupResult{Kind: model.KindMetabolite, Metabolite: entity}
	case *model.Compartment:
		return &LookupResult{Kind: model.KindCompartment, Compartment: entity}
	}
	return nil
}

func (s *Server) lookup(c *gin.Context) {
	key := c.Query("key")
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "key parameter is required"})
		return
	}
	results := []*LookupResult{}
	if e, ok := s.catalog.Lookup(key); ok {
		results = append(results, s.resolve(e))
	}
	c.JSON(http.StatusOK, results)
}

type batchRequest struct {
	Keys []string `json:"keys" binding:"required"`
}

// batchLookup resolves keys positionally: the response array has the same
// length as the request, with null for unknown keys.
func (s *Server) batchLookup(c *gin.Context) {
	var req batchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	results := make([]*LookupResult, len(req.Keys))
	for i, e := range s.catalog.BatchLookup(req.Keys) {
		if e != nil {
			results[i] = s.resolve(e)
		}
	}
	c.JSON(http.StatusOK, results)
}
