package search

import "context"

type Repository interface {
	// Unified runs the cross-entity substring search.
	Unified(context context.Context, term string) ([]Row, error)

	// Filtered searches one entity with per-column LIKE filters.
	Filtered(context context.Context, entity Entity, filters map[string]string) ([]map[string]any, error)

	// Statistics aggregates store-wide counts.
	Statistics(context context.Context) (*Statistics, error)
}
