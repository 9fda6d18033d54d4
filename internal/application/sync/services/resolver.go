package services

import (
	"context"
	"strings"

	"dormdesk/internal/domain/category"
	"dormdesk/internal/domain/hall"
	"dormdesk/internal/shared/logger"
)

// ReferenceResolver resolves hall and category names against the curated
// reference tables. It never creates entities: letting the feed auto-create
// them would let misspelled or malicious input pollute the taxonomy.
type ReferenceResolver struct {
	halls      hall.Repository
	categories category.Repository
	logger     logger.Interface
}

func NewReferenceResolver(halls hall.Repository, categories category.Repository, log logger.Interface) *ReferenceResolver {
	return &ReferenceResolver{
		halls:      halls,
		categories: categories,
		logger:     log,
	}
}

// ResolveHall finds a hall by case-insensitive exact name. (nil, nil) means
// no such hall; the caller skips the row.
func (r *ReferenceResolver) ResolveHall(ctx context.Context, name string) (*hall.Hall, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}
	return r.halls.FindByName(ctx, name)
}

// ResolveCategory finds an active category by case-insensitive exact name.
// Unmatched names fall back to the "Others" category: the form's free-text
// "please specify" answer lands in the category column, so unrecognized text
// maps to the catch-all bucket instead of rejecting the row. When "Others"
// itself is missing or inactive, resolution fails with (nil, nil).
func (r *ReferenceResolver) ResolveCategory(ctx context.Context, name string) (*category.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}

	cat, err := r.categories.FindActiveByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if cat != nil {
		return cat, nil
	}

	other, err := r.categories.FindActiveByName(ctx, category.FallbackName)
	if err != nil {
		return nil, err
	}
	if other != nil {
		r.logger.Infow("category not found, mapping to fallback",
			"category", name,
			"fallback", category.FallbackName,
		)
		return other, nil
	}

	return nil, nil
}
