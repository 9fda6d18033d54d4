// Package category holds the issue-category reference entity. Categories are
// administratively curated and soft-deletable via the active flag.
package category

import (
	"fmt"
	"strings"
	"time"
)

// FallbackName is the catch-all category that free-text submissions map to
// when their category text matches nothing.
const FallbackName = "Others"

type Category struct {
	id        uint
	name      string
	active    bool
	createdAt time.Time
}

func NewCategory(name string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("category name is required")
	}
	return &Category{
		name:      name,
		active:    true,
		createdAt: time.Now().UTC(),
	}, nil
}

func ReconstructCategory(id uint, name string, active bool, createdAt time.Time) (*Category, error) {
	if id == 0 {
		return nil, fmt.Errorf("category ID cannot be zero")
	}
	if name == "" {
		return nil, fmt.Errorf("category name is required")
	}
	return &Category{id: id, name: name, active: active, createdAt: createdAt}, nil
}

func (c *Category) ID() uint             { return c.id }
func (c *Category) Name() string         { return c.name }
func (c *Category) IsActive() bool       { return c.active }
func (c *Category) CreatedAt() time.Time { return c.createdAt }
