// Package hall holds the hall reference entity. Halls are provisioned by
// administrators; the sync engine only reads them.
package hall

import (
	"fmt"
	"strings"
	"time"
)

type Hall struct {
	id        uint
	name      string
	createdAt time.Time
}

func NewHall(name string) (*Hall, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("hall name is required")
	}
	return &Hall{
		name:      name,
		createdAt: time.Now().UTC(),
	}, nil
}

func ReconstructHall(id uint, name string, createdAt time.Time) (*Hall, error) {
	if id == 0 {
		return nil, fmt.Errorf("hall ID cannot be zero")
	}
	if name == "" {
		return nil, fmt.Errorf("hall name is required")
	}
	return &Hall{id: id, name: name, createdAt: createdAt}, nil
}

func (h *Hall) ID() uint             { return h.id }
func (h *Hall) Name() string         { return h.name }
func (h *Hall) CreatedAt() time.Time { return h.createdAt }
