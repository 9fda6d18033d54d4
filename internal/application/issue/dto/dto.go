package dto

import "time"

// IssueDTO is one issue shaped for API responses. Hall and category names are
// denormalized from the reference tables.
type IssueDTO struct {
	ID           uint       `json:"id"`
	SubmittedAt  *time.Time `json:"submitted_at,omitempty"`
	Email        string     `json:"email"`
	Name         *string    `json:"name,omitempty"`
	HallID       uint       `json:"hall_id"`
	HallName     string     `json:"hall_name,omitempty"`
	RoomNumber   string     `json:"room_number"`
	CategoryID   uint       `json:"category_id"`
	CategoryName string     `json:"category_name,omitempty"`
	Description  *string    `json:"description,omitempty"`
	ImageURL     *string    `json:"image_url,omitempty"`
	Status       string     `json:"status"`
	ResolvedAt   *time.Time `json:"resolved_at,omitempty"`
	ResolvedBy   *uint      `json:"resolved_by,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
