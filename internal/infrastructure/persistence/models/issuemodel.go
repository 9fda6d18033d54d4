package models

// IssueModel represents the database persistence model for repair issues.
// This is the anti-corruption layer between domain and database.
type IssueModel struct {
	ID          uint    `gorm:"primaryKey"`
	SubmittedAt *int64  `gorm:"index:idx_submission,priority:1"`
	Email       string  `gorm:"size:255;not null;index:idx_submission,priority:2;index:idx_identity,priority:1"`
	Name        *string `gorm:"size:255"`
	HallID      uint    `gorm:"not null;index;index:idx_identity,priority:2"`
	RoomNumber  string  `gorm:"size:50;not null;index:idx_identity,priority:3"`
	CategoryID  uint    `gorm:"not null;index;index:idx_identity,priority:4"`
	Description *string `gorm:"type:text"`
	ImageURL    *string `gorm:"size:1024"`
	Status      string  `gorm:"size:20;not null;index"`
	ResolvedAt  *int64
	ResolvedBy  *uint
	CreatedAt   int64 `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt   int64 `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (IssueModel) TableName() string {
	return "issues"
}
