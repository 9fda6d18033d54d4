package models

// AuditEntryModel is the persistence model for the per-issue action log.
type AuditEntryModel struct {
	ID        uint    `gorm:"primaryKey"`
	IssueID   uint    `gorm:"not null;index"`
	ActorID   *uint   `gorm:"index"`
	Action    string  `gorm:"size:50;not null"`
	OldValue  *string `gorm:"size:255"`
	NewValue  *string `gorm:"size:255"`
	Details   *string `gorm:"type:text"`
	CreatedAt int64   `gorm:"autoCreateTime:milli;not null;index"`
}

func (AuditEntryModel) TableName() string {
	return "issue_audit_log"
}
