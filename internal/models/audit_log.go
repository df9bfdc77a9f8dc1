package models

import "time"

type AuditAction string

const (
	AuditActionCreate AuditAction = "create"
	AuditActionUpdate AuditAction = "update"
	AuditActionDelete AuditAction = "delete"
)

// AuditLog records one employee-registry mutation, scoped to the tenant that
// performed it.
type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	TenantID   uint        `gorm:"column:usuario_id;index;not null" json:"usuario_id"`
	EntityType string      `gorm:"size:50;index" json:"entity_type"`
	EntityID   int         `gorm:"index" json:"entity_id"`
	Action     AuditAction `gorm:"size:20" json:"action"`

	// Snapshots of the row before and after the mutation (JSON, "null" when
	// there is no such side).
	BeforeData string `gorm:"type:text" json:"before_data"`
	AfterData  string `gorm:"type:text" json:"after_data"`
}

func (AuditLog) TableName() string { return "auditoria" }
