package audit

import (
	"encoding/json"
	"log"

	"hris-backend/internal/models"
	"hris-backend/internal/store"
)

type LogOptions struct {
	TenantID   uint
	EntityType string
	EntityID   int
	Action     models.AuditAction
	Before     any
	After      any
}

// WriteLog records one mutation for the tenant's audit trail. A failed audit
// write is logged and swallowed: auditing never fails the mutation itself.
func WriteLog(st *store.Store, opts LogOptions) {
	entry := models.AuditLog{
		TenantID:   opts.TenantID,
		EntityType: opts.EntityType,
		EntityID:   opts.EntityID,
		Action:     opts.Action,
		BeforeData: snapshot(opts.Before),
		AfterData:  snapshot(opts.After),
	}

	if err := st.Append(&entry); err != nil {
		log.Printf("[WARN] auditoría no registrada (%s %s %d): %v",
			opts.Action, opts.EntityType, opts.EntityID, err)
	}
}

func snapshot(v any) string {
	if v == nil {
		return "null"
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "null"
	}
	return string(b)
}
