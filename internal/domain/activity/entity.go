// internal/domain/activity/entity.go
package activity

import (
	"time"
)

// ActionType identifies the kind of administrative or transactional action a
// log entry records.
type ActionType string

const (
	ActionAdminLogin         ActionType = "ADMIN_LOGIN"
	ActionAdminLogout        ActionType = "ADMIN_LOGOUT"
	ActionCredentialsChanged ActionType = "ADMIN_CREDENTIALS_CHANGED"
	ActionProductAdded       ActionType = "PRODUCT_ADDED"
	ActionProductUpdated     ActionType = "PRODUCT_UPDATED"
	ActionProductDeleted     ActionType = "PRODUCT_DELETED"
	ActionCheckoutSubmitted  ActionType = "CHECKOUT_SUBMITTED"
	ActionOrderVerified      ActionType = "ORDER_VERIFIED"
	ActionQRUpdated          ActionType = "QR_UPDATED"
	ActionCategoryAdded      ActionType = "CATEGORY_ADDED"
	ActionCategoryDeleted    ActionType = "CATEGORY_DELETED"
	ActionSettingsUpdated    ActionType = "SETTINGS_UPDATED"
)

// ActivityLog represents one append-only audit trail entry. Entries are never
// updated or deleted.
type ActivityLog struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Timestamp   time.Time  `gorm:"not null;index" json:"timestamp"`
	ActionType  ActionType `gorm:"not null;size:50;index" json:"action_type"`
	Details     string     `gorm:"type:text" json:"details"`
	OrderNumber string     `gorm:"size:50;index" json:"order_id,omitempty"`
	ActorName   string     `gorm:"size:255" json:"user_name"`
	ActorEmail  string     `gorm:"size:255" json:"user_email"`
	CreatedAt   time.Time  `json:"created_at"`
}

// TableName overrides the table name
func (ActivityLog) TableName() string {
	return "activity_logs"
}

// Entry is the payload handed to the Recorder by the business services.
type Entry struct {
	ActionType  ActionType
	Details     string
	OrderNumber string
	ActorName   string
	ActorEmail  string
}
