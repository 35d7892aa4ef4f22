// internal/domain/activity/service.go
package activity

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Recorder appends audit entries. Implementations must be safe to call
// best-effort: the caller's business operation has already succeeded or
// failed on its own and is never rolled back by a recording failure.
type Recorder interface {
	Record(ctx context.Context, entry Entry)
}

// Service handles activity log persistence and reads
type Service struct {
	db     *gorm.DB
	logger *logrus.Logger
}

// NewService creates a new activity log service
func NewService(db *gorm.DB, logger *logrus.Logger) *Service {
	return &Service{
		db:     db,
		logger: logger,
	}
}

// Record appends an audit entry. Failures are logged and swallowed.
func (s *Service) Record(ctx context.Context, entry Entry) {
	actorName := entry.ActorName
	actorEmail := entry.ActorEmail
	if actorName == "" {
		actorName = "Super Admin"
	}
	if actorEmail == "" {
		actorEmail = "admin"
	}

	log := ActivityLog{
		Timestamp:   time.Now().UTC(),
		ActionType:  entry.ActionType,
		Details:     entry.Details,
		OrderNumber: entry.OrderNumber,
		ActorName:   actorName,
		ActorEmail:  actorEmail,
	}

	if err := s.db.WithContext(ctx).Create(&log).Error; err != nil {
		s.logger.WithFields(logrus.Fields{
			"action_type": entry.ActionType,
			"order_id":    entry.OrderNumber,
			"error":       err.Error(),
		}).Warn("Failed to append activity log entry")
	}
}

// List returns all audit entries, newest first.
func (s *Service) List(ctx context.Context) ([]ActivityLog, error) {
	var logs []ActivityLog
	err := s.db.WithContext(ctx).Order("timestamp DESC, id DESC").Find(&logs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve activity logs: %w", err)
	}
	return logs, nil
}
