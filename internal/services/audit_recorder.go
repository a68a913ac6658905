package services

import (
	"context"
	"log/slog"
	"time"

	"bancore/internal/models"
	"bancore/internal/repositories"

	"github.com/google/uuid"
)

// auditRecorder writes the settlement audit trail through the audit log
// repository. Recording is best-effort: a failed write is logged and
// swallowed so it can never fail or roll back the settlement that caused it.
type auditRecorder struct {
	auditRepo repositories.AuditLogRepositoryInterface
	logger    *slog.Logger
}

func NewAuditRecorder(auditRepo repositories.AuditLogRepositoryInterface, logger *slog.Logger) AuditRecorderInterface {
	return &auditRecorder{
		auditRepo: auditRepo,
		logger:    logger,
	}
}

func (ar *auditRecorder) Record(ctx context.Context, ownerID *uuid.UUID, action, resource, resourceID string, metadata models.JSONBMap) {
	entry := &models.AuditLog{
		OwnerID:    ownerID,
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		Metadata:   metadata,
	}

	if err := ar.auditRepo.Create(entry); err != nil {
		ar.logger.WarnContext(ctx, "audit log write failed",
			slog.String("action", action),
			slog.String("resource", resource),
			slog.String("resource_id", resourceID),
			slog.String("error", err.Error()),
			slog.Time("timestamp", time.Now()),
		)
		return
	}

	ar.logger.InfoContext(ctx, "audit event recorded",
		slog.String("event_type", action),
		slog.String("resource", resource),
		slog.String("resource_id", resourceID),
		slog.Time("timestamp", time.Now()),
	)
}
