package service

import (
	"context"
	"time"

	"github.com/soheiltpr/calfind/core/logger"
)

// Declined documents linger this long before their objects are purged.
const declinedRetention = 30 * 24 * time.Hour

// PurgeDeclined removes declined documents older than the retention
// window, object first. A failed object delete leaves the row in place so
// the next run retries it.
func (s *DocumentService) PurgeDeclined(ctx context.Context) error {
	cutoff := time.Now().Add(-declinedRetention)

	docs, err := s.documents.ListDeclinedBefore(ctx, cutoff)
	if err != nil {
		return err
	}

	purged := 0
	for i := range docs {
		if err := s.storage.Delete(ctx, docs[i].FileKey); err != nil {
			logger.Warn("DocumentService:PurgeDeclined", "error", err, "key", docs[i].FileKey)
			continue
		}
		if err := s.documents.Delete(ctx, docs[i].ID); err != nil {
			logger.Warn("DocumentService:PurgeDeclined", "error", err, "document_id", docs[i].ID)
			continue
		}
		purged++
	}

	if purged > 0 {
		logger.Info("Purged declined documents", "count", purged)
	}
	return nil
}
