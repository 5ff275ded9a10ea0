package domain

import (
	"context"

	"github.com/google/uuid"
)

// SnapshotStore is the external persistence collaborator: it accepts full
// knowledge exports and hands them back by id. Retry and transport policy
// belong to the implementation, not the core.
type SnapshotStore interface {
	Create(ctx context.Context, export *KnowledgeExport) (uuid.UUID, error)
	Get(ctx context.Context, id uuid.UUID) (*KnowledgeExport, error)
}
