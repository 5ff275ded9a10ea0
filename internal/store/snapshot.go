package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rzonedevops/cogllama-cloud-services/internal/domain"
)

// SnapshotStore persists knowledge exports as JSONB rows. It is the cloud
// persistence collaborator of the cognitive core: create and point lookup
// only, no retry policy.
type SnapshotStore struct {
	db *pgxpool.Pool
}

func NewSnapshotStore(db *pgxpool.Pool) *SnapshotStore {
	return &SnapshotStore{db: db}
}

func (s *SnapshotStore) Create(ctx context.Context, export *domain.KnowledgeExport) (uuid.UUID, error) {
	payload, err := json.Marshal(export)
	if err != nil {
		return uuid.Nil, fmt.Errorf("marshal snapshot: %w", err)
	}

	var id uuid.UUID
	err = s.db.QueryRow(ctx,
		`INSERT INTO knowledge_snapshots (agent, payload)
		 VALUES ($1, $2)
		 RETURNING id`,
		export.Agent, payload,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (s *SnapshotStore) Get(ctx context.Context, id uuid.UUID) (*domain.KnowledgeExport, error) {
	var payload []byte
	err := s.db.QueryRow(ctx,
		`SELECT payload FROM knowledge_snapshots WHERE id = $1`,
		id,
	).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	export := &domain.KnowledgeExport{}
	if err := json.Unmarshal(payload, export); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	return export, nil
}
