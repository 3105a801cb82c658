package store

import (
	"context"

	"github.com/akulov/ai-research-assistant/internal/config"
	"github.com/akulov/ai-research-assistant/internal/logger"
)

// Storages bundles every repository the service layer depends on.
type Storages struct {
	UserRepository         UserRepository
	ConversationRepository ConversationRepository

	db *DB
}

// NewStorages connects to PostgreSQL, applies pending migrations and wires
// up all repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository:         NewUserRepository(db, log),
		ConversationRepository: NewConversationRepository(db, log),
		db:                     db,
	}, nil
}

// Close releases the underlying database connection pool.
func (s *Storages) Close() error {
	return s.db.Close()
}
