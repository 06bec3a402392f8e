package store

import (
	"github.com/pmikheev/go-chat-server/internal/logger"
)

// Storages aggregates every repository the service layer depends on.
type Storages struct {
	UserRepository UserRepository
}

// NewStorages wires all repositories to the shared database connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, logger),
	}
}
