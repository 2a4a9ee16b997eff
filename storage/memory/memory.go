package memory

import (
	"mediride/pkg/logger"
	"mediride/storage"
)

// Store is the in-memory backend for the session state store. The
// application owns a single instance; tests create their own for
// isolation.
type Store struct {
	session *sessionRepo
	log     logger.ILogger
}

func New(log logger.ILogger) storage.IStorage {
	return &Store{
		session: newSessionRepo(log),
		log:     log,
	}
}

func (s *Store) Session() storage.ISessionStorage { return s.session }

func (s *Store) Close() {
	s.session.close()
}
