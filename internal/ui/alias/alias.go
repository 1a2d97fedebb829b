// Package alias resolves the display name of a sensor client. A user may attach
// an alias to a client id; without one the id itself is shown.
package alias

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/bjhara/temp-hum-logger/internal/ui/sanitize"
)

// KV is the persistent key-value table aliases live in, keyed by client id.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}

// Store reads and writes aliases. Stored values are never empty after trimming
// and never contain `"`, `<` or `>`.
type Store struct {
	kv     KV
	logger *slog.Logger
}

func NewStore(kv KV, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{kv: kv, logger: logger}
}

// DisplayName returns the alias stored for id, or id itself when there is none.
// The result is always sanitized.
func (s *Store) DisplayName(id string) string {
	name, ok, err := s.kv.Get(id)
	if err != nil {
		s.logger.Warn("alias lookup failed", "client_id", id, "error", err)
		return sanitize.Sanitize(id)
	}
	if !ok {
		return sanitize.Sanitize(id)
	}
	name = strings.TrimSpace(sanitize.Sanitize(name))
	if name == "" {
		return sanitize.Sanitize(id)
	}
	return name
}

// Set stores name as the alias for id. A name that is empty after trimming and
// sanitizing removes the alias instead.
func (s *Store) Set(id, name string) error {
	clean := strings.TrimSpace(sanitize.Sanitize(strings.TrimSpace(name)))
	if clean == "" {
		return s.Clear(id)
	}
	if err := s.kv.Set(id, clean); err != nil {
		return fmt.Errorf("store alias for %q: %w", id, err)
	}
	s.logger.Debug("alias stored", "client_id", id, "alias", clean)
	return nil
}

// Clear removes any alias for id. Clearing a missing alias is a no-op.
func (s *Store) Clear(id string) error {
	if err := s.kv.Delete(id); err != nil {
		return fmt.Errorf("clear alias for %q: %w", id, err)
	}
	s.logger.Debug("alias cleared", "client_id", id)
	return nil
}
