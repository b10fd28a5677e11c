package session

import (
	"database/sql"
	"errors"
	"fmt"
)

// Scope selects which portal a token belongs to. Admin and client
// sessions are independent; logging out of one leaves the other alone.
type Scope string

const (
	ScopeAdmin  Scope = "admin"
	ScopeClient Scope = "client"
)

// Store reads and writes sessions and view preferences.
type Store struct {
	db *sql.DB
}

// NewStore wraps an opened session database.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Token returns the stored token for the scope, or "" when absent.
func (s *Store) Token(scope Scope) string {
	var token string
	err := s.db.QueryRow(`SELECT token FROM sessions WHERE scope = ?`, string(scope)).Scan(&token)
	if err != nil {
		return ""
	}
	return token
}

// SetToken stores or replaces the scope's token.
func (s *Store) SetToken(scope Scope, token string) error {
	_, err := s.db.Exec(`
		INSERT INTO sessions (scope, token, updated_at) VALUES (?, ?, datetime('now'))
		ON CONFLICT(scope) DO UPDATE SET token = excluded.token, updated_at = excluded.updated_at`,
		string(scope), token)
	if err != nil {
		return fmt.Errorf("storing %s token: %w", scope, err)
	}
	return nil
}

// ClearToken removes the scope's token. Clearing an absent token is not
// an error.
func (s *Store) ClearToken(scope Scope) error {
	_, err := s.db.Exec(`DELETE FROM sessions WHERE scope = ?`, string(scope))
	if err != nil {
		return fmt.Errorf("clearing %s token: %w", scope, err)
	}
	return nil
}

// ViewPrefs holds the remembered presentation state of one entity page.
type ViewPrefs struct {
	EntriesPerPage int
	Compact        bool
}

// Prefs returns the stored preferences for an entity, or the defaults
// (10 per page, full view) when none are stored.
func (s *Store) Prefs(entity string) ViewPrefs {
	p := ViewPrefs{EntriesPerPage: 10}
	var compact int
	err := s.db.QueryRow(`SELECT entries_per_page, compact FROM view_prefs WHERE entity = ?`, entity).
		Scan(&p.EntriesPerPage, &compact)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return ViewPrefs{EntriesPerPage: 10}
		}
		return p
	}
	p.Compact = compact != 0
	return p
}

// SetPrefs stores the preferences for an entity.
func (s *Store) SetPrefs(entity string, p ViewPrefs) error {
	compact := 0
	if p.Compact {
		compact = 1
	}
	_, err := s.db.Exec(`
		INSERT INTO view_prefs (entity, entries_per_page, compact) VALUES (?, ?, ?)
		ON CONFLICT(entity) DO UPDATE SET entries_per_page = excluded.entries_per_page, compact = excluded.compact`,
		entity, p.EntriesPerPage, compact)
	if err != nil {
		return fmt.Errorf("storing %s view prefs: %w", entity, err)
	}
	return nil
}

// ScopedSession adapts a Store to one scope, implementing api.Session.
type ScopedSession struct {
	store *Store
	scope Scope
}

// NewScopedSession binds a store to a portal scope.
func NewScopedSession(store *Store, scope Scope) *ScopedSession {
	return &ScopedSession{store: store, scope: scope}
}

// Token implements api.Session.
func (ss *ScopedSession) Token() string {
	return ss.store.Token(ss.scope)
}

// Unauthorized implements api.Session by clearing the stored token,
// which forces the next command to go through login again.
func (ss *ScopedSession) Unauthorized() {
	_ = ss.store.ClearToken(ss.scope)
}
