package store

import "fmt"

// Storage keys for the two persisted credential entries. The values
// match the keys the mobile client has always used, so a migrated
// database keeps its session.
const (
	TokenKey     = "anuvat_id_token"
	ClassroomKey = "anuvat_classroom_id"
)

// SaveToken persists the bearer token.
func (s *Store) SaveToken(token string) error {
	return s.Put(TokenKey, token)
}

// Token returns the stored bearer token, or "" and false if absent.
func (s *Store) Token() (string, bool, error) {
	return s.Get(TokenKey)
}

// SaveClassroomID persists the id of the classroom the student joined.
func (s *Store) SaveClassroomID(id string) error {
	return s.Put(ClassroomKey, id)
}

// ClassroomID returns the stored classroom id, or "" and false if absent.
func (s *Store) ClassroomID() (string, bool, error) {
	return s.Get(ClassroomKey)
}

// ClearCredentials removes the token and the classroom id in a single
// transaction, so a failure cannot leave one behind without the other.
func (s *Store) ClearCredentials() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin clear: %w", err)
	}
	for _, key := range []string{TokenKey, ClassroomKey} {
		if _, err := tx.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
			tx.Rollback()
			return fmt.Errorf("clear %s: %w", key, err)
		}
	}
	return tx.Commit()
}
