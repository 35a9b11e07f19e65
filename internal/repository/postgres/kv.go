package postgres

import (
	"database/sql"
	"errors"
)

// KVRepo implements repository.StateRepository on a single key/value table
type KVRepo struct {
	db *sql.DB
}

// NewKVRepo creates a new key-value repository
func NewKVRepo(db *sql.DB) *KVRepo {
	return &KVRepo{db: db}
}

// Load returns the value stored under key, or nil if there is none
func (r *KVRepo) Load(key string) ([]byte, error) {
	var value []byte
	query := `SELECT value FROM kv_store WHERE key = $1`
	err := r.db.QueryRow(query, key).Scan(&value)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return value, nil
}

// Save replaces the value stored under key
func (r *KVRepo) Save(key string, value []byte) error {
	query := `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`
	_, err := r.db.Exec(query, key, string(value))
	return err
}
