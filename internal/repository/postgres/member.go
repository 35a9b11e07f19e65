package postgres

import (
	"database/sql"
	"errors"
)

// MemberRepo implements repository.MemberRepository
type MemberRepo struct {
	db *sql.DB
}

// NewMemberRepo creates a new member repository
func NewMemberRepo(db *sql.DB) *MemberRepo {
	return &MemberRepo{db: db}
}

// IsAuthorized checks if the member has entered the bot password
func (r *MemberRepo) IsAuthorized(userID int64) (bool, error) {
	var authorized bool
	query := `SELECT authorized FROM members WHERE user_id = $1`
	err := r.db.QueryRow(query, userID).Scan(&authorized)

	if errors.Is(err, sql.ErrNoRows) {
		// Never seen this member
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return authorized, nil
}

// Authorize grants the member access to the word list
func (r *MemberRepo) Authorize(userID int64) error {
	query := `
		INSERT INTO members (user_id, authorized)
		VALUES ($1, TRUE)
		ON CONFLICT (user_id)
		DO UPDATE SET authorized = TRUE
	`
	_, err := r.db.Exec(query, userID)
	return err
}

// EnsureMember records the member on first contact and keeps the username fresh
func (r *MemberRepo) EnsureMember(userID int64, username string) error {
	query := `
		INSERT INTO members (user_id, username, authorized)
		VALUES ($1, $2, FALSE)
		ON CONFLICT (user_id)
		DO UPDATE SET username = EXCLUDED.username
	`
	_, err := r.db.Exec(query, userID, username)
	return err
}
