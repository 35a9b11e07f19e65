package repository

// MemberRepository defines member access operations
type MemberRepository interface {
	IsAuthorized(userID int64) (bool, error)
	Authorize(userID int64) error
	EnsureMember(userID int64, username string) error
}

// StateRepository is a key-value store for opaque blobs.
// Load returns nil, nil when the key has never been saved.
type StateRepository interface {
	Load(key string) ([]byte, error)
	Save(key string, value []byte) error
}
