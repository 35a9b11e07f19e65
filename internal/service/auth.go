package service

import (
	"crypto/subtle"

	"vocabtracker/internal/repository"
)

// AuthService gates the bot behind a shared password
type AuthService struct {
	memberRepo  repository.MemberRepository
	botPassword string
}

// NewAuthService creates a new auth service
func NewAuthService(memberRepo repository.MemberRepository, botPassword string) *AuthService {
	return &AuthService{
		memberRepo:  memberRepo,
		botPassword: botPassword,
	}
}

// CheckPassword verifies if provided password matches
func (s *AuthService) CheckPassword(password string) bool {
	return subtle.ConstantTimeCompare([]byte(password), []byte(s.botPassword)) == 1
}

// IsAuthorized checks if member is authorized
func (s *AuthService) IsAuthorized(userID int64) (bool, error) {
	return s.memberRepo.IsAuthorized(userID)
}

// AuthorizeMember grants access to a member who entered the password
func (s *AuthService) AuthorizeMember(userID int64) error {
	return s.memberRepo.Authorize(userID)
}

// EnsureMember creates the member record if it doesn't exist
func (s *AuthService) EnsureMember(userID int64, username string) error {
	return s.memberRepo.EnsureMember(userID, username)
}
