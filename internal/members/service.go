// Package members manages the member registry: registration, suspension and
// the validity checks the circulation desk relies on.
package members

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/openshelf/openshelf/internal/catalog"
	membersRepo "github.com/openshelf/openshelf/internal/database/members"
	"github.com/openshelf/openshelf/internal/entities"
)

const (
	// MinPINLength is the minimum required PIN length.
	MinPINLength = 4
	// bcrypt has a 72-byte input limit.
	maxPINLength = 72
)

var (
	ErrNameRequired  = errors.New("member name is required")
	ErrEmailRequired = errors.New("member email is required")
	ErrPINTooShort   = errors.New("PIN must be at least 4 characters")
	ErrPINTooLong    = errors.New("PIN exceeds maximum length of 72 bytes")
	ErrInvalidPIN    = errors.New("invalid PIN")
	ErrUnknownMember = errors.New("member not found")
)

// Service provides member registry operations. It implements
// catalog.MemberDirectory: a member is valid when they exist and are active.
type Service struct {
	repo       *membersRepo.Repository
	bcryptCost int
}

var _ catalog.MemberDirectory = (*Service)(nil)

// NewService creates a members service.
func NewService(repo *membersRepo.Repository, bcryptCost int) *Service {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{repo: repo, bcryptCost: bcryptCost}
}

// Register creates an active member with a bcrypt-hashed PIN.
func (s *Service) Register(name, email, pin string) (*entities.Member, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrNameRequired
	}
	if strings.TrimSpace(email) == "" {
		return nil, ErrEmailRequired
	}
	if len(pin) < MinPINLength {
		return nil, ErrPINTooShort
	}
	if len(pin) > maxPINLength {
		return nil, ErrPINTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pin), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash PIN: %w", err)
	}

	member := &entities.Member{
		Name:    name,
		Email:   email,
		PINHash: string(hash),
		Status:  entities.MemberStatusActive,
	}
	if err := s.repo.Create(member); err != nil {
		return nil, fmt.Errorf("failed to create member: %w", err)
	}
	return member, nil
}

// Suspend blocks a member from borrowing.
func (s *Service) Suspend(memberID uint) error {
	return s.repo.UpdateStatus(memberID, entities.MemberStatusSuspended)
}

// Reactivate lifts a suspension.
func (s *Service) Reactivate(memberID uint) error {
	return s.repo.UpdateStatus(memberID, entities.MemberStatusActive)
}

// IsValid reports whether the member exists and is currently active.
func (s *Service) IsValid(memberID uint) (bool, error) {
	member, err := s.repo.GetByID(memberID)
	if err != nil {
		return false, fmt.Errorf("failed to look up member %d: %w", memberID, err)
	}
	if member == nil {
		return false, nil
	}
	return member.Status == entities.MemberStatusActive, nil
}

// VerifyPIN compares a PIN with the member's stored hash.
func (s *Service) VerifyPIN(memberID uint, pin string) error {
	member, err := s.repo.GetByID(memberID)
	if err != nil {
		return fmt.Errorf("failed to look up member %d: %w", memberID, err)
	}
	if member == nil {
		return ErrUnknownMember
	}

	if err := bcrypt.CompareHashAndPassword([]byte(member.PINHash), []byte(pin)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrInvalidPIN
		}
		return err
	}
	return nil
}
