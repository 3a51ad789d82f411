package application

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/newsflare/newsflare-api/internal/domain"
)

// CreateUser is create-if-absent: registering an email that already exists is
// not an error, the existing record is returned with Created=false so the
// handler can keep the "User Already Exists" envelope.
func (s *Service) CreateUser(ctx context.Context, req CreateUserRequest) (CreateUserResult, error) {
	email, err := normalizeEmail(req.Email)
	if err != nil {
		return CreateUserResult{}, err
	}

	if existing, err := s.users.GetByEmail(ctx, email); err == nil {
		return CreateUserResult{User: existing, Created: false}, nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return CreateUserResult{}, err
	}

	now := s.nowFn()
	user, err := s.users.Create(ctx, domain.User{
		Email:     email,
		Name:      req.Name,
		PhotoURL:  req.PhotoURL,
		Role:      domain.RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		// Lost a create race; treat like the lookup path above.
		if errors.Is(err, domain.ErrConflict) {
			existing, getErr := s.users.GetByEmail(ctx, email)
			if getErr != nil {
				return CreateUserResult{}, getErr
			}
			return CreateUserResult{User: existing, Created: false}, nil
		}
		return CreateUserResult{}, err
	}
	return CreateUserResult{User: user, Created: true}, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

func (s *Service) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return s.users.Delete(ctx, id)
}

// PromoteToAdmin flips the stored role. Takes effect on the target's next
// admin-gated request since RequireAdmin always re-reads the store.
func (s *Service) PromoteToAdmin(ctx context.Context, id uuid.UUID) error {
	return s.users.SetRole(ctx, id, domain.RoleAdmin, s.nowFn())
}
