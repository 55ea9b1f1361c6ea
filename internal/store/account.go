package store

import (
	"context"
	"fmt"

	"conectacausa/internal/kv"
	"conectacausa/internal/seed"
	"conectacausa/internal/utils"
	"conectacausa/pkg/types"
)

// AccountService registers and looks up users in the users collection.
type AccountService struct {
	collections *kv.Collections
}

func NewAccountService(collections *kv.Collections) *AccountService {
	return &AccountService{collections: collections}
}

func (s *AccountService) users(ctx context.Context) ([]types.User, error) {
	users, err := kv.Load(ctx, s.collections, kv.UsersKey, seed.Users())
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	return users, nil
}

// Login finds the user whose email matches exactly. Matching is case
// sensitive.
func (s *AccountService) Login(ctx context.Context, email string) (*types.User, error) {
	users, err := s.users(ctx)
	if err != nil {
		return nil, err
	}

	for _, user := range users {
		if user.Email == email {
			return &user, nil
		}
	}

	return nil, types.ErrUserNotFound
}

func (s *AccountService) User(ctx context.Context, userID string) (*types.User, error) {
	users, err := s.users(ctx)
	if err != nil {
		return nil, err
	}

	for _, user := range users {
		if user.ID == userID {
			return &user, nil
		}
	}

	return nil, types.ErrUserNotFound
}

// Register stores a new user under a fresh id. It fails with
// types.ErrEmailTaken when the email is already registered, leaving the
// collection untouched.
func (s *AccountService) Register(ctx context.Context, input types.NewUser) (*types.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	skills := input.Skills
	if skills == nil {
		skills = []string{}
	}

	user := types.User{
		ID:           utils.NewID("user"),
		Name:         input.Name,
		Email:        input.Email,
		Role:         input.Role,
		Skills:       skills,
		Location:     input.Location,
		Availability: input.Availability,
	}

	err := kv.Update(ctx, s.collections, kv.UsersKey, seed.Users(), func(users []types.User) ([]types.User, error) {
		for _, existing := range users {
			if existing.Email == user.Email {
				return nil, types.ErrEmailTaken
			}
		}
		return append(users, user), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	return &user, nil
}
