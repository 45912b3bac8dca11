package kv

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"giftie/internal/domain/entity"
	domainerrors "giftie/internal/domain/errors"
	"giftie/internal/domain/repository"
	"giftie/internal/domain/storage"
	"giftie/internal/errors"
)

const usersKey = "users"

type userRepository struct {
	store storage.Store

	mu sync.Mutex
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(store storage.Store) repository.UserRepository {
	return &userRepository{store: store}
}

// Create persists a new user. Email uniqueness is case-insensitive.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	users, err := repo.load(ctx)
	if err != nil {
		return err
	}

	for _, existing := range users {
		if strings.EqualFold(existing.Email, user.Email) {
			return repository.ErrEmailTaken
		}
	}

	users = append(users, user)

	return repo.save(ctx, users)
}

// FindByID retrieves a user by id.
func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	users, err := repo.load(ctx)
	if err != nil {
		return nil, err
	}

	for _, user := range users {
		if user.ID == id {
			return user, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

// FindByEmail retrieves a user by email. Lookup is case-insensitive to
// match the uniqueness policy enforced by Create.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	users, err := repo.load(ctx)
	if err != nil {
		return nil, err
	}

	for _, user := range users {
		if strings.EqualFold(user.Email, email) {
			return user, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

// Seed inserts the given users only when the store holds no users yet, so
// demo accounts never clobber registrations across restarts on durable
// drivers.
func (repo *userRepository) Seed(ctx context.Context, users []*entity.User) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	existing, err := repo.load(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	return repo.save(ctx, users)
}

func (repo *userRepository) load(ctx context.Context) ([]*entity.User, error) {
	raw, err := repo.store.Get(ctx, usersKey)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return nil, nil
		}

		return nil, domainerrors.NewStorageExecuteError(err, "load users")
	}

	var users []*entity.User
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal users")
	}

	return users, nil
}

func (repo *userRepository) save(ctx context.Context, users []*entity.User) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return errors.Wrap(err, "failed to marshal users")
	}

	if err := repo.store.Put(ctx, usersKey, raw); err != nil {
		return domainerrors.NewStorageExecuteError(err, "save users")
	}

	return nil
}
