package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TravelBooking/internal/domain"
	"github.com/m04kA/SMC-TravelBooking/pkg/docstore"
)

// userRecord документ коллекции users
type userRecord struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (r *userRecord) toDomain() *domain.User {
	role := domain.UserRole(r.Role)
	if role == "" {
		role = domain.RoleUser
	}
	return &domain.User{ID: r.ID, Name: r.Name, Email: r.Email, Role: role}
}

// Repository репозиторий пользователей
// Пользователи создаются внешним сервисом аутентификации, здесь только чтение и начальное заполнение.
type Repository struct {
	store DocumentStore
}

// NewRepository создает новый экземпляр репозитория пользователей
func NewRepository(store DocumentStore) *Repository {
	return &Repository{store: store}
}

// GetByID получает пользователя по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	doc, err := r.store.Get(ctx, domain.CollectionUsers, id)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - id=%s: %w", ErrStore, id, err)
	}

	rec, err := docstore.FromDocument[userRecord](doc)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - id=%s: %v", ErrDecode, id, err)
	}
	return rec.toDomain(), nil
}

// Save создает или перезаписывает пользователя
func (r *Repository) Save(ctx context.Context, u *domain.User) error {
	fields, err := docstore.ToFields(&userRecord{ID: u.ID, Name: u.Name, Email: u.Email, Role: string(u.Role)})
	if err != nil {
		return fmt.Errorf("%w: Save - %v", ErrEncode, err)
	}

	if err := r.store.Set(ctx, domain.CollectionUsers, u.ID, fields); err != nil {
		return fmt.Errorf("%w: Save - id=%s: %w", ErrStore, u.ID, err)
	}
	return nil
}
