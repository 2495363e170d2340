//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=../../../mocks/mock_user_repository.go -package=mocks -mock_names=Repository=MockUserRepository

package user

import (
	"context"
)

// Repository define a interface para operações de repositório de usuários
type Repository interface {
	// Create cria um novo usuário
	Create(ctx context.Context, u *User) error

	// FindByID busca um usuário pelo ID
	FindByID(ctx context.Context, id string) (*User, error)

	// FindByEmail busca um usuário pelo email
	FindByEmail(ctx context.Context, email string) (*User, error)

	// List lista os usuários com paginação
	List(ctx context.Context, limit, offset int) ([]*User, error)

	// Count conta quantos usuários existem
	Count(ctx context.Context) (int, error)
}
