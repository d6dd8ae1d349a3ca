package abstraction

import (
	"context"

	"folio/internal/application/usecase"
	"folio/internal/domain/dto"
)

type Authenticator interface {
	Login(ctx context.Context, username, password string) (*usecase.LoginResult, error)
	Logout(ctx context.Context, sessionID string) error
	SessionUser(ctx context.Context, sessionID string) (*dto.User, error)
	Authenticate(ctx context.Context, sessionID, bearerToken string) (*dto.User, error)
	VerifyToken(tokenString string) (*dto.User, error)
}
