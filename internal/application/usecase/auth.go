package usecase

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"folio/internal/domain/apperr"
	"folio/internal/domain/dto"
	"folio/internal/domain/repository/session"
)

// AuthConfig holds the single admin credential pair and the token secret.
// All three come from the environment, never from the yaml file.
type AuthConfig struct {
	AdminUsername string
	AdminPassword string
	JWTSecret     string
	TokenTTL      time.Duration
}

type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// LoginResult carries both credentials a successful login establishes:
// a session id (cookie) and a signed token. Either one alone suffices for
// subsequent requests.
type LoginResult struct {
	Token     string
	SessionID string
	User      dto.User
}

// Auth is the single gate for the admin identity: it issues and checks
// sessions and tokens, trying the session first, then the token.
type Auth struct {
	cfg      *AuthConfig
	sessions session.Store
}

func NewAuth(cfg *AuthConfig, sessions session.Store) *Auth {
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 24 * time.Hour
	}

	return &Auth{
		cfg:      cfg,
		sessions: sessions,
	}
}

func (a *Auth) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if username == "" || password == "" {
		return nil, apperr.New(apperr.Validation, "Username and password are required")
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.cfg.AdminUsername)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.cfg.AdminPassword)) == 1
	if !userOK || !passOK {
		return nil, apperr.New(apperr.Unauthorized, "Invalid credentials")
	}

	user := dto.User{
		Username:  username,
		Role:      dto.RoleAdmin,
		LoginTime: time.Now().UTC().Format(time.RFC3339),
	}

	token, err := a.signToken(user)
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "Internal server error", err)
	}

	sessionID, err := a.sessions.Create(ctx, user)
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "Internal server error", err)
	}

	return &LoginResult{
		Token:     token,
		SessionID: sessionID,
		User:      user,
	}, nil
}

func (a *Auth) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}

	return a.sessions.Destroy(ctx, sessionID)
}

// SessionUser reports the identity behind a session id, nil when absent.
func (a *Auth) SessionUser(ctx context.Context, sessionID string) (*dto.User, error) {
	if sessionID == "" {
		return nil, nil
	}

	return a.sessions.Get(ctx, sessionID)
}

// Authenticate admits a request by session or token; either suffices.
// No credential at all is Unauthenticated; a credential with the wrong
// role is Forbidden.
func (a *Auth) Authenticate(ctx context.Context, sessionID, bearerToken string) (*dto.User, error) {
	if sessionID != "" {
		user, err := a.sessions.Get(ctx, sessionID)
		if err != nil {
			return nil, apperr.Wrap(apperr.Persistence, "Internal server error", err)
		}
		if user != nil {
			if user.Role != dto.RoleAdmin {
				return nil, apperr.New(apperr.Forbidden, "Admin access required")
			}

			return user, nil
		}
	}

	if bearerToken != "" {
		user, err := a.VerifyToken(bearerToken)
		if err != nil {
			return nil, err
		}
		if user.Role != dto.RoleAdmin {
			return nil, apperr.New(apperr.Forbidden, "Admin access required")
		}

		return user, nil
	}

	return nil, apperr.New(apperr.Unauthorized, "Authentication required")
}

func (a *Auth) VerifyToken(tokenString string) (*dto.User, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(*jwt.Token) (any, error) {
		return []byte(a.cfg.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, apperr.New(apperr.Unauthorized, "Invalid token")
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, apperr.New(apperr.Unauthorized, "Invalid token")
	}

	return &dto.User{Username: claims.Username, Role: claims.Role}, nil
}

func (a *Auth) signToken(user dto.User) (string, error) {
	now := time.Now()
	claims := Claims{
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.cfg.TokenTTL)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(a.cfg.JWTSecret))
}
