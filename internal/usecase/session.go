package usecase

import (
	"runesse/internal/domain/user"
	"runesse/internal/pkg/jwt"
)

// Identity is the caller resolved from a session token.
type Identity struct {
	Email user.Email
	Role  user.Role
}

// SessionResolver turns a session token into an Identity. Tokens are issued elsewhere.
type SessionResolver interface {
	Resolve(token string) (*Identity, error)
}

type sessionResolverImpl struct {
	jwtService *jwt.Service
}

func NewSessionResolver(jwtService *jwt.Service) SessionResolver {
	return &sessionResolverImpl{
		jwtService: jwtService,
	}
}

func (s *sessionResolverImpl) Resolve(token string) (*Identity, error) {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	email, err := user.NewEmail(claims.Email)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(claims.Role)
	if err != nil {
		return nil, err
	}

	return &Identity{Email: email, Role: role}, nil
}
