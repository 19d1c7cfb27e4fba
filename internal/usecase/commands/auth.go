package commands

//go:generate mockgen -source=auth.go -destination=../../mock/commands/auth.go -package=commandsmock

import (
	"context"
	"log/slog"

	"room-booking/internal/domain/user"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/pkg/jwt"
	"room-booking/internal/pkg/password"
	"room-booking/internal/usecase/shared"
)

var (
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginResult struct {
	UserID      int64
	Role        user.Role
	AccessToken string
}

type AuthCommands interface {
	Register(ctx context.Context, in RegisterInput) (*user.User, error)
	Login(ctx context.Context, in LoginInput) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow         shared.UnitOfWork
	jwtService  *jwt.Service
	adminEmails map[string]struct{}
	logger      *slog.Logger
}

type AuthOption func(*authCommandsImpl)

// WithAdminEmails registers these addresses with the admin role.
func WithAdminEmails(emails ...string) AuthOption {
	return func(a *authCommandsImpl) {
		for _, e := range emails {
			if email, err := user.NewEmail(e); err == nil {
				a.adminEmails[email.Value()] = struct{}{}
			}
		}
	}
}

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service, logger *slog.Logger, opts ...AuthOption) AuthCommands {
	a := &authCommandsImpl{
		uow:         uow,
		jwtService:  jwtService,
		adminEmails: make(map[string]struct{}),
		logger:      logger,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *authCommandsImpl) Register(ctx context.Context, in RegisterInput) (*user.User, error) {
	name, err := user.NewName(in.Name)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	credentials, err := user.NewCredentials(in.Email, in.Password)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	hash, err := password.HashPassword(credentials.Password().Value())
	if err != nil {
		return nil, errs.Wrap(err, "hash password")
	}

	role := user.RoleUser
	if _, ok := a.adminEmails[credentials.Email().Value()]; ok {
		role = user.RoleAdmin
	}

	var created *user.User
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var cerr error
		created, cerr = tx.Users().Create(ctx, user.NewUser(name, credentials.Email(), hash, role))
		return cerr
	})
	if err != nil {
		if errs.Is(err, errs.ErrAlreadyExists) {
			return nil, errs.Mark(errs.ErrEmailTaken, errs.ErrAlreadyExists)
		}
		return nil, err
	}

	a.logger.Info("user registered", slog.Int64("user_id", created.ID()), slog.String("role", role.String()))
	return created, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	credentials, err := user.NewCredentials(in.Email, in.Password)
	if err != nil {
		return nil, errs.Mark(errs.ErrInvalidCredentials, errs.ErrUnauthenticated)
	}

	u, err := a.uow.Reads().Users().FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			// Return same error as password mismatch to prevent user enumeration attacks
			return nil, errs.Mark(errs.ErrInvalidCredentials, errs.ErrUnauthenticated)
		}
		return nil, err
	}

	if err := password.ComparePassword(u.PasswordHash(), credentials.Password().Value()); err != nil {
		return nil, errs.Mark(errs.ErrInvalidCredentials, errs.ErrUnauthenticated)
	}

	accessToken, err := a.jwtService.GenerateToken(u.ID(), u.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		UserID:      u.ID(),
		Role:        u.Role(),
		AccessToken: accessToken,
	}, nil
}
