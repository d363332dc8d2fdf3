package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fsdevblog/dues-desk/internal/domain"
	"github.com/fsdevblog/dues-desk/internal/repository/repoargs"
	"github.com/fsdevblog/dues-desk/internal/service/tokens"
	"github.com/fsdevblog/dues-desk/pkg/uow"
)

const JWTTokenExpire = 1 * time.Hour

type UserService struct {
	userRepo       UserRepository
	psswd          PasswordHasher
	jwtTokenSecret []byte
}

func NewUserService(u uow.UOW, jwtTokenSecret []byte, psswd PasswordHasher) (*UserService, error) {
	userRepo, userRepoErr := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return nil, userRepoErr //nolint:wrapcheck
	}
	return &UserService{
		userRepo:       userRepo,
		psswd:          psswd,
		jwtTokenSecret: jwtTokenSecret,
	}, nil
}

type RegisterUserArgs struct {
	FirstName   string
	LastName    string
	Email       string
	Password    string
	UserTypeID  int64
	MobilePhone string
}

// Register creates the user with a hashed password. A taken email yields domain.ErrDuplicateKey,
// an unknown user type domain.ErrForeignKey.
func (s *UserService) Register(ctx context.Context, args RegisterUserArgs) (*domain.User, error) {
	password, hashErr := s.psswd.HashPassword(args.Password)
	if hashErr != nil {
		return nil, fmt.Errorf("registering user: %s", hashErr.Error())
	}

	user, err := s.userRepo.CreateUser(ctx, repoargs.CreateUser{
		FirstName:   args.FirstName,
		LastName:    args.LastName,
		Email:       args.Email,
		Password:    password,
		UserTypeID:  args.UserTypeID,
		MobilePhone: args.MobilePhone,
	})
	if err != nil {
		return nil, fmt.Errorf("registering user: %w", err)
	}
	return user, nil
}

type LoginUserArgs struct {
	Email    string
	Password string
}

// Login checks the credentials and issues a token. Returns domain.ErrRecordNotFound for an unknown
// email and domain.ErrPasswordMissMatch for a wrong password.
func (s *UserService) Login(ctx context.Context, args LoginUserArgs) (*domain.User, string, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, args.Email)
	if err != nil {
		return nil, "", fmt.Errorf("login: %w", err)
	}

	if !s.psswd.ComparePassword(args.Password, user.Password) {
		return nil, "", fmt.Errorf("login: %w", domain.ErrPasswordMissMatch)
	}

	token, tokenErr := tokens.GenerateUserJWT(tokens.Subject{
		ID:         user.ID,
		Email:      user.Email,
		UserTypeID: user.UserTypeID,
	}, JWTTokenExpire, s.jwtTokenSecret)
	if tokenErr != nil {
		return nil, "", fmt.Errorf("login: %s", tokenErr.Error())
	}
	return user, token, nil
}

// GetByID returns domain.ErrRecordNotFound when the user no longer exists.
func (s *UserService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, id)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return user, nil
}
