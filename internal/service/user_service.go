package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/studyos/internal/error_values"
	"github.com/limbo/studyos/internal/repository"
	"github.com/limbo/studyos/pkg/entity"
	"golang.org/x/crypto/bcrypt"
)

const autoRegisteredName = "Demo User"

type UserService struct {
	repo         repository.UsersRepositoryI
	autoRegister bool
}

func NewUserService(usersRepo repository.UsersRepositoryI, opts ...Option) *UserService {
	if usersRepo == nil {
		log.Fatal("provided nil usersRepo")
	}
	o := buildOptions(opts)
	return &UserService{
		repo:         usersRepo,
		autoRegister: o.autoRegister,
	}
}

func (us *UserService) Register(ctx context.Context, req *RegisterRequest) (*entity.User, error) {
	req.Email = normalizeEmail(req.Email)
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	return us.create(ctx, req.Email, req.Password, strings.TrimSpace(req.Name))
}

func (us *UserService) create(ctx context.Context, email, password, name string) (*entity.User, error) {
	passwordHash, err := Hash(password)
	if err != nil {
		return nil, errors.New("hashing password error: " + err.Error())
	}
	user := &entity.User{
		Email:        email,
		Name:         name,
		Role:         entity.RoleStudent,
		PasswordHash: passwordHash,
	}
	err = us.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, errorvalues.ErrEmailExists) {
			return nil, errorvalues.ErrEmailExists
		}
		return nil, errors.New("repository creating error: " + err.Error())
	}
	return user, nil
}

func (us *UserService) Login(ctx context.Context, email, password string) (*entity.User, error) {
	email = normalizeEmail(email)
	user, err := us.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			if !us.autoRegister {
				return nil, errorvalues.ErrWrongCredentials
			}
			return us.registerOnLogin(ctx, email, password)
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errorvalues.ErrWrongCredentials
	}
	return user, nil
}

// registerOnLogin creates the account the first time an unknown email logs in.
// A concurrent login that won the race is verified like a normal login.
func (us *UserService) registerOnLogin(ctx context.Context, email, password string) (*entity.User, error) {
	req := &RegisterRequest{Email: email, Password: password, Name: autoRegisteredName}
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	user, err := us.create(ctx, email, password, autoRegisteredName)
	if errors.Is(err, errorvalues.ErrEmailExists) {
		existing, findErr := us.repo.FindByEmail(ctx, email)
		if findErr != nil {
			return nil, errors.New("repository searching error: " + findErr.Error())
		}
		if bcrypt.CompareHashAndPassword([]byte(existing.PasswordHash), []byte(password)) != nil {
			return nil, errorvalues.ErrWrongCredentials
		}
		return existing, nil
	}
	return user, err
}

func (us *UserService) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := us.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return user, nil
}

func (us *UserService) DeleteAccount(ctx context.Context, id uuid.UUID, password string) error {
	user, err := us.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return errorvalues.ErrUserNotFound
		}
		return errors.New("repository searching error: " + err.Error())
	}
	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		return errorvalues.ErrWrongCredentials
	}
	err = us.repo.Delete(ctx, user.ID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return errorvalues.ErrUserNotFound
		}
		return errors.New("repository deletion error: " + err.Error())
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Hash returns the bcrypt hash of password.
func Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
