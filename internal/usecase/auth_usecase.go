package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/natembeza/curalink/internal/domain/contract"
	"github.com/natembeza/curalink/internal/domain/entity"
	"github.com/natembeza/curalink/internal/infrastructure/metrics"
	usecasecontract "github.com/natembeza/curalink/internal/usecase/contract"
)

// JWTService defines the token operations the auth usecase depends on.
type JWTService interface {
	GenerateAccessToken(userID string, role entity.UserRole) (string, error)
	VerifyToken(token string) (*entity.Claims, error)
}

// AuthUsecase implements registration, login and token-based authentication.
type AuthUsecase struct {
	userRepo      contract.IUserRepository
	hasher        contract.IHasher
	jwtService    JWTService
	validator     usecasecontract.IValidator
	uuidGenerator contract.IUUIDGenerator
	logger        usecasecontract.IAppLogger
}

var _ usecasecontract.IAuthUseCase = (*AuthUsecase)(nil)

func NewAuthUsecase(
	userRepo contract.IUserRepository,
	hasher contract.IHasher,
	jwtService JWTService,
	validator usecasecontract.IValidator,
	uuidGenerator contract.IUUIDGenerator,
	logger usecasecontract.IAppLogger,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:      userRepo,
		hasher:        hasher,
		jwtService:    jwtService,
		validator:     validator,
		uuidGenerator: uuidGenerator,
		logger:        logger,
	}
}

// RegisterPatient creates a patient account and issues an access token.
func (uc *AuthUsecase) RegisterPatient(ctx context.Context, name, email, password string) (*entity.User, string, error) {
	return uc.register(ctx, name, email, password, entity.UserRolePatient)
}

// RegisterResearcher creates a researcher account and issues an access token.
func (uc *AuthUsecase) RegisterResearcher(ctx context.Context, name, email, password string) (*entity.User, string, error) {
	return uc.register(ctx, name, email, password, entity.UserRoleResearcher)
}

// register is shared by both entry points. The role comes from the entry
// point, never from the client payload.
func (uc *AuthUsecase) register(ctx context.Context, name, email, password string, role entity.UserRole) (*entity.User, string, error) {
	if name == "" || email == "" || password == "" {
		return nil, "", entity.ErrValidation
	}
	if err := uc.validator.ValidateEmail(email); err != nil {
		return nil, "", entity.ErrValidation
	}

	existing, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, entity.ErrUserNotFound) {
		uc.logger.Errorf("failed to check for existing user by email: %v", err)
		return nil, "", err
	}
	if existing != nil {
		return nil, "", entity.ErrDuplicateEmail
	}

	hashedPassword, err := uc.hasher.HashPassword(password)
	if err != nil {
		uc.logger.Errorf("failed to hash password: %v", err)
		return nil, "", err
	}

	user := &entity.User{
		ID:           uc.uuidGenerator.NewUUID(),
		Email:        email,
		Name:         name,
		PasswordHash: hashedPassword,
		Role:         role,
		IsActive:     true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	// The unique email index backs this up: a concurrent registration of
	// the same email still fails here with ErrDuplicateEmail.
	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, entity.ErrDuplicateEmail) {
			return nil, "", entity.ErrDuplicateEmail
		}
		uc.logger.Errorf("failed to create user: %v", err)
		return nil, "", err
	}

	token, err := uc.jwtService.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		uc.logger.Errorf("failed to generate access token: %v", err)
		return nil, "", err
	}

	metrics.RegistrationsTotal.WithLabelValues(string(role)).Inc()
	return user, token, nil
}

// dummyPasswordHash is compared against on the unknown-email login path
// so that path costs a bcrypt comparison too.
const dummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Login authenticates by email and password. A missing user and a wrong
// password both produce ErrInvalidCredentials so clients cannot enumerate
// accounts, by error text or by timing.
func (uc *AuthUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	if email == "" || password == "" {
		return nil, "", entity.ErrValidation
	}

	user, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			_ = uc.hasher.ComparePasswordHash(password, dummyPasswordHash)
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return nil, "", entity.ErrInvalidCredentials
		}
		uc.logger.Errorf("failed to retrieve user for login: %v", err)
		return nil, "", err
	}

	if err := uc.hasher.ComparePasswordHash(password, user.PasswordHash); err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, "", entity.ErrInvalidCredentials
	}

	token, err := uc.jwtService.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		uc.logger.Errorf("failed to generate access token: %v", err)
		return nil, "", err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return user, token, nil
}

// Authenticate verifies an access token and resolves the subject against
// the credential store. Any failure is reported as-is; the HTTP layer
// collapses them all to 401.
func (uc *AuthUsecase) Authenticate(ctx context.Context, accessToken string) (*entity.User, error) {
	claims, err := uc.jwtService.VerifyToken(accessToken)
	if err != nil {
		return nil, err
	}
	user, err := uc.userRepo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	return user, nil
}
