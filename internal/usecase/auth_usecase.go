package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"imersao-completa/internal/entity"
	"imersao-completa/internal/repo/persistent"
	"imersao-completa/pkg/jwt"
	"imersao-completa/pkg/logger"
	"imersao-completa/pkg/queue"

	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

type AuthUseCase interface {
	SignUp(ctx context.Context, email, password, fullName string) (*entity.AuthSession, error)
	SignIn(ctx context.Context, email, password string) (*entity.AuthSession, error)
	Refresh(ctx context.Context, accessToken string) (*entity.AuthSession, error)
	ResetPassword(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, token, newPassword string) error
	GetProfile(ctx context.Context, userID string) (*entity.Profile, error)
	UpdateProfile(ctx context.Context, userID string, fullName *string) (*entity.Profile, error)
	GetRoles(ctx context.Context, userID string) ([]entity.Role, error)
	ResolveRoles(ctx context.Context, userID string) ([]string, error)
	GrantRole(ctx context.Context, userID string, role entity.Role) error
	RevokeRole(ctx context.Context, userID string, role entity.Role) error
}

type authUseCase struct {
	userRepo    persistent.UserRepository
	profileRepo persistent.ProfileRepository
	roleRepo    persistent.RoleRepository
	tokens      *jwt.Service
	resetTokens *jwt.Service
	publisher   TaskPublisher
	logger      *logger.Logger
}

func NewAuthUseCase(
	userRepo persistent.UserRepository,
	profileRepo persistent.ProfileRepository,
	roleRepo persistent.RoleRepository,
	tokens *jwt.Service,
	resetTokens *jwt.Service,
	publisher TaskPublisher,
	logger *logger.Logger,
) AuthUseCase {
	return &authUseCase{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		roleRepo:    roleRepo,
		tokens:      tokens,
		resetTokens: resetTokens,
		publisher:   publisher,
		logger:      logger,
	}
}

func (uc *authUseCase) SignUp(ctx context.Context, email, password, fullName string) (*entity.AuthSession, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: invalid email address", entity.ErrInvalidInput)
	}
	if len(password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must have at least %d characters", entity.ErrInvalidInput, minPasswordLength)
	}

	if _, err := uc.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, entity.ErrEmailTaken
	} else if !errors.Is(err, entity.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, fmt.Errorf("failed to process registration")
	}

	user := &entity.User{Email: email, PasswordHash: string(hashedPassword)}
	var name *string
	if trimmed := strings.TrimSpace(fullName); trimmed != "" {
		name = &trimmed
	}

	if err := uc.userRepo.Create(ctx, user, name, entity.RoleUser); err != nil {
		if errors.Is(err, entity.ErrDuplicate) {
			return nil, entity.ErrEmailTaken
		}
		uc.logger.Error("Failed to create user: %v", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	uc.logger.Info("User registered: %s", user.ID)
	return uc.issue(user.ID, user.Email)
}

func (uc *authUseCase) SignIn(ctx context.Context, email, password string) (*entity.AuthSession, error) {
	user, err := uc.userRepo.GetByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, entity.ErrNotFound) {
		return nil, entity.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, entity.ErrInvalidCredentials
	}

	return uc.issue(user.ID, user.Email)
}

// Refresh trades a still-valid access token for a fresh one.
func (uc *authUseCase) Refresh(ctx context.Context, accessToken string) (*entity.AuthSession, error) {
	claims, err := uc.tokens.ValidateToken(accessToken)
	if err != nil {
		return nil, entity.ErrUnauthorized
	}

	user, err := uc.userRepo.GetByID(ctx, claims.UserID)
	if errors.Is(err, entity.ErrNotFound) {
		return nil, entity.ErrUnauthorized
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	return uc.issue(user.ID, user.Email)
}

// ResetPassword queues a reset email when the account exists. It reports
// success either way so callers cannot probe for registered addresses.
func (uc *authUseCase) ResetPassword(ctx context.Context, email string) error {
	user, err := uc.userRepo.GetByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, entity.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load user: %w", err)
	}

	token, _, err := uc.resetTokens.GenerateToken(user.ID, user.Email)
	if err != nil {
		return fmt.Errorf("failed to create reset token: %w", err)
	}

	if uc.publisher == nil {
		uc.logger.Warn("Password reset requested for %s but no queue is configured", user.ID)
		return nil
	}

	task := map[string]interface{}{
		"type":     queue.TaskPasswordReset,
		"email":    user.Email,
		"token":    token,
		"priority": 8,
	}
	go func() {
		if err := uc.publisher.PublishNotificationTask(task); err != nil {
			uc.logger.Error("Failed to queue password reset for %s: %v", user.ID, err)
		}
	}()
	return nil
}

func (uc *authUseCase) ConfirmPasswordReset(ctx context.Context, token, newPassword string) error {
	claims, err := uc.resetTokens.ValidateToken(token)
	if err != nil {
		return entity.ErrUnauthorized
	}
	if len(newPassword) < minPasswordLength {
		return fmt.Errorf("%w: password must have at least %d characters", entity.ErrInvalidInput, minPasswordLength)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := uc.userRepo.UpdatePassword(ctx, claims.UserID, string(hashedPassword)); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	uc.logger.Info("Password reset for user %s", claims.UserID)
	return nil
}

func (uc *authUseCase) GetProfile(ctx context.Context, userID string) (*entity.Profile, error) {
	profile, err := uc.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}

func (uc *authUseCase) UpdateProfile(ctx context.Context, userID string, fullName *string) (*entity.Profile, error) {
	changes := make(map[string]interface{})
	if fullName != nil {
		changes["full_name"] = columnValue(fullName)
	}

	profile, err := uc.profileRepo.Update(ctx, userID, changes)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return profile, nil
}

func (uc *authUseCase) GetRoles(ctx context.Context, userID string) ([]entity.Role, error) {
	roles, err := uc.roleRepo.GetRoles(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get roles: %w", err)
	}
	return roles, nil
}

// ResolveRoles feeds the role gate middleware.
func (uc *authUseCase) ResolveRoles(ctx context.Context, userID string) ([]string, error) {
	roles, err := uc.GetRoles(ctx, userID)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = string(r)
	}
	return names, nil
}

func (uc *authUseCase) GrantRole(ctx context.Context, userID string, role entity.Role) error {
	if !role.Valid() {
		return fmt.Errorf("%w: unknown role %q", entity.ErrInvalidInput, role)
	}
	if _, err := uc.userRepo.GetByID(ctx, userID); err != nil {
		return fmt.Errorf("failed to load user: %w", err)
	}
	if err := uc.roleRepo.AddRole(ctx, userID, role); err != nil {
		return fmt.Errorf("failed to grant role: %w", err)
	}

	uc.logger.Info("Granted %s to user %s", role, userID)
	return nil
}

func (uc *authUseCase) RevokeRole(ctx context.Context, userID string, role entity.Role) error {
	if !role.Valid() {
		return fmt.Errorf("%w: unknown role %q", entity.ErrInvalidInput, role)
	}
	if err := uc.roleRepo.RemoveRole(ctx, userID, role); err != nil {
		return fmt.Errorf("failed to revoke role: %w", err)
	}

	uc.logger.Info("Revoked %s from user %s", role, userID)
	return nil
}

func (uc *authUseCase) issue(userID, email string) (*entity.AuthSession, error) {
	token, expiresAt, err := uc.tokens.GenerateToken(userID, email)
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, fmt.Errorf("failed to generate token")
	}

	return &entity.AuthSession{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresAt:   expiresAt,
		User:        entity.AuthUser{ID: userID, Email: email},
	}, nil
}
