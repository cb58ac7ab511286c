package usecase

import (
	"context"
	"testing"
	"time"

	"imersao-completa/internal/entity"
	"imersao-completa/internal/repo/persistent/mocks"
	"imersao-completa/pkg/jwt"
	"imersao-completa/pkg/queue"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

type AuthUseCaseTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	users     *mocks.MockUserRepository
	profiles  *mocks.MockProfileRepository
	roles     *mocks.MockRoleRepository
	tokens    *jwt.Service
	resets    *jwt.Service
	publisher *taskRecorder

	uc AuthUseCase
}

func (s *AuthUseCaseTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.users = mocks.NewMockUserRepository(s.ctrl)
	s.profiles = mocks.NewMockProfileRepository(s.ctrl)
	s.roles = mocks.NewMockRoleRepository(s.ctrl)
	s.tokens = jwt.NewService("access-secret")
	s.resets = jwt.NewServiceWithTTL("reset-secret", time.Hour)
	s.publisher = newTaskRecorder()

	s.uc = NewAuthUseCase(s.users, s.profiles, s.roles, s.tokens, s.resets, s.publisher, quietLogger())
}

func (s *AuthUseCaseTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAuthUseCaseTestSuite(t *testing.T) {
	suite.Run(t, new(AuthUseCaseTestSuite))
}

func (s *AuthUseCaseTestSuite) hashed(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	s.Require().NoError(err)
	return string(hash)
}

func (s *AuthUseCaseTestSuite) TestSignUp_CreatesUserWithProfile() {
	s.users.EXPECT().GetByEmail(gomock.Any(), "nova@example.com").Return(nil, entity.ErrNotFound)
	s.users.EXPECT().
		Create(gomock.Any(), gomock.Any(), gomock.Any(), entity.RoleUser).
		DoAndReturn(func(_ context.Context, u *entity.User, fullName *string, _ entity.Role) error {
			s.NoError(bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("segredo123")))
			s.Require().NotNil(fullName)
			s.Equal("Nova Leitora", *fullName)
			u.ID = "user-1"
			return nil
		})

	session, err := s.uc.SignUp(context.Background(), " Nova@Example.com ", "segredo123", "Nova Leitora")

	s.Require().NoError(err)
	s.Equal("user-1", session.User.ID)
	s.Equal("bearer", session.TokenType)

	claims, err := s.tokens.ValidateToken(session.AccessToken)
	s.Require().NoError(err)
	s.Equal("user-1", claims.UserID)
	s.Equal("nova@example.com", claims.Email)
}

func (s *AuthUseCaseTestSuite) TestSignUp_ShortPassword() {
	_, err := s.uc.SignUp(context.Background(), "a@example.com", "123", "")

	s.ErrorIs(err, entity.ErrInvalidInput)
}

func (s *AuthUseCaseTestSuite) TestSignUp_EmailTaken() {
	s.users.EXPECT().GetByEmail(gomock.Any(), "a@example.com").Return(&entity.User{ID: "existing"}, nil)

	_, err := s.uc.SignUp(context.Background(), "a@example.com", "segredo123", "")

	s.ErrorIs(err, entity.ErrEmailTaken)
}

func (s *AuthUseCaseTestSuite) TestSignIn() {
	user := &entity.User{ID: "user-1", Email: "a@example.com", PasswordHash: s.hashed("segredo123")}
	s.users.EXPECT().GetByEmail(gomock.Any(), "a@example.com").Return(user, nil).Times(2)

	session, err := s.uc.SignIn(context.Background(), "a@example.com", "segredo123")
	s.Require().NoError(err)
	s.Equal("user-1", session.User.ID)

	_, err = s.uc.SignIn(context.Background(), "a@example.com", "errada")
	s.ErrorIs(err, entity.ErrInvalidCredentials)
}

func (s *AuthUseCaseTestSuite) TestSignIn_UnknownEmail() {
	s.users.EXPECT().GetByEmail(gomock.Any(), "ninguem@example.com").Return(nil, entity.ErrNotFound)

	_, err := s.uc.SignIn(context.Background(), "ninguem@example.com", "x")

	s.ErrorIs(err, entity.ErrInvalidCredentials)
}

func (s *AuthUseCaseTestSuite) TestRefresh() {
	token, _, err := s.tokens.GenerateToken("user-1", "a@example.com")
	s.Require().NoError(err)
	s.users.EXPECT().GetByID(gomock.Any(), "user-1").Return(&entity.User{ID: "user-1", Email: "a@example.com"}, nil)

	session, err := s.uc.Refresh(context.Background(), token)

	s.Require().NoError(err)
	s.Equal("user-1", session.User.ID)

	_, err = s.uc.Refresh(context.Background(), "not-a-token")
	s.ErrorIs(err, entity.ErrUnauthorized)
}

func (s *AuthUseCaseTestSuite) TestResetPassword_UnknownEmailSucceeds() {
	s.users.EXPECT().GetByEmail(gomock.Any(), "ninguem@example.com").Return(nil, entity.ErrNotFound)

	s.NoError(s.uc.ResetPassword(context.Background(), "ninguem@example.com"))
	s.Empty(s.publisher.tasks)
}

func (s *AuthUseCaseTestSuite) TestResetPassword_QueuesToken() {
	s.users.EXPECT().GetByEmail(gomock.Any(), "a@example.com").Return(&entity.User{ID: "user-1", Email: "a@example.com"}, nil)

	s.Require().NoError(s.uc.ResetPassword(context.Background(), "a@example.com"))

	task := s.publisher.next(s.T())
	s.Equal(queue.TaskPasswordReset, task["type"])
	s.Equal("a@example.com", task["email"])

	claims, err := s.resets.ValidateToken(task["token"].(string))
	s.Require().NoError(err)
	s.Equal("user-1", claims.UserID)

	_, err = s.tokens.ValidateToken(task["token"].(string))
	s.Error(err)
}

func (s *AuthUseCaseTestSuite) TestConfirmPasswordReset() {
	token, _, err := s.resets.GenerateToken("user-1", "a@example.com")
	s.Require().NoError(err)

	s.users.EXPECT().
		UpdatePassword(gomock.Any(), "user-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, hash string) error {
			return bcrypt.CompareHashAndPassword([]byte(hash), []byte("nova-senha"))
		})

	s.NoError(s.uc.ConfirmPasswordReset(context.Background(), token, "nova-senha"))
}

func (s *AuthUseCaseTestSuite) TestConfirmPasswordReset_RejectsAccessToken() {
	token, _, err := s.tokens.GenerateToken("user-1", "a@example.com")
	s.Require().NoError(err)

	err = s.uc.ConfirmPasswordReset(context.Background(), token, "nova-senha")

	s.ErrorIs(err, entity.ErrUnauthorized)
}

func (s *AuthUseCaseTestSuite) TestResolveRoles() {
	s.roles.EXPECT().GetRoles(gomock.Any(), "user-1").Return([]entity.Role{entity.RoleEditor, entity.RoleUser}, nil)

	roles, err := s.uc.ResolveRoles(context.Background(), "user-1")

	s.Require().NoError(err)
	s.Equal([]string{"editor", "user"}, roles)
}

func (s *AuthUseCaseTestSuite) TestGrantRole() {
	s.users.EXPECT().GetByID(gomock.Any(), "user-1").Return(&entity.User{ID: "user-1"}, nil)
	s.roles.EXPECT().AddRole(gomock.Any(), "user-1", entity.RoleAdmin).Return(nil)

	s.NoError(s.uc.GrantRole(context.Background(), "user-1", entity.RoleAdmin))
	s.ErrorIs(s.uc.GrantRole(context.Background(), "user-1", entity.Role("root")), entity.ErrInvalidInput)
}

func TestAuthUseCase_UpdateProfileClearsBlankName(t *testing.T) {
	ctrl := gomock.NewController(t)
	profiles := mocks.NewMockProfileRepository(ctrl)
	uc := NewAuthUseCase(mocks.NewMockUserRepository(ctrl), profiles, mocks.NewMockRoleRepository(ctrl), jwt.NewService("s"), jwt.NewService("r"), nil, quietLogger())

	profiles.EXPECT().
		Update(gomock.Any(), "user-1", map[string]interface{}{"full_name": nil}).
		Return(&entity.Profile{ID: "user-1"}, nil)

	profile, err := uc.UpdateProfile(context.Background(), "user-1", strPtr("  "))

	require.NoError(t, err)
	assert.Nil(t, profile.FullName)
}
