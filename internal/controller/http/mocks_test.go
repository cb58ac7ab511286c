package http

import (
	"context"
	"io"

	"imersao-completa/internal/entity"
	"imersao-completa/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// asUser wraps handler so it runs as if AuthMiddleware accepted a token.
func asUser(userID string, handler gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("user_email", userID+"@imersaocompleta.com.br")
		c.Set("access_token", "token-"+userID)
		handler(c)
	}
}

type MockPostUseCase struct {
	mock.Mock
}

func (m *MockPostUseCase) List(ctx context.Context, filters usecase.PostFilters) ([]*entity.Post, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) Get(ctx context.Context, idOrSlug string) (*entity.Post, error) {
	args := m.Called(ctx, idOrSlug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) Create(ctx context.Context, authorID string, input usecase.CreatePostInput) (*entity.Post, error) {
	args := m.Called(ctx, authorID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) Update(ctx context.Context, id string, input usecase.UpdatePostInput) (*entity.Post, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPostUseCase) Publish(ctx context.Context, id string) (*entity.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) Unpublish(ctx context.Context, id string) (*entity.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

var _ usecase.PostUseCase = (*MockPostUseCase)(nil)

type MockPublicPostUseCase struct {
	mock.Mock
}

func (m *MockPublicPostUseCase) posts(args mock.Arguments) ([]*entity.Post, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

func (m *MockPublicPostUseCase) Featured(ctx context.Context) ([]*entity.Post, error) {
	return m.posts(m.Called(ctx))
}

func (m *MockPublicPostUseCase) Recent(ctx context.Context) ([]*entity.Post, error) {
	return m.posts(m.Called(ctx))
}

func (m *MockPublicPostUseCase) Popular(ctx context.Context) ([]*entity.Post, error) {
	return m.posts(m.Called(ctx))
}

func (m *MockPublicPostUseCase) ByCategory(ctx context.Context, categorySlug string) ([]*entity.Post, error) {
	return m.posts(m.Called(ctx, categorySlug))
}

func (m *MockPublicPostUseCase) BySlug(ctx context.Context, slug string) (*entity.Post, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPublicPostUseCase) Related(ctx context.Context, postID, categoryID string) ([]*entity.Post, error) {
	return m.posts(m.Called(ctx, postID, categoryID))
}

func (m *MockPublicPostUseCase) Search(ctx context.Context, query string) ([]*entity.Post, error) {
	return m.posts(m.Called(ctx, query))
}

var _ usecase.PublicPostUseCase = (*MockPublicPostUseCase)(nil)

type MockCategoryUseCase struct {
	mock.Mock
}

func (m *MockCategoryUseCase) List(ctx context.Context) ([]*entity.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Category), args.Error(1)
}

func (m *MockCategoryUseCase) GetBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Category), args.Error(1)
}

func (m *MockCategoryUseCase) Create(ctx context.Context, input usecase.CreateCategoryInput) (*entity.Category, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Category), args.Error(1)
}

func (m *MockCategoryUseCase) Update(ctx context.Context, id string, input usecase.UpdateCategoryInput) (*entity.Category, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Category), args.Error(1)
}

func (m *MockCategoryUseCase) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

var _ usecase.CategoryUseCase = (*MockCategoryUseCase)(nil)

type MockTagUseCase struct {
	mock.Mock
}

func (m *MockTagUseCase) List(ctx context.Context) ([]entity.Tag, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Tag), args.Error(1)
}

func (m *MockTagUseCase) GetBySlug(ctx context.Context, slug string) (*entity.Tag, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Tag), args.Error(1)
}

func (m *MockTagUseCase) Create(ctx context.Context, input usecase.CreateTagInput) (*entity.Tag, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Tag), args.Error(1)
}

func (m *MockTagUseCase) Update(ctx context.Context, id string, input usecase.UpdateTagInput) (*entity.Tag, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Tag), args.Error(1)
}

func (m *MockTagUseCase) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

var _ usecase.TagUseCase = (*MockTagUseCase)(nil)

type MockAdvertisementUseCase struct {
	mock.Mock
}

func (m *MockAdvertisementUseCase) List(ctx context.Context) ([]*entity.Advertisement, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Advertisement), args.Error(1)
}

func (m *MockAdvertisementUseCase) ForPosition(ctx context.Context, position entity.AdPosition) (*entity.Advertisement, error) {
	args := m.Called(ctx, position)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Advertisement), args.Error(1)
}

func (m *MockAdvertisementUseCase) ListByPosition(ctx context.Context, position entity.AdPosition) ([]*entity.Advertisement, error) {
	args := m.Called(ctx, position)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Advertisement), args.Error(1)
}

func (m *MockAdvertisementUseCase) Create(ctx context.Context, input usecase.CreateAdInput) (*entity.Advertisement, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Advertisement), args.Error(1)
}

func (m *MockAdvertisementUseCase) Update(ctx context.Context, id string, input usecase.UpdateAdInput) (*entity.Advertisement, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Advertisement), args.Error(1)
}

func (m *MockAdvertisementUseCase) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockAdvertisementUseCase) TrackClick(ctx context.Context, id string) {
	m.Called(ctx, id)
}

func (m *MockAdvertisementUseCase) TrackImpression(ctx context.Context, id string) {
	m.Called(ctx, id)
}

var _ usecase.AdvertisementUseCase = (*MockAdvertisementUseCase)(nil)

type MockNewsletterUseCase struct {
	mock.Mock
}

func (m *MockNewsletterUseCase) List(ctx context.Context) ([]*entity.NewsletterSubscriber, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.NewsletterSubscriber), args.Error(1)
}

func (m *MockNewsletterUseCase) ListActive(ctx context.Context) ([]*entity.NewsletterSubscriber, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.NewsletterSubscriber), args.Error(1)
}

func (m *MockNewsletterUseCase) Subscribe(ctx context.Context, input usecase.SubscribeInput) (*entity.NewsletterSubscriber, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.NewsletterSubscriber), args.Error(1)
}

func (m *MockNewsletterUseCase) Unsubscribe(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockNewsletterUseCase) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockNewsletterUseCase) ExportCSV(ctx context.Context, w io.Writer) error {
	args := m.Called(ctx, w)
	if body, ok := args.Get(0).(string); ok {
		io.WriteString(w, body)
	}
	return args.Error(1)
}

var _ usecase.NewsletterUseCase = (*MockNewsletterUseCase)(nil)

type MockAuthUseCase struct {
	mock.Mock
}

func (m *MockAuthUseCase) session(args mock.Arguments) (*entity.AuthSession, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.AuthSession), args.Error(1)
}

func (m *MockAuthUseCase) SignUp(ctx context.Context, email, password, fullName string) (*entity.AuthSession, error) {
	return m.session(m.Called(ctx, email, password, fullName))
}

func (m *MockAuthUseCase) SignIn(ctx context.Context, email, password string) (*entity.AuthSession, error) {
	return m.session(m.Called(ctx, email, password))
}

func (m *MockAuthUseCase) Refresh(ctx context.Context, accessToken string) (*entity.AuthSession, error) {
	return m.session(m.Called(ctx, accessToken))
}

func (m *MockAuthUseCase) ResetPassword(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

func (m *MockAuthUseCase) ConfirmPasswordReset(ctx context.Context, token, newPassword string) error {
	return m.Called(ctx, token, newPassword).Error(0)
}

func (m *MockAuthUseCase) GetProfile(ctx context.Context, userID string) (*entity.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Profile), args.Error(1)
}

func (m *MockAuthUseCase) UpdateProfile(ctx context.Context, userID string, fullName *string) (*entity.Profile, error) {
	args := m.Called(ctx, userID, fullName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Profile), args.Error(1)
}

func (m *MockAuthUseCase) GetRoles(ctx context.Context, userID string) ([]entity.Role, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Role), args.Error(1)
}

func (m *MockAuthUseCase) ResolveRoles(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockAuthUseCase) GrantRole(ctx context.Context, userID string, role entity.Role) error {
	return m.Called(ctx, userID, role).Error(0)
}

func (m *MockAuthUseCase) RevokeRole(ctx context.Context, userID string, role entity.Role) error {
	return m.Called(ctx, userID, role).Error(0)
}

var _ usecase.AuthUseCase = (*MockAuthUseCase)(nil)

type MockMediaUseCase struct {
	mock.Mock
}

func (m *MockMediaUseCase) Upload(ctx context.Context, userID, folder, filename, contentType string, body io.Reader) (string, error) {
	args := m.Called(ctx, userID, folder, filename, contentType, body)
	return args.String(0), args.Error(1)
}

func (m *MockMediaUseCase) UploadAvatar(ctx context.Context, userID, filename, contentType string, body io.Reader) (*entity.Profile, error) {
	args := m.Called(ctx, userID, filename, contentType, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Profile), args.Error(1)
}

var _ usecase.MediaUseCase = (*MockMediaUseCase)(nil)

type MockStatsUseCase struct {
	mock.Mock
}

func (m *MockStatsUseCase) Dashboard(ctx context.Context) (*entity.DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.DashboardStats), args.Error(1)
}

var _ usecase.StatsUseCase = (*MockStatsUseCase)(nil)
