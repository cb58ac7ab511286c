package http

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"imersao-completa/internal/entity"
	"imersao-completa/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func testSession() *entity.AuthSession {
	return &entity.AuthSession{
		AccessToken: "token-abc",
		TokenType:   "bearer",
		ExpiresAt:   time.Date(2024, 3, 11, 12, 0, 0, 0, time.UTC),
		User:        entity.AuthUser{ID: "user-1", Email: "ana@example.com"},
	}
}

func TestSignIn_Success(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase, new(MockMediaUseCase), logger.New())

	router := setupTestRouter()
	router.POST("/auth/signin", handler.SignIn)

	mockUseCase.On("SignIn", mock.Anything, "ana@example.com", "segredo").Return(testSession(), nil)

	body, _ := json.Marshal(SignInRequest{Email: "ana@example.com", Password: "segredo"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/auth/signin", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "token-abc", response["access_token"])
	assert.Equal(t, "bearer", response["token_type"])
}

func TestSignIn_InvalidCredentials(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase, new(MockMediaUseCase), logger.New())

	router := setupTestRouter()
	router.POST("/auth/signin", handler.SignIn)

	mockUseCase.On("SignIn", mock.Anything, mock.Anything, mock.Anything).Return(nil, entity.ErrInvalidCredentials)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/auth/signin", bytes.NewBufferString(`{"email":"ana@example.com","password":"errada"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSignIn_MissingFields(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase, new(MockMediaUseCase), logger.New())

	router := setupTestRouter()
	router.POST("/auth/signin", handler.SignIn)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/auth/signin", bytes.NewBufferString(`{"email":"ana@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "SignIn", mock.Anything, mock.Anything, mock.Anything)
}

func TestSignUp_EmailTaken(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase, new(MockMediaUseCase), logger.New())

	router := setupTestRouter()
	router.POST("/auth/signup", handler.SignUp)

	mockUseCase.On("SignUp", mock.Anything, "ana@example.com", "segredo", "Ana").Return(nil, entity.ErrEmailTaken)

	body, _ := json.Marshal(SignUpRequest{Email: "ana@example.com", Password: "segredo", FullName: "Ana"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/auth/signup", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestRefresh_UsesBearerToken(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase, new(MockMediaUseCase), logger.New())

	router := setupTestRouter()
	router.POST("/auth/refresh", asUser("user-1", handler.Refresh))

	mockUseCase.On("Refresh", mock.Anything, "token-user-1").Return(testSession(), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/auth/refresh", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestResetPassword_Accepted(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase, new(MockMediaUseCase), logger.New())

	router := setupTestRouter()
	router.POST("/auth/reset-password", handler.ResetPassword)
	router.POST("/auth/reset-password/confirm", handler.ConfirmPasswordReset)

	mockUseCase.On("ResetPassword", mock.Anything, "ninguem@example.com").Return(nil)
	mockUseCase.On("ConfirmPasswordReset", mock.Anything, "bad-token", "novasenha").Return(entity.ErrUnauthorized)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/auth/reset-password", bytes.NewBufferString(`{"email":"ninguem@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusAccepted, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("POST", "/auth/reset-password/confirm", bytes.NewBufferString(`{"token":"bad-token","password":"novasenha"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	mockUseCase.AssertExpectations(t)
}

func TestMe_IncludesRoles(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase, new(MockMediaUseCase), logger.New())

	router := setupTestRouter()
	router.GET("/auth/me", asUser("user-1", handler.Me))

	name := "Ana"
	mockUseCase.On("GetProfile", mock.Anything, "user-1").Return(&entity.Profile{ID: "user-1", FullName: &name}, nil)
	mockUseCase.On("GetRoles", mock.Anything, "user-1").Return([]entity.Role{entity.RoleEditor}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/auth/me", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response MeResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "user-1@imersaocompleta.com.br", response.User.Email)
	assert.Equal(t, "Ana", *response.Profile.FullName)
	assert.Equal(t, []entity.Role{entity.RoleEditor}, response.Roles)
	assert.False(t, response.IsAdmin)
	assert.True(t, response.Editor)
}

func TestUpdateMe(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase, new(MockMediaUseCase), logger.New())

	router := setupTestRouter()
	router.PUT("/auth/me", asUser("user-1", handler.UpdateMe))

	name := "Ana Souza"
	mockUseCase.On("UpdateProfile", mock.Anything, "user-1", &name).Return(&entity.Profile{ID: "user-1", FullName: &name}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/auth/me", bytes.NewBufferString(`{"full_name":"Ana Souza"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestUploadAvatar(t *testing.T) {
	mediaUseCase := new(MockMediaUseCase)
	handler := NewAuthHandler(new(MockAuthUseCase), mediaUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/auth/me/avatar", asUser("user-1", handler.UploadAvatar))

	url := "https://cdn.example.com/avatars/user-1/a.png"
	mediaUseCase.On("UploadAvatar", mock.Anything, "user-1", "foto.png", "image/png", mock.Anything).
		Return(&entity.Profile{ID: "user-1", AvatarURL: &url}, nil)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="foto.png"`)
	header.Set("Content-Type", "image/png")
	part, _ := writer.CreatePart(header)
	part.Write([]byte("\x89PNG"))
	writer.Close()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/auth/me/avatar", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, url, response["avatar_url"])
	mediaUseCase.AssertExpectations(t)
}

func TestUploadAvatar_NoFile(t *testing.T) {
	handler := NewAuthHandler(new(MockAuthUseCase), new(MockMediaUseCase), logger.New())

	router := setupTestRouter()
	router.POST("/auth/me/avatar", asUser("user-1", handler.UploadAvatar))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/auth/me/avatar", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGrantAndRevokeRole(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase, new(MockMediaUseCase), logger.New())

	router := setupTestRouter()
	router.POST("/admin/users/:id/roles", handler.GrantRole)
	router.DELETE("/admin/users/:id/roles/:role", handler.RevokeRole)

	mockUseCase.On("GrantRole", mock.Anything, "user-2", entity.RoleEditor).Return(nil)
	mockUseCase.On("RevokeRole", mock.Anything, "user-2", entity.Role("owner")).Return(entity.ErrInvalidInput)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/admin/users/user-2/roles", bytes.NewBufferString(`{"role":"editor"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("DELETE", "/admin/users/user-2/roles/owner", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	mockUseCase.AssertExpectations(t)
}
