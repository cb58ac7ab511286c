package http

import (
	"net/http"

	"imersao-completa/internal/entity"
	"imersao-completa/internal/usecase"
	"imersao-completa/pkg/logger"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase  usecase.AuthUseCase
	mediaUseCase usecase.MediaUseCase
	logger       *logger.Logger
}

func NewAuthHandler(authUseCase usecase.AuthUseCase, mediaUseCase usecase.MediaUseCase, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase:  authUseCase,
		mediaUseCase: mediaUseCase,
		logger:       logger,
	}
}

type SignUpRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"full_name"`
}

type SignInRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ResetPasswordRequest struct {
	Email string `json:"email" binding:"required"`
}

type ConfirmResetRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	FullName *string `json:"full_name"`
}

type GrantRoleRequest struct {
	Role entity.Role `json:"role" binding:"required"`
}

// MeResponse is the signed-in user with profile and roles.
type MeResponse struct {
	User    entity.AuthUser `json:"user"`
	Profile *entity.Profile `json:"profile"`
	Roles   []entity.Role   `json:"roles"`
	IsAdmin bool            `json:"is_admin"`
	Editor  bool            `json:"is_editor"`
}

// SignUp godoc
// @Summary      Register
// @Description  Create an account with the user role and return a session
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials body SignUpRequest true "Account"
// @Success      201  {object}  entity.AuthSession
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /auth/signup [post]
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	session, err := h.authUseCase.SignUp(c.Request.Context(), req.Email, req.Password, req.FullName)
	if err != nil {
		respondError(c, h.logger, err, "Failed to sign up")
		return
	}

	c.JSON(http.StatusCreated, session)
}

// SignIn godoc
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials body SignInRequest true "Credentials"
// @Success      200  {object}  entity.AuthSession
// @Failure      401  {object}  map[string]string
// @Router       /auth/signin [post]
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	session, err := h.authUseCase.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, h.logger, err, "Failed to sign in")
		return
	}

	c.JSON(http.StatusOK, session)
}

// SignOut godoc
// @Summary      Logout
// @Description  Tokens are stateless; the client discards its token
// @Tags         auth
// @Security     BearerAuth
// @Success      204
// @Router       /auth/signout [post]
func (h *AuthHandler) SignOut(c *gin.Context) {
	h.logger.Info("user %s signed out", c.GetString("user_id"))
	c.Status(http.StatusNoContent)
}

// Refresh godoc
// @Summary      Refresh session
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  entity.AuthSession
// @Failure      401  {object}  map[string]string
// @Router       /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	session, err := h.authUseCase.Refresh(c.Request.Context(), c.GetString("access_token"))
	if err != nil {
		respondError(c, h.logger, err, "Failed to refresh session")
		return
	}

	c.JSON(http.StatusOK, session)
}

// ResetPassword godoc
// @Summary      Request password reset
// @Description  Always accepted so that registered emails cannot be probed
// @Tags         auth
// @Accept       json
// @Param        request body ResetPasswordRequest true "Email"
// @Success      202
// @Router       /auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if err := h.authUseCase.ResetPassword(c.Request.Context(), req.Email); err != nil {
		respondError(c, h.logger, err, "Failed to request password reset")
		return
	}

	c.Status(http.StatusAccepted)
}

// ConfirmPasswordReset godoc
// @Summary      Set a new password
// @Tags         auth
// @Accept       json
// @Param        request body ConfirmResetRequest true "Reset token and new password"
// @Success      204
// @Failure      401  {object}  map[string]string
// @Router       /auth/reset-password/confirm [post]
func (h *AuthHandler) ConfirmPasswordReset(c *gin.Context) {
	var req ConfirmResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if err := h.authUseCase.ConfirmPasswordReset(c.Request.Context(), req.Token, req.Password); err != nil {
		respondError(c, h.logger, err, "Failed to reset password")
		return
	}

	c.Status(http.StatusNoContent)
}

// Me godoc
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  MeResponse
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.GetString("user_id")

	profile, err := h.authUseCase.GetProfile(ctx, userID)
	if err != nil {
		respondError(c, h.logger, err, "Failed to fetch profile")
		return
	}

	roles, err := h.authUseCase.GetRoles(ctx, userID)
	if err != nil {
		respondError(c, h.logger, err, "Failed to fetch roles")
		return
	}
	if roles == nil {
		roles = []entity.Role{}
	}

	c.JSON(http.StatusOK, MeResponse{
		User:    entity.AuthUser{ID: userID, Email: c.GetString("user_email")},
		Profile: profile,
		Roles:   roles,
		IsAdmin: entity.IsAdmin(roles),
		Editor:  entity.IsEditor(roles),
	})
}

// UpdateMe godoc
// @Summary      Update profile
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        profile body UpdateProfileRequest true "Changes"
// @Success      200  {object}  entity.Profile
// @Router       /auth/me [put]
func (h *AuthHandler) UpdateMe(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	profile, err := h.authUseCase.UpdateProfile(c.Request.Context(), c.GetString("user_id"), req.FullName)
	if err != nil {
		respondError(c, h.logger, err, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UploadAvatar godoc
// @Summary      Upload avatar
// @Tags         auth
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file formData file true "Image"
// @Success      200  {object}  entity.Profile
// @Failure      400  {object}  map[string]string
// @Router       /auth/me/avatar [post]
func (h *AuthHandler) UploadAvatar(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
		return
	}
	defer file.Close()

	if header.Size > usecase.MaxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File too large"})
		return
	}

	profile, err := h.mediaUseCase.UploadAvatar(
		c.Request.Context(),
		c.GetString("user_id"),
		header.Filename,
		header.Header.Get("Content-Type"),
		file,
	)
	if err != nil {
		respondError(c, h.logger, err, "Failed to upload avatar")
		return
	}

	c.JSON(http.StatusOK, profile)
}

// GrantRole godoc
// @Summary      Grant role
// @Tags         admin-users
// @Accept       json
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Param        role body GrantRoleRequest true "Role"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/users/{id}/roles [post]
func (h *AuthHandler) GrantRole(c *gin.Context) {
	var req GrantRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if err := h.authUseCase.GrantRole(c.Request.Context(), c.Param("id"), req.Role); err != nil {
		respondError(c, h.logger, err, "Failed to grant role")
		return
	}

	c.Status(http.StatusNoContent)
}

// RevokeRole godoc
// @Summary      Revoke role
// @Tags         admin-users
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Param        role path string true "Role" Enums(admin, editor, user)
// @Success      204
// @Router       /admin/users/{id}/roles/{role} [delete]
func (h *AuthHandler) RevokeRole(c *gin.Context) {
	err := h.authUseCase.RevokeRole(c.Request.Context(), c.Param("id"), entity.Role(c.Param("role")))
	if err != nil {
		respondError(c, h.logger, err, "Failed to revoke role")
		return
	}

	c.Status(http.StatusNoContent)
}
