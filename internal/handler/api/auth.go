package api

import (
	"errors"
	"net/http"

	reqdto "sneakdrop/internal/handler/dto/request"
	resdto "sneakdrop/internal/handler/dto/response"
	"sneakdrop/internal/handler/httperr"
	"sneakdrop/internal/handler/middleware"
	"sneakdrop/internal/pkg/config"
	"sneakdrop/internal/pkg/cookie"
	"sneakdrop/internal/pkg/jwt"
	"sneakdrop/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	jwtService  *jwt.Service
	cookieCfg   config.CookieConfig
}

func NewAuthHandler(authUseCase usecase.AuthUseCase, jwtService *jwt.Service, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		jwtService:  jwtService,
		cookieCfg:   cfg.Cookie,
	}
}

// @Summary Register
// @Description Create a new member account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Register request"
// @Success 201 {object} resdto.UserResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidBody)
		return
	}

	credentials, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidBody)
		return
	}

	account, err := h.authUseCase.Register(c.Request.Context(), credentials, req.Username)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmailTaken):
			httperr.AbortWithError(c, http.StatusConflict, err, "Cet email est déjà utilisé")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternalError)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromAuthorizedUser(account))
}

// @Summary Login
// @Description Login with email and password, sets the access token cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidBody)
		return
	}

	credentials, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidBody)
		return
	}

	token, account, err := h.authUseCase.Login(c.Request.Context(), credentials)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidCredentials), errors.Is(err, usecase.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Email ou mot de passe invalide")
		case errors.Is(err, usecase.ErrUserInactive):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Compte désactivé")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternalError)
		}
		return
	}

	cookie.SetTokenCookie(c, h.cookieCfg, token, h.jwtService.TokenDuration())

	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: token,
		User:        resdto.FromAuthorizedUser(account),
	})
}

// @Summary Logout
// @Description Clear the access token cookie
// @Tags auth
// @Success 204 "No Content"
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearTokenCookie(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Current user
// @Description Profile of the authenticated caller
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user in context"), "Authentification requise")
		return
	}

	account, err := h.authUseCase.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Utilisateur introuvable")
		case errors.Is(err, usecase.ErrUserInactive):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Compte désactivé")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternalError)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAuthorizedUser(account))
}
