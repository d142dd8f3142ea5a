package api

import (
	"errors"
	"net/http"
	"time"

	"voting-platform/internal/domain/user"
	reqdto "voting-platform/internal/handler/dto/request"
	resdto "voting-platform/internal/handler/dto/response"
	"voting-platform/internal/handler/httperr"
	"voting-platform/internal/handler/middleware"
	"voting-platform/internal/pkg/config"
	"voting-platform/internal/pkg/cookie"
	"voting-platform/internal/usecase/commands"
	"voting-platform/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds          commands.AuthCommands
	userQueries   queries.UserQueries
	cookieCfg     config.CookieConfig
	tokenDuration time.Duration
}

func NewAuthHandler(cmds commands.AuthCommands, userQueries queries.UserQueries, cookieCfg config.CookieConfig, tokenDuration time.Duration) *AuthHandler {
	return &AuthHandler{
		cmds:          cmds,
		userQueries:   userQueries,
		cookieCfg:     cookieCfg,
		tokenDuration: tokenDuration,
	}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req reqdto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.cmds.Signup(c.Request.Context(), commands.SignupParams{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		LinkedinURL: req.GetLinkedinURL(),
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrEmailAlreadyRegistered):
			httperr.AbortWithError(c, http.StatusConflict, err, "Email already registered", nil)
		case errors.Is(err, user.ErrInvalidEmail),
			errors.Is(err, user.ErrPasswordTooWeak),
			errors.Is(err, user.ErrEmptyName):
			httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromAuthorizedUserView(view))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	token, view, err := h.cmds.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidCredentials):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
		case errors.Is(err, commands.ErrUserInactive):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Account is deactivated", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	cookie.SetTokenCookie(c, h.cookieCfg, token, h.tokenDuration)
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  resdto.FromAuthorizedUserView(view),
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearTokenCookie(c, h.cookieCfg)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingAuthContext, "Unauthorized", nil)
		return
	}

	view, err := h.userQueries.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
		case errors.Is(err, queries.ErrUserInactive):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Account is deactivated", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAuthorizedUserView(view))
}
