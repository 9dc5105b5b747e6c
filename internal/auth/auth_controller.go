package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pratikg-29/footstats/config"
	mw "github.com/pratikg-29/footstats/internal/middleware"
	"github.com/pratikg-29/footstats/internal/user"
	"github.com/pratikg-29/footstats/pkg/responses"
	"github.com/pratikg-29/footstats/pkg/token"
	"github.com/pratikg-29/footstats/pkg/validator"
	"github.com/pratikg-29/footstats/utils"
)

// AuthController handles registration and login
type AuthController struct {
	repo AuthRepository
	cfg  *config.Config
}

// NewAuthController creates a new auth controller
func NewAuthController(repo AuthRepository, cfg *config.Config) *AuthController {
	return &AuthController{repo: repo, cfg: cfg}
}

// Register godoc
// @Summary Register a new user
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body RegisterRequest true "Registration payload"
// @Success 201 {object} responses.SuccessResponse
// @Failure 409 {object} responses.ErrorResponse
// @Router /auth/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}

	exists, err := ac.repo.ExistsByUsernameOrEmail(req.Username, req.Email)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to check existing users")
		return
	}
	if exists {
		responses.SendError(c, http.StatusConflict, "Username or email is already registered")
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to process password")
		return
	}

	u := user.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hashed,
		Role:     user.RoleViewer,
	}
	if err := ac.repo.CreateUser(&u); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to create user")
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "User registered successfully", gin.H{
		"id":       u.ID,
		"username": u.Username,
		"email":    u.Email,
	})
}

// Login godoc
// @Summary Log in
// @Description Exchanges username/email + password for a bearer token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login payload"
// @Success 200 {object} responses.SuccessResponse
// @Failure 401 {object} responses.ErrorResponse
// @Router /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}

	u, err := ac.repo.GetUserByIdentifier(req.LoginIdentifier)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to look up user")
		return
	}
	if u == nil || !utils.CheckPassword(u.Password, req.Password) {
		responses.SendError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	expiry := ac.cfg.JWT.AccessTokenExpiryMinutes
	accessToken, err := token.GenerateJWT(u.ID, u.Role, ac.cfg.JWT.AccessTokenSecret, expiry)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Logged in successfully", AuthResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   expiry * 60,
	})
}

// GetProfile godoc
// @Summary Current user profile
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} responses.SuccessResponse
// @Failure 401 {object} responses.ErrorResponse
// @Router /auth/me [get]
func (ac *AuthController) GetProfile(c *gin.Context) {
	userID, err := mw.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	u, err := ac.repo.GetUserByID(userID)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to fetch profile")
		return
	}
	if u == nil {
		responses.SendError(c, http.StatusNotFound, "User not found")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", u)
}
