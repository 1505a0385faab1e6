package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"storedash/internal/logging"
	"storedash/internal/server/auth"
	"storedash/internal/server/config"
	"storedash/internal/server/store"
)

// Handlers carries the dependencies shared by all route handlers.
type Handlers struct {
	cfg   *config.Config
	store *store.Store
	log   logging.Logger
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"accessToken"`
	ID          int    `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Image       string `json:"image"`
}

type meResponse struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Gender    string `json:"gender"`
	Image     string `json:"image"`
	Age       int    `json:"age"`
	BirthDate string `json:"birthDate"`
	Phone     string `json:"phone"`
}

// Login verifies credentials and returns a signed access token together
// with the account's public fields.
func (h *Handlers) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	if req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username and password required"})
		return
	}

	user, err := h.store.UserByUsername(req.Username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}
		h.log.Error(c.Request.Context(), "user lookup failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	token, err := auth.GenerateToken(user.ID, []byte(h.cfg.SecretKey), h.cfg.AccessTokenValidityDuration)
	if err != nil {
		h.log.Error(c.Request.Context(), "token generation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, loginResponse{
		AccessToken: token,
		ID:          user.ID,
		Username:    user.Username,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Image:       user.Image,
	})
}

// Me returns the profile of the authenticated user.
func (h *Handlers) Me(c *gin.Context) {
	userID := c.GetInt(userIDKey)

	user, err := h.store.UserByID(userID)
	if err != nil {
		// The token was valid, so a missing account means the fixture
		// data and the token issuer disagree.
		h.log.Error(c.Request.Context(), "profile lookup failed", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, meResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Gender:    user.Gender,
		Image:     user.Image,
		Age:       user.Age,
		BirthDate: user.BirthDate,
		Phone:     user.Phone,
	})
}

// Products serves one page of the catalog. Paging params are optional;
// skip defaults to 0 and limit to 30, matching the public demo API.
func (h *Handlers) Products(c *gin.Context) {
	skip, ok := queryInt(c, "skip", 0)
	if !ok || skip < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid 'skip' parameter"})
		return
	}
	limit, ok := queryInt(c, "limit", 30)
	if !ok || limit <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid 'limit' parameter"})
		return
	}

	page := h.store.ProductPage(skip, limit)

	c.JSON(http.StatusOK, gin.H{
		"products": page.Products,
		"total":    page.Total,
		"skip":     page.Skip,
		"limit":    page.Limit,
	})
}

// queryInt parses an optional integer query parameter.
func queryInt(c *gin.Context, name string, def int) (int, bool) {
	raw, exists := c.GetQuery(name)
	if !exists {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
