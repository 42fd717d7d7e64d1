package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"NUTRIPLAN_BACK-END/internal/common"
	"NUTRIPLAN_BACK-END/internal/config"
	"NUTRIPLAN_BACK-END/internal/dto"
	"NUTRIPLAN_BACK-END/internal/middleware"
	"NUTRIPLAN_BACK-END/internal/store"
	"NUTRIPLAN_BACK-END/internal/utils"
)

// AuthHandler handles registration, login and the authenticated profile
type AuthHandler struct {
	store  Store
	jwtCfg *config.JWTConfig
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(s Store, jwtCfg *config.JWTConfig) *AuthHandler {
	return &AuthHandler{store: s, jwtCfg: jwtCfg}
}

// Register handles user registration
// @Summary Register a new user
// @Description Create a new user account with username, email, and password
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "User registration data"
// @Success 200 {object} dto.AuthResponse "User created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request or username taken"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, &common.ValidationError{Message: "Invalid request body"})
		return
	}

	if req.Username == "" || req.Email == "" || req.Password == "" {
		utils.WriteError(w, &common.ValidationError{Message: "Username, email, and password are required"})
		return
	}

	// Check if user already exists
	_, err := h.store.GetUserByUsername(r.Context(), req.Username)
	if err == nil {
		utils.WriteError(w, &common.ValidationError{Message: "User already exists"})
		return
	}
	if !errors.Is(err, store.ErrNotFound) {
		utils.WriteError(w, err)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	user, err := h.store.CreateUser(r.Context(), req.Username, req.Email, string(hashedPassword))
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Error creating user")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.AuthResponse{
		Status:  http.StatusOK,
		Message: "User registered successfully",
		User: &dto.UserInfo{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
		},
	})
}

// Login handles user login
// @Summary Login user
// @Description Authenticate with username or email plus password
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.AuthResponse "Login successful"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, &common.ValidationError{Message: "Invalid request body"})
		return
	}

	if req.Username == "" || req.Password == "" {
		utils.WriteError(w, &common.ValidationError{Message: "Username and password are required"})
		return
	}

	// The login field matches either username or email
	user, err := h.store.GetUserByLogin(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.WriteError(w, &common.UnauthorizedError{Message: "Invalid credentials"})
			return
		}
		utils.WriteError(w, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		utils.WriteError(w, &common.UnauthorizedError{Message: "Invalid credentials"})
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Username, user.Email, h.jwtCfg)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.AuthResponse{
		Status:  http.StatusOK,
		Message: "Login successful",
		User: &dto.UserInfo{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
		},
		Token: token,
	})
}

// Me returns the authenticated user's profile
// @Summary Get current user
// @Description Get the authenticated user's account information
// @Tags authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.AuthResponse "User retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		utils.WriteError(w, &common.UnauthorizedError{Message: "User not authenticated"})
		return
	}

	user, err := h.store.GetUserByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.WriteError(w, &common.NotFoundError{Message: "User not found"})
			return
		}
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.AuthResponse{
		Status:  http.StatusOK,
		Message: "User retrieved successfully",
		User: &dto.UserInfo{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
		},
	})
}
