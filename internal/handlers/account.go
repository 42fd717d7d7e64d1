package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"NUTRIPLAN_BACK-END/internal/common"
	"NUTRIPLAN_BACK-END/internal/dto"
	"NUTRIPLAN_BACK-END/internal/store"
	"NUTRIPLAN_BACK-END/internal/utils"
)

// AccountHandler handles email and password changes
type AccountHandler struct {
	store Store
}

// NewAccountHandler creates a new AccountHandler instance
func NewAccountHandler(s Store) *AccountHandler {
	return &AccountHandler{store: s}
}

// UpdateEmail handles account email changes
// @Summary Update account email
// @Description Replace the account email with a new, unused address
// @Tags account
// @Accept json
// @Produce json
// @Param request body dto.UpdateEmailRequest true "Email change data"
// @Success 200 {object} dto.MessageResponse "Email updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Email unchanged or already in use"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /update-email [put]
func (h *AccountHandler) UpdateEmail(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.UpdateEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, &common.ValidationError{Message: "Invalid request body"})
		return
	}

	user, err := h.store.GetUserByUsername(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.WriteError(w, &common.NotFoundError{Message: "User not found"})
			return
		}
		utils.WriteError(w, err)
		return
	}

	if req.NewEmail == "" || req.NewEmail == user.Email {
		utils.WriteError(w, &common.ValidationError{Message: "New email is the same as the current email"})
		return
	}

	inUse, err := h.store.EmailInUse(r.Context(), req.NewEmail)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	if inUse {
		utils.WriteError(w, &common.ValidationError{Message: "Email already in use"})
		return
	}

	// Not atomic with the checks above: each statement auto-commits on its
	// own connection, so a concurrent change on the same row can slip in.
	if err := h.store.UpdateEmail(r.Context(), user.ID, req.NewEmail); err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{
		Status:  http.StatusOK,
		Message: "Email updated successfully",
	})
}

// UpdatePassword handles account password changes
// @Summary Update account password
// @Description Verify the current password and replace it with a new one
// @Tags account
// @Accept json
// @Produce json
// @Param request body dto.UpdatePasswordRequest true "Password change data"
// @Success 200 {object} dto.MessageResponse "Password updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Wrong current password or new equals old"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /update-password [put]
func (h *AccountHandler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.UpdatePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, &common.ValidationError{Message: "Invalid request body"})
		return
	}

	user, err := h.store.GetUserByUsername(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.WriteError(w, &common.NotFoundError{Message: "User not found"})
			return
		}
		utils.WriteError(w, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OriginalPassword)); err != nil {
		utils.WriteError(w, &common.ValidationError{Message: "Incorrect Password, please try again."})
		return
	}

	if req.OriginalPassword == req.NewPassword {
		utils.WriteError(w, &common.ValidationError{Message: "New password must be different from the old password."})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	if err := h.store.UpdatePassword(r.Context(), user.ID, string(hashedPassword)); err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{
		Status:  http.StatusOK,
		Message: "Password updated successfully",
	})
}
