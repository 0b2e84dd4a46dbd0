package auth

import (
	"context"
	"net/http"
	"time"

	"github.com/GlebRadaev/dojoledger/internal/domain"
	"github.com/GlebRadaev/dojoledger/internal/dto"
	"github.com/GlebRadaev/dojoledger/internal/handlers/httperr"
	pkgauth "github.com/GlebRadaev/dojoledger/pkg/auth"
	"github.com/GlebRadaev/dojoledger/pkg/utils"
	"github.com/GlebRadaev/dojoledger/pkg/validate"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=auth

type Service interface {
	Register(ctx context.Context, req dto.RegisterRequestDTO) (*domain.User, error)
	Authenticate(ctx context.Context, email, password, pin string) (*domain.User, error)
	GenerateToken(user *domain.User) (string, time.Time, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

func userResponse(user *domain.User) dto.UserResponseDTO {
	return dto.UserResponseDTO{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		IsAdmin:   user.IsAdmin,
		LastLogin: user.LastLogin,
	}
}

func setSessionCookie(w http.ResponseWriter, token string, expires time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     pkgauth.SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Register godoc
//
//	@Summary		Register a staff account
//	@Description	Create a user with a password and an optional 4-6 digit PIN
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Register request body"
//	@Success		201		{object}	dto.UserResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"User already exists"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	if err := httperr.Decode(r, &req); err != nil {
		httperr.Write(w, err)
		return
	}
	user, err := h.authService.Register(r.Context(), req)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, userResponse(user))
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request, email, password, pin string) {
	user, err := h.authService.Authenticate(r.Context(), email, password, pin)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	token, expires, err := h.authService.GenerateToken(user)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	setSessionCookie(w, token, expires)
	utils.RespondWithJSON(w, http.StatusOK, dto.LoginResponseDTO{
		Message: "User successfully authenticated",
		Token:   token,
		User:    userResponse(user),
	})
}

// Login godoc
//
//	@Summary		Authenticate with password or PIN
//	@Description	Log in with email and password; a PIN is accepted in place of a wrong or missing password
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.LoginResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := httperr.Decode(r, &req); err != nil {
		httperr.Write(w, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		httperr.Write(w, err)
		return
	}
	h.login(w, r, req.Email, req.Password, req.Pin)
}

// PinLogin godoc
//
//	@Summary		Quick PIN login
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PinLoginRequestDTO	true	"PIN login request body"
//	@Success		200		{object}	dto.LoginResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Router			/api/auth/pin-login [post]
func (h *AuthHandler) PinLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.PinLoginRequestDTO
	if err := httperr.Decode(r, &req); err != nil {
		httperr.Write(w, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		httperr.Write(w, err)
		return
	}
	h.login(w, r, req.Email, "", req.Pin)
}

// Logout godoc
//
//	@Summary	End the browser session
//	@Tags		Auth
//	@Produce	json
//	@Success	200	{object}	utils.Response
//	@Router		/api/auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     pkgauth.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Logged out"})
}
