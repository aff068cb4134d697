package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Naveenmanral1/Vconnect-backend/internal/api"
	"github.com/Naveenmanral1/Vconnect-backend/internal/auth"
)

func (s server) registerUser(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /users/register Users RegisterUser
	//
	// Register a new user.
	//
	// ---
	// parameters:
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/RegisterUserRequest"
	// responses:
	//   '201':
	//     description: registered user
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '409':
	//     description: email already taken
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req RegisterUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "failed to decode json")
		return
	}

	if strings.TrimSpace(req.FullName) == "" || strings.TrimSpace(req.Email) == "" || req.Password == "" {
		api.WriteError(w, http.StatusBadRequest, "fullName, email and password are required")
		return
	}

	u, err := s.s.RegisterUser(r.Context(), req.FullName, req.Email, req.Password)
	if err != nil {
		writeError(r.Context(), w, "register user", err)
		return
	}

	api.WriteOK(w, http.StatusCreated, toAPIUser(u))
}

func (s server) loginUser(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /users/login Users LoginUser
	//
	// Login with email and password. The issued pair is returned in the
	// body and duplicated in cookies.
	//
	// ---
	// responses:
	//   '200':
	//     description: user and token pair
	//     schema:
	//       "$ref": "#/definitions/LoginUserResponse"
	//   '401':
	//     description: invalid credentials
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req LoginUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "failed to decode json")
		return
	}

	if strings.TrimSpace(req.Email) == "" {
		api.WriteError(w, http.StatusBadRequest, "email is required")
		return
	}

	u, pair, err := s.s.LoginUser(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(r.Context(), w, "login user", err)
		return
	}

	setAuthCookies(w, pair)
	api.WriteOK(w, http.StatusOK, LoginUserResponse{
		User:         toAPIUser(u),
		AccessToken:  pair.Access,
		RefreshToken: pair.Refresh,
	})
}

func (s server) refreshToken(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /users/refresh-token Users RefreshToken
	//
	// Rotate the refresh token and reissue the pair.
	//
	// ---
	// responses:
	//   '200':
	//     description: new token pair
	//     schema:
	//       "$ref": "#/definitions/TokenPairResponse"
	//   '401':
	//     description: invalid refresh token
	//     schema:
	//       "$ref": "#/definitions/Error"

	token := ""
	if c, err := r.Cookie(auth.RefreshTokenCookie); err == nil {
		token = c.Value
	}

	if token == "" {
		var req RefreshTokenRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err == nil {
			token = req.RefreshToken
		}
	}

	if token == "" {
		api.WriteError(w, http.StatusUnauthorized, "no refresh token provided")
		return
	}

	pair, err := s.s.RefreshSession(r.Context(), token)
	if err != nil {
		writeError(r.Context(), w, "refresh session", err)
		return
	}

	setAuthCookies(w, pair)
	api.WriteOK(w, http.StatusOK, TokenPairResponse{
		AccessToken:  pair.Access,
		RefreshToken: pair.Refresh,
	})
}

func (s server) logoutUser(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /users/logout Users LogoutUser
	//
	// Invalidate the stored refresh token and clear cookies.
	//
	// ---
	// responses:
	//   '200':
	//     description: logged out

	if err := s.s.LogoutUser(r.Context(), viewer(r)); err != nil {
		writeError(r.Context(), w, "logout user", err)
		return
	}

	clearAuthCookies(w)
	api.WriteOK(w, http.StatusOK, struct{}{})
}

func (s server) getCurrentUser(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /users/current-user Users GetCurrentUser
	//
	// Return the authenticated caller's card.
	//
	// ---
	// responses:
	//   '200':
	//     description: current user

	u, err := s.s.GetCurrentUser(r.Context(), viewer(r))
	if err != nil {
		writeError(r.Context(), w, "get current user", err)
		return
	}

	api.WriteOK(w, http.StatusOK, toAPICurrentUser(u))
}

func (s server) updatePassword(w http.ResponseWriter, r *http.Request) {
	// swagger:operation PATCH /users/update-password Users UpdatePassword
	//
	// Change the caller's password after verifying the old one.
	//
	// ---
	// responses:
	//   '200':
	//     description: password updated
	//   '401':
	//     description: incorrect old password
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req UpdatePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "failed to decode json")
		return
	}

	if req.NewPassword == "" {
		api.WriteError(w, http.StatusBadRequest, "newPassword is required")
		return
	}

	if err := s.s.ChangePassword(r.Context(), viewer(r), req.OldPassword, req.NewPassword); err != nil {
		writeError(r.Context(), w, "change password", err)
		return
	}

	api.WriteOK(w, http.StatusOK, struct{}{})
}

func setAuthCookies(w http.ResponseWriter, pair auth.Pair) {
	for _, c := range []struct{ name, value string }{
		{auth.AccessTokenCookie, pair.Access},
		{auth.RefreshTokenCookie, pair.Refresh},
	} {
		http.SetCookie(w, &http.Cookie{
			Name:     c.name,
			Value:    c.value,
			Path:     "/",
			HttpOnly: true,
			Secure:   true,
			SameSite: http.SameSiteNoneMode,
		})
	}
}

func clearAuthCookies(w http.ResponseWriter) {
	for _, name := range []string{auth.AccessTokenCookie, auth.RefreshTokenCookie} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   true,
			SameSite: http.SameSiteNoneMode,
		})
	}
}
