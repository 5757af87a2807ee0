package handlers

import (
	"net/http"
	"strings"

	"fueldelivery/service"
)

// SessionCookie carries the signed session token.
const SessionCookie = "fd_session"

type AuthHandler struct {
	Service *service.AuthService
	// Secure marks the session cookie HTTPS-only.
	Secure bool
}

// Login handler
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &creds); err != nil {
		writeError(w, r, err)
		return
	}

	token, op, err := h.Service.Login(r.Context(), strings.TrimSpace(creds.Username), creds.Password)
	if err != nil {
		if statusFor(err) == http.StatusUnauthorized {
			writeJSON(w, http.StatusUnauthorized, ApiResponse{
				Success: false,
				Message: "Invalid username or password",
			})
			return
		}
		writeError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  op.ExpiresAt,
		HttpOnly: true,
		Secure:   h.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	writeOK(w, "Login successful", map[string]interface{}{"operator": op, "token": token})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.Secure,
	})
	writeOK(w, "Logged out", nil)
}

// RequireOperator rejects requests without a valid session cookie or
// bearer token.
func (h *AuthHandler) RequireOperator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := ""
		if c, err := r.Cookie(SessionCookie); err == nil {
			token = c.Value
		}
		if auth := r.Header.Get("Authorization"); token == "" && strings.HasPrefix(auth, "Bearer ") {
			token = strings.TrimPrefix(auth, "Bearer ")
		}
		if token == "" {
			writeJSON(w, http.StatusUnauthorized, ApiResponse{Success: false, Message: "Login required"})
			return
		}
		if _, err := h.Service.Verify(token); err != nil {
			writeJSON(w, http.StatusUnauthorized, ApiResponse{Success: false, Message: "Session expired, please log in again"})
			return
		}
		next.ServeHTTP(w, r)
	})
}
