package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/portfolio/internal/common"
	"github.com/dmitrijs2005/portfolio/internal/netx"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *handlers) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.Limiter != nil {
		ok, err := h.Limiter.Allow(ctx, "login:"+netx.ClientIP(r))
		if err != nil {
			h.Logger.Warn(ctx, "rate limiter unavailable", "error", err)
		}
		if !ok {
			h.Metrics.loginFailed("throttled")
			h.writeError(w, r, common.ErrTooManyRequests)
			return
		}
	}

	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	res, err := h.Auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case common.IsValidation(err):
			h.Metrics.loginFailed("validation")
		default:
			h.Metrics.loginFailed("credentials")
		}
		h.writeError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, "Login successful", res)
}

func (h *handlers) verify(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, http.StatusOK, "Token is valid", map[string]any{"user": IdentityFrom(r.Context())})
}

// logout only acknowledges; tokens are not revoked server side.
func (h *handlers) logout(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, http.StatusOK, "Logged out successfully", nil)
}

func (h *handlers) credentials(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, http.StatusOK, "Admin credentials for testing", map[string]string{
		"email":    h.opts.AdminEmail,
		"password": h.opts.AdminPassword,
		"note":     "Use these credentials to login as admin",
	})
}
