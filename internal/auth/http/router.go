package http

import (
	"net/http"

	"github.com/tomo-auth/backend/internal/auth/service"
	authdto "github.com/tomo-auth/backend/internal/auth/service/dto"
	"github.com/tomo-auth/backend/internal/common/config"
	commonhttp "github.com/tomo-auth/backend/internal/common/http"
	"github.com/tomo-auth/backend/internal/common/jwtverify"
	"github.com/tomo-auth/backend/internal/common/logger"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerResponse struct {
	User authdto.PublicUser `json:"user"`
}

type loginResponse struct {
	Token string             `json:"token"`
	User  authdto.PublicUser `json:"user"`
}

type profileResponse struct {
	User authdto.PublicUser `json:"user"`
}

type Handler struct {
	auth   *service.AuthService
	errors *commonhttp.ErrorHandler
	log    *logger.Logger
}

func NewHandler(auth *service.AuthService, cfg config.AuthConfig, log *logger.Logger) http.Handler {
	h := &Handler{
		auth:   auth,
		errors: commonhttp.NewErrorHandler(log),
		log:    log,
	}

	requirePost := commonhttp.RequireMethod(http.MethodPost)
	requireGet := commonhttp.RequireMethod(http.MethodGet)
	withTimeout := commonhttp.WithTimeout(cfg.RequestTimeout)
	authRequired := jwtverify.Middleware(cfg.JWTSecret, log)

	mux := http.NewServeMux()
	mux.HandleFunc("/health", commonhttp.HealthHandler(log))
	mux.HandleFunc("/api/auth/register", requirePost(withTimeout(h.register)))
	mux.HandleFunc("/api/auth/login", requirePost(withTimeout(h.login)))
	mux.Handle("/api/auth/profile", authRequired(requireGet(withTimeout(h.profile))))
	return mux
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := commonhttp.DecodeJSON(r, &req); err != nil {
		h.log.Warnf("register failed: invalid json: %v", err)
		commonhttp.WriteErrorEnvelope(w, http.StatusBadRequest, commonhttp.CodeInvalidJSON, "invalid json", nil, "")
		return
	}

	user, err := h.auth.Register(r.Context(), service.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	commonhttp.WriteJSON(w, http.StatusCreated, registerResponse{User: user})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := commonhttp.DecodeJSON(r, &req); err != nil {
		h.log.Warnf("login failed: invalid json: %v", err)
		commonhttp.WriteErrorEnvelope(w, http.StatusBadRequest, commonhttp.CodeInvalidJSON, "invalid json", nil, "")
		return
	}

	result, err := h.auth.Login(r.Context(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, loginResponse{Token: result.Token, User: result.User})
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	claims, ok := jwtverify.FromContext(r.Context())
	if !ok {
		commonhttp.WriteErrorEnvelope(w, http.StatusUnauthorized, commonhttp.CodeInvalidToken, "unauthorized", nil, "")
		return
	}

	user, err := h.auth.Profile(r.Context(), claims.UserID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, profileResponse{User: user})
}

// writeError routes typed outcomes through the shared domain error mapper.
// Validation errors additionally surface the full violation list.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if vErr, ok := service.AsValidationError(err); ok {
		h.errors.HandleErrorWithDetails(w, r, service.ErrValidation, map[string]any{
			"violations": vErr.Violations,
		})
		return
	}

	h.errors.HandleError(w, r, err)
}
