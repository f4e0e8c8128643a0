package controllers

import (
	"net/http"
	"strings"

	json "github.com/goccy/go-json"

	"fcd/internal/providers"
	"fcd/internal/services"
)

type AuthController struct {
	logger  providers.Logger
	service services.AuthServiceInterface
}

func NewAuthController(logger providers.Logger, service services.AuthServiceInterface) *AuthController {
	return &AuthController{
		logger:  logger,
		service: service,
	}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type sessionResponse struct {
	Token string `json:"token"`
	User  any    `json:"user"`
}

func decodeCredentials(w http.ResponseWriter, r *http.Request) (*credentialsRequest, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return nil, false
	}
	if strings.TrimSpace(req.Email) == "" {
		http.Error(w, "email is required", http.StatusBadRequest)
		return nil, false
	}
	return &req, true
}

func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeCredentials(w, r)
	if !ok {
		return
	}

	user, token, err := ctrl.service.Login(req.Email, req.Password)
	if err != nil {
		ctrl.logger.Errorf(providers.TypePost, "Login failed: %s", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{Token: token, User: user})
}

func (ctrl *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeCredentials(w, r)
	if !ok {
		return
	}

	user, token, err := ctrl.service.Signup(req.Email, req.Password, req.Name)
	if err != nil {
		ctrl.logger.Errorf(providers.TypePost, "Signup failed: %s", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, sessionResponse{Token: token, User: user})
}

func (ctrl *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	ctrl.service.Logout(requestToken(r))
	w.WriteHeader(http.StatusNoContent)
}

func (ctrl *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := ctrl.service.UserByToken(requestToken(r))
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func requestToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) {
		return ""
	}
	return strings.TrimSpace(auth[len(prefix):])
}
