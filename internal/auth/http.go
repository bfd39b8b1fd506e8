// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/novelia/internal/platform/apperr"
	requestutil "github.com/taibuivan/novelia/internal/platform/request"
	"github.com/taibuivan/novelia/internal/platform/respond"
	"github.com/taibuivan/novelia/internal/platform/validate"
)

// Handler implements the owner session endpoints.
type Handler struct {
	gate *Gate
}

// NewHandler constructs a new [Handler] over gate.
func NewHandler(gate *Gate) *Handler {
	return &Handler{gate: gate}
}

// Routes returns a [chi.Router] configured with the owner session routes.
//
// # Endpoints
//   - POST /login  : Opens the owner session.
//   - POST /logout : Closes the owner session.
//   - GET  /status : Reports whether the owner session is open.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/login", handler.login)
	router.Post("/logout", handler.logout)
	router.Get("/status", handler.status)

	return router
}

// loginRequest represents the JSON payload expected for login.
type loginRequest struct {
	Passkey string `json:"passkey"`
}

// sessionResponse is returned by every session endpoint.
type sessionResponse struct {
	Authenticated bool `json:"authenticated"`
}

// login handles POST /api/v1/auth/login requests.
//
// # Returns
//   - Writes HTTP 200 OK with {"authenticated": true} when the passkey matches.
//   - Writes HTTP 400 Bad Request if the passkey is missing.
//   - Writes HTTP 401 Unauthorized if the passkey does not match.
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	// ── 1. Payload Extraction ─────────────────────────────────────────────

	var input loginRequest
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 2. Validation ─────────────────────────────────────────────────────

	validator := &validate.Validator{}
	validator.Required("passkey", input.Passkey)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 3. Gate ───────────────────────────────────────────────────────────

	if !handler.gate.Login(request.Context(), input.Passkey) {
		respond.Error(writer, request, apperr.Unauthorized("Incorrect passkey"))
		return
	}

	respond.OK(writer, sessionResponse{Authenticated: true})
}

// logout handles POST /api/v1/auth/logout requests.
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	if err := handler.gate.Logout(request.Context()); err != nil {
		respond.Error(writer, request, apperr.Internal(err))
		return
	}
	respond.OK(writer, sessionResponse{Authenticated: false})
}

// status handles GET /api/v1/auth/status requests.
func (handler *Handler) status(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, sessionResponse{Authenticated: handler.gate.IsAuthenticated(request.Context())})
}
