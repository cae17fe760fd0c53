// Copyright (c) 2026 Eduka. All rights reserved.
// Author: minh.vuquang.dev@gmail.com

/*
Package auth provides the HTTP delivery layer for user identity management.

It implements the gateway for the authentication lifecycle, from account
creation to token revocation.

# Architecture

The handler acts as a thin mediation layer between the web and domain services:
  - Protocol: Standard RESTful JSON interface.
  - Security: Issues Bearer access tokens; never sets cookies.
  - Verification: Enforces strict input validation before passing to [Service].

This layer is strictly responsible for transport concerns (status codes, headers, JSON).
*/
package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/minhvu-dev/eduka/internal/platform/apperr"
	"github.com/minhvu-dev/eduka/internal/platform/middleware"
	requestutil "github.com/minhvu-dev/eduka/internal/platform/request"
	"github.com/minhvu-dev/eduka/internal/platform/respond"
	"github.com/minhvu-dev/eduka/internal/platform/validate"
)

// # Definitions & Constructors

// Handler implements authentication-related HTTP endpoints.
//
// # Scope
//
// This handler manages everything related to the account lifecycle entry
// points (Registration, Login, Logout, existence checks).
type Handler struct {
	authService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{authService: service}
}

// Routes returns a [chi.Router] configured with authentication-specific routes.
//
// # Endpoints
//   - POST /register       : Creates a new account and returns its first token.
//   - POST /login          : Authenticates and returns a JWT.
//   - GET  /check-username : Availability pre-check for registration forms.
//   - GET  /check-email    : Availability pre-check for registration forms.
//   - POST /logout         : Revokes the presented token (authenticated).
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public endpoints
	router.Post("/register", handler.register)
	router.Post("/login", handler.login)
	router.Get("/check-username", handler.checkUsername)
	router.Get("/check-email", handler.checkEmail)

	// Protected endpoints
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Post("/logout", handler.logout)
	})

	return router
}

// # Request Payloads

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

/*
Register handles the creation of a new user account.

POST /api/v1/auth/register

Description: Validates input, checks for identity conflicts, persists the
account, and returns the account's first access token.

Request:
  - Body: registerRequest (Username, Email, Password, optional Role)

Response:
  - 201: AuthSession: Access token and created account
  - 400: ErrInvalidJSON: Bad input or validation failure
  - 409: ErrConflict: Username or Email already exists
*/
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var input registerRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldUsername, input.Username).
		MinLen(FieldUsername, input.Username, UsernameMinLen).
		MaxLen(FieldUsername, input.Username, UsernameMaxLen).
		Required(FieldEmail, input.Email).
		Email(FieldEmail, input.Email).
		Required(FieldPassword, input.Password).
		MinLen(FieldPassword, input.Password, PasswordMinLen)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.authService.Register(request.Context(), RegisterInput{
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
		Role:     input.Role,
	})

	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, session)
}

/*
Login authenticates a user and issues an access token.

POST /api/v1/auth/login

Description: Verifies credentials and returns a Bearer JWT. A missing
account, a deactivated account, and a wrong password all yield the same
401 to prevent account enumeration.

Request:
  - Body: loginRequest (Username, Password)

Response:
  - 200: AuthSession: Access token and account summary
  - 401: ErrUnauthorized: Invalid credentials
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldUsername, input.Username).
		Required(FieldPassword, input.Password)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.authService.Login(request.Context(), LoginInput{
		Username: input.Username,
		Password: input.Password,
	})

	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// "No result" from the service means the credentials did not match.
	if session == nil {
		respond.Error(writer, request, apperr.Unauthorized("Invalid login credentials"))
		return
	}

	respond.OK(writer, session)
}

/*
Logout revokes the presented access token.

POST /api/v1/auth/logout

Description: Places the token's jti into the denylist for its remaining
lifetime. Requires authentication; idempotent for expired tokens.

Response:
  - 204: No content
  - 401: ErrUnauthorized: Missing or invalid token
*/
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.authService.Logout(request.Context(), claims); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

/*
CheckUsername reports whether a username is already taken.

GET /api/v1/auth/check-username?username=<name>

Response:
  - 200: {exists: bool}
  - 400: ErrValidation: Missing query parameter
*/
func (handler *Handler) checkUsername(writer http.ResponseWriter, request *http.Request) {
	username := request.URL.Query().Get(FieldUsername)
	if username == "" {
		respond.Error(writer, request, validate.RequiredError(FieldUsername, "This field is required"))
		return
	}

	exists, err := handler.authService.UsernameExists(request.Context(), username)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]bool{FieldExists: exists})
}

/*
CheckEmail reports whether an email address is already registered.

GET /api/v1/auth/check-email?email=<address>

Response:
  - 200: {exists: bool}
  - 400: ErrValidation: Missing query parameter
*/
func (handler *Handler) checkEmail(writer http.ResponseWriter, request *http.Request) {
	email := request.URL.Query().Get(FieldEmail)
	if email == "" {
		respond.Error(writer, request, validate.RequiredError(FieldEmail, "This field is required"))
		return
	}

	exists, err := handler.authService.EmailExists(request.Context(), email)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]bool{FieldExists: exists})
}
