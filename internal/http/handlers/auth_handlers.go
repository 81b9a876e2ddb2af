package handlers

import (
	"net/http"

	"github.com/rogerio-castellano/lims-tracker/internal/auth"
	"github.com/rs/zerolog"
)

// LoginHandler godoc
// @Summary Log in
// @Description Exchanges the operator credentials for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {array} ValidationError
// @Failure 401 {string} string "Invalid credentials"
// @Failure 404 {string} string "Authentication disabled"
// @Router /login [post]
func LoginHandler(w http.ResponseWriter, r *http.Request) {
	if tokenIssuer == nil {
		http.Error(w, "authentication is disabled", http.StatusNotFound)
		return
	}

	var req LoginRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	log := zerolog.Ctx(r.Context())
	if err := auth.CheckCredentials(operator.username, operator.passwordHash, req.Username, req.Password); err != nil {
		log.Warn().Str("username", req.Username).Msg("failed login")
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := tokenIssuer.GenerateToken(req.Username, "operator")
	if err != nil {
		log.Error().Err(err).Msg("failed to issue token")
		http.Error(w, "could not generate token", http.StatusInternalServerError)
		return
	}
	respond(w, r, http.StatusOK, LoginResponse{Token: token, ExpiresIn: int(tokenIssuer.TTL().Seconds())})
}
