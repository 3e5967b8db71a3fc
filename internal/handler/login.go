package handler

import (
	"encoding/json"
	"net/http"
)

// LoginRequest is the POST /auth/login body.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the session token for subsequent requests.
type LoginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
}

// Login handles POST /auth/login. On valid credentials it issues a session
// token whose lifetime is the server's configured session duration.
// Invalid credentials get a 401 with no detail about which part failed.
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	var body LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		badRequest(w, "request body is required")
		return
	}
	if body.Username == "" || body.Password == "" {
		badRequest(w, "username and password are required")
		return
	}

	userID, err := s.creds.Authenticate(r.Context(), body.Username, body.Password)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{
			Error: ErrorDetail{Code: "unauthorized", Message: "invalid credentials"},
		})
		return
	}

	token, err := s.issuer.Issue(userID)
	if err != nil {
		internalError(w)
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{Token: token, UserID: userID})
}
