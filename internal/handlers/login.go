package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/skolbok/internal/app"
)

type LoginHandler struct {
	service *app.Service
}

func NewLoginHandler(service *app.Service) *LoginHandler {
	return &LoginHandler{
		service: service,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// HandleLogin checks credentials and, with auth enabled, issues a session
// token binding role and student id for later requests.
func (h *LoginHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	role, studentID, err := h.service.Login(req.Username, req.Password)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Invalid username or password.")
		return
	}

	resp := map[string]interface{}{
		"role":      role,
		"studentId": studentID,
	}

	if h.service.Sessions.Enabled() {
		token, err := h.service.Sessions.Create(r.Context(), role, studentID)
		if err != nil {
			logger.Error.Printf("Failed to create session: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to create session")
			return
		}
		resp["token"] = token
	}

	writeJSON(w, http.StatusOK, resp)
}
