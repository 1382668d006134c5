package auth

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"logistics-cloud/internal/observability/metrics"
)

// PINHandler serves POST /api/v1/auth/pin-verify: the lockscreen unlock.
type PINHandler struct {
	verifier *PINVerifier
	secret   []byte
	tokenTTL time.Duration
	logger   *log.Logger
}

// NewPINHandler constructs a handler.
func NewPINHandler(verifier *PINVerifier, secret []byte, tokenTTL time.Duration, logger *log.Logger) (*PINHandler, error) {
	if verifier == nil {
		return nil, errors.New("pin handler: nil verifier")
	}
	if len(secret) == 0 {
		return nil, errors.New("pin handler: empty secret")
	}
	return &PINHandler{verifier: verifier, secret: secret, tokenTTL: tokenTTL, logger: logger}, nil
}

// ServeHTTP verifies the PIN and issues a role token.
func (h *PINHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		PIN string `json:"pin"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	role, err := h.verifier.Verify(req.PIN)
	if err != nil {
		metrics.ObservePINVerify(metrics.ResultError)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false})
		return
	}
	token, err := IssueToken(h.secret, role, "lockscreen", h.tokenTTL)
	if err != nil {
		http.Error(w, "token error", http.StatusInternalServerError)
		return
	}
	metrics.ObservePINVerify(metrics.ResultSuccess)
	if h.logger != nil {
		h.logger.Printf("pin verified: role=%s", role)
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": true,
		"token":   token,
		"role":    role,
	})
}
