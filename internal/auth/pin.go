package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"errors"
)

// ErrInvalidPIN is returned when a PIN matches no configured role.
var ErrInvalidPIN = errors.New("auth: invalid pin")

type pinEntry struct {
	digest [sha256.Size]byte
	role   Role
}

// PINVerifier maps lockscreen PINs to roles. PINs are held as SHA-256
// digests and compared in constant time.
type PINVerifier struct {
	entries []pinEntry
}

// NewPINVerifier builds a verifier from the configured role PINs. Empty
// PINs disable the corresponding role.
func NewPINVerifier(superPIN, adminPIN string) (*PINVerifier, error) {
	verifier := &PINVerifier{}
	if superPIN != "" {
		verifier.entries = append(verifier.entries, pinEntry{digest: sha256.Sum256([]byte(superPIN)), role: RoleSuper})
	}
	if adminPIN != "" {
		verifier.entries = append(verifier.entries, pinEntry{digest: sha256.Sum256([]byte(adminPIN)), role: RoleAdmin})
	}
	if len(verifier.entries) == 0 {
		return nil, errors.New("auth: no pins configured")
	}
	return verifier, nil
}

// Verify resolves a PIN to its role. Every configured entry is compared so
// timing does not reveal which role, if any, matched.
func (v *PINVerifier) Verify(pin string) (Role, error) {
	digest := sha256.Sum256([]byte(pin))
	matched := Role("")
	for _, entry := range v.entries {
		if subtle.ConstantTimeCompare(digest[:], entry.digest[:]) == 1 {
			matched = entry.role
		}
	}
	if matched == "" {
		return "", ErrInvalidPIN
	}
	return matched, nil
}
