package auth

import (
	"net/http"
	"strings"
)

// Policy determines required roles by request.
type Policy struct {
	ExemptPaths    map[string]struct{}
	ExemptPrefixes []string
}

// NewDefaultPolicy builds a default policy with exemptions.
func NewDefaultPolicy(exemptPaths []string, exemptPrefixes []string) Policy {
	set := make(map[string]struct{}, len(exemptPaths))
	for _, path := range exemptPaths {
		set[path] = struct{}{}
	}
	return Policy{ExemptPaths: set, ExemptPrefixes: exemptPrefixes}
}

// IsExempt returns true when a request should skip auth/RBAC.
func (p Policy) IsExempt(r *http.Request) bool {
	if r == nil {
		return true
	}
	if _, ok := p.ExemptPaths[r.URL.Path]; ok {
		return true
	}
	for _, prefix := range p.ExemptPrefixes {
		if strings.HasPrefix(r.URL.Path, prefix) {
			return true
		}
	}
	return false
}

// RequiredRole resolves required role for the request. Financial surfaces
// (summary panel, record mutation) belong to the owner role; shipment
// viewing, delivery-note updates and projected exports are open to
// operations staff.
func (p Policy) RequiredRole(r *http.Request) (Role, bool) {
	if r == nil {
		return "", false
	}
	path := r.URL.Path
	method := r.Method

	switch {
	case path == "/api/v1/shipments":
		if method == http.MethodPost {
			return RoleSuper, true
		}
		return RoleAdmin, true
	case strings.HasPrefix(path, "/api/v1/shipments/"):
		if strings.HasSuffix(path, "/settle") {
			return RoleSuper, true
		}
		if strings.HasSuffix(path, "/delivery-note") {
			return RoleAdmin, true
		}
		if method == http.MethodGet {
			return RoleAdmin, true
		}
		return RoleSuper, true
	case path == "/api/v1/summary":
		return RoleSuper, true
	case path == "/api/v1/recap":
		return RoleAdmin, true
	case strings.HasPrefix(path, "/api/v1/recap/export."):
		return RoleAdmin, true
	default:
		return RoleSuper, true
	}
}
