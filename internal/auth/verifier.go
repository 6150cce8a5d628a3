package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

// PublicRoute reports whether a request may proceed without a token.
type PublicRoute func(r *http.Request) bool

// PublicPaths lets through the health check, CORS preflights and catalog reads.
func PublicPaths(r *http.Request) bool {
	switch {
	case r.Method == http.MethodOptions, r.URL.Path == "/healthz":
		return true
	case r.Method != http.MethodGet:
		return false
	}
	return r.URL.Path == "/v1/recipes" || strings.HasPrefix(r.URL.Path, "/v1/recipes/")
}

// Verifier authenticates requests before they reach the API handlers.
type Verifier struct {
	cfg    Config
	public PublicRoute
}

// NewVerifier builds a Verifier. public may be nil.
func NewVerifier(cfg Config, public PublicRoute) *Verifier {
	return &Verifier{cfg: cfg, public: public}
}

// Middleware rejects requests without a valid token and stores the caller's claims otherwise.
// Requests matched by the public route pass through without claims.
func (v *Verifier) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if v.public != nil && v.public(r) {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := Parse(bearerToken(r), v.cfg)
		if err != nil {
			detail := ErrInvalidToken.Error()
			if errors.Is(err, ErrMissingToken) {
				detail = ErrMissingToken.Error()
			}
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("WWW-Authenticate", `Bearer realm="nutria"`)
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"type": "unauthorized", "detail": detail})
			return
		}
		next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
	})
}

// bearerToken extracts the token from the Authorization header; a non-bearer scheme yields "".
func bearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(r.Header.Get("Authorization")), " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
