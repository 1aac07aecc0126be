package adapthttp

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"net/http"

	"feedbackapp/internal/config"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

// OIDCConfig holds the resolved provider for the optional SSO login.
type OIDCConfig struct {
	Enabled      bool
	Provider     *oidc.Provider
	OAuth2Config *oauth2.Config
}

// NewOIDCConfig resolves the OIDC provider from configuration. When SSO is
// disabled it returns a disabled config and never touches the network.
func NewOIDCConfig(ctx context.Context, cfg config.OIDC) (*OIDCConfig, error) {
	if !cfg.Enabled {
		return &OIDCConfig{}, nil
	}

	provider, err := oidc.NewProvider(ctx, cfg.IssuerURL)
	if err != nil {
		return nil, err
	}

	return &OIDCConfig{
		Enabled:  true,
		Provider: provider,
		OAuth2Config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Endpoint:     provider.Endpoint(),
			Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
		},
	}, nil
}

func (s *Server) handleSSOLogin(w http.ResponseWriter, r *http.Request) {
	state := generateState()
	http.SetCookie(w, &http.Cookie{
		Name:     "oauth_state",
		Value:    state,
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode, // Lax required for cross-site redirect returns
		MaxAge:   300,
	})
	http.Redirect(w, r, s.oidc.OAuth2Config.AuthCodeURL(state), http.StatusFound)
}

func (s *Server) handleSSOCallback(w http.ResponseWriter, r *http.Request) {
	state, err := r.Cookie("oauth_state")
	if err != nil || r.URL.Query().Get("state") != state.Value {
		http.Error(w, "invalid state", http.StatusBadRequest)
		return
	}

	http.SetCookie(w, &http.Cookie{Name: "oauth_state", MaxAge: -1, Path: "/"})

	token, err := s.oidc.OAuth2Config.Exchange(r.Context(), r.URL.Query().Get("code"))
	if err != nil {
		http.Error(w, "failed to exchange token", http.StatusInternalServerError)
		return
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok {
		http.Error(w, "no id_token", http.StatusInternalServerError)
		return
	}

	idToken, err := s.oidc.Provider.Verifier(&oidc.Config{ClientID: s.oidc.OAuth2Config.ClientID}).Verify(r.Context(), rawIDToken)
	if err != nil {
		http.Error(w, "failed to verify token", http.StatusInternalServerError)
		return
	}

	var claims struct {
		Email string `json:"email"`
		Sub   string `json:"sub"`
	}
	if err = idToken.Claims(&claims); err != nil {
		http.Error(w, "failed to parse claims", http.StatusInternalServerError)
		return
	}

	username := claims.Email
	if username == "" {
		username = claims.Sub
	}

	sessionToken, err := s.auth.LoginWithSSO(r.Context(), username, claims.Email)
	if err != nil {
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}

	setSessionCookie(w, sessionToken, s.sessionTTL)
	http.Redirect(w, r, "/", http.StatusFound)
}

func generateState() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return base64.URLEncoding.EncodeToString(b)
}
