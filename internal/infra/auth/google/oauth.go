// Package google implements the authorization-code flow against Google's OAuth 2.0 endpoints.
package google

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"valunds/config"
	"valunds/internal/domain/entity"
	"valunds/internal/domain/service"
	"valunds/internal/errors"

	"golang.org/x/oauth2"
)

const (
	googleOAuthURL    = "https://accounts.google.com/o/oauth2/v2/auth"
	googleTokenURL    = "https://oauth2.googleapis.com/token"
	googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

	// error bodies are logged, never returned to the caller
	maxErrorBodyBytes = 2048
)

// Endpoints groups the provider URLs so tests can point the client at a fake provider.
type Endpoints struct {
	AuthURL     string
	TokenURL    string
	UserInfoURL string
}

// DefaultEndpoints returns Google's production endpoints.
func DefaultEndpoints() Endpoints {
	return Endpoints{
		AuthURL:     googleOAuthURL,
		TokenURL:    googleTokenURL,
		UserInfoURL: googleUserInfoURL,
	}
}

// OAuthService handles Google OAuth infrastructure operations
type OAuthService struct {
	oauth       *oauth2.Config
	userInfoURL string
	httpClient  *http.Client
	logger      *slog.Logger
}

// NewOAuthService creates a new Google OAuth service
func NewOAuthService(cfg *config.Config, logger *slog.Logger) service.OAuthService {
	return NewOAuthServiceWithEndpoints(cfg, logger, DefaultEndpoints())
}

// NewOAuthServiceWithEndpoints creates a Google OAuth service talking to the given endpoints.
func NewOAuthServiceWithEndpoints(cfg *config.Config, logger *slog.Logger, endpoints Endpoints) *OAuthService {
	return &OAuthService{
		oauth: &oauth2.Config{
			ClientID:     cfg.GoogleOAuth.ClientID,
			ClientSecret: cfg.GoogleOAuth.ClientSecret,
			RedirectURL:  cfg.GoogleOAuth.RedirectURI,
			Scopes:       strings.Fields(cfg.GoogleOAuth.Scopes),
			Endpoint: oauth2.Endpoint{
				AuthURL:   endpoints.AuthURL,
				TokenURL:  endpoints.TokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		userInfoURL: endpoints.UserInfoURL,
		httpClient:  &http.Client{Timeout: cfg.GoogleOAuth.Timeout},
		logger:      logger,
	}
}

// BuildAuthorizationURL constructs the Google OAuth authorization URL with state parameter for CSRF protection
func (s *OAuthService) BuildAuthorizationURL(state string) string {
	return s.oauth.AuthCodeURL(state,
		oauth2.AccessTypeOnline,
		oauth2.SetAuthURLParam("prompt", "select_account"),
	)
}

// ExchangeCode exchanges an authorization code for an access token
func (s *OAuthService) ExchangeCode(ctx context.Context, code string) (string, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, s.httpClient)

	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		if retrieveErr, ok := errors.AsType[*oauth2.RetrieveError](err); ok {
			s.logger.WarnContext(ctx, "Google OAuth request rejected",
				slog.String("step", "token exchange"),
				slog.Int("status", retrieveErr.Response.StatusCode),
				slog.String("body", truncate(retrieveErr.Body)),
			)

			return "", errors.Errorf("token exchange failed with status %d", retrieveErr.Response.StatusCode)
		}

		return "", errors.Wrap(err, "failed to exchange code for token")
	}

	if token.AccessToken == "" {
		return "", errors.New("token response carried no access token")
	}

	return token.AccessToken, nil
}

// FetchProfile retrieves user information using an access token
func (s *OAuthService) FetchProfile(ctx context.Context, accessToken string) (*entity.OAuthProfile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.userInfoURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create user info request")
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user info")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, s.providerError(ctx, "user info", resp)
	}

	var googleUser struct {
		ID            string `json:"id"`
		Email         string `json:"email"`
		VerifiedEmail bool   `json:"verified_email"`
		Name          string `json:"name"`
		GivenName     string `json:"given_name"`
		FamilyName    string `json:"family_name"`
		Picture       string `json:"picture"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&googleUser); err != nil {
		return nil, errors.Wrap(err, "failed to decode user info response")
	}

	return &entity.OAuthProfile{
		Subject:       googleUser.ID,
		Email:         strings.TrimSpace(googleUser.Email),
		EmailVerified: googleUser.VerifiedEmail,
		Name:          googleUser.Name,
		GivenName:     googleUser.GivenName,
		FamilyName:    googleUser.FamilyName,
		Picture:       googleUser.Picture,
	}, nil
}

func (s *OAuthService) providerError(ctx context.Context, step string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))

	s.logger.WarnContext(ctx, "Google OAuth request rejected",
		slog.String("step", step),
		slog.Int("status", resp.StatusCode),
		slog.String("body", string(body)),
	)

	return errors.Errorf("%s failed with status %d", step, resp.StatusCode)
}

func truncate(body []byte) string {
	if len(body) > maxErrorBodyBytes {
		body = body[:maxErrorBodyBytes]
	}

	return string(body)
}
