package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"
)

// GetAuthToken returns an empty token when the records endpoint is public,
// i.e. no AUTH endpoint or USER_TOKEN is configured.
func (c *StudentsClient) GetAuthToken(ctx context.Context) (string, error) {
	authEndpoint := c.Config.Endpoints["AUTH"]
	if authEndpoint == "" || c.Config.UserToken == "" {
		return "", nil
	}

	c.muAuth.Lock()
	defer c.muAuth.Unlock()

	if c.token != "" && time.Now().Before(c.tokenExpiry) {
		return c.token, nil
	}

	log.Println("Token expired or not available. Authenticating with records API...")

	authURL := c.Config.APIBase + authEndpoint
	authHeaders := map[string]string{
		"token": c.Config.UserToken,
	}

	authBody, err := c.MakeRequest(ctx, http.MethodPost, authURL, authHeaders, nil)
	if err != nil {
		return "", fmt.Errorf("failed to get new auth token: %w", err)
	}

	var authResp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(authBody, &authResp); err != nil {
		return "", &FetchError{URL: authURL, Err: fmt.Errorf("failed to parse auth token response: %w", err)}
	}
	if authResp.Token == "" {
		return "", &FetchError{URL: authURL, Err: errors.New("auth token response was empty")}
	}

	c.token = authResp.Token
	c.tokenExpiry = time.Now().Add(c.Config.AuthTokenExpiry)
	log.Println("New token obtained successfully.")
	return c.token, nil
}
