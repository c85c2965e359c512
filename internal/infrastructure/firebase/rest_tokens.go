package firebase

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// The Admin SDK cannot exchange an email/password for an ID token; that part
// of the auth flow goes through the Identity Toolkit REST API with the web
// API key.

const (
	identityToolkitURL = "https://identitytoolkit.googleapis.com/v1"
	secureTokenURL     = "https://securetoken.googleapis.com/v1"
)

type signInResponse struct {
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	LocalID      string `json:"localId"`
	Error        *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

type refreshResponse struct {
	IDToken      string `json:"id_token"`
	RefreshToken string `json:"refresh_token"`
	Error        *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// SignInWithEmailPassword returns an ID token and a refresh token, or an
// error when the credentials are rejected.
func (f *FirebaseAuthClient) SignInWithEmailPassword(email, password string) (string, string, error) {
	if f.apiKey == "" {
		return "", "", fmt.Errorf("firebase web API key is not configured")
	}

	payload, err := json.Marshal(map[string]interface{}{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	})
	if err != nil {
		return "", "", err
	}

	endpoint := fmt.Sprintf("%s/accounts:signInWithPassword?key=%s", identityToolkitURL, f.apiKey)
	resp, err := f.httpClient.Post(endpoint, "application/json", bytes.NewReader(payload))
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", "", err
	}

	var result signInResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", "", err
	}

	if resp.StatusCode != http.StatusOK {
		if result.Error != nil {
			return "", "", fmt.Errorf("sign in failed: %s", result.Error.Message)
		}
		return "", "", fmt.Errorf("sign in failed with status %d", resp.StatusCode)
	}

	return result.IDToken, result.RefreshToken, nil
}

// RefreshIdToken exchanges a refresh token for a fresh ID token.
func (f *FirebaseAuthClient) RefreshIdToken(refreshToken string) (string, string, error) {
	if f.apiKey == "" {
		return "", "", fmt.Errorf("firebase web API key is not configured")
	}

	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", refreshToken)

	endpoint := fmt.Sprintf("%s/token?key=%s", secureTokenURL, f.apiKey)
	resp, err := f.httpClient.Post(endpoint, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", "", err
	}

	var result refreshResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", "", err
	}

	if resp.StatusCode != http.StatusOK {
		if result.Error != nil {
			return "", "", fmt.Errorf("token refresh failed: %s", result.Error.Message)
		}
		return "", "", fmt.Errorf("token refresh failed with status %d", resp.StatusCode)
	}

	return result.IDToken, result.RefreshToken, nil
}
