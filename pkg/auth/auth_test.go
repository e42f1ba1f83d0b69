package auth_test

import (
	"net/http"
	"testing"

	"github.com/pierrotdelalune/actions-upload-release-asset/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBearerAuth(t *testing.T) {
	tests := []struct {
		name   string
		token  string
		expect string
	}{
		{
			name:   "valid token",
			token:  "ghp-token-123",
			expect: "Bearer ghp-token-123",
		},
		{
			name:   "empty token",
			token:  "",
			expect: "Bearer ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest("GET", "http://example.com", nil)
			bearerAuth := auth.BearerAuth{
				Token: tt.token,
			}

			err := bearerAuth.Apply(req)
			require.NoError(t, err)
			assert.Equal(t, tt.expect, req.Header.Get("Authorization"))
			assert.Equal(t, auth.BearerAuthType, bearerAuth.Type())
		})
	}
}

func TestHeaderAuth(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		expect  map[string]string
	}{
		{
			name: "single header",
			headers: map[string]string{
				"X-API-Key": "test-key",
			},
			expect: map[string]string{
				"X-Api-Key": "test-key", // http.Header canonicalizes headers
			},
		},
		{
			name: "multiple headers",
			headers: map[string]string{
				"X-GitHub-Api-Version": "2022-11-28",
				"Accept":               "application/vnd.github+json",
			},
			expect: map[string]string{
				"X-Github-Api-Version": "2022-11-28",
				"Accept":               "application/vnd.github+json",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest("GET", "http://example.com", nil)
			headerAuth := auth.HeaderAuth{
				Headers: tt.headers,
			}

			err := headerAuth.Apply(req)
			require.NoError(t, err)

			for k, v := range tt.expect {
				assert.Equal(t, v, req.Header.Get(k))
			}
			assert.Equal(t, auth.HeaderAuthType, headerAuth.Type())
		})
	}
}
