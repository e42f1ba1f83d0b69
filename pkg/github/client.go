// Package github is a thin protocol binding for the GitHub release API.
// It covers exactly the three calls the uploader needs: fetch a release,
// upload an asset and delete an asset. No retries, no pagination.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pierrotdelalune/actions-upload-release-asset/pkg/auth"
	"github.com/pierrotdelalune/actions-upload-release-asset/pkg/errors"
	"github.com/pierrotdelalune/actions-upload-release-asset/pkg/model"
)

// DefaultBaseURL is the public GitHub API endpoint. Override it via the
// GITHUB_API_URL environment variable (resolved in the config layer).
const DefaultBaseURL = "https://api.github.com"

const (
	apiVersion   = "2022-11-28"
	acceptHeader = "application/vnd.github+json"
)

// Client handles HTTP operations against the release API.
type Client struct {
	client    *http.Client
	baseURL   string
	auth      auth.Authenticator
	userAgent string
}

// NewClient creates a release API client. An empty baseURL selects the
// public endpoint.
func NewClient(baseURL string, authenticator auth.Authenticator, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		client:    &http.Client{Timeout: timeout},
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		auth:      authenticator,
		userAgent: "actions-upload-release-asset/1.0",
	}
}

// GetRelease fetches the release snapshot, including its current asset list.
// Any response other than 200 is an UnexpectedStatusError.
func (c *Client) GetRelease(ctx context.Context, owner, repo, releaseID string) (*model.Release, error) {
	endpoint := fmt.Sprintf("%s/repos/%s/%s/releases/%s", c.baseURL, owner, repo, releaseID)
	req, err := c.newRequest(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch release")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, readStatusError(resp)
	}

	var release model.Release
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, errors.Wrap(err, "failed to decode release")
	}
	return &release, nil
}

// UploadAsset publishes one asset under the given name. The upload URL is the
// templated one from the release ("...assets{?name,label}"); the template
// suffix is stripped and literal name/label query parameters are appended.
// Any response other than 201 is an UnexpectedStatusError.
func (c *Client) UploadAsset(ctx context.Context, uploadURL string, up model.AssetUpload) (*model.UploadedAsset, error) {
	endpoint, err := buildUploadURL(uploadURL, up.Name, up.Label)
	if err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, http.MethodPost, endpoint, up.Body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", up.ContentType)
	req.ContentLength = up.ContentLength

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to upload asset %s", up.Name)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusCreated {
		return nil, readStatusError(resp)
	}

	var uploaded model.UploadedAsset
	if err := json.NewDecoder(resp.Body).Decode(&uploaded); err != nil {
		return nil, errors.Wrap(err, "failed to decode upload response")
	}
	return &uploaded, nil
}

// DeleteAsset removes a published asset by its API URL.
// Any response other than 204 is an UnexpectedStatusError.
func (c *Client) DeleteAsset(ctx context.Context, assetURL string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, assetURL, http.NoBody)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to delete asset")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusNoContent {
		return readStatusError(resp)
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, endpoint string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("X-GitHub-Api-Version", apiVersion)
	if c.auth != nil {
		if err := c.auth.Apply(req); err != nil {
			return nil, errors.Wrap(err, "failed to apply authentication")
		}
	}
	return req, nil
}

// buildUploadURL strips the RFC 6570 "{?name,label}" suffix from the
// templated upload URL and appends concrete query parameters.
func buildUploadURL(uploadURL, name, label string) (string, error) {
	base := uploadURL
	if i := strings.IndexByte(base, '{'); i >= 0 {
		base = base[:i]
	}
	parsed, err := url.Parse(base)
	if err != nil {
		return "", errors.Wrap(err, "invalid upload URL")
	}
	q := parsed.Query()
	q.Set("name", name)
	if label != "" {
		q.Set("label", label)
	}
	parsed.RawQuery = q.Encode()
	return parsed.String(), nil
}

func readStatusError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	return &UnexpectedStatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
}
