// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemahtml

// Package upgrade finds published releases and replaces the running executable.
package upgrade

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/mod/semver"
)

// DefaultBaseURL is the GitHub REST API root.
const DefaultBaseURL = "https://api.github.com"

// defaultTimeout bounds one API or download request.
const defaultTimeout = 5 * time.Minute

var (
	// ErrReleaseNotFound is returned when requested release does not exist.
	ErrReleaseNotFound = errors.New("release not found")
	// ErrAssetNotFound is returned when release has no asset for the platform.
	ErrAssetNotFound = errors.New("release asset not found")
	// ErrUnexpectedStatus is returned for non-success HTTP responses.
	ErrUnexpectedStatus = errors.New("unexpected http status")
	// ErrInvalidVersion is returned when release tag is not a semantic version.
	ErrInvalidVersion = errors.New("invalid version")
)

// Release is the subset of GitHub release payload used for upgrades.
type Release struct {
	TagName    string  `json:"tag_name"`
	Name       string  `json:"name"`
	HTMLURL    string  `json:"html_url"`
	Prerelease bool    `json:"prerelease"`
	Assets     []Asset `json:"assets"`
}

// Asset is one downloadable release file.
type Asset struct {
	Name        string `json:"name"`
	DownloadURL string `json:"browser_download_url"`
	Size        int64  `json:"size"`
}

// Client talks to the release host.
type Client struct {
	HTTPClient *http.Client
	BaseURL    string
	Owner      string
	Repo       string
	UserAgent  string
}

// NewClient returns client for owner/repo on GitHub.
func NewClient(owner, repo, userAgent string) *Client {
	return &Client{
		HTTPClient: &http.Client{Timeout: defaultTimeout},
		BaseURL:    DefaultBaseURL,
		Owner:      owner,
		Repo:       repo,
		UserAgent:  userAgent,
	}
}

// Latest returns the latest published release.
func (c *Client) Latest(ctx context.Context) (Release, error) {
	return c.fetchRelease(ctx, "releases/latest")
}

// Release returns release by version; "1.2.3" and "v1.2.3" are equivalent.
func (c *Client) Release(ctx context.Context, version string) (Release, error) {
	return c.fetchRelease(ctx, "releases/tags/"+url.PathEscape(CanonicalTag(version)))
}

// Download opens asset body for reading; caller closes it.
func (c *Client) Download(ctx context.Context, asset Asset) (io.ReadCloser, error) {
	req, err := c.newRequest(ctx, asset.DownloadURL, "application/octet-stream")
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", asset.Name, err)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("download %s: %w %d", asset.Name, ErrUnexpectedStatus, resp.StatusCode)
	}

	return resp.Body, nil
}

// fetchRelease loads one release document relative to repository API path.
func (c *Client) fetchRelease(ctx context.Context, path string) (Release, error) {
	base := strings.TrimSuffix(strings.TrimSpace(c.BaseURL), "/")
	if base == "" {
		base = DefaultBaseURL
	}

	endpoint := fmt.Sprintf("%s/repos/%s/%s/%s", base, url.PathEscape(c.Owner), url.PathEscape(c.Repo), path)
	req, err := c.newRequest(ctx, endpoint, "application/vnd.github+json")
	if err != nil {
		return Release{}, err
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return Release{}, fmt.Errorf("fetch release: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return Release{}, ErrReleaseNotFound
	default:
		return Release{}, fmt.Errorf("fetch release: %w %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var release Release
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return Release{}, fmt.Errorf("decode release: %w", err)
	}

	return release, nil
}

// newRequest builds GET request with common headers.
func (c *Client) newRequest(ctx context.Context, endpoint, accept string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Accept", accept)
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	return req, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}

	return http.DefaultClient
}

// CanonicalTag adds the "v" prefix expected by release tags.
func CanonicalTag(version string) string {
	version = strings.TrimSpace(version)
	if version == "" || strings.HasPrefix(version, "v") {
		return version
	}

	return "v" + version
}

// NeedsUpgrade reports whether target release should replace current build.
// Development builds and non-semver current versions always upgrade.
func NeedsUpgrade(current, target string, force bool) (bool, error) {
	target = CanonicalTag(target)
	if !semver.IsValid(target) {
		return false, fmt.Errorf("%w %q", ErrInvalidVersion, target)
	}

	if force {
		return true, nil
	}

	current = CanonicalTag(current)
	if !semver.IsValid(current) {
		return true, nil
	}

	return semver.Compare(target, current) > 0, nil
}

// AssetName returns expected binary asset name, for example schemahtml_linux_amd64.
func AssetName(binary, goos, goarch string) string {
	name := binary + "_" + goos + "_" + goarch
	if goos == "windows" {
		name += ".exe"
	}

	return name
}

// SelectAsset picks release asset built for goos/goarch.
func SelectAsset(release Release, binary, goos, goarch string) (Asset, error) {
	want := AssetName(binary, goos, goarch)
	for _, asset := range release.Assets {
		if strings.EqualFold(asset.Name, want) {
			return asset, nil
		}
	}

	return Asset{}, fmt.Errorf("%w: %s in %s", ErrAssetNotFound, want, release.TagName)
}

// ReplaceExecutable atomically replaces file at path with content from r.
// The new file is staged next to the target so the final rename stays on one filesystem.
func ReplaceExecutable(path string, r io.Reader) error {
	dir := filepath.Dir(path)
	staged, err := os.CreateTemp(dir, "."+filepath.Base(path)+".upgrade-*")
	if err != nil {
		return fmt.Errorf("create staged executable: %w", err)
	}

	stagedPath := staged.Name()
	cleanup := func() {
		_ = os.Remove(stagedPath)
	}

	if _, err := io.Copy(staged, r); err != nil {
		_ = staged.Close()
		cleanup()
		return fmt.Errorf("write staged executable: %w", err)
	}

	if err := staged.Close(); err != nil {
		cleanup()
		return fmt.Errorf("close staged executable: %w", err)
	}

	if err := os.Chmod(stagedPath, 0o755); err != nil { //nolint:gosec // executables need exec bits.
		cleanup()
		return fmt.Errorf("chmod staged executable: %w", err)
	}

	// A running Windows executable cannot be overwritten, only renamed.
	if runtime.GOOS == "windows" {
		oldPath := path + ".old"
		_ = os.Remove(oldPath)
		if err := os.Rename(path, oldPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			cleanup()
			return fmt.Errorf("move current executable aside: %w", err)
		}
	}

	if err := os.Rename(stagedPath, path); err != nil {
		cleanup()
		return fmt.Errorf("replace executable: %w", err)
	}

	return nil
}
