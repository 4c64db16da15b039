package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Masterminds/semver/v3"
)

// MinBackendVersion is the oldest league backend this CLI understands.
const MinBackendVersion = "1.2.0"

// VersionInfo is the backend's version handshake.
type VersionInfo struct {
	Version string `json:"version"`
}

// Version fetches the backend build version.
func (c *Client) Version(ctx context.Context) (VersionInfo, error) {
	var info VersionInfo
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/version", nil, &info); err != nil {
		return VersionInfo{}, err
	}
	return info, nil
}

// CheckCompatibility verifies the backend satisfies MinBackendVersion.
func CheckCompatibility(info VersionInfo) error {
	v, err := semver.NewVersion(info.Version)
	if err != nil {
		return fmt.Errorf("backend reported invalid version %q: %w", info.Version, err)
	}

	constraint, err := semver.NewConstraint(">= " + MinBackendVersion)
	if err != nil {
		return fmt.Errorf("parsing version constraint: %w", err)
	}

	if !constraint.Check(v) {
		return fmt.Errorf("backend version %s is older than the supported minimum %s",
			info.Version, MinBackendVersion)
	}
	return nil
}
