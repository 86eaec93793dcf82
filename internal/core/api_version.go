package core

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	pep440 "github.com/aquasecurity/go-pep440-version"
	"github.com/rs/zerolog/log"
)

// DefaultAPIVersion is used when neither the caller nor the project file
// names a Metadata API version.
const DefaultAPIVersion = "44.0"

// NormalizeAPIVersion accepts "44", "44.0" and "v44.0" and returns the
// canonical "44.0" form. Metadata API versions have no minor releases.
func NormalizeAPIVersion(value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	trimmed = strings.TrimPrefix(strings.TrimPrefix(trimmed, "v"), "V")
	if trimmed == "" {
		return "", invalidAPIVersion(value, nil)
	}
	major, minor, hasMinor := strings.Cut(trimmed, ".")
	n, err := strconv.Atoi(major)
	if err != nil || n <= 0 {
		return "", invalidAPIVersion(value, err)
	}
	if hasMinor && strings.Trim(minor, "0") != "" {
		return "", invalidAPIVersion(value, nil)
	}
	return fmt.Sprintf("%d.0", n), nil
}

// CompareAPIVersions returns -1, 0 or 1. Both values must be valid.
func CompareAPIVersions(a string, b string) (int, error) {
	va, err := parseAPIVersion(a)
	if err != nil {
		return 0, err
	}
	vb, err := parseAPIVersion(b)
	if err != nil {
		return 0, err
	}
	return va.Compare(vb), nil
}

// SelectAPIVersion picks the explicit version, then the project's
// sourceApiVersion, then DefaultAPIVersion.
func SelectAPIVersion(ctx context.Context, explicit string, sourceAPIVersion string) (string, error) {
	if strings.TrimSpace(explicit) == "" {
		if strings.TrimSpace(sourceAPIVersion) == "" {
			return DefaultAPIVersion, nil
		}
		return NormalizeAPIVersion(sourceAPIVersion)
	}
	selected, err := NormalizeAPIVersion(explicit)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(sourceAPIVersion) == "" {
		return selected, nil
	}
	cmp, err := CompareAPIVersions(selected, sourceAPIVersion)
	if err != nil {
		return "", err
	}
	if cmp < 0 {
		log.Ctx(ctx).Warn().
			Str("api_version", selected).
			Str("source_api_version", sourceAPIVersion).
			Msg("api version is lower than the project sourceApiVersion; newer metadata may be rejected")
	}
	return selected, nil
}

func parseAPIVersion(value string) (pep440.Version, error) {
	canonical, err := NormalizeAPIVersion(value)
	if err != nil {
		return pep440.Version{}, err
	}
	return pep440.Parse(canonical)
}

func invalidAPIVersion(value string, cause error) error {
	builder := errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("invalid api version %q", value))
	if cause != nil {
		return builder.WithCause(cause)
	}
	return builder
}
