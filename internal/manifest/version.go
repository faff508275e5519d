package manifest

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// CompareVersion compares a declared manifest:version with the version this
// package writes. Returns -1 if declared is older, 0 if equal, 1 if newer.
func CompareVersion(declared string) (int, error) {
	dv, err := semver.NewVersion(strings.TrimSpace(declared))
	if err != nil {
		return 0, fmt.Errorf("parsing manifest version %q: %w", declared, err)
	}
	return dv.Compare(supportedVersion), nil
}

var supportedVersion = semver.MustParse(Version)
