// SPDX-License-Identifier: Apache-2.0

package models

// buildInfoUnknown replaces build metadata that was not injected at link time.
const buildInfoUnknown = "N/A"

// AppBuildInfo carries build-time metadata embedded into binaries by linker
// flags. It is printed at startup and reported by GET /api/version.
type AppBuildInfo struct {
	Version string `json:"version"`
	Date    string `json:"buildDate"`
	Commit  string `json:"commit"`
}

// NewAppBuildInfo constructs [AppBuildInfo], replacing empty values with "N/A".
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		Version: orUnknown(buildVersion),
		Date:    orUnknown(buildDate),
		Commit:  orUnknown(buildCommit),
	}
}

func orUnknown(s string) string {
	if s == "" {
		return buildInfoUnknown
	}
	return s
}
