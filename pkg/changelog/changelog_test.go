package changelog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `# Changelog

All notable changes to this project will be documented in this file.

The format is based on [Keep a Changelog](https://keepachangelog.com/en/1.1.0/),
and this project adheres to [Semantic Versioning](https://semver.org/spec/v2.0.0.html).

## [Unreleased]

### Added
- Site-level key rotation schedules

## [0.2.0] - 2026-08-01

### Added
- Key revocation and reactivation endpoints

### Fixed
- Pagination limit clamping

## [0.1.0] - 2026-07-01

### Added
- Initial release

[Unreleased]: https://github.com/configvault/config-vault/compare/v0.2.0...HEAD
[0.2.0]: https://github.com/configvault/config-vault/compare/v0.1.0...v0.2.0
[0.1.0]: https://github.com/configvault/config-vault/releases/tag/v0.1.0
`

func TestParse(t *testing.T) {
	c, err := Parse([]byte(sample))
	require.NoError(t, err)
	require.Len(t, c.Entries, 3)

	assert.Equal(t, "Unreleased", c.Entries[0].Version)
	assert.Empty(t, c.Entries[0].Date)

	assert.Equal(t, "0.2.0", c.Entries[1].Version)
	assert.Equal(t, "2026-08-01", c.Entries[1].Date)
	assert.Contains(t, c.Entries[1].Body, "Key revocation")

	assert.Len(t, c.Links, 3)
	assert.Equal(t, "https://github.com/configvault/config-vault/compare/v0.1.0...v0.2.0", c.Links["0.2.0"])
}

func TestFind(t *testing.T) {
	c, err := Parse([]byte(sample))
	require.NoError(t, err)

	tests := []struct {
		name     string
		version  string
		expected string
	}{
		{"exact version", "0.2.0", "0.2.0"},
		{"with v prefix", "v0.2.0", "0.2.0"},
		{"older version", "0.1.0", "0.1.0"},
		{"unreleased", "Unreleased", "Unreleased"},
		{"unknown", "9.9.9", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := c.Find(tt.version)
			if tt.expected == "" {
				assert.Nil(t, entry)
			} else {
				require.NotNil(t, entry)
				assert.Equal(t, tt.expected, entry.Version)
			}
		})
	}
}

func TestLatestSkipsUnreleased(t *testing.T) {
	c, err := Parse([]byte(sample))
	require.NoError(t, err)

	latest := c.Latest()
	require.NotNil(t, latest)
	assert.Equal(t, "0.2.0", latest.Version)
}

func TestValidateAccepts(t *testing.T) {
	report := Validate([]byte(sample))
	assert.True(t, report.OK(), "expected clean report, got: %v", report.Problems)
}

func TestValidateFindings(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		finding string
	}{
		{
			name: "missing title",
			source: `## [Unreleased]

[Unreleased]: https://example.com
`,
			finding: "Missing changelog title",
		},
		{
			name: "missing unreleased section",
			source: `# Changelog

## [0.1.0] - 2026-07-01

### Added
- Something

[0.1.0]: https://example.com
`,
			finding: "Missing [Unreleased] section",
		},
		{
			name: "bad date format",
			source: `# Changelog

## [Unreleased]

## [0.1.0] - 01-07-2026

### Added
- Something

[Unreleased]: https://example.com
[0.1.0]: https://example.com
`,
			finding: "ISO 8601",
		},
		{
			name: "unknown change type",
			source: `# Changelog

## [Unreleased]

### New
- Something

[Unreleased]: https://example.com
`,
			finding: "Invalid change type",
		},
		{
			name: "missing link definitions",
			source: `# Changelog

## [Unreleased]

## [0.1.0] - 2026-07-01

### Added
- Something
`,
			finding: "Missing link definition",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Validate([]byte(tt.source))
			assert.False(t, report.OK())

			found := false
			for _, p := range report.Problems {
				if strings.Contains(p.Message, tt.finding) {
					found = true
				}
			}
			assert.True(t, found, "no finding containing %q in %v", tt.finding, report.Problems)
		})
	}
}
