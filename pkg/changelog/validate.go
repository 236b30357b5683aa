package changelog

import (
	"fmt"
	"regexp"
	"strings"
)

// Problem is a single validation finding. Line is 0 for file-level findings.
type Problem struct {
	Line    int
	Message string
}

// Report collects validation findings for one document.
type Report struct {
	Problems []Problem
}

func (r *Report) add(line int, format string, args ...interface{}) {
	r.Problems = append(r.Problems, Problem{Line: line, Message: fmt.Sprintf(format, args...)})
}

func (r *Report) OK() bool {
	return len(r.Problems) == 0
}

var (
	isoDate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	semver  = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

	changeTypes = map[string]bool{
		"Added":      true,
		"Changed":    true,
		"Deprecated": true,
		"Removed":    true,
		"Fixed":      true,
		"Security":   true,
	}
)

// Validate checks a document against the Keep a Changelog conventions:
// a "# Changelog" title, an [Unreleased] section, semver version headings
// with ISO 8601 dates, known change types, and a link definition per
// version.
func Validate(source []byte) *Report {
	report := &Report{}

	hasTitle := false
	hasUnreleased := false
	versions := map[string]bool{}

	for i, line := range strings.Split(string(source), "\n") {
		lineNum := i + 1
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "# ") {
			hasTitle = true
			if !strings.Contains(strings.ToLower(trimmed), "changelog") {
				report.add(lineNum, "Title should contain 'Changelog'")
			}
		}

		if strings.HasPrefix(trimmed, "## [") {
			end := strings.Index(trimmed, "]")
			if end <= 4 {
				continue
			}
			version := trimmed[4:end]

			if strings.EqualFold(version, "unreleased") {
				hasUnreleased = true
				continue
			}
			versions[version] = true

			if !semver.MatchString(version) {
				report.add(lineNum, "Version '%s' should follow semantic versioning (X.Y.Z)", version)
			}

			if !strings.Contains(trimmed, " - ") {
				report.add(lineNum, "Version '%s' is missing a release date", version)
			} else if parts := strings.SplitN(trimmed[end+1:], " - ", 2); len(parts) == 2 {
				if date := strings.TrimSpace(parts[1]); !isoDate.MatchString(date) {
					report.add(lineNum, "Date '%s' should be in ISO 8601 format (YYYY-MM-DD)", date)
				}
			}
		}

		if strings.HasPrefix(trimmed, "### ") {
			if changeType := strings.TrimPrefix(trimmed, "### "); !changeTypes[changeType] {
				report.add(lineNum, "Invalid change type '%s'. Valid types: Added, Changed, Deprecated, Removed, Fixed, Security", changeType)
			}
		}
	}

	if !hasTitle {
		report.add(0, "Missing changelog title (# Changelog)")
	}
	if !hasUnreleased {
		report.add(0, "Missing [Unreleased] section")
	}

	if c, err := Parse(source); err == nil {
		for version := range versions {
			if _, ok := c.Links[version]; !ok {
				report.add(0, "Missing link definition for version [%s]", version)
			}
		}
		if hasUnreleased {
			if _, ok := c.Links["Unreleased"]; !ok {
				report.add(0, "Missing link definition for [Unreleased]")
			}
		}
	}

	return report
}
