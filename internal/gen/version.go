package gen

import (
	"fmt"
	"regexp"
	"strconv"
)

// versionStep is how much the minor component advances per regeneration.
const versionStep = 10

// versionTagPattern is the header tag contract other tooling parses;
// generated artifacts always carry a tag in exactly this form.
var versionTagPattern = regexp.MustCompile(`@version\s+(\d+)\.(\d+)`)

// Version is the major.minor marker embedded in an artifact header.
type Version struct {
	Major int
	Minor int
}

// InitialVersion is the tag assigned to a freshly generated artifact.
func InitialVersion() Version {
	return Version{Major: 1, Minor: 0}
}

// ParseVersion extracts the @version tag from existing artifact text.
// A missing or unparseable tag is not an error: the initial version is
// returned silently.
func ParseVersion(artifactText string) Version {
	m := versionTagPattern.FindStringSubmatch(artifactText)
	if m == nil {
		return InitialVersion()
	}
	major, err1 := strconv.Atoi(m[1])
	minor, err2 := strconv.Atoi(m[2])
	if err1 != nil || err2 != nil {
		return InitialVersion()
	}
	return Version{Major: major, Minor: minor}
}

// Next returns the version a regenerated artifact gets. The minor
// component advances by 10; past 99 the major rolls forward and the
// minor resets (1.90 -> 2.00).
func (v Version) Next() Version {
	minor := v.Minor + versionStep
	if minor > 99 {
		return Version{Major: v.Major + 1, Minor: 0}
	}
	return Version{Major: v.Major, Minor: minor}
}

// String renders the tag with the minor always zero-padded to two
// digits: 1.00, 1.10, 2.40.
func (v Version) String() string {
	return fmt.Sprintf("%d.%02d", v.Major, v.Minor)
}
