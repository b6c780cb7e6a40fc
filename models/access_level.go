package models

import (
	"fmt"
	"strings"
)

// AccessLevel is a GitLab project access level. The numeric values are
// defined by the GitLab API and sent as-is in membership calls.
type AccessLevel int

const (
	NoAccess      AccessLevel = 0
	MinimalAccess AccessLevel = 5
	Guest         AccessLevel = 10
	Planner       AccessLevel = 15
	Reporter      AccessLevel = 20
	Developer     AccessLevel = 30
	Maintainer    AccessLevel = 40
	Owner         AccessLevel = 50
)

// ParseAccessLevel parses an access level from a symbolic name
// (case-insensitive, with or without "_"/"-" separators) or its literal
// numeric value. Anything else is an error, never a default.
func ParseAccessLevel(s string) (AccessLevel, error) {
	switch strings.ToLower(s) {
	case "noaccess", "no_access", "no-access", "0":
		return NoAccess, nil
	case "minimalaccess", "minimal_access", "minimal-access", "5":
		return MinimalAccess, nil
	case "guest", "10":
		return Guest, nil
	case "planner", "15":
		return Planner, nil
	case "reporter", "20":
		return Reporter, nil
	case "developer", "30":
		return Developer, nil
	case "maintainer", "40":
		return Maintainer, nil
	case "owner", "50":
		return Owner, nil
	}
	return 0, fmt.Errorf("invalid access level: %s", s)
}

func (l AccessLevel) String() string {
	switch l {
	case NoAccess:
		return "No Access"
	case MinimalAccess:
		return "Minimal Access"
	case Guest:
		return "Guest"
	case Planner:
		return "Planner"
	case Reporter:
		return "Reporter"
	case Developer:
		return "Developer"
	case Maintainer:
		return "Maintainer"
	case Owner:
		return "Owner"
	}
	return fmt.Sprintf("AccessLevel(%d)", int(l))
}
