package models

// Project is a GitLab project as returned by the REST API.
//
// Everything except Topics is read-only from this tool's perspective.
// Topics is replaced as a whole set, never patched.
type Project struct {
	ID                uint64   `json:"id"`
	PathWithNamespace string   `json:"path_with_namespace"`
	Name              string   `json:"name"`
	Description       string   `json:"description,omitempty"`
	DefaultBranch     string   `json:"default_branch,omitempty"`
	Visibility        string   `json:"visibility"`
	WebURL            string   `json:"web_url"`
	Topics            []string `json:"topics"`
}
