package gitlab

import (
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
)

// APIError is a non-success response from the GitLab API. It carries the
// operation, the identifying keys of the target, and the server's error
// body when one was returned.
type APIError struct {
	Op     string
	Target string
	Status int
	Body   string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s (%s): status %d", e.Op, e.Target, e.Status)
	}
	return fmt.Sprintf("%s (%s): status %d: %s", e.Op, e.Target, e.Status, e.Body)
}

func apiErr(op string, target string, res *resty.Response) error {
	return &APIError{
		Op:     op,
		Target: target,
		Status: res.StatusCode(),
		Body:   strings.TrimSpace(string(res.Body())),
	}
}
