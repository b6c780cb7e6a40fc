package batch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glabops/cli/lib/gitlab"
	"github.com/glabops/cli/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRunner(t *testing.T, handler http.Handler) *Runner {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := gitlab.NewClient(server.URL, "test-token", zap.NewNop().Sugar())
	return NewRunner(client, zap.NewNop().Sugar())
}

// Captures the topics array of PUT /projects/{id} bodies, keyed by path.
func topicsCapturingHandler(t *testing.T, captured map[string][]string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)

		var body struct {
			Topics []string `json:"topics"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		captured[r.URL.Path] = body.Topics

		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(models.Project{Topics: body.Topics}))
	})
}

func TestAddTopicsUnion(t *testing.T) {
	captured := map[string][]string{}
	runner := newTestRunner(t, topicsCapturingHandler(t, captured))

	project := models.Project{ID: 456, PathWithNamespace: "group/app", Topics: []string{"test", "example"}}

	err := runner.AddTopics(context.Background(), []models.Project{project}, []string{"backend"})
	require.NoError(t, err)

	// Full replacement set, first-seen order preserved.
	assert.Equal(t, []string{"test", "example", "backend"}, captured["/projects/456"])
}

func TestAddTopicsIsIdempotent(t *testing.T) {
	captured := map[string][]string{}
	runner := newTestRunner(t, topicsCapturingHandler(t, captured))

	project := models.Project{ID: 456, PathWithNamespace: "group/app", Topics: []string{"x", "y"}}

	err := runner.AddTopics(context.Background(), []models.Project{project}, []string{"x", "y"})
	require.NoError(t, err)

	// Adding already-present topics introduces no duplicates.
	assert.Equal(t, []string{"x", "y"}, captured["/projects/456"])
}

func TestRemoveTopics(t *testing.T) {
	captured := map[string][]string{}
	runner := newTestRunner(t, topicsCapturingHandler(t, captured))

	project := models.Project{ID: 456, PathWithNamespace: "group/app", Topics: []string{"test", "example"}}

	err := runner.RemoveTopics(context.Background(), []models.Project{project}, []string{"test"})
	require.NoError(t, err)

	assert.Equal(t, []string{"example"}, captured["/projects/456"])
}

func TestRemoveTopicsAbsentIsNoOp(t *testing.T) {
	captured := map[string][]string{}
	runner := newTestRunner(t, topicsCapturingHandler(t, captured))

	project := models.Project{ID: 456, PathWithNamespace: "group/app", Topics: []string{"test", "example"}}

	err := runner.RemoveTopics(context.Background(), []models.Project{project}, []string{"missing"})
	require.NoError(t, err)

	assert.Equal(t, []string{"test", "example"}, captured["/projects/456"])
}

func TestAddTopicsStopsOnFirstFailure(t *testing.T) {
	calls := 0
	runner := newTestRunner(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusForbidden)
	}))

	projects := []models.Project{
		{ID: 1, PathWithNamespace: "group/a"},
		{ID: 2, PathWithNamespace: "group/b"},
	}

	err := runner.AddTopics(context.Background(), projects, []string{"backend"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "group/a")
	assert.Equal(t, 1, calls)
}

func TestAddTopicsEmptyProjectList(t *testing.T) {
	calls := 0
	runner := newTestRunner(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))

	// An empty target set must return promptly without any API call.
	done := make(chan error, 1)
	go func() {
		done <- runner.AddTopics(context.Background(), []models.Project{}, []string{"backend"})
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("AddTopics did not return for an empty project list")
	}

	assert.Equal(t, 0, calls)
}

func TestCleanTopics(t *testing.T) {
	topics, err := CleanTopics([]string{" backend ", "", "api", "  "})
	require.NoError(t, err)
	assert.Equal(t, []string{"backend", "api"}, topics)

	_, err = CleanTopics([]string{"", "   "})
	require.Error(t, err)

	_, err = CleanTopics(nil)
	require.Error(t, err)
}
