package targets_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/glabops/cli/lib/gitlab"
	"github.com/glabops/cli/lib/targets"
	"github.com/glabops/cli/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestResolver(t *testing.T, handler http.Handler) *targets.Resolver {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := gitlab.NewClient(server.URL, "test-token", zap.NewNop().Sugar())
	return targets.NewResolver(client, zap.NewNop().Sugar())
}

func TestSelectionValidate(t *testing.T) {
	assert.ErrorIs(t, targets.Selection{}.Validate(true), targets.ErrNoSelection)

	conflicting := targets.Selection{IDs: []string{"1"}, File: "p.csv"}
	assert.ErrorIs(t, conflicting.Validate(true), targets.ErrConflictingSelection)

	conflicting = targets.Selection{IDs: []string{"1"}, Topic: "backend"}
	assert.ErrorIs(t, conflicting.Validate(true), targets.ErrConflictingSelection)

	assert.NoError(t, targets.Selection{IDs: []string{"1"}}.Validate(true))
	assert.NoError(t, targets.Selection{Topic: "backend"}.Validate(true))

	// Topic mode does not apply to users.
	assert.Error(t, targets.Selection{Topic: "backend"}.Validate(false))
}

func TestResolveProjectsNumericTokenUsesIDLookup(t *testing.T) {
	var paths []string

	resolver := newTestResolver(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.EscapedPath())
		switch r.URL.EscapedPath() {
		case "/projects/123":
			writeJSON(t, w, models.Project{ID: 123, PathWithNamespace: "group/first", Name: "first"})
		case "/projects/group%2Fsecond":
			writeJSON(t, w, models.Project{ID: 124, PathWithNamespace: "group/second", Name: "second"})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	projects, err := resolver.Projects(context.Background(), targets.Selection{IDs: []string{"123", "group/second"}})
	require.NoError(t, err)

	// Numeric tokens resolve by ID, everything else by path, in input order.
	assert.Equal(t, []string{"/projects/123", "/projects/group%2Fsecond"}, paths)
	require.Len(t, projects, 2)
	assert.Equal(t, uint64(123), projects[0].ID)
	assert.Equal(t, uint64(124), projects[1].ID)
}

func TestResolveProjectsDeduplicates(t *testing.T) {
	resolver := newTestResolver(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, models.Project{ID: 123, PathWithNamespace: "group/app", Name: "app"})
	}))

	projects, err := resolver.Projects(context.Background(), targets.Selection{IDs: []string{"123", "group/app", "123"}})
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, uint64(123), projects[0].ID)
}

func TestResolveProjectsFailFast(t *testing.T) {
	calls := 0

	resolver := newTestResolver(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.URL.Path == "/projects/123" {
			writeJSON(t, w, models.Project{ID: 123, PathWithNamespace: "group/app", Name: "app"})
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))

	// The bad token aborts the batch; the token after it is never looked up.
	projects, err := resolver.Projects(context.Background(), targets.Selection{IDs: []string{"123", "999", "124"}})
	require.Error(t, err)
	assert.Nil(t, projects)
	assert.Equal(t, 2, calls)
}

func TestResolveProjectsByTopic(t *testing.T) {
	resolver := newTestResolver(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "backend", r.URL.Query().Get("topic"))
		if r.URL.Query().Get("page") == "1" {
			writeJSON(t, w, []models.Project{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}})
			return
		}
		writeJSON(t, w, []models.Project{})
	}))

	projects, err := resolver.Projects(context.Background(), targets.Selection{Topic: "backend"})
	require.NoError(t, err)
	assert.Len(t, projects, 2)
}

func TestResolveProjectsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.csv")
	require.NoError(t, os.WriteFile(path, []byte("id,path_with_namespace,name\n456,group/app,app\n"), 0644))

	resolver := newTestResolver(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("file mode must not hit the network")
	}))

	projects, err := resolver.Projects(context.Background(), targets.Selection{File: path})
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, uint64(456), projects[0].ID)
}

func TestResolveProjectsUnsupportedExtension(t *testing.T) {
	resolver := newTestResolver(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("usage errors must be raised before any network call")
	}))

	_, err := resolver.Projects(context.Background(), targets.Selection{File: "projects.xlsx"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file format")
}

func TestResolveUsers(t *testing.T) {
	resolver := newTestResolver(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/users/7":
			writeJSON(t, w, models.User{ID: 7, Username: "jane", Name: "Jane", State: "active"})
		case "/users":
			assert.Equal(t, "john", r.URL.Query().Get("username"))
			writeJSON(t, w, []models.User{{ID: 8, Username: "john", Name: "John", State: "active"}})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	users, err := resolver.Users(context.Background(), targets.Selection{IDs: []string{"7", "john"}})
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "jane", users[0].Username)
	assert.Equal(t, "john", users[1].Username)
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}
