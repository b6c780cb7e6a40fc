package targets

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/glabops/cli/lib/csvio"
	"github.com/glabops/cli/lib/gitlab"
	"github.com/glabops/cli/models"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

var (
	ErrNoSelection          = errors.New("no target selection provided")
	ErrConflictingSelection = errors.New("target selection modes are mutually exclusive")
)

// Selection is one way of choosing targets. Exactly one field may be
// populated; the modes are mutually exclusive and validated before any
// network activity.
type Selection struct {
	// Explicit IDs, paths, or usernames.
	IDs []string
	// Path to a CSV file of entity records.
	File string
	// Existing topic to filter by. Projects only.
	Topic string
}

// Validate checks that exactly one selection mode is populated.
func (s Selection) Validate(allowTopic bool) error {
	modes := 0
	if len(s.IDs) > 0 {
		modes++
	}
	if s.File != "" {
		modes++
	}
	if s.Topic != "" {
		if !allowTopic {
			return errors.New("topic filtering is not supported for this target type")
		}
		modes++
	}

	if modes == 0 {
		return ErrNoSelection
	}
	if modes > 1 {
		return ErrConflictingSelection
	}

	return nil
}

// Resolver turns a selection into concrete entities.
type Resolver struct {
	client *gitlab.Client
	log    *zap.SugaredLogger
}

func NewResolver(client *gitlab.Client, log *zap.SugaredLogger) *Resolver {
	return &Resolver{
		client: client,
		log:    log,
	}
}

// Projects resolves a selection into a deduplicated, order-stable project
// list. Resolution is fail-fast: the first lookup failure aborts the whole
// batch so mutations only ever start from a fully valid target set.
func (r *Resolver) Projects(ctx context.Context, sel Selection) ([]models.Project, error) {
	if err := sel.Validate(true); err != nil {
		return nil, err
	}

	var projects []models.Project
	switch {
	case sel.File != "":
		r.log.Debugw("loading projects from file", "file", sel.File)
		if err := checkExtension(sel.File); err != nil {
			return nil, err
		}
		loaded, err := csvio.ReadProjects(sel.File)
		if err != nil {
			return nil, err
		}
		projects = loaded
	case sel.Topic != "":
		r.log.Debugw("searching for projects with topic", "topic", sel.Topic)
		found, err := r.client.FindProjectsByTopic(ctx, sel.Topic)
		if err != nil {
			return nil, err
		}
		projects = found
	default:
		r.log.Debugw("resolving explicit project tokens", "tokens", sel.IDs)
		for _, token := range sel.IDs {
			project, err := r.resolveProject(ctx, token)
			if err != nil {
				return nil, err
			}
			projects = append(projects, *project)
		}
	}

	return lo.UniqBy(projects, func(p models.Project) uint64 { return p.ID }), nil
}

// Users resolves a selection into a deduplicated, order-stable user list.
// Topic mode does not apply to users.
func (r *Resolver) Users(ctx context.Context, sel Selection) ([]models.User, error) {
	if err := sel.Validate(false); err != nil {
		return nil, err
	}

	var users []models.User
	switch {
	case sel.File != "":
		r.log.Debugw("loading users from file", "file", sel.File)
		if err := checkExtension(sel.File); err != nil {
			return nil, err
		}
		loaded, err := csvio.ReadUsers(sel.File)
		if err != nil {
			return nil, err
		}
		users = loaded
	default:
		r.log.Debugw("resolving explicit user tokens", "tokens", sel.IDs)
		for _, token := range sel.IDs {
			user, err := r.resolveUser(ctx, token)
			if err != nil {
				return nil, err
			}
			users = append(users, *user)
		}
	}

	return lo.UniqBy(users, func(u models.User) uint64 { return u.ID }), nil
}

// Numeric tokens are always ID lookups, never path lookups, even when a
// same-named entity exists.
func (r *Resolver) resolveProject(ctx context.Context, token string) (*models.Project, error) {
	if id, err := strconv.ParseUint(token, 10, 64); err == nil {
		return r.client.GetProject(ctx, id)
	}
	return r.client.GetProjectByPath(ctx, token)
}

func (r *Resolver) resolveUser(ctx context.Context, token string) (*models.User, error) {
	if id, err := strconv.ParseUint(token, 10, 64); err == nil {
		return r.client.GetUser(ctx, id)
	}
	return r.client.GetUserByUsername(ctx, token)
}

func checkExtension(path string) error {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext != "csv" {
		return fmt.Errorf("unsupported file format: %s (only CSV files are supported)", ext)
	}
	return nil
}
