package batch

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/glabops/cli/lib/console"
	"github.com/glabops/cli/models"
	"github.com/samber/lo"
)

// CleanTopics trims the requested topics and drops empty entries. An empty
// result is a usage error, raised before any network call is made.
func CleanTopics(raw []string) ([]string, error) {
	topics := lo.FilterMap(raw, func(t string, _ int) (string, bool) {
		t = strings.TrimSpace(t)
		return t, t != ""
	})

	if len(topics) == 0 {
		return nil, errors.New("no valid topics provided")
	}

	return topics, nil
}

// AddTopics adds topics to every project. Matching is exact and
// case-sensitive; topics already present are left alone, first-seen order
// is preserved, and the full desired set is sent as a replacement.
func (r *Runner) AddTopics(ctx context.Context, projects []models.Project, topics []string) error {
	p, bar := newProgress("add topics", len(projects))

	for _, project := range projects {
		r.log.Infow("adding topics to project",
			"project", project.PathWithNamespace, "topics", topics)

		merged := lo.Uniq(append(append([]string{}, project.Topics...), topics...))

		if _, err := r.client.UpdateTopics(ctx, project.ID, merged); err != nil {
			bar.Abort(true)
			p.Wait()
			return fmt.Errorf("failed to update topics for project %s: %w", project.PathWithNamespace, err)
		}

		bar.Increment()
	}

	p.Wait()
	return nil
}

// RemoveTopics removes topics from every project. Removing a topic that is
// not present is a no-op for that topic.
func (r *Runner) RemoveTopics(ctx context.Context, projects []models.Project, topics []string) error {
	p, bar := newProgress("remove topics", len(projects))

	for _, project := range projects {
		r.log.Infow("removing topics from project",
			"project", project.PathWithNamespace, "topics", topics)

		remaining := lo.Without(project.Topics, topics...)

		if _, err := r.client.UpdateTopics(ctx, project.ID, remaining); err != nil {
			bar.Abort(true)
			p.Wait()
			return fmt.Errorf("failed to update topics for project %s: %w", project.PathWithNamespace, err)
		}

		bar.Increment()
	}

	p.Wait()
	return nil
}

// ListTopics prints per-project topic membership. Read-only.
func (r *Runner) ListTopics(projects []models.Project) {
	console.Info("Topics for %d projects:", len(projects))
	console.Info("---------------------------")

	for _, project := range projects {
		console.Info("Project: %s (ID: %d)", project.PathWithNamespace, project.ID)

		if len(project.Topics) == 0 {
			console.Info("  No topics assigned")
		}
		for _, topic := range project.Topics {
			console.Info("  - %s", topic)
		}

		console.Info("---------------------------")
	}
}
