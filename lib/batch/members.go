package batch

import (
	"context"
	"fmt"

	"github.com/glabops/cli/models"
)

// AddMembers grants the access level to every (user, project) pair in the
// cross product. Pairs are processed sequentially and independently; the
// first failure stops the remaining batch.
func (r *Runner) AddMembers(ctx context.Context, users []models.User, projects []models.Project, level models.AccessLevel) error {
	p, bar := newProgress("add members", len(users)*len(projects))

	for _, user := range users {
		for _, project := range projects {
			r.log.Infow("adding user to project",
				"user", user.Username, "project", project.PathWithNamespace, "role", level.String())

			if err := r.client.AddMember(ctx, user.ID, project.ID, level); err != nil {
				bar.Abort(true)
				p.Wait()
				return fmt.Errorf("failed to add user %s to project %s: %w",
					user.Username, project.PathWithNamespace, err)
			}

			bar.Increment()
		}
	}

	p.Wait()
	return nil
}

// RemoveMembers revokes membership for every (user, project) pair.
func (r *Runner) RemoveMembers(ctx context.Context, users []models.User, projects []models.Project) error {
	p, bar := newProgress("remove members", len(users)*len(projects))

	for _, user := range users {
		for _, project := range projects {
			r.log.Infow("removing user from project",
				"user", user.Username, "project", project.PathWithNamespace)

			if err := r.client.RemoveMember(ctx, user.ID, project.ID); err != nil {
				bar.Abort(true)
				p.Wait()
				return fmt.Errorf("failed to remove user %s from project %s: %w",
					user.Username, project.PathWithNamespace, err)
			}

			bar.Increment()
		}
	}

	p.Wait()
	return nil
}
