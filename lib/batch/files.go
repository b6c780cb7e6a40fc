package batch

import (
	"context"
	"fmt"
	"strings"

	"github.com/glabops/cli/constants"
	"github.com/glabops/cli/lib/console"
	"github.com/glabops/cli/models"
)

// FileUpdate describes one file write broadcast to every target project.
type FileUpdate struct {
	// Path of the file inside each repository.
	TargetPath string
	// Branch to commit to. Empty means the project's default branch,
	// falling back to "main".
	Branch        string
	CommitMessage string
	Content       string
	// Literal "old:new" replacement pairs applied to the content in order.
	Changes []string
}

// UpdateFile writes one content blob to every project, creating or updating
// the file per project depending on its current existence.
func (r *Runner) UpdateFile(ctx context.Context, projects []models.Project, update FileUpdate) error {
	content := r.applyChanges(update.Content, update.Changes)

	p, bar := newProgress("update file", len(projects))

	for _, project := range projects {
		r.log.Infow("updating file in project",
			"project", project.PathWithNamespace, "file_path", update.TargetPath)

		branch := update.Branch
		if branch == "" {
			branch = project.DefaultBranch
		}
		if branch == "" {
			branch = constants.FallbackBranch
		}

		if err := r.client.WriteFile(ctx, project.ID, update.TargetPath, branch, update.CommitMessage, content); err != nil {
			bar.Abort(true)
			p.Wait()
			return fmt.Errorf("failed to write file %s in project %s: %w",
				update.TargetPath, project.PathWithNamespace, err)
		}

		bar.Increment()
	}

	p.Wait()
	return nil
}

// applyChanges applies literal old:new substring replacements sequentially.
// A malformed pair (not exactly two colon-delimited parts) is skipped with
// a warning and the content proceeds unmodified.
func (r *Runner) applyChanges(content string, changes []string) string {
	for _, change := range changes {
		parts := strings.Split(change, ":")
		if len(parts) != 2 {
			console.Warning("Ignoring invalid change format: %s", change)
			continue
		}
		content = strings.ReplaceAll(content, parts[0], parts[1])
	}

	return content
}
