package cmd

import (
	"os"
	"strings"

	"github.com/glabops/cli/lib/batch"
	"github.com/glabops/cli/lib/console"
	"github.com/urfave/cli/v2"
)

// ChangeList accumulates repeated --change values verbatim. The stock
// slice flag splits each value on commas, which corrupts replacement
// pairs whose old or new text contains one.
type ChangeList struct {
	values []string
}

func (l *ChangeList) Set(value string) error {
	l.values = append(l.values, value)
	return nil
}

func (l *ChangeList) String() string {
	return strings.Join(l.values, " ")
}

func (l *ChangeList) Values() []string {
	return l.values
}

// Create or update a file in every selected project.
func UpdateFile(c *cli.Context) error {
	app, err := setup()
	if err != nil {
		return err
	}

	projects, err := app.resolver.Projects(c.Context, projectSelection(c))
	if err != nil {
		return err
	}
	console.Info("Found %d projects to update", len(projects))

	// File content must be valid text; it travels base64-encoded.
	content, err := os.ReadFile(c.String("file-path"))
	if err != nil {
		return console.Error("Failed to read file %s: %s", c.String("file-path"), err.Error())
	}

	var changes []string
	if list, ok := c.Generic("change").(*ChangeList); ok {
		changes = list.Values()
	}

	update := batch.FileUpdate{
		TargetPath:    c.String("target-path"),
		Branch:        c.String("branch"),
		CommitMessage: c.String("commit-message"),
		Content:       string(content),
		Changes:       changes,
	}

	if err := app.runner.UpdateFile(c.Context, projects, update); err != nil {
		return err
	}

	console.Success("Successfully updated %s in %d projects", update.TargetPath, len(projects))
	return nil
}
