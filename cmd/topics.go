package cmd

import (
	"strings"

	"github.com/glabops/cli/lib/batch"
	"github.com/glabops/cli/lib/console"
	"github.com/urfave/cli/v2"
)

// Add topics to the selected projects.
func AddTopics(c *cli.Context) error {
	topics, err := batch.CleanTopics(topicArgs(c))
	if err != nil {
		return err
	}

	app, err := setup()
	if err != nil {
		return err
	}

	projects, err := app.resolver.Projects(c.Context, projectSelection(c))
	if err != nil {
		return err
	}
	console.Info("Found %d projects to modify", len(projects))

	if err := app.runner.AddTopics(c.Context, projects, topics); err != nil {
		return err
	}

	console.Success("Successfully added topics to %d projects", len(projects))
	return nil
}

// Remove topics from the selected projects.
func RemoveTopics(c *cli.Context) error {
	topics, err := batch.CleanTopics(topicArgs(c))
	if err != nil {
		return err
	}

	app, err := setup()
	if err != nil {
		return err
	}

	projects, err := app.resolver.Projects(c.Context, projectSelection(c))
	if err != nil {
		return err
	}
	console.Info("Found %d projects to modify", len(projects))

	if err := app.runner.RemoveTopics(c.Context, projects, topics); err != nil {
		return err
	}

	console.Success("Successfully removed topics from %d projects", len(projects))
	return nil
}

// List topics for the selected projects.
func ListTopics(c *cli.Context) error {
	app, err := setup()
	if err != nil {
		return err
	}

	projects, err := app.resolver.Projects(c.Context, projectSelection(c))
	if err != nil {
		return err
	}

	app.runner.ListTopics(projects)
	return nil
}

// Topics are passed as positional args; each arg may hold a
// comma-separated list.
func topicArgs(c *cli.Context) []string {
	var topics []string
	for _, arg := range c.Args().Slice() {
		topics = append(topics, strings.Split(arg, ",")...)
	}
	return topics
}
