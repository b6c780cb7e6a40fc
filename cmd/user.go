package cmd

import (
	"github.com/glabops/cli/lib/console"
	"github.com/glabops/cli/models"
	"github.com/urfave/cli/v2"
)

// Grant users membership in the selected projects.
func AddUsers(c *cli.Context) error {
	role, err := models.ParseAccessLevel(c.String("role"))
	if err != nil {
		return err
	}

	app, err := setup()
	if err != nil {
		return err
	}

	users, err := app.resolver.Users(c.Context, userSelection(c))
	if err != nil {
		return err
	}
	console.Info("Found %d users to add", len(users))

	projects, err := app.resolver.Projects(c.Context, projectSelection(c))
	if err != nil {
		return err
	}
	console.Info("Found %d projects to modify", len(projects))

	if err := app.runner.AddMembers(c.Context, users, projects, role); err != nil {
		return err
	}

	console.Success("Successfully added %d users to %d projects", len(users), len(projects))
	return nil
}

// Revoke users' membership in the selected projects.
func RemoveUsers(c *cli.Context) error {
	app, err := setup()
	if err != nil {
		return err
	}

	users, err := app.resolver.Users(c.Context, userSelection(c))
	if err != nil {
		return err
	}
	console.Info("Found %d users to remove", len(users))

	projects, err := app.resolver.Projects(c.Context, projectSelection(c))
	if err != nil {
		return err
	}
	console.Info("Found %d projects to modify", len(projects))

	if err := app.runner.RemoveMembers(c.Context, users, projects); err != nil {
		return err
	}

	console.Success("Successfully removed %d users from %d projects", len(users), len(projects))
	return nil
}
