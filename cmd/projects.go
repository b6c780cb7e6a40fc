package cmd

import (
	"fmt"
	"strings"

	"github.com/TwiN/go-color"
	"github.com/glabops/cli/lib/console"
	"github.com/glabops/cli/models"
	"github.com/urfave/cli/v2"
)

// List projects, optionally filtered by topic.
func ListProjects(c *cli.Context) error {
	app, err := setup()
	if err != nil {
		return err
	}

	var projects []models.Project
	if topic := c.String("filter-topic"); topic != "" {
		projects, err = app.client.FindProjectsByTopic(c.Context, topic)
	} else {
		projects, err = app.client.ListProjects(c.Context)
	}
	if err != nil {
		return err
	}

	if len(projects) == 0 {
		console.Info("No projects found.")
		return nil
	}

	console.Info("Found %d projects:", len(projects))

	detailed := strings.ToLower(c.String("format")) == "detailed"
	for _, project := range projects {
		if detailed {
			printProjectDetails(project)
		} else {
			topicsStr := "No topics"
			if len(project.Topics) > 0 {
				topicsStr = strings.Join(project.Topics, ", ")
			}
			fmt.Printf("%s - %s [%s]\n",
				color.Ize(color.Cyan, fmt.Sprintf("%d", project.ID)),
				color.Ize(color.Green, project.PathWithNamespace),
				color.Ize(color.Yellow, topicsStr),
			)
		}
	}

	return nil
}

func printProjectDetails(project models.Project) {
	fmt.Println("---------------------------")
	fmt.Printf("ID: %d\n", project.ID)
	fmt.Printf("Name: %s\n", project.Name)
	fmt.Printf("Path: %s\n", project.PathWithNamespace)

	if project.Description != "" {
		fmt.Printf("Description: %s\n", project.Description)
	}

	fmt.Printf("Visibility: %s\n", project.Visibility)
	fmt.Printf("Web URL: %s\n", project.WebURL)

	if len(project.Topics) > 0 {
		fmt.Println("Topics:")
		for _, topic := range project.Topics {
			fmt.Printf("  - %s\n", topic)
		}
	} else {
		fmt.Println("Topics: None")
	}

	fmt.Println("---------------------------")
}
