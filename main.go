package main

import (
	"os"

	"github.com/glabops/cli/cmd"
	"github.com/glabops/cli/config"
	"github.com/glabops/cli/constants"
	"github.com/glabops/cli/lib/console"
	"github.com/urfave/cli/v2"
)

func main() {
	// Initialize config
	config.InitConfig()

	// Initialize CLI app
	app := &cli.App{
		Name:    "glabops",
		Usage:   "Bulk management tool for GitLab projects",
		Version: "0.1.0",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Print verbose output",
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool("verbose") {
				config.I.Verbose = true
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "projects",
				Usage: "Manage GitLab projects",
				Subcommands: []*cli.Command{
					{
						Name:   "list",
						Usage:  "List projects, optionally filtered by topic",
						Action: cmd.ListProjects,
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:    "filter-topic",
								Aliases: []string{"t"},
								Usage:   "Filter projects by topic",
							},
							&cli.StringFlag{
								Name:    "format",
								Aliases: []string{"f"},
								Usage:   "Output format (simple, detailed)",
								Value:   "simple",
							},
						},
					},
				},
			},
			{
				Name:  "topics",
				Usage: "Manage topics of GitLab projects",
				Subcommands: []*cli.Command{
					{
						Name:      "add",
						Usage:     "Add topics to projects (stops at the first failure)",
						ArgsUsage: "TOPIC[,TOPIC...]",
						Action:    cmd.AddTopics,
						Flags:     projectFlags(),
					},
					{
						Name:      "remove",
						Usage:     "Remove topics from projects (stops at the first failure)",
						ArgsUsage: "TOPIC[,TOPIC...]",
						Action:    cmd.RemoveTopics,
						Flags:     projectFlags(),
					},
					{
						Name:   "list",
						Usage:  "List topics for projects",
						Action: cmd.ListTopics,
						Flags:  projectFlags(),
					},
				},
			},
			{
				Name:  "file",
				Usage: "Manage files in GitLab repositories",
				Subcommands: []*cli.Command{
					{
						Name:   "update",
						Usage:  "Create or update a file in every selected project",
						Action: cmd.UpdateFile,
						Flags: append(projectFlags(),
							&cli.StringFlag{
								Name:     "file-path",
								Usage:    "Path to local file to upload",
								Required: true,
							},
							&cli.StringFlag{
								Name:     "target-path",
								Usage:    "Target path in the repository",
								Required: true,
							},
							&cli.StringFlag{
								Name:  "commit-message",
								Usage: "Commit message",
								Value: constants.DefaultCommitMessage,
							},
							&cli.StringFlag{
								Name:    "branch",
								Aliases: []string{"b"},
								Usage:   "Branch name (defaults to the project's default branch)",
							},
							&cli.GenericFlag{
								Name:  "change",
								Usage: "Content change to apply before upload (format: \"old:new\", repeatable)",
								Value: &cmd.ChangeList{},
							},
						),
					},
				},
			},
			{
				Name:    "user",
				Aliases: []string{"users"},
				Usage:   "Manage users in GitLab projects",
				Subcommands: []*cli.Command{
					{
						Name:   "add",
						Usage:  "Add users to projects (stops at the first failure)",
						Action: cmd.AddUsers,
						Flags: append(append(userFlags(), projectFlags()...),
							&cli.StringFlag{
								Name:    "role",
								Aliases: []string{"r"},
								Usage:   "Access level to grant (no-access, minimal-access, guest, planner, reporter, developer, maintainer, owner)",
								Value:   constants.DefaultRole,
							},
						),
					},
					{
						Name:   "remove",
						Usage:  "Remove users from projects (stops at the first failure)",
						Action: cmd.RemoveUsers,
						Flags:  append(userFlags(), projectFlags()...),
					},
				},
			},
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		console.ErrorPrint("%s", err.Error())
		os.Exit(1)
	}
}

func projectFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:    "project-ids",
			Aliases: []string{"p"},
			Usage:   "Comma-separated list of project IDs or paths",
		},
		&cli.StringFlag{
			Name:  "project-file",
			Usage: "Path to a CSV file containing project details",
		},
		&cli.StringFlag{
			Name:    "filter-topic",
			Aliases: []string{"t"},
			Usage:   "Select projects carrying an existing topic",
		},
	}
}

func userFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:    "user-ids",
			Aliases: []string{"u"},
			Usage:   "Comma-separated list of user IDs or usernames",
		},
		&cli.StringFlag{
			Name:  "user-file",
			Usage: "Path to a CSV file containing user details",
		},
	}
}
