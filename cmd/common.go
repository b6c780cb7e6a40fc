package cmd

import (
	"github.com/glabops/cli/config"
	"github.com/glabops/cli/constants"
	"github.com/glabops/cli/lib/batch"
	"github.com/glabops/cli/lib/console"
	"github.com/glabops/cli/lib/gitlab"
	"github.com/glabops/cli/lib/logging"
	"github.com/glabops/cli/lib/targets"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// Per-invocation wiring: logger, API client, resolver, batch runner.
type app struct {
	log      *zap.SugaredLogger
	client   *gitlab.Client
	resolver *targets.Resolver
	runner   *batch.Runner
}

func setup() (*app, error) {
	if config.I.APIURL == "" {
		return nil, console.Error("GitLab API URL not set. Set GITLAB_API_URL or api_url in %s", constants.ConfigFileName)
	}
	if config.I.APIToken == "" {
		return nil, console.Error("GitLab API token not set. Set GITLAB_API_TOKEN or api_token in %s", constants.ConfigFileName)
	}

	log := logging.NewLogger(config.I.Verbose)
	client := gitlab.NewClient(config.I.APIURL, config.I.APIToken, log)
	console.Verbose("Using GitLab API at %s", config.I.APIURL)

	return &app{
		log:      log,
		client:   client,
		resolver: targets.NewResolver(client, log),
		runner:   batch.NewRunner(client, log),
	}, nil
}

func projectSelection(c *cli.Context) targets.Selection {
	return targets.Selection{
		IDs:   c.StringSlice("project-ids"),
		File:  c.String("project-file"),
		Topic: c.String("filter-topic"),
	}
}

func userSelection(c *cli.Context) targets.Selection {
	return targets.Selection{
		IDs:  c.StringSlice("user-ids"),
		File: c.String("user-file"),
	}
}
