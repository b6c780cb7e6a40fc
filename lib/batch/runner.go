package batch

import (
	"github.com/glabops/cli/lib/gitlab"
	"go.uber.org/zap"
)

// Runner applies one operation uniformly across a resolved target set.
// Targets are processed sequentially and the first failure stops the batch;
// prior successes are not rolled back.
type Runner struct {
	client *gitlab.Client
	log    *zap.SugaredLogger
}

func NewRunner(client *gitlab.Client, log *zap.SugaredLogger) *Runner {
	return &Runner{
		client: client,
		log:    log,
	}
}
