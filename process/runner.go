// Package process implements mechanism of starting and supervising transport engine processes.
package process

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/svalinn/radialbuild/config"
)

var log = config.NamedLogger("process")

const (
	defaultMaxJobs        = 4
	defaultMaxJobDuration = 1000 * time.Second
)

// CreateCMD create command which runs engine on input files in workingDirPath.
type CreateCMD interface {
	CreateCMD(ctx context.Context, workingDirPath string) *exec.Cmd
}

// OpenMC runs the openmc executable on the input directory.
type OpenMC struct {
	Path    string
	Threads int
}

// CreateCMD ...
func (o OpenMC) CreateCMD(ctx context.Context, workingDirPath string) *exec.Cmd {
	args := []string{}
	if o.Threads > 0 {
		args = append(args, "--threads", strconv.Itoa(o.Threads))
	}
	args = append(args, workingDirPath)
	return exec.CommandContext(ctx, o.Path, args...)
}

// Runner starts and supervises running of engine processes.
type Runner struct {
	workerTokens   chan bool
	maxJobDuration time.Duration
}

// Result of engine run.
type Result struct {
	Files  map[string]string
	StdOut string
	StdErr string
	Errors []string
}

// Err joins result errors, nil when run succeeded.
func (r Result) Err() error {
	var result *multierror.Error
	for _, e := range r.Errors {
		result = multierror.Append(result, fmt.Errorf("%s", e))
	}
	return result.ErrorOrNil()
}

// NewRunner create Runner which is ready to run maxJobs jobs at once, each
// killed after maxJobDuration. Zero values select defaults.
func NewRunner(maxJobs int, maxJobDuration time.Duration) *Runner {
	if maxJobs <= 0 {
		maxJobs = defaultMaxJobs
	}
	if maxJobDuration <= 0 {
		maxJobDuration = defaultMaxJobDuration
	}
	runner := &Runner{
		workerTokens:   make(chan bool, maxJobs),
		maxJobDuration: maxJobDuration,
	}

	for i := 0; i < maxJobs; i++ {
		runner.workerTokens <- true
	}

	return runner
}

// Run new job. Job is rejected when all workers are busy.
func (r *Runner) Run(ctx context.Context, createCMD CreateCMD, inputFiles map[string]string) Result {
	select {
	case <-r.workerTokens:
		defer func() { r.workerTokens <- true }()
		return runProcess(ctx, createCMD, inputFiles, r.maxJobDuration)

	default:
		return Result{
			Errors: []string{
				"too many jobs pending",
			},
		}
	}
}
