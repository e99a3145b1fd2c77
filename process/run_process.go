package process

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
)

const (
	workingDirPattern = "radialbuild-working-dir-"
	resultsDirName    = "results"
	workingDirPerm    = os.FileMode(0700)
)

// workingDir holds engine input files, the engine runs inside its results dir
// so every file it produces can be gathered afterwards.
type workingDir struct {
	path    string
	results string
}

func newWorkingDir(inputFiles map[string]string) (*workingDir, error) {
	path, err := os.MkdirTemp("", workingDirPattern)
	if err != nil {
		return nil, errors.Wrap(err, "create working dir")
	}
	dir := &workingDir{path: path, results: filepath.Join(path, resultsDirName)}

	for name, content := range inputFiles {
		if filepath.Base(name) != name {
			dir.remove()
			return nil, errors.Errorf("input file name %q must not contain a directory", name)
		}
		if err := os.WriteFile(filepath.Join(path, name), []byte(content), workingDirPerm); err != nil {
			dir.remove()
			return nil, errors.Wrapf(err, "write input file %s", name)
		}
	}
	if err := os.Mkdir(dir.results, workingDirPerm); err != nil {
		dir.remove()
		return nil, errors.Wrap(err, "create results dir")
	}
	log.Debugf("created working dir %s", path)
	return dir, nil
}

// gather reads every regular file the engine left in the results dir.
func (d *workingDir) gather() (map[string]string, error) {
	entries, err := os.ReadDir(d.results)
	if err != nil {
		return nil, errors.Wrap(err, "list results")
	}
	files := map[string]string{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		content, err := os.ReadFile(filepath.Join(d.results, entry.Name()))
		if err != nil {
			return nil, errors.Wrapf(err, "read result %s", entry.Name())
		}
		files[entry.Name()] = string(content)
	}
	return files, nil
}

func (d *workingDir) remove() {
	if err := os.RemoveAll(d.path); err != nil {
		log.Warnf("remove working dir %s: %s", d.path, err)
		return
	}
	log.Debugf("removed working dir %s", d.path)
}

func runProcess(
	ctx context.Context, createCMD CreateCMD, inputFiles map[string]string, maxJobDuration time.Duration,
) Result {
	result := Result{Errors: []string{}}
	fail := func(err error) Result {
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	dir, err := newWorkingDir(inputFiles)
	if err != nil {
		return fail(err)
	}
	defer dir.remove()

	ctx, cancel := context.WithTimeout(ctx, maxJobDuration)
	defer cancel()

	cmd := createCMD.CreateCMD(ctx, dir.path)
	cmd.Dir = dir.results
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	cmd.Stdout, cmd.Stderr = stdout, stderr
	log.Debugf("running %s", cmd.String())

	runErr := cmd.Run()
	result.StdOut, result.StdErr = stdout.String(), stderr.String()
	switch ctxErr := ctx.Err(); {
	case ctxErr == context.DeadlineExceeded:
		runErr = errors.Errorf("timeout expired after %s", maxJobDuration)
	case ctxErr != nil:
		runErr = errors.New("cancelled")
	}
	if runErr != nil {
		err := errors.Wrapf(runErr, "run %s", cmd.Path)
		log.Error(err.Error())
		return fail(err)
	}

	files, err := dir.gather()
	if err != nil {
		return fail(err)
	}
	result.Files = files
	return result
}
