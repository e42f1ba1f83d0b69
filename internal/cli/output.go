package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/pierrotdelalune/actions-upload-release-asset/pkg/errors"
)

// githubOutputEnv points at the step-output file when running inside a
// GitHub Actions job.
const githubOutputEnv = "GITHUB_OUTPUT"

// writeActionOutput appends a step output in the GitHub Actions heredoc
// format. Outside of a job (no GITHUB_OUTPUT) it is a no-op.
func writeActionOutput(name, value string) error {
	path := os.Getenv(githubOutputEnv)
	if path == "" {
		return nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.Wrap(err, "failed to open step output file")
	}
	defer func() { _ = f.Close() }()

	// Multi-line safe delimiter, as the runner's core library does it.
	delimiter := fmt.Sprintf("ghadelimiter_%d", time.Now().UnixNano())
	if _, err := fmt.Fprintf(f, "%s<<%s\n%s\n%s\n", name, delimiter, value, delimiter); err != nil {
		return errors.Wrap(err, "failed to write step output")
	}
	return nil
}
