// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package command

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/NVIDIA/cluster-assessment/pkg/defaults"
)

// timeoutMessage is recorded verbatim in collected artifacts, so it is part
// of the corpus format and must not change.
const timeoutMessage = "Command timed out"

// Result captures the complete outcome of one external command execution.
// ReturnCode is the process exit code, or -1 when the command timed out or
// failed to launch. A Result is never mutated after creation.
type Result struct {
	Command    string `json:"command" yaml:"command"`
	ReturnCode int    `json:"returncode" yaml:"returncode"`
	Stdout     string `json:"stdout" yaml:"stdout"`
	Stderr     string `json:"stderr" yaml:"stderr"`
	Timestamp  string `json:"timestamp" yaml:"timestamp"`
}

// TimedOut reports whether the result represents a command timeout.
func (r Result) TimedOut() bool {
	return r.ReturnCode == -1 && r.Stderr == timeoutMessage
}

// Runner executes an external command synchronously and returns a Result
// that is total over all failure modes. Implementations never return a Go
// error: a non-zero exit, a timeout, and a missing binary are all ordinary
// Results. A timeout of zero or less selects defaults.ProbeTimeout.
type Runner interface {
	Run(ctx context.Context, timeout time.Duration, argv ...string) Result
}

// ExecRunner runs commands via os/exec. The zero value is ready to use.
type ExecRunner struct{}

// Run executes argv synchronously, capturing stdout and stderr.
//
// Outcome mapping:
//   - normal completion (any exit code): actual exit code, captured output
//   - timeout: ReturnCode -1, empty stdout, stderr "Command timed out"
//   - launch failure (binary missing, OS error): ReturnCode -1, empty
//     stdout, stderr holds the stringified error
func (ExecRunner) Run(ctx context.Context, timeout time.Duration, argv ...string) Result {
	res := Result{
		Command:   strings.Join(argv, " "),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	if len(argv) == 0 {
		res.ReturnCode = -1
		res.Stderr = "empty command"
		return res
	}

	if timeout <= 0 {
		timeout = defaults.ProbeTimeout
	}

	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	slog.Info("running command", "command", res.Command)

	cmd := exec.CommandContext(runCtx, argv[0], argv[1:]...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res.Stdout = stdout.String()
	res.Stderr = stderr.String()

	switch {
	case err == nil:
		res.ReturnCode = 0

	case errors.Is(runCtx.Err(), context.DeadlineExceeded):
		slog.Error("command timed out", "command", res.Command, "timeout", timeout)
		res.ReturnCode = -1
		res.Stdout = ""
		res.Stderr = timeoutMessage

	default:
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// The process ran and exited non-zero. The exit code and
			// captured output are the data we came for.
			res.ReturnCode = exitErr.ExitCode()
			return res
		}
		slog.Error("command failed to launch", "command", res.Command, "error", err)
		res.ReturnCode = -1
		res.Stdout = ""
		res.Stderr = err.Error()
	}

	return res
}
