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

package assessment

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/cluster-assessment/pkg/command"
)

func newTestCollector(t *testing.T, runner command.Runner) *Collector {
	t.Helper()
	c := NewCollector("c1", filepath.Join(t.TempDir(), "out"), runner)
	c.Manager.ReadyInterval = time.Millisecond
	c.Manager.ReadyTimeout = 50 * time.Millisecond
	c.Manager.Sleep = func(time.Duration) {}
	return c
}

func TestCollectorRunsBothScenarios(t *testing.T) {
	runner := &stubRunner{}
	c := newTestCollector(t, runner)

	require.NoError(t, c.Run(context.Background()))

	assert.FileExists(t, filepath.Join(c.OutputDir, "c1-sick-comprehensive.json"))
	assert.FileExists(t, filepath.Join(c.OutputDir, "c1-healthy-comprehensive.json"))

	// Cleanup runs after each scenario.
	var cleanups int
	for _, call := range runner.calls {
		if call == "kubectl delete all --all" {
			cleanups++
		}
	}
	assert.Equal(t, 2, cleanups)
}

func TestCollectorSkipsScenarios(t *testing.T) {
	runner := &stubRunner{}
	c := newTestCollector(t, runner)
	c.SkipHealthy = true

	require.NoError(t, c.Run(context.Background()))

	assert.FileExists(t, filepath.Join(c.OutputDir, "c1-sick-comprehensive.json"))
	assert.NoFileExists(t, filepath.Join(c.OutputDir, "c1-healthy-comprehensive.json"))

	entries, err := os.ReadDir(c.OutputDir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), "healthy")
	}
}

func TestCollectorSetupFailureAbortsRun(t *testing.T) {
	runner := &stubRunner{
		replies: map[string]command.Result{
			"minikube start": {
				ReturnCode: 23,
				Stderr:     "Exiting due to RSRC_INSUFFICIENT_CORES",
			},
		},
	}
	c := newTestCollector(t, runner)

	err := c.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to start minikube")

	// No scenario artifacts: the run never got past cluster setup.
	entries, readErr := os.ReadDir(c.OutputDir)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestCollectorScenarioFailureAbortsRemaining(t *testing.T) {
	runner := &stubRunner{}
	c := newTestCollector(t, runner)
	// Point the assessor at a directory that was never created so the sick
	// scenario fails at persistence time.
	c.Assessor.OutputDir = filepath.Join(c.OutputDir, "missing")

	err := c.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sick scenario failed")

	// Only the sick scenario deployed; the healthy one never started.
	var rollouts int
	for _, call := range runner.calls {
		if strings.Contains(call, "rollout status") {
			rollouts++
		}
	}
	assert.Equal(t, 1, rollouts)
}
