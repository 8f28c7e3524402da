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

package cluster

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

func writeManifest(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestManager_DeployAppliesBothManifests(t *testing.T) {
	deployment := writeManifest(t, "deployment.yaml", "kind: Deployment\nmetadata:\n  name: web\n")
	service := writeManifest(t, "service.yaml", "kind: Service\nmetadata:\n  name: web\n")

	runner := &fakeRunner{}
	m := newTestManager(runner)

	m.Deploy(context.Background(), deployment, service)

	want := []string{
		"kubectl apply -f " + deployment,
		"kubectl apply -f " + service,
		"kubectl rollout status deployment --all-namespaces --timeout=60s",
	}
	assert.Equal(t, want, runner.calls)
}

func TestManager_DeploySkipsMissingManifests(t *testing.T) {
	service := writeManifest(t, "service.yaml", "kind: Service\n")

	runner := &fakeRunner{}
	m := newTestManager(runner)

	m.Deploy(context.Background(), "/nonexistent/deployment.yaml", service)

	for _, c := range runner.calls {
		assert.NotContains(t, c, "/nonexistent/deployment.yaml")
	}
	assert.Contains(t, runner.calls, "kubectl apply -f "+service)
}

func TestManager_DeployApplyFailureIsNonFatal(t *testing.T) {
	deployment := writeManifest(t, "deployment.yaml", "kind: Deployment\n")

	runner := &fakeRunner{
		replies: map[string]command.Result{
			"kubectl apply":          {ReturnCode: 1, Stderr: "validation error"},
			"kubectl rollout status": {ReturnCode: 1, Stderr: "timed out"},
		},
	}
	m := newTestManager(runner)

	// Both apply and rollout-status fail; Deploy just logs and returns.
	m.Deploy(context.Background(), deployment, "")
}

func TestManager_DeploySettlesBeforeRolloutCheck(t *testing.T) {
	deployment := writeManifest(t, "deployment.yaml", "kind: Deployment\n")

	runner := &fakeRunner{}
	m := newTestManager(runner)

	var sleptBefore []string
	m.Sleep = func(time.Duration) {
		sleptBefore = append([]string(nil), runner.calls...)
	}

	m.Deploy(context.Background(), deployment, "")

	// The settle delay happens after applies and before the rollout check.
	require.Len(t, sleptBefore, 1)
	assert.True(t, strings.HasPrefix(sleptBefore[0], "kubectl apply"))
	assert.True(t, strings.HasPrefix(runner.calls[len(runner.calls)-1], "kubectl rollout status"))
}

func TestCheckManifest(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{
			name:    "single document",
			content: "kind: Service\nmetadata:\n  name: web\n",
			wantErr: false,
		},
		{
			name:    "multi document",
			content: "kind: Service\n---\nkind: Deployment\n",
			wantErr: false,
		},
		{
			name:    "empty file",
			content: "",
			wantErr: false,
		},
		{
			name:    "malformed",
			content: "kind: [unclosed\n  nope",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeManifest(t, "m.yaml", tt.content)
			err := checkManifest(path)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
