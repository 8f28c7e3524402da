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
	stderrors "errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"k8s.io/apimachinery/pkg/util/wait"

	"github.com/NVIDIA/cluster-assessment/pkg/command"
	"github.com/NVIDIA/cluster-assessment/pkg/defaults"
	"github.com/NVIDIA/cluster-assessment/pkg/errors"
)

// Manager drives the local minikube cluster through its lifecycle: reset to
// a known-clean state, deploy workload manifests, and clean up between
// scenarios. All cluster access goes through the injected command Runner.
type Manager struct {
	// Runner executes the cluster CLIs. Defaults to command.ExecRunner.
	Runner command.Runner

	// Cluster start resource parameters.
	CPUs     int
	MemoryMB int
	DiskSize string

	// StartTimeout bounds the cluster start command.
	StartTimeout time.Duration

	// ReadyInterval and ReadyTimeout control the post-start readiness poll.
	ReadyInterval time.Duration
	ReadyTimeout  time.Duration

	// Sleep is the settle-delay primitive, injectable for tests.
	// Defaults to time.Sleep.
	Sleep func(time.Duration)
}

// NewManager creates a Manager with the default runner, resource
// parameters, and timeouts.
func NewManager(runner command.Runner) *Manager {
	return &Manager{
		Runner:        runner,
		CPUs:          4,
		MemoryMB:      4096,
		DiskSize:      "20g",
		StartTimeout:  defaults.ClusterStartTimeout,
		ReadyInterval: defaults.ClusterReadyInterval,
		ReadyTimeout:  defaults.ClusterReadyTimeout,
		Sleep:         time.Sleep,
	}
}

// Setup brings the cluster to a known-clean, ready state. Stop and delete of
// any existing instance are best-effort; a failed start or a cluster that
// never reports ready nodes aborts the whole run with a structured error.
func (m *Manager) Setup(ctx context.Context) error {
	slog.Info("setting up minikube")

	// Best-effort reset. There may be no instance to stop or delete.
	m.run(ctx, 0, "minikube", "stop")
	m.run(ctx, 0, "minikube", "delete")

	start := m.run(ctx, m.StartTimeout, "minikube", "start",
		fmt.Sprintf("--cpus=%d", m.CPUs),
		fmt.Sprintf("--memory=%d", m.MemoryMB),
		fmt.Sprintf("--disk-size=%s", m.DiskSize))
	if start.ReturnCode != 0 {
		return errors.Wrap(errors.ErrCodeUnavailable, "failed to start minikube",
			stderrors.New(strings.TrimSpace(start.Stderr)))
	}

	// Needed for the kubectl top probes. The probes report the failure
	// themselves if the addon never becomes usable.
	m.run(ctx, 0, "minikube", "addons", "enable", "metrics-server")

	if err := m.waitReady(ctx); err != nil {
		return errors.Wrap(errors.ErrCodeUnavailable, "cluster not ready after setup", err)
	}

	slog.Info("minikube setup complete")
	return nil
}

// waitReady polls the node listing until the cluster answers, bounding the
// wait instead of sleeping a fixed interval and hoping.
func (m *Manager) waitReady(ctx context.Context) error {
	slog.Info("waiting for cluster to report ready nodes",
		"interval", m.ReadyInterval, "timeout", m.ReadyTimeout)

	return wait.PollUntilContextTimeout(ctx, m.ReadyInterval, m.ReadyTimeout, true,
		func(ctx context.Context) (bool, error) {
			res := m.run(ctx, 0, "kubectl", "get", "nodes")
			if res.ReturnCode != 0 {
				slog.Debug("cluster not ready yet", "stderr", strings.TrimSpace(res.Stderr))
				return false, nil
			}
			return true, nil
		})
}

// Cleanup deletes all default-namespace workload resources and waits for the
// deletion to settle so listings from one scenario do not leak into the
// next. Failure is ignored.
func (m *Manager) Cleanup(ctx context.Context) {
	slog.Info("cleaning up cluster resources")

	res := m.run(ctx, 0, "kubectl", "delete", "all", "--all")
	if res.ReturnCode != 0 {
		slog.Warn("cleanup failed", "stderr", strings.TrimSpace(res.Stderr))
	}

	m.sleep(defaults.CleanupSettleDelay)
}

func (m *Manager) run(ctx context.Context, timeout time.Duration, argv ...string) command.Result {
	runner := m.Runner
	if runner == nil {
		runner = command.ExecRunner{}
	}
	return runner.Run(ctx, timeout, argv...)
}

func (m *Manager) sleep(d time.Duration) {
	if m.Sleep != nil {
		m.Sleep(d)
		return
	}
	time.Sleep(d)
}
