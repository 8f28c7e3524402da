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
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/cluster-assessment/pkg/defaults"
)

// Deploy applies the workload deployment and service manifests for a
// scenario, waits a fixed settle delay, then runs a best-effort rollout
// status check. Every step is non-fatal: a missing manifest is skipped with
// a log line, and apply or rollout failures are logged and execution
// continues. Probe results, not deployment success, are the product.
func (m *Manager) Deploy(ctx context.Context, deploymentPath, servicePath string) {
	slog.Info("deploying manifests", "deployment", deploymentPath, "service", servicePath)

	m.apply(ctx, "deployment", deploymentPath)
	m.apply(ctx, "service", servicePath)

	slog.Info("waiting for deployments to settle", "delay", defaults.DeploySettleDelay)
	m.sleep(defaults.DeploySettleDelay)

	res := m.run(ctx, defaults.RolloutStatusTimeout,
		"kubectl", "rollout", "status", "deployment", "--all-namespaces", "--timeout=60s")
	if res.ReturnCode != 0 {
		slog.Warn("rollout status check failed", "stderr", strings.TrimSpace(res.Stderr))
	}
}

// apply submits one manifest to the cluster. Paths that do not exist are
// skipped. A manifest that is not well-formed YAML is flagged before apply,
// but kubectl remains the authority on whether it is accepted.
func (m *Manager) apply(ctx context.Context, kind, path string) {
	if path == "" {
		slog.Warn("no manifest provided, skipping", "kind", kind)
		return
	}
	if _, err := os.Stat(path); err != nil {
		slog.Warn("manifest not found, skipping", "kind", kind, "path", path)
		return
	}
	if err := checkManifest(path); err != nil {
		slog.Warn("manifest is not well-formed YAML", "kind", kind, "path", path, "error", err)
	}

	res := m.run(ctx, 0, "kubectl", "apply", "-f", path)
	if res.ReturnCode != 0 {
		slog.Error("failed to apply manifest", "kind", kind, "path", path,
			"stderr", strings.TrimSpace(res.Stderr))
	}
}

// checkManifest decodes every document in a multi-document YAML file.
func checkManifest(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	for {
		var doc any
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}
