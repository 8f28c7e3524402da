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
	"fmt"
	"log/slog"
	"os"

	"github.com/NVIDIA/cluster-assessment/pkg/cluster"
	"github.com/NVIDIA/cluster-assessment/pkg/command"
	"github.com/NVIDIA/cluster-assessment/pkg/errors"
	"github.com/NVIDIA/cluster-assessment/pkg/probe"
)

// Manifests holds the workload manifest paths for one scenario.
type Manifests struct {
	Deployment string
	Service    string
}

// Collector orchestrates a full data-collection run: cluster setup, then
// for each enabled scenario in fixed order (sick, healthy) a deploy,
// assess, cleanup cycle.
type Collector struct {
	ClusterID string
	OutputDir string

	Manager  *cluster.Manager
	Assessor *Assessor

	Sick    Manifests
	Healthy Manifests

	SkipSick    bool
	SkipHealthy bool
}

// NewCollector wires a Collector with its Manager and Assessor sharing one
// command Runner.
func NewCollector(clusterID, outputDir string, runner command.Runner) *Collector {
	return &Collector{
		ClusterID: clusterID,
		OutputDir: outputDir,
		Manager:   cluster.NewManager(runner),
		Assessor:  NewAssessor(clusterID, outputDir, runner),
	}
}

// Run executes the whole collection workflow. Cluster setup failure is
// fatal, and any error inside a scenario aborts the remaining scenarios
// as well.
func (c *Collector) Run(ctx context.Context) error {
	if err := os.MkdirAll(c.OutputDir, 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, "failed to create output directory", err)
	}

	if err := c.Manager.Setup(ctx); err != nil {
		return err
	}

	scenarios := []struct {
		scenario  probe.Scenario
		manifests Manifests
		skip      bool
	}{
		{probe.ScenarioSick, c.Sick, c.SkipSick},
		{probe.ScenarioHealthy, c.Healthy, c.SkipHealthy},
	}

	for _, s := range scenarios {
		if s.skip {
			slog.Info("scenario skipped", "scenario", s.scenario)
			continue
		}
		slog.Info("collecting scenario data", "scenario", s.scenario)
		if err := c.collectScenario(ctx, s.scenario, s.manifests); err != nil {
			return fmt.Errorf("%s scenario failed: %w", s.scenario, err)
		}
		slog.Info("scenario data collection complete", "scenario", s.scenario)
	}

	slog.Info("all data collection complete", "output", c.OutputDir)
	return nil
}

func (c *Collector) collectScenario(ctx context.Context, scenario probe.Scenario, m Manifests) error {
	c.Manager.Deploy(ctx, m.Deployment, m.Service)

	if _, err := c.Assessor.Run(ctx, scenario); err != nil {
		return err
	}

	c.Manager.Cleanup(ctx)
	return nil
}
