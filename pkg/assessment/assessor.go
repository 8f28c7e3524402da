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
	"path/filepath"
	"time"

	"github.com/NVIDIA/cluster-assessment/pkg/command"
	"github.com/NVIDIA/cluster-assessment/pkg/defaults"
	"github.com/NVIDIA/cluster-assessment/pkg/probe"
	"github.com/NVIDIA/cluster-assessment/pkg/serializer"
)

// Assessor executes the fixed probe battery against the cluster and
// persists every result: one flat file per probe written immediately, plus
// the aggregated comprehensive JSON report at the end of the run.
type Assessor struct {
	// ClusterID labels all artifacts produced by this assessor.
	ClusterID string

	// OutputDir is the destination directory for artifacts.
	OutputDir string

	// Runner executes the probes. Defaults to command.ExecRunner.
	Runner command.Runner

	// ProbeTimeout bounds each individual probe. Zero selects the default.
	ProbeTimeout time.Duration
}

// NewAssessor creates an Assessor with the default probe timeout.
func NewAssessor(clusterID, outputDir string, runner command.Runner) *Assessor {
	return &Assessor{
		ClusterID:    clusterID,
		OutputDir:    outputDir,
		Runner:       runner,
		ProbeTimeout: defaults.ProbeTimeout,
	}
}

// Run executes every probe in declaration order and returns the aggregated
// report. Probe failures are data, not aborts: every probe runs regardless
// of earlier outcomes. The only errors are artifact persistence failures
// and context cancellation, both of which abort the scenario.
func (a *Assessor) Run(ctx context.Context, scenario probe.Scenario) (*probe.Report, error) {
	slog.Info("running assessments", "scenario", scenario, "cluster", a.ClusterID)
	start := time.Now()

	report := probe.NewReport(a.ClusterID, scenario)

	for _, spec := range probe.Battery() {
		if err := ctx.Err(); err != nil {
			scenarioTotal.WithLabelValues(statusError).Inc()
			return nil, err
		}

		slog.Info("running assessment", "probe", spec.Name)
		probeStart := time.Now()
		res := a.run(ctx, spec.Args)
		probeDuration.WithLabelValues(spec.Name).Observe(time.Since(probeStart).Seconds())

		report.Assessments[spec.Name] = probe.Assessment{
			Description: spec.Description,
			Result:      res,
		}

		if err := writeFlatFile(a.OutputDir, a.ClusterID, scenario, spec.Name, res); err != nil {
			scenarioTotal.WithLabelValues(statusError).Inc()
			return nil, fmt.Errorf("failed to save output of probe %s: %w", spec.Name, err)
		}
	}

	if err := a.writeReport(ctx, report, scenario); err != nil {
		scenarioTotal.WithLabelValues(statusError).Inc()
		return nil, err
	}

	scenarioTotal.WithLabelValues(statusSuccess).Inc()
	scenarioDuration.Observe(time.Since(start).Seconds())
	reportAssessments.Set(float64(len(report.Assessments)))

	return report, nil
}

// writeReport serializes the comprehensive report. The filename and JSON
// format are fixed: downstream training tooling globs for them.
func (a *Assessor) writeReport(ctx context.Context, report *probe.Report, scenario probe.Scenario) error {
	path := filepath.Join(a.OutputDir, fmt.Sprintf("%s-%s-comprehensive.json", a.ClusterID, scenario))

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	w := serializer.NewWriter(serializer.FormatJSON, file)
	if err := w.Serialize(ctx, report); err != nil {
		return fmt.Errorf("failed to serialize report: %w", err)
	}

	slog.Info("assessment results saved", "path", path, "assessments", len(report.Assessments))
	return nil
}

func (a *Assessor) run(ctx context.Context, argv []string) command.Result {
	runner := a.Runner
	if runner == nil {
		runner = command.ExecRunner{}
	}
	return runner.Run(ctx, a.ProbeTimeout, argv...)
}
