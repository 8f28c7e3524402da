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

package probe

import (
	"time"

	"github.com/google/uuid"

	"github.com/NVIDIA/cluster-assessment/pkg/command"
)

// Scenario labels one cluster configuration under assessment.
type Scenario string

const (
	// ScenarioSick is the deliberately misconfigured workload scenario.
	ScenarioSick Scenario = "sick"
	// ScenarioHealthy is the correctly configured workload scenario.
	ScenarioHealthy Scenario = "healthy"
)

// String returns the scenario label.
func (s Scenario) String() string {
	return string(s)
}

// IsValid checks whether the scenario is one of the recognized labels.
func (s Scenario) IsValid() bool {
	switch s {
	case ScenarioSick, ScenarioHealthy:
		return true
	default:
		return false
	}
}

// Assessment pairs a probe's human description with its execution result.
type Assessment struct {
	Description string         `json:"description" yaml:"description"`
	Result      command.Result `json:"result" yaml:"result"`
}

// Report is the comprehensive per-scenario document aggregating every probe
// result. It is built incrementally during a scenario run, serialized once,
// and never mutated afterwards.
type Report struct {
	ClusterID    string                `json:"cluster_id" yaml:"cluster_id"`
	ScenarioType Scenario              `json:"scenario_type" yaml:"scenario_type"`
	RunID        string                `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	Timestamp    string                `json:"timestamp" yaml:"timestamp"`
	Assessments  map[string]Assessment `json:"assessments" yaml:"assessments"`
}

// NewReport creates an empty Report for the given cluster and scenario with
// a fresh run identifier and the current UTC timestamp.
func NewReport(clusterID string, scenario Scenario) *Report {
	return &Report{
		ClusterID:    clusterID,
		ScenarioType: scenario,
		RunID:        uuid.NewString(),
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
		Assessments:  make(map[string]Assessment, len(battery)),
	}
}
