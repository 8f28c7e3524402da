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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBattery_SizeAndOrder(t *testing.T) {
	specs := Battery()
	assert.Len(t, specs, 10)

	// Declaration order is execution order and part of the corpus contract.
	wantOrder := []string{
		"cluster-info",
		"get_nodes_-o_wide",
		"get_pods_--all-namespaces_--field-selector=status.phase!=Running",
		"top_nodes",
		"top_pods_--all-namespaces",
		"get_componentstatuses",
		"get_events_--all-namespaces_--sort-by='.lastTimestamp'",
		"get_pods_--all-namespaces",
		"get_services_--all-namespaces",
		"get_deployments_--all-namespaces",
	}
	for i, spec := range specs {
		assert.Equal(t, wantOrder[i], spec.Name)
	}
}

func TestBattery_SpecsAreComplete(t *testing.T) {
	for _, spec := range Battery() {
		assert.NotEmpty(t, spec.Name)
		assert.NotEmpty(t, spec.Description)
		assert.NotEmpty(t, spec.Args)
		assert.Equal(t, "kubectl", spec.Args[0], "probes are read-only kubectl invocations")
	}
}

func TestBattery_ReturnsCopy(t *testing.T) {
	first := Battery()
	first[0].Name = "mutated"

	assert.Equal(t, "cluster-info", Battery()[0].Name)
}

func TestScenario_IsValid(t *testing.T) {
	assert.True(t, ScenarioSick.IsValid())
	assert.True(t, ScenarioHealthy.IsValid())
	assert.False(t, Scenario("degraded").IsValid())
	assert.False(t, Scenario("").IsValid())
}

func TestNewReport(t *testing.T) {
	r := NewReport("test1", ScenarioSick)

	assert.Equal(t, "test1", r.ClusterID)
	assert.Equal(t, ScenarioSick, r.ScenarioType)
	assert.NotEmpty(t, r.RunID)
	assert.NotEmpty(t, r.Timestamp)
	assert.NotNil(t, r.Assessments)
	assert.Empty(t, r.Assessments)

	// Run identifiers must be unique per report.
	assert.NotEqual(t, r.RunID, NewReport("test1", ScenarioSick).RunID)
}
