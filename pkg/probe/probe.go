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

// Spec describes one diagnostic probe: a fixed read-only command run against
// the cluster and recorded verbatim. Probe names double as artifact labels in
// the collected corpus, so they are stable identifiers, not display strings.
type Spec struct {
	// Name identifies the probe in reports and artifact filenames.
	Name string `json:"name" yaml:"name"`

	// Args is the full argument vector of the probe command.
	Args []string `json:"command" yaml:"command"`

	// Description is the human label stored alongside the probe result.
	Description string `json:"description" yaml:"description"`
}

// battery is the fixed, ordered list of diagnostic probes. Declaration order
// is execution order. The names match the labels used by the existing
// training corpus and must not be renamed.
var battery = []Spec{
	{
		Name:        "cluster-info",
		Args:        []string{"kubectl", "cluster-info"},
		Description: "Basic cluster information",
	},
	{
		Name:        "get_nodes_-o_wide",
		Args:        []string{"kubectl", "get", "nodes", "-o", "wide"},
		Description: "Node status and details",
	},
	{
		Name:        "get_pods_--all-namespaces_--field-selector=status.phase!=Running",
		Args:        []string{"kubectl", "get", "pods", "--all-namespaces", "--field-selector=status.phase!=Running"},
		Description: "Non-running pods",
	},
	{
		Name:        "top_nodes",
		Args:        []string{"kubectl", "top", "nodes"},
		Description: "Node resource usage",
	},
	{
		Name:        "top_pods_--all-namespaces",
		Args:        []string{"kubectl", "top", "pods", "--all-namespaces"},
		Description: "Pod resource usage",
	},
	{
		Name:        "get_componentstatuses",
		Args:        []string{"kubectl", "get", "componentstatuses"},
		Description: "Component health status",
	},
	{
		Name:        "get_events_--all-namespaces_--sort-by='.lastTimestamp'",
		Args:        []string{"kubectl", "get", "events", "--all-namespaces", "--sort-by=.lastTimestamp"},
		Description: "Recent cluster events",
	},
	{
		Name:        "get_pods_--all-namespaces",
		Args:        []string{"kubectl", "get", "pods", "--all-namespaces", "-o", "wide"},
		Description: "All pods detailed view",
	},
	{
		Name:        "get_services_--all-namespaces",
		Args:        []string{"kubectl", "get", "services", "--all-namespaces"},
		Description: "All services",
	},
	{
		Name:        "get_deployments_--all-namespaces",
		Args:        []string{"kubectl", "get", "deployments", "--all-namespaces"},
		Description: "All deployments",
	},
}

// Battery returns the fixed probe battery in execution order. The returned
// slice is a copy; callers may not modify the battery.
func Battery() []Spec {
	specs := make([]Spec, len(battery))
	copy(specs, battery)
	return specs
}
