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

package defaults

import "time"

// Probe timeouts for diagnostic command execution.
const (
	// ProbeTimeout is the default timeout for a single diagnostic probe.
	ProbeTimeout = 60 * time.Second

	// RolloutStatusTimeout is the timeout for the best-effort rollout
	// status check after manifests are applied. Failure is non-fatal.
	RolloutStatusTimeout = 60 * time.Second
)

// Cluster lifecycle timeouts and delays.
const (
	// ClusterStartTimeout is the timeout for the cluster start command.
	// Minikube pulls images and boots a VM on first start, so this is
	// much longer than the probe default.
	ClusterStartTimeout = 300 * time.Second

	// ClusterReadyInterval is the interval between readiness probes
	// while waiting for the cluster to report its nodes after start.
	ClusterReadyInterval = 5 * time.Second

	// ClusterReadyTimeout bounds the post-start readiness poll. The
	// window also covers metrics-server addon settling.
	ClusterReadyTimeout = 120 * time.Second
)

// Settle delays between orchestration phases. Workload and namespace state
// propagate asynchronously with no synchronous completion signal from the
// cluster CLIs, so these are fixed waits.
const (
	// DeploySettleDelay is the wait after applying workload manifests
	// before probes run.
	DeploySettleDelay = 45 * time.Second

	// CleanupSettleDelay is the wait after deleting workload resources
	// before the next scenario begins, so listings from one scenario do
	// not leak into the next.
	CleanupSettleDelay = 10 * time.Second
)
