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

// Package cluster manages the local minikube cluster lifecycle for
// assessment runs: reset and start the cluster, apply scenario workload
// manifests, and delete workload resources between scenarios.
//
// The cluster CLIs (minikube, kubectl) are opaque external collaborators
// invoked through pkg/command; this package never talks to the Kubernetes
// API directly. Only two conditions are fatal: the cluster failing to start
// and the post-start readiness poll never seeing a node listing succeed.
// Everything else is best-effort: a degraded cluster is the thing being
// measured.
package cluster
