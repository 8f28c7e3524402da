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

// Package assessment runs the diagnostic probe battery against labeled
// cluster scenarios and persists the collected artifacts.
//
// The Assessor produces, per scenario, one flat text file per probe plus a
// comprehensive JSON report aggregating all results. The Collector wraps the
// cluster lifecycle around it: setup once, then deploy/assess/cleanup per
// scenario in fixed order. Execution is fully sequential; the cluster is the
// only shared resource and a single control thread owns it.
package assessment
