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

import (
	"testing"
	"time"
)

func TestTimeoutsArePositive(t *testing.T) {
	timeouts := map[string]time.Duration{
		"ProbeTimeout":         ProbeTimeout,
		"RolloutStatusTimeout": RolloutStatusTimeout,
		"ClusterStartTimeout":  ClusterStartTimeout,
		"ClusterReadyInterval": ClusterReadyInterval,
		"ClusterReadyTimeout":  ClusterReadyTimeout,
		"DeploySettleDelay":    DeploySettleDelay,
		"CleanupSettleDelay":   CleanupSettleDelay,
	}

	for name, d := range timeouts {
		if d <= 0 {
			t.Errorf("%s must be positive, got %v", name, d)
		}
	}
}

func TestTimeoutRelationships(t *testing.T) {
	if ClusterStartTimeout <= ProbeTimeout {
		t.Error("cluster start must be allowed more time than a regular probe")
	}
	if ClusterReadyInterval >= ClusterReadyTimeout {
		t.Error("readiness poll interval must be shorter than the poll window")
	}
}
