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
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/NVIDIA/cluster-assessment/pkg/command"
	"github.com/NVIDIA/cluster-assessment/pkg/probe"
)

// writeFlatFile persists one probe result as a plain-text artifact: a
// metadata header block followed by the raw captured output. The layout is
// part of the corpus format consumed by downstream training tooling.
func writeFlatFile(dir, clusterID string, scenario probe.Scenario, probeName string, res command.Result) error {
	filename := fmt.Sprintf("%s-%s-kubectl_%s.txt", clusterID, scenario, probeName)
	path := filepath.Join(dir, filename)

	var b strings.Builder
	fmt.Fprintf(&b, "# Command: %s\n", res.Command)
	fmt.Fprintf(&b, "# Timestamp: %s\n", res.Timestamp)
	fmt.Fprintf(&b, "# Return code: %d\n", res.ReturnCode)
	fmt.Fprintf(&b, "# Cluster ID: %s\n", clusterID)
	fmt.Fprintf(&b, "# Scenario: %s\n", scenario)
	b.WriteString("\n--- STDOUT ---\n")
	b.WriteString(res.Stdout)
	if res.Stderr != "" {
		b.WriteString("\n--- STDERR ---\n")
		b.WriteString(res.Stderr)
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write flat file: %w", err)
	}

	slog.Debug("saved flat file", "path", path)
	return nil
}
