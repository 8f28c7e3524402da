/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/cluster-assessment/pkg/probe"
	"github.com/NVIDIA/cluster-assessment/pkg/serializer"
)

func probesCmd() *cli.Command {
	return &cli.Command{
		Name:                  "probes",
		EnableShellCompletion: true,
		Usage:                 "List the diagnostic probe battery",
		Description: `List the fixed battery of diagnostic probes that 'assess collect' runs
against each scenario, in execution order. Probe names double as artifact
labels in the collected corpus.

The list can be output in JSON, YAML, or table format.`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			f, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			w := serializer.NewFileWriterOrStdout(f, cmd.String("output"))
			defer w.Close()

			return w.Serialize(ctx, probe.Battery())
		},
	}
}
