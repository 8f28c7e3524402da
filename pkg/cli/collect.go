/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/cluster-assessment/pkg/assessment"
	"github.com/NVIDIA/cluster-assessment/pkg/command"
)

func collectCmd() *cli.Command {
	return &cli.Command{
		Name:                  "collect",
		EnableShellCompletion: true,
		Usage:                 "Run the full assessment data collection workflow",
		ArgsUsage:             "CLUSTER_ID",
		Description: `Run the complete cluster assessment collection workflow:

  1. Reset the local minikube cluster to a known-clean state
  2. Deploy the sick workload manifests and run the diagnostic probe battery
  3. Clean up, deploy the healthy manifests, and run the battery again

Each scenario produces one flat text file per probe plus a comprehensive
JSON report, all written to the output directory and labeled with the
cluster ID. The probe battery is fixed; use 'assess probes' to inspect it.

# Examples

Collect both scenarios:

  assess collect cluster-01 \
    --sick-deployment manifests/sick-deployment.yaml \
    --sick-service manifests/sick-service.yaml \
    --healthy-deployment manifests/healthy-deployment.yaml \
    --healthy-service manifests/healthy-service.yaml

Collect only the healthy scenario into a custom directory:

  assess collect cluster-01 --skip-sick --output-dir /data/run-42 \
    --sick-deployment manifests/sick-deployment.yaml \
    --sick-service manifests/sick-service.yaml \
    --healthy-deployment manifests/healthy-deployment.yaml \
    --healthy-service manifests/healthy-service.yaml`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "sick-deployment",
				Usage:    "Path to the sick scenario deployment manifest",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "sick-service",
				Usage:    "Path to the sick scenario service manifest",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "healthy-deployment",
				Usage:    "Path to the healthy scenario deployment manifest",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "healthy-service",
				Usage:    "Path to the healthy scenario service manifest",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "output-dir",
				Usage:   "Directory for collected artifacts",
				Sources: cli.EnvVars("ASSESS_OUTPUT_DIR"),
				Value:   "assessment_data",
			},
			&cli.BoolFlag{
				Name:  "skip-sick",
				Usage: "Skip the sick scenario",
			},
			&cli.BoolFlag{
				Name:  "skip-healthy",
				Usage: "Skip the healthy scenario",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			clusterID := cmd.Args().First()
			if clusterID == "" {
				return fmt.Errorf("missing required argument: CLUSTER_ID")
			}

			c := assessment.NewCollector(clusterID, cmd.String("output-dir"), command.ExecRunner{})
			c.Sick = assessment.Manifests{
				Deployment: cmd.String("sick-deployment"),
				Service:    cmd.String("sick-service"),
			}
			c.Healthy = assessment.Manifests{
				Deployment: cmd.String("healthy-deployment"),
				Service:    cmd.String("healthy-service"),
			}
			c.SkipSick = cmd.Bool("skip-sick")
			c.SkipHealthy = cmd.Bool("skip-healthy")

			return c.Run(ctx)
		},
	}
}
