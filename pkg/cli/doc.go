// Package cli implements the command-line interface for the assess cluster
// assessment data collector.
//
// # Overview
//
// The assess CLI drives a local minikube cluster through labeled workload
// scenarios and records the output of a fixed battery of diagnostic kubectl
// probes. The collected artifacts form a training corpus for cluster health
// assessment models: each scenario yields one flat text file per probe plus
// a comprehensive JSON report.
//
// # Commands
//
// collect - Run the full collection workflow:
//
//	assess collect CLUSTER_ID \
//	  --sick-deployment FILE --sick-service FILE \
//	  --healthy-deployment FILE --healthy-service FILE \
//	  [--output-dir DIR] [--skip-sick] [--skip-healthy]
//
// Resets the cluster, then for each enabled scenario deploys the workload
// manifests, runs the probe battery, and cleans up. Scenarios run in fixed
// order (sick, then healthy); a failure in one aborts the rest of the run.
//
// probes - List the diagnostic probe battery:
//
//	assess probes [--output FILE] [--format yaml|json|table]
//
// Prints the probes 'collect' runs, in execution order, with their commands
// and descriptions.
//
// # Global Flags
//
//	--log-level    Logging verbosity: debug, info, warn, error (default: info)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Environment Variables
//
//	LOG_LEVEL          Set logging verbosity (debug, info, warn, error)
//	ASSESS_OUTPUT_DIR  Default artifact directory for collect
//	ASSESS_OUTPUT      Default output file for probes
//	ASSESS_FORMAT      Default output format for probes
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, cluster setup or scenario failure)
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized
// packages:
//   - pkg/assessment - Scenario orchestration and probe execution
//   - pkg/cluster - Minikube lifecycle and workload deployment
//   - pkg/command - Subprocess execution with captured results
//   - pkg/serializer - Output formatting
//   - pkg/logging - Structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/cluster-assessment/pkg/cli.version=1.0.0'"
package cli
