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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

var (
	probeDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "assess_probe_duration_seconds",
			Help:    "Time taken by individual diagnostic probes",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 30, 60},
		},
		[]string{"probe"},
	)

	scenarioDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "assess_scenario_duration_seconds",
			Help:    "Time taken to run a complete scenario assessment",
			Buckets: []float64{10, 30, 60, 120, 300, 600},
		},
	)

	scenarioTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assess_scenario_total",
			Help: "Total number of scenario assessment attempts",
		},
		[]string{"status"}, // success or error
	)

	reportAssessments = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "assess_report_assessments",
			Help: "Number of assessments in the last written report",
		},
	)
)
