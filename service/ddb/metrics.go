//
// Copyright (C) 2025 keyrec authors
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/keyrec/keyrec
//

package ddb

import "github.com/VictoriaMetrics/metrics"

// request counters per operation, exposed by the host application
// through metrics.WritePrometheus
var (
	metricGet          = metrics.GetOrCreateCounter(`keyrec_requests_total{op="get"}`)
	metricGetFailed    = metrics.GetOrCreateCounter(`keyrec_errors_total{op="get"}`)
	metricCreate       = metrics.GetOrCreateCounter(`keyrec_requests_total{op="create"}`)
	metricCreateFailed = metrics.GetOrCreateCounter(`keyrec_errors_total{op="create"}`)
)
