/*
 * MIT License
 *
 * Copyright (c) 2026 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

// Package metrics wires the server's operational counters and gauges
// into a private prometheus.Registry. There is deliberately no HTTP
// exposition endpoint here: the server has exactly one listener and it
// serves static files, not metrics (spec Non-goals). Snapshot reads the
// registry's current values for the supervisor's shutdown log line
// instead. Each worker process builds its own Registry; its connection
// and request counters stay inside that worker and never reach the
// supervisor's Registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Registry groups the counters and gauges a supervisor and its workers
// update across the process lifetime.
type Registry struct {
	reg *prometheus.Registry

	WorkersLive         prometheus.Gauge
	WorkerRespawns      prometheus.Counter
	ConnectionsAccepted *prometheus.CounterVec
	Requests            *prometheus.CounterVec
}

// New builds a Registry with every metric registered and zeroed.
func New() *Registry {
	r := &Registry{reg: prometheus.NewRegistry()}

	r.WorkersLive = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "httpd_workers_live",
		Help: "Number of worker processes currently running.",
	})

	r.WorkerRespawns = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "httpd_worker_respawns_total",
		Help: "Number of times the supervisor has respawned a crashed worker.",
	})

	r.ConnectionsAccepted = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "httpd_connections_accepted_total",
		Help: "Number of client connections accepted, labeled by worker slot.",
	}, []string{"worker"})

	r.Requests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "httpd_requests_total",
		Help: "Number of requests served, labeled by response status class.",
	}, []string{"class"})

	r.reg.MustRegister(r.WorkersLive, r.WorkerRespawns, r.ConnectionsAccepted, r.Requests)

	return r
}

// StatusClass buckets an HTTP status code into the label Requests uses,
// e.g. 404 -> "4xx".
func StatusClass(code int) string {
	switch {
	case code >= 200 && code < 300:
		return "2xx"
	case code >= 300 && code < 400:
		return "3xx"
	case code >= 400 && code < 500:
		return "4xx"
	case code >= 500:
		return "5xx"
	default:
		return "unknown"
	}
}

// Snapshot reads back the current gauge/counter values for a log line,
// without exposing them over HTTP.
type Snapshot struct {
	WorkersLive    float64
	WorkerRespawns float64
}

func (r *Registry) Snapshot() Snapshot {
	var (
		g dto.Metric
		c dto.Metric
	)

	_ = r.WorkersLive.Write(&g)
	_ = r.WorkerRespawns.Write(&c)

	return Snapshot{
		WorkersLive:    g.GetGauge().GetValue(),
		WorkerRespawns: c.GetCounter().GetValue(),
	}
}
