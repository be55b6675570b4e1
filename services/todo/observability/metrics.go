// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package observability provides Prometheus metrics for the todo service.
//
// # Description
//
// Metrics cover the HTTP surface (request counts and latency per route)
// and the collection itself (create/delete counts, current size).
//
// # Integration
//
// Metrics are exposed via the /metrics endpoint. Use with Prometheus +
// Grafana for dashboards and alerting.
//
// # Thread Safety
//
// All metric operations are thread-safe via Prometheus's internal locking.
package observability

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace for all metrics
const metricsNamespace = "aleutian"

// Subsystem for todo service metrics
const todoSubsystem = "todo"

// TodoMetrics holds all Prometheus metrics for the todo service.
//
// Initialize once at startup via InitMetrics and inject into the
// middleware and handlers that record values.
type TodoMetrics struct {
	// RequestsTotal counts HTTP requests by route template and status code.
	// Labels: endpoint (e.g. /api/todos), status (e.g. 200)
	RequestsTotal *prometheus.CounterVec

	// RequestDurationSeconds measures request latency by route template.
	// Labels: endpoint
	RequestDurationSeconds *prometheus.HistogramVec

	// TodosCreatedTotal counts successful creates.
	TodosCreatedTotal prometheus.Counter

	// TodosDeletedTotal counts successful deletes.
	TodosDeletedTotal prometheus.Counter

	// CollectionSize tracks the current number of stored todos.
	CollectionSize prometheus.Gauge
}

// DefaultMetrics is the singleton instance of TodoMetrics.
// Initialized by InitMetrics().
var DefaultMetrics *TodoMetrics

// InitMetrics creates and registers all metrics with the default registry.
//
// Call once at application startup. Panics if called twice (duplicate
// registration).
func InitMetrics() *TodoMetrics {
	DefaultMetrics = NewMetrics(prometheus.DefaultRegisterer)
	return DefaultMetrics
}

// NewMetrics builds a TodoMetrics registered against reg.
//
// Tests pass an isolated prometheus.NewRegistry() to avoid duplicate
// registration against the global one.
func NewMetrics(reg prometheus.Registerer) *TodoMetrics {
	factory := promauto.With(reg)

	return &TodoMetrics{
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: todoSubsystem,
				Name:      "requests_total",
				Help:      "Total HTTP requests by endpoint and status code",
			},
			[]string{"endpoint", "status"},
		),

		RequestDurationSeconds: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: todoSubsystem,
				Name:      "request_duration_seconds",
				Help:      "HTTP request latency in seconds by endpoint",
				Buckets:   []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
			},
			[]string{"endpoint"},
		),

		TodosCreatedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: todoSubsystem,
				Name:      "created_total",
				Help:      "Total todos created since process start",
			},
		),

		TodosDeletedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: todoSubsystem,
				Name:      "deleted_total",
				Help:      "Total todos deleted since process start",
			},
		),

		CollectionSize: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Subsystem: todoSubsystem,
				Name:      "collection_size",
				Help:      "Current number of stored todos",
			},
		),
	}
}

// RecordRequest records a completed HTTP request.
func (m *TodoMetrics) RecordRequest(endpoint string, status int) {
	m.RequestsTotal.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
}

// RecordDuration records request latency for an endpoint.
func (m *TodoMetrics) RecordDuration(endpoint string, seconds float64) {
	m.RequestDurationSeconds.WithLabelValues(endpoint).Observe(seconds)
}

// TodoCreated records a successful create and the resulting collection size.
func (m *TodoMetrics) TodoCreated(collectionSize int) {
	m.TodosCreatedTotal.Inc()
	m.CollectionSize.Set(float64(collectionSize))
}

// TodoDeleted records a successful delete and the resulting collection size.
func (m *TodoMetrics) TodoDeleted(collectionSize int) {
	m.TodosDeletedTotal.Inc()
	m.CollectionSize.Set(float64(collectionSize))
}
