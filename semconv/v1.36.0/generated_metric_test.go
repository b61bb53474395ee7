// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package semconv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/collector/pdata/pmetric"
)

func TestMetricConstants(t *testing.T) {
	tests := []struct {
		name string
		got  string
		unit string
		want string
		desc string
	}{
		{
			name: "http server duration",
			got:  MetricHTTPServerRequestDuration,
			unit: MetricHTTPServerRequestDurationUnit,
			want: "http.server.request.duration",
			desc: MetricHTTPServerRequestDurationDescription,
		},
		{
			name: "db client duration",
			got:  MetricDBClientOperationDuration,
			unit: MetricDBClientOperationDurationUnit,
			want: "db.client.operation.duration",
			desc: MetricDBClientOperationDurationDescription,
		},
		{
			name: "cpython collections",
			got:  MetricCPythonGCCollections,
			unit: MetricCPythonGCCollectionsUnit,
			want: "cpython.gc.collections",
			desc: MetricCPythonGCCollectionsDescription,
		},
		{
			name: "go goroutines",
			got:  MetricGoGoroutineCount,
			unit: MetricGoGoroutineCountUnit,
			want: "go.goroutine.count",
			desc: MetricGoGoroutineCountDescription,
		},
		{
			name: "k8s resource quota",
			got:  MetricK8SResourceQuotaCPURequestHard,
			unit: MetricK8SResourceQuotaCPURequestHardUnit,
			want: "k8s.resourcequota.cpu.request.hard",
			desc: MetricK8SResourceQuotaCPURequestHardDescription,
		},
		{
			name: "linux available memory",
			got:  MetricSystemLinuxMemoryAvailable,
			unit: MetricSystemLinuxMemoryAvailableUnit,
			want: "system.linux.memory.available",
			desc: MetricSystemLinuxMemoryAvailableDescription,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
			assert.NotEmpty(t, tt.unit)
			assert.NotEmpty(t, tt.desc)
		})
	}

	assert.Equal(t, "s", MetricHTTPServerRequestDurationUnit)
	assert.Equal(t, "{goroutine}", MetricGoGoroutineCountUnit)
	assert.Equal(t, "ms", MetricRPCServerDurationUnit)
	assert.Equal(t, "Duration of HTTP server requests.", MetricHTTPServerRequestDurationDescription)
	assert.Equal(t, "Hz", MetricSystemCPUFrequencyUnit)

	// Registered without a brief.
	assert.Equal(t, "system.network.packets", MetricSystemNetworkPackets)
	assert.Empty(t, MetricSystemNetworkPacketsDescription)
}

func TestMetricConstantsDescribePdataMetrics(t *testing.T) {
	md := pmetric.NewMetrics()
	sm := md.ResourceMetrics().AppendEmpty().ScopeMetrics().AppendEmpty()

	m := sm.Metrics().AppendEmpty()
	m.SetName(MetricHTTPServerRequestDuration)
	m.SetUnit(MetricHTTPServerRequestDurationUnit)
	m.SetDescription(MetricHTTPServerRequestDurationDescription)
	dp := m.SetEmptyHistogram().DataPoints().AppendEmpty()
	dp.Attributes().PutStr(AttributeHTTPRequestMethod, AttributeHTTPRequestMethodPost)
	dp.Attributes().PutInt(AttributeHTTPResponseStatusCode, 201)
	dp.Attributes().PutStr(AttributeURLScheme, "https")

	c := sm.Metrics().AppendEmpty()
	c.SetName(MetricCPythonGCCollections)
	c.SetUnit(MetricCPythonGCCollectionsUnit)
	sum := c.SetEmptySum()
	sum.SetIsMonotonic(true)
	cdp := sum.DataPoints().AppendEmpty()
	cdp.SetIntValue(7)
	cdp.Attributes().PutInt(AttributeCPythonGCGeneration, AttributeCPythonGCGenerationGeneration1)

	assert.Equal(t, 2, md.MetricCount())
	got := sm.Metrics().At(0)
	assert.Equal(t, "http.server.request.duration", got.Name())
	assert.Equal(t, pmetric.MetricTypeHistogram, got.Type())
	assert.Equal(t, map[string]any{
		"http.request.method":       "POST",
		"http.response.status_code": int64(201),
		"url.scheme":                "https",
	}, got.Histogram().DataPoints().At(0).Attributes().AsRaw())

	gen, ok := sm.Metrics().At(1).Sum().DataPoints().At(0).Attributes().Get(AttributeCPythonGCGeneration)
	assert.True(t, ok)
	assert.Equal(t, int64(1), gen.Int())
}
