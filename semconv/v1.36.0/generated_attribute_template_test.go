// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package semconv

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/collector/pdata/pcommon"
	"go.opentelemetry.io/otel/attribute"
)

var factories = []struct {
	prefix string
	fn     func(string) string
}{
	{prefix: "container.label", fn: AttributeContainerLabel},
	{prefix: "container.labels", fn: AttributeContainerLabels},
	{prefix: "db.query.parameter", fn: AttributeDBQueryParameter},
	{prefix: "db.elasticsearch.path_parts", fn: AttributeDBElasticsearchPathParts},
	{prefix: "db.operation.parameter", fn: AttributeDBOperationParameter},
	{prefix: "http.request.header", fn: AttributeHTTPRequestHeader},
	{prefix: "http.response.header", fn: AttributeHTTPResponseHeader},
	{prefix: "k8s.cronjob.annotation", fn: AttributeK8SCronJobAnnotation},
	{prefix: "k8s.cronjob.label", fn: AttributeK8SCronJobLabel},
	{prefix: "k8s.daemonset.annotation", fn: AttributeK8SDaemonSetAnnotation},
	{prefix: "k8s.daemonset.label", fn: AttributeK8SDaemonSetLabel},
	{prefix: "k8s.deployment.annotation", fn: AttributeK8SDeploymentAnnotation},
	{prefix: "k8s.deployment.label", fn: AttributeK8SDeploymentLabel},
	{prefix: "k8s.job.annotation", fn: AttributeK8SJobAnnotation},
	{prefix: "k8s.job.label", fn: AttributeK8SJobLabel},
	{prefix: "k8s.namespace.annotation", fn: AttributeK8SNamespaceAnnotation},
	{prefix: "k8s.namespace.label", fn: AttributeK8SNamespaceLabel},
	{prefix: "k8s.node.annotation", fn: AttributeK8SNodeAnnotation},
	{prefix: "k8s.node.label", fn: AttributeK8SNodeLabel},
	{prefix: "k8s.pod.annotation", fn: AttributeK8SPodAnnotation},
	{prefix: "k8s.pod.label", fn: AttributeK8SPodLabel},
	{prefix: "k8s.pod.labels", fn: AttributeK8SPodLabels},
	{prefix: "k8s.replicaset.annotation", fn: AttributeK8SReplicaSetAnnotation},
	{prefix: "k8s.replicaset.label", fn: AttributeK8SReplicaSetLabel},
	{prefix: "k8s.statefulset.annotation", fn: AttributeK8SStatefulSetAnnotation},
	{prefix: "k8s.statefulset.label", fn: AttributeK8SStatefulSetLabel},
	{prefix: "process.environment_variable", fn: AttributeProcessEnvironmentVariable},
	{prefix: "rpc.connect_rpc.request.metadata", fn: AttributeRPCConnectRPCRequestMetadata},
	{prefix: "rpc.connect_rpc.response.metadata", fn: AttributeRPCConnectRPCResponseMetadata},
	{prefix: "rpc.grpc.request.metadata", fn: AttributeRPCGRPCRequestMetadata},
	{prefix: "rpc.grpc.response.metadata", fn: AttributeRPCGRPCResponseMetadata},
}

func TestFactoriesMatchRegistry(t *testing.T) {
	reg := loadRegistry(t)
	require.Len(t, factories, len(reg.Templates))
	for i, tmpl := range reg.Templates {
		assert.Equal(t, tmpl.Prefix, factories[i].prefix)
	}
}

func TestFactoriesAppendKey(t *testing.T) {
	keys := []string{
		"app",
		"content-type",
		"",
		"kubernetes.io/arch",
		"mycompany.io/enforce-mountable-secrets",
		"UPPER_CASE",
		"with space",
		".",
		"ключ",
	}
	for _, f := range factories {
		t.Run(f.prefix, func(t *testing.T) {
			for _, key := range keys {
				got := f.fn(key)
				assert.Equal(t, f.prefix+"."+key, got)
				assert.Equal(t, got, f.fn(key))
			}
			assert.Equal(t, f.prefix+".", f.fn(""))
		})
	}
}

func TestFactoryExamples(t *testing.T) {
	assert.Equal(t, "k8s.pod.label.app", AttributeK8SPodLabel("app"))
	assert.Equal(t, "k8s.pod.annotation.kubernetes.io/enforce-mountable-secrets",
		AttributeK8SPodAnnotation("kubernetes.io/enforce-mountable-secrets"))
	assert.Equal(t, "k8s.node.label.kubernetes.io/arch", AttributeK8SNodeLabel("kubernetes.io/arch"))
	assert.Equal(t, "http.request.header.content-type", AttributeHTTPRequestHeader("content-type"))
	assert.Equal(t, "http.response.header.x-custom", AttributeHTTPResponseHeader("x-custom"))
	assert.Equal(t, "db.query.parameter.0", AttributeDBQueryParameter("0"))
	assert.Equal(t, "process.environment_variable.PATH", AttributeProcessEnvironmentVariable("PATH"))
	assert.Equal(t, "rpc.grpc.request.metadata.my-custom-key", AttributeRPCGRPCRequestMetadata("my-custom-key"))
	// Input is never normalized.
	assert.Equal(t, "http.request.header.Content-Type", AttributeHTTPRequestHeader("Content-Type"))
}

func TestFactoriesConcurrentUse(t *testing.T) {
	var wg sync.WaitGroup
	results := make([]string, 64)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = AttributeK8SPodLabel("app")
		}(i)
	}
	wg.Wait()
	for _, got := range results {
		assert.Equal(t, "k8s.pod.label.app", got)
	}
}

func TestFactoryKeysInTelemetry(t *testing.T) {
	m := pcommon.NewMap()
	m.PutStr(AttributeK8SPodLabel("app"), "my-app")
	m.PutStr(AttributeK8SPodLabel("data"), "")
	headers := m.PutEmptySlice(AttributeHTTPRequestHeader("x-forwarded-for"))
	headers.AppendEmpty().SetStr("1.2.3.4")
	headers.AppendEmpty().SetStr("1.2.3.5")

	assert.Equal(t, map[string]any{
		"k8s.pod.label.app":                   "my-app",
		"k8s.pod.label.data":                  "",
		"http.request.header.x-forwarded-for": []any{"1.2.3.4", "1.2.3.5"},
	}, m.AsRaw())

	kv := attribute.StringSlice(AttributeRPCGRPCResponseMetadata("my-custom-key"), []string{"attribute_value"})
	assert.Equal(t, attribute.Key("rpc.grpc.response.metadata.my-custom-key"), kv.Key)
	assert.Equal(t, []string{"attribute_value"}, kv.Value.AsStringSlice())
}
