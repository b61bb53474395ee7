// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package semconv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/collector/pdata/pcommon"
	"go.opentelemetry.io/otel/attribute"
)

func TestDatabaseSystemName(t *testing.T) {
	assert.Equal(t, "db.system.name", AttributeDBSystemName)
	assert.Equal(t, "mongodb", AttributeDBSystemNameMongoDB)

	m := pcommon.NewMap()
	m.PutStr(AttributeDBSystemName, AttributeDBSystemNameMongoDB)
	v, ok := m.Get("db.system.name")
	require.True(t, ok)
	assert.Equal(t, pcommon.ValueTypeStr, v.Type())
	assert.Equal(t, "mongodb", v.Str())
}

func TestDeprecatedConstantsKeepTheirValues(t *testing.T) {
	tests := []struct {
		name        string
		deprecated  string
		want        string
		replacement string
	}{
		{name: "db.name", deprecated: AttributeDBName, want: "db.name", replacement: AttributeDBNamespace},
		{name: "db.system", deprecated: AttributeDBSystem, want: "db.system", replacement: AttributeDBSystemName},
		{name: "http.method", deprecated: AttributeHTTPMethod, want: "http.method", replacement: AttributeHTTPRequestMethod},
		{name: "http.status_code", deprecated: AttributeHTTPStatusCode, want: "http.status_code", replacement: AttributeHTTPResponseStatusCode},
		{name: "net.peer.name", deprecated: AttributeNetPeerName, want: "net.peer.name", replacement: AttributeServerAddress},
		{name: "messaging.client_id", deprecated: AttributeMessagingClientIDDeprecated, want: "messaging.client_id", replacement: AttributeMessagingClientID},
		{name: "feature_flag.provider_name", deprecated: AttributeFeatureFlagProviderNameDeprecated, want: "feature_flag.provider_name", replacement: AttributeFeatureFlagProviderName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.deprecated)
			assert.NotEqual(t, tt.deprecated, tt.replacement)
		})
	}
	assert.Equal(t, "db.namespace", AttributeDBNamespace)
}

func TestNumericEnumStaysNumeric(t *testing.T) {
	assert.Equal(t, "cpython.gc.generation", AttributeCPythonGCGeneration)

	m := pcommon.NewMap()
	m.PutInt(AttributeCPythonGCGeneration, AttributeCPythonGCGenerationGeneration0)
	v, ok := m.Get(AttributeCPythonGCGeneration)
	require.True(t, ok)
	assert.Equal(t, pcommon.ValueTypeInt, v.Type())
	assert.Equal(t, int64(0), v.Int())

	kv := attribute.Int(AttributeCPythonGCGeneration, AttributeCPythonGCGenerationGeneration2)
	assert.Equal(t, attribute.INT64, kv.Value.Type())
	assert.Equal(t, int64(2), kv.Value.AsInt64())

	codes := []int{
		AttributeRPCGRPCStatusCodeOK,
		AttributeRPCGRPCStatusCodeCancelled,
		AttributeRPCGRPCStatusCodeUnknown,
		AttributeRPCGRPCStatusCodeInvalidArgument,
		AttributeRPCGRPCStatusCodeDeadlineExceeded,
		AttributeRPCGRPCStatusCodeNotFound,
		AttributeRPCGRPCStatusCodeAlreadyExists,
		AttributeRPCGRPCStatusCodePermissionDenied,
		AttributeRPCGRPCStatusCodeResourceExhausted,
		AttributeRPCGRPCStatusCodeFailedPrecondition,
		AttributeRPCGRPCStatusCodeAborted,
		AttributeRPCGRPCStatusCodeOutOfRange,
		AttributeRPCGRPCStatusCodeUnimplemented,
		AttributeRPCGRPCStatusCodeInternal,
		AttributeRPCGRPCStatusCodeUnavailable,
		AttributeRPCGRPCStatusCodeDataLoss,
		AttributeRPCGRPCStatusCodeUnauthenticated,
	}
	for i, code := range codes {
		assert.Equal(t, i, code)
	}
}

func TestRenamedEnumValues(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{name: "azure vm", got: AttributeCloudPlatformAzureVM, want: "azure.vm"},
		{name: "azure aks", got: AttributeCloudPlatformAzureAKS, want: "azure.aks"},
		{name: "azure functions", got: AttributeCloudPlatformAzureFunctions, want: "azure.functions"},
		{name: "azure openshift", got: AttributeCloudPlatformAzureOpenshift, want: "azure.openshift"},
		{name: "azure ai inference", got: AttributeGenAISystemAzureAIInference, want: "azure.ai.inference"},
		{name: "azure ai openai", got: AttributeGenAISystemAzureAIOpenAI, want: "azure.ai.openai"},
		{name: "sampling drop", got: AttributeOTelSpanSamplingResultDrop, want: "DROP"},
		{name: "sampling record only", got: AttributeOTelSpanSamplingResultRecordOnly, want: "RECORD_ONLY"},
		{name: "sampling record and sample", got: AttributeOTelSpanSamplingResultRecordAndSample, want: "RECORD_AND_SAMPLE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestContainerRuntimeIsLive(t *testing.T) {
	assert.Equal(t, "container.runtime", AttributeContainerRuntime)
	assert.Contains(t, GetAttribute_groupSemanticConventionAttributeNames(), AttributeContainerRuntime)

	for _, c := range loadConstants(t, "generated_attribute_group.go") {
		if c.name == "AttributeContainerRuntime" {
			assert.False(t, c.deprecated())
			return
		}
	}
	t.Fatal("AttributeContainerRuntime is not declared")
}

func TestOtherValueSentinel(t *testing.T) {
	assert.Equal(t, "_OTHER", AttributeErrorTypeOther)
	assert.Equal(t, "_OTHER", AttributeHTTPRequestMethodOther)
	assert.Equal(t, "other_sql", AttributeDBSystemNameOtherSQL)
}

func TestEnumValuesAsOTelAttributes(t *testing.T) {
	set := attribute.NewSet(
		attribute.String(AttributeHTTPRequestMethod, AttributeHTTPRequestMethodGet),
		attribute.Int(AttributeHTTPResponseStatusCode, 200),
		attribute.String(AttributeNetworkTransport, AttributeNetworkTransportTCP),
		attribute.String(AttributeOTelStatusCode, AttributeOTelStatusCodeError),
		attribute.String(AttributeTelemetrySDKLanguage, AttributeTelemetrySDKLanguageGo),
		attribute.String(AttributeHostArch, AttributeHostArchAMD64),
		attribute.Bool(AttributeJVMThreadDaemon, true),
	)

	tests := []struct {
		key  string
		want attribute.Value
	}{
		{key: "http.request.method", want: attribute.StringValue("GET")},
		{key: "http.response.status_code", want: attribute.IntValue(200)},
		{key: "network.transport", want: attribute.StringValue("tcp")},
		{key: "otel.status_code", want: attribute.StringValue("ERROR")},
		{key: "telemetry.sdk.language", want: attribute.StringValue("go")},
		{key: "host.arch", want: attribute.StringValue("amd64")},
		{key: "jvm.thread.daemon", want: attribute.BoolValue(true)},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := set.Value(attribute.Key(tt.key))
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResourceAttributesInPdata(t *testing.T) {
	res := pcommon.NewResource()
	attrs := res.Attributes()
	attrs.PutStr(AttributeServiceName, "checkout")
	attrs.PutStr(AttributeServiceVersion, "2.0.0")
	attrs.PutStr(AttributeCloudProvider, AttributeCloudProviderGCP)
	attrs.PutStr(AttributeCloudPlatform, AttributeCloudPlatformGCPKubernetesEngine)
	attrs.PutStr(AttributeContainerRuntime, "containerd")
	ips := attrs.PutEmptySlice(AttributeHostIP)
	ips.AppendEmpty().SetStr("192.168.1.140")
	ips.AppendEmpty().SetStr("fe80::abc2:4a28:737a:609e")

	assert.Equal(t, map[string]any{
		"service.name":         "checkout",
		"service.version":      "2.0.0",
		"cloud.provider":       "gcp",
		"cloud.platform":       "gcp_kubernetes_engine",
		"container.runtime":    "containerd",
		"host.ip":              []any{"192.168.1.140", "fe80::abc2:4a28:737a:609e"},
	}, attrs.AsRaw())
}

func TestAttributeNamesAreAttributeKeys(t *testing.T) {
	names := GetAttribute_groupSemanticConventionAttributeNames()
	assert.Contains(t, names, AttributeDBSystemName)
	assert.Contains(t, names, AttributeDBName)
	assert.Contains(t, names, AttributeCPythonGCGeneration)
	assert.NotContains(t, names, AttributeDBSystemNameMongoDB)
	assert.NotContains(t, names, "k8s.pod.label")
}
