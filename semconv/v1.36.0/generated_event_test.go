// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package semconv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/collector/pdata/plog"
)

func TestEventNames(t *testing.T) {
	assert.Equal(t, "exception", EventException)
	assert.Equal(t, "feature_flag.evaluation", EventFeatureFlagEvaluation)
	assert.Equal(t, "session.start", EventSessionStart)
	assert.Equal(t, "session.end", EventSessionEnd)
	assert.Equal(t, "gen_ai.choice", EventGenAIChoice)
	assert.Equal(t, "az.resource.log", EventAzResourceLog)
	assert.Equal(t, "azure.resource.log", EventAzureResourceLog)
}

func TestExceptionEventAsLogRecord(t *testing.T) {
	ld := plog.NewLogs()
	rl := ld.ResourceLogs().AppendEmpty()
	rl.SetSchemaUrl(SchemaURL)
	rl.Resource().Attributes().PutStr(AttributeServiceName, "checkout")

	lr := rl.ScopeLogs().AppendEmpty().LogRecords().AppendEmpty()
	lr.SetEventName(EventException)
	lr.Attributes().PutStr(AttributeExceptionType, "java.net.ConnectException")
	lr.Attributes().PutStr(AttributeExceptionMessage, "Connection refused")

	got := ld.ResourceLogs().At(0)
	assert.Equal(t, "https://opentelemetry.io/schemas/1.36.0", got.SchemaUrl())
	rec := got.ScopeLogs().At(0).LogRecords().At(0)
	assert.Equal(t, "exception", rec.EventName())
	assert.Equal(t, map[string]any{
		"exception.type":    "java.net.ConnectException",
		"exception.message": "Connection refused",
	}, rec.Attributes().AsRaw())
}

func TestSchemaURL(t *testing.T) {
	assert.Equal(t, "https://opentelemetry.io/schemas/1.36.0", SchemaURL)
}
