// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package semconv

import (
	"context"
	"errors"
	"go/token"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dave/dst"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	otelsemconv "go.opentelemetry.io/otel/semconv/v1.36.0"
)

// otelPackage is the otel-go rendering of the same convention release. It
// only carries live attributes and metrics outside the runtime namespaces
// (jvm, dotnet, aspnetcore, kestrel, nodejs, v8js, cpython).
const otelPackage = "go.opentelemetry.io/otel/semconv/v1.36.0"

// otelPackageDir resolves the source directory of otelPackage with go list.
func otelPackageDir(t *testing.T) string {
	t.Helper()
	goBin, err := exec.LookPath("go")
	if err != nil {
		t.Skip("go command is not available")
	}
	out, err := exec.CommandContext(context.Background(), goBin, "list", "-f", "{{.Dir}}", otelPackage).Output()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		require.NoError(t, err, "go list failed\nstderr: %s", exitErr.Stderr)
	}
	require.NoError(t, err)
	dir := strings.TrimSpace(string(out))
	require.NotEmpty(t, dir)
	return dir
}

type otelAttributes struct {
	keys      []string
	values    map[string][]any
	templates []string
}

func loadOTelAttributes(t *testing.T, dir string) otelAttributes {
	t.Helper()
	out := otelAttributes{values: map[string][]any{}}
	// KeyValue variables refer to their key through the constant name.
	keyOf := map[string]string{}
	for _, decl := range parseGenerated(t, filepath.Join(dir, "attribute_group.go")).Decls {
		switch decl := decl.(type) {
		case *dst.GenDecl:
			for _, spec := range decl.Specs {
				vs, ok := spec.(*dst.ValueSpec)
				if !ok || len(vs.Values) != 1 {
					continue
				}
				call, ok := vs.Values[0].(*dst.CallExpr)
				if !ok || len(call.Args) != 1 {
					continue
				}
				sel, ok := call.Fun.(*dst.SelectorExpr)
				if !ok {
					continue
				}
				owner, ok := sel.X.(*dst.Ident)
				if !ok {
					continue
				}
				switch {
				case decl.Tok == token.CONST && owner.Name == "attribute" && sel.Sel.Name == "Key":
					key := literalValue(t, call.Args[0]).(string)
					keyOf[vs.Names[0].Name] = key
					out.keys = append(out.keys, key)
				case decl.Tok == token.VAR && (sel.Sel.Name == "String" || sel.Sel.Name == "Int"):
					key, ok := keyOf[owner.Name]
					require.True(t, ok, "%s refers to unknown key %s", vs.Names[0].Name, owner.Name)
					out.values[key] = append(out.values[key], literalValue(t, call.Args[0]))
				}
			}
		case *dst.FuncDecl:
			if len(decl.Body.List) != 1 {
				continue
			}
			ret, ok := decl.Body.List[0].(*dst.ReturnStmt)
			if !ok || len(ret.Results) != 1 {
				continue
			}
			call, ok := ret.Results[0].(*dst.CallExpr)
			if !ok || len(call.Args) == 0 {
				continue
			}
			concat, ok := call.Args[0].(*dst.BinaryExpr)
			if !ok {
				continue
			}
			prefix := literalValue(t, concat.X).(string)
			out.templates = append(out.templates, strings.TrimSuffix(prefix, "."))
		}
	}
	require.NotEmpty(t, out.keys)
	return out
}

type otelMetric struct {
	name        string
	unit        string
	description string
	// hasDescription is false when the registry gives no brief.
	hasDescription bool
}

func loadOTelMetrics(t *testing.T, dir string) []otelMetric {
	t.Helper()
	files, err := filepath.Glob(filepath.Join(dir, "*conv", "metric.go"))
	require.NoError(t, err)
	require.NotEmpty(t, files)

	var out []otelMetric
	for _, file := range files {
		byType := map[string]*otelMetric{}
		var order []string
		for _, decl := range parseGenerated(t, file).Decls {
			fn, ok := decl.(*dst.FuncDecl)
			if !ok || fn.Recv == nil || len(fn.Recv.List) != 1 || len(fn.Body.List) != 1 {
				continue
			}
			recv, ok := fn.Recv.List[0].Type.(*dst.Ident)
			if !ok {
				continue
			}
			ret, ok := fn.Body.List[0].(*dst.ReturnStmt)
			if !ok || len(ret.Results) != 1 {
				continue
			}
			if _, ok = ret.Results[0].(*dst.BasicLit); !ok {
				continue
			}
			m, ok := byType[recv.Name]
			if !ok {
				m = &otelMetric{}
				byType[recv.Name] = m
				order = append(order, recv.Name)
			}
			switch fn.Name.Name {
			case "Name":
				m.name = literalValue(t, ret.Results[0]).(string)
			case "Unit":
				m.unit = literalValue(t, ret.Results[0]).(string)
			case "Description":
				m.description = literalValue(t, ret.Results[0]).(string)
				m.hasDescription = true
			}
		}
		for _, typ := range order {
			if byType[typ].name != "" {
				out = append(out, *byType[typ])
			}
		}
	}
	return out
}

func TestAttributesMatchOTelGo(t *testing.T) {
	upstream := loadOTelAttributes(t, otelPackageDir(t))

	attrs := map[string]declaration{}
	members := map[string][]any{}
	for _, c := range loadConstants(t, "generated_attribute_group.go") {
		if owner, ok := valuesOwner(c.group); ok {
			members[owner] = append(members[owner], c.value)
			continue
		}
		attrs[c.value.(string)] = c
	}

	for _, key := range upstream.keys {
		c, ok := attrs[key]
		if !assert.True(t, ok, "attribute %q is missing", key) {
			continue
		}
		assert.False(t, c.deprecated(), "%s is live in this release", c.name)
		if want := upstream.values[key]; len(want) > 0 {
			assert.Equal(t, want, members[c.name], "values of %q", key)
		}
	}

	prefixes := map[string]declaration{}
	for _, f := range loadFactories(t, "generated_attribute_template.go") {
		prefixes[strings.TrimSuffix(f.value.(string), ".")] = f
	}
	for _, prefix := range upstream.templates {
		f, ok := prefixes[prefix]
		if assert.True(t, ok, "template %q is missing", prefix) {
			assert.False(t, f.deprecated(), "%s is live in this release", f.name)
		}
	}
}

func TestMetricsMatchOTelGo(t *testing.T) {
	upstream := loadOTelMetrics(t, otelPackageDir(t))

	consts := map[string]declaration{}
	byName := map[string]declaration{}
	for _, c := range loadConstants(t, "generated_metric.go") {
		consts[c.name] = c
		if !strings.HasSuffix(c.name, "Unit") && !strings.HasSuffix(c.name, "Description") {
			byName[c.value.(string)] = c
		}
	}

	for _, m := range upstream {
		t.Run(m.name, func(t *testing.T) {
			c, ok := byName[m.name]
			require.True(t, ok, "metric is missing")
			assert.False(t, c.deprecated())
			assert.Equal(t, m.unit, consts[c.name+"Unit"].value)
			if m.hasDescription {
				assert.Equal(t, m.description, consts[c.name+"Description"].value)
			} else {
				assert.Empty(t, consts[c.name+"Description"].value)
			}
		})
	}
}

func TestRenamedValuesMatchOTelGo(t *testing.T) {
	assert.Equal(t, otelsemconv.CloudPlatformAzureVM.Value.AsString(), AttributeCloudPlatformAzureVM)
	assert.Equal(t, otelsemconv.CloudPlatformAzureAKS.Value.AsString(), AttributeCloudPlatformAzureAKS)
	assert.Equal(t, otelsemconv.GenAISystemAzureAIInference.Value.AsString(), AttributeGenAISystemAzureAIInference)
	assert.Equal(t, otelsemconv.GenAISystemAzureAIOpenAI.Value.AsString(), AttributeGenAISystemAzureAIOpenAI)
	assert.Equal(t, otelsemconv.OTelSpanSamplingResultDrop.Value.AsString(), AttributeOTelSpanSamplingResultDrop)
	assert.Equal(t, otelsemconv.OTelSpanSamplingResultRecordOnly.Value.AsString(), AttributeOTelSpanSamplingResultRecordOnly)
	assert.Equal(t, otelsemconv.OTelSpanSamplingResultRecordAndSample.Value.AsString(), AttributeOTelSpanSamplingResultRecordAndSample)
	assert.Equal(t, string(otelsemconv.ContainerRuntimeKey), AttributeContainerRuntime)
	assert.Equal(t, otelsemconv.RPCGRPCStatusCodeOk.Value.AsInt64(), int64(AttributeRPCGRPCStatusCodeOK))
	assert.Equal(t, otelsemconv.ExceptionEventName, EventException)
	assert.Equal(t, otelsemconv.SchemaURL, SchemaURL)
}
