// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package semconv

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type registryAttribute struct {
	Key        string `yaml:"key"`
	Type       string `yaml:"type"`
	Stability  string `yaml:"stability"`
	Deprecated bool   `yaml:"deprecated"`
	Values     []any  `yaml:"values"`
}

type registryTemplate struct {
	Prefix     string `yaml:"prefix"`
	Deprecated bool   `yaml:"deprecated"`
}

type registryMetric struct {
	Name       string `yaml:"name"`
	Instrument string `yaml:"instrument"`
	Unit       string `yaml:"unit"`
	Stability  string `yaml:"stability"`
	Deprecated bool   `yaml:"deprecated"`
}

type registryEvent struct {
	Name       string `yaml:"name"`
	Stability  string `yaml:"stability"`
	Deprecated bool   `yaml:"deprecated"`
}

// registry is the golden snapshot in testdata/registry.yaml.
type registry struct {
	Attributes []registryAttribute `yaml:"attributes"`
	Templates  []registryTemplate  `yaml:"templates"`
	Metrics    []registryMetric    `yaml:"metrics"`
	Events     []registryEvent     `yaml:"events"`
}

func loadRegistry(t *testing.T) registry {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "registry.yaml"))
	require.NoError(t, err)

	var reg registry
	require.NoError(t, yaml.Unmarshal(data, &reg))
	require.NotEmpty(t, reg.Attributes)
	require.NotEmpty(t, reg.Templates)
	require.NotEmpty(t, reg.Metrics)
	require.NotEmpty(t, reg.Events)
	return reg
}

// declaration is a constant or function read back from a generated source file.
type declaration struct {
	name  string
	value any
	doc   []string
	// group is the doc comment of the enclosing const block.
	group []string
}

func (d declaration) docLine(prefix string) (string, bool) {
	for _, line := range d.doc {
		if rest, ok := strings.CutPrefix(line, "// "+prefix); ok {
			return rest, true
		}
	}
	return "", false
}

func (d declaration) deprecated() bool {
	_, ok := d.docLine("Deprecated: ")
	return ok
}

// valuesOwner reports the attribute an enum value block belongs to.
func valuesOwner(group []string) (string, bool) {
	for _, line := range group {
		if rest, ok := strings.CutPrefix(line, "// Values for "); ok {
			return strings.TrimSuffix(rest, "."), true
		}
	}
	return "", false
}

func parseGenerated(t *testing.T, file string) *dst.File {
	t.Helper()
	f, err := decorator.ParseFile(token.NewFileSet(), file, nil, parser.ParseComments)
	require.NoError(t, err)
	return f
}

func literalValue(t *testing.T, expr dst.Expr) any {
	t.Helper()
	lit, ok := expr.(*dst.BasicLit)
	require.True(t, ok, "expected a literal, got %T", expr)
	switch lit.Kind {
	case token.STRING:
		s, err := strconv.Unquote(lit.Value)
		require.NoError(t, err)
		return s
	case token.INT:
		n, err := strconv.Atoi(lit.Value)
		require.NoError(t, err)
		return n
	default:
		t.Fatalf("unexpected literal kind %v", lit.Kind)
		return nil
	}
}

func loadConstants(t *testing.T, file string) []declaration {
	t.Helper()
	var out []declaration
	for _, decl := range parseGenerated(t, file).Decls {
		gen, ok := decl.(*dst.GenDecl)
		if !ok || gen.Tok != token.CONST {
			continue
		}
		for _, spec := range gen.Specs {
			vs := spec.(*dst.ValueSpec)
			require.Len(t, vs.Names, 1)
			require.Len(t, vs.Values, 1)
			out = append(out, declaration{
				name:  vs.Names[0].Name,
				value: literalValue(t, vs.Values[0]),
				doc:   vs.Decs.Start.All(),
				group: gen.Decs.Start.All(),
			})
		}
	}
	return out
}

func loadFactories(t *testing.T, file string) []declaration {
	t.Helper()
	var out []declaration
	for _, decl := range parseGenerated(t, file).Decls {
		fn, ok := decl.(*dst.FuncDecl)
		if !ok {
			continue
		}
		require.Len(t, fn.Body.List, 1, fn.Name.Name)
		ret, ok := fn.Body.List[0].(*dst.ReturnStmt)
		require.True(t, ok, fn.Name.Name)
		concat, ok := ret.Results[0].(*dst.BinaryExpr)
		require.True(t, ok, fn.Name.Name)
		assert.Equal(t, token.ADD, concat.Op, fn.Name.Name)
		arg, ok := concat.Y.(*dst.Ident)
		require.True(t, ok, fn.Name.Name)
		assert.Equal(t, "key", arg.Name, fn.Name.Name)

		out = append(out, declaration{
			name:  fn.Name.Name,
			value: literalValue(t, concat.X),
			doc:   fn.Decs.Start.All(),
		})
	}
	return out
}

func TestRegistryAttributeNames(t *testing.T) {
	reg := loadRegistry(t)

	keys := make([]string, 0, len(reg.Attributes))
	seen := map[string]bool{}
	for _, attr := range reg.Attributes {
		assert.False(t, seen[attr.Key], "duplicate registry key %q", attr.Key)
		seen[attr.Key] = true
		keys = append(keys, attr.Key)
	}

	names := GetAttribute_groupSemanticConventionAttributeNames()
	assert.Equal(t, keys, names)

	listed := map[string]bool{}
	for _, name := range names {
		assert.False(t, listed[name], "%q listed twice", name)
		listed[name] = true
	}
}

func TestRegistryAttributeConstants(t *testing.T) {
	reg := loadRegistry(t)
	byKey := map[string]registryAttribute{}
	for _, attr := range reg.Attributes {
		byKey[attr.Key] = attr
	}

	members := map[string][]any{}
	attrs := map[string]declaration{}
	for _, c := range loadConstants(t, "generated_attribute_group.go") {
		if owner, ok := valuesOwner(c.group); ok {
			members[owner] = append(members[owner], c.value)
			continue
		}
		key, ok := c.value.(string)
		require.True(t, ok, c.name)
		attrs[c.name] = c
		_, known := byKey[key]
		assert.True(t, known, "%s = %q is not in the registry", c.name, key)
	}
	require.Len(t, attrs, len(reg.Attributes))

	for name, c := range attrs {
		attr := byKey[c.value.(string)]
		t.Run(attr.Key, func(t *testing.T) {
			stability, ok := c.docLine("Stability: ")
			assert.True(t, ok)
			assert.Equal(t, attr.Stability, stability)
			assert.Equal(t, attr.Deprecated, c.deprecated())

			if len(attr.Values) == 0 {
				assert.Empty(t, members[name])
				return
			}
			assert.Equal(t, attr.Values, members[name])
		})
	}

	for owner := range members {
		_, ok := attrs[owner]
		assert.True(t, ok, "values declared for unknown attribute %s", owner)
	}
}

func TestRegistryTemplates(t *testing.T) {
	reg := loadRegistry(t)
	factories := loadFactories(t, "generated_attribute_template.go")
	require.Len(t, factories, len(reg.Templates))

	for i, tmpl := range reg.Templates {
		f := factories[i]
		assert.Equal(t, tmpl.Prefix+".", f.value, f.name)
		assert.Equal(t, tmpl.Deprecated, f.deprecated(), f.name)
	}
}

func TestRegistryMetrics(t *testing.T) {
	reg := loadRegistry(t)
	consts := map[string]declaration{}
	for _, c := range loadConstants(t, "generated_metric.go") {
		consts[c.name] = c
	}
	require.Len(t, consts, 3*len(reg.Metrics))

	byName := map[string]declaration{}
	for _, c := range consts {
		if strings.HasSuffix(c.name, "Unit") || strings.HasSuffix(c.name, "Description") {
			continue
		}
		name := c.value.(string)
		_, dup := byName[name]
		assert.False(t, dup, "duplicate metric %q", name)
		byName[name] = c
	}
	assert.Len(t, byName, len(reg.Metrics))

	for _, m := range reg.Metrics {
		t.Run(m.Name, func(t *testing.T) {
			c, ok := byName[m.Name]
			require.True(t, ok, "metric is missing")

			unit, ok := consts[c.name+"Unit"]
			require.True(t, ok)
			assert.Equal(t, m.Unit, unit.value)
			_, ok = consts[c.name+"Description"]
			require.True(t, ok)

			instrument, _ := c.docLine("Instrument: ")
			assert.Equal(t, m.Instrument, instrument)
			docUnit, _ := c.docLine("Unit: ")
			assert.Equal(t, m.Unit, docUnit)
			stability, _ := c.docLine("Stability: ")
			assert.Equal(t, m.Stability, stability)
			assert.Equal(t, m.Deprecated, c.deprecated())
		})
	}
}

func TestRegistryEvents(t *testing.T) {
	reg := loadRegistry(t)
	events := loadConstants(t, "generated_event.go")
	require.Len(t, events, len(reg.Events))

	for i, ev := range reg.Events {
		c := events[i]
		assert.Equal(t, ev.Name, c.value, c.name)
		stability, _ := c.docLine("Stability: ")
		assert.Equal(t, ev.Stability, stability, c.name)
		assert.Equal(t, ev.Deprecated, c.deprecated(), c.name)
	}
}
