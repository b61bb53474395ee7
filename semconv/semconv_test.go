// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package semconv

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hashicorp/go-version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requiredFiles must exist in every convention release package.
var requiredFiles = []string{
	"doc.go",
	"schema.go",
	"generated_attribute_group.go",
	"generated_attribute_template.go",
	"generated_metric.go",
	"generated_event.go",
	filepath.Join("testdata", "registry.yaml"),
}

func TestReleasePackagesAreComplete(t *testing.T) {
	dirs, err := os.ReadDir(".")
	require.NoError(t, err)

	constraints, err := version.NewConstraint(">= 1.36.0")
	require.NoError(t, err)

	found := 0
	for _, dir := range dirs {
		if !dir.IsDir() || !strings.HasPrefix(dir.Name(), "v") {
			continue
		}
		ver, err := version.NewVersion(dir.Name())
		require.NoError(t, err, "release directory %q is not a version", dir.Name())
		if !constraints.Check(ver) {
			continue
		}
		found++

		for _, file := range requiredFiles {
			_, err = os.Stat(filepath.Join(dir.Name(), file))
			assert.NoError(t, err, "%s is missing from %s", file, dir.Name())
		}
	}
	assert.Positive(t, found, "no release packages found")
}

func TestReleaseSchemaURLMatchesDirectory(t *testing.T) {
	dirs, err := os.ReadDir(".")
	require.NoError(t, err)

	for _, dir := range dirs {
		if !dir.IsDir() || !strings.HasPrefix(dir.Name(), "v") {
			continue
		}
		ver, err := version.NewVersion(dir.Name())
		require.NoError(t, err)

		src, err := os.ReadFile(filepath.Join(dir.Name(), "schema.go"))
		require.NoError(t, err)
		assert.Contains(t, string(src), `"https://opentelemetry.io/schemas/`+ver.String()+`"`)
	}
}
