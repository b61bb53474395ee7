// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package semconv holds OpenTelemetry semantic conventions.
//
// Semantic conventions are the agreed, standardized names for attributes,
// metrics and events. Each convention release lives in its own package under
// this directory, for example semconv/v1.36.0, so callers pin a release by
// import path. The values in a release package never change.
package semconv
