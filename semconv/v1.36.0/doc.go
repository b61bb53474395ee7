// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package semconv implements OpenTelemetry semantic conventions v1.36.0.
//
// Attribute keys are plain string constants named Attribute<Key>. The legal
// values of an enum attribute follow as Attribute<Key><Member> constants.
// Numeric enums are untyped integer constants, so they keep their integer
// type when stored in an attribute map.
//
// Attribute families keyed by an open-ended suffix, such as Kubernetes pod
// labels or HTTP headers, are exposed as functions that append the suffix to
// the family prefix:
//
//	semconv.AttributeK8SPodLabel("app") // "k8s.pod.label.app"
//
// Deprecated conventions stay in the package with their original values and
// a Deprecated notice naming the replacement.
package semconv
