// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the local control endpoint of the diff tree.
//
// External tools use it to report marker changes and busy items, to switch
// the comparison mode and builder variant, and to manage change sets. It
// also serves the serializer metrics in the Prometheus text format. Every
// request is traced and access-logged before it reaches the service.
package http
