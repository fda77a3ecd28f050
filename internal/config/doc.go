// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the application, plus the host properties the tree reacts
// to at run time.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields, later sources fill the
// gaps):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetStructuredConfig]. [Properties] carries the
// comparison mode and builder variant and broadcasts their changes.
package config
