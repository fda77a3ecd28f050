// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TreeStateResponse describes the host properties and change sets of a
// running diff tree.
type TreeStateResponse struct {
	Mode       string   `json:"mode"`
	Builder    string   `json:"builder"`
	ChangeSets []string `json:"change_sets"`
}

// VersionResponse is the build information of the running binary.
type VersionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}
