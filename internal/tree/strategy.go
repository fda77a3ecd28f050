// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tree

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-diff-tree/internal/source"
	"github.com/MKhiriev/go-diff-tree/models"
)

const (
	StrategyHierarchical = "hierarchical"
	StrategyFlat         = "flat"
	StrategyCompressed   = "compressed"
)

// Strategies lists the builder variants in cycling order.
var Strategies = []string{StrategyHierarchical, StrategyFlat, StrategyCompressed}

// Container is one structural node on the way from the root to an item.
type Container struct {
	Path models.ItemPath
	Type models.ItemType
}

// Strategy decides the shape of the tree: which containers hold an item and
// how nodes are labelled.
type Strategy interface {
	Name() string
	// Containers returns the container chain of path, outermost first.
	Containers(path models.ItemPath, snap source.Snapshot) []Container
	// Label returns the label of the node for path placed under parent.
	Label(path, parent models.ItemPath) string
}

// StrategyFor returns the builder variant named name.
func StrategyFor(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", StrategyHierarchical, "tree":
		return Hierarchical{}, nil
	case StrategyFlat:
		return Flat{}, nil
	case StrategyCompressed, "compressed-folders":
		return Compressed{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// NextStrategy returns the variant following name in Strategies.
func NextStrategy(name string) string {
	for i, s := range Strategies {
		if s == name {
			return Strategies[(i+1)%len(Strategies)]
		}
	}
	return StrategyHierarchical
}

func containerType(path models.ItemPath, snap source.Snapshot) models.ItemType {
	if st, ok := snap.State(path); ok && st.Type.IsContainer() {
		return st.Type
	}
	if path.Depth() == 1 {
		return models.Project
	}
	return models.Folder
}

// Hierarchical mirrors the resource hierarchy: every ancestor is a node.
type Hierarchical struct{}

func (Hierarchical) Name() string { return StrategyHierarchical }

func (Hierarchical) Containers(path models.ItemPath, snap source.Snapshot) []Container {
	ancestors := path.Ancestors()
	out := make([]Container, 0, len(ancestors))
	for _, a := range ancestors {
		out = append(out, Container{Path: a, Type: containerType(a, snap)})
	}
	return out
}

func (Hierarchical) Label(path, parent models.ItemPath) string {
	return path.Name()
}

// Flat lists every item directly under the root, labelled with its full path.
type Flat struct{}

func (Flat) Name() string { return StrategyFlat }

func (Flat) Containers(models.ItemPath, source.Snapshot) []Container {
	return nil
}

func (Flat) Label(path, _ models.ItemPath) string {
	return path.Rel(models.RootPath)
}

// Compressed keeps projects and collapses the folders between a project and
// an item into a single container labelled with the relative folder path.
// Items directly inside a project hang off the project.
type Compressed struct{}

func (Compressed) Name() string { return StrategyCompressed }

func (Compressed) Containers(path models.ItemPath, snap source.Snapshot) []Container {
	project := path.Project()
	if project == path {
		return nil
	}
	out := []Container{{Path: project, Type: containerType(project, snap)}}
	if folder := path.Parent(); folder != project {
		out = append(out, Container{Path: folder, Type: models.Folder})
	}
	return out
}

func (Compressed) Label(path, parent models.ItemPath) string {
	return path.Rel(parent)
}
