// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformedInput is returned when the markup cannot be parsed
	// or has no <svg> root. No elements are imported.
	ErrMalformedInput = errors.New("svg: malformed input")

	// ErrUnresolvedReference is recorded when a gradient or filter
	// reference does not resolve. The default paint is used instead.
	ErrUnresolvedReference = errors.New("svg: unresolved reference")

	// ErrInvalidAttribute is recorded when a node has an attribute
	// that cannot be parsed. The node is skipped.
	ErrInvalidAttribute = errors.New("svg: invalid attribute")

	// ErrInvalidTarget is returned when the target canvas size is not positive.
	ErrInvalidTarget = errors.New("svg: invalid target size")
)

// NodeError is a problem with one markup node.
type NodeError struct {

	// Tag is the element name of the node.
	Tag string

	// ID is the id attribute of the node, if any.
	ID string

	// Skipped is whether the node (and its subtree) was left out.
	Skipped bool

	Err error
}

func (ne *NodeError) Error() string {
	var sb strings.Builder
	sb.WriteString("<" + ne.Tag)
	if ne.ID != "" {
		sb.WriteString(fmt.Sprintf(" id=%q", ne.ID))
	}
	sb.WriteString(">")
	if ne.Skipped {
		sb.WriteString(" skipped")
	}
	sb.WriteString(": " + ne.Err.Error())
	return sb.String()
}

func (ne *NodeError) Unwrap() error { return ne.Err }

// ImportError collects the per-node problems of an import
// that otherwise succeeded.
type ImportError struct {
	Nodes []*NodeError
}

func (ie *ImportError) Error() string {
	if len(ie.Nodes) == 1 {
		return "svg.Import: " + ie.Nodes[0].Error()
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("svg.Import: %d node problems:", len(ie.Nodes)))
	for _, ne := range ie.Nodes {
		sb.WriteString("\n\t" + ne.Error())
	}
	return sb.String()
}

// Unwrap supports [errors.Is] and [errors.As] over all node errors.
func (ie *ImportError) Unwrap() []error {
	errs := make([]error, len(ie.Nodes))
	for i, ne := range ie.Nodes {
		errs[i] = ne
	}
	return errs
}

// Skipped returns the number of nodes that were left out.
func (ie *ImportError) Skipped() int {
	n := 0
	for _, ne := range ie.Nodes {
		if ne.Skipped {
			n++
		}
	}
	return n
}
