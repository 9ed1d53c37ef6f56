// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrUnknownRoute is returned by [Reverse] for a name that is not
	// registered.
	ErrUnknownRoute = errors.New("unknown route")

	// ErrReverseArgs is returned by [Reverse] when the number of args does
	// not match the number of path parameters of the route.
	ErrReverseArgs = errors.New("wrong number of route args")

	// ErrUnknownTemplate is returned by the renderer for a page that has no
	// template.
	ErrUnknownTemplate = errors.New("unknown template")
)
