// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides helpers for logging or panicking on errors
// at call sites that do not propagate them, plus re-exports of the
// standard library functions so that this package can be used in
// place of it.
package errors

import (
	"errors"
	"log/slog"
)

// New is [errors.New].
func New(text string) error { return errors.New(text) }

// Is is [errors.Is].
func Is(err, target error) bool { return errors.Is(err, target) }

// As is [errors.As].
func As(err error, target any) bool { return errors.As(err, target) }

// Join is [errors.Join].
func Join(errs ...error) error { return errors.Join(errs...) }

// Log takes the given error and logs it if it is non-nil.
// The intended usage is:
//
//	errors.Log(MyFunc(v))
//	// or
//	return errors.Log(MyFunc(v))
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error())
	}
	return err
}

// Log1 takes the given value and error and returns the value if
// the error is nil, and logs the error and returns a zero value
// if the error is non-nil. The intended usage is:
//
//	a := errors.Log1(MyFunc(v))
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error())
	}
	return v
}

// Must takes the given error and panics if it is non-nil.
// The intended usage is:
//
//	errors.Must(MyFunc(v))
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// Must1 takes the given value and error and returns the value if
// the error is nil, and panics if the error is non-nil. The intended usage is:
//
//	a := errors.Must1(MyFunc(v))
func Must1[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Ignore1 returns the given value, ignoring the error.
// It is used where a fallback value is always acceptable.
func Ignore1[T any](v T, err error) T {
	return v
}
