// Copyright (c) 2026, The ez3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides a helper for errors that should be logged
// rather than returned, in addition to re-exporting the standard library
// errors functions so that it can be used as a drop-in replacement.
package errors

import (
	"errors"
	"log/slog"
	"runtime"
	"strconv"
)

// New is [errors.New].
func New(text string) error { return errors.New(text) }

// Is is [errors.Is].
func Is(err, target error) bool { return errors.Is(err, target) }

// Join is [errors.Join].
func Join(errs ...error) error { return errors.Join(errs...) }

// Log takes the given error and logs it if it is non-nil,
// along with the file and line of the caller.
// The intended usage is:
//
//	errors.Log(MyFunc(v))
//	// or
//	return errors.Log(MyFunc(v))
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error() + " | " + callerInfo())
	}
	return err
}

// callerInfo returns string information about the caller
// of the function that called callerInfo.
func callerInfo() string {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "<unknown caller>"
	}
	return file + ":" + strconv.Itoa(line)
}
