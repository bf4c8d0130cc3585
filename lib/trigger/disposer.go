// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package trigger

// Disposer collects cleanup functions and runs them together. The zero
// value is ready to use.
type Disposer struct {
	functions []func()
}

// Add registers a cleanup function. Nil functions are ignored.
func (disposer *Disposer) Add(function func()) {
	if function == nil {
		return
	}
	disposer.functions = append(disposer.functions, function)
}

// Len returns the number of registered functions not yet run.
func (disposer *Disposer) Len() int { return len(disposer.functions) }

// Dispose runs every registered function in reverse order of
// registration and clears the set. A second call does nothing.
func (disposer *Disposer) Dispose() {
	functions := disposer.functions
	disposer.functions = nil
	for index := len(functions) - 1; index >= 0; index-- {
		functions[index]()
	}
}
