// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

import "errors"

// Failure values returned by shape-sensitive operations. They are
// sentinels: compare with errors.Is. No operation in this package
// panics on well-typed input, and errors raised by caller-supplied
// functions propagate unchanged.
var (
	// ErrEmptyAccess is returned by Head and Tail on the empty sequence.
	ErrEmptyAccess = errors.New("seq: access on empty sequence")

	// ErrLengthMismatch is returned by ZipWith when the two sequences
	// have different lengths. No partial result accompanies it.
	ErrLengthMismatch = errors.New("seq: sequence length mismatch")
)
