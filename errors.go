// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scriptum

import (
	"errors"
	"fmt"
)

// ErrShape is matched by every *ShapeError.
var ErrShape = errors.New("scriptum: shape violation")

// ErrConsumed is reported by Mutable.TryUpdate and raised by Mutable.Update
// once the wrapped value has been consumed.
var ErrConsumed = errors.New("scriptum: illegal in-place update of consumed data structure")

// ErrUpdating is raised by Mutable.Consume when called from within one of
// the wrapper's own update functions.
var ErrUpdating = errors.New("scriptum: consume during in-place update")

// ShapeError reports a dictionary that does not satisfy its class.
// Op is empty when the violation concerns a superclass dictionary.
type ShapeError struct {
	Class    string
	Type     string
	Op       string
	Expected string
	Actual   string
}

func (e *ShapeError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("scriptum: %s<%s>: expected %s, got %s", e.Class, e.Type, e.Expected, e.Actual)
	}
	return fmt.Sprintf("scriptum: %s<%s>: operation %q: expected %s, got %s", e.Class, e.Type, e.Op, e.Expected, e.Actual)
}

func (e *ShapeError) Unwrap() error { return ErrShape }

// SignatureError reports a class signature that cannot be declared.
type SignatureError struct {
	Sig    string
	Reason string
}

func (e *SignatureError) Error() string {
	return fmt.Sprintf("scriptum: bad class signature %q: %s", e.Sig, e.Reason)
}
