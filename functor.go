// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scriptum

import "fmt"

// Built-in classes of the Functor hierarchy.
var (
	FunctorClass = MustDeclareClass(`(^a, b. {
  map: ((a => b) => f<a> => f<b>)
}) => Functor<f>`)

	ApplyClass = MustDeclareClass(`Functor<f> => (^a, b. {
  ap: (f<(a => b)> => f<a> => f<b>)
}) => Apply<f>`)

	ApplicativeClass = MustDeclareClass(`Apply<f> => (^a. {
  of: (a => f<a>)
}) => Applicative<f>`)
)

// Functor is a typed view of a Functor dictionary for the type constructor
// represented by F. The map operation has the Go type
//
//	func(func(Erased) Erased, F) F
type Functor[F any] struct {
	dict *Dict
	fmap func(func(Erased) Erased, F) F
}

// NewFunctor builds the Functor dictionary of typeName from ops.
func NewFunctor[F any](typeName string, ops Ops) (Functor[F], error) {
	d, err := FunctorClass.New(typeName, ops)
	if err != nil {
		return Functor[F]{}, err
	}
	return functorOf[F](d)
}

// MustFunctor is like NewFunctor but panics on error.
func MustFunctor[F any](typeName string, ops Ops) Functor[F] {
	return must(NewFunctor[F](typeName, ops))
}

func functorOf[F any](d *Dict) (Functor[F], error) {
	fmap, err := opAs[func(func(Erased) Erased, F) F](d, "map")
	if err != nil {
		return Functor[F]{}, err
	}
	return Functor[F]{dict: d, fmap: fmap}, nil
}

// Map applies f to every element of fa.
func (d Functor[F]) Map(f func(Erased) Erased, fa F) F { return d.fmap(f, fa) }

// Dict returns the underlying dictionary.
func (d Functor[F]) Dict() *Dict { return d.dict }

// Apply is a typed view of an Apply dictionary. Function-valued containers
// hold func(Erased) Erased elements; the ap operation has the Go type
//
//	func(F, F) F
type Apply[F any] struct {
	functor Functor[F]
	dict    *Dict
	ap      func(F, F) F
}

// NewApply builds the Apply dictionary for the type of functor.
func NewApply[F any](functor Functor[F], ops Ops) (Apply[F], error) {
	if functor.dict == nil {
		return Apply[F]{}, &ShapeError{Class: ApplyClass.name, Type: "?", Expected: "Functor dictionary", Actual: "none"}
	}
	d, err := ApplyClass.New(functor.dict.typ, ops, functor.dict)
	if err != nil {
		return Apply[F]{}, err
	}
	ap, err := opAs[func(F, F) F](d, "ap")
	if err != nil {
		return Apply[F]{}, err
	}
	return Apply[F]{functor: functor, dict: d, ap: ap}, nil
}

// MustApply is like NewApply but panics on error.
func MustApply[F any](functor Functor[F], ops Ops) Apply[F] {
	return must(NewApply(functor, ops))
}

// Map applies f to every element of fa.
func (d Apply[F]) Map(f func(Erased) Erased, fa F) F { return d.functor.fmap(f, fa) }

// Ap applies the functions in tf to the values in ta.
func (d Apply[F]) Ap(tf, ta F) F { return d.ap(tf, ta) }

// Functor returns the Functor superclass dictionary.
func (d Apply[F]) Functor() Functor[F] { return d.functor }

// Dict returns the underlying dictionary.
func (d Apply[F]) Dict() *Dict { return d.dict }

// Applicative is a typed view of an Applicative dictionary. The of
// operation has the Go type
//
//	func(Erased) F
type Applicative[F any] struct {
	apply Apply[F]
	dict  *Dict
	of    func(Erased) F
}

// NewApplicative builds the Applicative dictionary for the type of apply.
func NewApplicative[F any](apply Apply[F], ops Ops) (Applicative[F], error) {
	if apply.dict == nil {
		return Applicative[F]{}, &ShapeError{Class: ApplicativeClass.name, Type: "?", Expected: "Apply dictionary", Actual: "none"}
	}
	d, err := ApplicativeClass.New(apply.dict.typ, ops, apply.dict)
	if err != nil {
		return Applicative[F]{}, err
	}
	of, err := opAs[func(Erased) F](d, "of")
	if err != nil {
		return Applicative[F]{}, err
	}
	return Applicative[F]{apply: apply, dict: d, of: of}, nil
}

// MustApplicative is like NewApplicative but panics on error.
func MustApplicative[F any](apply Apply[F], ops Ops) Applicative[F] {
	return must(NewApplicative(apply, ops))
}

// Map applies f to every element of fa.
func (d Applicative[F]) Map(f func(Erased) Erased, fa F) F { return d.apply.functor.fmap(f, fa) }

// Ap applies the functions in tf to the values in ta.
func (d Applicative[F]) Ap(tf, ta F) F { return d.apply.ap(tf, ta) }

// Of lifts x into F.
func (d Applicative[F]) Of(x Erased) F { return d.of(x) }

// Apply returns the Apply superclass dictionary.
func (d Applicative[F]) Apply() Apply[F] { return d.apply }

// Functor returns the Functor superclass dictionary.
func (d Applicative[F]) Functor() Functor[F] { return d.apply.functor }

// Dict returns the underlying dictionary.
func (d Applicative[F]) Dict() *Dict { return d.dict }

// opAs asserts the Go type of a dictionary operation.
func opAs[T any](d *Dict, name string) (T, error) {
	op, _ := d.Op(name)
	fn, ok := op.(T)
	if !ok {
		shape, _ := d.Shape(name)
		return fn, &ShapeError{
			Class:    d.class.name,
			Type:     d.typ,
			Op:       name,
			Expected: fmt.Sprintf("%s as %T", shape, fn),
			Actual:   fmt.Sprintf("%T", op),
		}
	}
	return fn, nil
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
