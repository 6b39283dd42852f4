// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scriptum

import (
	"cmp"
	"fmt"
	"reflect"
	"strings"
	"sync"

	set "github.com/hashicorp/go-set/v3"
	"go.uber.org/zap"
)

// Method is an operation required by a class.
type Method struct {
	// Name is the dictionary key of the operation.
	Name string

	// Shape is the declared type of the operation, as written in the signature.
	Shape string

	// Arity is the number of top-level arrows in Shape, i.e. the number of
	// parameters the Go implementation takes.
	Arity int
}

// Class is a type class: a named constraint over a type parameter of some
// kind, together with the operations an instance must provide.
// Classes are created once by DeclareClass and never change afterwards.
type Class struct {
	name     string
	param    string
	kind     int
	sig      string
	supers   []*Class
	methods  map[string]Method
	required *set.TreeSet[string]
}

// Ops is a candidate dictionary: operation name to implementation.
type Ops map[string]any

var registry = struct {
	sync.Mutex
	classes map[string]*Class
}{classes: make(map[string]*Class)}

// LookupClass returns the declared class with the given name.
func LookupClass(name string) (*Class, bool) {
	registry.Lock()
	defer registry.Unlock()
	c, ok := registry.classes[name]
	return c, ok
}

// DeclareClass parses a class signature and registers the class.
// Superclasses named in the signature must already be declared, and a class
// name can only be declared once.
//
// Example:
//
//	Functor<f> => (^a, b. {
//	  ap: (f<(a => b)> => f<a> => f<b>)
//	}) => Apply<f>
func DeclareClass(sig string) (*Class, error) {
	decl, err := parseClassSig(sig)
	if err != nil {
		return nil, err
	}
	fail := func(format string, args ...any) (*Class, error) {
		return nil, &SignatureError{Sig: sig, Reason: fmt.Sprintf(format, args...)}
	}

	registry.Lock()
	defer registry.Unlock()

	if _, dup := registry.classes[decl.head.name]; dup {
		return fail("class %s already declared", decl.head.name)
	}
	c := &Class{
		name:     decl.head.name,
		param:    decl.head.param,
		kind:     -1,
		sig:      sig,
		methods:  make(map[string]Method, len(decl.methods)),
		required: set.NewTreeSet[string](cmp.Compare[string]),
	}
	for _, ref := range decl.constraints {
		super, ok := registry.classes[ref.name]
		if !ok {
			return fail("unknown superclass %s", ref.name)
		}
		c.supers = append(c.supers, super)
	}
	for _, m := range decl.methods {
		if !c.required.Insert(m.Name) {
			return fail("duplicate operation %s", m.Name)
		}
		c.methods[m.Name] = m
		k, found, err := paramKind(m.Shape, c.param)
		if err != nil {
			return fail("%s: %v", m.Name, err)
		}
		if !found {
			continue
		}
		if c.kind >= 0 && c.kind != k {
			return fail("%s: %s is applied inconsistently", m.Name, c.param)
		}
		c.kind = k
	}
	for _, super := range c.supers {
		if c.kind < 0 {
			c.kind = super.kind
		}
		if super.kind != c.kind {
			return fail("superclass %s has kind %d, want %d", super.name, super.kind, c.kind)
		}
	}
	if c.kind < 0 {
		c.kind = 0
	}
	registry.classes[c.name] = c

	logger().Debug("declared type class",
		zap.String("class", c.name),
		zap.String("param", c.param),
		zap.Int("kind", c.kind),
		zap.Strings("ops", c.required.Slice()))
	return c, nil
}

// MustDeclareClass is like DeclareClass but panics on error.
// It is meant for package-level class declarations.
func MustDeclareClass(sig string) *Class {
	c, err := DeclareClass(sig)
	if err != nil {
		panic(err)
	}
	return c
}

// Name returns the class name.
func (c *Class) Name() string { return c.name }

// Param returns the name of the class's type parameter.
func (c *Class) Param() string { return c.param }

// Kind returns the number of type arguments the class parameter takes:
// 1 for a type constructor such as a list, 0 for a plain type.
func (c *Class) Kind() int { return c.kind }

// Signature returns the text the class was declared from.
func (c *Class) Signature() string { return c.sig }

// Supers returns the direct superclasses in declaration order.
func (c *Class) Supers() []*Class { return append([]*Class(nil), c.supers...) }

// Methods returns the required operations sorted by name.
func (c *Class) Methods() []Method {
	ms := make([]Method, 0, len(c.methods))
	for _, name := range c.required.Slice() {
		ms = append(ms, c.methods[name])
	}
	return ms
}

// Method returns the required operation with the given name.
func (c *Class) Method(name string) (Method, bool) {
	m, ok := c.methods[name]
	return m, ok
}

func (c *Class) String() string { return c.name + "<" + c.param + ">" }

// New validates ops against the class and returns the dictionary of
// typeName. Every declared superclass must be supplied as a dictionary for
// the same type. Operations are checked to be present and to be functions;
// with Checking enabled their parameter count must also match the shape.
//
// The returned dictionary holds exactly the supplied values.
func (c *Class) New(typeName string, ops Ops, supers ...*Dict) (*Dict, error) {
	d, err := c.build(typeName, ops, supers)
	if err != nil {
		logger().Debug("rejected dictionary",
			zap.String("class", c.name),
			zap.String("type", typeName),
			zap.Error(err))
		return nil, err
	}
	logger().Debug("constructed dictionary",
		zap.String("class", c.name),
		zap.String("type", typeName))
	return d, nil
}

func (c *Class) build(typeName string, ops Ops, supers []*Dict) (*Dict, error) {
	violation := func(op, expected, actual string) error {
		return &ShapeError{Class: c.name, Type: typeName, Op: op, Expected: expected, Actual: actual}
	}

	for _, name := range c.required.Slice() {
		m := c.methods[name]
		op, ok := ops[name]
		if !ok {
			return nil, violation(name, m.Shape, "missing operation")
		}
		v := reflect.ValueOf(op)
		if op == nil || v.Kind() != reflect.Func || v.IsNil() {
			return nil, violation(name, m.Shape, fmt.Sprintf("%T", op))
		}
		if Checking() {
			t := v.Type()
			if !t.IsVariadic() && t.NumIn() != m.Arity {
				return nil, violation(name,
					fmt.Sprintf("%s (%d parameters)", m.Shape, m.Arity),
					fmt.Sprintf("%s (%d parameters)", t, t.NumIn()))
			}
		}
	}
	names := make([]string, 0, len(ops))
	for name := range ops {
		names = append(names, name)
	}
	for _, name := range set.TreeSetFrom[string](names, cmp.Compare[string]).Slice() {
		if !c.required.Contains(name) {
			return nil, violation(name, "no such operation in "+c.name, fmt.Sprintf("%T", ops[name]))
		}
	}

	d := &Dict{
		class: c,
		typ:   typeName,
		ops:   make(map[string]any, len(ops)),
	}
	for name, op := range ops {
		d.ops[name] = op
	}
	used := make([]bool, len(supers))
	for _, super := range c.supers {
		var found *Dict
		for i, sd := range supers {
			if sd == nil {
				continue
			}
			if sub, ok := sd.Super(super); ok {
				found, used[i] = sub, true
				break
			}
		}
		if found == nil {
			return nil, violation("", super.name+"<"+typeName+"> dictionary", "none")
		}
		if found.typ != typeName {
			return nil, violation("", super.name+"<"+typeName+"> dictionary", found.String())
		}
		d.supers = append(d.supers, found)
	}
	var extra []string
	for i, sd := range supers {
		if !used[i] {
			extra = append(extra, sd.String())
		}
	}
	if len(extra) > 0 {
		return nil, violation("", "superclasses "+classNames(c.supers), strings.Join(extra, ", "))
	}
	return d, nil
}

func classNames(cs []*Class) string {
	if len(cs) == 0 {
		return "none"
	}
	names := make([]string, len(cs))
	for i, c := range cs {
		names[i] = c.name
	}
	return strings.Join(names, ", ")
}

// Dict is a class instance: the operations of a class for one type
// constructor, together with the dictionaries of its superclasses.
// A Dict is immutable and is shared by reference.
type Dict struct {
	class  *Class
	typ    string
	ops    map[string]any
	supers []*Dict
}

// Class returns the class the dictionary implements.
func (d *Dict) Class() *Class { return d.class }

// Type returns the name of the type the dictionary is for.
func (d *Dict) Type() string { return d.typ }

// Op returns the operation with the given name, searching superclass
// dictionaries when the class itself does not declare it.
func (d *Dict) Op(name string) (any, bool) {
	if op, ok := d.ops[name]; ok {
		return op, true
	}
	for _, sd := range d.supers {
		if op, ok := sd.Op(name); ok {
			return op, true
		}
	}
	return nil, false
}

// Shape returns the declared shape of an operation.
func (d *Dict) Shape(name string) (string, bool) {
	if m, ok := d.class.methods[name]; ok {
		return m.Shape, true
	}
	for _, sd := range d.supers {
		if s, ok := sd.Shape(name); ok {
			return s, true
		}
	}
	return "", false
}

// Super returns the dictionary of class c within d's hierarchy, d included.
func (d *Dict) Super(c *Class) (*Dict, bool) {
	if d.class == c {
		return d, true
	}
	for _, sd := range d.supers {
		if found, ok := sd.Super(c); ok {
			return found, true
		}
	}
	return nil, false
}

// Implements reports whether d is, or contains, a dictionary of class c.
func (d *Dict) Implements(c *Class) bool {
	_, ok := d.Super(c)
	return ok
}

func (d *Dict) String() string {
	if d == nil {
		return "<nil>"
	}
	return d.class.name + "<" + d.typ + ">"
}
