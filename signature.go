// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scriptum

import (
	"errors"
	"strings"
)

// Class signatures have the form
//
//	Super<f> => ... => (^a, b. { op: shape, ... }) => Name<f>
//
// Shapes are kept as text. Only the top-level arrows of a shape (its arity)
// and the applications of the class parameter (its kind) are interpreted.

var errUnbalanced = errors.New("unbalanced brackets")

// classRef is an application Name<param>.
type classRef struct {
	name  string
	param string
}

type classDecl struct {
	head        classRef
	constraints []classRef
	quantified  []string
	methods     []Method
}

func parseClassSig(src string) (classDecl, error) {
	var decl classDecl
	fail := func(reason string) (classDecl, error) {
		return classDecl{}, &SignatureError{Sig: src, Reason: reason}
	}

	parts, err := splitTop(src, "=>")
	if err != nil {
		return fail(err.Error())
	}
	if len(parts) < 2 {
		return fail("expected (record) => Name<param>")
	}
	head, ok := parseRef(parts[len(parts)-1])
	if !ok {
		return fail("malformed class head " + strings.TrimSpace(parts[len(parts)-1]))
	}
	decl.head = head
	for _, p := range parts[:len(parts)-2] {
		ref, ok := parseRef(p)
		if !ok {
			return fail("malformed constraint " + strings.TrimSpace(p))
		}
		if ref.param != head.param {
			return fail("constraint " + ref.name + " is not over " + head.param)
		}
		decl.constraints = append(decl.constraints, ref)
	}

	body := stripParens(parts[len(parts)-2])
	if strings.HasPrefix(body, "^") {
		brace := strings.IndexByte(body, '{')
		dot := strings.IndexByte(body, '.')
		if dot < 0 || (brace >= 0 && dot > brace) {
			return fail("quantifier without '.'")
		}
		for _, v := range strings.Split(body[1:dot], ",") {
			v = strings.TrimSpace(v)
			if !isIdentifier(v) {
				return fail("bad type variable " + v)
			}
			decl.quantified = append(decl.quantified, v)
		}
		body = strings.TrimSpace(body[dot+1:])
	}
	if !strings.HasPrefix(body, "{") || matchClose(body, 0) != len(body)-1 {
		return fail("expected operation record {...}")
	}
	inner := strings.TrimSpace(body[1 : len(body)-1])
	if inner == "" {
		return decl, nil
	}
	fields, err := splitTop(inner, ",")
	if err != nil {
		return fail(err.Error())
	}
	for _, field := range fields {
		name, shape, ok := strings.Cut(field, ":")
		name, shape = strings.TrimSpace(name), strings.TrimSpace(shape)
		if !ok || !isIdentifier(name) || shape == "" {
			return fail("malformed operation " + strings.TrimSpace(field))
		}
		arrows, err := splitTop(stripParens(shape), "=>")
		if err != nil {
			return fail(name + ": " + err.Error())
		}
		decl.methods = append(decl.methods, Method{Name: name, Shape: shape, Arity: len(arrows) - 1})
	}
	return decl, nil
}

// parseRef parses Name<param>.
func parseRef(s string) (classRef, bool) {
	s = strings.TrimSpace(s)
	lt := strings.IndexByte(s, '<')
	if lt <= 0 || !strings.HasSuffix(s, ">") {
		return classRef{}, false
	}
	ref := classRef{
		name:  strings.TrimSpace(s[:lt]),
		param: strings.TrimSpace(s[lt+1 : len(s)-1]),
	}
	return ref, isIdentifier(ref.name) && isIdentifier(ref.param)
}

// splitTop splits s at every sep ("=>" or ",") outside of brackets.
// The arrow "=>" is never mistaken for a closing angle bracket.
func splitTop(s, sep string) ([]string, error) {
	var parts []string
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		if strings.HasPrefix(s[i:], "=>") {
			if sep == "=>" && depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 2
			}
			i++
			continue
		}
		switch s[i] {
		case '(', '[', '{', '<':
			depth++
		case ')', ']', '}', '>':
			depth--
			if depth < 0 {
				return nil, errUnbalanced
			}
		case ',':
			if sep == "," && depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, errUnbalanced
	}
	return append(parts, s[start:]), nil
}

// matchClose returns the index of the bracket closing the one at open,
// or -1.
func matchClose(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		if strings.HasPrefix(s[i:], "=>") {
			i++
			continue
		}
		switch s[i] {
		case '(', '[', '{', '<':
			depth++
		case ')', ']', '}', '>':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// stripParens removes redundant parentheses around the whole of s.
func stripParens(s string) string {
	s = strings.TrimSpace(s)
	for strings.HasPrefix(s, "(") && matchClose(s, 0) == len(s)-1 {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	return s
}

// paramKind returns the number of type arguments param is applied to in
// shape. found is false when param does not occur.
func paramKind(shape, param string) (kind int, found bool, err error) {
	kind = -1
	for i := 0; i+len(param) <= len(shape); i++ {
		if !strings.HasPrefix(shape[i:], param) {
			continue
		}
		if i > 0 && isIdentByte(shape[i-1]) {
			continue
		}
		j := i + len(param)
		if j < len(shape) && isIdentByte(shape[j]) {
			continue
		}
		for j < len(shape) && shape[j] == ' ' {
			j++
		}
		k := 0
		if j < len(shape) && shape[j] == '<' {
			end := matchClose(shape, j)
			if end < 0 {
				return 0, false, errUnbalanced
			}
			args, err := splitTop(shape[j+1:end], ",")
			if err != nil {
				return 0, false, err
			}
			k = len(args)
		}
		if kind >= 0 && kind != k {
			return 0, false, errors.New(param + " is applied inconsistently")
		}
		kind = k
	}
	if kind < 0 {
		return 0, false, nil
	}
	return kind, true, nil
}

func isIdentifier(s string) bool {
	if s == "" || (s[0] >= '0' && s[0] <= '9') {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isIdentByte(s[i]) {
			return false
		}
	}
	return true
}

func isIdentByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}
