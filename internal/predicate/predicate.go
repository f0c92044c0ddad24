// Package predicate compiles and evaluates the boolean expressions used to
// filter message streams.
//
// Expressions use the expr language restricted to a side-effect free subset:
// literals, field identifiers, member and index access, arrays, conditionals
// and unary/binary operators. Function calls, builtins, closures and regular
// expression matching are rejected at compile time. Message fields are
// visible as identifiers; msg names the whole message.
package predicate

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/ast"
	"github.com/expr-lang/expr/parser"
	"github.com/expr-lang/expr/vm"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/SkyTruth/gpsdio/internal/gpserr"
)

// MessageVar is the identifier bound to the whole message.
const MessageVar = "msg"

// DefaultCacheSize is the number of compiled predicates kept by the
// package-level cache.
const DefaultCacheSize = 128

var (
	// ErrSyntax is returned for expressions that do not parse.
	ErrSyntax = fmt.Errorf("%w: invalid filter expression", gpserr.ErrConfiguration)

	// ErrForbidden is returned for expressions using constructs outside the
	// allowed subset.
	ErrForbidden = fmt.Errorf("%w: forbidden construct in filter expression", gpserr.ErrConfiguration)
)

var (
	allowedUnary = map[string]bool{
		"not": true, "!": true, "-": true, "+": true,
	}
	allowedBinary = map[string]bool{
		"==": true, "!=": true, "<": true, "<=": true, ">": true, ">=": true,
		"and": true, "&&": true, "or": true, "||": true,
		"in": true, "contains": true, "startsWith": true, "endsWith": true,
		"+": true, "-": true, "*": true, "/": true, "%": true, "**": true, "^": true,
		"..": true, "??": true,
	}
)

// Predicate is a compiled filter expression. It is safe for concurrent use.
type Predicate struct {
	source  string
	program *vm.Program
	idents  []string
}

// Source returns the expression the predicate was compiled from.
func (p *Predicate) Source() string {
	return p.source
}

// Match evaluates the predicate against msg. A predicate referring to a field
// msg lacks does not match. Evaluation errors are returned.
func (p *Predicate) Match(msg map[string]any) (bool, error) {
	for _, name := range p.idents {
		if _, ok := msg[name]; !ok {
			return false, nil
		}
	}

	env := make(map[string]any, len(msg)+1)
	for k, v := range msg {
		env[k] = v
	}
	env[MessageVar] = msg

	out, err := expr.Run(p.program, env)
	if err != nil {
		return false, fmt.Errorf("evaluating %q: %w", p.source, err)
	}
	return Truthy(out), nil
}

// Cache compiles predicates and keeps the most recently used ones.
type Cache struct {
	programs *lru.Cache[string, *Predicate]
}

// NewCache creates a cache holding up to size predicates.
func NewCache(size int) (*Cache, error) {
	c, err := lru.New[string, *Predicate](size)
	if err != nil {
		return nil, err
	}
	return &Cache{programs: c}, nil
}

// Compile returns the predicate for src, compiling it on a cache miss.
func (c *Cache) Compile(src string) (*Predicate, error) {
	if p, ok := c.programs.Get(src); ok {
		return p, nil
	}
	p, err := compile(src)
	if err != nil {
		return nil, err
	}
	c.programs.Add(src, p)
	return p, nil
}

// Len returns the number of cached predicates.
func (c *Cache) Len() int {
	return c.programs.Len()
}

var defaultCache = mustNewCache(DefaultCacheSize)

func mustNewCache(size int) *Cache {
	c, err := NewCache(size)
	if err != nil {
		panic(fmt.Sprintf("predicate: creating cache: %v", err))
	}
	return c
}

// Compile compiles src using the package-level cache.
func Compile(src string) (*Predicate, error) {
	return defaultCache.Compile(src)
}

func compile(src string) (*Predicate, error) {
	tree, err := parser.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrSyntax, src, err)
	}

	v := &checker{seen: make(map[string]bool)}
	ast.Walk(&tree.Node, v)
	if v.err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrForbidden, src, v.err)
	}

	program, err := expr.Compile(src,
		expr.AllowUndefinedVariables(),
		expr.DisableAllBuiltins(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrSyntax, src, err)
	}

	return &Predicate{source: src, program: program, idents: v.idents}, nil
}

// checker rejects nodes outside the allowed subset and collects the field
// identifiers an expression refers to.
type checker struct {
	err    error
	idents []string
	seen   map[string]bool
}

func (c *checker) Visit(node *ast.Node) {
	if c.err != nil {
		return
	}
	switch n := (*node).(type) {
	case *ast.NilNode, *ast.IntegerNode, *ast.FloatNode, *ast.BoolNode,
		*ast.StringNode, *ast.ConstantNode, *ast.ArrayNode, *ast.ConditionalNode,
		*ast.MemberNode, *ast.SliceNode, *ast.ChainNode:
	case *ast.IdentifierNode:
		if n.Value != MessageVar && !c.seen[n.Value] {
			c.seen[n.Value] = true
			c.idents = append(c.idents, n.Value)
		}
	case *ast.UnaryNode:
		if !allowedUnary[n.Operator] {
			c.err = fmt.Errorf("operator %q", n.Operator)
		}
	case *ast.BinaryNode:
		if !allowedBinary[n.Operator] {
			c.err = fmt.Errorf("operator %q", n.Operator)
		}
	default:
		c.err = errors.New(nodeName(n))
	}
}

func nodeName(n ast.Node) string {
	t := reflect.TypeOf(n)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

// Truthy reports whether v counts as true: false, nil, numeric zero and empty
// strings, slices and maps are false; everything else is true.
func Truthy(v any) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() != 0
	case reflect.Pointer, reflect.Interface:
		return !rv.IsNil()
	}
	return true
}
