// Package symtab implements MatLang's flat, single-scope symbol table: a
// name-to-Variable environment populated by both the parser (user
// declarations) and the code generator (synthetic temporaries).
package symtab

import (
	"fmt"

	"github.com/maruel/natural"
)

// Kind is the coarse type of a MatLang variable.
type Kind int

const (
	// Scalar variables always carry Rows == Cols == 1.
	Scalar Kind = iota
	// Matrix variables carry arbitrary Rows/Cols; a vector is a Matrix with
	// Cols == 1.
	Matrix
)

func (k Kind) String() string {
	if k == Scalar {
		return "Scalar"
	}
	return "Matrix"
}

// Variable is a declared or synthesized name together with its kind and
// shape. Scalars carry Rows == Cols == 1; vectors are matrices with
// Cols == 1.
type Variable struct {
	Name string
	Kind Kind
	Rows int
	Cols int
}

// NewScalar builds a Scalar Variable with dimensions (1, 1).
func NewScalar(name string) Variable {
	return Variable{Name: name, Kind: Scalar, Rows: 1, Cols: 1}
}

// NewMatrix builds a Matrix Variable with the given dimensions.
func NewMatrix(name string, rows, cols int) Variable {
	return Variable{Name: name, Kind: Matrix, Rows: rows, Cols: cols}
}

func (v Variable) String() string {
	return fmt.Sprintf("%s [%d, %d]", v.Kind, v.Rows, v.Cols)
}

// ErrAlreadyDeclared is returned by Insert/InsertUser/InsertTemp when name
// already exists in the table.
type ErrAlreadyDeclared struct {
	Name string
}

func (e *ErrAlreadyDeclared) Error() string {
	return fmt.Sprintf("%s is already declared", e.Name)
}

// ErrNotDeclared is returned by Lookup when name does not exist in the
// table.
type ErrNotDeclared struct {
	Name string
}

func (e *ErrNotDeclared) Error() string {
	return fmt.Sprintf("%s is not declared", e.Name)
}

// Table is MatLang's symbol table: a single flat scope, global for the
// whole program. There is no nesting and no removal — entries live for the
// duration of compilation.
type Table struct {
	variables map[string]Variable
}

// New creates an empty symbol table.
func New() *Table {
	return &Table{variables: make(map[string]Variable)}
}

// Insert adds variable to the table, failing with ErrAlreadyDeclared if its
// name is already present. Prefer InsertUser/InsertTemp at call sites so
// provenance stays traceable; Insert is the shared implementation.
func (t *Table) Insert(v Variable) error {
	if _, exists := t.variables[v.Name]; exists {
		return &ErrAlreadyDeclared{Name: v.Name}
	}
	t.variables[v.Name] = v
	return nil
}

// InsertUser registers a user-declared variable (the parser's entry
// point).
func (t *Table) InsertUser(v Variable) error {
	return t.Insert(v)
}

// InsertTemp registers a generator-synthesized temporary (the code
// generator's entry point). Returns the stored Variable for convenience at
// call sites that immediately reference it.
func (t *Table) InsertTemp(v Variable) (Variable, error) {
	if err := t.Insert(v); err != nil {
		return Variable{}, err
	}
	return v, nil
}

// Lookup returns the variable registered under name, failing with
// ErrNotDeclared if it is absent.
func (t *Table) Lookup(name string) (Variable, error) {
	v, exists := t.variables[name]
	if !exists {
		return Variable{}, &ErrNotDeclared{Name: name}
	}
	return v, nil
}

// Names returns every declared name in natural (numeric-aware) order, so
// that a temporary like "_E4_10" sorts after "_E4_2" rather than before it.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.variables))
	for name := range t.variables {
		names = append(names, name)
	}
	natural.Sort(names)
	return names
}
