// Package idl holds the declaration model consumed by the code generators.
// Parsing and type checking happen upstream; everything here is assumed
// well formed.
package idl

// Ident is a canonical identifier in lower_snake form, words separated by
// underscores. Target casing is applied explicitly at emission sites.
type Ident string

// String returns the canonical spelling.
func (i Ident) String() string { return string(i) }

// TypeDecl is one top-level declaration from the IDL file.
type TypeDecl struct {
	// Name is the canonical identifier of the declared type.
	Name Ident `json:"name"`

	// Origin is the source file the declaration came from, for provenance
	// comments in generated output.
	Origin string `json:"origin"`

	// Local is false for declarations pulled in from an imported module.
	// Only local declarations produce output.
	Local bool `json:"local"`

	// Doc holds the declaration's doc comment, one entry per line.
	Doc []string `json:"doc"`

	// TypeParams lists generic type parameter names. Only records and
	// interfaces may carry them.
	TypeParams []Ident `json:"typeParams"`

	Body DeclBody `json:"-"`
}

// DeclBody is the closed set of declaration kinds: Enum, Record or
// Interface. The set is deliberately small; adding a kind touches every
// backend.
type DeclBody interface {
	isDeclBody()
}

// FlagRole marks an enum option with a special meaning in bit-flag enums.
type FlagRole int

const (
	// FlagNone marks an ordinary option.
	FlagNone FlagRole = iota

	// FlagNoFlags marks the option representing the empty flag set.
	FlagNoFlags

	// FlagAllFlags marks the option representing the union of all flags.
	FlagAllFlags
)

// Enum is an enumerated type. When Flags is true the options are meant to be
// combined with bitwise OR and receive power-of-two values.
type Enum struct {
	Options []EnumOption `json:"options"`
	Flags   bool         `json:"flags"`
}

// EnumOption is a single enum member.
type EnumOption struct {
	Name Ident    `json:"name"`
	Doc  []string `json:"doc"`
	Role FlagRole `json:"role"`
}

// Record is a plain data holder passed by value across the language
// boundary.
type Record struct {
	Fields []Field `json:"fields"`
}

// Field is one record field.
type Field struct {
	Name Ident    `json:"name"`
	Type string   `json:"type"`
	Doc  []string `json:"doc"`
}

// Interface is a set of methods callable across the language boundary.
type Interface struct {
	Methods []Method `json:"methods"`
}

// Method is a single interface method.
type Method struct {
	Name   Ident    `json:"name"`
	Params []Param  `json:"params"`
	Ret    string   `json:"ret"`
	Static bool     `json:"static"`
	Const  bool     `json:"const"`
	Doc    []string `json:"doc"`
}

// Param is one method parameter.
type Param struct {
	Name Ident  `json:"name"`
	Type string `json:"type"`
}

func (*Enum) isDeclBody()      {}
func (*Record) isDeclBody()    {}
func (*Interface) isDeclBody() {}
