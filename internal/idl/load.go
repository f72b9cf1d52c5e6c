package idl

import (
	"encoding/json"
	"fmt"
	"os"
)

// Document is the interchange format produced by the parser/typechecker: a
// single JSON object holding the ordered declaration sequence.
type Document struct {
	Declarations []TypeDecl `json:"declarations"`
}

type declWire struct {
	Name       Ident      `json:"name"`
	Origin     string     `json:"origin"`
	Local      bool       `json:"local"`
	Doc        []string   `json:"doc"`
	TypeParams []Ident    `json:"typeParams"`
	Kind       string     `json:"kind"`
	Enum       *Enum      `json:"enum,omitempty"`
	Record     *Record    `json:"record,omitempty"`
	Interface  *Interface `json:"interface,omitempty"`
}

// UnmarshalJSON decodes the kind-tagged wire form into the closed DeclBody
// variant.
func (td *TypeDecl) UnmarshalJSON(data []byte) error {
	var w declWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	td.Name = w.Name
	td.Origin = w.Origin
	td.Local = w.Local
	td.Doc = w.Doc
	td.TypeParams = w.TypeParams

	switch w.Kind {
	case "enum":
		if w.Enum == nil {
			return fmt.Errorf("declaration %q: missing enum body", w.Name)
		}
		td.Body = w.Enum
	case "record":
		if w.Record == nil {
			return fmt.Errorf("declaration %q: missing record body", w.Name)
		}
		td.Body = w.Record
	case "interface":
		if w.Interface == nil {
			return fmt.Errorf("declaration %q: missing interface body", w.Name)
		}
		td.Body = w.Interface
	default:
		return fmt.Errorf("declaration %q: unknown kind %q", w.Name, w.Kind)
	}

	return nil
}

// MarshalJSON encodes back into the kind-tagged wire form.
func (td TypeDecl) MarshalJSON() ([]byte, error) {
	w := declWire{
		Name:       td.Name,
		Origin:     td.Origin,
		Local:      td.Local,
		Doc:        td.Doc,
		TypeParams: td.TypeParams,
	}

	switch body := td.Body.(type) {
	case *Enum:
		w.Kind, w.Enum = "enum", body
	case *Record:
		w.Kind, w.Record = "record", body
	case *Interface:
		w.Kind, w.Interface = "interface", body
	default:
		return nil, fmt.Errorf("declaration %q: unknown body %T", td.Name, td.Body)
	}

	return json.Marshal(w)
}

// LoadFile reads a parsed AST document from disk.
func LoadFile(path string) ([]TypeDecl, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read AST file: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse AST file: %w", err)
	}

	return doc.Declarations, nil
}
