package codegen

import (
	"strings"

	"github.com/xbind-dev/xbind/internal/codegen/writer"
	"github.com/xbind-dev/xbind/internal/emit"
	"github.com/xbind-dev/xbind/internal/idl"
)

// pyGenerator emits one Python module per declaration.
type pyGenerator struct {
	generator
}

func newPyGenerator(cfg *Config, sess *emit.Session) *pyGenerator {
	return &pyGenerator{generator{cfg, sess}}
}

func (g *pyGenerator) writeFile(d *idl.TypeDecl, body func(w *writer.Writer)) error {
	return g.sess.CreateFile(g.cfg.Py.OutDir, d.Name.String()+".py", emit.DefaultWriter, func(w *writer.Writer) error {
		w.WriteLine("# AUTOGENERATED FILE - DO NOT MODIFY!")
		w.WriteLinef("# This file was generated from %s", d.Origin)
		w.BlankLine()
		body(w)
		return w.Err()
	})
}

func writePyDocstring(w *writer.Writer, doc []string) {
	switch len(doc) {
	case 0:
	case 1:
		w.WriteLinef(`"""%s"""`, doc[0])
	default:
		w.WriteLine(`"""`)
		for _, line := range doc {
			w.WriteLine(line)
		}
		w.WriteLine(`"""`)
	}
}

func (g *pyGenerator) GenerateEnum(d *idl.TypeDecl, e *idl.Enum) error {
	ident := g.cfg.Py.Ident
	base := "enum.IntEnum"
	if e.Flags {
		base = "enum.IntFlag"
	}

	return g.writeFile(d, func(w *writer.Writer) {
		w.WriteLine("import enum")
		w.BlankLine()
		w.BlankLine()
		w.WriteLinef("class %s(%s):", ident.EnumType(d.Name.String()), base)
		w.Indent()
		writePyDocstring(w, d.Doc)
		next := 0
		for _, v := range EnumVariants(e) {
			member := ident.EnumMember(v.Option.Name.String())
			if v.HasValue {
				w.WriteLinef("%s = %d", member, v.Value)
			} else {
				w.WriteLinef("%s = %d", member, next)
				next++
			}
		}
		w.Dedent()
	})
}

func (g *pyGenerator) GenerateRecord(d *idl.TypeDecl, r *idl.Record) error {
	ident := g.cfg.Py.Ident

	return g.writeFile(d, func(w *writer.Writer) {
		w.WriteLinef("class %s:", ident.Type(d.Name.String()))
		w.Indent()
		writePyDocstring(w, d.Doc)

		args := make([]string, 0, len(r.Fields)+1)
		args = append(args, "self")
		for _, f := range r.Fields {
			args = append(args, ident.Local(f.Name.String()))
		}
		w.WriteLinef("def __init__(%s):", strings.Join(args, ", "))
		w.Indent()
		if len(r.Fields) == 0 {
			w.WriteLine("pass")
		}
		for _, f := range r.Fields {
			field := ident.Field(f.Name.String())
			w.WriteLinef("self.%s = %s", field, ident.Local(f.Name.String()))
		}
		w.Dedent()
		w.Dedent()
	})
}

func (g *pyGenerator) GenerateInterface(d *idl.TypeDecl, i *idl.Interface) error {
	ident := g.cfg.Py.Ident

	return g.writeFile(d, func(w *writer.Writer) {
		w.WriteLine("import abc")
		w.BlankLine()
		w.BlankLine()
		w.WriteLinef("class %s(abc.ABC):", ident.Type(d.Name.String()))
		w.Indent()
		writePyDocstring(w, d.Doc)
		if len(i.Methods) == 0 {
			w.WriteLine("pass")
		}
		for k, m := range i.Methods {
			if k > 0 {
				w.BlankLine()
			}
			args := []string{"self"}
			if m.Static {
				args = args[:0]
			}
			for _, p := range m.Params {
				args = append(args, ident.Local(p.Name.String()))
			}
			if m.Static {
				w.WriteLine("@staticmethod")
			} else {
				w.WriteLine("@abc.abstractmethod")
			}
			w.WriteLinef("def %s(%s):", ident.Method(m.Name.String()), strings.Join(args, ", "))
			w.Indent()
			writePyDocstring(w, RewriteParamDoc(m.Doc, m.Params, ident.Local))
			w.WriteLine("raise NotImplementedError")
			w.Dedent()
		}
		w.Dedent()
	})
}
