package codegen

import (
	"fmt"
	"strings"

	"github.com/xbind-dev/xbind/internal/codegen/writer"
	"github.com/xbind-dev/xbind/internal/emit"
	"github.com/xbind-dev/xbind/internal/idl"
)

// pyWrapperGenerator accumulates CFFI definitions for every declaration into
// a single Python module: the file is created once at the start of the run
// and each declaration appends its own cdef block.
type pyWrapperGenerator struct {
	generator
}

func newPyWrapperGenerator(cfg *Config, sess *emit.Session) *pyWrapperGenerator {
	return &pyWrapperGenerator{generator{cfg, sess}}
}

func (g *pyWrapperGenerator) fileName() string {
	return g.cfg.PyWrapper.OutFileBase + ".py"
}

func (g *pyWrapperGenerator) generate(decls []idl.TypeDecl) error {
	hasLocal := false
	for i := range decls {
		if decls[i].Local {
			hasLocal = true
			break
		}
	}
	if !hasLocal {
		return nil
	}

	err := g.sess.CreateFile(g.cfg.PyWrapper.OutDir, g.fileName(), emit.DefaultWriter, func(w *writer.Writer) error {
		w.WriteLine("# AUTOGENERATED FILE - DO NOT MODIFY!")
		w.BlankLine()
		w.WriteLine("from cffi import FFI")
		w.BlankLine()
		w.WriteLine("ffi = FFI()")
		return w.Err()
	})
	if err != nil {
		return err
	}
	return Walk(decls, g)
}

func (g *pyWrapperGenerator) appendCdef(body func(w *writer.Writer)) error {
	return g.sess.AppendToFile(g.cfg.PyWrapper.OutDir, g.fileName(), func(w *writer.Writer) error {
		w.Newline()
		w.WriteLine(`ffi.cdef("""`)
		body(w)
		w.WriteLine(`""")`)
		return w.Err()
	})
}

func (g *pyWrapperGenerator) typeName(t string) string {
	if mapped, ok := cPrimitives[t]; ok {
		return mapped
	}
	return "struct " + g.cfg.CWrapper.Ident.Type(t) + " *"
}

func (g *pyWrapperGenerator) GenerateEnum(d *idl.TypeDecl, e *idl.Enum) error {
	ident := g.cfg.CWrapper.Ident
	name := d.Name.String()

	return g.appendCdef(func(w *writer.Writer) {
		w.WriteLinef("enum %s {", ident.EnumType(name))
		for _, v := range EnumVariants(e) {
			member := ident.Const(name) + "_" + ident.EnumMember(v.Option.Name.String())
			if v.HasValue {
				w.WriteLinef("    %s = %d,", member, v.Value)
			} else {
				w.WriteLinef("    %s,", member)
			}
		}
		w.WriteLine("};")
	})
}

func (g *pyWrapperGenerator) GenerateRecord(d *idl.TypeDecl, r *idl.Record) error {
	ident := g.cfg.CWrapper.Ident
	name := d.Name.String()
	ty := ident.Type(name)

	return g.appendCdef(func(w *writer.Writer) {
		w.WriteLinef("struct %s;", ty)
		w.WriteLinef("struct %s *%s_create(void);", ty, name)
		w.WriteLinef("void %s_destroy(struct %s *inst);", name, ty)
		for _, f := range r.Fields {
			w.WriteLinef("%s %s_get_%s(const struct %s *inst);", g.typeName(f.Type), name, ident.Field(f.Name.String()), ty)
		}
	})
}

func (g *pyWrapperGenerator) GenerateInterface(d *idl.TypeDecl, i *idl.Interface) error {
	ident := g.cfg.CWrapper.Ident
	name := d.Name.String()
	ty := ident.Type(name)

	return g.appendCdef(func(w *writer.Writer) {
		w.WriteLinef("struct %s;", ty)
		w.WriteLinef("void %s_destroy(struct %s *inst);", name, ty)
		for _, m := range i.Methods {
			params := []string{fmt.Sprintf("struct %s *inst", ty)}
			if m.Static {
				params = params[:0]
			}
			for _, p := range m.Params {
				params = append(params, fmt.Sprintf("%s %s", g.typeName(p.Type), ident.Local(p.Name.String())))
			}
			if len(params) == 0 {
				params = append(params, "void")
			}
			ret := "void"
			if m.Ret != "" {
				ret = g.typeName(m.Ret)
			}
			w.WriteLinef("%s %s_%s(%s);", ret, name, ident.Method(m.Name.String()), strings.Join(params, ", "))
		}
	})
}
