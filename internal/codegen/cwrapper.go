package codegen

import (
	"fmt"
	"strings"

	"github.com/xbind-dev/xbind/internal/codegen/writer"
	"github.com/xbind-dev/xbind/internal/emit"
	"github.com/xbind-dev/xbind/internal/idl"
)

// supportHeader is the shared C header every wrapper file includes. It is
// requested by each declaration but written only once per session.
const supportHeader = "xbind_support.h"

// cWrapperGenerator emits plain-C wrapper headers over the C++ core, used by
// the CFFI-based Python bridge.
type cWrapperGenerator struct {
	generator
}

func newCWrapperGenerator(cfg *Config, sess *emit.Session) *cWrapperGenerator {
	return &cWrapperGenerator{generator{cfg, sess}}
}

var cPrimitives = map[string]string{
	"bool":   "bool",
	"i8":     "int8_t",
	"i16":    "int16_t",
	"i32":    "int32_t",
	"i64":    "int64_t",
	"f32":    "float",
	"f64":    "double",
	"string": "const char *",
}

func (g *cWrapperGenerator) typeName(t string) string {
	if mapped, ok := cPrimitives[t]; ok {
		return mapped
	}
	return "struct " + g.cfg.CWrapper.Ident.Type(t) + " *"
}

func (g *cWrapperGenerator) headerDir() string {
	return orDefault(g.cfg.CWrapper.HeaderOutDir, g.cfg.CWrapper.OutDir)
}

func (g *cWrapperGenerator) writeSupportHeader() error {
	return g.sess.CreateFileOnce(g.headerDir(), supportHeader, func(w *writer.Writer) error {
		w.WriteLine("// AUTOGENERATED FILE - DO NOT MODIFY!")
		w.WriteLine("#pragma once")
		w.BlankLine()
		w.WriteLine("#include <stdbool.h>")
		w.WriteLine("#include <stdint.h>")
		w.BlankLine()
		w.WriteLine("#ifdef __cplusplus")
		w.WriteLine("#define XBIND_EXTERN_C extern \"C\"")
		w.WriteLine("#else")
		w.WriteLine("#define XBIND_EXTERN_C")
		w.WriteLine("#endif")
		return w.Err()
	})
}

func (g *cWrapperGenerator) writeHeader(d *idl.TypeDecl, body func(w *writer.Writer)) error {
	if err := g.writeSupportHeader(); err != nil {
		return err
	}

	name := d.Name.String()
	guard := g.cfg.CWrapper.Ident.Const(name) + "_H"
	return g.sess.CreateFile(g.headerDir(), name+".h", emit.DefaultWriter, func(w *writer.Writer) error {
		w.WriteLine("// AUTOGENERATED FILE - DO NOT MODIFY!")
		w.WriteLinef("// This file was generated from %s", d.Origin)
		w.WriteLinef("#ifndef %s", guard)
		w.WriteLinef("#define %s", guard)
		w.BlankLine()
		w.WriteLinef("#include %q", g.cfg.CWrapper.IncludePrefix+supportHeader)
		w.BlankLine()
		body(w)
		w.BlankLine()
		w.WriteLinef("#endif  // %s", guard)
		return w.Err()
	})
}

func (g *cWrapperGenerator) GenerateEnum(d *idl.TypeDecl, e *idl.Enum) error {
	ident := g.cfg.CWrapper.Ident
	name := d.Name.String()

	return g.writeHeader(d, func(w *writer.Writer) {
		WriteDoc(w, d.Doc)
		w.WriteBlock(fmt.Sprintf("enum %s {", ident.EnumType(name)), "};", func() {
			for _, v := range EnumVariants(e) {
				member := ident.Const(name) + "_" + ident.EnumMember(v.Option.Name.String())
				if v.HasValue {
					w.WriteLinef("%s = %d,", member, v.Value)
				} else {
					w.WriteLinef("%s,", member)
				}
			}
		})
	})
}

func (g *cWrapperGenerator) GenerateRecord(d *idl.TypeDecl, r *idl.Record) error {
	ident := g.cfg.CWrapper.Ident
	name := d.Name.String()
	ty := ident.Type(name)

	return g.writeHeader(d, func(w *writer.Writer) {
		WriteDoc(w, d.Doc)
		w.WriteLinef("struct %s;", ty)
		w.BlankLine()
		w.WriteLinef("XBIND_EXTERN_C struct %s *%s_create(void);", ty, name)
		w.WriteLinef("XBIND_EXTERN_C void %s_destroy(struct %s *inst);", name, ty)
		for _, f := range r.Fields {
			w.WriteLinef("XBIND_EXTERN_C %s %s_get_%s(const struct %s *inst);", g.typeName(f.Type), name, ident.Field(f.Name.String()), ty)
		}
	})
}

func (g *cWrapperGenerator) GenerateInterface(d *idl.TypeDecl, i *idl.Interface) error {
	ident := g.cfg.CWrapper.Ident
	name := d.Name.String()
	ty := ident.Type(name)

	return g.writeHeader(d, func(w *writer.Writer) {
		WriteDoc(w, d.Doc)
		w.WriteLinef("struct %s;", ty)
		w.BlankLine()
		w.WriteLinef("XBIND_EXTERN_C void %s_destroy(struct %s *inst);", name, ty)
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
			w.WriteLinef("XBIND_EXTERN_C %s %s_%s(%s);", ret, name, ident.Method(m.Name.String()), strings.Join(params, ", "))
		}
	})
}
