package codegen

import (
	"fmt"
	"strings"

	"github.com/xbind-dev/xbind/internal/codegen/writer"
	"github.com/xbind-dev/xbind/internal/emit"
	"github.com/xbind-dev/xbind/internal/idl"
)

// cppGenerator emits one C++ header per declaration.
type cppGenerator struct {
	generator
}

func newCppGenerator(cfg *Config, sess *emit.Session) *cppGenerator {
	return &cppGenerator{generator{cfg, sess}}
}

var cppPrimitives = map[string]string{
	"bool":   "bool",
	"i8":     "int8_t",
	"i16":    "int16_t",
	"i32":    "int32_t",
	"i64":    "int64_t",
	"f32":    "float",
	"f64":    "double",
	"string": "std::string",
	"binary": "std::vector<uint8_t>",
}

func (g *cppGenerator) typeName(t string) string {
	if mapped, ok := cppPrimitives[t]; ok {
		return mapped
	}
	return g.cfg.Cpp.Ident.Type(t)
}

func (g *cppGenerator) headerDir() string {
	return orDefault(g.cfg.Cpp.HeaderOutDir, g.cfg.Cpp.OutDir)
}

func (g *cppGenerator) headerName(name idl.Ident) string {
	return name.String() + ".hpp"
}

func (g *cppGenerator) writeHeader(d *idl.TypeDecl, body func(w *writer.Writer)) error {
	return g.sess.CreateFile(g.headerDir(), g.headerName(d.Name), emit.DefaultWriter, func(w *writer.Writer) error {
		w.WriteLine("// AUTOGENERATED FILE - DO NOT MODIFY!")
		w.WriteLinef("// This file was generated from %s", d.Origin)
		w.WriteLine("#pragma once")
		w.BlankLine()
		body(w)
		return w.Err()
	})
}

func (g *cppGenerator) GenerateEnum(d *idl.TypeDecl, e *idl.Enum) error {
	ident := g.cfg.Cpp.Ident
	ty := ident.EnumType(d.Name.String())

	return g.writeHeader(d, func(w *writer.Writer) {
		w.WriteLine("#include <cstdint>")
		w.BlankLine()
		WrapNamespace(w, g.cfg.Cpp.Namespace, func() {
			WriteDoc(w, d.Doc)
			w.WriteBlock(fmt.Sprintf("enum class %s : int {", ty), "};", func() {
				for _, v := range EnumVariants(e) {
					WriteDoc(w, v.Option.Doc)
					member := ident.EnumMember(v.Option.Name.String())
					if v.HasValue {
						w.WriteLinef("%s = %d,", member, v.Value)
					} else {
						w.WriteLinef("%s,", member)
					}
				}
			})
			if e.Flags {
				w.BlankLine()
				for _, op := range []string{"|", "&", "^"} {
					w.WriteBlock(fmt.Sprintf("constexpr %s operator%s(%s lhs, %s rhs) noexcept {", ty, op, ty, ty), "}", func() {
						w.WriteLinef("return static_cast<%s>(static_cast<int>(lhs) %s static_cast<int>(rhs));", ty, op)
					})
				}
			}
		})
	})
}

func (g *cppGenerator) GenerateRecord(d *idl.TypeDecl, r *idl.Record) error {
	ident := g.cfg.Cpp.Ident
	ty := ident.Type(d.Name.String())

	return g.writeHeader(d, func(w *writer.Writer) {
		w.WriteLine("#include <cstdint>")
		w.WriteLine("#include <string>")
		w.WriteLine("#include <utility>")
		w.WriteLine("#include <vector>")
		w.BlankLine()
		WrapNamespace(w, g.cfg.Cpp.Namespace, func() {
			WriteDoc(w, d.Doc)
			g.writeTemplateLine(w, d.TypeParams)
			w.WriteBlock(fmt.Sprintf("struct %s final {", ty), "};", func() {
				for _, f := range r.Fields {
					WriteDoc(w, f.Doc)
					w.WriteLinef("%s %s;", g.typeName(f.Type), ident.Field(f.Name.String()))
				}
				if len(r.Fields) > 0 {
					w.BlankLine()
					g.writeConstructor(w, ty, r)
				}
			})
		})
	})
}

func (g *cppGenerator) GenerateInterface(d *idl.TypeDecl, i *idl.Interface) error {
	ident := g.cfg.Cpp.Ident
	ty := ident.Type(d.Name.String())

	return g.writeHeader(d, func(w *writer.Writer) {
		w.WriteLine("#include <cstdint>")
		w.WriteLine("#include <string>")
		w.WriteLine("#include <vector>")
		w.BlankLine()
		WrapNamespace(w, g.cfg.Cpp.Namespace, func() {
			WriteDoc(w, d.Doc)
			g.writeTemplateLine(w, d.TypeParams)
			w.WriteBlock(fmt.Sprintf("class %s {", ty), "};", func() {
				w.Dedent()
				w.WriteLine("public:")
				w.Indent()
				w.WriteLinef("virtual ~%s() = default;", ty)
				for _, m := range i.Methods {
					w.BlankLine()
					WriteMethodDoc(w, m.Doc, m.Params, ident.Local)
					w.WriteLine(g.methodDecl(m))
				}
			})
		})
	})
}

func (g *cppGenerator) methodDecl(m idl.Method) string {
	ident := g.cfg.Cpp.Ident
	params := make([]string, len(m.Params))
	for i, p := range m.Params {
		params[i] = fmt.Sprintf("%s %s", g.typeName(p.Type), ident.Local(p.Name.String()))
	}

	ret := "void"
	if m.Ret != "" {
		ret = g.typeName(m.Ret)
	}

	decl := fmt.Sprintf("%s %s(%s)", ret, ident.Method(m.Name.String()), strings.Join(params, ", "))
	switch {
	case m.Static:
		return "static " + decl + ";"
	case m.Const:
		return "virtual " + decl + " const = 0;"
	default:
		return "virtual " + decl + " = 0;"
	}
}

func (g *cppGenerator) writeConstructor(w *writer.Writer, ty string, r *idl.Record) {
	ident := g.cfg.Cpp.Ident
	args := make([]string, len(r.Fields))
	inits := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		field := ident.Field(f.Name.String())
		local := ident.Local(f.Name.String() + "_")
		args[i] = fmt.Sprintf("%s %s", g.typeName(f.Type), local)
		inits[i] = fmt.Sprintf("%s(std::move(%s))", field, local)
	}

	WriteAlignedCall(w, ty+"(", args, ")")
	w.Newline()
	w.WriteLinef("    : %s {}", strings.Join(inits, ", "))
}

func (g *cppGenerator) writeTemplateLine(w *writer.Writer, params []idl.Ident) {
	if len(params) == 0 {
		return
	}
	decls := make([]string, len(params))
	for i, p := range params {
		decls[i] = "typename " + g.cfg.Cpp.Ident.TypeParam(p.String())
	}
	w.WriteLinef("template <%s>", strings.Join(decls, ", "))
}
