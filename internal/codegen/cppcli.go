package codegen

import (
	"fmt"
	"strings"

	"github.com/xbind-dev/xbind/internal/codegen/writer"
	"github.com/xbind-dev/xbind/internal/emit"
	"github.com/xbind-dev/xbind/internal/idl"
)

// cppCliGenerator emits C++/CLI wrapper headers for .NET consumers.
type cppCliGenerator struct {
	generator
}

func newCppCliGenerator(cfg *Config, sess *emit.Session) *cppCliGenerator {
	return &cppCliGenerator{generator{cfg, sess}}
}

var cppCliPrimitives = map[string]string{
	"bool":   "bool",
	"i8":     "char",
	"i16":    "short",
	"i32":    "int",
	"i64":    "__int64",
	"f32":    "float",
	"f64":    "double",
	"string": "System::String^",
	"binary": "array<System::Byte>^",
}

func (g *cppCliGenerator) typeName(t string) string {
	if mapped, ok := cppCliPrimitives[t]; ok {
		return mapped
	}
	return g.cfg.CppCli.Ident.Type(t) + "^"
}

func (g *cppCliGenerator) writeHeader(d *idl.TypeDecl, body func(w *writer.Writer)) error {
	return g.sess.CreateFile(g.cfg.CppCli.OutDir, d.Name.String()+".hpp", emit.DefaultWriter, func(w *writer.Writer) error {
		w.WriteLine("// AUTOGENERATED FILE - DO NOT MODIFY!")
		w.WriteLinef("// This file was generated from %s", d.Origin)
		w.WriteLine("#pragma once")
		w.BlankLine()
		body(w)
		return w.Err()
	})
}

func (g *cppCliGenerator) GenerateEnum(d *idl.TypeDecl, e *idl.Enum) error {
	ident := g.cfg.CppCli.Ident
	ty := ident.EnumType(d.Name.String())

	return g.writeHeader(d, func(w *writer.Writer) {
		WrapNamespace(w, g.cfg.CppCli.Namespace, func() {
			WriteDoc(w, d.Doc)
			if e.Flags {
				w.WriteLine("[System::Flags]")
			}
			w.WriteBlock(fmt.Sprintf("public enum class %s {", ty), "};", func() {
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
		})
	})
}

func (g *cppCliGenerator) GenerateRecord(d *idl.TypeDecl, r *idl.Record) error {
	ident := g.cfg.CppCli.Ident
	ty := ident.Type(d.Name.String())

	return g.writeHeader(d, func(w *writer.Writer) {
		WrapNamespace(w, g.cfg.CppCli.Namespace, func() {
			WriteDoc(w, d.Doc)
			w.WriteBlock(fmt.Sprintf("public ref class %s sealed {", ty), "};", func() {
				w.Dedent()
				w.WriteLine("public:")
				w.Indent()
				for _, f := range r.Fields {
					WriteDoc(w, f.Doc)
					w.WriteLinef("property %s %s;", g.typeName(f.Type), ident.Field(f.Name.String()))
				}
			})
		})
	})
}

func (g *cppCliGenerator) GenerateInterface(d *idl.TypeDecl, i *idl.Interface) error {
	ident := g.cfg.CppCli.Ident
	ty := ident.Type(d.Name.String())

	return g.writeHeader(d, func(w *writer.Writer) {
		WrapNamespace(w, g.cfg.CppCli.Namespace, func() {
			WriteDoc(w, d.Doc)
			w.WriteBlock(fmt.Sprintf("public ref class %s abstract {", ty), "};", func() {
				w.Dedent()
				w.WriteLine("public:")
				w.Indent()
				for _, m := range i.Methods {
					WriteMethodDoc(w, m.Doc, m.Params, ident.Local)
					params := make([]string, len(m.Params))
					for i, p := range m.Params {
						params[i] = fmt.Sprintf("%s %s", g.typeName(p.Type), ident.Local(p.Name.String()))
					}
					ret := "void"
					if m.Ret != "" {
						ret = g.typeName(m.Ret)
					}
					w.WriteLinef("virtual %s %s(%s) abstract;", ret, ident.Method(m.Name.String()), strings.Join(params, ", "))
				}
			})
		})
	})
}
