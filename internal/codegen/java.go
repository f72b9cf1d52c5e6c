package codegen

import (
	"fmt"
	"strings"

	"github.com/xbind-dev/xbind/internal/codegen/writer"
	"github.com/xbind-dev/xbind/internal/emit"
	"github.com/xbind-dev/xbind/internal/idl"
)

// javaGenerator emits one Java source file per declaration.
type javaGenerator struct {
	generator
}

func newJavaGenerator(cfg *Config, sess *emit.Session) *javaGenerator {
	return &javaGenerator{generator{cfg, sess}}
}

var javaPrimitives = map[string]string{
	"bool":   "boolean",
	"i8":     "byte",
	"i16":    "short",
	"i32":    "int",
	"i64":    "long",
	"f32":    "float",
	"f64":    "double",
	"string": "String",
	"binary": "byte[]",
}

func (g *javaGenerator) typeName(t string) string {
	if mapped, ok := javaPrimitives[t]; ok {
		return mapped
	}
	return g.cfg.Java.Ident.Type(t)
}

func (g *javaGenerator) writeFile(d *idl.TypeDecl, body func(w *writer.Writer)) error {
	name := g.cfg.Java.Ident.Type(d.Name.String()) + ".java"
	return g.sess.CreateFile(g.cfg.Java.OutDir, name, emit.DefaultWriter, func(w *writer.Writer) error {
		w.WriteLine("// AUTOGENERATED FILE - DO NOT MODIFY!")
		w.WriteLinef("// This file was generated from %s", d.Origin)
		if g.cfg.Java.Package != "" {
			w.BlankLine()
			w.WriteLinef("package %s;", g.cfg.Java.Package)
		}
		w.BlankLine()
		body(w)
		return w.Err()
	})
}

func (g *javaGenerator) GenerateEnum(d *idl.TypeDecl, e *idl.Enum) error {
	ident := g.cfg.Java.Ident
	ty := ident.EnumType(d.Name.String())

	return g.writeFile(d, func(w *writer.Writer) {
		WriteDoc(w, d.Doc)
		if e.Flags {
			// Bit-flag enums become int constants so values can be OR-ed.
			w.WriteBlock(fmt.Sprintf("public final class %s {", ty), "}", func() {
				for _, v := range EnumVariants(e) {
					WriteDoc(w, v.Option.Doc)
					w.WriteLinef("public static final int %s = %d;", ident.EnumMember(v.Option.Name.String()), v.Value)
				}
				w.BlankLine()
				w.WriteLinef("private %s() {}", ty)
			})
			return
		}

		w.WriteBlock(fmt.Sprintf("public enum %s {", ty), "}", func() {
			for _, v := range EnumVariants(e) {
				WriteDoc(w, v.Option.Doc)
				w.WriteLinef("%s,", ident.EnumMember(v.Option.Name.String()))
			}
		})
	})
}

func (g *javaGenerator) GenerateRecord(d *idl.TypeDecl, r *idl.Record) error {
	ident := g.cfg.Java.Ident
	ty := ident.Type(d.Name.String()) + typeParamList(d.TypeParams, ident.TypeParam)

	return g.writeFile(d, func(w *writer.Writer) {
		WriteDoc(w, d.Doc)
		w.WriteBlock(fmt.Sprintf("public final class %s {", ty), "}", func() {
			for _, f := range r.Fields {
				w.WriteLinef("private final %s %s;", g.typeName(f.Type), ident.Field(f.Name.String()))
			}

			w.BlankLine()
			args := make([]string, len(r.Fields))
			for i, f := range r.Fields {
				args[i] = fmt.Sprintf("%s %s", g.typeName(f.Type), ident.Local(f.Name.String()))
			}
			call := fmt.Sprintf("public %s(", ident.Type(d.Name.String()))
			WriteAlignedCall(w, call, args, ") {")
			w.Newline()
			w.Indent()
			for _, f := range r.Fields {
				w.WriteLinef("this.%s = %s;", ident.Field(f.Name.String()), ident.Local(f.Name.String()))
			}
			w.Dedent()
			w.WriteLine("}")

			for _, f := range r.Fields {
				w.BlankLine()
				WriteDoc(w, f.Doc)
				annotation := ""
				if g.cfg.Java.NullableAnnotation != "" && !isJavaPrimitive(f.Type) {
					annotation = g.cfg.Java.NullableAnnotation + " "
				}
				w.WriteBlock(fmt.Sprintf("public %s%s %s() {", annotation, g.typeName(f.Type), ident.Method("get_"+f.Name.String())), "}", func() {
					w.WriteLinef("return %s;", ident.Field(f.Name.String()))
				})
			}
		})
	})
}

func (g *javaGenerator) GenerateInterface(d *idl.TypeDecl, i *idl.Interface) error {
	ident := g.cfg.Java.Ident
	ty := ident.Type(d.Name.String()) + typeParamList(d.TypeParams, ident.TypeParam)

	return g.writeFile(d, func(w *writer.Writer) {
		WriteDoc(w, d.Doc)
		w.WriteBlock(fmt.Sprintf("public abstract class %s {", ty), "}", func() {
			for k, m := range i.Methods {
				if k > 0 {
					w.BlankLine()
				}
				WriteMethodDoc(w, m.Doc, m.Params, ident.Local)
				w.WriteLine(g.methodDecl(m))
			}
		})
	})
}

func (g *javaGenerator) methodDecl(m idl.Method) string {
	ident := g.cfg.Java.Ident
	params := make([]string, len(m.Params))
	for i, p := range m.Params {
		params[i] = fmt.Sprintf("%s %s", g.typeName(p.Type), ident.Local(p.Name.String()))
	}

	ret := "void"
	if m.Ret != "" {
		ret = g.typeName(m.Ret)
	}

	throws := ""
	if g.cfg.Java.CppException != "" {
		throws = " throws " + g.cfg.Java.CppException
	}

	decl := fmt.Sprintf("%s %s(%s)%s;", ret, ident.Method(m.Name.String()), strings.Join(params, ", "), throws)
	if m.Static {
		return "public static native " + decl
	}
	return "public abstract " + decl
}

func isJavaPrimitive(t string) bool {
	switch t {
	case "bool", "i8", "i16", "i32", "i64", "f32", "f64":
		return true
	}
	return false
}

func typeParamList(params []idl.Ident, styled func(string) string) string {
	if len(params) == 0 {
		return ""
	}
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = styled(p.String())
	}
	return "<" + strings.Join(names, ", ") + ">"
}
