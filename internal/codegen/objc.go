package codegen

import (
	"fmt"

	"github.com/xbind-dev/xbind/internal/codegen/writer"
	"github.com/xbind-dev/xbind/internal/emit"
	"github.com/xbind-dev/xbind/internal/idl"
)

// objcGenerator emits one Objective-C header per declaration.
type objcGenerator struct {
	generator
}

func newObjcGenerator(cfg *Config, sess *emit.Session) *objcGenerator {
	return &objcGenerator{generator{cfg, sess}}
}

var objcPrimitives = map[string]string{
	"bool": "BOOL",
	"i8":   "int8_t",
	"i16":  "int16_t",
	"i32":  "int32_t",
	"i64":  "int64_t",
	"f32":  "float",
	"f64":  "double",
}

func (g *objcGenerator) typeName(t string) string {
	if mapped, ok := objcPrimitives[t]; ok {
		return mapped
	}
	switch t {
	case "string":
		return "NSString *"
	case "binary":
		return "NSData *"
	}
	return g.prefixed(idl.Ident(t)) + " *"
}

func (g *objcGenerator) prefixed(name idl.Ident) string {
	return g.cfg.Objc.TypePrefix + g.cfg.Objc.Ident.Type(name.String())
}

// headerFile names the generated header for a declaration; the Swift
// bridging header step relies on the same naming.
func objcHeaderFile(cfg *Config, name idl.Ident) string {
	return cfg.Objc.TypePrefix + cfg.Objc.Ident.File(name.String()) + ".h"
}

func (g *objcGenerator) writeHeader(d *idl.TypeDecl, body func(w *writer.Writer)) error {
	return g.sess.CreateFile(g.cfg.Objc.OutDir, objcHeaderFile(g.cfg, d.Name), emit.DefaultWriter, func(w *writer.Writer) error {
		w.WriteLine("// AUTOGENERATED FILE - DO NOT MODIFY!")
		w.WriteLinef("// This file was generated from %s", d.Origin)
		w.WriteLine("#import <Foundation/Foundation.h>")
		w.BlankLine()
		body(w)
		return w.Err()
	})
}

func (g *objcGenerator) GenerateEnum(d *idl.TypeDecl, e *idl.Enum) error {
	ident := g.cfg.Objc.Ident
	ty := g.cfg.Objc.TypePrefix + ident.EnumType(d.Name.String())
	macro := "NS_ENUM"
	if e.Flags {
		macro = "NS_OPTIONS"
	}

	return g.writeHeader(d, func(w *writer.Writer) {
		WriteDoc(w, d.Doc)
		w.WriteBlock(fmt.Sprintf("typedef %s(NSUInteger, %s) {", macro, ty), "};", func() {
			for _, v := range EnumVariants(e) {
				WriteDoc(w, v.Option.Doc)
				member := ty + ident.EnumMember(v.Option.Name.String())
				if v.HasValue {
					if e.Flags && v.Option.Role == idl.FlagNone {
						w.WriteLinef("%s = 1 << %d,", member, log2(v.Value))
					} else {
						w.WriteLinef("%s = %d,", member, v.Value)
					}
				} else {
					w.WriteLinef("%s,", member)
				}
			}
		})
	})
}

func (g *objcGenerator) GenerateRecord(d *idl.TypeDecl, r *idl.Record) error {
	ident := g.cfg.Objc.Ident
	ty := g.prefixed(d.Name)

	return g.writeHeader(d, func(w *writer.Writer) {
		WriteDoc(w, d.Doc)
		w.WriteLinef("@interface %s : NSObject", ty)
		w.BlankLine()
		for _, f := range r.Fields {
			WriteDoc(w, f.Doc)
			w.WriteLinef("@property (nonatomic, readonly) %s%s;", propertyType(g.typeName(f.Type)), ident.Property(f.Name.String()))
		}
		if len(r.Fields) > 0 {
			w.BlankLine()
			g.writeInitializer(w, r)
		}
		w.BlankLine()
		w.WriteLine("@end")
	})
}

func (g *objcGenerator) writeInitializer(w *writer.Writer, r *idl.Record) {
	ident := g.cfg.Objc.Ident
	args := make([]ObjcArg, len(r.Fields))
	for i, f := range r.Fields {
		label := ident.Property(f.Name.String())
		if i == 0 {
			label = "With" + ident.Type(f.Name.String())
		}
		args[i] = ObjcArg{
			Label: label,
			Value: fmt.Sprintf("(%s)%s", trimPointerSpace(g.typeName(f.Type)), ident.Local(f.Name.String())),
		}
	}
	WriteAlignedObjcCall(w, "- (nonnull instancetype)init", args, ";")
	w.Newline()
}

func (g *objcGenerator) GenerateInterface(d *idl.TypeDecl, i *idl.Interface) error {
	ident := g.cfg.Objc.Ident
	ty := g.prefixed(d.Name)

	return g.writeHeader(d, func(w *writer.Writer) {
		WriteDoc(w, d.Doc)
		w.WriteLinef("@protocol %s", ty)
		for _, m := range i.Methods {
			w.BlankLine()
			WriteMethodDoc(w, m.Doc, m.Params, ident.Local)
			g.writeMethod(w, m)
		}
		w.BlankLine()
		w.WriteLine("@end")
	})
}

func (g *objcGenerator) writeMethod(w *writer.Writer, m idl.Method) {
	ident := g.cfg.Objc.Ident

	marker := "-"
	if m.Static {
		marker = "+"
	}
	ret := "void"
	if m.Ret != "" {
		ret = trimPointerSpace(g.typeName(m.Ret))
	}
	head := fmt.Sprintf("%s (%s)%s", marker, ret, ident.Method(m.Name.String()))

	if len(m.Params) == 0 {
		w.WriteLinef("%s;", head)
		return
	}

	args := make([]ObjcArg, len(m.Params))
	for i, p := range m.Params {
		label := ""
		if i > 0 {
			label = ident.Local(p.Name.String())
		}
		args[i] = ObjcArg{
			Label: label,
			Value: fmt.Sprintf("(%s)%s", trimPointerSpace(g.typeName(p.Type)), ident.Local(p.Name.String())),
		}
	}
	WriteAlignedObjcCall(w, head, args, ";")
	w.Newline()
}

// writeSwiftBridgingHeader emits a header importing every generated
// Objective-C header, so Swift projects can consume the bridge with a single
// import.
func writeSwiftBridgingHeader(cfg *Config, sess *emit.Session, decls []idl.TypeDecl) error {
	return sess.CreateFile(cfg.Objc.OutDir, cfg.Objc.SwiftBridgingHeader, emit.DefaultWriter, func(w *writer.Writer) error {
		w.WriteLine("// AUTOGENERATED FILE - DO NOT MODIFY!")
		w.BlankLine()
		for i := range decls {
			if !decls[i].Local {
				continue
			}
			w.WriteLinef("#import %q", objcHeaderFile(cfg, decls[i].Name))
		}
		return w.Err()
	})
}

func propertyType(ty string) string {
	if ty[len(ty)-1] == '*' {
		return ty
	}
	return ty + " "
}

func trimPointerSpace(ty string) string {
	if len(ty) > 2 && ty[len(ty)-2:] == " *" {
		return ty[:len(ty)-2] + "*"
	}
	return ty
}

func log2(v uint64) int {
	n := 0
	for v > 1 {
		v >>= 1
		n++
	}
	return n
}
