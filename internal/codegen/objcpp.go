package codegen

import (
	"fmt"

	"github.com/xbind-dev/xbind/internal/codegen/writer"
	"github.com/xbind-dev/xbind/internal/emit"
	"github.com/xbind-dev/xbind/internal/idl"
)

// objcppGenerator emits the Objective-C++ translator headers that connect
// the Objective-C surface to the C++ core.
type objcppGenerator struct {
	generator
}

func newObjcppGenerator(cfg *Config, sess *emit.Session) *objcppGenerator {
	return &objcppGenerator{generator{cfg, sess}}
}

func (g *objcppGenerator) headerFile(name idl.Ident) string {
	return g.cfg.Objc.TypePrefix + g.cfg.Objcpp.Ident.File(name.String()) + "+Private.h"
}

func (g *objcppGenerator) writeHeader(d *idl.TypeDecl, body func(w *writer.Writer)) error {
	return g.sess.CreateFile(g.cfg.Objcpp.OutDir, g.headerFile(d.Name), emit.DefaultWriter, func(w *writer.Writer) error {
		w.WriteLine("// AUTOGENERATED FILE - DO NOT MODIFY!")
		w.WriteLinef("// This file was generated from %s", d.Origin)
		w.WriteLinef("#import %q", g.cfg.Objc.IncludePrefix+objcHeaderFile(g.cfg, d.Name))
		w.WriteLinef("#include %s", cppInclude(g.cfg.Objcpp.IncludePrefix, d.Name.String()))
		w.BlankLine()
		body(w)
		return w.Err()
	})
}

func (g *objcppGenerator) GenerateEnum(d *idl.TypeDecl, e *idl.Enum) error {
	objcTy := g.cfg.Objc.TypePrefix + g.cfg.Objc.Ident.EnumType(d.Name.String())
	cppTy := qualify(g.cfg.Cpp.Namespace, g.cfg.Cpp.Ident.EnumType(d.Name.String()))

	return g.writeHeader(d, func(w *writer.Writer) {
		WrapNamespace(w, g.cfg.Objcpp.Namespace, func() {
			w.WriteBlock(fmt.Sprintf("struct %s {", g.translatorName(d.Name)), "};", func() {
				w.WriteBlock(fmt.Sprintf("static %s toCpp(%s o) noexcept {", cppTy, objcTy), "}", func() {
					w.WriteLinef("return static_cast<%s>(o);", cppTy)
				})
				w.BlankLine()
				w.WriteBlock(fmt.Sprintf("static %s fromCpp(%s c) noexcept {", objcTy, cppTy), "}", func() {
					w.WriteLinef("return static_cast<%s>(c);", objcTy)
				})
			})
		})
	})
}

func (g *objcppGenerator) GenerateRecord(d *idl.TypeDecl, r *idl.Record) error {
	objcTy := g.cfg.Objc.TypePrefix + g.cfg.Objc.Ident.Type(d.Name.String())
	cppTy := qualify(g.cfg.Cpp.Namespace, g.cfg.Cpp.Ident.Type(d.Name.String()))

	return g.writeHeader(d, func(w *writer.Writer) {
		WrapNamespace(w, g.cfg.Objcpp.Namespace, func() {
			w.WriteBlock(fmt.Sprintf("struct %s {", g.translatorName(d.Name)), "};", func() {
				w.WriteLinef("static %s toCpp(%s *o);", cppTy, objcTy)
				w.WriteLinef("static %s *fromCpp(const %s &c);", objcTy, cppTy)
			})
		})
	})
}

func (g *objcppGenerator) GenerateInterface(d *idl.TypeDecl, i *idl.Interface) error {
	objcTy := g.cfg.Objc.TypePrefix + g.cfg.Objc.Ident.Type(d.Name.String())
	cppTy := qualify(g.cfg.Cpp.Namespace, g.cfg.Cpp.Ident.Type(d.Name.String()))

	return g.writeHeader(d, func(w *writer.Writer) {
		w.WriteLine("#include <memory>")
		w.BlankLine()
		WrapNamespace(w, g.cfg.Objcpp.Namespace, func() {
			w.WriteBlock(fmt.Sprintf("struct %s {", g.translatorName(d.Name)), "};", func() {
				w.WriteLinef("static std::shared_ptr<%s> toCpp(id<%s> o);", cppTy, objcTy)
				w.WriteLinef("static id<%s> fromCpp(const std::shared_ptr<%s> &c);", objcTy, cppTy)
			})
		})
	})
}

func (g *objcppGenerator) translatorName(name idl.Ident) string {
	return g.cfg.Objcpp.Ident.Type(name.String())
}
