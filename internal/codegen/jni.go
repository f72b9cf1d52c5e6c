package codegen

import (
	"fmt"
	"strings"

	"github.com/xbind-dev/xbind/internal/codegen/writer"
	"github.com/xbind-dev/xbind/internal/emit"
	"github.com/xbind-dev/xbind/internal/idl"
)

// jniGenerator emits the C++ side of the Java bridge: enum translators and
// native method stubs for interfaces.
type jniGenerator struct {
	generator
}

func newJniGenerator(cfg *Config, sess *emit.Session) *jniGenerator {
	return &jniGenerator{generator{cfg, sess}}
}

var jniPrimitives = map[string]string{
	"bool": "jboolean",
	"i8":   "jbyte",
	"i16":  "jshort",
	"i32":  "jint",
	"i64":  "jlong",
	"f32":  "jfloat",
	"f64":  "jdouble",
}

func (g *jniGenerator) headerDir() string {
	return orDefault(g.cfg.Jni.HeaderOutDir, g.cfg.Jni.OutDir)
}

func (g *jniGenerator) preamble(w *writer.Writer, d *idl.TypeDecl) {
	w.WriteLine("// AUTOGENERATED FILE - DO NOT MODIFY!")
	w.WriteLinef("// This file was generated from %s", d.Origin)
}

// GenerateEnum writes a header translating between jint and the C++ enum
// class.
func (g *jniGenerator) GenerateEnum(d *idl.TypeDecl, e *idl.Enum) error {
	name := d.Name.String()
	cppTy := g.cfg.Jni.Ident.EnumType(name)
	qualified := qualify(g.cfg.Cpp.Namespace, cppTy)

	return g.sess.CreateFile(g.headerDir(), "jni_"+name+".hpp", emit.DefaultWriter, func(w *writer.Writer) error {
		g.preamble(w, d)
		w.WriteLine("#pragma once")
		w.BlankLine()
		w.WriteLine("#include <jni.h>")
		w.WriteLinef("#include %s", cppInclude(g.cfg.Jni.IncludeCppPrefix, name))
		w.BlankLine()
		WrapNamespace(w, g.cfg.Jni.Namespace, func() {
			w.WriteBlock(fmt.Sprintf("struct Jni%s {", cppTy), "};", func() {
				w.WriteBlock(fmt.Sprintf("static %s toCpp(jint j) noexcept {", qualified), "}", func() {
					w.WriteLinef("return static_cast<%s>(j);", qualified)
				})
				w.BlankLine()
				w.WriteBlock(fmt.Sprintf("static jint fromCpp(%s c) noexcept {", qualified), "}", func() {
					w.WriteLine("return static_cast<jint>(c);")
				})
			})
		})
		return w.Err()
	})
}

// GenerateRecord is a no-op: records cross the boundary through their Java
// constructor, so there is no C++ stub to write.
func (g *jniGenerator) GenerateRecord(d *idl.TypeDecl, r *idl.Record) error {
	return nil
}

// GenerateInterface writes the native method stubs backing the Java proxy
// class.
func (g *jniGenerator) GenerateInterface(d *idl.TypeDecl, i *idl.Interface) error {
	name := d.Name.String()
	cppTy := g.cfg.Jni.Ident.Type(name)
	qualified := qualify(g.cfg.Cpp.Namespace, cppTy)
	javaClass := g.mangledClass(cppTy)

	return g.sess.CreateFile(g.cfg.Jni.OutDir, "jni_"+name+".cpp", emit.DefaultWriter, func(w *writer.Writer) error {
		g.preamble(w, d)
		w.BlankLine()
		w.WriteLine("#include <jni.h>")
		w.WriteLine("#include <memory>")
		w.WriteLine("#include <string>")
		w.WriteLinef("#include %s", cppInclude(g.cfg.Jni.IncludeCppPrefix, name))
		w.BlankLine()

		WrapAnonymousNamespace(w, func() {
			w.WriteBlock(fmt.Sprintf("%s* deref(jlong ref) noexcept {", qualified), "}", func() {
				w.WriteLinef("return reinterpret_cast<%s*>(ref);", qualified)
			})
			w.BlankLine()
			w.WriteBlock("std::string toStdString(JNIEnv* env, jstring j) {", "}", func() {
				w.WriteLine("const char* chars = env->GetStringUTFChars(j, nullptr);")
				w.WriteLine("std::string s(chars);")
				w.WriteLine("env->ReleaseStringUTFChars(j, chars);")
				w.WriteLine("return s;")
			})
		})
		w.BlankLine()

		w.WriteBlock(fmt.Sprintf("extern \"C\" JNIEXPORT void JNICALL Java_%s_nativeDestroy(JNIEnv*, jobject, jlong ref) {", javaClass), "}", func() {
			w.WriteLine("delete deref(ref);")
		})

		for _, m := range i.Methods {
			if m.Static {
				continue
			}
			w.BlankLine()
			g.writeMethodStub(w, javaClass, m)
		}
		return w.Err()
	})
}

func (g *jniGenerator) writeMethodStub(w *writer.Writer, javaClass string, m idl.Method) {
	ident := g.cfg.Jni.Ident
	jniName := strings.ReplaceAll(g.cfg.Java.Ident.Method(m.Name.String()), "_", "_1")

	params := []string{"JNIEnv* env", "jobject", "jlong ref"}
	args := make([]string, len(m.Params))
	for i, p := range m.Params {
		local := ident.Local(p.Name.String())
		params = append(params, fmt.Sprintf("%s j_%s", g.jniType(p.Type), local))
		args[i] = g.unbox(p.Type, "j_"+local)
	}

	ret := "void"
	if m.Ret != "" {
		ret = g.jniType(m.Ret)
	}

	call := fmt.Sprintf("extern \"C\" JNIEXPORT %s JNICALL Java_%s_native_1%s(", ret, javaClass, jniName)
	WriteAlignedCall(w, call, params, ") {")
	w.Newline()
	w.Indent()
	invoke := fmt.Sprintf("deref(ref)->%s(%s)", ident.Method(m.Name.String()), strings.Join(args, ", "))
	if m.Ret == "" {
		w.WriteLinef("%s;", invoke)
	} else {
		w.WriteLinef("return %s;", g.box(m.Ret, invoke))
	}
	w.Dedent()
	w.WriteLine("}")
}

func (g *jniGenerator) jniType(t string) string {
	if mapped, ok := jniPrimitives[t]; ok {
		return mapped
	}
	if t == "string" {
		return "jstring"
	}
	return "jobject"
}

func (g *jniGenerator) unbox(t, expr string) string {
	if _, ok := jniPrimitives[t]; ok {
		return fmt.Sprintf("static_cast<%s>(%s)", cppPrimitives[t], expr)
	}
	if t == "string" {
		return fmt.Sprintf("toStdString(env, %s)", expr)
	}
	return expr
}

func (g *jniGenerator) box(t, expr string) string {
	if mapped, ok := jniPrimitives[t]; ok {
		return fmt.Sprintf("static_cast<%s>(%s)", mapped, expr)
	}
	if t == "string" {
		return fmt.Sprintf("env->NewStringUTF(%s.c_str())", expr)
	}
	return expr
}

// mangledClass turns the configured Java package plus class name into the
// underscore form JNI expects in exported symbol names.
func (g *jniGenerator) mangledClass(class string) string {
	pkg := strings.ReplaceAll(g.cfg.Java.Package, ".", "_")
	if pkg == "" {
		return class
	}
	return pkg + "_" + class
}

func qualify(ns, ty string) string {
	if ns == "" {
		return ty
	}
	return ns + "::" + ty
}

func cppInclude(prefix, name string) string {
	return fmt.Sprintf("%q", prefix+name+".hpp")
}
