package codegen

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xbind-dev/xbind/internal/idl"
)

func flagEnumDecl() idl.TypeDecl {
	return idl.TypeDecl{
		Name:   "access_flags",
		Origin: "perm.xbind",
		Local:  true,
		Body: &idl.Enum{
			Flags: true,
			Options: []idl.EnumOption{
				{Name: "nothing", Role: idl.FlagNoFlags},
				{Name: "read"},
				{Name: "everything", Role: idl.FlagAllFlags},
				{Name: "write"},
				{Name: "execute"},
			},
		},
	}
}

func TestJavaBackend_FlagEnumUsesIntConstants(t *testing.T) {
	// Test: Bit-flag enums become OR-able int constants in Java
	cfg := memConfig()
	cfg.Java.OutDir = "/java"
	cfg.Java.Package = "com.example.perm"

	require.NoError(t, Run(&cfg, []idl.TypeDecl{flagEnumDecl()}, zerolog.Nop()))

	data, err := afero.ReadFile(cfg.Fs, "/java/AccessFlags.java")
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "package com.example.perm;")
	assert.Contains(t, content, "public static final int NOTHING = 0;")
	assert.Contains(t, content, "public static final int READ = 1;")
	assert.Contains(t, content, "public static final int WRITE = 2;")
	assert.Contains(t, content, "public static final int EXECUTE = 4;")
	assert.Contains(t, content, "public static final int EVERYTHING = 7;")
}

func TestJavaBackend_PlainEnum(t *testing.T) {
	// Test: Non-flag enums stay real Java enums without explicit values
	cfg := memConfig()
	cfg.Java.OutDir = "/java"

	decl := idl.TypeDecl{
		Name:  "color",
		Local: true,
		Body:  &idl.Enum{Options: []idl.EnumOption{{Name: "red"}, {Name: "deep_blue"}}},
	}
	require.NoError(t, Run(&cfg, []idl.TypeDecl{decl}, zerolog.Nop()))

	data, _ := afero.ReadFile(cfg.Fs, "/java/Color.java")
	content := string(data)
	assert.Contains(t, content, "public enum Color {")
	assert.Contains(t, content, "DEEP_BLUE,")
	assert.NotContains(t, content, "=")
}

func TestObjcBackend_FlagEnumUsesOptions(t *testing.T) {
	// Test: Bit-flag enums render as NS_OPTIONS with shift expressions
	cfg := memConfig()
	cfg.Objc.OutDir = "/objc"
	cfg.Objc.TypePrefix = "XB"

	require.NoError(t, Run(&cfg, []idl.TypeDecl{flagEnumDecl()}, zerolog.Nop()))

	data, err := afero.ReadFile(cfg.Fs, "/objc/XBAccessFlags.h")
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "typedef NS_OPTIONS(NSUInteger, XBAccessFlags)")
	assert.Contains(t, content, "XBAccessFlagsNothing = 0,")
	assert.Contains(t, content, "XBAccessFlagsRead = 1 << 0,")
	assert.Contains(t, content, "XBAccessFlagsWrite = 1 << 1,")
	assert.Contains(t, content, "XBAccessFlagsExecute = 1 << 2,")
	assert.Contains(t, content, "XBAccessFlagsEverything = 7,")
}

func TestObjcBackend_RecordInitializerAlignsColons(t *testing.T) {
	// Test: Multi-field record initializers keep their colons in one column
	cfg := memConfig()
	cfg.Objc.OutDir = "/objc"

	decl := idl.TypeDecl{
		Name:  "image_info",
		Local: true,
		Body: &idl.Record{
			Fields: []idl.Field{
				{Name: "width", Type: "i32"},
				{Name: "height", Type: "i32"},
			},
		},
	}
	require.NoError(t, Run(&cfg, []idl.TypeDecl{decl}, zerolog.Nop()))

	data, _ := afero.ReadFile(cfg.Fs, "/objc/ImageInfo.h")
	var first, second string
	for _, line := range strings.Split(string(data), "\n") {
		if strings.Contains(line, "initWith") {
			first = line
		} else if first != "" && second == "" && strings.Contains(line, "height:") {
			second = line
		}
	}
	require.NotEmpty(t, first)
	require.NotEmpty(t, second)
	assert.Equal(t, strings.Index(first, ":"), strings.Index(second, ":"))
}

func TestCWrapperBackend_SupportHeaderWrittenOnce(t *testing.T) {
	// Test: Every declaration requests the shared support header but it is
	// emitted a single time
	cfg := memConfig()
	cfg.CWrapper.OutDir = "/c"

	require.NoError(t, Run(&cfg, sampleDecls(), zerolog.Nop()))

	for _, name := range []string{"xbind_support.h", "color_space.h", "image_info.h", "image_store.h"} {
		ok, _ := afero.Exists(cfg.Fs, "/c/"+name)
		assert.True(t, ok, name)
	}

	data, _ := afero.ReadFile(cfg.Fs, "/c/xbind_support.h")
	assert.Equal(t, 1, strings.Count(string(data), "#pragma once"))

	data, _ = afero.ReadFile(cfg.Fs, "/c/image_store.h")
	content := string(data)
	assert.Contains(t, content, "#ifndef IMAGE_STORE_H")
	assert.Contains(t, content, "XBIND_EXTERN_C struct ImageInfo *image_store_load_image(struct ImageStore *inst, const char * path);")
}

func TestPyWrapperBackend_AppendsOneCdefPerDeclaration(t *testing.T) {
	// Test: The CFFI defs file is created once and grows by appending
	cfg := memConfig()
	cfg.PyWrapper.OutDir = "/py"

	require.NoError(t, Run(&cfg, sampleDecls(), zerolog.Nop()))

	data, err := afero.ReadFile(cfg.Fs, "/py/cffi_defs.py")
	require.NoError(t, err)
	content := string(data)
	assert.Equal(t, 1, strings.Count(content, "from cffi import FFI"))
	assert.Equal(t, 3, strings.Count(content, `ffi.cdef("""`))
	assert.Contains(t, content, "enum ColorSpace {")
}

func TestYamlBackend_DumpsDeclarations(t *testing.T) {
	// Test: All local declarations land in one YAML file as separate
	// documents
	cfg := memConfig()
	cfg.Yaml.OutDir = "/yaml"

	require.NoError(t, Run(&cfg, sampleDecls(), zerolog.Nop()))

	data, err := afero.ReadFile(cfg.Fs, "/yaml/xbind.yaml")
	require.NoError(t, err)
	content := string(data)
	assert.Equal(t, 3, strings.Count(content, "---"))
	assert.Contains(t, content, "name: color_space")
	assert.Contains(t, content, "kind: interface")
}

func TestYamlBackend_NoDeclarationsNoFile(t *testing.T) {
	// Test: With nothing to record the YAML file is not created
	cfg := memConfig()
	cfg.Yaml.OutDir = "/yaml"

	require.NoError(t, Run(&cfg, nil, zerolog.Nop()))

	ok, _ := afero.Exists(cfg.Fs, "/yaml/xbind.yaml")
	assert.False(t, ok)
}

func TestPythonBackend_EmitsIntFlag(t *testing.T) {
	// Test: Bit-flag enums derive from enum.IntFlag with explicit values
	cfg := memConfig()
	cfg.Py.OutDir = "/py"

	require.NoError(t, Run(&cfg, []idl.TypeDecl{flagEnumDecl()}, zerolog.Nop()))

	data, _ := afero.ReadFile(cfg.Fs, "/py/access_flags.py")
	content := string(data)
	assert.Contains(t, content, "class AccessFlags(enum.IntFlag):")
	assert.Contains(t, content, "NOTHING = 0")
	assert.Contains(t, content, "EVERYTHING = 7")
}

func TestJniBackend_EnumTranslatorAndInterfaceStubs(t *testing.T) {
	// Test: Enums get a jint translator header, interfaces native stubs
	cfg := memConfig()
	cfg.Jni.OutDir = "/jni"
	cfg.Jni.Namespace = "xbind::jni"
	cfg.Cpp.Namespace = "demo"
	cfg.Java.Package = "com.example"

	require.NoError(t, Run(&cfg, sampleDecls(), zerolog.Nop()))

	data, _ := afero.ReadFile(cfg.Fs, "/jni/jni_color_space.hpp")
	content := string(data)
	assert.Contains(t, content, "namespace xbind { namespace jni {")
	assert.Contains(t, content, "static demo::ColorSpace toCpp(jint j)")

	data, _ = afero.ReadFile(cfg.Fs, "/jni/jni_image_store.cpp")
	content = string(data)
	assert.Contains(t, content, "}  // anonymous namespace")
	assert.Contains(t, content, "Java_com_example_ImageStore_nativeDestroy")
	assert.Contains(t, content, "Java_com_example_ImageStore_native_1loadImage")
}
