package codegen

import (
	"io"

	"github.com/spf13/afero"

	"github.com/xbind-dev/xbind/internal/style"
)

// Config aggregates the settings of every backend for one generation run.
// It is built once, before generation starts, and treated as read-only from
// then on. A backend runs exactly when its OutDir is non-empty.
type Config struct {
	Cpp       CppConfig
	Java      JavaConfig
	Jni       JniConfig
	Objc      ObjcConfig
	Objcpp    ObjcppConfig
	CppCli    CppCliConfig
	Yaml      YamlConfig
	Py        PyConfig
	CWrapper  CWrapperConfig
	PyWrapper PyWrapperConfig

	// SkipGeneration suppresses all filesystem writes (dry run). The
	// manifest is still recorded so build systems can predict outputs.
	SkipGeneration bool

	// Manifest, when non-nil, receives one forward-slash-normalized path
	// per claimed output file.
	Manifest io.Writer

	// Fs is the filesystem generation writes to. Defaults to the OS
	// filesystem; tests substitute an in-memory one.
	Fs afero.Fs
}

// CppConfig configures the C++ backend.
type CppConfig struct {
	OutDir        string
	HeaderOutDir  string // defaults to OutDir
	Namespace     string
	IncludePrefix string
	Ident         style.Bundle
}

// JavaConfig configures the Java backend.
type JavaConfig struct {
	OutDir             string
	Package            string
	CppException       string
	NullableAnnotation string
	Ident              style.Bundle
}

// JniConfig configures the JNI bridge backend.
type JniConfig struct {
	OutDir           string
	HeaderOutDir     string // defaults to OutDir
	Namespace        string
	IncludePrefix    string
	IncludeCppPrefix string
	Ident            style.Bundle
}

// ObjcConfig configures the Objective-C backend. SwiftBridgingHeader, when
// set together with OutDir, additionally emits a Swift bridging header that
// imports every generated Objective-C header.
type ObjcConfig struct {
	OutDir              string
	TypePrefix          string
	IncludePrefix       string
	SwiftBridgingHeader string
	Ident               style.Bundle
}

// ObjcppConfig configures the Objective-C++ bridge backend.
type ObjcppConfig struct {
	OutDir        string
	Namespace     string
	IncludePrefix string
	Ident         style.Bundle
}

// CppCliConfig configures the C++/CLI backend.
type CppCliConfig struct {
	OutDir    string
	Namespace string
	Ident     style.Bundle
}

// YamlConfig configures the YAML dump backend, which records every declared
// type so other IDL files can import it.
type YamlConfig struct {
	OutDir      string
	OutFileBase string
}

// PyConfig configures the Python backend.
type PyConfig struct {
	OutDir      string
	PackageName string
	Ident       style.Bundle
}

// CWrapperConfig configures the plain-C wrapper backend.
type CWrapperConfig struct {
	OutDir        string
	HeaderOutDir  string // defaults to OutDir
	IncludePrefix string
	Ident         style.Bundle
}

// PyWrapperConfig configures the CFFI definition wrapper for the Python
// backend.
type PyWrapperConfig struct {
	OutDir      string
	OutFileBase string
}

// DefaultConfig returns a Config with every backend disabled and the
// per-family default identifier styles in place.
func DefaultConfig() Config {
	return Config{
		Cpp:       CppConfig{Ident: style.CppDefault()},
		Java:      JavaConfig{Ident: style.JavaDefault()},
		Jni:       JniConfig{Ident: style.CppDefault()},
		Objc:      ObjcConfig{Ident: style.ObjcDefault()},
		Objcpp:    ObjcppConfig{Ident: style.ObjcDefault()},
		CppCli:    CppCliConfig{Ident: style.CppDefault()},
		Yaml:      YamlConfig{OutFileBase: "xbind"},
		Py:        PyConfig{Ident: style.PythonDefault()},
		CWrapper:  CWrapperConfig{Ident: style.CDefault()},
		PyWrapper: PyWrapperConfig{OutFileBase: "cffi_defs"},
		Fs:        afero.NewOsFs(),
	}
}
