// Package config loads the xbind.json project file and turns it into the
// immutable generator configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xbind-dev/xbind/internal/codegen"
	"github.com/xbind-dev/xbind/internal/style"
)

// Config represents the xbind.json configuration file. A backend section
// that is absent, or present without an output folder, leaves that backend
// disabled.
type Config struct {
	// AST is the path to the parsed declaration document.
	AST string `json:"ast"`

	// Manifest, when set, names a file that receives one generated path
	// per line.
	Manifest string `json:"manifest"`

	Cpp       *CppSection       `json:"cpp"`
	Java      *JavaSection      `json:"java"`
	Jni       *JniSection       `json:"jni"`
	Objc      *ObjcSection      `json:"objc"`
	Objcpp    *ObjcppSection    `json:"objcpp"`
	CppCli    *CppCliSection    `json:"cppcli"`
	Yaml      *YamlSection      `json:"yaml"`
	Py        *PySection        `json:"py"`
	CWrapper  *CWrapperSection  `json:"cWrapper"`
	PyWrapper *PyWrapperSection `json:"pyWrapper"`
}

// IdentOverrides maps a semantic role to an example token such as "FooBar"
// or "m_fooBar"; the style is inferred from the example.
type IdentOverrides map[string]string

// CppSection configures the C++ backend.
type CppSection struct {
	Out           string         `json:"out"`
	HeaderOut     string         `json:"headerOut"`
	Namespace     string         `json:"namespace"`
	IncludePrefix string         `json:"includePrefix"`
	IdentStyle    IdentOverrides `json:"identStyle"`
}

// JavaSection configures the Java backend.
type JavaSection struct {
	Out                string         `json:"out"`
	Package            string         `json:"package"`
	CppException       string         `json:"cppException"`
	NullableAnnotation string         `json:"nullableAnnotation"`
	IdentStyle         IdentOverrides `json:"identStyle"`
}

// JniSection configures the JNI backend.
type JniSection struct {
	Out              string         `json:"out"`
	HeaderOut        string         `json:"headerOut"`
	Namespace        string         `json:"namespace"`
	IncludePrefix    string         `json:"includePrefix"`
	IncludeCppPrefix string         `json:"includeCppPrefix"`
	IdentStyle       IdentOverrides `json:"identStyle"`
}

// ObjcSection configures the Objective-C backend.
type ObjcSection struct {
	Out                 string         `json:"out"`
	TypePrefix          string         `json:"typePrefix"`
	IncludePrefix       string         `json:"includePrefix"`
	SwiftBridgingHeader string         `json:"swiftBridgingHeader"`
	IdentStyle          IdentOverrides `json:"identStyle"`
}

// ObjcppSection configures the Objective-C++ backend.
type ObjcppSection struct {
	Out           string         `json:"out"`
	Namespace     string         `json:"namespace"`
	IncludePrefix string         `json:"includePrefix"`
	IdentStyle    IdentOverrides `json:"identStyle"`
}

// CppCliSection configures the C++/CLI backend.
type CppCliSection struct {
	Out        string         `json:"out"`
	Namespace  string         `json:"namespace"`
	IdentStyle IdentOverrides `json:"identStyle"`
}

// YamlSection configures the YAML dump backend.
type YamlSection struct {
	Out         string `json:"out"`
	OutFileBase string `json:"outFileBase"`
}

// PySection configures the Python backend.
type PySection struct {
	Out        string         `json:"out"`
	Package    string         `json:"package"`
	IdentStyle IdentOverrides `json:"identStyle"`
}

// CWrapperSection configures the plain-C wrapper backend.
type CWrapperSection struct {
	Out           string         `json:"out"`
	HeaderOut     string         `json:"headerOut"`
	IncludePrefix string         `json:"includePrefix"`
	IdentStyle    IdentOverrides `json:"identStyle"`
}

// PyWrapperSection configures the CFFI definition wrapper.
type PyWrapperSection struct {
	Out         string `json:"out"`
	OutFileBase string `json:"outFileBase"`
}

// LoadConfig loads xbind.json from the current directory or a parent
// directory, returning the config and the directory it was found in.
func LoadConfig() (*Config, string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get current directory: %w", err)
	}
	return loadConfigFromDir(dir)
}

// LoadConfigFromPath loads the configuration from a specific path.
func LoadConfigFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return &config, nil
}

func loadConfigFromDir(startDir string) (*Config, string, error) {
	dir := startDir
	for {
		configPath := filepath.Join(dir, "xbind.json")
		if _, err := os.Stat(configPath); err == nil {
			config, err := LoadConfigFromPath(configPath)
			if err != nil {
				return nil, "", err
			}
			return config, dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return nil, "", fmt.Errorf("no xbind.json found in %s or any parent directory", startDir)
}

// Build converts the on-disk configuration into the generator configuration.
// Identifier style overrides are resolved here; the result is treated as
// read-only by everything downstream.
func (c *Config) Build() (codegen.Config, error) {
	out := codegen.DefaultConfig()

	if s := c.Cpp; s != nil {
		out.Cpp.OutDir = s.Out
		out.Cpp.HeaderOutDir = s.HeaderOut
		out.Cpp.Namespace = s.Namespace
		out.Cpp.IncludePrefix = s.IncludePrefix
		if err := applyOverrides(&out.Cpp.Ident, s.IdentStyle, "cpp"); err != nil {
			return out, err
		}
	}
	if s := c.Java; s != nil {
		out.Java.OutDir = s.Out
		out.Java.Package = s.Package
		out.Java.CppException = s.CppException
		out.Java.NullableAnnotation = s.NullableAnnotation
		if err := applyOverrides(&out.Java.Ident, s.IdentStyle, "java"); err != nil {
			return out, err
		}
	}
	if s := c.Jni; s != nil {
		out.Jni.OutDir = s.Out
		out.Jni.HeaderOutDir = s.HeaderOut
		out.Jni.Namespace = s.Namespace
		out.Jni.IncludePrefix = s.IncludePrefix
		out.Jni.IncludeCppPrefix = s.IncludeCppPrefix
		if err := applyOverrides(&out.Jni.Ident, s.IdentStyle, "jni"); err != nil {
			return out, err
		}
	}
	if s := c.Objc; s != nil {
		out.Objc.OutDir = s.Out
		out.Objc.TypePrefix = s.TypePrefix
		out.Objc.IncludePrefix = s.IncludePrefix
		out.Objc.SwiftBridgingHeader = s.SwiftBridgingHeader
		if err := applyOverrides(&out.Objc.Ident, s.IdentStyle, "objc"); err != nil {
			return out, err
		}
	}
	if s := c.Objcpp; s != nil {
		out.Objcpp.OutDir = s.Out
		out.Objcpp.Namespace = s.Namespace
		out.Objcpp.IncludePrefix = s.IncludePrefix
		if err := applyOverrides(&out.Objcpp.Ident, s.IdentStyle, "objcpp"); err != nil {
			return out, err
		}
	}
	if s := c.CppCli; s != nil {
		out.CppCli.OutDir = s.Out
		out.CppCli.Namespace = s.Namespace
		if err := applyOverrides(&out.CppCli.Ident, s.IdentStyle, "cppcli"); err != nil {
			return out, err
		}
	}
	if s := c.Yaml; s != nil {
		out.Yaml.OutDir = s.Out
		if s.OutFileBase != "" {
			out.Yaml.OutFileBase = s.OutFileBase
		}
	}
	if s := c.Py; s != nil {
		out.Py.OutDir = s.Out
		out.Py.PackageName = s.Package
		if err := applyOverrides(&out.Py.Ident, s.IdentStyle, "py"); err != nil {
			return out, err
		}
	}
	if s := c.CWrapper; s != nil {
		out.CWrapper.OutDir = s.Out
		out.CWrapper.HeaderOutDir = s.HeaderOut
		out.CWrapper.IncludePrefix = s.IncludePrefix
		if err := applyOverrides(&out.CWrapper.Ident, s.IdentStyle, "cWrapper"); err != nil {
			return out, err
		}
	}
	if s := c.PyWrapper; s != nil {
		out.PyWrapper.OutDir = s.Out
		if s.OutFileBase != "" {
			out.PyWrapper.OutFileBase = s.OutFileBase
		}
	}

	return out, nil
}

func applyOverrides(bundle *style.Bundle, overrides IdentOverrides, section string) error {
	for role, example := range overrides {
		inferred, ok := style.Infer(example)
		if !ok {
			return fmt.Errorf("%s.identStyle.%s: unrecognized casing example %q", section, role, example)
		}

		switch role {
		case "type":
			bundle.Type = inferred
		case "enumType":
			bundle.EnumType = inferred
		case "typeParam":
			bundle.TypeParam = inferred
		case "method":
			bundle.Method = inferred
		case "field":
			bundle.Field = inferred
		case "local":
			bundle.Local = inferred
		case "enum":
			bundle.EnumMember = inferred
		case "const":
			bundle.Const = inferred
		case "property":
			bundle.Property = inferred
		case "file":
			bundle.File = inferred
		default:
			return fmt.Errorf("%s.identStyle: unknown role %q", section, role)
		}
	}
	return nil
}
