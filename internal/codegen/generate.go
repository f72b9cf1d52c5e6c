package codegen

import (
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/xbind-dev/xbind/internal/emit"
	"github.com/xbind-dev/xbind/internal/idl"
)

func orDefault(dir, fallback string) string {
	if dir == "" {
		return fallback
	}
	return dir
}

func dedupDirs(dirs ...string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, d := range dirs {
		if d == "" || seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	return out
}

// Run executes every enabled backend against the declaration sequence, in a
// fixed order. Output folders are pre-created before their backend runs
// (unless this is a dry run); the first fatal error aborts the remaining
// backends and becomes the single returned error. Generation is not
// transactional: files written by earlier backends stay in place.
func Run(cfg *Config, decls []idl.TypeDecl, logger zerolog.Logger) error {
	fs := cfg.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	sess := emit.NewSession(fs, cfg.SkipGeneration, cfg.Manifest)

	steps := []struct {
		name    string
		enabled bool
		dirs    []string
		run     func() error
	}{
		{
			name:    "C++",
			enabled: cfg.Cpp.OutDir != "",
			dirs:    dedupDirs(cfg.Cpp.OutDir, cfg.Cpp.HeaderOutDir),
			run:     func() error { return Walk(decls, newCppGenerator(cfg, sess)) },
		},
		{
			name:    "Java",
			enabled: cfg.Java.OutDir != "",
			dirs:    dedupDirs(cfg.Java.OutDir),
			run:     func() error { return Walk(decls, newJavaGenerator(cfg, sess)) },
		},
		{
			name:    "JNI",
			enabled: cfg.Jni.OutDir != "",
			dirs:    dedupDirs(cfg.Jni.OutDir, cfg.Jni.HeaderOutDir),
			run:     func() error { return Walk(decls, newJniGenerator(cfg, sess)) },
		},
		{
			name:    "Objective-C",
			enabled: cfg.Objc.OutDir != "",
			dirs:    dedupDirs(cfg.Objc.OutDir),
			run:     func() error { return Walk(decls, newObjcGenerator(cfg, sess)) },
		},
		{
			name:    "Objective-C++",
			enabled: cfg.Objcpp.OutDir != "",
			dirs:    dedupDirs(cfg.Objcpp.OutDir),
			run:     func() error { return Walk(decls, newObjcppGenerator(cfg, sess)) },
		},
		{
			name:    "Swift bridging header",
			enabled: cfg.Objc.OutDir != "" && cfg.Objc.SwiftBridgingHeader != "",
			dirs:    dedupDirs(cfg.Objc.OutDir),
			run:     func() error { return writeSwiftBridgingHeader(cfg, sess, decls) },
		},
		{
			name:    "C++/CLI",
			enabled: cfg.CppCli.OutDir != "",
			dirs:    dedupDirs(cfg.CppCli.OutDir),
			run:     func() error { return Walk(decls, newCppCliGenerator(cfg, sess)) },
		},
		{
			name:    "YAML",
			enabled: cfg.Yaml.OutDir != "",
			dirs:    dedupDirs(cfg.Yaml.OutDir),
			run:     func() error { return newYamlGenerator(cfg, sess).generate(decls) },
		},
		{
			name:    "Python",
			enabled: cfg.Py.OutDir != "",
			dirs:    dedupDirs(cfg.Py.OutDir),
			run:     func() error { return Walk(decls, newPyGenerator(cfg, sess)) },
		},
		{
			name:    "C wrapper",
			enabled: cfg.CWrapper.OutDir != "",
			dirs:    dedupDirs(cfg.CWrapper.OutDir, cfg.CWrapper.HeaderOutDir),
			run:     func() error { return Walk(decls, newCWrapperGenerator(cfg, sess)) },
		},
		{
			name:    "Python wrapper",
			enabled: cfg.PyWrapper.OutDir != "",
			dirs:    dedupDirs(cfg.PyWrapper.OutDir),
			run:     func() error { return newPyWrapperGenerator(cfg, sess).generate(decls) },
		},
	}

	for _, step := range steps {
		if !step.enabled {
			continue
		}
		logger.Debug().Str("backend", step.name).Msg("running backend")
		if !cfg.SkipGeneration {
			for _, dir := range step.dirs {
				if err := sess.MakeFolder(step.name, dir); err != nil {
					return err
				}
			}
		}
		if err := step.run(); err != nil {
			return err
		}
	}
	return nil
}
