package codegen

import (
	"gopkg.in/yaml.v3"

	"github.com/xbind-dev/xbind/internal/codegen/writer"
	"github.com/xbind-dev/xbind/internal/emit"
	"github.com/xbind-dev/xbind/internal/idl"
)

// yamlGenerator dumps every local declaration into a single YAML file so
// other IDL modules can import the types without re-parsing the source.
type yamlGenerator struct {
	generator
	entries []yamlEntry
}

func newYamlGenerator(cfg *Config, sess *emit.Session) *yamlGenerator {
	return &yamlGenerator{generator: generator{cfg, sess}}
}

type yamlEntry struct {
	Name       string       `yaml:"name"`
	Kind       string       `yaml:"kind"`
	Origin     string       `yaml:"origin,omitempty"`
	Doc        []string     `yaml:"doc,omitempty"`
	TypeParams []string     `yaml:"typeParams,omitempty"`
	Options    []yamlOption `yaml:"options,omitempty"`
	Flags      bool         `yaml:"flags,omitempty"`
	Fields     []yamlField  `yaml:"fields,omitempty"`
	Methods    []yamlMethod `yaml:"methods,omitempty"`
}

type yamlOption struct {
	Name string `yaml:"name"`
	Role string `yaml:"role,omitempty"`
}

type yamlField struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

type yamlMethod struct {
	Name   string      `yaml:"name"`
	Params []yamlField `yaml:"params,omitempty"`
	Ret    string      `yaml:"ret,omitempty"`
	Static bool        `yaml:"static,omitempty"`
}

func (g *yamlGenerator) generate(decls []idl.TypeDecl) error {
	if err := Walk(decls, g); err != nil {
		return err
	}
	if len(g.entries) == 0 {
		return nil
	}

	name := g.cfg.Yaml.OutFileBase + ".yaml"
	return g.sess.CreateFile(g.cfg.Yaml.OutDir, name, emit.DefaultWriter, func(w *writer.Writer) error {
		w.WriteLine("# AUTOGENERATED FILE - DO NOT MODIFY!")
		for _, entry := range g.entries {
			out, err := yaml.Marshal(entry)
			if err != nil {
				return emit.Errorf("failed to encode %q as YAML: %v", entry.Name, err)
			}
			w.WriteLine("---")
			w.Write(string(out))
		}
		return w.Err()
	})
}

func (g *yamlGenerator) entry(d *idl.TypeDecl, kind string) yamlEntry {
	e := yamlEntry{
		Name:   d.Name.String(),
		Kind:   kind,
		Origin: d.Origin,
		Doc:    d.Doc,
	}
	for _, p := range d.TypeParams {
		e.TypeParams = append(e.TypeParams, p.String())
	}
	return e
}

func (g *yamlGenerator) GenerateEnum(d *idl.TypeDecl, e *idl.Enum) error {
	entry := g.entry(d, "enum")
	entry.Flags = e.Flags
	for _, o := range e.Options {
		role := ""
		switch o.Role {
		case idl.FlagNoFlags:
			role = "none"
		case idl.FlagAllFlags:
			role = "all"
		}
		entry.Options = append(entry.Options, yamlOption{Name: o.Name.String(), Role: role})
	}
	g.entries = append(g.entries, entry)
	return nil
}

func (g *yamlGenerator) GenerateRecord(d *idl.TypeDecl, r *idl.Record) error {
	entry := g.entry(d, "record")
	for _, f := range r.Fields {
		entry.Fields = append(entry.Fields, yamlField{Name: f.Name.String(), Type: f.Type})
	}
	g.entries = append(g.entries, entry)
	return nil
}

func (g *yamlGenerator) GenerateInterface(d *idl.TypeDecl, i *idl.Interface) error {
	entry := g.entry(d, "interface")
	for _, m := range i.Methods {
		ym := yamlMethod{Name: m.Name.String(), Ret: m.Ret, Static: m.Static}
		for _, p := range m.Params {
			ym.Params = append(ym.Params, yamlField{Name: p.Name.String(), Type: p.Type})
		}
		entry.Methods = append(entry.Methods, ym)
	}
	g.entries = append(g.entries, entry)
	return nil
}
