// Package codegen contains the generator core shared by every backend: the
// run configuration, the declaration dispatch loop, the shared rendering
// algorithms and the orchestrator that sequences the backends.
package codegen

import (
	"regexp"
	"strings"

	"github.com/xbind-dev/xbind/internal/codegen/writer"
	"github.com/xbind-dev/xbind/internal/emit"
	"github.com/xbind-dev/xbind/internal/idl"
)

// Backend is the three-hook contract every code generator implements. The
// contract is total: a backend with nothing to emit for a kind implements
// that hook as a no-op.
type Backend interface {
	// GenerateEnum emits output for one enum declaration.
	GenerateEnum(d *idl.TypeDecl, e *idl.Enum) error

	// GenerateRecord emits output for one record declaration.
	GenerateRecord(d *idl.TypeDecl, r *idl.Record) error

	// GenerateInterface emits output for one interface declaration.
	GenerateInterface(d *idl.TypeDecl, i *idl.Interface) error
}

// Walk iterates the declaration sequence exactly once, skipping declarations
// that originate from imported modules, and dispatches each remaining one to
// the matching backend hook. The first hook error stops the walk.
func Walk(decls []idl.TypeDecl, b Backend) error {
	for i := range decls {
		d := &decls[i]
		if !d.Local {
			continue
		}

		var err error
		switch body := d.Body.(type) {
		case *idl.Enum:
			err = b.GenerateEnum(d, body)
		case *idl.Record:
			err = b.GenerateRecord(d, body)
		case *idl.Interface:
			err = b.GenerateInterface(d, body)
		default:
			err = emit.Errorf("declaration %q has unexpected body %T", d.Name, d.Body)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// generator carries the state every backend needs; concrete backends embed
// it.
type generator struct {
	cfg  *Config
	sess *emit.Session
}

// WrapNamespace runs body inside the given "::"-separated namespace: all
// scope openers on one line before, all closers on one line after, the
// closing line annotated with the full namespace. An empty namespace runs
// body unwrapped.
func WrapNamespace(w *writer.Writer, ns string, body func()) {
	if ns == "" {
		body()
		return
	}

	parts := strings.Split(ns, "::")
	opens := make([]string, len(parts))
	closes := make([]string, len(parts))
	for i, p := range parts {
		opens[i] = "namespace " + p + " {"
		closes[i] = "}"
	}

	w.WriteLine(strings.Join(opens, " "))
	w.Newline()
	body()
	w.Newline()
	w.WriteLinef("%s  // namespace %s", strings.Join(closes, " "), ns)
}

// WrapAnonymousNamespace runs body inside an anonymous namespace.
func WrapAnonymousNamespace(w *writer.Writer, body func()) {
	w.WriteLine("namespace {")
	w.Newline()
	body()
	w.Newline()
	w.WriteLine("}  // anonymous namespace")
}

// EnumVariant is one enum option in emission order, together with its
// explicit numeric value when one must be emitted.
type EnumVariant struct {
	Option   idl.EnumOption
	HasValue bool
	Value    uint64
}

// EnumVariants returns the options of e in emission order: the NoFlags
// option first with value 0, then ordinary options in source order, then the
// AllFlags option with the union of all ordinary values. Ordinary options
// get explicit power-of-two values only for bit-flag enums; the special
// options may appear anywhere in the source sequence.
func EnumVariants(e *idl.Enum) []EnumVariant {
	var none, all *idl.EnumOption
	var ordinary []idl.EnumOption
	for i := range e.Options {
		o := e.Options[i]
		switch o.Role {
		case idl.FlagNoFlags:
			none = &e.Options[i]
		case idl.FlagAllFlags:
			all = &e.Options[i]
		default:
			ordinary = append(ordinary, o)
		}
	}

	variants := make([]EnumVariant, 0, len(e.Options))
	if none != nil {
		variants = append(variants, EnumVariant{Option: *none, HasValue: true, Value: 0})
	}

	var union uint64
	for k, o := range ordinary {
		v := EnumVariant{Option: o}
		if e.Flags {
			v.HasValue = true
			v.Value = 1 << uint(k)
			union |= v.Value
		}
		variants = append(variants, v)
	}

	if all != nil {
		variants = append(variants, EnumVariant{Option: *all, HasValue: true, Value: union})
	}
	return variants
}

// WriteAlignedCall renders call(arg, arg, ...) with each continuation line
// indented to the column of the opening parenthesis, i.e. the width of call.
func WriteAlignedCall(w *writer.Writer, call string, args []string, end string) {
	w.Write(call)
	pad := strings.Repeat(" ", len(call))
	for i, a := range args {
		if i > 0 {
			w.WriteLine(",")
			w.Write(pad)
		}
		w.Write(a)
	}
	w.Write(end)
}

// ObjcArg is one keyword argument of an Objective-C style message send.
type ObjcArg struct {
	Label string
	Value string
}

// WriteAlignedObjcCall renders an Objective-C style call, padding the
// keyword of each continuation line so that every colon lands in the column
// fixed by the first keyword.
func WriteAlignedObjcCall(w *writer.Writer, call string, args []ObjcArg, end string) {
	w.Write(call)
	if len(args) > 0 {
		col := len(call) + len(args[0].Label)
		for i, a := range args {
			if i > 0 {
				w.Newline()
				if pad := col - len(a.Label); pad > 0 {
					w.Write(strings.Repeat(" ", pad))
				}
			}
			w.Writef("%s:%s", a.Label, a.Value)
		}
	}
	w.Write(end)
}

// WriteDoc renders a doc comment: nothing for no lines, a single-line
// comment for one line, otherwise a block with one prefixed line per input
// line.
func WriteDoc(w *writer.Writer, doc []string) {
	switch len(doc) {
	case 0:
	case 1:
		w.WriteLinef("/** %s */", doc[0])
	default:
		w.WriteLine("/**")
		for _, line := range doc {
			w.WriteLinef(" * %s", line)
		}
		w.WriteLine(" */")
	}
}

// RewriteParamDoc rewrites every whole-word occurrence of each parameter's
// canonical name in doc to that parameter's target-cased form.
func RewriteParamDoc(doc []string, params []idl.Param, ident func(string) string) []string {
	if len(doc) == 0 {
		return doc
	}

	rewritten := make([]string, len(doc))
	copy(rewritten, doc)
	for _, p := range params {
		re := regexp.MustCompile(`\b` + regexp.QuoteMeta(p.Name.String()) + `\b`)
		styled := ident(p.Name.String())
		for i, line := range rewritten {
			rewritten[i] = re.ReplaceAllString(line, styled)
		}
	}
	return rewritten
}

// WriteMethodDoc renders a method doc comment after rewriting parameter
// names via RewriteParamDoc.
func WriteMethodDoc(w *writer.Writer, doc []string, params []idl.Param, ident func(string) string) {
	WriteDoc(w, RewriteParamDoc(doc, params, ident))
}
