// Package emit is the file-emission subsystem shared by every backend. A
// Session owns the written-file registry and the optional output manifest
// for exactly one generation run; constructing a fresh Session per run keeps
// collision detection from leaking across independent runs.
package emit

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"golang.org/x/text/cases"

	"github.com/xbind-dev/xbind/internal/codegen/writer"
)

// DefaultIndent is the indentation unit used for generated sources.
const DefaultIndent = "    "

// WriterFactory wraps an opened output file in a code writer. Backends that
// need to decorate the raw stream (UTF-8 byte-order marks, line filters)
// supply their own.
type WriterFactory func(io.Writer) *writer.Writer

// DefaultWriter is the factory used when a backend has no special needs.
func DefaultWriter(out io.Writer) *writer.Writer {
	return writer.New(out, DefaultIndent)
}

// Session tracks every file claimed during one generation run. The registry
// maps case-folded canonical paths to their original-cased form so that both
// exact duplicates and case-only collisions are caught before anything is
// clobbered. Sessions are single-use: one per run, never shared across runs.
type Session struct {
	fs       afero.Fs
	written  map[string]string
	manifest io.Writer
	dryRun   bool
	fold     cases.Caser
}

// NewSession creates a session over fs. manifest may be nil to disable
// manifest recording; dryRun suppresses all filesystem writes while keeping
// manifest recording active.
func NewSession(fs afero.Fs, dryRun bool, manifest io.Writer) *Session {
	return &Session{
		fs:       fs,
		written:  make(map[string]string),
		manifest: manifest,
		dryRun:   dryRun,
		fold:     cases.Fold(),
	}
}

// DryRun reports whether the session skips filesystem writes.
func (s *Session) DryRun() bool { return s.dryRun }

// Fs returns the filesystem the session writes to.
func (s *Session) Fs() afero.Fs { return s.fs }

func (s *Session) recordManifest(path string) error {
	if s.manifest == nil {
		return nil
	}
	if _, err := fmt.Fprintln(s.manifest, filepath.ToSlash(path)); err != nil {
		return Errorf("failed to record %q in manifest: %v", path, err)
	}
	return nil
}

// claim registers the canonical path in the written-file registry. The
// second result is false when the path was already claimed; err is non-nil
// for a genuine collision.
func (s *Session) claim(path, canonical string, onceOK bool) (bool, error) {
	key := s.fold.String(canonical)
	existing, taken := s.written[key]
	if !taken {
		s.written[key] = canonical
		return true, nil
	}
	if onceOK {
		return false, nil
	}
	if existing == canonical {
		return false, Errorf("refusing to write %q: a file was already written to that path", path)
	}
	return false, Errorf("refusing to write %q: a file was already written to a path that differs only by case: %q", path, existing)
}

func (s *Session) writeFile(canonical string, newWriter WriterFactory, body func(*writer.Writer) error) (retErr error) {
	f, err := s.fs.Create(canonical)
	if err != nil {
		return Errorf("failed to create %q: %v", canonical, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && retErr == nil {
			retErr = cerr
		}
	}()

	w := newWriter(f)
	if err := body(w); err != nil {
		return err
	}
	return w.Flush()
}

// CreateFile claims folder/name in the registry and, unless the session is a
// dry run, creates the file and runs body with a fresh writer. The manifest
// records the path either way. The writer is flushed and the file closed on
// every exit path.
func (s *Session) CreateFile(folder, name string, newWriter WriterFactory, body func(*writer.Writer) error) error {
	path := filepath.Join(folder, name)
	if err := s.recordManifest(path); err != nil {
		return err
	}
	if s.dryRun {
		return nil
	}

	canonical, err := canonicalPath(path)
	if err != nil {
		return err
	}
	if _, err := s.claim(path, canonical, false); err != nil {
		return err
	}
	return s.writeFile(canonical, newWriter, body)
}

// CreateFileOnce behaves like CreateFile except that a path already claimed
// in this session is a success no-op: body runs only for the first claim.
// Shared support files requested by several declarations use this.
func (s *Session) CreateFileOnce(folder, name string, body func(*writer.Writer) error) error {
	path := filepath.Join(folder, name)
	canonical, err := canonicalPath(path)
	if err != nil {
		return err
	}
	first, err := s.claim(path, canonical, true)
	if err != nil || !first {
		return err
	}
	if err := s.recordManifest(path); err != nil {
		return err
	}
	if s.dryRun {
		return nil
	}
	return s.writeFile(canonical, DefaultWriter, body)
}

// AppendToFile opens an existing generated file for append and runs body
// against it. It bypasses the registry and the manifest entirely: the file
// must have been created earlier in this same session.
func (s *Session) AppendToFile(folder, name string, body func(*writer.Writer) error) (retErr error) {
	if s.dryRun {
		return nil
	}

	canonical, err := canonicalPath(filepath.Join(folder, name))
	if err != nil {
		return err
	}
	f, err := s.fs.OpenFile(canonical, os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return Errorf("failed to open %q for append: %v", canonical, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && retErr == nil {
			retErr = cerr
		}
	}()

	w := DefaultWriter(f)
	if err := body(w); err != nil {
		return err
	}
	return w.Flush()
}

// MakeFolder recursively creates a backend's output folder. kind names the
// backend for the error message.
func (s *Session) MakeFolder(kind, dir string) error {
	if fi, err := s.fs.Stat(dir); err == nil && !fi.IsDir() {
		return Errorf("unable to create %s output folder %q: path exists and is not a directory", kind, dir)
	}
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return Errorf("unable to create %s output folder %q: %v", kind, dir, err)
	}
	return nil
}

func canonicalPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", Errorf("failed to resolve output path %q: %v", path, err)
	}
	return filepath.Clean(abs), nil
}
