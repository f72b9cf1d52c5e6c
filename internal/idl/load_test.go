package idl

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile_KindTaggedBodies(t *testing.T) {
	// Test: The kind tag selects the right body variant
	doc := `{
		"declarations": [
			{"name": "color", "origin": "a.xbind", "local": true, "kind": "enum",
			 "enum": {"options": [{"name": "red"}, {"name": "all", "role": 2}], "flags": true}},
			{"name": "point", "origin": "a.xbind", "local": true, "kind": "record",
			 "typeParams": ["t"],
			 "record": {"fields": [{"name": "x", "type": "i32"}]}},
			{"name": "store", "origin": "b.xbind", "local": false, "kind": "interface",
			 "interface": {"methods": [{"name": "get", "ret": "point"}]}}
		]
	}`

	path := filepath.Join(t.TempDir(), "ast.json")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	decls, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, decls, 3)

	e, ok := decls[0].Body.(*Enum)
	require.True(t, ok)
	assert.True(t, e.Flags)
	assert.Equal(t, FlagAllFlags, e.Options[1].Role)

	r, ok := decls[1].Body.(*Record)
	require.True(t, ok)
	assert.Equal(t, Ident("x"), r.Fields[0].Name)
	assert.Equal(t, []Ident{"t"}, decls[1].TypeParams)

	i, ok := decls[2].Body.(*Interface)
	require.True(t, ok)
	assert.Equal(t, "point", i.Methods[0].Ret)
	assert.False(t, decls[2].Local)
}

func TestLoadFile_UnknownKind(t *testing.T) {
	// Test: An unknown kind is rejected with the declaration's name
	doc := `{"declarations": [{"name": "weird", "kind": "union"}]}`
	path := filepath.Join(t.TempDir(), "ast.json")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "weird")
}

func TestLoadFile_MissingFile(t *testing.T) {
	// Test: A missing AST file is reported
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestTypeDecl_MarshalRoundTrip(t *testing.T) {
	// Test: Marshal and Unmarshal preserve the tagged body
	in := TypeDecl{
		Name:   "flags",
		Origin: "x.xbind",
		Local:  true,
		Body:   &Enum{Flags: true, Options: []EnumOption{{Name: "a"}}},
	}

	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out TypeDecl
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in.Name, out.Name)
	e, ok := out.Body.(*Enum)
	require.True(t, ok)
	assert.True(t, e.Flags)
}
