package wsdl

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFileAndURL(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "quotes.wsdl")
	require.NoError(t, os.WriteFile(path, []byte(quotesWSDL), 0o644))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Token") != "secret" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		if r.URL.Path != "/types.xsd" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/xml")
		_, _ = w.Write([]byte(typesSchema))
	}))
	defer srv.Close()

	loader := NewLoader().WithHeaders(map[string]string{"X-Token": "secret"})
	c, err := loader.Load(context.Background(), path, srv.URL+"/types.xsd")
	require.NoError(t, err)

	docs := c.Documents()
	require.Len(t, docs, 2)
	assert.Equal(t, path, docs[0].Source)
	assert.Len(t, c.Schemas(), 2)
	assert.Len(t, c.PortTypes(), 1)

	_, err = loader.LoadURL(context.Background(), srv.URL+"/missing.wsdl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 404")
}

func TestLoadErrors(t *testing.T) {
	loader := NewLoader()

	_, err := loader.LoadFile(filepath.Join(t.TempDir(), "nope.wsdl"))
	assert.Error(t, err)

	_, err = loader.LoadBytes([]byte("<broken"), "inline")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inline")
}

func TestNewCollectionErrors(t *testing.T) {
	_, err := NewCollection()
	assert.ErrorIs(t, err, ErrNoDefinitions)

	doc, err := NewLoader().LoadBytes([]byte(`<html><body/></html>`), "page.html")
	require.NoError(t, err)
	_, err = NewCollection(doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported root element")

	_, err = NewCollection(Document{Source: "empty"})
	assert.Error(t, err)
}

func TestNormalizeWhitespace(t *testing.T) {
	assert.Equal(t, "a\nb", NormalizeWhitespace("\n   a  \r\n  b \n\n"))
	assert.Equal(t, "", NormalizeWhitespace("   "))
}

func TestBuiltinKinds(t *testing.T) {
	assert.True(t, IsXSDIntegerType("unsignedShort"))
	assert.False(t, IsXSDIntegerType("decimal"))
	assert.True(t, IsXSDBuiltinType("anyURI"))
	assert.False(t, IsXSDBuiltinType("Mode"))

	kind, ok := BuiltinKind("dateTime")
	assert.True(t, ok)
	assert.Equal(t, ScalarDateTime, kind)
}
