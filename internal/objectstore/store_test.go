package objectstore

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsImageKey(t *testing.T) {
	cases := map[string]bool{
		"Diagrams/Physics/images/pendulum.png": true,
		"Diagrams/Physics/images/circuit.JPG":  true,
		"Diagrams/Physics/images/wave.jpeg":    true,
		"Diagrams/Physics/images/lens.tiff":    true,
		"Diagrams/Physics/images/notes.txt":    false,
		"Diagrams/Physics/images/":             false,
		"questions.json":                       false,
	}
	for key, want := range cases {
		assert.Equal(t, want, IsImageKey(key), "IsImageKey(%q)", key)
	}
}

func TestMIMETypeOf(t *testing.T) {
	assert.Equal(t, "image/png", MIMETypeOf("a/b/c.PNG"))
	assert.Equal(t, "image/jpeg", MIMETypeOf("a/b/c.jpg"))
	assert.Equal(t, "application/octet-stream", MIMETypeOf("a/b/c.dat"))
}

func TestMemoryStore_ListImagesFiltersAndSorts(t *testing.T) {
	m := NewMemoryStore("images-questionbank")
	m.Put("Diagrams/Physics/images/wave.png", []byte{1})
	m.Put("Diagrams/Physics/images/circuit.jpg", []byte{2})
	m.Put("Diagrams/Physics/images/readme.txt", []byte{3})
	m.Put("Diagrams/Chemistry/images/flask.png", []byte{4})

	keys, err := m.ListImages(context.Background(), "Diagrams/Physics/images/")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Diagrams/Physics/images/circuit.jpg",
		"Diagrams/Physics/images/wave.png",
	}, keys)
}

func TestMemoryStore_Get(t *testing.T) {
	m := NewMemoryStore("images-questionbank")
	m.Put("Diagrams/Physics/images/wave.png", []byte{0x89, 0x50})

	data, mimeType, err := m.Get(context.Background(), "Diagrams/Physics/images/wave.png")
	require.NoError(t, err)
	assert.Len(t, data, 2)
	assert.Equal(t, "image/png", mimeType)

	_, _, err = m.Get(context.Background(), "missing.png")
	var unavail *UnavailableError
	require.ErrorAs(t, err, &unavail)
}

func TestMemoryStore_Fail(t *testing.T) {
	m := NewMemoryStore("images-questionbank")
	m.Fail = errors.New("bucket offline")

	_, err := m.ListImages(context.Background(), "")
	var unavail *UnavailableError
	require.ErrorAs(t, err, &unavail)
}

func TestURLFormat(t *testing.T) {
	m := NewMemoryStore("images-questionbank")
	got := m.URL("Diagrams/Physics/images/wave.png")
	assert.Equal(t, "https://images-questionbank.s3.amazonaws.com/Diagrams/Physics/images/wave.png", got)
}
