package xraytest

import (
	"archive/zip"
	"bytes"
	"testing"
)

// Entry is one file placed into a test archive
type Entry struct {
	Name string
	Body string
}

// BuildArchive creates a zip archive holding entries in order
func BuildArchive(t testing.TB, entries ...Entry) []byte {
	t.Helper()

	var buf bytes.Buffer
	zipWriter := zip.NewWriter(&buf)

	for _, entry := range entries {
		writer, err := zipWriter.Create(entry.Name)
		if err != nil {
			t.Fatalf("failed to create zip entry %s: %v", entry.Name, err)
		}
		if _, err := writer.Write([]byte(entry.Body)); err != nil {
			t.Fatalf("failed to write zip entry %s: %v", entry.Name, err)
		}
	}

	if err := zipWriter.Close(); err != nil {
		t.Fatalf("failed to close zip writer: %v", err)
	}

	return buf.Bytes()
}
