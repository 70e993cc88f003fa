package archive

import (
	"archive/zip"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func TestZip(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "book")

	files := map[string]string{
		"1_Intro.pdf":          "intro",
		"2_Body/2_Body.pdf":    "body",
		"2_Body/21_First.pdf":  "first",
		"2_Body/22_Second.pdf": "second",
	}
	for rel, content := range files {
		p := filepath.Join(src, rel)
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	outPath := filepath.Join(tmp, "out.zip")
	if err := Zip(src, outPath); err != nil {
		t.Fatalf("Zip failed: %v", err)
	}

	zr, err := zip.OpenReader(outPath)
	if err != nil {
		t.Fatalf("failed to open archive: %v", err)
	}
	defer zr.Close()

	var got []string
	for _, f := range zr.File {
		got = append(got, f.Name)
	}
	sort.Strings(got)

	want := []string{
		"book/1_Intro.pdf",
		"book/2_Body/21_First.pdf",
		"book/2_Body/22_Second.pdf",
		"book/2_Body/2_Body.pdf",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestZip_MissingSource(t *testing.T) {
	tmp := t.TempDir()
	err := Zip(filepath.Join(tmp, "does-not-exist"), filepath.Join(tmp, "out.zip"))
	if err == nil {
		t.Error("expected error for missing source directory")
	}
}
