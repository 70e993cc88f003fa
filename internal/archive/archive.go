// Package archive packages a split output tree into a zip file for
// download. The source directory must be fully written before zipping.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Zip writes a deflated archive of srcDir to outPath. Entry names are
// relative to srcDir's parent, so the archive unpacks into a single
// directory named after the source.
func Zip(srcDir, outPath string) error {
	base := filepath.Dir(srcDir)

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create archive: %w", err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)

	err = filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(base, path)
		if err != nil {
			return err
		}

		w, err := zw.Create(filepath.ToSlash(rel))
		if err != nil {
			return fmt.Errorf("failed to create entry %s: %w", rel, err)
		}

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		_, err = io.Copy(w, f)
		return err
	})
	if err != nil {
		zw.Close()
		return fmt.Errorf("failed to archive %s: %w", srcDir, err)
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finalize archive: %w", err)
	}
	return nil
}
