// Package deploy finishes a generation run: it copies the static check-list
// base template into the output directory and archives the directory for
// transfer to the controllers.
package deploy

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrBaseMissing is returned when the static base template cannot be found.
// Callers report it as a diagnostic; no archive is produced.
var ErrBaseMissing = errors.New("deploy: base template not found")

// BaseFilename is the name the base template is copied under inside the
// output directory.
const BaseFilename = "iic_chkbase.xvr"

// Package copies the base template into outputDir and zips the whole
// directory recursively into <outputDir>.zip. It returns the archive path.
// Both the directory and the archive persist afterwards; nothing is cleaned
// up.
func Package(outputDir, baseFile string) (string, error) {
	if _, err := os.Stat(baseFile); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrBaseMissing, baseFile)
		}
		return "", fmt.Errorf("deploy: stat base template: %w", err)
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("deploy: create output directory: %w", err)
	}
	if err := copyFile(baseFile, filepath.Join(outputDir, BaseFilename)); err != nil {
		return "", err
	}

	zipPath := outputDir + ".zip"
	if err := zipDir(zipPath, outputDir); err != nil {
		return "", err
	}
	return zipPath, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("deploy: open base template: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("deploy: create %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("deploy: copy base template: %w", err)
	}
	return out.Close()
}

// zipDir archives dir recursively. Entry names keep the directory itself as
// prefix, matching what `zip -r out.zip out` produces, so unpacking on the
// target recreates the directory.
func zipDir(zipPath, dir string) error {
	archive, err := os.Create(zipPath)
	if err != nil {
		return fmt.Errorf("deploy: create archive: %w", err)
	}
	defer archive.Close()

	zw := zip.NewWriter(archive)
	prefix := filepath.Base(dir)

	err = filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}

		w, err := zw.Create(filepath.ToSlash(filepath.Join(prefix, rel)))
		if err != nil {
			return err
		}
		in, err := os.Open(path)
		if err != nil {
			return err
		}
		_, err = io.Copy(w, in)
		in.Close()
		return err
	})
	if err != nil {
		zw.Close()
		return fmt.Errorf("deploy: archive %s: %w", dir, err)
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("deploy: finalize archive: %w", err)
	}
	return archive.Close()
}
