// Package workspace scans the input directory users drop their layout
// images and network description into.
package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoDocument is returned when the workspace holds no JSON network
// description.
var ErrNoDocument = errors.New("workspace: no json document found")

var imageExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".bmp":  {},
	".gif":  {},
}

// Workspace is the scanned content of an input directory: recognized layout
// images in directory order, plus the name of the first .json file found.
type Workspace struct {
	Dir          string
	Images       []string
	DocumentName string
}

// Scan reads dir and records images and the first JSON document. A missing
// document is not an error at scan time; ReadDocument reports it when the
// generation pipeline actually needs one.
func Scan(dir string) (*Workspace, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("workspace: scan %s: %w", dir, err)
	}

	ws := &Workspace{Dir: dir}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if _, ok := imageExtensions[ext]; ok {
			ws.Images = append(ws.Images, name)
			continue
		}
		if strings.HasSuffix(name, ".json") && ws.DocumentName == "" {
			ws.DocumentName = name
		}
	}
	return ws, nil
}

// ImageAt returns the image name at the given position. The error message
// carries the image count so callers can surface it as a diagnostic without
// treating it as fatal.
func (w *Workspace) ImageAt(index int) (string, error) {
	if index < 0 || index >= len(w.Images) {
		return "", fmt.Errorf("workspace: index out of range, there are only %d images", len(w.Images))
	}
	return w.Images[index], nil
}

// ReadDocument loads the first JSON document found during the scan. It fails
// with ErrNoDocument when the workspace holds none.
func (w *Workspace) ReadDocument() ([]byte, error) {
	if w.DocumentName == "" {
		return nil, fmt.Errorf("%w in %s", ErrNoDocument, w.Dir)
	}
	data, err := os.ReadFile(filepath.Join(w.Dir, w.DocumentName))
	if err != nil {
		return nil, fmt.Errorf("workspace: read document: %w", err)
	}
	return data, nil
}
