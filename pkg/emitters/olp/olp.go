// Package olp renders the vendor configuration documents consumed by the
// offline-programming deployment: the network ring topology plus the three
// XMLVAR variable files (member registry, calibration frames, controller
// check list).
package olp

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/olptools/iicgen/pkg/emit"
	"github.com/olptools/iicgen/pkg/emit/template"
	"github.com/olptools/iicgen/pkg/robot"
)

// Variable names of the XMLVAR documents, as the controller firmware
// expects them.
const (
	membersVariable = "$IC_AZ_MEMBR"
	calibVariable   = "$IC_AZ_CALIB"
	chkVariable     = "$IA_CHKCMB"
)

// Filenames of the generated documents inside the output directory.
const (
	RingFilename    = "ROSIPCFG.xml"
	MembersFilename = "members.xvr"
	CalibFilename   = "calib.xvr"
	ChkFilename     = "iic_chk.xvr"
)

// maskedManager replaces the ring-manager name on Slave rows.
const maskedManager = "********"

// Option customises the emitter set before construction.
type Option func(*config)

type config struct {
	templateFS fs.FS
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// New wires the four document emitters into a registry, in generation
// order: ring topology, member registry, calibration frames, check list.
func New(options ...Option) (*emit.Registry, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	engine, err := template.New(template.WithFS(cfg.templateFS))
	if err != nil {
		return nil, fmt.Errorf("olp: configure template engine: %w", err)
	}

	registry := emit.NewRegistry()
	emitters := []emit.Emitter{
		&Ring{templates: engine},
		&Members{templates: engine},
		&Calib{templates: engine},
		&Chk{templates: engine},
	}
	for _, emitter := range emitters {
		if err := registry.Register(emitter); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

// formatValue rewrites the not-applicable placeholder to the six-decimal
// zero the calibration frame format requires; every other value passes
// through as verbatim text.
func formatValue(v robot.Value) string {
	if string(v) == robot.Placeholder {
		return "0.000000"
	}
	return string(v)
}
