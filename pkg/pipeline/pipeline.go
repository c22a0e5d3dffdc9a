// Package pipeline coordinates a full generation run: workspace scan, robot
// table construction, and document emission into the output directory. The
// output directory is an explicit request value threaded through every
// stage; no stage keeps process-wide state between calls.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/olptools/iicgen/pkg/emit"
	"github.com/olptools/iicgen/pkg/emitters/olp"
	"github.com/olptools/iicgen/pkg/robot"
	"github.com/olptools/iicgen/pkg/workspace"
)

// echoedDocument is the emitter whose rendered text is mirrored to the echo
// writer, so operators can eyeball the ring topology before deploying it.
const echoedDocument = "ring"

// Option customises the pipeline configuration.
type Option func(*Pipeline)

// WithRegistry injects a custom emitter registry.
func WithRegistry(registry *emit.Registry) Option {
	return func(p *Pipeline) {
		p.registry = registry
	}
}

// WithEcho redirects the ring document echo. Defaults to os.Stdout; pass
// io.Discard to silence it.
func WithEcho(w io.Writer) Option {
	return func(p *Pipeline) {
		if w != nil {
			p.echo = w
		}
	}
}

// Pipeline runs the emitters against one parsed network description.
type Pipeline struct {
	registry      *emit.Registry
	echo          io.Writer
	initialiseErr error
}

// New constructs a Pipeline applying any provided options. Missing
// dependencies are initialised with the built-in emitter set so callers can
// start with a single constructor call.
func New(options ...Option) *Pipeline {
	p := &Pipeline{
		echo: os.Stdout,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}
	if p.registry == nil {
		registry, err := olp.New()
		if err != nil {
			p.initialiseErr = err
			return p
		}
		p.registry = registry
	}
	return p
}

// Request names the inputs and output of one generation run.
type Request struct {
	// InputDir is scanned for the first JSON network description when
	// DocumentPath is empty.
	InputDir string
	// DocumentPath points directly at the network description, bypassing
	// directory-order discovery.
	DocumentPath string
	// OutputDir receives the generated documents. Created if absent,
	// existing files are overwritten unconditionally.
	OutputDir string
}

// Result reports what a generation run produced.
type Result struct {
	Table robot.Table
	// Files lists the written documents in generation order.
	Files []string
	// Documents holds the rendered text per emitter name, before encoding.
	Documents map[string]string
}

// Generate runs every registered emitter against the robot table built from
// the request's network description, writing each document into the output
// directory with its declared encoding.
func (p *Pipeline) Generate(ctx context.Context, req Request) (Result, error) {
	if p.initialiseErr != nil {
		return Result{}, p.initialiseErr
	}
	if req.OutputDir == "" {
		return Result{}, errors.New("pipeline: output directory is required")
	}

	data, err := p.loadDocument(req)
	if err != nil {
		return Result{}, err
	}
	doc, err := robot.ParseDocument(data)
	if err != nil {
		return Result{}, err
	}
	table := robot.BuildTable(doc)

	if err := os.MkdirAll(req.OutputDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("pipeline: create output directory: %w", err)
	}

	result := Result{
		Table:     table,
		Documents: make(map[string]string),
	}
	for _, emitter := range p.registry.Ordered() {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		text, err := emitter.Emit(ctx, table)
		if err != nil {
			return Result{}, err
		}
		encoded, err := emit.Encode(emitter.Encoding(), text)
		if err != nil {
			return Result{}, err
		}

		path := filepath.Join(req.OutputDir, emitter.Filename())
		if err := os.WriteFile(path, encoded, 0o644); err != nil {
			return Result{}, fmt.Errorf("pipeline: write %s: %w", path, err)
		}

		if emitter.Name() == echoedDocument {
			fmt.Fprintln(p.echo, string(text))
		}

		result.Documents[emitter.Name()] = string(text)
		result.Files = append(result.Files, path)
	}
	return result, nil
}

func (p *Pipeline) loadDocument(req Request) ([]byte, error) {
	if req.DocumentPath != "" {
		data, err := os.ReadFile(req.DocumentPath)
		if err != nil {
			return nil, fmt.Errorf("pipeline: read document: %w", err)
		}
		return data, nil
	}
	if req.InputDir == "" {
		return nil, errors.New("pipeline: input directory or document path is required")
	}
	ws, err := workspace.Scan(req.InputDir)
	if err != nil {
		return nil, err
	}
	return ws.ReadDocument()
}
