package olp

import (
	"context"
	"fmt"

	"github.com/olptools/iicgen/pkg/emit"
	"github.com/olptools/iicgen/pkg/emit/template"
	"github.com/olptools/iicgen/pkg/robot"
)

// Ring emits the ROSIPCFG.xml ring topology document: one MEMBER entry per
// robot, in table order, under a ROBOTRING element carrying the member count
// and the fixed 400 time slot.
type Ring struct {
	templates *template.Engine
}

// NewRing constructs the ring emitter on an existing engine.
func NewRing(engine *template.Engine) *Ring {
	return &Ring{templates: engine}
}

func (r *Ring) Name() string {
	return "ring"
}

func (r *Ring) Filename() string {
	return RingFilename
}

func (r *Ring) Encoding() emit.Encoding {
	return emit.EncodingUTF8
}

func (r *Ring) Emit(_ context.Context, table robot.Table) ([]byte, error) {
	members := make([]map[string]any, 0, len(table))
	for _, row := range table {
		members = append(members, map[string]any{
			"name":  row.Name,
			"ipadd": row.IP,
		})
	}

	text, err := r.templates.RenderTemplate("ring", map[string]any{
		"count":   len(table),
		"members": members,
	})
	if err != nil {
		return nil, fmt.Errorf("olp: render ring document: %w", err)
	}
	return []byte(text), nil
}
