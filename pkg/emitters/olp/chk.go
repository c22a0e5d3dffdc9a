package olp

import (
	"context"
	"fmt"

	"github.com/olptools/iicgen/pkg/emit"
	"github.com/olptools/iicgen/pkg/emit/template"
	"github.com/olptools/iicgen/pkg/robot"
)

// Chk emits the iic_chk.xvr controller check list: one $IA_CHKCMB array
// entry per robot holding the controller name.
type Chk struct {
	templates *template.Engine
}

// NewChk constructs the check-list emitter on an existing engine.
func NewChk(engine *template.Engine) *Chk {
	return &Chk{templates: engine}
}

func (c *Chk) Name() string {
	return "chk"
}

func (c *Chk) Filename() string {
	return ChkFilename
}

func (c *Chk) Encoding() emit.Encoding {
	return emit.EncodingLatin1
}

func (c *Chk) Emit(_ context.Context, table robot.Table) ([]byte, error) {
	members := make([]map[string]any, 0, len(table))
	for i, row := range table {
		members = append(members, map[string]any{
			"id":   i + 1,
			"name": row.Name,
		})
	}

	text, err := c.templates.RenderTemplate("chk", map[string]any{
		"var_name": chkVariable,
		"members":  members,
	})
	if err != nil {
		return nil, fmt.Errorf("olp: render chk document: %w", err)
	}
	return []byte(text), nil
}
