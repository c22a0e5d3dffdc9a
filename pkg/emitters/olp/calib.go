package olp

import (
	"context"
	"fmt"

	"github.com/olptools/iicgen/pkg/emit"
	"github.com/olptools/iicgen/pkg/emit/template"
	"github.com/olptools/iicgen/pkg/robot"
)

// Calib emits the calib.xvr calibration frames: one $IC_AZ_CALIB array entry
// per robot describing its pose relative to the Master. Every pair
// references the Master (row 0) as robot 1 and the row itself as robot 2.
type Calib struct {
	templates *template.Engine
}

// NewCalib constructs the calibration emitter on an existing engine.
func NewCalib(engine *template.Engine) *Calib {
	return &Calib{templates: engine}
}

func (c *Calib) Name() string {
	return "calib"
}

func (c *Calib) Filename() string {
	return CalibFilename
}

func (c *Calib) Encoding() emit.Encoding {
	return emit.EncodingLatin1
}

func (c *Calib) Emit(_ context.Context, table robot.Table) ([]byte, error) {
	master := table.Master()

	members := make([]map[string]any, 0, len(table))
	for i, row := range table {
		done := "FALSE"
		if row.Role == robot.RoleMaster {
			done = "TRUE"
		}
		members = append(members, map[string]any{
			"id":         i + 1,
			"calib_done": done,
			"x":          formatValue(row.X),
			"y":          formatValue(row.Y),
			"z":          formatValue(row.Z),
			"rx":         formatValue(row.RX),
			"ry":         formatValue(row.RY),
			"rz":         formatValue(row.RZ),
			"rob1":       master.Name,
			"rob2":       row.Name,
		})
	}

	text, err := c.templates.RenderTemplate("calib", map[string]any{
		"var_name": calibVariable,
		"members":  members,
	})
	if err != nil {
		return nil, fmt.Errorf("olp: render calib document: %w", err)
	}
	return []byte(text), nil
}
