package emit

import (
	"context"

	"github.com/olptools/iicgen/pkg/robot"
)

// Emitter converts the robot table into one configuration document. The
// returned bytes are UTF-8 text; Encode applies the emitter's on-disk
// encoding before the document is written.
type Emitter interface {
	Name() string
	Filename() string
	Encoding() Encoding
	Emit(ctx context.Context, table robot.Table) ([]byte, error)
}
