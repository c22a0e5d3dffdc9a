package olp

import (
	"context"
	"fmt"

	"github.com/olptools/iicgen/pkg/emit"
	"github.com/olptools/iicgen/pkg/emit/template"
	"github.com/olptools/iicgen/pkg/robot"
)

// Members emits the members.xvr registry: one $IC_AZ_MEMBR array entry per
// robot. The ring-manager name is only disclosed on the Master's own entry;
// Slave entries carry the masked placeholder.
type Members struct {
	templates *template.Engine
}

// NewMembers constructs the member-registry emitter on an existing engine.
func NewMembers(engine *template.Engine) *Members {
	return &Members{templates: engine}
}

func (m *Members) Name() string {
	return "members"
}

func (m *Members) Filename() string {
	return MembersFilename
}

func (m *Members) Encoding() emit.Encoding {
	return emit.EncodingLatin1
}

func (m *Members) Emit(_ context.Context, table robot.Table) ([]byte, error) {
	members := make([]map[string]any, 0, len(table))
	for i, row := range table {
		manager := maskedManager
		if row.Role == robot.RoleMaster {
			manager = row.Name
		}
		members = append(members, map[string]any{
			"id":          i + 1,
			"zmgr_name":   manager,
			"member_name": row.Name,
			"role":        string(row.Role),
		})
	}

	text, err := m.templates.RenderTemplate("members", map[string]any{
		"var_name": membersVariable,
		"members":  members,
	})
	if err != nil {
		return nil, fmt.Errorf("olp: render members document: %w", err)
	}
	return []byte(text), nil
}
