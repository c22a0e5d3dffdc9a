package robot

import "strings"

// Role designates the controlling robot (Master, exactly one per ring)
// versus member robots (Slave).
type Role string

const (
	RoleMaster Role = "Master"
	RoleSlave  Role = "Slave"
)

// Record is one row of the robot table.
type Record struct {
	Name       string
	Role       Role
	Type       string
	X, Y, Z    Value
	RX, RY, RZ Value
	IP         string
}

// Table is the normalized robot roster: Master at index 0, Slaves in source
// order. Row order is significant: it determines the 1-based member id used
// in every generated document, and row 0 is the "robot 1" reference of every
// calibration pair.
type Table []Record

// Master returns the controlling row. Tables built by BuildTable always
// carry it at index 0.
func (t Table) Master() Record {
	return t[0]
}

// CleanName derives the canonical short controller identifier from a raw
// robot name: all '+' and '=' characters are removed, then everything from
// the first '-' on is dropped. The transform is idempotent.
func CleanName(name string) string {
	cleaned := strings.NewReplacer("+", "", "=", "").Replace(name)
	if i := strings.Index(cleaned, "-"); i >= 0 {
		cleaned = cleaned[:i]
	}
	return cleaned
}

// BuildTable normalizes a parsed network description into the row-per-robot
// table consumed by the emitters: the Master row first, built from the
// top-level fields with placeholder positions, then one Slave row per
// measurement with its fields copied verbatim.
func BuildTable(doc Document) Table {
	table := make(Table, 0, len(doc.Measurements)+1)

	master := Record{
		Name: CleanName(doc.RobotName),
		Role: RoleMaster,
		Type: doc.RobotType,
		X:    Placeholder,
		Y:    Placeholder,
		Z:    Placeholder,
		RX:   Placeholder,
		RY:   Placeholder,
		RZ:   Placeholder,
		IP:   doc.IP,
	}
	if master.IP == "" {
		master.IP = Placeholder
	}
	table = append(table, master)

	for _, m := range doc.Measurements {
		table = append(table, Record{
			Name: CleanName(m.RobotName),
			Role: RoleSlave,
			Type: m.RobotType,
			X:    m.X,
			Y:    m.Y,
			Z:    m.Z,
			RX:   m.RX,
			RY:   m.RY,
			RZ:   m.RZ,
			IP:   Placeholder,
		})
	}
	return table
}
