package olp

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/olptools/iicgen/pkg/emit"
	"github.com/olptools/iicgen/pkg/robot"
)

func scenarioTable() robot.Table {
	return robot.Table{
		{
			Name: "RIV", Role: robot.RoleMaster, Type: "T1",
			X: robot.Placeholder, Y: robot.Placeholder, Z: robot.Placeholder,
			RX: robot.Placeholder, RY: robot.Placeholder, RZ: robot.Placeholder,
			IP: "10.0.0.1",
		},
		{
			Name: "RIV", Role: robot.RoleSlave, Type: "T2",
			X: "1.0", Y: "2.0", Z: "3.0",
			RX: "0", RY: "0", RZ: "0",
			IP: robot.Placeholder,
		},
	}
}

func emitterByName(t *testing.T, name string) emit.Emitter {
	t.Helper()
	registry, err := New()
	if err != nil {
		t.Fatalf("new emitters: %v", err)
	}
	emitter, err := registry.Get(name)
	if err != nil {
		t.Fatalf("get %s: %v", name, err)
	}
	return emitter
}

func TestNewRegistersGenerationOrder(t *testing.T) {
	registry, err := New()
	if err != nil {
		t.Fatalf("new emitters: %v", err)
	}
	want := []string{"ring", "members", "calib", "chk"}
	if diff := cmp.Diff(want, registry.Names()); diff != "" {
		t.Fatalf("generation order mismatch (-want +got):\n%s", diff)
	}
}

func TestRingDocument(t *testing.T) {
	emitter := emitterByName(t, "ring")
	if emitter.Filename() != "ROSIPCFG.xml" {
		t.Fatalf("filename = %q", emitter.Filename())
	}
	if emitter.Encoding() != emit.EncodingUTF8 {
		t.Fatalf("encoding = %q, want utf-8", emitter.Encoding())
	}

	got, err := emitter.Emit(context.Background(), scenarioTable())
	if err != nil {
		t.Fatalf("emit: %v", err)
	}

	want := `<ROSIPCFG>
<ROBOTRING count="2" timeslot="400">
    <MEMBER name="RIV" ipadd="10.0.0.1"/>
    <MEMBER name="RIV" ipadd="NA"/>
</ROBOTRING>
</ROSIPCFG>`
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Fatalf("ring document mismatch (-want +got):\n%s", diff)
	}
}

func TestRingCountTracksTableLength(t *testing.T) {
	emitter := emitterByName(t, "ring")

	table := scenarioTable()
	for i := 0; i < 3; i++ {
		table = append(table, robot.Record{
			Name: fmt.Sprintf("SLV%d", i), Role: robot.RoleSlave, IP: robot.Placeholder,
		})
		got, err := emitter.Emit(context.Background(), table)
		if err != nil {
			t.Fatalf("emit: %v", err)
		}
		wantAttr := fmt.Sprintf("count=%q", fmt.Sprint(len(table)))
		if !containsOnce(string(got), wantAttr) {
			t.Fatalf("document should carry %s exactly once:\n%s", wantAttr, got)
		}
	}
}

func TestMembersDocument(t *testing.T) {
	emitter := emitterByName(t, "members")
	if emitter.Filename() != "members.xvr" {
		t.Fatalf("filename = %q", emitter.Filename())
	}
	if emitter.Encoding() != emit.EncodingLatin1 {
		t.Fatalf("encoding = %q, want iso-8859-1", emitter.Encoding())
	}

	got, err := emitter.Emit(context.Background(), scenarioTable())
	if err != nil {
		t.Fatalf("emit: %v", err)
	}

	want := `<!-- <Rivian code gen 1.0" /> -->
<?xml version="1.0" encoding="iso-8859-1"?>
<XMLVAR version="V9.30126 2/12/2021">
 <PROG name="*SYSTEM*">
  <VAR name="$IC_AZ_MEMBR">
    <ARRAY name = "$IC_AZ_MEMBR[1]">
      <FIELD name="$ZMGR_NAME" prot ="RW">RIV</FIELD>
      <FIELD name="$MEMBER_NAME" prot ="RW">RIV</FIELD>
      <FIELD name="$GROUP" prot ="RW">1</FIELD>
      <FIELD name="$COMMENT" prot ="RW">Master</FIELD>
    </ARRAY>
    <ARRAY name = "$IC_AZ_MEMBR[2]">
      <FIELD name="$ZMGR_NAME" prot ="RW">********</FIELD>
      <FIELD name="$MEMBER_NAME" prot ="RW">RIV</FIELD>
      <FIELD name="$GROUP" prot ="RW">1</FIELD>
      <FIELD name="$COMMENT" prot ="RW">Slave</FIELD>
    </ARRAY>
  </VAR>
 </PROG>
</XMLVAR>
`
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Fatalf("members document mismatch (-want +got):\n%s", diff)
	}
}

func TestCalibDocument(t *testing.T) {
	emitter := emitterByName(t, "calib")
	if emitter.Filename() != "calib.xvr" {
		t.Fatalf("filename = %q", emitter.Filename())
	}
	if emitter.Encoding() != emit.EncodingLatin1 {
		t.Fatalf("encoding = %q, want iso-8859-1", emitter.Encoding())
	}

	got, err := emitter.Emit(context.Background(), scenarioTable())
	if err != nil {
		t.Fatalf("emit: %v", err)
	}

	want := `<!-- <Rivian code gen 1.0" /> -->
<?xml version="1.0" encoding="iso-8859-1"?>
<XMLVAR version="V9.30126 2/12/2021">
 <PROG name="*SYSTEM*">
  <VAR name="$IC_AZ_CALIB">
    <ARRAY name = "$IC_AZ_CALIB[1]">
      <FIELD name="$CALIB_DONE" prot ="RW">TRUE</FIELD>
      <FIELD name="$CALIB_FRAME" prot ="RW">
  gnum: 1 rep: 1 axes: 0 utool: 255 uframe: 255 Config: N D B, 0, 0, 0
  X:      0.000000   Y:      0.000000   Z:      0.000000
  W:      0.000000   P:      0.000000   R:      0.000000</FIELD>
      <FIELD name="$ROB1_NAME" prot ="RW">RIV</FIELD>
      <FIELD name="$ROB2_NAME" prot ="RW">RIV</FIELD>
    </ARRAY>
    <ARRAY name = "$IC_AZ_CALIB[2]">
      <FIELD name="$CALIB_DONE" prot ="RW">FALSE</FIELD>
      <FIELD name="$CALIB_FRAME" prot ="RW">
  gnum: 1 rep: 1 axes: 0 utool: 255 uframe: 255 Config: N D B, 0, 0, 0
  X:      1.0   Y:      2.0   Z:      3.0
  W:      0   P:      0   R:      0</FIELD>
      <FIELD name="$ROB1_NAME" prot ="RW">RIV</FIELD>
      <FIELD name="$ROB2_NAME" prot ="RW">RIV</FIELD>
    </ARRAY>
  </VAR>
 </PROG>
</XMLVAR>
`
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Fatalf("calib document mismatch (-want +got):\n%s", diff)
	}
}

func TestCalibRobotOneIsAlwaysRowZero(t *testing.T) {
	emitter := emitterByName(t, "calib")

	table := scenarioTable()
	table[0].Name = "MAST"
	table = append(table, robot.Record{Name: "THIRD", Role: robot.RoleSlave, IP: robot.Placeholder})

	got, err := emitter.Emit(context.Background(), table)
	if err != nil {
		t.Fatalf("emit: %v", err)
	}

	rob1 := `<FIELD name="$ROB1_NAME" prot ="RW">MAST</FIELD>`
	if n := strings.Count(string(got), rob1); n != len(table) {
		t.Fatalf("every entry should reference row 0 as robot 1: found %d of %d", n, len(table))
	}
}

func TestChkDocument(t *testing.T) {
	emitter := emitterByName(t, "chk")
	if emitter.Filename() != "iic_chk.xvr" {
		t.Fatalf("filename = %q", emitter.Filename())
	}

	got, err := emitter.Emit(context.Background(), scenarioTable())
	if err != nil {
		t.Fatalf("emit: %v", err)
	}

	want := `<!-- <Rivian code gen 1.0" /> -->
<?xml version="1.0" encoding="iso-8859-1"?>
<XMLVAR version="V9.30126 2/12/2021">
 <PROG name="*SYSTEM*">
  <VAR name="$IA_CHKCMB">
    <ARRAY name = "$IA_CHKCMB[1]">
      <FIELD name="$R_CNTLR" prot ="RW">RIV</FIELD>
    </ARRAY>
    <ARRAY name = "$IA_CHKCMB[2]">
      <FIELD name="$R_CNTLR" prot ="RW">RIV</FIELD>
    </ARRAY>
  </VAR>
 </PROG>
</XMLVAR>
`
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Fatalf("chk document mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatValue(t *testing.T) {
	if got := formatValue(robot.Placeholder); got != "0.000000" {
		t.Fatalf("formatValue(NA) = %q, want 0.000000", got)
	}
	if got := formatValue("12.345"); got != "12.345" {
		t.Fatalf("formatValue should pass values through, got %q", got)
	}
	if got := formatValue("not-a-number"); got != "not-a-number" {
		t.Fatalf("formatValue must not validate numerics, got %q", got)
	}
}

func containsOnce(s, sub string) bool {
	return strings.Count(s, sub) == 1
}
