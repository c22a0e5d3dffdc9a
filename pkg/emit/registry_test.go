package emit

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/olptools/iicgen/pkg/robot"
)

type stubEmitter struct {
	name string
}

func (s stubEmitter) Name() string       { return s.name }
func (s stubEmitter) Filename() string   { return s.name + ".xml" }
func (s stubEmitter) Encoding() Encoding { return EncodingUTF8 }
func (s stubEmitter) Emit(context.Context, robot.Table) ([]byte, error) {
	return []byte(s.name), nil
}

func TestRegistryPreservesRegistrationOrder(t *testing.T) {
	registry := NewRegistry()
	for _, name := range []string{"ring", "members", "calib", "chk"} {
		if err := registry.Register(stubEmitter{name: name}); err != nil {
			t.Fatalf("register %s: %v", name, err)
		}
	}

	want := []string{"ring", "members", "calib", "chk"}
	if diff := cmp.Diff(want, registry.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}

	ordered := registry.Ordered()
	if len(ordered) != len(want) {
		t.Fatalf("ordered length = %d, want %d", len(ordered), len(want))
	}
	for i, emitter := range ordered {
		if emitter.Name() != want[i] {
			t.Fatalf("ordered[%d] = %q, want %q", i, emitter.Name(), want[i])
		}
	}
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(stubEmitter{name: "ring"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := registry.Register(stubEmitter{name: "ring"}); err == nil {
		t.Fatal("duplicate registration should fail")
	}
}

func TestRegistryGet(t *testing.T) {
	registry := NewRegistry()
	registry.MustRegister(stubEmitter{name: "ring"})

	if !registry.Has("ring") {
		t.Fatal("Has(ring) = false")
	}
	emitter, err := registry.Get("ring")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if emitter.Filename() != "ring.xml" {
		t.Fatalf("filename = %q", emitter.Filename())
	}
	if _, err := registry.Get("missing"); err == nil {
		t.Fatal("Get(missing) should fail")
	}
}

func TestEncodeLatin1(t *testing.T) {
	out, err := Encode(EncodingLatin1, []byte("café"))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	want := []byte{'c', 'a', 'f', 0xe9}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Fatalf("latin-1 bytes mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeUTF8PassThrough(t *testing.T) {
	in := []byte("<MEMBER/>")
	out, err := Encode(EncodingUTF8, in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if string(out) != string(in) {
		t.Fatalf("utf-8 should pass through, got %q", out)
	}
}
