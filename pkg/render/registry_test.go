package render_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/advocflow/docgen/pkg/document"
	"github.com/advocflow/docgen/pkg/render"
)

type stubRenderer struct{ name string }

func (s stubRenderer) Name() string        { return s.name }
func (s stubRenderer) ContentType() string { return "text/plain" }
func (s stubRenderer) Render(context.Context, document.Rendered, render.Options) ([]byte, error) {
	return []byte(s.name), nil
}

func TestRegistryRegisterAndGet(t *testing.T) {
	reg := render.NewRegistry()
	if err := reg.Register(stubRenderer{name: "print"}); err != nil {
		t.Fatalf("Register() error: %v", err)
	}

	got, err := reg.Get("print")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got.Name() != "print" {
		t.Errorf("Get().Name() = %q", got.Name())
	}
	if _, err := reg.Get("missing"); err == nil {
		t.Error("Get(missing): want error")
	}
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	reg := render.NewRegistry()
	if err := reg.Register(stubRenderer{name: "print"}); err != nil {
		t.Fatalf("Register() error: %v", err)
	}
	if err := reg.Register(stubRenderer{name: "print"}); err == nil {
		t.Error("duplicate Register: want error")
	}
	if err := reg.Register(nil); err == nil {
		t.Error("nil Register: want error")
	}
}

func TestRegistryList(t *testing.T) {
	reg := render.NewRegistry()
	for _, name := range []string{"print", "draft"} {
		if err := reg.Register(stubRenderer{name: name}); err != nil {
			t.Fatalf("Register(%s) error: %v", name, err)
		}
	}
	if diff := cmp.Diff([]string{"draft", "print"}, reg.List()); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}
	if !reg.Has("print") || reg.Has("missing") {
		t.Error("Has() misreported registration state")
	}
}
