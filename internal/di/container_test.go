package di

import (
	"context"
	"testing"

	"github.com/goliatone/go-catalog/pkg/catalog"
	"github.com/goliatone/go-catalog/pkg/config"
)

func TestNewFallsBackToDefaults(t *testing.T) {
	container, err := New(Options{})
	if err != nil {
		t.Fatalf("new container: %v", err)
	}
	if container.Catalog == nil || container.Commands == nil || container.Handlers == nil {
		t.Fatal("container missing core wiring")
	}
	if container.Reconciler != nil {
		t.Fatal("reconciler should stay disabled by default")
	}

	// memory fallback must be usable end to end
	menu, err := container.Catalog.CreateMenu(context.Background(),
		catalog.MenuInput{Title: "Lunch"})
	if err != nil {
		t.Fatalf("create menu through container: %v", err)
	}
	if menu.ID.String() == "" {
		t.Fatal("menu id not assigned")
	}
}

func TestNewEnablesReconciler(t *testing.T) {
	cfg := config.Defaults()
	cfg.Reconciler.Enabled = true
	cfg.Reconciler.SourcePath = "testdata/menu.xlsx"

	container, err := New(Options{Config: cfg})
	if err != nil {
		t.Fatalf("new container: %v", err)
	}
	if container.Reconciler == nil {
		t.Fatal("reconciler not wired")
	}
}
