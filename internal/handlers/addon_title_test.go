package handlers

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/musaver/homesadmin/internal/models"
)

func TestResolveAddonTitlePriority(t *testing.T) {
	catalogID := primitive.NewObjectID()
	catalog := map[string]models.Addon{
		catalogID.Hex(): {ID: catalogID, Title: "Assembly Service"},
	}

	tests := []struct {
		name string
		sel  models.AddonSelection
		want string
	}{
		{"addonTitle wins", models.AddonSelection{AddonTitle: "Gift Wrap", Title: "ignored", Name: "ignored"}, "Gift Wrap"},
		{"title next", models.AddonSelection{Title: "Wax Finish", Name: "ignored"}, "Wax Finish"},
		{"name next", models.AddonSelection{Name: "Extra Screws"}, "Extra Screws"},
		{"catalog lookup", models.AddonSelection{AddonID: catalogID.Hex()}, "Assembly Service"},
		{"positional fallback", models.AddonSelection{AddonID: "unknown"}, "Addon 3"},
		{"blank titles skipped", models.AddonSelection{AddonTitle: "  ", Title: "", Name: "Real Name"}, "Real Name"},
	}
	for _, tt := range tests {
		if got := resolveAddonTitle(tt.sel, catalog, 2); got != tt.want {
			t.Fatalf("%s: got %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestAddonTitlesKeepsOrder(t *testing.T) {
	titles := addonTitles([]models.AddonSelection{
		{Title: "First"},
		{},
		{Name: "Third"},
	}, nil)

	want := []string{"First", "Addon 2", "Third"}
	for i, title := range titles {
		if title != want[i] {
			t.Fatalf("position %d: got %q, want %q", i, title, want[i])
		}
	}
}
