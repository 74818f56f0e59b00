package handlers

import (
	"fmt"
	"strings"

	"github.com/musaver/homesadmin/internal/models"
)

// resolveAddonTitle picks a display title for a stored addon selection.
// Priority: embedded addonTitle, then title, then name, then a catalog
// lookup by id, then a positional fallback label.
func resolveAddonTitle(sel models.AddonSelection, catalog map[string]models.Addon, position int) string {
	for _, candidate := range []string{sel.AddonTitle, sel.Title, sel.Name} {
		if trimmed := strings.TrimSpace(candidate); trimmed != "" {
			return trimmed
		}
	}

	if id := strings.TrimSpace(sel.AddonID); id != "" {
		if entry, ok := catalog[id]; ok && strings.TrimSpace(entry.Title) != "" {
			return strings.TrimSpace(entry.Title)
		}
	}

	return fmt.Sprintf("Addon %d", position+1)
}

// addonTitles resolves every selection on an item, keeping input order.
func addonTitles(addons []models.AddonSelection, catalog map[string]models.Addon) []string {
	titles := make([]string, 0, len(addons))
	for i, sel := range addons {
		titles = append(titles, resolveAddonTitle(sel, catalog, i))
	}
	return titles
}
