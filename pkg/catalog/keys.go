package catalog

// Cache keys live in one place so the invalidation scopes cannot drift from
// the key builder. Keys are plain strings: any process speaking JSON can
// share the same cache.

const previewKey = "preview"

func menusKey() string { return "menus" }

func menuKey(id string) string { return "menu:" + id }

func submenusKey(menuID string) string { return "submenus:" + menuID }

func submenuKey(id string) string { return "submenu:" + id }

func dishesKey(menuID, submenuID string) string { return "dishes:" + menuID + ":" + submenuID }

func dishKey(id string) string { return "dish:" + id }

// Invalidation scopes are bottom-up: a write at any level stales the cached
// views of every ancestor that embeds a count or nested payload, plus the
// preview blob. Over-invalidation only costs hit rate; under-invalidation
// serves stale counts.

func menuScope() []string {
	return []string{menusKey(), previewKey}
}

func submenuScope(menuID string) []string {
	return []string{submenusKey(menuID), menuKey(menuID), menusKey(), previewKey}
}

func dishScope(menuID, submenuID string) []string {
	return []string{
		dishesKey(menuID, submenuID),
		submenuKey(submenuID),
		menuKey(menuID),
		submenusKey(menuID),
		menusKey(),
		previewKey,
	}
}
