package rest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-catalog/internal/cache/memcache"
	"github.com/goliatone/go-catalog/pkg/catalog"
	"github.com/goliatone/go-catalog/pkg/storage"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	svc, err := catalog.New(catalog.Dependencies{
		Store: storage.NewMemoryProviders(),
		Cache: memcache.New(),
	})
	if err != nil {
		t.Fatalf("catalog service: %v", err)
	}
	app := fiber.New()
	New(svc, nil).SetupRoutes(app)
	return app
}

func request(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	res, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	raw, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var decoded map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		if err := json.Unmarshal(raw, &decoded); err != nil {
			t.Fatalf("decode body %q: %v", raw, err)
		}
	}
	return res, decoded
}

func TestCrudRoundTrip(t *testing.T) {
	app := newTestApp(t)

	res, menu := request(t, app, http.MethodPost, "/api/v1/menus", map[string]any{
		"title": "Lunch", "description": "weekday lunch",
	})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("create menu status = %d", res.StatusCode)
	}
	menuID := menu["id"].(string)

	res, submenu := request(t, app, http.MethodPost,
		fmt.Sprintf("/api/v1/menus/%s/submenus", menuID),
		map[string]any{"title": "Soups"})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("create submenu status = %d", res.StatusCode)
	}
	submenuID := submenu["id"].(string)

	res, dish := request(t, app, http.MethodPost,
		fmt.Sprintf("/api/v1/menus/%s/submenus/%s/dishes", menuID, submenuID),
		map[string]any{"title": "Borscht", "price": "9.9", "discount": 10})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("create dish status = %d", res.StatusCode)
	}
	if dish["price"] != "9.90" {
		t.Fatalf("dish price = %v, want 9.90", dish["price"])
	}

	res, got := request(t, app, http.MethodGet, "/api/v1/menus/"+menuID, nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("get menu status = %d", res.StatusCode)
	}
	if got["submenus_count"] != float64(1) || got["dishes_count"] != float64(1) {
		t.Fatalf("menu counts = (%v, %v), want (1, 1)", got["submenus_count"], got["dishes_count"])
	}

	res, patched := request(t, app, http.MethodPatch, "/api/v1/menus/"+menuID,
		map[string]any{"description": "all week"})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("patch status = %d", res.StatusCode)
	}
	if patched["title"] != "Lunch" || patched["description"] != "all week" {
		t.Fatalf("patch result = %v", patched)
	}

	res, confirmation := request(t, app, http.MethodDelete, "/api/v1/menus/"+menuID, nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("delete status = %d", res.StatusCode)
	}
	if confirmation["status"] != true {
		t.Fatalf("delete confirmation = %v", confirmation)
	}

	res, body := request(t, app, http.MethodGet, "/api/v1/menus/"+menuID, nil)
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("get deleted menu status = %d", res.StatusCode)
	}
	if body["detail"] != "menu not found" {
		t.Fatalf("detail = %v, want %q", body["detail"], "menu not found")
	}
}

func TestNotFoundNamesTheMissingLevel(t *testing.T) {
	app := newTestApp(t)

	_, menu := request(t, app, http.MethodPost, "/api/v1/menus", map[string]any{"title": "Lunch"})
	menuID := menu["id"].(string)
	missing := "b228ab8c-3fc1-40e0-97a6-7e1c0e5e7401"

	res, body := request(t, app, http.MethodGet,
		fmt.Sprintf("/api/v1/menus/%s/submenus/%s/dishes/%s", missing, missing, missing), nil)
	if res.StatusCode != http.StatusNotFound || body["detail"] != "menu not found" {
		t.Fatalf("status %d detail %v, want 404 menu not found", res.StatusCode, body["detail"])
	}

	res, body = request(t, app, http.MethodGet,
		fmt.Sprintf("/api/v1/menus/%s/submenus/%s/dishes/%s", menuID, missing, missing), nil)
	if res.StatusCode != http.StatusNotFound || body["detail"] != "submenu not found" {
		t.Fatalf("status %d detail %v, want 404 submenu not found", res.StatusCode, body["detail"])
	}
}

func TestRejectsBadInput(t *testing.T) {
	app := newTestApp(t)

	res, _ := request(t, app, http.MethodPost, "/api/v1/menus", map[string]any{"description": "no title"})
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("missing title status = %d, want 400", res.StatusCode)
	}

	_, menu := request(t, app, http.MethodPost, "/api/v1/menus", map[string]any{"title": "Lunch"})
	menuID := menu["id"].(string)
	_, submenu := request(t, app, http.MethodPost,
		fmt.Sprintf("/api/v1/menus/%s/submenus", menuID), map[string]any{"title": "Soups"})
	submenuID := submenu["id"].(string)

	res, _ = request(t, app, http.MethodPost,
		fmt.Sprintf("/api/v1/menus/%s/submenus/%s/dishes", menuID, submenuID),
		map[string]any{"title": "Pho", "price": "not-a-price"})
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad price status = %d, want 400", res.StatusCode)
	}

	res, _ = request(t, app, http.MethodPost,
		fmt.Sprintf("/api/v1/menus/%s/submenus/%s/dishes", menuID, submenuID),
		map[string]any{"title": "Pho", "price": "8.00", "discount": 120})
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad discount status = %d, want 400", res.StatusCode)
	}
}

func TestPreviewEndpoint(t *testing.T) {
	app := newTestApp(t)

	_, menu := request(t, app, http.MethodPost, "/api/v1/menus", map[string]any{"title": "Lunch"})
	menuID := menu["id"].(string)
	_, submenu := request(t, app, http.MethodPost,
		fmt.Sprintf("/api/v1/menus/%s/submenus", menuID), map[string]any{"title": "Soups"})
	submenuID := submenu["id"].(string)
	request(t, app, http.MethodPost,
		fmt.Sprintf("/api/v1/menus/%s/submenus/%s/dishes", menuID, submenuID),
		map[string]any{"title": "Borscht", "price": "9.99"})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/menus/preview", nil)
	res, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("preview status = %d", res.StatusCode)
	}
	var tree []map[string]any
	if err := json.NewDecoder(res.Body).Decode(&tree); err != nil {
		t.Fatalf("decode preview: %v", err)
	}
	if len(tree) != 1 {
		t.Fatalf("preview menus = %d, want 1", len(tree))
	}
	submenus := tree[0]["submenus"].([]any)
	dishes := submenus[0].(map[string]any)["dishes"].([]any)
	if len(dishes) != 1 {
		t.Fatalf("preview dishes = %d, want 1", len(dishes))
	}
}
