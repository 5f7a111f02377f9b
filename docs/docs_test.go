package docs

import (
	"encoding/json"
	"testing"

	"github.com/swaggo/swag"
)

func TestSwaggerDocRegistered(t *testing.T) {
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	if err != nil {
		t.Fatalf("swag.ReadDoc: %v", err)
	}

	var doc struct {
		Swagger string                     `json:"swagger"`
		Schemes []string                   `json:"schemes"`
		Info    struct{ Title string }     `json:"info"`
		Paths   map[string]json.RawMessage `json:"paths"`
	}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("rendered doc is not valid JSON: %v", err)
	}

	if doc.Swagger != "2.0" || doc.Info.Title != "Syllabus Tracker API" {
		t.Errorf("unexpected header: %+v", doc)
	}
	if len(doc.Schemes) != 1 || doc.Schemes[0] != "http" {
		t.Errorf("schemes = %v", doc.Schemes)
	}
	for _, path := range []string{"/api/v1/sessions", "/api/v1/sessions/{id}/upload", "/api/v1/sessions/{id}/calendar.ics", "/health"} {
		if _, ok := doc.Paths[path]; !ok {
			t.Errorf("missing path %s", path)
		}
	}
}
