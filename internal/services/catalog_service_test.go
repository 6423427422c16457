package services

import (
	"strings"
	"testing"
)

func TestCatalogServiceEmbeddedDefault(t *testing.T) {
	svc, err := NewCatalogService("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	products := svc.Products()
	if len(products) != 3 {
		t.Fatalf("expected 3 default products, got %d", len(products))
	}

	p1, ok := svc.Product("p1")
	if !ok {
		t.Fatalf("expected p1 to resolve")
	}
	if p1.Name != "Gym Weight" {
		t.Fatalf("expected Gym Weight, got %q", p1.Name)
	}
	if p1.UnitPrice != 24000 {
		t.Fatalf("expected price 24000, got %d", p1.UnitPrice)
	}
	if !strings.Contains(p1.DescriptionHTML, "strength training") {
		t.Fatalf("expected rendered description, got %q", p1.DescriptionHTML)
	}
}

func TestCatalogServiceUnknownID(t *testing.T) {
	svc, err := NewCatalogService("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := svc.Product("nope"); ok {
		t.Fatalf("expected miss for unknown id")
	}
	if _, ok := svc.Product(""); ok {
		t.Fatalf("expected miss for empty id")
	}
}

func TestCatalogServiceSanitizesDescriptions(t *testing.T) {
	raw := []byte(`
products:
  - id: x1
    name: Scripted
    price_cents: 100
    description: |
      Hello <script>alert(1)</script> **world**
`)
	svc, err := newCatalogFromYAML(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p, ok := svc.Product("x1")
	if !ok {
		t.Fatalf("expected x1 to resolve")
	}
	if strings.Contains(p.DescriptionHTML, "<script>") {
		t.Fatalf("expected script stripped, got %q", p.DescriptionHTML)
	}
	if !strings.Contains(p.DescriptionHTML, "<strong>world</strong>") {
		t.Fatalf("expected markdown rendered, got %q", p.DescriptionHTML)
	}
}

func TestCatalogServiceSkipsInvalidEntries(t *testing.T) {
	raw := []byte(`
products:
  - id: ""
    name: No ID
  - id: ok
    name: OK
    price_cents: -50
  - id: ok
    name: Duplicate
    price_cents: 10
`)
	svc, err := newCatalogFromYAML(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	products := svc.Products()
	if len(products) != 1 {
		t.Fatalf("expected 1 product, got %d", len(products))
	}
	if products[0].UnitPrice != 0 {
		t.Fatalf("expected negative price coerced to 0, got %d", products[0].UnitPrice)
	}
	if products[0].Name != "OK" {
		t.Fatalf("expected first occurrence kept, got %q", products[0].Name)
	}
}

func TestCatalogServiceRejectsMalformedYAML(t *testing.T) {
	if _, err := newCatalogFromYAML([]byte("products: {not a list")); err == nil {
		t.Fatalf("expected parse error")
	}
}
