package services

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"os"
	"strings"

	_ "embed"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"gopkg.in/yaml.v3"

	domain "github.com/GarwanshiJain/ecommerce.repo/internal/domain"
)

//go:embed default_catalog.yaml
var defaultCatalogYAML []byte

// catalogFile is the on-disk shape of the product catalog.
type catalogFile struct {
	Products []catalogProductEntry `yaml:"products"`
}

type catalogProductEntry struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	PriceCents  int64  `yaml:"price_cents"`
	Description string `yaml:"description"`
	Image       string `yaml:"image"`
}

type catalogService struct {
	products []CatalogProduct
	byID     map[string]CatalogProduct
}

// NewCatalogService loads the read-only catalog from path, falling back to
// the embedded default catalog when the path is empty or missing. Product
// descriptions are markdown, rendered once at load and sanitized before they
// ever reach a template.
func NewCatalogService(path string) (CatalogService, error) {
	raw := defaultCatalogYAML
	if trimmed := strings.TrimSpace(path); trimmed != "" {
		data, err := os.ReadFile(trimmed)
		if err == nil {
			raw = data
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("catalog service: read %s: %w", trimmed, err)
		}
	}
	return newCatalogFromYAML(raw)
}

func newCatalogFromYAML(raw []byte) (CatalogService, error) {
	var file catalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("catalog service: parse catalog: %w", err)
	}

	md := goldmark.New()
	policy := bluemonday.UGCPolicy()

	svc := &catalogService{byID: make(map[string]CatalogProduct, len(file.Products))}
	for _, entry := range file.Products {
		id := strings.TrimSpace(entry.ID)
		name := strings.TrimSpace(entry.Name)
		if id == "" || name == "" {
			continue
		}
		price := entry.PriceCents
		if price < 0 {
			price = 0
		}

		var buf bytes.Buffer
		if err := md.Convert([]byte(entry.Description), &buf); err != nil {
			return nil, fmt.Errorf("catalog service: render description for %s: %w", id, err)
		}
		descriptionHTML := policy.Sanitize(buf.String())

		product := CatalogProduct{
			Product: domain.Product{
				ID:          id,
				Name:        name,
				UnitPrice:   price,
				Description: entry.Description,
				Image:       strings.TrimSpace(entry.Image),
			},
			DescriptionHTML: descriptionHTML,
		}
		if _, exists := svc.byID[id]; exists {
			continue
		}
		svc.products = append(svc.products, product)
		svc.byID[id] = product
	}

	return svc, nil
}

// Products lists catalog entries in file order.
func (s *catalogService) Products() []CatalogProduct {
	out := make([]CatalogProduct, len(s.products))
	copy(out, s.products)
	return out
}

// Product resolves a catalog entry by id.
func (s *catalogService) Product(id string) (CatalogProduct, bool) {
	product, ok := s.byID[strings.TrimSpace(id)]
	return product, ok
}

// SafeDescription exposes the sanitized description for templates.
func (p CatalogProduct) SafeDescription() template.HTML {
	return template.HTML(p.DescriptionHTML)
}
