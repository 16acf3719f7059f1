package inventory

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/domain/entity"
)

// Los collators y casers de x/text no son seguros para uso concurrente: se crean por llamada.

func newCollator() *collate.Collator {
	return collate.New(language.Spanish, collate.IgnoreCase)
}

// SortCategories ordena por nombre con intercalación española sin distinguir mayúsculas.
// Es estable: empates conservan el orden recibido.
func SortCategories(categories []*entity.Category) {
	c := newCollator()
	sort.SliceStable(categories, func(i, j int) bool {
		return c.CompareString(categories[i].Name, categories[j].Name) < 0
	})
}

// SortProducts ordena por nombre de producto (intercalación española, estable).
func SortProducts(products []*entity.ProductView) {
	c := newCollator()
	sort.SliceStable(products, func(i, j int) bool {
		return c.CompareString(products[i].Name, products[j].Name) < 0
	})
}

// FilterProducts devuelve los productos cuyo código, nombre o categoría contienen term,
// sin distinguir mayúsculas (plegado Unicode). term vacío devuelve todos.
func FilterProducts(products []*entity.ProductView, term string) []*entity.ProductView {
	fold := cases.Fold()
	needle := fold.String(strings.TrimSpace(term))
	if needle == "" {
		return products
	}
	out := make([]*entity.ProductView, 0, len(products))
	for _, p := range products {
		category := ""
		if p.CategoryName != nil {
			category = *p.CategoryName
		}
		if strings.Contains(fold.String(p.Code), needle) ||
			strings.Contains(fold.String(p.Name), needle) ||
			strings.Contains(fold.String(category), needle) {
			out = append(out, p)
		}
	}
	return out
}
