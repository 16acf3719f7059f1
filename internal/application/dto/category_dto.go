package dto

import "github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/domain/entity"

// CategoryRequest entrada para crear o renombrar una categoría.
type CategoryRequest struct {
	Name string `json:"name" validate:"notblank,max=100"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CategoryDeletedResponse resultado de borrar una categoría.
type CategoryDeletedResponse struct {
	ID               string `json:"id"`
	DetachedProducts int64  `json:"detached_products"`
}

// NewCategoryResponse mapea la entidad a la respuesta.
func NewCategoryResponse(c *entity.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name}
}

// NewCategoryList mapea una lista de categorías.
func NewCategoryList(list []*entity.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, NewCategoryResponse(c))
	}
	return out
}
