package dto

import "math"

// PageSize tamaño fijo de página de los listados.
const PageSize = 20

// MaxPage última página aceptada; el offset cabe en un int32.
const MaxPage = math.MaxInt32 / PageSize

// PageRequest paginación 1-based (?page=N).
type PageRequest struct {
	Page int `query:"page"`
}

// Normalize lleva las páginas fuera de rango a la primera o a MaxPage.
func (p *PageRequest) Normalize() {
	switch {
	case p.Page < 1:
		p.Page = 1
	case p.Page > MaxPage:
		p.Page = MaxPage
	}
}

// Limit filas por página.
func (p PageRequest) Limit() int {
	return PageSize
}

// Offset filas a saltar para la página actual.
func (p PageRequest) Offset() int {
	p.Normalize()
	return (p.Page - 1) * PageSize
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Page       int  `json:"page"`
	PageSize   int  `json:"page_size"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasPrev    bool `json:"has_prev"`
	HasNext    bool `json:"has_next"`
}

// NewPageResponse calcula los metadatos a partir de la página pedida y el total.
func NewPageResponse(req PageRequest, total int) PageResponse {
	req.Normalize()
	pages := (total + PageSize - 1) / PageSize
	if pages == 0 {
		pages = 1
	}
	return PageResponse{
		Page:       req.Page,
		PageSize:   PageSize,
		Total:      total,
		TotalPages: pages,
		HasPrev:    req.Page > 1,
		HasNext:    req.Page < pages,
	}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CreatedResponse id del recurso creado.
type CreatedResponse struct {
	ID int64 `json:"id"`
}
