package dto

// DefaultPageLimit tamaño de página cuando no se envía limit.
const DefaultPageLimit = 50

// PageRequest paginación por offset de listados largos (ej: saldos pendientes).
type PageRequest struct {
	Limit  int `query:"limit" validate:"omitempty,min=1,max=500"`
	Offset int `query:"offset" validate:"omitempty,min=0"`
}

// Size tamaño de página efectivo: Limit, o DefaultPageLimit si es cero.
func (p PageRequest) Size() int {
	if p.Limit <= 0 {
		return DefaultPageLimit
	}
	return p.Limit
}

// Bounds devuelve los índices [lo, hi) de la página dentro de n elementos.
// Un offset fuera de rango da una página vacía.
func (p PageRequest) Bounds(n int) (lo, hi int) {
	lo = min(max(p.Offset, 0), n)
	hi = min(lo+p.Size(), n)
	return lo, hi
}

// PageResponse metadatos de la página devuelta. Total cuenta todos los elementos, no solo la página.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
