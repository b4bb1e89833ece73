package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/ventas-api/internal/application/dto"
)

func TestPageRequest_Bounds(t *testing.T) {
	tests := []struct {
		name   string
		page   dto.PageRequest
		n      int
		lo, hi int
	}{
		{"por defecto", dto.PageRequest{}, 120, 0, dto.DefaultPageLimit},
		{"menos que una página", dto.PageRequest{}, 3, 0, 3},
		{"segunda página", dto.PageRequest{Limit: 10, Offset: 10}, 25, 10, 20},
		{"última incompleta", dto.PageRequest{Limit: 10, Offset: 20}, 25, 20, 25},
		{"offset fuera de rango", dto.PageRequest{Limit: 10, Offset: 40}, 25, 25, 25},
		{"offset negativo", dto.PageRequest{Limit: 5, Offset: -3}, 25, 0, 5},
		{"vacío", dto.PageRequest{Limit: 5}, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := tt.page.Bounds(tt.n)
			assert.Equal(t, tt.lo, lo)
			assert.Equal(t, tt.hi, hi)
		})
	}
}

func TestPageRequest_Size(t *testing.T) {
	assert.Equal(t, dto.DefaultPageLimit, dto.PageRequest{}.Size())
	assert.Equal(t, 7, dto.PageRequest{Limit: 7}.Size())
}
