package dto

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageRequest_Offset(t *testing.T) {
	tests := []struct {
		name string
		page int
		want int
	}{
		{"sin página", 0, 0},
		{"negativa", -3, 0},
		{"primera", 1, 0},
		{"tercera", 3, 40},
		{"enorme se acota", 922337203685477581, (MaxPage - 1) * PageSize},
		{"máximo int", math.MaxInt, (MaxPage - 1) * PageSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PageRequest{Page: tt.page}.Offset()
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0)
		})
	}
}

func TestNewPageResponse_PaginaEnormeSeAcota(t *testing.T) {
	p := NewPageResponse(PageRequest{Page: math.MaxInt}, 45)

	assert.Equal(t, MaxPage, p.Page)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasPrev)
	assert.False(t, p.HasNext)
}
