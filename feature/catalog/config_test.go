package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaterialNames(t *testing.T) {
	tests := []struct {
		name      string
		materials string
		want      []string
	}{
		{"default list", "Steel,Stainless Steel,Brass", []string{"Steel", "Stainless Steel", "Brass"}},
		{"trims whitespace", " Steel , Brass ", []string{"Steel", "Brass"}},
		{"drops empty entries", "Steel,,Brass,", []string{"Steel", "Brass"}},
		{"single entry", "Steel", []string{"Steel"}},
		{"empty", "", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Materials: tt.materials}
			assert.Equal(t, tt.want, cfg.MaterialNames())
		})
	}
}

func TestIsValidDelimiter(t *testing.T) {
	assert.True(t, Config{Delimiter: ";"}.IsValidDelimiter())
	assert.True(t, Config{Delimiter: ","}.IsValidDelimiter())
	assert.False(t, Config{Delimiter: "\t"}.IsValidDelimiter())
	assert.False(t, Config{Delimiter: ""}.IsValidDelimiter())
	assert.False(t, Config{Delimiter: ";;"}.IsValidDelimiter())
}
