package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GrimArmory_Go/internal/domain"
)

func TestParseLegacyInventory(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []domain.InventoryItem
	}{
		{"empty string", "", []domain.InventoryItem{}},
		{"empty list", "[]", []domain.InventoryItem{}},
		{
			name: "structured entries pass through",
			raw:  `[{"item_name":"sword","quantity":2}]`,
			want: []domain.InventoryItem{{ItemName: "sword", Quantity: 2}},
		},
		{
			name: "json string list is grouped",
			raw:  `["sword","shield","sword"]`,
			want: []domain.InventoryItem{{ItemName: "sword", Quantity: 2}, {ItemName: "shield", Quantity: 1}},
		},
		{
			name: "single quoted literal",
			raw:  `['Grim Blade', 'Potion', 'Potion']`,
			want: []domain.InventoryItem{{ItemName: "Grim Blade", Quantity: 1}, {ItemName: "Potion", Quantity: 2}},
		},
		{
			name: "mixed quotes and escapes",
			raw:  `["Wolf's Fang", 'it\'s', ]`,
			want: []domain.InventoryItem{{ItemName: "Wolf's Fang", Quantity: 1}, {ItemName: "it's", Quantity: 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLegacyInventory(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLegacyInventory_RejectsCode(t *testing.T) {
	inputs := []string{
		`__import__('os').system('rm -rf /')`,
		`[open('x')]`,
		`['a' 'b']`,
		`['unterminated]`,
		`{"item_name": "sword"}`,
	}

	for _, raw := range inputs {
		t.Run(raw, func(t *testing.T) {
			_, err := ParseLegacyInventory(raw)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestDecodeInventory_Strict(t *testing.T) {
	_, err := DecodeInventory(`[{"item_name":"sword","quantity":1,"extra":true}]`)
	assert.Error(t, err, "unknown fields must be rejected")

	_, err = DecodeInventory(`[] []`)
	assert.Error(t, err, "trailing data must be rejected")

	items, err := DecodeInventory(`[{"item_name":"sword","quantity":1}]`)
	require.NoError(t, err)
	assert.Equal(t, []domain.InventoryItem{{ItemName: "sword", Quantity: 1}}, items)
}

func TestDecodeCharacters(t *testing.T) {
	chars, err := DecodeCharacters(`[{"name":"Aldric","title":"Knight","sheet_url":"https://sheets.example.com/a"}]`)
	require.NoError(t, err)
	assert.Equal(t, []domain.Character{{Name: "Aldric", Title: "Knight", SheetURL: "https://sheets.example.com/a"}}, chars)

	chars, err = DecodeCharacters("")
	require.NoError(t, err)
	assert.Empty(t, chars)
}
