package utils

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/osse101/GrimArmory_Go/internal/domain"
)

// NormalizeItemName folds an item name for comparison.
// Leading/trailing whitespace is ignored and case is folded per Unicode rules.
func NormalizeItemName(name string) string {
	// Casers keep state between calls, so each call gets its own.
	return cases.Fold().String(strings.TrimSpace(name))
}

// SameName reports whether two catalog names (items or categories) fold to the same key
func SameName(a, b string) bool {
	return NormalizeItemName(a) == NormalizeItemName(b)
}

// FindItem finds the stack with the given item name in an inventory.
// Returns the index of the stack and the quantity found.
// Returns -1, 0 if not found.
func FindItem(items []domain.InventoryItem, itemName string) (int, int) {
	key := NormalizeItemName(itemName)
	for i, item := range items {
		if NormalizeItemName(item.ItemName) == key {
			return i, item.Quantity
		}
	}
	return -1, 0
}

// ApplyItemDelta merges delta into the stack named itemName and returns the new inventory.
// A positive delta sums onto an existing stack or appends a new one; a negative delta
// subtracts and deletes the stack once it reaches zero or below. The second return value
// is false when a negative delta targets a stack that does not exist.
// The input slice is never modified.
func ApplyItemDelta(items []domain.InventoryItem, itemName string, delta int) ([]domain.InventoryItem, bool) {
	out := make([]domain.InventoryItem, len(items), len(items)+1)
	copy(out, items)

	idx, qty := FindItem(out, itemName)
	if idx == -1 {
		if delta <= 0 {
			return out, false
		}
		return append(out, domain.InventoryItem{ItemName: strings.TrimSpace(itemName), Quantity: delta}), true
	}

	if qty+delta <= 0 {
		return append(out[:idx], out[idx+1:]...), true
	}
	out[idx].Quantity = qty + delta
	return out, true
}

// PruneInventory drops non-positive stacks and merges duplicate names, keeping first-seen order.
func PruneInventory(items []domain.InventoryItem) []domain.InventoryItem {
	out := make([]domain.InventoryItem, 0, len(items))
	for _, item := range items {
		if item.Quantity <= 0 || strings.TrimSpace(item.ItemName) == "" {
			continue
		}
		if idx, _ := FindItem(out, item.ItemName); idx != -1 {
			out[idx].Quantity += item.Quantity
			continue
		}
		out = append(out, item)
	}
	return out
}
