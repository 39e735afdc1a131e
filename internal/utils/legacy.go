package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/osse101/GrimArmory_Go/internal/domain"
)

// DecodeInventory strictly decodes a stored inventory column.
// Only the structured schema is accepted; unknown fields are rejected.
func DecodeInventory(raw string) ([]domain.InventoryItem, error) {
	items := []domain.InventoryItem{}
	if strings.TrimSpace(raw) == "" {
		return items, nil
	}
	if err := strictUnmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("decode inventory: %w", err)
	}
	return items, nil
}

// DecodeCharacters strictly decodes a stored characters column.
func DecodeCharacters(raw string) ([]domain.Character, error) {
	chars := []domain.Character{}
	if strings.TrimSpace(raw) == "" {
		return chars, nil
	}
	if err := strictUnmarshal([]byte(raw), &chars); err != nil {
		return nil, fmt.Errorf("decode characters: %w", err)
	}
	return chars, nil
}

func strictUnmarshal(data []byte, target interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(target); err != nil {
		return err
	}
	if dec.More() {
		return fmt.Errorf("unexpected trailing data")
	}
	return nil
}

// ParseLegacyInventory converts any inventory representation written by earlier
// revisions of the bot into the structured schema:
//   - structured JSON: [{"item_name": "sword", "quantity": 2}]
//   - JSON string list: ["sword", "sword"]
//   - list literal with single or double quoted strings: ['sword', "shield"]
//
// Repeated flat names become one stack with the summed quantity. Nothing is ever evaluated.
func ParseLegacyInventory(raw string) ([]domain.InventoryItem, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || trimmed == "[]" {
		return []domain.InventoryItem{}, nil
	}

	if items, err := DecodeInventory(trimmed); err == nil {
		return PruneInventory(items), nil
	}

	var names []string
	if err := json.Unmarshal([]byte(trimmed), &names); err != nil {
		names, err = parseQuotedList(trimmed)
		if err != nil {
			return nil, err
		}
	}

	items := make([]domain.InventoryItem, 0, len(names))
	for _, name := range names {
		items = append(items, domain.InventoryItem{ItemName: name, Quantity: 1})
	}
	return PruneInventory(items), nil
}

// parseQuotedList tokenizes a bracketed, comma separated list of quoted strings.
func parseQuotedList(s string) ([]string, error) {
	if len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
		return nil, fmt.Errorf("%w: not a list literal", domain.ErrValidation)
	}
	body := []rune(s[1 : len(s)-1])
	var out []string
	i := 0
	skipSpace := func() {
		for i < len(body) && (body[i] == ' ' || body[i] == '\t' || body[i] == '\n' || body[i] == '\r') {
			i++
		}
	}

	skipSpace()
	if i == len(body) {
		return []string{}, nil
	}

	for {
		skipSpace()
		if i >= len(body) {
			return nil, fmt.Errorf("%w: dangling separator", domain.ErrValidation)
		}
		quote := body[i]
		if quote != '\'' && quote != '"' {
			return nil, fmt.Errorf("%w: unquoted element at %d", domain.ErrValidation, i)
		}
		i++
		var sb strings.Builder
		closed := false
		for i < len(body) {
			c := body[i]
			if c == '\\' && i+1 < len(body) {
				sb.WriteRune(body[i+1])
				i += 2
				continue
			}
			if c == quote {
				closed = true
				i++
				break
			}
			sb.WriteRune(c)
			i++
		}
		if !closed {
			return nil, fmt.Errorf("%w: unterminated string", domain.ErrValidation)
		}
		out = append(out, sb.String())

		skipSpace()
		if i == len(body) {
			return out, nil
		}
		if body[i] != ',' {
			return nil, fmt.Errorf("%w: expected ',' at %d", domain.ErrValidation, i)
		}
		i++
		skipSpace()
		// trailing comma is allowed in list literals
		if i == len(body) {
			return out, nil
		}
	}
}
