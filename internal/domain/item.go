package domain

import "strings"

// Item is the joined view of one base row and one loot row sharing an item_id.
// Tags are lower-cased at load time; the slice is nil when the source data has
// no tags column.
type Item struct {
	ID       string   `json:"item_id"`
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Subtype  string   `json:"subtype"`
	Rarity   Rarity   `json:"rarity"`
	Tags     []string `json:"tags,omitempty"`
}

// HasTag reports whether the item carries the given tag. Matching is
// case-insensitive.
func (it Item) HasTag(tag string) bool {
	tag = strings.ToLower(strings.TrimSpace(tag))
	for _, t := range it.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Rarity is the loot rarity tier of an item
type Rarity string

const (
	RarityCommon    Rarity = "Common"
	RarityUncommon  Rarity = "Uncommon"
	RarityRare      Rarity = "Rare"
	RarityVeryRare  Rarity = "Very Rare"
	RarityLegendary Rarity = "Legendary"
)

// rarities holds the allowed values in display order
var rarities = []Rarity{
	RarityCommon,
	RarityUncommon,
	RarityRare,
	RarityVeryRare,
	RarityLegendary,
}

// Rarities returns the allowed rarity values in display order.
func Rarities() []Rarity {
	out := make([]Rarity, len(rarities))
	copy(out, rarities)
	return out
}

// RarityNames returns the allowed rarity values as plain strings, for use in
// command choices and error messages.
func RarityNames() []string {
	names := make([]string, len(rarities))
	for i, r := range rarities {
		names[i] = string(r)
	}
	return names
}

// ParseRarity matches s against the allowed rarity values, ignoring case and
// surrounding whitespace. Returns an InvalidFilterError for anything else.
func ParseRarity(s string) (Rarity, error) {
	trimmed := strings.TrimSpace(s)
	for _, r := range rarities {
		if strings.EqualFold(trimmed, string(r)) {
			return r, nil
		}
	}
	return "", &InvalidFilterError{Field: "rarity", Value: s, Allowed: RarityNames()}
}
