package card

import (
	"fmt"
	"slices"

	"github.com/lucasb-eyer/go-colorful"
)

// InkType is one of the six ink colors. The declaration order is the
// sort order used by deck views.
type InkType uint8

const (
	Amber InkType = iota
	Amethyst
	Emerald
	Ruby
	Sapphire
	Steel

	inkCount
)

var inkNames = [...]string{
	Amber:    "Amber",
	Amethyst: "Amethyst",
	Emerald:  "Emerald",
	Ruby:     "Ruby",
	Sapphire: "Sapphire",
	Steel:    "Steel",
}

var inkSymbols = [...]string{
	Amber:    "🟡",
	Amethyst: "🟣",
	Emerald:  "🟢",
	Ruby:     "🔴",
	Sapphire: "🔵",
	Steel:    "⚪",
}

var inkColors = [...]string{
	Amber:    "#f4b223",
	Amethyst: "#7c4182",
	Emerald:  "#329044",
	Ruby:     "#d50037",
	Sapphire: "#0093c9",
	Steel:    "#97a3ae",
}

// Inks returns every ink type in sort order.
func Inks() []InkType {
	inks := make([]InkType, 0, inkCount)
	for i := Amber; i < inkCount; i++ {
		inks = append(inks, i)
	}
	return inks
}

// String returns the ink's wire name.
func (i InkType) String() string {
	if i >= inkCount {
		return fmt.Sprintf("InkType(%d)", uint8(i))
	}
	return inkNames[i]
}

// Symbol returns the glyph used when rendering a card.
func (i InkType) Symbol() string {
	if i >= inkCount {
		return "?"
	}
	return inkSymbols[i]
}

// Color returns the swatch color for the ink.
func (i InkType) Color() colorful.Color {
	if i >= inkCount {
		return colorful.Color{}
	}
	c, err := colorful.Hex(inkColors[i])
	if err != nil {
		return colorful.Color{}
	}
	return c
}

func (i InkType) MarshalText() ([]byte, error) {
	if i >= inkCount {
		return nil, fmt.Errorf("unknown ink type %d", uint8(i))
	}
	return []byte(inkNames[i]), nil
}

func (i *InkType) UnmarshalText(text []byte) error {
	n, err := parseName("ink type", inkNames[:], string(text))
	if err != nil {
		return err
	}
	*i = InkType(n)
	return nil
}

// SortInks sorts inks ascending by the fixed ink order.
func SortInks(inks []InkType) {
	slices.Sort(inks)
}

// CardType is the kind of card.
type CardType uint8

const (
	Character CardType = iota
	Item
	Location
	Action
	Song

	cardTypeCount
)

var cardTypeNames = [...]string{
	Character: "Character",
	Item:      "Item",
	Location:  "Location",
	Action:    "Action",
	Song:      "Song",
}

func (t CardType) String() string {
	if t >= cardTypeCount {
		return fmt.Sprintf("CardType(%d)", uint8(t))
	}
	return cardTypeNames[t]
}

func (t CardType) MarshalText() ([]byte, error) {
	if t >= cardTypeCount {
		return nil, fmt.Errorf("unknown card type %d", uint8(t))
	}
	return []byte(cardTypeNames[t]), nil
}

func (t *CardType) UnmarshalText(text []byte) error {
	n, err := parseName("card type", cardTypeNames[:], string(text))
	if err != nil {
		return err
	}
	*t = CardType(n)
	return nil
}

// Classification is a narrative tag printed on character cards.
type Classification uint8

const (
	Storyborn Classification = iota
	Hero
	Princess
	Ally

	classificationCount
)

var classificationNames = [...]string{
	Storyborn: "Storyborn",
	Hero:      "Hero",
	Princess:  "Princess",
	Ally:      "Ally",
}

func (c Classification) String() string {
	if c >= classificationCount {
		return fmt.Sprintf("Classification(%d)", uint8(c))
	}
	return classificationNames[c]
}

func (c Classification) MarshalText() ([]byte, error) {
	if c >= classificationCount {
		return nil, fmt.Errorf("unknown classification %d", uint8(c))
	}
	return []byte(classificationNames[c]), nil
}

func (c *Classification) UnmarshalText(text []byte) error {
	n, err := parseName("classification", classificationNames[:], string(text))
	if err != nil {
		return err
	}
	*c = Classification(n)
	return nil
}

// Rarity is the print rarity tier.
type Rarity uint8

const (
	Common Rarity = iota
	Uncommon
	Rare
	SuperRare
	Legendary
	Enchanted

	rarityCount
)

var rarityNames = [...]string{
	Common:    "Common",
	Uncommon:  "Uncommon",
	Rare:      "Rare",
	SuperRare: "SuperRare",
	Legendary: "Legendary",
	Enchanted: "Enchanted",
}

func (r Rarity) String() string {
	if r >= rarityCount {
		return fmt.Sprintf("Rarity(%d)", uint8(r))
	}
	return rarityNames[r]
}

func (r Rarity) MarshalText() ([]byte, error) {
	if r >= rarityCount {
		return nil, fmt.Errorf("unknown rarity %d", uint8(r))
	}
	return []byte(rarityNames[r]), nil
}

func (r *Rarity) UnmarshalText(text []byte) error {
	n, err := parseName("rarity", rarityNames[:], string(text))
	if err != nil {
		return err
	}
	*r = Rarity(n)
	return nil
}

// parseName maps a wire name back to its index in a name table.
func parseName(kind string, names []string, s string) (int, error) {
	for i, name := range names {
		if name == s {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown %s %q", kind, s)
}
