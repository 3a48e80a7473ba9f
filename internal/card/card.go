package card

import "fmt"

// Card represents a Lorcana card as printed
type Card struct {
	Inkable         bool             `json:"inkable" yaml:"inkable"`
	InkType         InkType          `json:"ink_type" yaml:"ink_type"`
	Cost            uint8            `json:"cost" yaml:"cost"`
	CardType        CardType         `json:"card_type" yaml:"card_type"`
	Name            string           `json:"name" yaml:"name"`
	VersionName     string           `json:"version_name" yaml:"version_name"` // Disambiguates printings of the same character
	Classifications []Classification `json:"classifications" yaml:"classifications"`
	Strength        uint8            `json:"strength" yaml:"strength"`
	Willpower       uint8            `json:"willpower" yaml:"willpower"`
	LoreValue       uint8            `json:"lore_value" yaml:"lore_value"`
	Rarity          Rarity           `json:"rarity" yaml:"rarity"`
}

// Identity is what makes two cards "the same card": the name and version.
// Stats, cost, ink and rarity never take part.
type Identity struct {
	Name        string
	VersionName string
}

func (id Identity) String() string {
	return id.Name + "-" + id.VersionName
}

// New builds a card from its attributes, taken verbatim.
func New(
	inkable bool,
	ink InkType,
	cost uint8,
	cardType CardType,
	name, versionName string,
	classifications []Classification,
	strength, willpower, lore uint8,
	rarity Rarity,
) Card {
	return Card{
		Inkable:         inkable,
		InkType:         ink,
		Cost:            cost,
		CardType:        cardType,
		Name:            name,
		VersionName:     versionName,
		Classifications: classifications,
		Strength:        strength,
		Willpower:       willpower,
		LoreValue:       lore,
		Rarity:          rarity,
	}
}

// Identity returns the key used when grouping or deduplicating cards.
func (c Card) Identity() Identity {
	return Identity{Name: c.Name, VersionName: c.VersionName}
}

// Same reports whether c and other are the same card.
func (c Card) Same(other Card) bool {
	return c.Identity() == other.Identity()
}

// DisplayCost is the cost shown on the card line. Uninkable cards carry a
// one point surcharge.
func (c Card) DisplayCost() int {
	if c.Inkable {
		return int(c.Cost)
	}
	return int(c.Cost) + 1
}

func (c Card) String() string {
	return fmt.Sprintf("%s (%d) %s-%s %d⚔️ | %d🛡️ | %d✨",
		c.InkType.Symbol(),
		c.DisplayCost(),
		c.Name,
		c.VersionName,
		c.Strength,
		c.Willpower,
		c.LoreValue,
	)
}
