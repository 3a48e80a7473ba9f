package deck

import (
	"github.com/arcanaland/quill/internal/card"
)

// Deck represents an ordered list of cards. Duplicates are allowed and the
// order carries no meaning for any format rule.
type Deck struct {
	cards []card.Card
}

// Entry is one line of a deck breakdown
type Entry struct {
	Card  card.Card // First card seen with this identity
	Count int
}

// New creates a deck holding a copy of cards
func New(cards ...card.Card) *Deck {
	d := &Deck{cards: make([]card.Card, len(cards))}
	copy(d.cards, cards)
	return d
}

// Cards returns a copy of the cards in insertion order
func (d *Deck) Cards() []card.Card {
	out := make([]card.Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// CardCount returns the number of cards, duplicates included
func (d *Deck) CardCount() int {
	return len(d.cards)
}

// Inks returns the distinct inks in the deck, sorted by ink order
func (d *Deck) Inks() []card.InkType {
	seen := make(map[card.InkType]bool)
	inks := []card.InkType{}
	for _, c := range d.cards {
		if seen[c.InkType] {
			continue
		}
		seen[c.InkType] = true
		inks = append(inks, c.InkType)
	}
	card.SortInks(inks)
	return inks
}

// Breakdown groups the deck by card identity, in order of first
// appearance. Cards sharing a name and version fold into one entry even
// when their other attributes differ.
func (d *Deck) Breakdown() []Entry {
	index := make(map[card.Identity]int)
	var entries []Entry
	for _, c := range d.cards {
		id := c.Identity()
		if i, ok := index[id]; ok {
			entries[i].Count++
			continue
		}
		index[id] = len(entries)
		entries = append(entries, Entry{Card: c, Count: 1})
	}
	return entries
}

// Counts returns the breakdown keyed by identity
func (d *Deck) Counts() map[card.Identity]int {
	counts := make(map[card.Identity]int)
	for _, c := range d.cards {
		counts[c.Identity()]++
	}
	return counts
}
