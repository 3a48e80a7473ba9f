// Package cardtest provides card fixtures shared by tests.
package cardtest

import "github.com/arcanaland/quill/internal/card"

// Kida returns Kida - Atlantean, an Amber character.
func Kida() card.Card {
	return card.New(
		true,
		card.Amber,
		1,
		card.Character,
		"Kida",
		"Atlantean",
		[]card.Classification{card.Storyborn, card.Hero, card.Princess},
		2,
		2,
		1,
		card.Common,
	)
}

// Flounder returns Flounder - Voice of Reason, a Sapphire character.
func Flounder() card.Card {
	return card.New(
		true,
		card.Sapphire,
		1,
		card.Character,
		"Flounder",
		"Voice of Reason",
		[]card.Classification{card.Storyborn, card.Ally},
		2,
		2,
		1,
		card.Common,
	)
}

// Goons returns Goons - Maleficent's Underlings, a Steel character.
func Goons() card.Card {
	return card.New(
		true,
		card.Steel,
		1,
		card.Character,
		"Goons",
		"Maleficent's Underlings",
		[]card.Classification{card.Storyborn, card.Ally},
		2,
		2,
		1,
		card.Common,
	)
}

// Repeat returns n copies of c.
func Repeat(c card.Card, n int) []card.Card {
	cards := make([]card.Card, n)
	for i := range cards {
		cards[i] = c
	}
	return cards
}
