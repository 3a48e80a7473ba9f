package card_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/quill/internal/card"
	"github.com/arcanaland/quill/internal/card/cardtest"
)

func TestNew(t *testing.T) {
	c := cardtest.Kida()

	assert.Equal(t, "Kida", c.Name)
	assert.Equal(t, "Atlantean", c.VersionName)
	assert.True(t, c.Inkable)
	assert.Equal(t, card.Amber, c.InkType)
	assert.Equal(t, uint8(1), c.Cost)
	assert.Equal(t, card.Character, c.CardType)
	assert.Equal(t, []card.Classification{card.Storyborn, card.Hero, card.Princess}, c.Classifications)
	assert.Equal(t, uint8(2), c.Strength)
	assert.Equal(t, uint8(2), c.Willpower)
	assert.Equal(t, uint8(1), c.LoreValue)
	assert.Equal(t, card.Common, c.Rarity)
}

func TestCardString(t *testing.T) {
	c := cardtest.Kida()
	assert.Equal(t, "🟡 (1) Kida-Atlantean 2⚔️ | 2🛡️ | 1✨", c.String())

	c.Inkable = false
	assert.Equal(t, "🟡 (2) Kida-Atlantean 2⚔️ | 2🛡️ | 1✨", c.String())
}

func TestIdentityIgnoresStats(t *testing.T) {
	a := cardtest.Kida()
	b := cardtest.Kida()
	b.Strength = 99
	b.Willpower = 99
	b.LoreValue = 99
	b.Cost = 99
	b.InkType = card.Ruby
	b.Rarity = card.Enchanted
	b.Inkable = false

	assert.True(t, a.Same(b))
	assert.Equal(t, a.Identity(), b.Identity())

	other := card.New(true, card.Sapphire, 2, card.Character, "Different Name", "Different Version",
		[]card.Classification{card.Ally}, 3, 3, 2, card.Uncommon)
	assert.False(t, a.Same(other))

	set := map[card.Identity]struct{}{}
	for _, c := range []card.Card{a, cardtest.Kida(), b, other} {
		set[c.Identity()] = struct{}{}
	}
	assert.Len(t, set, 2)
}

func TestIdentityVersionMatters(t *testing.T) {
	a := cardtest.Kida()
	b := cardtest.Kida()
	b.VersionName = "Protector of Atlantis"

	assert.False(t, a.Same(b))
	assert.Equal(t, "Kida-Atlantean", a.Identity().String())
}

func TestCardJSON(t *testing.T) {
	raw := `{
		"inkable": true,
		"ink_type": "Sapphire",
		"cost": 1,
		"card_type": "Character",
		"name": "Flounder",
		"version_name": "Voice of Reason",
		"classifications": ["Storyborn", "Ally"],
		"strength": 2,
		"willpower": 2,
		"lore_value": 1,
		"rarity": "Common"
	}`

	var c card.Card
	require.NoError(t, json.Unmarshal([]byte(raw), &c))
	assert.Equal(t, cardtest.Flounder(), c)

	out, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"ink_type":"Sapphire"`)
	assert.Contains(t, string(out), `"classifications":["Storyborn","Ally"]`)
}

func TestCardJSONUnknownVocabulary(t *testing.T) {
	cases := map[string]string{
		"ink":            `{"ink_type": "Gold"}`,
		"card type":      `{"card_type": "Hero"}`,
		"classification": `{"classifications": ["Villain"]}`,
		"rarity":         `{"rarity": "Mythic"}`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			var c card.Card
			assert.Error(t, json.Unmarshal([]byte(raw), &c))
		})
	}
}
