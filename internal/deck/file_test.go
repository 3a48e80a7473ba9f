package deck

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/quill/internal/card"
	"github.com/arcanaland/quill/internal/card/cardtest"
)

const kidaJSON = `{
  "cards": [
    {
      "inkable": true,
      "ink_type": "Amber",
      "cost": 1,
      "card_type": "Character",
      "name": "Kida",
      "version_name": "Atlantean",
      "classifications": ["Storyborn", "Hero", "Princess"],
      "strength": 2,
      "willpower": 2,
      "lore_value": 1,
      "rarity": "Common"
    }
  ]
}`

const kidaYAML = `cards:
  - inkable: true
    ink_type: Amber
    cost: 1
    card_type: Character
    name: Kida
    version_name: Atlantean
    classifications: [Storyborn, Hero, Princess]
    strength: 2
    willpower: 2
    lore_value: 1
    rarity: Common
`

func TestDecodeJSON(t *testing.T) {
	d, err := Decode(strings.NewReader(kidaJSON), JSON)
	require.NoError(t, err)
	assert.Equal(t, []card.Card{cardtest.Kida()}, d.Cards())
}

func TestDecodeYAML(t *testing.T) {
	d, err := Decode(strings.NewReader(kidaYAML), YAML)
	require.NoError(t, err)
	assert.Equal(t, []card.Card{cardtest.Kida()}, d.Cards())
}

func TestDecodeRejectsBadDocuments(t *testing.T) {
	tests := []struct {
		name string
		enc  Encoding
		doc  string
	}{
		{"unknown json field", JSON, `{"cards": [], "sideboard": []}`},
		{"unknown card field", JSON, `{"cards": [{"name": "Kida", "flavor": "x"}]}`},
		{"unknown ink", JSON, `{"cards": [{"name": "Kida", "ink_type": "Gold"}]}`},
		{"missing name", JSON, `{"cards": [{"ink_type": "Amber"}]}`},
		{"empty", JSON, ``},
		{"unknown yaml field", YAML, "cards: []\nowner: me\n"},
		{"bad yaml rarity", YAML, "cards:\n  - name: Kida\n    rarity: Mythic\n"},
		{"missing cards", JSON, `{}`},
		{"missing yaml cards", YAML, "{}\n"},
		{"missing ink_type", JSON, withoutField(t, "ink_type")},
		{"missing inkable", JSON, withoutField(t, "inkable")},
		{"missing cost", JSON, withoutField(t, "cost")},
		{"missing version_name", JSON, withoutField(t, "version_name")},
		{"null rarity", JSON, strings.Replace(kidaJSON, `"Common"`, `null`, 1)},
		{"name only", JSON, `{"cards": [{"name": "Kida"}, {"name": "Kida"}]}`},
		{"missing yaml strength", YAML, strings.Replace(kidaYAML, "    strength: 2\n", "", 1)},
		{"trailing json", JSON, `{"cards": []} trailing garbage`},
		{"second json document", JSON, `{"cards": []} {"cards": []}`},
		{"second yaml document", YAML, "cards: []\n---\ncards: []\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.doc), tt.enc)
			assert.Error(t, err)
		})
	}
}

// withoutField returns kidaJSON with one card field removed
func withoutField(t *testing.T, field string) string {
	t.Helper()
	var doc map[string][]map[string]any
	require.NoError(t, json.Unmarshal([]byte(kidaJSON), &doc))
	delete(doc["cards"][0], field)
	b, err := json.Marshal(doc)
	require.NoError(t, err)
	return string(b)
}

func TestDecodeKeepsZeroValues(t *testing.T) {
	doc := strings.NewReplacer(
		`"inkable": true`, `"inkable": false`,
		`"cost": 1`, `"cost": 0`,
		`"version_name": "Atlantean"`, `"version_name": ""`,
		`["Storyborn", "Hero", "Princess"]`, `[]`,
	).Replace(kidaJSON)

	d, err := Decode(strings.NewReader(doc), JSON)
	require.NoError(t, err)
	require.Equal(t, 1, d.CardCount())

	c := d.Cards()[0]
	assert.False(t, c.Inkable)
	assert.Zero(t, c.Cost)
	assert.Empty(t, c.VersionName)
	assert.Equal(t, card.Amber, c.InkType)
}

func TestDecodeTrailingData(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"cards": []} trailing garbage`), JSON)
	assert.ErrorIs(t, err, ErrTrailingData)

	_, err = Decode(strings.NewReader(kidaJSON+"\n\n"), JSON)
	assert.NoError(t, err)
}

func TestDecodeUnsupportedEncoding(t *testing.T) {
	_, err := Decode(strings.NewReader(kidaJSON), Encoding("toml"))
	assert.ErrorIs(t, err, ErrUnsupportedEncoding)
}

func TestEncodeRoundTrip(t *testing.T) {
	want := New(cardtest.Kida(), cardtest.Flounder(), cardtest.Kida())

	for _, enc := range []Encoding{JSON, YAML} {
		t.Run(string(enc), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, want, enc))

			got, err := Decode(&buf, enc)
			require.NoError(t, err)
			assert.Equal(t, want.Cards(), got.Cards())
		})
	}
}

func TestEncodeWritesEmptyClassifications(t *testing.T) {
	song := cardtest.Kida()
	song.Classifications = nil

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, New(song), JSON))
	assert.Contains(t, buf.String(), `"classifications": []`)

	got, err := Decode(&buf, JSON)
	require.NoError(t, err)
	assert.Empty(t, got.Cards()[0].Classifications)
}

func TestEncodingFor(t *testing.T) {
	tests := map[string]Encoding{
		"deck.json":      JSON,
		"deck.JSON":      JSON,
		"deck.yaml":      YAML,
		"dir/deck.yml":   YAML,
		"/abs/deck.json": JSON,
	}
	for path, want := range tests {
		got, err := EncodingFor(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}

	_, err := EncodingFor("deck.toml")
	assert.ErrorIs(t, err, ErrUnsupportedEncoding)
	assert.False(t, IsDeckFile("notes.txt"))
	assert.True(t, IsDeckFile("deck.yml"))
}

func TestLoadDeck(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kida.json")
	require.NoError(t, os.WriteFile(path, []byte(kidaJSON), 0644))

	d, err := LoadDeck(path)
	require.NoError(t, err)
	assert.Equal(t, 1, d.CardCount())

	_, err = LoadDeck(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("cards: {"), 0644))
	_, err = LoadDeck(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.yaml")
}
