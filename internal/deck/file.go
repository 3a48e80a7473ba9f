package deck

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/arcanaland/quill/internal/card"
)

// Encoding selects the on-disk representation of a deck file.
type Encoding string

const (
	JSON Encoding = "json"
	YAML Encoding = "yaml"
)

// ErrUnsupportedEncoding is returned for deck files with an unknown extension.
var ErrUnsupportedEncoding = errors.New("unsupported deck encoding")

// ErrTrailingData is returned when a deck file holds more than one document.
var ErrTrailingData = errors.New("unexpected data after deck document")

// Extensions lists the file extensions recognised as deck files
var Extensions = []string{".json", ".yaml", ".yml"}

// document is the wire shape shared by every encoding: {"cards": [...]}
type document struct {
	Cards []card.Card `json:"cards" yaml:"cards"`
}

// wireDocument is what Decode reads. Every field must be present; pointers
// tell a missing field apart from a zero value.
type wireDocument struct {
	Cards []wireCard `json:"cards" yaml:"cards" validate:"required,dive"`
}

type wireCard struct {
	Inkable         *bool                 `json:"inkable" yaml:"inkable" validate:"required"`
	InkType         *card.InkType         `json:"ink_type" yaml:"ink_type" validate:"required"`
	Cost            *uint8                `json:"cost" yaml:"cost" validate:"required"`
	CardType        *card.CardType        `json:"card_type" yaml:"card_type" validate:"required"`
	Name            *string               `json:"name" yaml:"name" validate:"required"`
	VersionName     *string               `json:"version_name" yaml:"version_name" validate:"required"`
	Classifications []card.Classification `json:"classifications" yaml:"classifications" validate:"required"`
	Strength        *uint8                `json:"strength" yaml:"strength" validate:"required"`
	Willpower       *uint8                `json:"willpower" yaml:"willpower" validate:"required"`
	LoreValue       *uint8                `json:"lore_value" yaml:"lore_value" validate:"required"`
	Rarity          *card.Rarity          `json:"rarity" yaml:"rarity" validate:"required"`
}

// toCard is only called after validation, so no pointer is nil
func (w wireCard) toCard() card.Card {
	return card.New(
		*w.Inkable,
		*w.InkType,
		*w.Cost,
		*w.CardType,
		*w.Name,
		*w.VersionName,
		w.Classifications,
		*w.Strength,
		*w.Willpower,
		*w.LoreValue,
		*w.Rarity,
	)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// EncodingFor picks the encoding from a file extension
func EncodingFor(path string) (Encoding, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedEncoding, path)
	}
}

// IsDeckFile reports whether path has a deck file extension
func IsDeckFile(path string) bool {
	_, err := EncodingFor(path)
	return err == nil
}

// LoadDeck loads a deck from a JSON or YAML file
func LoadDeck(path string) (*Deck, error) {
	enc, err := EncodingFor(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening deck file: %w", err)
	}
	defer f.Close()

	d, err := Decode(f, enc)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", filepath.Base(path), err)
	}
	return d, nil
}

// Decode reads a single deck document. Unknown fields, missing fields and
// anything after the document are rejected.
func Decode(r io.Reader, enc Encoding) (*Deck, error) {
	var doc wireDocument

	switch enc {
	case JSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, decodeError(err)
		}
		var extra json.RawMessage
		if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
			return nil, ErrTrailingData
		}
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, decodeError(err)
		}
		var extra yaml.Node
		if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
			return nil, ErrTrailingData
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, enc)
	}

	if err := validate.Struct(doc); err != nil {
		return nil, fmt.Errorf("invalid deck document: %w", err)
	}

	cards := make([]card.Card, len(doc.Cards))
	for i, w := range doc.Cards {
		cards[i] = w.toCard()
	}
	return &Deck{cards: cards}, nil
}

// Encode writes d in the given encoding
func Encode(w io.Writer, d *Deck, enc Encoding) error {
	doc := document{Cards: d.Cards()}
	for i := range doc.Cards {
		// Decode requires the field, so never write null
		if doc.Cards[i].Classifications == nil {
			doc.Cards[i].Classifications = []card.Classification{}
		}
	}

	switch enc {
	case JSON:
		e := json.NewEncoder(w)
		e.SetIndent("", "  ")
		return e.Encode(doc)
	case YAML:
		e := yaml.NewEncoder(w)
		e.SetIndent(2)
		if err := e.Encode(doc); err != nil {
			return err
		}
		return e.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedEncoding, enc)
	}
}

func decodeError(err error) error {
	if errors.Is(err, io.EOF) {
		return errors.New("empty deck document")
	}
	return fmt.Errorf("error decoding deck: %w", err)
}
