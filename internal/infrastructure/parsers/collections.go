// Package parsers loads entity collections and connection lists from disk.
package parsers

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/emryn/chronicle/internal/domain/entities"
)

// Collection file names, one per entity kind. The magic-system file keeps
// the camelCase "magicSystem" tag used by settings and templates, which is
// distinct from the graph node kind "magicsystem".
const (
	CharactersFile   = "characters.json"
	LocationsFile    = "locations.json"
	EventsFile       = "events.json"
	ItemsFile        = "items.json"
	CulturesFile     = "cultures.json"
	EconomiesFile    = "economies.json"
	MagicSystemsFile = "magicSystem.json"
)

// CollectionFiles lists every collection file name in load order.
var CollectionFiles = []string{
	CharactersFile,
	LocationsFile,
	EventsFile,
	ItemsFile,
	CulturesFile,
	EconomiesFile,
	MagicSystemsFile,
}

// LoadCollections reads every collection file under dir. Missing files
// contribute empty collections; a file that exists but does not parse is an
// error. Entities keep the order they appear in on disk.
func LoadCollections(dir string) (entities.Collections, error) {
	var c entities.Collections

	if err := loadCollection(dir, CharactersFile, &c.Characters); err != nil {
		return entities.Collections{}, err
	}
	if err := loadCollection(dir, LocationsFile, &c.Locations); err != nil {
		return entities.Collections{}, err
	}
	if err := loadCollection(dir, EventsFile, &c.Events); err != nil {
		return entities.Collections{}, err
	}
	if err := loadCollection(dir, ItemsFile, &c.Items); err != nil {
		return entities.Collections{}, err
	}
	if err := loadCollection(dir, CulturesFile, &c.Cultures); err != nil {
		return entities.Collections{}, err
	}
	if err := loadCollection(dir, EconomiesFile, &c.Economies); err != nil {
		return entities.Collections{}, err
	}
	if err := loadCollection(dir, MagicSystemsFile, &c.MagicSystems); err != nil {
		return entities.Collections{}, err
	}

	return c, nil
}

// loadCollection decodes one collection file into out, which must be a
// pointer to a slice of an entity kind.
func loadCollection(dir, name string, out any) error {
	f, err := os.Open(filepath.Join(dir, name))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("opening %s: %w", name, err)
	}
	defer f.Close()

	if err := decodeCollection(f, out); err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}
	return nil
}

// decodeCollection decodes a JSON array of entities from the reader.
func decodeCollection(r io.Reader, out any) error {
	return json.NewDecoder(r).Decode(out)
}

// ParseCharacters decodes a character collection from the reader.
func ParseCharacters(r io.Reader) ([]entities.Character, error) {
	var out []entities.Character
	if err := decodeCollection(r, &out); err != nil {
		return nil, fmt.Errorf("parsing characters: %w", err)
	}
	return out, nil
}
