package validator

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

var (
	// ErrInvalidDeck is wrapped by every rule violation.
	ErrInvalidDeck = errors.New("invalid deck")

	// ErrUnknownFormat is returned by Lookup for unregistered names.
	ErrUnknownFormat = errors.New("unknown format")
)

// DefaultFormat is used when neither a flag nor the config picks one.
const DefaultFormat = "standard"

var (
	mu      sync.RWMutex
	formats = map[string]Format{}
)

func init() {
	Register(Testing{})
	Register(Standard{})
}

// Register makes a format available to Lookup under its lower-cased name.
// Registering a name twice replaces the earlier format.
func Register(f Format) {
	mu.Lock()
	defer mu.Unlock()
	formats[strings.ToLower(f.Name())] = f
}

// Lookup finds a format by name, ignoring case.
func Lookup(name string) (Format, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := formats[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %s. Supported formats: %s",
			ErrUnknownFormat, name, strings.Join(namesLocked(), ", "))
	}
	return f, nil
}

// Names returns the registered format names, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	return namesLocked()
}

func namesLocked() []string {
	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
