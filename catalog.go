package talkie

import "sort"

// DefaultCharacter is the catalog key used when a requested key is unknown.
const DefaultCharacter = "robot"

// CatalogEntry describes one registered character type.
type CatalogEntry struct {
	Label string
	New   Factory
}

// Catalog is the registry of character types, keyed by name.
type Catalog map[string]CatalogEntry

// DefaultCatalog returns the built-in characters. Portrait assets are looked
// up under Env.AssetsDir/characters/.
func DefaultCatalog() Catalog {
	return Catalog{
		"robot": {
			Label: "Pixel Robot",
			New:   NewPixelRobot,
		},
		"portrait": {
			Label: "Portrait",
			New: func(env Env) Character {
				return NewPortrait(env, PortraitOptions{Dir: "characters/portrait_male_glasses"})
			},
		},
		"portrait_angled": {
			Label: "Portrait (angled)",
			New: func(env Env) Character {
				return NewPortrait(env, PortraitOptions{Dir: "characters/portrait_angled", Angled: true})
			},
		},
		"grid_portrait": {
			Label: "Grid Portrait",
			New: func(env Env) Character {
				return NewGridPortrait(env, GridOptions{Dir: "characters/grid_portrait"})
			},
		},
	}
}

// Keys returns the registered keys in sorted order.
func (c Catalog) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// resolve returns the entry for key, falling back to DefaultCharacter, and
// the key actually used.
func (c Catalog) resolve(key string) (string, CatalogEntry, bool) {
	if e, ok := c[key]; ok {
		return key, e, true
	}
	e, ok := c[DefaultCharacter]
	return DefaultCharacter, e, ok
}
