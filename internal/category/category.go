// Package category holds the immutable category table shared by the corpus
// and the game engine. Keys are the short identifiers clients send ("any" or
// a numeric string); ExternalName is the label stored on corpus records.
package category

// KeyAny matches every category.
const KeyAny = "any"

// Category is one row of the frozen table. Never mutated after init.
type Category struct {
	Key          string
	DisplayName  string
	ExternalName string
}

var table = []Category{
	{Key: KeyAny, DisplayName: "surprise me", ExternalName: "Any Category"},
	{Key: "9", DisplayName: "general knowledge", ExternalName: "General Knowledge"},
	{Key: "10", DisplayName: "books", ExternalName: "Entertainment: Books"},
	{Key: "11", DisplayName: "films", ExternalName: "Entertainment: Film"},
	{Key: "12", DisplayName: "music", ExternalName: "Entertainment: Music"},
	{Key: "13", DisplayName: "theater & musicals", ExternalName: "Entertainment: Musicals & Theatres"},
	{Key: "14", DisplayName: "television", ExternalName: "Entertainment: Television"},
	{Key: "15", DisplayName: "video games", ExternalName: "Entertainment: Video Games"},
	{Key: "16", DisplayName: "board games", ExternalName: "Entertainment: Board Games"},
	{Key: "17", DisplayName: "science & nature", ExternalName: "Science & Nature"},
	{Key: "18", DisplayName: "computers", ExternalName: "Science: Computers"},
	{Key: "19", DisplayName: "math", ExternalName: "Science: Mathematics"},
	{Key: "20", DisplayName: "mythology", ExternalName: "Mythology"},
	{Key: "21", DisplayName: "sports", ExternalName: "Sports"},
	{Key: "22", DisplayName: "geography", ExternalName: "Geography"},
	{Key: "23", DisplayName: "history", ExternalName: "History"},
	{Key: "24", DisplayName: "politics", ExternalName: "Politics"},
	{Key: "25", DisplayName: "art", ExternalName: "Art"},
	{Key: "26", DisplayName: "celebrities", ExternalName: "Celebrities"},
	{Key: "27", DisplayName: "animals", ExternalName: "Animals"},
	{Key: "28", DisplayName: "vehicles", ExternalName: "Vehicles"},
	{Key: "29", DisplayName: "comics", ExternalName: "Entertainment: Comics"},
	{Key: "30", DisplayName: "tech gadgets", ExternalName: "Science: Gadgets"},
	{Key: "31", DisplayName: "anime & manga", ExternalName: "Entertainment: Japanese Anime & Manga"},
	{Key: "32", DisplayName: "cartoons & animation", ExternalName: "Entertainment: Cartoon & Animations"},
}

var byKey = func() map[string]Category {
	m := make(map[string]Category, len(table))
	for _, c := range table {
		m[c.Key] = c
	}
	return m
}()

// Lookup resolves a client key to its table entry.
func Lookup(key string) (Category, bool) {
	c, ok := byKey[key]
	return c, ok
}

// Valid reports whether key is "any" or a known category key.
func Valid(key string) bool {
	_, ok := byKey[key]
	return ok
}

// ValidKeys reports whether every key in the list resolves. An empty list is
// not a valid selection.
func ValidKeys(keys []string) bool {
	if len(keys) == 0 {
		return false
	}
	for _, k := range keys {
		if !Valid(k) {
			return false
		}
	}
	return true
}

// All returns a copy of the table, "any" first, in declaration order.
func All() []Category {
	out := make([]Category, len(table))
	copy(out, table)
	return out
}
