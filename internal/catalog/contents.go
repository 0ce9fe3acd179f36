package catalog

// contents mirrors the subset of an imageset's Contents.json that the
// scanner needs. Everything else (image filenames, idioms, scales) is
// ignored: the generator deals in names, not pixels.
type contents struct {
	Info       contentsInfo       `json:"info"`
	Properties contentsProperties `json:"properties"`
}

type contentsInfo struct {
	Author  string `json:"author"`
	Version int    `json:"version"`
}

type contentsProperties struct {
	// Visibility is a tool extension: "public" or "internal". Absent means
	// the scanner's default applies.
	Visibility string `json:"visibility,omitempty"`
}
