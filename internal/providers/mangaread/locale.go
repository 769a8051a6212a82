package mangaread

// Locale holds the language fields stamped on every chapter record.
type Locale struct {
	Lang     string
	Language string
}

var English = Locale{Lang: "en", Language: "English"}
