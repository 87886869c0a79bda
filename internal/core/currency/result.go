package currency

// InvalidText is what an invalid Result prints as; it can never collide with a
// worded amount since those always end in "dollars"
const InvalidText = "<invalid>"

// Result is either a worded amount or the invalid marker
type Result struct {
	words string
	ok    bool
}

// Invalid is the marker returned for unconvertible input
var Invalid = Result{}

// Words wraps a worded amount
func Words(s string) Result { return Result{words: s, ok: true} }

// Valid reports whether the result carries words
func (r Result) Valid() bool { return r.ok }

// Words returns the worded amount and whether the result is valid
func (r Result) Words() (string, bool) { return r.words, r.ok }

// String returns the words or InvalidText
func (r Result) String() string {
	if !r.ok {
		return InvalidText
	}
	return r.words
}
