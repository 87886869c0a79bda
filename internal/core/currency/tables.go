package currency

// ones holds word forms for 0..9, zero is empty because it is never spoken inside a group
var ones = [10]string{
	"",
	"one",
	"two",
	"three",
	"four",
	"five",
	"six",
	"seven",
	"eight",
	"nine",
}

// teens holds word forms for 10..19
var teens = [10]string{
	"ten",
	"eleven",
	"twelve",
	"thirteen",
	"fourteen",
	"fifteen",
	"sixteen",
	"seventeen",
	"eighteen",
	"nineteen",
}

// tens holds tens-digit word forms, indices 0 and 1 are handled by ones and teens
var tens = [10]string{
	"",
	"",
	"twenty",
	"thirty",
	"forty",
	"fifty",
	"sixty",
	"seventy",
	"eighty",
	"ninety",
}

// Magnitude pairs a power-of-ten breakpoint with its word
type Magnitude struct {
	Value int64  `json:"value"`
	Word  string `json:"word"`
}

// magnitudes are ordered largest first; 10^12 is named quadrillion on purpose
// so outputs stay identical to the historical wording
var magnitudes = [...]Magnitude{
	{Value: 1_000_000_000_000, Word: "quadrillion"},
	{Value: 1_000_000_000, Word: "billion"},
	{Value: 1_000_000, Word: "million"},
	{Value: 1_000, Word: "thousand"},
}

// Magnitudes returns a copy of the breakpoint table, largest first
func Magnitudes() []Magnitude {
	out := make([]Magnitude, len(magnitudes))
	copy(out, magnitudes[:])
	return out
}
