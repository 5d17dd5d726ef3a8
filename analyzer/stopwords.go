package analyzer

import "strings"

// stopWords filters filler out of the owner-authored word frequency tables.
// Tokens of length <= 2 never reach the table, so two-letter entries are
// omitted from the source list.
var stopWords = makeStopWords(`
the are was were been being have has had does did will would could should
might must shall can need dare ought used into through during before after
above below between under again further then once here there when where why
how all each few more most other some such nor not only own same than too
very just and but because until while although though myself our ours
ourselves you your yours yourself yourselves him his himself she her hers
herself its itself they them their theirs themselves what which who whom
this that these those having doing let out about over down off now any both
don also like okay yeah yes hey hello bye lol haha hahaha dont didnt cant
wont ive youre theyre thats whats got get going come coming know think want
see look make take give good great well back way even new first last long
little old right big high different small large next early young important
public bad able`)

func makeStopWords(words string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(words) {
		set[w] = true
	}
	return set
}
