package rpn

import (
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/stackcalc/stackcalc/key"
)

// maxSuggestionDistance bounds how far a suggestion may be from the mistyped token.
const maxSuggestionDistance = 2

type candidate struct {
	symbol   string
	distance int
	fuzzy    bool
}

// Suggest returns the recognized word closest to token.
// Words containing the token's letters in order win ties.
func Suggest(token string) mo.Option[string] {
	if !viper.GetBool(key.RPNSuggest) {
		return mo.None[string]()
	}

	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return mo.None[string]()
	}

	candidates := lo.Map(Symbols(), func(symbol string, _ int) candidate {
		return candidate{
			symbol:   symbol,
			distance: levenshtein.Distance(token, symbol),
			fuzzy:    fuzzy.MatchFold(token, symbol) || fuzzy.MatchFold(symbol, token),
		}
	})

	best := lo.MinBy(candidates, func(a, b candidate) bool {
		if a.distance != b.distance {
			return a.distance < b.distance
		}
		return a.fuzzy && !b.fuzzy
	})

	if best.distance > maxSuggestionDistance || best.distance >= len(token) {
		return mo.None[string]()
	}
	return mo.Some(best.symbol)
}
