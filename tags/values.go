package tags

import "github.com/viant/parsly"

type (
	//Values represents encoded tag options, i.e. name=id,scalar
	Values string

	//Pair represents tag option, flag options have empty value
	Pair struct {
		Key   string
		Value string
	}
)

// Pairs returns options in declaration order
func (v Values) Pairs() []Pair {
	var result []Pair
	cursor := parsly.NewCursor("", []byte(v), 0)
	for cursor.Pos < len(cursor.Input) {
		if key, value := matchPair(cursor); key != "" {
			result = append(result, Pair{Key: key, Value: value})
		}
	}
	return result
}

// MatchPairs calls onMatch for each option, it stops on the first error
func (v Values) MatchPairs(onMatch func(key, value string) error) error {
	for _, pair := range v.Pairs() {
		if err := onMatch(pair.Key, pair.Value); err != nil {
			return err
		}
	}
	return nil
}
