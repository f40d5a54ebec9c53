package stages

import (
	"strconv"
	"strings"

	"github.com/hasbyte1/go-transducers/transducers"
)

// pluck forwards the value found at a dot-notation path in each element
// and drops elements where the path does not resolve.
//
//	pluck("user.address.city")  // {"user": {"address": {"city": "London"}}} -> "London"
//	pluck("tags.0")             // {"tags": ["a", "b"]} -> "a"
func pluck(path string) transducers.Transducer {
	segments := strings.Split(path, ".")
	return transducers.Keep(func(x any) (any, bool) {
		return lookup(x, segments)
	})
}

func lookup(x any, segments []string) (any, bool) {
	current := x
	for _, seg := range segments {
		switch v := current.(type) {
		case map[string]any:
			val, ok := v[seg]
			if !ok {
				return nil, false
			}
			current = val
		case map[any]any:
			val, ok := v[seg]
			if !ok {
				return nil, false
			}
			current = val
		case []any:
			i, err := strconv.Atoi(seg)
			if err != nil || i < 0 || i >= len(v) {
				return nil, false
			}
			current = v[i]
		default:
			return nil, false
		}
	}
	return current, true
}
