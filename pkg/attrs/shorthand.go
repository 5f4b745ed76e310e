package attrs

import (
	"strings"

	"github.com/vango-dev/htgo/internal/errors"
)

// ParseShorthand splits an id/class string such as "#main.card.wide" into
// its id and class tokens. hasID is true whenever s names an id, even an
// empty one as in "#" or "#.card".
func ParseShorthand(s string) (id string, hasID bool, classes []string, err error) {
	if s == "" {
		return "", false, nil, nil
	}
	if s[0] != '#' && s[0] != '.' {
		return "", false, nil, errors.Errorf("H020", s)
	}
	hash, dot := strings.IndexByte(s, '#'), strings.IndexByte(s, '.')
	if hash >= 0 && dot >= 0 && hash > dot {
		return "", false, nil, errors.Errorf("H021", s)
	}
	if strings.Count(s, "#") > 1 {
		return "", false, nil, errors.Errorf("H022", s)
	}

	for _, part := range strings.Split(s, ".") {
		if strings.HasPrefix(part, "#") {
			id, hasID = strings.TrimSpace(part[1:]), true
			continue
		}
		if part = strings.TrimSpace(part); part != "" {
			classes = append(classes, part)
		}
	}
	return id, hasID, classes, nil
}
