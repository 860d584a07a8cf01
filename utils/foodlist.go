package utils

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotAList reports a model reply that does not parse as a bracketed
// list of strings.
var ErrNotAList = errors.New("not a bracketed string list")

// ParseFoodList parses the literal list notation the extraction prompt
// asks the model for: [ 'item1', 'item2', ... ]. Both single and double
// quotes are accepted, as is an empty list. Models occasionally wrap
// the answer in a markdown code fence, so fences are stripped first.
func ParseFoodList(raw string) ([]string, error) {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimPrefix(s, "python")
		s = strings.TrimPrefix(s, "json")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
		s = strings.TrimSpace(s)
	}

	if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
		return nil, fmt.Errorf("%w: %q", ErrNotAList, raw)
	}
	s = strings.TrimSpace(s[1 : len(s)-1])

	items := []string{}
	for len(s) > 0 {
		quote := s[0]
		if quote != '\'' && quote != '"' {
			return nil, fmt.Errorf("%w: %q", ErrNotAList, raw)
		}
		end := -1
		for i := 1; i < len(s); i++ {
			if s[i] == '\\' {
				i++
				continue
			}
			if s[i] == quote {
				end = i
				break
			}
		}
		if end < 0 {
			return nil, fmt.Errorf("%w: %q", ErrNotAList, raw)
		}
		item := strings.ReplaceAll(s[1:end], `\`+string(quote), string(quote))
		items = append(items, item)

		s = strings.TrimSpace(s[end+1:])
		if len(s) == 0 {
			break
		}
		if s[0] != ',' {
			return nil, fmt.Errorf("%w: %q", ErrNotAList, raw)
		}
		s = strings.TrimSpace(s[1:])
	}
	return items, nil
}
