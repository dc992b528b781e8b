package models

import "strings"

type SelectionSet struct {
	values map[string]struct{}
}

func NewSelectionSet(values ...string) SelectionSet {
	set := SelectionSet{
		values: map[string]struct{}{},
	}

	for _, value := range values {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		set.values[value] = struct{}{}
	}

	return set
}

func (set SelectionSet) Contains(value string) bool {
	_, ok := set.values[value]
	return ok
}

func (set SelectionSet) Len() int {
	return len(set.values)
}
