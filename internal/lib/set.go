package lib

import "golang.org/x/exp/slices"

// Set is a set of strings, not safe for concurrent writes
type Set map[string]struct{}

func NewSet(values ...string) Set {
	s := make(Set, len(values))
	s.Add(values...)
	return s
}

func (s Set) Add(value ...string) {
	for _, v := range value {
		s[v] = struct{}{}
	}
}

func (s Set) Remove(value string) bool {
	_, c := s[value]
	delete(s, value)
	return c
}

func (s Set) Contains(value string) bool {
	_, c := s[value]
	return c
}

func (s Set) Len() int {
	return len(s)
}

// ToSlice returns the values in ascending order
func (s Set) ToSlice() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
