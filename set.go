package chart

import (
	"fmt"
	"strings"
)

// -------------------------------------------------------------------------
// String Set

// StringSet is a set of strings which remembers insertion order.
// The zero value is an empty set ready to use.
type StringSet struct {
	index map[string]int
	elems []string
}

func NewStringSet() *StringSet {
	return &StringSet{}
}

func NewStringSetFrom(init []string) *StringSet {
	s := NewStringSet()
	for _, v := range init {
		s.Add(v)
	}
	return s
}

func (s *StringSet) String() string {
	return fmt.Sprintf("[%s]", strings.Join(s.elems, " "))
}

// Add adds x to s and reports whether x was new.
func (s *StringSet) Add(x string) bool {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	if _, ok := s.index[x]; ok {
		return false
	}
	s.index[x] = len(s.elems)
	s.elems = append(s.elems, x)
	return true
}

// Contains reports membership of x in s.
func (s *StringSet) Contains(x string) bool {
	_, ok := s.index[x]
	return ok
}

// Index returns the insertion rank of x or -1.
func (s *StringSet) Index(x string) int {
	if i, ok := s.index[x]; ok {
		return i
	}
	return -1
}

// Len is the number of elements in s.
func (s *StringSet) Len() int { return len(s.elems) }

// Elements returns the members of s in insertion order. The result must
// not be modified.
func (s *StringSet) Elements() []string {
	return s.elems
}
