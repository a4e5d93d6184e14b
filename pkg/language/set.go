/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: set.go
Description: Call-local candidate set for the detector. A Set is a value-type
bitset keyed by Language ordinal, so each detection call carries its own
candidate state and never mutates shared language metadata.
*/

package language

// Set is an immutable-style bitset of languages. Operations return a new
// Set; a Set value is owned by the call frame that holds it and is safe to
// copy freely. Unknown is never a member.
type Set uint64

// NewSet returns a set containing the given languages. Unknown and invalid
// values are ignored.
func NewSet(langs ...Language) Set {
	var s Set
	for _, l := range langs {
		s = s.Add(l)
	}
	return s
}

// AllSet returns the set of every supported language
func AllSet() Set {
	return NewSet(All()...)
}

// Add returns s with l included
func (s Set) Add(l Language) Set {
	if l <= Unknown || l >= numLanguages {
		return s
	}
	return s | 1<<uint(l)
}

// Remove returns s with l excluded
func (s Set) Remove(l Language) Set {
	if l <= Unknown || l >= numLanguages {
		return s
	}
	return s &^ (1 << uint(l))
}

// Has reports whether l is a member of s
func (s Set) Has(l Language) bool {
	if l <= Unknown || l >= numLanguages {
		return false
	}
	return s&(1<<uint(l)) != 0
}

// Intersect returns the intersection of s and other
func (s Set) Intersect(other Set) Set {
	return s & other
}

// Union returns the union of s and other
func (s Set) Union(other Set) Set {
	return s | other
}

// Filter returns the members of s for which keep returns true
func (s Set) Filter(keep func(Language) bool) Set {
	var out Set
	for l := Unknown + 1; l < numLanguages; l++ {
		if s.Has(l) && keep(l) {
			out = out.Add(l)
		}
	}
	return out
}

// Empty reports whether s has no members
func (s Set) Empty() bool {
	return s == 0
}

// Len returns the number of members in s
func (s Set) Len() int {
	count := 0
	for l := Unknown + 1; l < numLanguages; l++ {
		if s.Has(l) {
			count++
		}
	}
	return count
}

// Languages returns the members of s in ordinal order
func (s Set) Languages() []Language {
	out := make([]Language, 0, s.Len())
	for l := Unknown + 1; l < numLanguages; l++ {
		if s.Has(l) {
			out = append(out, l)
		}
	}
	return out
}
