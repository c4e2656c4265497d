// Package parser turns raw command text into validated Command values.
// Parsers are pure functions of their input string; they never touch the
// model, so every failure they report is an input-shape problem.
package parser

import (
	"sort"
	"strings"
)

// Prefix is a short literal marker that introduces a keyed argument value,
// e.g. "n/" or "amt/".
type Prefix string

// Prefixes used by the command language. Two markers are deliberately reused
// across commands and resolved per parser: "t/" means lesson time in
// addlesson and plan cadence in addfee, and "s/" means student name in addfee
// and attendance status in mark. Tokenize only sees the literal, so a parser
// must pass at most one alias of a reused marker per call; tags use the
// longer "tag/" marker to keep "t/" unambiguous.
const (
	PrefixName     Prefix = "n/"
	PrefixPhone    Prefix = "p/"
	PrefixEmail    Prefix = "e/"
	PrefixAddress  Prefix = "a/"
	PrefixTag      Prefix = "tag/"
	PrefixAmount   Prefix = "amt/"
	PrefixDay      Prefix = "d/"
	PrefixTime     Prefix = "t/"
	PrefixLocation Prefix = "l/"
	PrefixStudent  Prefix = "s/" // alias of PrefixStatus
	PrefixStatus   Prefix = "s/" // alias of PrefixStudent
	PrefixNote     Prefix = "note/"
)

// ArgumentMultimap holds the unkeyed preamble and every value found after
// each recognized prefix, in order of appearance.
type ArgumentMultimap struct {
	preamble string
	values   map[Prefix][]string
}

// prefixHit is one recognized prefix occurrence within the argument string.
type prefixHit struct {
	prefix Prefix
	start  int // index of the prefix in the argument string
}

// Tokenize scans the argument string left to right. Everything before the
// first recognized prefix is the preamble; each prefix maps to every value
// following it up to the next recognized prefix. Prefix matching is anchored
// to token boundaries: a prefix inside a longer token, e.g. the "p/" in
// "harp/", never matches. Tokenize itself never fails; duplicate detection is
// the caller's job via VerifyNoDuplicatePrefixes.
func Tokenize(args string, prefixes ...Prefix) ArgumentMultimap {
	padded := " " + args
	var hits []prefixHit
	for _, p := range prefixes {
		needle := " " + string(p)
		from := 0
		for {
			i := strings.Index(padded[from:], needle)
			if i < 0 {
				break
			}
			// padded has one leading byte, so the prefix starts at
			// from+i in the original argument string.
			hits = append(hits, prefixHit{prefix: p, start: from + i})
			from += i + 1
		}
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].start < hits[j].start })

	mm := ArgumentMultimap{values: make(map[Prefix][]string)}
	if len(hits) == 0 {
		mm.preamble = strings.TrimSpace(args)
		return mm
	}

	mm.preamble = strings.TrimSpace(args[:hits[0].start])
	for i, h := range hits {
		valueStart := h.start + len(h.prefix)
		valueEnd := len(args)
		if i+1 < len(hits) {
			valueEnd = hits[i+1].start
		}
		value := strings.TrimSpace(args[valueStart:valueEnd])
		mm.values[h.prefix] = append(mm.values[h.prefix], value)
	}
	return mm
}

// Preamble returns the trimmed unkeyed text before the first prefix.
func (m ArgumentMultimap) Preamble() string {
	return m.preamble
}

// Value returns the last value given for the prefix, if any.
func (m ArgumentMultimap) Value(p Prefix) (string, bool) {
	vs := m.values[p]
	if len(vs) == 0 {
		return "", false
	}
	return vs[len(vs)-1], true
}

// AllValues returns every value given for the prefix, in order of appearance.
func (m ArgumentMultimap) AllValues(p Prefix) []string {
	return append([]string(nil), m.values[p]...)
}

// VerifyNoDuplicatePrefixes fails when any of the given single-valued
// prefixes was supplied more than once, listing the offenders.
func (m ArgumentMultimap) VerifyNoDuplicatePrefixes(prefixes ...Prefix) error {
	var duplicated []string
	for _, p := range prefixes {
		if len(m.values[p]) > 1 {
			duplicated = append(duplicated, string(p))
		}
	}
	if len(duplicated) > 0 {
		return &ParseError{
			Message: "Multiple values specified for the following single-valued field(s): " +
				strings.Join(duplicated, " "),
		}
	}
	return nil
}
