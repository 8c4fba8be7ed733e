// Package list applies pitch operations across sequences of notes,
// pitch classes and intervals given as slices or as separated text.
package list

import (
	"strings"
	"unicode"

	"github.com/jsphweid/fifths/parse"
	"github.com/jsphweid/fifths/pitch"
	"github.com/jsphweid/fifths/render"
	"github.com/jsphweid/fifths/transpose"
)

func isSeparator(r rune) bool {
	return r == ',' || r == '|' || unicode.IsSpace(r)
}

// Listify normalizes src into a slice. Text is split on whitespace, commas
// and bars; nil becomes empty; a []int is one raw pitch tuple, not a list.
func Listify(src any) []any {
	switch val := src.(type) {
	case nil:
		return []any{}
	case []any:
		return val
	case string:
		return toAny(strings.FieldsFunc(val, isSeparator))
	case []string:
		return toAny(val)
	case []pitch.Pitch:
		return toAny(val)
	case [][]int:
		return toAny(val)
	}
	return []any{src}
}

func toAny[A any](items []A) []any {
	res := make([]any, len(items))
	for i, v := range items {
		res[i] = v
	}
	return res
}

// Pitches parses every entry of src, dropping the ones that fail.
func Pitches(src any) []pitch.Pitch {
	var res []pitch.Pitch
	for _, v := range Listify(src) {
		if p, ok := parse.Expect(v); ok {
			res = append(res, p)
		}
	}
	return res
}

// Strings renders pitches, dropping invalid ones.
func Strings(ps []pitch.Pitch) []string {
	res := make([]string, 0, len(ps))
	for _, p := range ps {
		if s, ok := render.Pitch(p); ok {
			res = append(res, s)
		}
	}
	return res
}

// Map transforms every parsable entry. Entries that don't parse, or for
// which fn reports false, are left out.
func Map(fn func(pitch.Pitch) (pitch.Pitch, bool), src any) []string {
	var res []pitch.Pitch
	for _, p := range Pitches(src) {
		if q, ok := fn(p); ok {
			res = append(res, q)
		}
	}
	return Strings(res)
}

// Filter keeps the parsable entries fn accepts, as canonical text.
func Filter(fn func(pitch.Pitch) bool, src any) []string {
	var res []pitch.Pitch
	for _, p := range Pitches(src) {
		if fn(p) {
			res = append(res, p)
		}
	}
	return Strings(res)
}

// Reduce folds the parsable entries of src. The accumulator is returned as
// fn built it; it is never rendered.
func Reduce[A any](fn func(acc A, p pitch.Pitch) A, init A, src any) A {
	acc := init
	for _, p := range Pitches(src) {
		acc = fn(acc, p)
	}
	return acc
}

// Harmonize transposes every entry by by, which may be the interval (to
// move a melody) or the subject (to stack intervals on a root).
func Harmonize(src any, by any) []string {
	tr := transpose.With(by)
	var res []string
	for _, v := range Listify(src) {
		if s, ok := tr.Transpose(v); ok {
			res = append(res, s)
		}
	}
	return res
}
