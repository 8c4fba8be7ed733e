// Package parse turns note and interval text into encoded pitches. Parsed
// literals are memoized, one cache per grammar.
package parse

import (
	"github.com/jsphweid/fifths/cache"
	"github.com/jsphweid/fifths/constants"
	"github.com/jsphweid/fifths/logger"
	"github.com/jsphweid/fifths/notation"
	"github.com/jsphweid/fifths/pitch"
)

// Result is a memoized parse, including failures.
type Result struct {
	Pitch pitch.Pitch
	OK    bool
}

type Parser struct {
	notes     cache.Cache[string, Result]
	intervals cache.Cache[string, Result]
}

// New builds a Parser on the given caches. A nil cache disables memoization
// for that grammar.
func New(notes, intervals cache.Cache[string, Result]) *Parser {
	if notes == nil {
		notes = cache.Nop[string, Result]{}
	}
	if intervals == nil {
		intervals = cache.Nop[string, Result]{}
	}
	return &Parser{notes: notes, intervals: intervals}
}

// NewWithSize builds a Parser whose caches hold at most size entries each,
// or are unbounded when size <= 0.
func NewWithSize(size int) (*Parser, error) {
	notes, err := cache.New[string, Result](size)
	if err != nil {
		return nil, err
	}
	intervals, err := cache.New[string, Result](size)
	if err != nil {
		return nil, err
	}
	return New(notes, intervals), nil
}

var Default = mustNew(constants.GetCacheSize())

func mustNew(size int) *Parser {
	p, err := NewWithSize(size)
	if err != nil {
		panic("could not create parse caches: " + err.Error())
	}
	return p
}

// SetDefault replaces the parser behind the package level functions.
func SetDefault(p *Parser) {
	Default = p
}

func memo(c cache.Cache[string, Result], text string, fn func(string) (pitch.Pitch, bool)) (pitch.Pitch, bool) {
	if r, ok := c.Get(text); ok {
		return r.Pitch, r.OK
	}
	p, ok := fn(text)
	c.Add(text, Result{Pitch: p, OK: ok})
	logger.Debug("parsed literal", logger.Fields{"text": text, "ok": ok, "pitch": p})
	return p, ok
}

// Note parses scientific pitch notation. Names without an octave are pitch
// classes.
func (p *Parser) Note(text string) (pitch.Pitch, bool) {
	return memo(p.notes, text, parseNote)
}

// Interval parses interval names such as "M3", "-5P" or "P-8".
func (p *Parser) Interval(text string) (pitch.Pitch, bool) {
	return memo(p.intervals, text, parseInterval)
}

// Pitch tries the note grammar first, then the interval grammar, so "d5"
// is the note D5 while "dd5" is a doubly diminished fifth.
func (p *Parser) Pitch(text string) (pitch.Pitch, bool) {
	if n, ok := p.Note(text); ok {
		return n, true
	}
	return p.Interval(text)
}

// Expect passes encoded pitches through and parses everything it can read
// as text. []int values are taken as raw tuples.
func (p *Parser) Expect(v any) (pitch.Pitch, bool) {
	switch val := v.(type) {
	case pitch.Pitch:
		return val, val.Valid()
	case *pitch.Pitch:
		if val == nil {
			return pitch.Pitch{}, false
		}
		return *val, val.Valid()
	case []int:
		return pitch.FromTuple(val)
	case string:
		return p.Pitch(val)
	}
	return pitch.Pitch{}, false
}

func parseNote(text string) (pitch.Pitch, bool) {
	n, ok := notation.ParseNote(text)
	if !ok {
		return pitch.Pitch{}, false
	}
	if !n.HasOct {
		return pitch.Class(n.Step, n.Alt)
	}
	return pitch.NewNote(n.Step, n.Alt, n.Oct)
}

func parseInterval(text string) (pitch.Pitch, bool) {
	i, ok := notation.ParseInterval(text)
	if !ok {
		return pitch.Pitch{}, false
	}
	return pitch.NewInterval(i.Step, i.Alt, i.Oct, i.Dir)
}

func Note(text string) (pitch.Pitch, bool)     { return Default.Note(text) }
func Interval(text string) (pitch.Pitch, bool) { return Default.Interval(text) }
func Pitch(text string) (pitch.Pitch, bool)    { return Default.Pitch(text) }
func Expect(v any) (pitch.Pitch, bool)         { return Default.Expect(v) }
