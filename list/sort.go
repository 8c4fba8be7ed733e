package list

import (
	"fmt"
	"math"
	"sort"

	"github.com/jsphweid/fifths/parse"
	"github.com/jsphweid/fifths/pitch"
	"github.com/jsphweid/fifths/render"
	"github.com/jsphweid/fifths/util"
)

// Item is a list entry with its parse.
type Item struct {
	Value any
	Pitch pitch.Pitch
	OK    bool
}

func NewItem(v any) Item {
	p, ok := parse.Expect(v)
	return Item{Value: v, Pitch: p, OK: ok}
}

// Score is the height used for sorting. Pitch classes get a stable but
// musically arbitrary height a little below C0; unparsable entries sort
// first.
func (it Item) Score() float64 {
	if !it.OK {
		return math.Inf(-1)
	}
	if it.Pitch.IsClass() {
		return float64(-util.FloorDiv(it.Pitch.Fifths*7, 12) - 10)
	}
	return float64(it.Pitch.Height())
}

func (it Item) String() string {
	if it.OK {
		return render.String(it.Pitch)
	}
	if s, ok := it.Value.(string); ok {
		return s
	}
	return fmt.Sprint(it.Value)
}

// Comparator reports whether a sorts before b.
type Comparator func(a, b Item) bool

func Ascending(a, b Item) bool  { return a.Score() < b.Score() }
func Descending(a, b Item) bool { return a.Score() > b.Score() }

// Sort orders src with cmp, keeping equal entries in their original order.
// Parsable entries come back as canonical text, the rest verbatim.
func Sort(cmp Comparator, src any) []string {
	items := Items(src)
	sort.SliceStable(items, func(i, j int) bool {
		return cmp(items[i], items[j])
	})
	res := make([]string, len(items))
	for i, it := range items {
		res[i] = it.String()
	}
	return res
}

func Items(src any) []Item {
	values := Listify(src)
	items := make([]Item, len(values))
	for i, v := range values {
		items[i] = NewItem(v)
	}
	return items
}
