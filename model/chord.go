package model

type Notes = []uint8

// Chord is the set of keys held down at one moment of a midi file.
type Chord struct {
	Ticks int64
	// millis from the start of the file
	Offset uint32
	Notes  Notes
}
