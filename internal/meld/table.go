package meld

import (
	"fmt"
	"slices"
)

// TableSide is the ordered set of sequences laid down by one partnership.
type TableSide struct {
	name      string
	sequences []*Sequence
}

func NewTableSide(name string) *TableSide {
	return &TableSide{name: name}
}

func (t *TableSide) Name() string { return t.name }
func (t *TableSide) Len() int     { return len(t.sequences) }

// AddSequence appends seq and returns its index.
func (t *TableSide) AddSequence(seq *Sequence) (int, error) {
	if seq == nil || seq.Len() < MinLength {
		return -1, violation(nil, "a table sequence needs at least %d cards", MinLength)
	}
	t.sequences = append(t.sequences, seq)
	return len(t.sequences) - 1, nil
}

// Sequence returns the sequence at index i.
func (t *TableSide) Sequence(i int) (*Sequence, error) {
	if i < 0 || i >= len(t.sequences) {
		return nil, fmt.Errorf("%s has no sequence %d", t.name, i)
	}
	return t.sequences[i], nil
}

// Sequences returns the sequences in the order they were laid down.
func (t *TableSide) Sequences() []*Sequence {
	return slices.Clone(t.sequences)
}
