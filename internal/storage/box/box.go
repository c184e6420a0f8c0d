package box

import (
	"github.com/gostonefire/lensmap/internal/model"
	"github.com/gostonefire/lensmap/internal/utils"
)

// notFound - Position returned by Find when no record has the label
const notFound int = -1

// Box - Represents one box of a lens map, an ordered sequence of records where each label appears at most once.
// Records keep their insertion order, an update keeps the position and a removal closes the gap.
type Box struct {
	records []model.Record
}

// Len - Returns the number of records in the box
func (B *Box) Len() int {
	return len(B.records)
}

// Find - Returns the position of the record with the given label, or -1 if there is none.
// Labels are compared by exact, case-sensitive match.
func (B *Box) Find(label string) int {
	for i, r := range B.records {
		if r.Label == label {
			return i
		}
	}

	return notFound
}

// Set - Replaces the value of the record with the given label, keeping its position, or appends a new
// record at the end of the box if the label is not present.
//
// It returns:
//   - position is the position of the record after the operation
//   - added is true if a new record was appended
func (B *Box) Set(label string, value int64) (position int, added bool) {
	position = B.Find(label)
	if position != notFound {
		B.records[position].Value = value
		return
	}

	B.records = append(B.records, model.Record{Label: label, Value: value})
	position = len(B.records) - 1
	added = true

	return
}

// Remove - Removes the record with the given label and shifts every following record one position
// towards the front. Removing a label that is not present does nothing.
//
// It returns:
//   - removed is true if a record was removed
func (B *Box) Remove(label string) (removed bool) {
	position := B.Find(label)
	if position == notFound {
		return
	}

	copy(B.records[position:], B.records[position+1:])
	B.records[len(B.records)-1] = model.Record{}
	B.records = B.records[:len(B.records)-1]
	removed = true

	return
}

// Get - Returns the record at the given position and whether the position is within the box
func (B *Box) Get(position int) (record model.Record, ok bool) {
	if position < 0 || position >= len(B.records) {
		return
	}

	return B.records[position], true
}

// Records - Returns a copy of the records in box order
func (B *Box) Records() []model.Record {
	records := make([]model.Record, len(B.records))
	_ = copy(records, B.records)

	return records
}

// Power - Returns the sum of every record value weighted by its one-based position in the box.
// ok is false if the sum does not fit in an int64.
func (B *Box) Power() (power int64, ok bool) {
	var weighted int64
	for i, r := range B.records {
		weighted, ok = utils.MulInt64(int64(i+1), r.Value)
		if !ok {
			return 0, false
		}
		power, ok = utils.AddInt64(power, weighted)
		if !ok {
			return 0, false
		}
	}

	return power, true
}
