package lensmap

import (
	"fmt"
	"github.com/gostonefire/lensmap/hashfunc"
	"github.com/gostonefire/lensmap/internal/conf"
	"github.com/gostonefire/lensmap/internal/hash"
	"github.com/gostonefire/lensmap/internal/model"
	"github.com/gostonefire/lensmap/internal/storage/box"
	"github.com/gostonefire/lensmap/internal/utils"
	"github.com/rs/zerolog"
)

// LensMapStat - Statistics on the overall usage and distribution over boxes
//   - Records is the total number of records stored
//   - UsedBoxes is the number of boxes holding at least one record
//   - LargestBox is the number of records in the fullest box
//   - BoxDistribution is the number of records stored in each box
type LensMapStat struct {
	Records         int64
	UsedBoxes       int64
	LargestBox      int64
	BoxDistribution []int64
}

// LensMap - The main implementation struct, a fixed array of boxes where each label is routed to one box
// by the hash algorithm. A LensMap is not safe for concurrent use.
type LensMap struct {
	boxes         [conf.NumberOfBoxes]box.Box
	hashAlgorithm hashfunc.HashAlgorithm
	logger        zerolog.Logger
}

// NewLensMap - Returns a new and empty lens map.
//   - hashAlgorithm is an optional entry to provide a custom box selection algorithm following the hashfunc.HashAlgorithm interface, nil selects the internal holiday hash.
//
// It returns:
//   - lensMap is a pointer to a LensMap struct
//   - err is a normal go Error which should be nil if everything went ok
func NewLensMap(hashAlgorithm hashfunc.HashAlgorithm) (lensMap *LensMap, err error) {
	if hashAlgorithm == nil {
		hashAlgorithm = hash.NewHolidayHashAlgorithm()
	} else if hashAlgorithm.GetTableSize() != conf.NumberOfBoxes {
		err = fmt.Errorf("hash algorithm table size must be %d, got %d", conf.NumberOfBoxes, hashAlgorithm.GetTableSize())
		return
	}

	lensMap = &LensMap{
		hashAlgorithm: hashAlgorithm,
		logger:        zerolog.Nop(),
	}

	return
}

// SetLogger - Sets the logger that set and remove operations are traced to
func (L *LensMap) SetLogger(logger zerolog.Logger) {
	L.logger = logger
}

// GetBoxNo - Returns which box number that the given label results in
//   - label is the identifier of a record
func (L *LensMap) GetBoxNo(label string) (boxNo int64, err error) {
	boxNo = L.hashAlgorithm.HashFunc1([]byte(label))
	if boxNo < 0 || boxNo >= conf.NumberOfBoxes {
		err = fmt.Errorf("recieved box number %d from hash algorithm is outside permitted range", boxNo)
		return
	}

	return
}

// Set - Updates an existing record with a new value or appends it to the end of its box if no record with
// the same label is found. An updated record keeps its position.
//   - label is the identifier of a record
//   - value is the value to store along with the label
//
// It returns:
//   - err is a standard error, only ever returned if a custom hash algorithm is out of range
func (L *LensMap) Set(label string, value int64) (err error) {
	boxNo, err := L.GetBoxNo(label)
	if err != nil {
		return
	}

	position, added := L.boxes[boxNo].Set(label, value)
	L.logger.Trace().
		Str("label", label).
		Int64("value", value).
		Int64("box", boxNo).
		Int("position", position).
		Bool("added", added).
		Msg("set lens")

	return
}

// Remove - Removes the record with the given label and closes the gap in its box. Removing a label that is
// not present is not an error.
//   - label is the identifier of a record
//
// It returns:
//   - err is a standard error, only ever returned if a custom hash algorithm is out of range
func (L *LensMap) Remove(label string) (err error) {
	boxNo, err := L.GetBoxNo(label)
	if err != nil {
		return
	}

	removed := L.boxes[boxNo].Remove(label)
	L.logger.Trace().
		Str("label", label).
		Int64("box", boxNo).
		Bool("removed", removed).
		Msg("remove lens")

	return
}

// Find - Finds the record with the given label.
//   - label is the identifier of a record
//
// It returns:
//   - boxNo is the box holding the record
//   - position is the zero-based position of the record within its box
//   - value is the value of the record
//   - err is either of type NoRecordFound or a standard error, if something went wrong
func (L *LensMap) Find(label string) (boxNo int64, position int, value int64, err error) {
	boxNo, err = L.GetBoxNo(label)
	if err != nil {
		return
	}

	position = L.boxes[boxNo].Find(label)
	record, ok := L.boxes[boxNo].Get(position)
	if !ok {
		err = NoRecordFound{msg: fmt.Sprintf("no record found for label %q", label)}
		return
	}

	value = record.Value

	return
}

// Box - Returns a copy of the records in the given box, in box order
//   - boxNo is the identifier of a box, the number can be retrieved by call to GetBoxNo
func (L *LensMap) Box(boxNo int64) (records []model.Record, err error) {
	if boxNo < 0 || boxNo >= conf.NumberOfBoxes {
		err = fmt.Errorf("box number %d is outside permitted range", boxNo)
		return
	}

	records = L.boxes[boxNo].Records()

	return
}

// Checksum - Returns the focusing power of the lens map, the sum over every record of
// (box number + 1) * (position in box + 1) * value.
//
// It returns:
//   - checksum is the total focusing power
//   - err is of type ChecksumOverflow if the total does not fit in an int64
func (L *LensMap) Checksum() (checksum int64, err error) {
	var power int64
	var ok bool
	for i := int64(0); i < conf.NumberOfBoxes; i++ {
		power, ok = L.boxes[i].Power()
		if ok {
			power, ok = utils.MulInt64(i+1, power)
		}
		if ok {
			checksum, ok = utils.AddInt64(checksum, power)
		}
		if !ok {
			checksum = 0
			err = ChecksumOverflow{BoxNo: i}
			return
		}
	}

	return
}

// Stat - Walks through all boxes and produce a LensMapStat struct with information.
//   - includeDistribution set to true will include a slice of length NumberOfBoxes with number of records per box, false will set LensMapStat.BoxDistribution to nil.
func (L *LensMap) Stat(includeDistribution bool) (lensMapStat LensMapStat) {
	if includeDistribution {
		lensMapStat.BoxDistribution = make([]int64, conf.NumberOfBoxes)
	}

	for i := int64(0); i < conf.NumberOfBoxes; i++ {
		n := int64(L.boxes[i].Len())
		if n == 0 {
			continue
		}

		lensMapStat.Records += n
		lensMapStat.UsedBoxes++
		if n > lensMapStat.LargestBox {
			lensMapStat.LargestBox = n
		}
		if includeDistribution {
			lensMapStat.BoxDistribution[i] = n
		}
	}

	return
}
