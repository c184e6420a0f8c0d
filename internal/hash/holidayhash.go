package hash

import "github.com/gostonefire/lensmap/internal/conf"

// HolidayHashAlgorithm - The internally used box selection algorithm. For every byte in the key the accumulator
// is increased by the byte value, multiplied by 17 and reduced modulo 256, starting from zero. The resulting
// accumulator is the box number.
type HolidayHashAlgorithm struct {
	tableSize int64
}

// NewHolidayHashAlgorithm - Returns a pointer to a new HolidayHashAlgorithm instance
func NewHolidayHashAlgorithm() *HolidayHashAlgorithm {
	return &HolidayHashAlgorithm{tableSize: conf.NumberOfBoxes}
}

// HashFunc1 - Given key it generates an index (box) between 0 and table size - 1
func (H *HolidayHashAlgorithm) HashFunc1(key []byte) int64 {
	var acc int64
	for _, b := range key {
		acc = (acc + int64(b)) * conf.HashMultiplier % H.tableSize
	}

	return acc
}

// GetTableSize - Returns the table size the implemented hash function is supporting
func (H *HolidayHashAlgorithm) GetTableSize() int64 {
	return H.tableSize
}

// Sum - Returns the holiday hash of a string
func Sum(s string) int64 {
	h := HolidayHashAlgorithm{tableSize: conf.NumberOfBoxes}
	return h.HashFunc1([]byte(s))
}
