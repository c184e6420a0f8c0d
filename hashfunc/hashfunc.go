package hashfunc

// HashAlgorithm - Interface that permits an implementation using the LensMap to supply a custom box
// selection algorithm. The lens map has a fixed number of boxes, so any implementation has to address
// exactly that many of them.
type HashAlgorithm interface {
	// HashFunc1 - Given key it generates an index (box) between 0 and table size - 1
	// Any number returned outside the table size (0 -> table size - 1) will result in an error down stream.
	HashFunc1(key []byte) int64

	// GetTableSize - Returns the table size the implemented hash function is supporting.
	// NewLensMap refuses an algorithm that does not report the lens map's fixed number of boxes.
	GetTableSize() int64
}
