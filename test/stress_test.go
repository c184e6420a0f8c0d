//go:build stress

package test

import (
	"fmt"
	"github.com/gostonefire/lensmap"
	"github.com/gostonefire/lensmap/internal/hash"
	"github.com/stretchr/testify/assert"
	"math/big"
	"math/rand"
	"strings"
	"testing"
)

// referenceMap - Straightforward model of the lens boxes used to cross-check the lens map
type referenceMap struct {
	boxes  [256][]string
	values map[string]int64
}

func newReferenceMap() *referenceMap {
	return &referenceMap{values: make(map[string]int64)}
}

func (R *referenceMap) set(label string, value int64) {
	if _, ok := R.values[label]; !ok {
		boxNo := hash.Sum(label)
		R.boxes[boxNo] = append(R.boxes[boxNo], label)
	}
	R.values[label] = value
}

func (R *referenceMap) remove(label string) {
	if _, ok := R.values[label]; !ok {
		return
	}
	delete(R.values, label)
	boxNo := hash.Sum(label)
	kept := R.boxes[boxNo][:0]
	for _, l := range R.boxes[boxNo] {
		if l != label {
			kept = append(kept, l)
		}
	}
	R.boxes[boxNo] = kept
}

func (R *referenceMap) checksum() *big.Int {
	sum := new(big.Int)
	for i, labels := range R.boxes {
		for p, label := range labels {
			term := big.NewInt(int64(i + 1))
			term.Mul(term, big.NewInt(int64(p+1)))
			term.Mul(term, big.NewInt(R.values[label]))
			sum.Add(sum, term)
		}
	}
	return sum
}

func createInstructionLine(r *rand.Rand, amount, labels int, ref *referenceMap) string {
	tokens := make([]string, 0, amount)
	for i := 0; i < amount; i++ {
		label := fmt.Sprintf("%c%c%d", 'a'+r.Intn(26), 'a'+r.Intn(26), r.Intn(labels))
		if r.Intn(4) == 0 {
			tokens = append(tokens, label+"-")
			ref.remove(label)
		} else {
			value := r.Int63n(1 << 32)
			tokens = append(tokens, fmt.Sprintf("%s=%d", label, value))
			ref.set(label, value)
		}
	}

	return strings.Join(tokens, ",")
}

func TestStressReplay(t *testing.T) {
	t.Run("replays random instructions like the reference", func(t *testing.T) {
		for _, seed := range []int64{1, 2, 3} {
			// Prepare
			r := rand.New(rand.NewSource(seed))
			ref := newReferenceMap()
			line := createInstructionLine(r, 200000, 20, ref)

			lm, err := lensmap.NewLensMap(nil)
			assert.NoError(t, err, "creates lens map")

			// Execute
			applied, err := lm.ApplyAll(line)

			// Check
			assert.NoError(t, err, "replays line")
			assert.Equal(t, 200000, applied, "every instruction applied")

			checksum, err := lm.Checksum()
			assert.NoError(t, err, "no overflow")
			expected := ref.checksum()
			assert.Equal(t, 0, expected.Cmp(big.NewInt(checksum)), "checksum matches reference for seed %d", seed)
			assert.Equal(t, int64(len(ref.values)), lm.Stat(false).Records, "same number of records for seed %d", seed)
			assert.Equal(t, int64(256), lm.Stat(false).UsedBoxes, "every box used for seed %d", seed)

			for boxNo := int64(0); boxNo < 256; boxNo++ {
				records, err := lm.Box(boxNo)
				assert.NoError(t, err, "gets box")
				labels := make([]string, len(records))
				for i, record := range records {
					labels[i] = record.Label
				}
				if len(labels) != len(ref.boxes[boxNo]) {
					assert.Fail(t, "box length matches reference", "box %d", boxNo)
					continue
				}
				for i := range labels {
					if labels[i] != ref.boxes[boxNo][i] {
						assert.Fail(t, "box order matches reference", "box %d", boxNo)
						break
					}
				}
			}
		}
	})
}
