package codec

import (
	"fmt"
	"image"

	"github.com/corona10/goimagehash"
)

// Similar reports whether a and b are perceptually the same picture, along with
// the Hamming distance between their difference hashes.
func (o *Options) Similar(a, b image.Image) (bool, int, error) {
	opts := o.withDefaults()

	ha, err := goimagehash.DifferenceHash(a)
	if err != nil {
		return false, 0, fmt.Errorf("codec: hash: %w", err)
	}
	hb, err := goimagehash.DifferenceHash(b)
	if err != nil {
		return false, 0, fmt.Errorf("codec: hash: %w", err)
	}

	dist, err := ha.Distance(hb)
	if err != nil {
		return false, 0, fmt.Errorf("codec: hash distance: %w", err)
	}
	return dist < opts.SimilarityThreshold, dist, nil
}
