// Package id formats and parses generated asiento codes.
package id

import (
	"fmt"
	"strconv"
)

// Format returns a generated asiento code like "0001".
func Format(seq int) string {
	return fmt.Sprintf("%04d", seq)
}

// Parse returns the sequence number of a numeric asiento code.
func Parse(codigo string) (int, error) {
	seq, err := strconv.Atoi(codigo)
	if err != nil {
		return 0, fmt.Errorf("invalid asiento code %q: %w", codigo, err)
	}
	if seq < 0 {
		return 0, fmt.Errorf("invalid asiento code %q: negative sequence", codigo)
	}
	return seq, nil
}

// Next returns the next free sequence given the codes already in the
// journal. Supplied codes that are not numeric are ignored.
func Next(codigos []string) int {
	maxSeq := 0
	for _, c := range codigos {
		seq, err := Parse(c)
		if err != nil {
			continue
		}
		if seq > maxSeq {
			maxSeq = seq
		}
	}
	return maxSeq + 1
}
