package iset

import "encoding/binary"

// mutationOp is the one-byte opcode prefixing each record of a fuzz
// mutation script, matching test_countset_fuzzer.h's mutation_type enum
// exactly (same ordinal values, so scripts captured against the original
// fuzzer remain valid input here).
type mutationOp byte

const (
	opInsertSingle mutationOp = iota
	opInsertSeveral
	opEraseValue
	opEraseNth
	opEraseRange
)

// scriptReader decodes a fuzz mutation script byte-for-byte the way
// safe_unaligned_load does: a read that would run past the end of the
// buffer returns the zero value and consumes the rest of the buffer,
// rather than erroring. This keeps every byte sequence — including
// truncated ones — a valid, terminating script, which is what makes
// corpus entries shrinkable without producing malformed input.
type scriptReader struct {
	buf []byte
}

func (r *scriptReader) uint16() uint16 {
	if len(r.buf) < 2 {
		r.buf = nil
		return 0
	}
	v := binary.LittleEndian.Uint16(r.buf)
	r.buf = r.buf[2:]
	return v
}

func (r *scriptReader) uint8() uint8 {
	if len(r.buf) < 1 {
		r.buf = nil
		return 0
	}
	v := r.buf[0]
	r.buf = r.buf[1:]
	return v
}

func (r *scriptReader) byte() (byte, bool) {
	if len(r.buf) == 0 {
		return 0, false
	}
	b := r.buf[0]
	r.buf = r.buf[1:]
	return b, true
}

// RunFuzzScript replays a binary mutation script (spec.md §6's format)
// against a fresh Set[uint16] and, if check is true, cross-checks every
// intermediate state against a plain sorted slice oracle. It panics on the
// first inconsistency, the same way the original's VERIFY macro aborts the
// fuzzer process — a panicking fuzz target is exactly how Go's native
// fuzzing engine expects a bug to surface.
func RunFuzzScript(script []byte, check bool) {
	s := New[uint16]()
	var expected []uint16
	r := &scriptReader{buf: script}

	for {
		opByte, ok := r.byte()
		if !ok {
			return
		}
		switch mutationOp(opByte) {
		case opInsertSingle:
			val := r.uint16()
			_, inserted, _ := s.Insert(val)
			if check {
				pos := sortedSearch(expected, val)
				found := pos < len(expected) && expected[pos] == val
				if inserted == found {
					panic("iset: fuzz insert_single disagreed with oracle")
				}
				if !found {
					expected = insertAt(expected, pos, val)
				}
			}

		case opInsertSeveral:
			cnt := int(r.uint8())
			values := make([]uint16, 0, cnt)
			for i := 0; i < cnt && len(r.buf) > 0; i++ {
				values = append(values, r.uint16())
			}
			for _, v := range values {
				s.Insert(v)
			}
			if check {
				expected = append(expected, values...)
				expected = sortUnique(expected)
			}

		case opEraseValue:
			val := r.uint16()
			n := s.EraseKey(val)
			if check {
				pos := sortedSearch(expected, val)
				found := pos < len(expected) && expected[pos] == val
				if found != (n == 1) {
					panic("iset: fuzz erase_value disagreed with oracle")
				}
				if found {
					expected = append(expected[:pos], expected[pos+1:]...)
				}
			}

		case opEraseNth:
			if s.IsEmpty() {
				continue
			}
			n := int(r.uint16()) % s.Len()
			s.Erase(s.Nth(n))
			if check {
				expected = append(expected[:n], expected[n+1:]...)
			}

		case opEraseRange:
			if s.IsEmpty() {
				continue
			}
			x := int(r.uint16()) % s.Len()
			y := int(r.uint16()) % s.Len()
			if x > y {
				x, y = y, x
			}
			s.EraseRange(s.Nth(x), s.Nth(y+1))
			if check {
				expected = append(expected[:x], expected[y+1:]...)
			}
		}

		if check {
			checkAgainstOracle(s, expected)
		}
	}
}

func sortedSearch(xs []uint16, v uint16) int {
	lo, hi := 0, len(xs)
	for lo < hi {
		mid := (lo + hi) / 2
		if xs[mid] < v {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

func insertAt(xs []uint16, pos int, v uint16) []uint16 {
	xs = append(xs, 0)
	copy(xs[pos+1:], xs[pos:])
	xs[pos] = v
	return xs
}

func sortUnique(xs []uint16) []uint16 {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j-1] > xs[j]; j-- {
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}
	out := xs[:0]
	for i, v := range xs {
		if i == 0 || v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}

// checkAgainstOracle panics on the first discrepancy between s and the
// sorted-slice oracle expected, mirroring assert_countset_is.
func checkAgainstOracle(s *Set[uint16], expected []uint16) {
	if s.Len() != len(expected) {
		panic("iset: fuzz size diverged from oracle")
	}
	i := 0
	for it := s.Begin(); it.Valid(); it.Next() {
		if it.Key() != expected[i] {
			panic("iset: fuzz order diverged from oracle")
		}
		if it.Index() != i {
			panic("iset: fuzz Index diverged from oracle")
		}
		i++
	}
}
