package lex

// Scanner is a function which accepts a prefix of the given items, returning
// its length, or zero when it does not match.
type Scanner[T any] func(items []T) uint

// Or combines scanners such that the first one to succeed, from left to right,
// determines the match.
func Or[T any](scanners ...Scanner[T]) Scanner[T] {
	return func(items []T) uint {
		for _, scanner := range scanners {
			if n := scanner(items); n > 0 {
				return n
			}
		}
		return 0
	}
}

// Unit accepts the given sequence of items, in order.
func Unit[T comparable](chars ...T) Scanner[T] {
	return func(items []T) uint {
		if len(items) < len(chars) {
			return 0
		}
		for i := range chars {
			if items[i] != chars[i] {
				return 0
			}
		}
		return uint(len(chars))
	}
}

// String accepts the bytes of s.
func String(s string) Scanner[byte] {
	return Unit([]byte(s)...)
}

// Within accepts a single item in the inclusive range [lowest, highest].
func Within(lowest byte, highest byte) Scanner[byte] {
	return func(items []byte) uint {
		if len(items) != 0 && lowest <= items[0] && items[0] <= highest {
			return 1
		}
		return 0
	}
}

// Not accepts a single item which is none of the given ones.
func Not[T comparable](chars ...T) Scanner[T] {
	return func(items []T) uint {
		if len(items) == 0 {
			return 0
		}
		for _, c := range chars {
			if items[0] == c {
				return 0
			}
		}
		return 1
	}
}

// Many matches zero or more repetitions of a scanner.
func Many[T any](acceptor Scanner[T]) Scanner[T] {
	return func(items []T) uint {
		index := uint(0)
		for index < uint(len(items)) {
			n := acceptor(items[index:])
			if n == 0 {
				break
			}
			index += n
		}
		return index
	}
}

// Until matches everything up to, but excluding, the given item or the end of
// the input.
func Until[T comparable](item T) Scanner[T] {
	return func(items []T) uint {
		index := uint(0)
		for index < uint(len(items)) && items[index] != item {
			index++
		}
		return index
	}
}

// Sequence matches all scanners one after the other. Every scanner must
// consume something.
func Sequence[T any](scanners ...Scanner[T]) Scanner[T] {
	return func(items []T) uint {
		n := uint(0)
		for _, scanner := range scanners {
			m := scanner(items[n:])
			if m == 0 {
				return 0
			}
			n += m
		}
		return n
	}
}

// SequenceNullableLast is like Sequence except that the last scanner may
// match nothing, for an optional tail such as the rest of an identifier.
func SequenceNullableLast[T any](scanners ...Scanner[T]) Scanner[T] {
	return func(items []T) uint {
		n := uint(0)
		for i, scanner := range scanners {
			m := scanner(items[n:])
			if m == 0 {
				if i < len(scanners)-1 {
					return 0
				}
				break
			}
			n += m
		}
		return n
	}
}

// Ahead succeeds with the length of the first scanner only when the second
// one matches right after it, without consuming what the second matched.
func Ahead[T any](scanner Scanner[T], next Scanner[T]) Scanner[T] {
	return func(items []T) uint {
		n := scanner(items)
		if n == 0 || next(items[n:]) == 0 {
			return 0
		}
		return n
	}
}

// Unless succeeds with the length of the first scanner only when the second
// one does not match right after it.
func Unless[T any](scanner Scanner[T], next Scanner[T]) Scanner[T] {
	return func(items []T) uint {
		n := scanner(items)
		if n == 0 || next(items[n:]) != 0 {
			return 0
		}
		return n
	}
}

// Through matches everything up to and including the first occurrence of the
// given terminator. It fails when the terminator does not occur.
func Through[T comparable](terminator ...T) Scanner[T] {
	return func(items []T) uint {
		match := Unit(terminator...)
		for i := 0; i+len(terminator) <= len(items); i++ {
			if n := match(items[i:]); n > 0 {
				return uint(i) + n
			}
		}
		return 0
	}
}
