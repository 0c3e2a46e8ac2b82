package pow

import "strconv"

// Predicate reports whether hash satisfies difficulty.
type Predicate func(hash string, difficulty uint32) bool

// ZeroPrefix accepts a hash whose first difficulty characters are all '0'.
func ZeroPrefix(hash string, difficulty uint32) bool {
	if uint64(difficulty) > uint64(len(hash)) {
		return false
	}
	for i := 0; i < int(difficulty); i++ {
		if hash[i] != '0' {
			return false
		}
	}
	return true
}

// DecimalPrefix accepts a hash whose first difficulty characters parse as the
// base-10 integer zero. A prefix holding any hex letter never parses, so for a
// non-empty prefix this accepts exactly what ZeroPrefix accepts. The empty
// prefix of difficulty 0 is accepted.
func DecimalPrefix(hash string, difficulty uint32) bool {
	if uint64(difficulty) > uint64(len(hash)) {
		return false
	}
	if difficulty == 0 {
		return true
	}
	v, err := strconv.ParseUint(hash[:difficulty], 10, 64)
	return err == nil && v == 0
}

// PredicateByName resolves the names accepted on the command line.
func PredicateByName(name string) (Predicate, bool) {
	switch name {
	case "", "zero-prefix":
		return ZeroPrefix, true
	case "decimal-prefix":
		return DecimalPrefix, true
	}
	return nil, false
}
