// Package grammar implements the character classes of the header line grammar.
//
// A header line is tokenized in two stages: the line is split on tabs, then every
// field is checked against one of the predicates below. There are two tag shapes:
// [IsTag] is the strict shape used when building records, [IsLooseTag] is the wider
// shape accepted when parsing headers written by third-party tools.
package grammar

// Error is a grammar error.
type Error string

func (e Error) Error() string { return string(e) }

func (Error) Grammar() bool { return true }

func isUpper(c byte) bool { return 'A' <= c && c <= 'Z' }

func isAlpha(c byte) bool { return isUpper(c) || 'a' <= c && c <= 'z' }

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isAlnum(c byte) bool { return isAlpha(c) || isDigit(c) }

// IsPrint reports whether c is a printable ASCII character (0x20-0x7E).
func IsPrint(c byte) bool { return 0x20 <= c && c <= 0x7E }

// IsRecordType reports whether s is a record type code: exactly two uppercase letters.
func IsRecordType[T ~string | ~[]byte](s T) bool {
	return len(s) == 2 && isUpper(s[0]) && isUpper(s[1])
}

// RecordTypePrefix matches the record type field of a line: '@' followed by two
// uppercase letters. Anything after the code is ignored.
// It returns the code and true on success.
func RecordTypePrefix[T ~string | ~[]byte](s T) (T, bool) {
	if len(s) < 3 || s[0] != '@' || !isUpper(s[1]) || !isUpper(s[2]) {
		var zero T
		return zero, false
	}
	return s[1:3], true
}

// IsTag reports whether s is a strict tag: an uppercase letter followed by
// an uppercase letter or a digit (SN, LN, M5, ...).
func IsTag[T ~string | ~[]byte](s T) bool {
	return len(s) == 2 && isUpper(s[0]) && (isUpper(s[1]) || isDigit(s[1]))
}

// IsLooseTag reports whether s is a tag as accepted by the parser:
// a letter followed by a letter or a digit.
func IsLooseTag[T ~string | ~[]byte](s T) bool {
	return len(s) == 2 && isAlpha(s[0]) && isAlnum(s[1])
}

// IsValue reports whether s is a non-empty run of printable ASCII characters.
func IsValue[T ~string | ~[]byte](s T) bool {
	if len(s) == 0 {
		return false
	}
	for i := range len(s) {
		if !IsPrint(s[i]) {
			return false
		}
	}
	return true
}

// SplitTagField splits a TAG:VALUE field with a loose tag and a printable value.
func SplitTagField[T ~string | ~[]byte](s T) (tag, val T, ok bool) {
	if len(s) < 4 || s[2] != ':' || !IsLooseTag(s[:2]) || !IsValue(s[3:]) {
		return tag, val, false
	}
	return s[:2], s[3:], true
}
