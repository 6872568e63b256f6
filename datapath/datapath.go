// Package datapath implements the compact path-expression language for
// extracting a value from a generic data tree (maps, sequences, scalars).
//
// An expression is a sequence of segments separated by '.' or '/'. Each
// segment is an optional mapping key followed by zero or more bracketed
// selectors: an integer index (negative counts from the end), a quoted
// literal key, a field=value predicate scanning a sequence for the first
// matching mapping, or a bare lookup key. Separators inside brackets do not
// split segments, so quoted keys and predicate values may contain them.
package datapath

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/reoring/dataspec/i18n"
)

// Error codes reported by Parse and Evaluate.
const (
	CodeMalformedSegment = "malformed_segment"
	CodeKeyNotFound      = "key_not_found"
	CodeIndexOutOfRange  = "index_out_of_range"
	CodeTypeMismatch     = "type_mismatch"
	CodePredicateNoMatch = "predicate_no_match"
)

// Error is a typed parse or resolution failure.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string { return e.Message }

func newError(code, detail string) *Error {
	return &Error{Code: code, Message: i18n.T(code, nil) + ": " + detail}
}

// SelectorKind identifies a selector variant.
type SelectorKind int

const (
	SelIndex SelectorKind = iota
	SelQuotedKey
	SelPredicate
	SelBareKey
)

// Selector is one bracketed step applied to the current value.
type Selector interface {
	Kind() SelectorKind
}

// Index selects the i-th element of a sequence; negative values count from
// the end.
type Index int

func (Index) Kind() SelectorKind { return SelIndex }

// QuotedKey selects a mapping entry by a quoted literal key. A quoted "123"
// is a string key, distinct from the numeric index 123.
type QuotedKey struct {
	Key string
}

func (QuotedKey) Kind() SelectorKind { return SelQuotedKey }

// Predicate selects the first mapping element of a sequence whose Field entry
// equals Value.
type Predicate struct {
	Field string
	Value any
}

func (Predicate) Kind() SelectorKind { return SelPredicate }

// BareKey selects a mapping entry by the literal selector text.
type BareKey string

func (BareKey) Kind() SelectorKind { return SelBareKey }

// Segment is one step of a path: an optional mapping key followed by
// selectors applied in order. An empty Name applies the selectors directly to
// the current value.
type Segment struct {
	Name      string
	Selectors []Selector
}

// Parse tokenizes a path expression into segments. It fails with a
// malformed_segment Error on unbalanced or missing brackets and performs no
// evaluation.
func Parse(expr string) ([]Segment, error) {
	raw := splitSegments(expr)
	segs := make([]Segment, 0, len(raw))
	for _, r := range raw {
		seg, err := parseSegment(r)
		if err != nil {
			return nil, err
		}
		segs = append(segs, seg)
	}
	return segs, nil
}

// splitSegments splits on '.' or '/' only at bracket nesting level zero, so
// separators inside selectors do not fragment the segment.
func splitSegments(expr string) []string {
	var out []string
	var b strings.Builder
	level := 0
	for _, ch := range expr {
		if (ch == '.' || ch == '/') && level == 0 {
			if b.Len() > 0 {
				out = append(out, b.String())
				b.Reset()
			}
			continue
		}
		b.WriteRune(ch)
		switch ch {
		case '[':
			level++
		case ']':
			level--
		}
	}
	if b.Len() > 0 {
		out = append(out, b.String())
	}
	return out
}

func parseSegment(seg string) (Segment, error) {
	name := seg
	rest := ""
	if i := strings.IndexByte(seg, '['); i >= 0 {
		name, rest = seg[:i], seg[i:]
	}
	out := Segment{Name: name}
	for rest != "" {
		if rest[0] != '[' {
			return Segment{}, newError(CodeMalformedSegment, seg)
		}
		j := strings.IndexByte(rest, ']')
		if j < 0 {
			return Segment{}, newError(CodeMalformedSegment, seg)
		}
		out.Selectors = append(out.Selectors, classify(rest[1:j]))
		rest = rest[j+1:]
	}
	return out, nil
}

// classify disambiguates selector text, first match wins: integer index,
// quoted key, predicate, bare key.
func classify(sel string) Selector {
	if isInteger(sel) {
		n, _ := strconv.Atoi(sel)
		return Index(n)
	}
	if quoted(sel) {
		return QuotedKey{Key: sel[1 : len(sel)-1]}
	}
	if eq := strings.IndexByte(sel, '='); eq >= 0 {
		return Predicate{Field: sel[:eq], Value: literal(sel[eq+1:])}
	}
	return BareKey(sel)
}

// literal parses a predicate value: quoted string, signed integer, else the
// bare text.
func literal(raw string) any {
	if quoted(raw) {
		return raw[1 : len(raw)-1]
	}
	if isInteger(raw) {
		n, _ := strconv.Atoi(raw)
		return n
	}
	return raw
}

func quoted(s string) bool {
	return len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0]
}

func isInteger(s string) bool {
	digits := s
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		digits = s[1:]
	}
	if digits == "" {
		return false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return false
		}
	}
	return true
}

// String renders the segment back in expression form, mainly for error
// messages and debugging.
func (s Segment) String() string {
	b := &strings.Builder{}
	b.WriteString(s.Name)
	for _, sel := range s.Selectors {
		switch v := sel.(type) {
		case Index:
			fmt.Fprintf(b, "[%d]", int(v))
		case QuotedKey:
			fmt.Fprintf(b, "[%q]", v.Key)
		case Predicate:
			fmt.Fprintf(b, "[%s=%v]", v.Field, v.Value)
		case BareKey:
			fmt.Fprintf(b, "[%s]", string(v))
		}
	}
	return b.String()
}
