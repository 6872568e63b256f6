package datapath

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Resolve parses expr and evaluates it against v.
func Resolve(v any, expr string) (any, error) {
	segs, err := Parse(expr)
	if err != nil {
		return nil, err
	}
	return Evaluate(v, segs)
}

// Evaluate walks the segments in order starting from v and returns the final
// value. Evaluation is all-or-nothing: the first failure aborts with a typed
// *Error and no partial result.
func Evaluate(v any, segs []Segment) (any, error) {
	current := v
	for _, seg := range segs {
		if seg.Name != "" {
			m, ok := current.(map[string]any)
			if !ok {
				return nil, newError(CodeKeyNotFound, seg.Name)
			}
			next, ok := m[seg.Name]
			if !ok {
				return nil, newError(CodeKeyNotFound, seg.Name)
			}
			current = next
		}
		for _, sel := range seg.Selectors {
			next, err := applySelector(current, sel)
			if err != nil {
				return nil, err
			}
			current = next
		}
	}
	return current, nil
}

func applySelector(current any, sel Selector) (any, error) {
	switch s := sel.(type) {
	case Index:
		list, ok := current.([]any)
		if !ok {
			return nil, newError(CodeTypeMismatch, fmt.Sprintf("index %d on non-sequence", int(s)))
		}
		i := int(s)
		if i < 0 {
			i += len(list)
		}
		if i < 0 || i >= len(list) {
			return nil, newError(CodeIndexOutOfRange, strconv.Itoa(int(s)))
		}
		return list[i], nil

	case QuotedKey:
		return lookupKey(current, s.Key)

	case BareKey:
		return lookupKey(current, string(s))

	case Predicate:
		list, ok := current.([]any)
		if !ok {
			return nil, newError(CodeTypeMismatch, fmt.Sprintf("predicate %s=%v on non-sequence", s.Field, s.Value))
		}
		for _, item := range list {
			m, ok := item.(map[string]any)
			if !ok {
				continue
			}
			if fv, ok := m[s.Field]; ok && scalarEqual(fv, s.Value) {
				return item, nil
			}
		}
		return nil, newError(CodePredicateNoMatch, fmt.Sprintf("%s=%v", s.Field, s.Value))
	}
	return nil, newError(CodeTypeMismatch, "unknown selector")
}

func lookupKey(current any, key string) (any, error) {
	m, ok := current.(map[string]any)
	if !ok {
		return nil, newError(CodeTypeMismatch, fmt.Sprintf("key %q on non-mapping", key))
	}
	v, ok := m[key]
	if !ok {
		return nil, newError(CodeKeyNotFound, key)
	}
	return v, nil
}

// scalarEqual compares scalars across numeric representations: YAML decoding
// yields int, JSON decoding yields float64 or json.Number, and parsed
// predicate values are int.
func scalarEqual(a, b any) bool {
	if af, ok := toFloat(a); ok {
		bf, ok2 := toFloat(b)
		return ok2 && af == bf
	}
	return a == b
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
