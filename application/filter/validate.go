package filter

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/muhammadheryan/wa-crm/constant"
	"github.com/muhammadheryan/wa-crm/model"
)

// ClauseError reports why a filter clause was rejected.
type ClauseError struct {
	Kind     constant.ErrorType
	Index    int
	Field    string
	Operator constant.Operator
	Reason   string
}

func (e *ClauseError) Error() string {
	return fmt.Sprintf("filters[%d] %s %s: %s", e.Index, e.Field, e.Operator, e.Reason)
}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Validate checks every clause against entity and returns normalized copies.
// The first bad clause fails the whole list.
func Validate(entity constant.SearchEntity, clauses []model.FilterClause) ([]model.FilterClause, error) {
	out := make([]model.FilterClause, 0, len(clauses))
	for i, c := range clauses {
		n, err := ValidateClause(entity, c)
		if err != nil {
			if ce, ok := err.(*ClauseError); ok {
				ce.Index = i
			}
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// ValidateClause checks a single clause (or OR group) and returns a copy whose
// value is normalized: numbers to float64, dates to time.Time, enum members to
// their canonical spelling and scalar "in" values to one element slices.
func ValidateClause(entity constant.SearchEntity, c model.FilterClause) (model.FilterClause, error) {
	e, ok := Lookup(entity)
	if !ok {
		return model.FilterClause{}, &ClauseError{Kind: constant.ErrUnsupportedEntity, Field: c.Field, Operator: c.Operator, Reason: "unknown entity " + string(entity)}
	}

	if c.IsGroup() {
		if c.Field != "" || c.Operator != "" {
			return model.FilterClause{}, malformed(c, "or group cannot carry its own field")
		}
		members := make([]model.FilterClause, 0, len(c.Or))
		for _, m := range c.Or {
			if m.IsGroup() {
				return model.FilterClause{}, malformed(c, "or groups cannot be nested")
			}
			n, err := validateLeaf(e, m)
			if err != nil {
				return model.FilterClause{}, err
			}
			members = append(members, n)
		}
		return model.FilterClause{Or: members}, nil
	}

	return validateLeaf(e, c)
}

func validateLeaf(e *Entity, c model.FilterClause) (model.FilterClause, error) {
	f, ok := e.Field(c.Field)
	if !ok {
		return model.FilterClause{}, &ClauseError{Kind: constant.ErrInvalidField, Field: c.Field, Operator: c.Operator, Reason: "unknown field for " + string(e.Name)}
	}
	if !Supports(f.Type, c.Operator) {
		return model.FilterClause{}, &ClauseError{Kind: constant.ErrIncompatibleOperator, Field: c.Field, Operator: c.Operator, Reason: "not supported for " + string(f.Type)}
	}

	out := model.FilterClause{Field: c.Field, Operator: c.Operator}

	switch c.Operator {
	case constant.OpBetween:
		items, isSlice := toSlice(c.Value)
		if !isSlice || len(items) != 2 {
			return model.FilterClause{}, malformed(c, "between needs a [min, max] pair")
		}
		lo, err := scalar(f, items[0])
		if err != nil {
			return model.FilterClause{}, malformed(c, err.Error())
		}
		hi, err := scalar(f, items[1])
		if err != nil {
			return model.FilterClause{}, malformed(c, err.Error())
		}
		if greater(lo, hi) {
			return model.FilterClause{}, malformed(c, "between min is greater than max")
		}
		out.Value = []any{lo, hi}

	case constant.OpIn:
		items, isSlice := toSlice(c.Value)
		if !isSlice {
			items = []any{c.Value}
		}
		if len(items) == 0 {
			return model.FilterClause{}, malformed(c, "in needs at least one value")
		}
		values := make([]any, 0, len(items))
		for _, it := range items {
			v, err := scalar(f, it)
			if err != nil {
				return model.FilterClause{}, malformed(c, err.Error())
			}
			values = append(values, v)
		}
		out.Value = values

	default:
		if _, isSlice := toSlice(c.Value); isSlice {
			return model.FilterClause{}, malformed(c, "expected a single value")
		}
		v, err := scalar(f, c.Value)
		if err != nil {
			return model.FilterClause{}, malformed(c, err.Error())
		}
		out.Value = v
	}

	return out, nil
}

func malformed(c model.FilterClause, reason string) *ClauseError {
	return &ClauseError{Kind: constant.ErrMalformedValue, Field: c.Field, Operator: c.Operator, Reason: reason}
}

// scalar converts one raw value to the Go type used for f.
func scalar(f Field, v any) (any, error) {
	if v == nil {
		return nil, fmt.Errorf("value is required")
	}

	switch f.Type {
	case constant.FieldString:
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("expected string, got %T", v)
		}
		return s, nil

	case constant.FieldNumber:
		return number(v)

	case constant.FieldBoolean:
		b, ok := v.(bool)
		if !ok {
			return nil, fmt.Errorf("expected boolean, got %T", v)
		}
		return b, nil

	case constant.FieldDate, constant.FieldDatetime:
		switch t := v.(type) {
		case time.Time:
			return t, nil
		case string:
			for _, layout := range dateLayouts {
				if parsed, err := time.Parse(layout, t); err == nil {
					return parsed, nil
				}
			}
			return nil, fmt.Errorf("unparseable date %q", t)
		}
		return nil, fmt.Errorf("expected date string, got %T", v)

	case constant.FieldEnum:
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("expected string, got %T", v)
		}
		for _, allowed := range f.EnumValues {
			if strings.EqualFold(allowed, s) {
				return allowed, nil
			}
		}
		return nil, fmt.Errorf("%q is not one of %s", s, strings.Join(f.EnumValues, ", "))
	}

	return nil, fmt.Errorf("unsupported field type %s", f.Type)
}

func number(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case uint32:
		return float64(n), nil
	case json.Number:
		return n.Float64()
	}
	return 0, fmt.Errorf("expected number, got %T", v)
}

func greater(a, b any) bool {
	switch x := a.(type) {
	case float64:
		return x > b.(float64)
	case time.Time:
		return x.After(b.(time.Time))
	case string:
		return x > b.(string)
	}
	return false
}

// toSlice unpacks any slice or array value into []any.
func toSlice(v any) ([]any, bool) {
	if v == nil {
		return nil, false
	}
	if items, ok := v.([]any); ok {
		return items, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}
