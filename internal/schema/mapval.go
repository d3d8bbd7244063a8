package schema

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// mapReader coerces values out of a plain key-value mapping, collecting a
// FieldError per key that cannot be converted. Mappings usually arrive from
// a JSON decoder, so numbers show up as float64 and have to be cast back.
type mapReader struct {
	m    map[string]any
	errs Errors
}

func newMapReader(m map[string]any) *mapReader {
	return &mapReader{m: m}
}

func (r *mapReader) fail(key, msg string) {
	r.errs = append(r.errs, FieldError{Field: key, Msg: msg})
}

// err reports the collected coercion failures, nil when there were none.
func (r *mapReader) err() error {
	if len(r.errs) > 0 {
		return r.errs
	}
	return nil
}

func (r *mapReader) has(key string) bool {
	v, ok := r.m[key]
	return ok && v != nil
}

func (r *mapReader) int64(key string) int64 {
	if !r.has(key) {
		return 0
	}
	v, err := cast.ToInt64E(r.m[key])
	if err != nil {
		r.fail(key, "must be an integer")
	}
	return v
}

func (r *mapReader) intOr(key string, def int) int {
	if !r.has(key) {
		return def
	}
	v, err := cast.ToIntE(r.m[key])
	if err != nil {
		r.fail(key, "must be an integer")
	}
	return v
}

func (r *mapReader) str(key string) string {
	if !r.has(key) {
		return ""
	}
	v, err := cast.ToStringE(r.m[key])
	if err != nil {
		r.fail(key, "must be a string")
	}
	return v
}

func (r *mapReader) strOr(key, def string) string {
	if !r.has(key) {
		return def
	}
	return r.str(key)
}

func (r *mapReader) strPtr(key string) *string {
	if !r.has(key) {
		return nil
	}
	v := r.str(key)
	return &v
}

func (r *mapReader) boolOr(key string, def bool) bool {
	if !r.has(key) {
		return def
	}
	v, err := cast.ToBoolE(r.m[key])
	if err != nil {
		r.fail(key, "must be a boolean")
	}
	return v
}

// money accepts a decimal, its string form, or a JSON number. Floats are
// formatted with the shortest exact representation before parsing, so a
// JSON 29.99 comes back as the decimal 29.99.
func (r *mapReader) money(key string) decimal.Decimal {
	if !r.has(key) {
		return decimal.Zero
	}
	if d, ok := r.m[key].(decimal.Decimal); ok {
		return d
	}
	s, err := cast.ToStringE(r.m[key])
	if err != nil {
		r.fail(key, "must be a number")
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		r.fail(key, "must be a number")
		return decimal.Zero
	}
	return d
}

func (r *mapReader) timeOr(key string, def time.Time) time.Time {
	if !r.has(key) {
		return def
	}
	v, err := cast.ToTimeE(r.m[key])
	if err != nil {
		r.fail(key, "must be a timestamp")
		return def
	}
	return v
}

// castItemMap coerces one element of a list into a string-keyed map.
func castItemMap(v any) (map[string]any, error) {
	return cast.ToStringMapE(v)
}

func (r *mapReader) slice(key string) []any {
	if !r.has(key) {
		return nil
	}
	v, err := cast.ToSliceE(r.m[key])
	if err != nil {
		r.fail(key, "must be a list")
	}
	return v
}
