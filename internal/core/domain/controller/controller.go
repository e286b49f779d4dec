package controller

import (
	"context"
	"math"
	"reflect"
)

// Body maps request field names to their decoded, not yet validated values.
type Body map[string]any

// Has reports whether the field holds a truthy value.
func (b Body) Has(field string) bool {
	return isTruthy(b[field])
}

// String returns the field value when it is a string.
func (b Body) String(field string) (string, bool) {
	value, ok := b[field].(string)
	return value, ok
}

// Request is the input of a controller. Controllers never mutate it.
type Request struct {
	Body Body
}

// Response carries the status code and the JSON serializable body.
type Response struct {
	StatusCode int
	Body       any
}

// SuccessBody is the body of accepted requests.
type SuccessBody struct {
	Message string `json:"message"`
}

// Controller handles a single request. The context only carries
// request scoped logging metadata.
type Controller interface {
	Handle(ctx context.Context, request Request) Response
}

// Absent values, nil, false, "", zero numbers, NaN and nil pointers are falsy.
func isTruthy(value any) bool {
	if value == nil {
		return false
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Bool:
		return v.Bool()
	case reflect.String:
		return v.Len() > 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			return false
		}
		return isTruthy(v.Elem().Interface())
	}
	return true
}
