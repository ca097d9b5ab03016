package dto

import (
	"encoding/json"
	"reflect"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Optional is a nullable field of a partial update. Set records that the key was in the
// body, so an explicit null clears the column while an absent key leaves it alone.
type Optional[T any] struct {
	Set   bool
	Value *T
}

func OptionalOf[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: &v}
}

func OptionalNull[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

// MarshalJSON writes the value or null; fields are tagged omitzero so an unset one is left out
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.Value)
}

func (o Optional[T]) applyTo(dst **T) {
	if o.Set {
		*dst = o.Value
	}
}

// underlying lets binding tags such as email or min=0 validate the wrapped value
func underlying[T any](field reflect.Value) any {
	o, ok := field.Interface().(Optional[T])
	if !ok || o.Value == nil {
		return nil
	}
	return *o.Value
}

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterCustomTypeFunc(underlying[string], Optional[string]{})
		v.RegisterCustomTypeFunc(underlying[float64], Optional[float64]{})
		v.RegisterCustomTypeFunc(underlying[uint], Optional[uint]{})
	}
}
