// Package optional различает три состояния поля во входящем JSON:
// поле отсутствует, поле передано как null, поле передано со значением.
package optional

import (
	"bytes"
	"encoding/json"
)

var nullLiteral = []byte("null")

// Field хранит значение поля частичного обновления.
type Field[T any] struct {
	Value T
	Set   bool
	Null  bool
}

// Of создаёт заполненное поле.
func Of[T any](v T) Field[T] {
	return Field[T]{Value: v, Set: true}
}

// Null создаёт поле, явно переданное как null.
func Null[T any]() Field[T] {
	return Field[T]{Set: true, Null: true}
}

// Get возвращает значение и признак его наличия.
func (f Field[T]) Get() (T, bool) {
	return f.Value, f.Set
}

// UnmarshalJSON вызывается только для присутствующих ключей, в том числе со значением null.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Set = true
	if bytes.Equal(bytes.TrimSpace(data), nullLiteral) {
		f.Null = true
		var zero T
		f.Value = zero
		return nil
	}
	f.Null = false
	return json.Unmarshal(data, &f.Value)
}

// MarshalJSON пишет null для отсутствующего поля.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.Set || f.Null {
		return nullLiteral, nil
	}
	return json.Marshal(f.Value)
}
