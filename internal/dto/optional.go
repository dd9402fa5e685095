package dto

import "encoding/json"

// Optional различает отсутствующий ключ, null и значение.
// Set=true означает, что ключ был в запросе (Value может быть nil для null).
type Optional[T any] struct {
	Set   bool
	Value *T
}

// Some - удобный конструктор для тестов и клиентов
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: &v}
}

// Null - ключ присутствует со значением null
func Null[T any]() Optional[T] {
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

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// IsZero позволяет опускать отсутствующие ключи тегом omitzero
func (o Optional[T]) IsZero() bool {
	return !o.Set
}
