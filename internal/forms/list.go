package forms

import (
	"fmt"

	"github.com/google/uuid"

	dErrors "legalflow/pkg/domain-errors"
)

// Row is one entry of a repeatable list. Key identifies the row for its
// whole life, independent of its position.
type Row[T any] struct {
	Key   string `json:"key"`
	Value T      `json:"value"`
}

// List is a repeatable sub-form. Rows are addressed by position for
// removal and reordering and by key for edits, so moving a row never
// redirects an edit to a neighbour.
type List[T any] struct {
	rows []Row[T]
}

// NewList creates a list holding values in order.
func NewList[T any](values ...T) *List[T] {
	l := &List[T]{}
	for _, v := range values {
		l.Append(v)
	}
	return l
}

// Append adds v at the end and returns its key.
func (l *List[T]) Append(v T) string {
	key := uuid.NewString()
	l.rows = append(l.rows, Row[T]{Key: key, Value: v})
	return key
}

// RemoveAt deletes the row at index i.
func (l *List[T]) RemoveAt(i int) error {
	if err := l.checkIndex(i); err != nil {
		return err
	}
	l.rows = append(l.rows[:i], l.rows[i+1:]...)
	return nil
}

// Move relocates the row at from so it ends up at index to.
func (l *List[T]) Move(from, to int) error {
	if err := l.checkIndex(from); err != nil {
		return err
	}
	if err := l.checkIndex(to); err != nil {
		return err
	}
	row := l.rows[from]
	l.rows = append(l.rows[:from], l.rows[from+1:]...)
	l.rows = append(l.rows[:to], append([]Row[T]{row}, l.rows[to:]...)...)
	return nil
}

// Update applies edit to the row with key. It reports false for unknown keys.
func (l *List[T]) Update(key string, edit func(v *T)) bool {
	i := l.IndexOf(key)
	if i < 0 {
		return false
	}
	edit(&l.rows[i].Value)
	return true
}

// IndexOf returns the position of key, or -1.
func (l *List[T]) IndexOf(key string) int {
	for i, r := range l.rows {
		if r.Key == key {
			return i
		}
	}
	return -1
}

func (l *List[T]) Len() int {
	return len(l.rows)
}

// Rows returns a copy of the rows in order.
func (l *List[T]) Rows() []Row[T] {
	out := make([]Row[T], len(l.rows))
	copy(out, l.rows)
	return out
}

// Values returns the row values in order.
func (l *List[T]) Values() []T {
	out := make([]T, len(l.rows))
	for i, r := range l.rows {
		out[i] = r.Value
	}
	return out
}

func (l *List[T]) checkIndex(i int) error {
	if i < 0 || i >= len(l.rows) {
		return dErrors.New(dErrors.CodeBadRequest, fmt.Sprintf("row %d out of range (len %d)", i, len(l.rows)))
	}
	return nil
}
