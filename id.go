package tempo

import "github.com/google/uuid"

// ID names one animatable widget instance. It is the join key between the
// chain built in update logic and the values read back in view logic. Two
// IDs are equal iff their underlying strings are equal.
type ID string

// Unique returns a process-unique ID. Use this when the widget has no
// natural name of its own.
func Unique() ID {
	return ID(uuid.NewString())
}
