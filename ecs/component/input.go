package component

import "strings"

// Key is a logical key understood by the simulation. Physical key mapping
// lives with the windowing layer.
type Key uint8

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyGrow
	KeyShrink
	keyCount
)

var keyNames = [keyCount]string{"up", "down", "left", "right", "grow", "shrink"}

func (k Key) String() string {
	if k >= keyCount {
		return "unknown"
	}
	return keyNames[k]
}

// ParseKey maps a logical key name back to its Key.
func ParseKey(name string) (Key, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range keyNames {
		if n == name {
			return Key(i), true
		}
	}
	return 0, false
}

// AllKeys lists every logical key in declaration order.
func AllKeys() []Key {
	out := make([]Key, 0, keyCount)
	for k := Key(0); k < keyCount; k++ {
		out = append(out, k)
	}
	return out
}

// HeldKeys is an immutable snapshot of the logical keys held this frame.
type HeldKeys uint8

// Keys builds a snapshot from the given keys.
func Keys(keys ...Key) HeldKeys {
	var h HeldKeys
	for _, k := range keys {
		h = h.With(k)
	}
	return h
}

func (h HeldKeys) Has(k Key) bool {
	return k < keyCount && h&(1<<k) != 0
}

func (h HeldKeys) With(k Key) HeldKeys {
	if k >= keyCount {
		return h
	}
	return h | 1<<k
}

func (h HeldKeys) Empty() bool {
	return h == 0
}

func (h HeldKeys) String() string {
	var names []string
	for _, k := range AllKeys() {
		if h.Has(k) {
			names = append(names, k.String())
		}
	}
	return "[" + strings.Join(names, " ") + "]"
}

// Input stores the key snapshot consumed by the controller this frame.
type Input struct {
	Held HeldKeys
}

var InputComponent = NewComponent[Input]()
