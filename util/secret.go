package util

// Secret holds a credential that must never end up in logs or error
// messages. Formatting a Secret always prints a placeholder, the raw value
// only leaves through Expose at the point of use.
type Secret struct {
	value string
}

func NewSecret(value string) Secret {
	return Secret{value: value}
}

func (s Secret) Expose() string {
	return s.value
}

func (s Secret) String() string {
	return "[redacted]"
}

func (s Secret) GoString() string {
	return "util.Secret{value: \"[redacted]\"}"
}
