package span

// MarshalText lets encoders write a span as its covered text.
func (s Span) MarshalText() ([]byte, error) {
	return []byte(s.Text()), nil
}
