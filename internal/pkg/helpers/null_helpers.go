package helpers

// StringOrNil returns nil for an empty string, otherwise a pointer to it.
// Empty optional fields must end up as SQL NULL / JSON null, never "".
func StringOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Int64OrNil returns nil for zero, otherwise a pointer to the value.
func Int64OrNil(i int64) *int64 {
	if i == 0 {
		return nil
	}
	return &i
}
