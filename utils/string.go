package utils

import "fmt"

func Format[T any](ptr *T) string {
	if ptr == nil {
		return ""
	}
	return fmt.Sprintf("%v", *ptr)
}

// FormatOr is Format with a placeholder for nil or empty values.
func FormatOr[T any](ptr *T, placeholder string) string {
	if s := Format(ptr); s != "" {
		return s
	}
	return placeholder
}

func FormatBoolean[T any](yesno bool, yes T, no T) T {
	if yesno {
		return yes
	}
	return no
}
