package console

import "fmt"

const labelTemplate = "%s=%v"

// Label renders a key=value pair for diagnostics.
func Label(label string, value interface{}) string {
	return LabelWith(labelTemplate, label, value)
}

// LabelWith renders the pair through a custom template.
func LabelWith(template, label string, value interface{}) string {
	return fmt.Sprintf(template, label, value)
}
