package expand

import "fmt"

// MissingOptionValueError reports an option without name or value.
type MissingOptionValueError struct {
	Section string
	Option  string
}

func (e *MissingOptionValueError) Error() string {
	return fmt.Sprintf("missing value for '%s' item into '%s' section", e.Option, e.Section)
}

// MissingCommandError reports a section with no command template, neither
// its own nor one from [DEFAULT].
type MissingCommandError struct {
	Section string
}

func (e *MissingCommandError) Error() string {
	return fmt.Sprintf("no command for '%s' section: set command= in [DEFAULT] or in the section", e.Section)
}

// UndefinedSection is a requested section name absent from the batch file.
type UndefinedSection struct {
	Name        string
	Suggestions []string // close section names, best first
}

func (u UndefinedSection) String() string {
	msg := fmt.Sprintf("Undefined section '%s'", u.Name)
	if len(u.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean '%s'?)", u.Suggestions[0])
	}
	return msg
}
