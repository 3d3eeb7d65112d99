package batchfile

// DefaultSection is the name of the section holding shared values.
const DefaultSection = "DEFAULT"

// CommandKey is the option naming the command template.
const CommandKey = "command"

// Option is a single name/value pair of a section.
type Option struct {
	Name  string
	Value string
}

// Section is a named, ordered list of options.
type Section struct {
	Name    string
	Options []Option
}

// Lookup returns the value of the option called name.
func (s Section) Lookup(name string) (string, bool) {
	for _, o := range s.Options {
		if o.Name == name {
			return o.Value, true
		}
	}
	return "", false
}

// Without returns a copy of s without the option called name.
func (s Section) Without(name string) Section {
	out := Section{Name: s.Name, Options: make([]Option, 0, len(s.Options))}
	for _, o := range s.Options {
		if o.Name != name {
			out.Options = append(out.Options, o)
		}
	}
	return out
}

// Document is a parsed batch file.
type Document struct {
	Path     string
	Defaults []Option  // the [DEFAULT] section, including "command"
	Sections []Section // declaration order, DEFAULT excluded
}

// DefaultCommand returns the command template of the [DEFAULT] section.
func (d *Document) DefaultCommand() (string, bool) {
	return Section{Options: d.Defaults}.Lookup(CommandKey)
}

// SectionNames returns the section names in declaration order.
func (d *Document) SectionNames() []string {
	names := make([]string, len(d.Sections))
	for i, s := range d.Sections {
		names[i] = s.Name
	}
	return names
}

// Section returns the section called name.
func (d *Document) Section(name string) (Section, bool) {
	for _, s := range d.Sections {
		if s.Name == name {
			return s, true
		}
	}
	return Section{}, false
}

// Options returns the effective options of s: the defaults other than
// "command" in their declared order, with values from s replacing inherited
// ones in place, followed by the options only s declares. A "command" option
// of s itself is kept; callers decide what to do with it.
func (d *Document) Options(s Section) Section {
	merged := Section{Name: s.Name}
	for _, o := range d.Defaults {
		if o.Name != CommandKey {
			merged.Options = setOption(merged.Options, o.Name, o.Value)
		}
	}
	for _, o := range s.Options {
		merged.Options = setOption(merged.Options, o.Name, o.Value)
	}
	return merged
}

// addSection returns the index of the section called name, appending an
// empty one when it is not known yet.
func (d *Document) addSection(name string) int {
	for i, s := range d.Sections {
		if s.Name == name {
			return i
		}
	}
	d.Sections = append(d.Sections, Section{Name: name})
	return len(d.Sections) - 1
}

// set stores name=value in the section called section, or in the defaults.
func (d *Document) set(section, name, value string) {
	if section == DefaultSection {
		d.Defaults = setOption(d.Defaults, name, value)
		return
	}
	i := d.addSection(section)
	d.Sections[i].Options = setOption(d.Sections[i].Options, name, value)
}

// setOption replaces the value of name in place or appends a new option.
func setOption(opts []Option, name, value string) []Option {
	for i := range opts {
		if opts[i].Name == name {
			opts[i].Value = value
			return opts
		}
	}
	return append(opts, Option{Name: name, Value: value})
}
