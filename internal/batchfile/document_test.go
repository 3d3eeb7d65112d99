package batchfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocument_Options(t *testing.T) {
	t.Parallel()

	doc := &Document{
		Defaults: []Option{{"command", "echo"}, {"band", "K"}, {"max", "10"}},
	}

	tests := []struct {
		name    string
		section Section
		want    []Option
	}{
		{
			name:    "inherits defaults except command",
			section: Section{Name: "a"},
			want:    []Option{{"band", "K"}, {"max", "10"}},
		},
		{
			name:    "override keeps inherited position",
			section: Section{Name: "b", Options: []Option{{"obj", "vega"}, {"max", "50"}}},
			want:    []Option{{"band", "K"}, {"max", "50"}, {"obj", "vega"}},
		},
		{
			name:    "local command is kept",
			section: Section{Name: "c", Options: []Option{{"command", "printf"}}},
			want:    []Option{{"band", "K"}, {"max", "10"}, {"command", "printf"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := doc.Options(tt.section)
			assert.Equal(t, tt.section.Name, got.Name)
			assert.Equal(t, tt.want, got.Options)
		})
	}
}

func TestDocument_OptionsDoesNotMutateDefaults(t *testing.T) {
	t.Parallel()

	doc := &Document{Defaults: []Option{{"command", "echo"}, {"band", "K"}}}
	doc.Options(Section{Name: "a", Options: []Option{{"band", "V"}}})

	assert.Equal(t, []Option{{"command", "echo"}, {"band", "K"}}, doc.Defaults)
}

func TestDocument_DefaultCommand(t *testing.T) {
	t.Parallel()

	_, ok := (&Document{}).DefaultCommand()
	assert.False(t, ok)

	cmd, ok := (&Document{Defaults: []Option{{"command", "echo"}}}).DefaultCommand()
	assert.True(t, ok)
	assert.Equal(t, "echo", cmd)
}

func TestSection_Without(t *testing.T) {
	t.Parallel()

	s := Section{Name: "a", Options: []Option{{"command", "printf"}, {"msg", "hi"}}}
	got := s.Without("command")

	assert.Equal(t, Section{Name: "a", Options: []Option{{"msg", "hi"}}}, got)
	// Input untouched
	assert.Len(t, s.Options, 2)
}

func TestDocument_SetMergesDuplicates(t *testing.T) {
	t.Parallel()

	doc := &Document{}
	doc.set("foo", "msg", "one")
	doc.set("bar", "x", "1")
	doc.set("foo", "msg", "two")
	doc.set(DefaultSection, "command", "echo")

	assert.Equal(t, []string{"foo", "bar"}, doc.SectionNames())
	foo, _ := doc.Section("foo")
	assert.Equal(t, []Option{{"msg", "two"}}, foo.Options)
	assert.Equal(t, []Option{{"command", "echo"}}, doc.Defaults)
}
