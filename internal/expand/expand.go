package expand

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/raphi011/cmdbatch/internal/batchfile"
	"github.com/raphi011/cmdbatch/internal/log"
	"github.com/raphi011/cmdbatch/internal/resultdir"
	"github.com/raphi011/cmdbatch/internal/storage"
)

// maxSuggestions caps the "did you mean" candidates per undefined section.
const maxSuggestions = 3

// Job is one expanded section, ready to run.
type Job struct {
	Section string
	Command string
	CmdFile string
	OutFile string
	ErrFile string
}

// Select returns the sections to process in declaration order. With no
// requested names every section is selected. Requested names that are not in
// doc are returned as undefined.
func Select(doc *batchfile.Document, requested []string) ([]batchfile.Section, []UndefinedSection) {
	names := doc.SectionNames()

	var undefined []UndefinedSection
	for _, name := range requested {
		if !slices.Contains(names, name) {
			undefined = append(undefined, UndefinedSection{Name: name, Suggestions: suggest(name, names)})
		}
	}

	if len(requested) == 0 {
		return slices.Clone(doc.Sections), undefined
	}

	var selected []batchfile.Section
	for _, s := range doc.Sections {
		if slices.Contains(requested, s.Name) {
			selected = append(selected, s)
		}
	}
	return selected, undefined
}

// suggest returns up to maxSuggestions section names fuzzy-matching name.
func suggest(name string, names []string) []string {
	matches := fuzzy.Find(name, names)
	var out []string
	for i := 0; i < len(matches) && i < maxSuggestions; i++ {
		out = append(out, matches[i].Str)
	}
	return out
}

// Template resolves the command template of section: its own "command"
// option, else the document default. The returned section has "command"
// removed and defaults merged in. inherited reports whether the default
// was used.
func Template(doc *batchfile.Document, section batchfile.Section) (template string, opts batchfile.Section, inherited bool, err error) {
	merged := doc.Options(section)
	if local, ok := merged.Lookup(batchfile.CommandKey); ok {
		return local, merged.Without(batchfile.CommandKey), false, nil
	}
	if def, ok := doc.DefaultCommand(); ok {
		return def, merged, true, nil
	}
	return "", merged, false, &MissingCommandError{Section: section.Name}
}

// Build expands one section whose template is already resolved and whose
// options no longer contain "command".
func Build(section batchfile.Section, template, dir string) (string, error) {
	var b strings.Builder
	b.WriteString(template)
	b.WriteString(` "`)
	for _, o := range section.Options {
		if o.Name == "" || o.Value == "" {
			return "", &MissingOptionValueError{Section: section.Name, Option: o.Name}
		}
		fmt.Fprintf(&b, "-%s %s ", o.Name, o.Value)
	}
	b.WriteString(`"`)
	fmt.Fprintf(&b, ` > "%s" 2> "%s"`,
		resultdir.ArtifactPath(dir, section.Name, resultdir.ExtOut),
		resultdir.ArtifactPath(dir, section.Name, resultdir.ExtErr))
	return b.String(), nil
}

// Expand selects sections, builds their commands and writes each command to
// <dir>/<section>.cmd. Undefined sections are logged as warnings. The first
// error stops expansion; jobs expanded so far are discarded.
func Expand(ctx context.Context, doc *batchfile.Document, requested []string, dir string) ([]Job, error) {
	l := log.FromContext(ctx)

	sections, undefined := Select(doc, requested)
	for _, u := range undefined {
		l.Warnf("%s", u)
	}

	jobs := make([]Job, 0, len(sections))
	for _, section := range sections {
		template, opts, inherited, err := Template(doc, section)
		if err != nil {
			return nil, err
		}

		command, err := Build(opts, template, dir)
		if err != nil {
			return nil, err
		}
		l.Debug("expanded section", "section", section.Name, "options", len(opts.Options), "inherited", inherited)

		job := Job{
			Section: section.Name,
			Command: command,
			CmdFile: resultdir.ArtifactPath(dir, section.Name, resultdir.ExtCmd),
			OutFile: resultdir.ArtifactPath(dir, section.Name, resultdir.ExtOut),
			ErrFile: resultdir.ArtifactPath(dir, section.Name, resultdir.ExtErr),
		}
		if err := storage.WriteFile(job.CmdFile, []byte(job.Command)); err != nil {
			return nil, fmt.Errorf("write %s: %w", job.CmdFile, err)
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}
