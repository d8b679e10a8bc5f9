// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

// Id identifies a catalog entry.
type Id int

const (
	UnknownTaskId Id = iota + 1
	NoTasksId
	ConfigLoadFailedId
	ShellParseFailedId
	ShellScriptFailedId
	InvalidFlagId
)

type MarkdownMsg string

type HttpLink string

// Issue is a piece of markdown guidance for a well-known failure.
type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

// Render renders the guidance with the named glamour style ("dark",
// "light", "notty", ...).
func (i *Issue) Render(stylePath string) (string, error) {
	var md strings.Builder
	md.WriteString(string(i.mdMsg))
	if len(i.docLinks) > 0 {
		md.WriteString("\n\n## See also\n")
		for _, link := range i.docLinks {
			md.WriteString("- <" + string(link) + ">\n")
		}
	}
	return render(md.String(), stylePath)
}

var (
	render = glamour.Render

	unknownTaskIssue = &Issue{
		id: UnknownTaskId,
		mdMsg: `
# Unknown task

Task names are matched exactly, including spaces and case.

## Things you can try:
- List the built-in tasks:
~~~
$ ipsbench list
~~~
- Quote names that contain spaces:
~~~
$ ipsbench run "std sort" "selection sort"
~~~`,
	}

	noTasksIssue = &Issue{
		id: NoTasksId,
		mdMsg: `
# Nothing to benchmark

The suite is empty, so there is no table to print.

## Things you can try:
- Run the built-in suite without arguments:
~~~
$ ipsbench run
~~~
- Pass at least one NAME=SCRIPT pair to the shell suite:
~~~
$ ipsbench sh 'echo=echo hi' 'true=true'
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration

The configuration file is CUE and is checked against a schema before use.

## Things you can try:
- Print the effective configuration:
~~~
$ ipsbench config show
~~~
- Write a fresh default file:
~~~
$ ipsbench config init
~~~

## Example configuration:
~~~cue
warmup: "2s"
measure: "5s"
interactive: "auto"
workload: {
	size: 10000
}
~~~`,
		docLinks: []HttpLink{"https://cuelang.org/docs/tour/"},
	}

	shellParseFailedIssue = &Issue{
		id: ShellParseFailedId,
		mdMsg: `
# Shell snippet does not parse

Snippets are parsed as POSIX/bash shell before any timing starts.

## Things you can try:
- Pass each task as a single quoted argument:
~~~
$ ipsbench sh 'loop=for i in 1 2 3; do :; done'
~~~
- Check quotes and brackets are balanced.`,
		docLinks: []HttpLink{"https://pkg.go.dev/mvdan.cc/sh/v3/syntax"},
	}

	shellScriptFailedIssue = &Issue{
		id: ShellScriptFailedId,
		mdMsg: `
# Shell snippet failed

A snippet exited with a non-zero status while it was being measured. The
numbers for that task describe a failing command.

## Things you can try:
- Run the snippet once in your shell to check it succeeds.
- Append ` + "`|| true`" + ` if a failing status is expected.`,
	}

	invalidFlagIssue = &Issue{
		id: InvalidFlagId,
		mdMsg: `
# Invalid option

## Things you can try:
- Durations use Go syntax: ` + "`500ms`, `2s`, `1m30s`" + `.
- ` + "`--interactive`" + ` accepts ` + "`auto`, `always` or `never`" + `.
- ` + "`--size`" + ` must be a positive integer.`,
	}

	issues = []*Issue{
		unknownTaskIssue,
		noTasksIssue,
		configLoadFailedIssue,
		shellParseFailedIssue,
		shellScriptFailedIssue,
		invalidFlagIssue,
	}
)

// Values returns every catalog entry ordered by Id.
func Values() []*Issue {
	out := slices.Clone(issues)
	slices.SortFunc(out, func(a, b *Issue) int { return int(a.id) - int(b.id) })
	return out
}

// Get returns the entry for id, or nil.
func Get(id Id) *Issue {
	idx := slices.IndexFunc(issues, func(i *Issue) bool { return i.id == id })
	if idx < 0 {
		return nil
	}
	return issues[idx]
}
