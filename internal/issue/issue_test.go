// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

func TestValuesOrderedAndUnique(t *testing.T) {
	t.Parallel()

	values := Values()
	if len(values) != len(issues) {
		t.Fatalf("Values() = %d entries, want %d", len(values), len(issues))
	}
	for i, v := range values {
		if v.Id() != Id(i+1) {
			t.Errorf("Values()[%d].Id() = %d, want %d", i, v.Id(), i+1)
		}
	}
}

func TestGet(t *testing.T) {
	t.Parallel()

	if got := Get(ShellParseFailedId); got == nil || got.Id() != ShellParseFailedId {
		t.Errorf("Get(ShellParseFailedId) = %v", got)
	}
	if got := Get(Id(0)); got != nil {
		t.Errorf("Get(0) = %v, want nil", got)
	}
	if got := Get(Id(999)); got != nil {
		t.Errorf("Get(999) = %v, want nil", got)
	}
}

func TestAllIssuesHaveContent(t *testing.T) {
	t.Parallel()

	for _, i := range Values() {
		if strings.TrimSpace(string(i.MarkdownMsg())) == "" {
			t.Errorf("issue %d has empty markdown", i.Id())
		}
		if !strings.Contains(string(i.MarkdownMsg()), "# ") {
			t.Errorf("issue %d has no heading", i.Id())
		}
	}
}

func TestDocLinksAreCloned(t *testing.T) {
	t.Parallel()

	i := Get(ConfigLoadFailedId)
	links := i.DocLinks()
	if len(links) == 0 {
		t.Fatal("config issue should carry doc links")
	}
	links[0] = "mutated"
	if i.DocLinks()[0] == "mutated" {
		t.Error("DocLinks() should return a copy")
	}
}

func TestAllIssuesAreRenderable(t *testing.T) {
	t.Parallel()

	for _, i := range Values() {
		out, err := i.Render("notty")
		if err != nil {
			t.Errorf("issue %d Render() error = %v", i.Id(), err)
			continue
		}
		if strings.TrimSpace(out) == "" {
			t.Errorf("issue %d rendered empty output", i.Id())
		}
	}
}

func TestRenderIncludesLinks(t *testing.T) {
	t.Parallel()

	out, err := Get(ConfigLoadFailedId).Render("notty")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "cuelang.org") {
		t.Errorf("rendered output should include the doc link:\n%s", out)
	}
	if !strings.Contains(out, "ipsbench config init") {
		t.Errorf("rendered output should include the command hint:\n%s", out)
	}
}
