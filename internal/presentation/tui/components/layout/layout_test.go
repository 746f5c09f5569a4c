package layout

import (
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	props := Props{
		Sidebar: "SIDEBAR",
		Main:    "MAIN",
		Footer:  "FOOTER",
	}

	got := Render(props)

	if !strings.Contains(got, "SIDEBAR") {
		t.Error("Missing sidebar content")
	}
	if !strings.Contains(got, "MAIN") {
		t.Error("Missing main content")
	}
	if !strings.Contains(got, "FOOTER") {
		t.Error("Missing footer content")
	}
	if strings.Index(got, "SIDEBAR") > strings.Index(got, "MAIN") {
		t.Error("Sidebar should come before main")
	}
}

func TestRender_NoFooter(t *testing.T) {
	got := Render(Props{Sidebar: "S", Main: "M"})
	if strings.Contains(got, "\n") {
		t.Errorf("Render() = %q, want a single line", got)
	}
}
