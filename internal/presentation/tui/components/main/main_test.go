package mainview

import (
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	props := Props{
		Width:  100,
		Height: 50,
		Header: "HEADER",
		Body:   "BODY",
	}

	got := Render(props)

	if !strings.Contains(got, "HEADER") {
		t.Error("Missing header")
	}
	if !strings.Contains(got, "BODY") {
		t.Error("Missing body")
	}
	if strings.Index(got, "HEADER") > strings.Index(got, "BODY") {
		t.Error("Header should precede body")
	}
}

func TestRender_HeaderOnly(t *testing.T) {
	got := Render(Props{Width: 20, Height: 3, Header: "HEADER"})
	if !strings.Contains(got, "HEADER") {
		t.Error("Missing header")
	}
}
