package listing

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func records(n int) []Record {
	out := make([]Record, n)
	for i := range out {
		out[i] = Record{
			Title:   fmt.Sprintf("Paper %d", i+1),
			Authors: "A. Author",
			Link:    fmt.Sprintf("https://example.com/%d", i+1),
			Year:    2020 + i,
		}
	}
	return out
}

func TestVisibleLength(t *testing.T) {
	tests := []struct {
		name      string
		n         int
		threshold int
		collapsed int
	}{
		{name: "empty", n: 0, threshold: 5, collapsed: 0},
		{name: "below threshold", n: 3, threshold: 5, collapsed: 3},
		{name: "at threshold", n: 5, threshold: 5, collapsed: 5},
		{name: "above threshold", n: 7, threshold: 5, collapsed: 5},
		{name: "threshold one", n: 4, threshold: 1, collapsed: 1},
		{name: "large list", n: 26, threshold: 5, collapsed: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := records(tt.n)
			l, err := New(items, WithThreshold(tt.threshold))
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}

			if got := len(l.Visible()); got != tt.collapsed {
				t.Errorf("collapsed len(Visible()) = %d, want %d", got, tt.collapsed)
			}
			if diff := cmp.Diff(items[:tt.collapsed], l.Visible()); diff != "" {
				t.Errorf("collapsed Visible() is not a prefix (-want +got):\n%s", diff)
			}

			l.Toggle()
			if got := len(l.Visible()); got != tt.n {
				t.Errorf("expanded len(Visible()) = %d, want %d", got, tt.n)
			}
			if diff := cmp.Diff(items, l.Visible()); diff != "" {
				t.Errorf("expanded Visible() mismatch (-want +got):\n%s", diff)
			}

			if tt.n <= tt.threshold && l.ShowToggle() {
				t.Error("toggle should not be shown when items fit under the threshold")
			}
		})
	}
}

func TestDefaultThreshold(t *testing.T) {
	l, err := New(records(7))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if l.Threshold() != DefaultThreshold {
		t.Errorf("Threshold() = %d, want %d", l.Threshold(), DefaultThreshold)
	}
}

func TestSevenRecordsScenario(t *testing.T) {
	items := records(7)
	l, err := New(items, WithThreshold(5))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	st := l.State()
	if st.Expanded {
		t.Error("list should start collapsed")
	}
	if diff := cmp.Diff(items[:5], st.Visible); diff != "" {
		t.Errorf("initial Visible mismatch (-want +got):\n%s", diff)
	}
	if !st.ShowToggle {
		t.Fatal("expected toggle control")
	}
	if st.ToggleLabel != "Show more... (2 more)" {
		t.Errorf("ToggleLabel = %q, want %q", st.ToggleLabel, "Show more... (2 more)")
	}

	st = l.Toggle()
	if len(st.Visible) != 7 {
		t.Errorf("expanded shows %d records, want 7", len(st.Visible))
	}
	if st.ToggleLabel != "Show less" {
		t.Errorf("ToggleLabel = %q, want %q", st.ToggleLabel, "Show less")
	}
}

func TestThreeRecordsScenario(t *testing.T) {
	l, err := New(records(3), WithThreshold(5))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if l.ShowToggle() {
		t.Error("no toggle expected for 3 records")
	}
	if l.ToggleLabel() != "" {
		t.Errorf("ToggleLabel() = %q, want empty", l.ToggleLabel())
	}
	if len(l.Visible()) != 3 {
		t.Errorf("len(Visible()) = %d, want 3", len(l.Visible()))
	}
	if l.Hidden() != 0 {
		t.Errorf("Hidden() = %d, want 0", l.Hidden())
	}
}

func TestToggleInvolution(t *testing.T) {
	for _, n := range []int{0, 3, 5, 9} {
		l, err := New(records(n))
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		before := l.State()
		l.Toggle()
		after := l.Toggle()
		if diff := cmp.Diff(before, after); diff != "" {
			t.Errorf("n=%d: two toggles changed state (-before +after):\n%s", n, diff)
		}
	}
}

func TestSubscribe(t *testing.T) {
	l, err := New(records(6))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	var calls []string
	unsubFirst := l.Subscribe(func(st State) {
		calls = append(calls, fmt.Sprintf("first:%v", st.Expanded))
	})
	l.Subscribe(func(st State) {
		calls = append(calls, fmt.Sprintf("second:%d", len(st.Visible)))
	})

	l.Toggle()
	unsubFirst()
	l.Toggle()

	want := []string{"first:true", "second:6", "second:5"}
	if diff := cmp.Diff(want, calls); diff != "" {
		t.Errorf("notifications mismatch (-want +got):\n%s", diff)
	}
}

func TestSubscribeNil(t *testing.T) {
	l, err := New(nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	unsub := l.Subscribe(nil)
	unsub()
	l.Toggle()
}

func TestInputIsCopied(t *testing.T) {
	items := records(6)
	l, err := New(items)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	items[0].Title = "mutated"
	if l.Items()[0].Title != "Paper 1" {
		t.Error("list must not observe caller mutations")
	}

	visible := l.Visible()
	visible[1].Title = "mutated"
	if l.Items()[1].Title != "Paper 2" {
		t.Error("list must not observe mutations of returned slices")
	}
}

func TestNewInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		items []Record
		opts  []Option
	}{
		{name: "zero threshold", items: records(1), opts: []Option{WithThreshold(0)}},
		{name: "negative threshold", items: records(1), opts: []Option{WithThreshold(-3)}},
		{name: "missing title", items: []Record{{Authors: "X"}}},
		{name: "blank title", items: []Record{{Title: "  ", Authors: "X"}}},
		{name: "missing authors", items: []Record{{Title: "T"}}},
		{name: "relative link", items: []Record{{Title: "T", Authors: "X", Link: "/papers/1"}}},
		{name: "non-http link", items: []Record{{Title: "T", Authors: "X", Link: "ftp://example.com/x"}}},
		{name: "negative year", items: []Record{{Title: "T", Authors: "X", Year: -1}}},
		{name: "second record bad", items: append(records(1), Record{Title: "T"})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(tt.items, tt.opts...)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("New() error = %v, want ErrInvalidInput", err)
			}
			if l != nil {
				t.Error("New() should not return a list on invalid input")
			}
		})
	}
}

func TestFormatAuthors(t *testing.T) {
	exact := strings.Repeat("a", 40)
	long := "Yifan Sun, Trinayan Baruah, Saiful A. Mojumder"

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "short", in: "Yuan Feng, Hyeran Jeon", want: "Yuan Feng, Hyeran Jeon"},
		{name: "exactly forty", in: exact, want: exact},
		{name: "forty one", in: exact + "b", want: exact + "..."},
		{name: "forty five cuts mid word", in: long[:45], want: long[:40] + "..."},
		{name: "multibyte counts characters", in: strings.Repeat("é", 41), want: strings.Repeat("é", 40) + "..."},
		{name: "multibyte at boundary", in: strings.Repeat("é", 40), want: strings.Repeat("é", 40)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatAuthors(tt.in); got != tt.want {
				t.Errorf("FormatAuthors(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRecordHelpers(t *testing.T) {
	r := Record{Title: "T", Authors: "A"}
	if r.HasLink() || r.HasYear() {
		t.Error("bare record should have neither link nor year")
	}
	r.Link = "https://example.com"
	r.Year = 2024
	if !r.HasLink() || !r.HasYear() {
		t.Error("record should report link and year")
	}
	if r.FormattedAuthors() != "A" {
		t.Errorf("FormattedAuthors() = %q", r.FormattedAuthors())
	}
}
