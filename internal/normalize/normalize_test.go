package normalize

import "testing"

func TestReformatDate(t *testing.T) {
	tests := []struct {
		in     string
		layout string
		want   string
	}{
		{"02-Jan-2021", "2-Jan-2006", "20210102"},
		{"2-Jan-2021", "2-Jan-2006", "20210102"},
		{"1/2/2021", "1/2/2006", "20210102"},
		{"12/31/2021", "1/2/2006", "20211231"},
		{"Jan 2 2021", "Jan 2 2006", "20210102"},
		{"Feb 10 2021", "Jan 2 2006", "20210210"},
		{" 15-Feb-2021 ", "2-Jan-2006", "20210215"},
	}
	for _, tt := range tests {
		got, err := ReformatDate(tt.in, tt.layout)
		if err != nil {
			t.Errorf("ReformatDate(%q, %q): %v", tt.in, tt.layout, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ReformatDate(%q, %q) = %q, want %q", tt.in, tt.layout, got, tt.want)
		}
	}
}

func TestReformatDate_Invalid(t *testing.T) {
	for _, in := range []string{"", "not-a-date", "2021-01-02"} {
		if _, err := ReformatDate(in, "2-Jan-2006"); err == nil {
			t.Errorf("ReformatDate(%q) expected error", in)
		}
	}
}

func TestCollapseWhitespace(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Jan  2 2021", "Jan 2 2021"},
		{"Feb 10 2021", "Feb 10 2021"},
		{"  Mar   1   2021  ", "Mar 1 2021"},
	}
	for _, tt := range tests {
		if got := CollapseWhitespace(tt.in); got != tt.want {
			t.Errorf("CollapseWhitespace(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// Ragged sprint-style dates must survive the collapse-then-parse path whether
// the day is one or two digits.
func TestReformatDate_CollapsedSprintDates(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Jan  2 2021", "20210102"},
		{"Feb 10 2021", "20210210"},
	}
	for _, tt := range tests {
		got, err := ReformatDate(CollapseWhitespace(tt.in), "Jan 2 2006")
		if err != nil {
			t.Errorf("ReformatDate(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ReformatDate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseRate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0.015", "0.015"},
		{"$0.05", "0.05"},
		{"£ 0.008", "0.008"},
		{" 1.5 ", "1.5"},
		{"0.0150", "0.015"},
	}
	for _, tt := range tests {
		got, err := ParseRate(tt.in)
		if err != nil {
			t.Errorf("ParseRate(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseRate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseRate_Invalid(t *testing.T) {
	for _, in := range []string{"", "$", "free", "1.2.3"} {
		if _, err := ParseRate(in); err == nil {
			t.Errorf("ParseRate(%q) expected error", in)
		}
	}
}

func TestExtractDollarRate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"$ 0.05 per min", "0.05"},
		{"$0.02", "0.02"},
		{"flat $ 1.25 connection", "1.25"},
	}
	for _, tt := range tests {
		got, err := ExtractDollarRate(tt.in)
		if err != nil {
			t.Errorf("ExtractDollarRate(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ExtractDollarRate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	if _, err := ExtractDollarRate("0.05 per min"); err == nil {
		t.Error("ExtractDollarRate without $ expected error")
	}
}

func TestChangeFromComment(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"rate increase", "+"},
		{"Rate Decrease effective Feb", "-"},
		{"no change", "="},
		{"", "="},
	}
	for _, tt := range tests {
		if got := ChangeFromComment(tt.in); got != tt.want {
			t.Errorf("ChangeFromComment(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizePrefix(t *testing.T) {
	got, err := NormalizePrefix("1", "310")
	if err != nil {
		t.Fatalf("NormalizePrefix: %v", err)
	}
	if got != "1310" {
		t.Errorf("NormalizePrefix = %q, want %q", got, "1310")
	}

	if got, _ := NormalizePrefix(" 52 155 "); got != "52155" {
		t.Errorf("NormalizePrefix with spaces = %q, want %q", got, "52155")
	}

	for _, parts := range [][]string{{""}, {"1", "31O"}, {"+44"}} {
		if _, err := NormalizePrefix(parts...); err == nil {
			t.Errorf("NormalizePrefix(%v) expected error", parts)
		}
	}
}

func TestCleanDestination(t *testing.T) {
	if got := CleanDestination("  United   States "); got != "United States" {
		t.Errorf("CleanDestination = %q", got)
	}
}
