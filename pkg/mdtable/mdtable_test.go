package mdtable

import "testing"

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		rows [][]string
		want string
	}{
		{"empty", nil, ""},
		{"header only", [][]string{{"a", "b"}}, "| a | b |\n| - | - |"},
		{
			"rows",
			[][]string{{"Name", "D/L"}, {"leveldown", "120000"}, {"`x`", ""}},
			"| Name | D/L |\n| - | - |\n| leveldown | 120000 |\n| `x` |  |",
		},
		{"ragged", [][]string{{"a", "b"}, {"1"}}, "| a | b |\n| - | - |\n| 1 |  |"},
		{"escaped", [][]string{{"a"}, {"x|y"}, {"l1\nl2"}}, "| a |\n| - |\n| x\\|y |\n| l1<br>l2 |"},
	}

	for _, tt := range tests {
		if got := New().Format(tt.rows); got != tt.want {
			t.Errorf("%s: Format() = %q, want %q", tt.name, got, tt.want)
		}
	}
}
