package verification

import "testing"

func TestStatusForAction(t *testing.T) {
	cases := []struct {
		action string
		want   Status
		ok     bool
	}{
		{"approve", StatusApproved, true},
		{"deny", StatusDenied, true},
		{"Approve", "", false},
		{"DENY", "", false},
		{"", "", false},
		{"approve ", "", false},
	}
	for _, tc := range cases {
		got, ok := StatusForAction(tc.action)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("StatusForAction(%q) = (%q, %v), want (%q, %v)", tc.action, got, ok, tc.want, tc.ok)
		}
	}
}
