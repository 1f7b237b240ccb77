package oligo

import "testing"

func TestValidate(t *testing.T) {
	tests := []struct {
		in, want string
		wantErr  bool
	}{
		{"ttgaca", "TTGACA", false},
		{" 'TAT AAT' ", "TATAAT", false},
		{"TTGNCA", "", true},
		{"", "", true},
		{"  ", "", true},
	}
	for _, tc := range tests {
		got, err := Validate(tc.in)
		if (err != nil) != tc.wantErr || got != tc.want {
			t.Errorf("Validate(%q) = %q, %v", tc.in, got, err)
		}
	}
}
