package document

import "testing"

func TestValidateScript(t *testing.T) {
	cases := []struct {
		name    string
		src     string
		wantErr bool
	}{
		{"valid", `x := 1 + 2`, false},
		{"valid_with_stdlib", `math := import("math"); y := math.sqrt(4.0)`, false},
		{"syntax_error", `x := := 1`, true},
		{"empty", ``, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := ValidateScript([]byte(c.src))
			if (err != nil) != c.wantErr {
				t.Fatalf("ValidateScript(%q) error = %v, wantErr %v", c.src, err, c.wantErr)
			}
		})
	}
}
