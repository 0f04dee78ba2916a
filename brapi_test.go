package carteira

import "testing"

func TestParseBrapiDate(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "plain date", input: "2025-06-13", want: "2025-06-13"},
		{name: "rfc3339 timestamp", input: "2025-06-13T00:00:00.000Z", want: "2025-06-13"},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "soon", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseBrapiDate(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("parseBrapiDate(%q) = %v, want error", tc.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseBrapiDate(%q) returned error: %v", tc.input, err)
			}
			if got.String() != tc.want {
				t.Errorf("parseBrapiDate(%q) = %s, want %s", tc.input, got, tc.want)
			}
		})
	}
}
