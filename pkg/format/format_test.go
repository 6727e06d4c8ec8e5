package format

import "testing"

func TestFormatFileSize(t *testing.T) {
	cases := []struct {
		bytes int64
		want  string
	}{
		{0, "0 Bytes"},
		{-5, "0 Bytes"},
		{1, "1 Bytes"},
		{512, "512 Bytes"},
		{1024, "1 KB"},
		{1536, "1.5 KB"},
		{1048576, "1 MB"},
		{1572864, "1.5 MB"},
		{104857600, "100 MB"},
		{1073741824, "1 GB"},
		{1099511627776, "1 TB"},
	}

	for _, tc := range cases {
		if got := FormatFileSize(tc.bytes); got != tc.want {
			t.Fatalf("FormatFileSize(%d) = %q, want %q", tc.bytes, got, tc.want)
		}
	}
}

func TestFormatFileSize_Rounding(t *testing.T) {
	// 1.005 MB must round to two decimals, not truncate.
	if got := FormatFileSize(1053819); got != "1 MB" {
		t.Fatalf("expected 1 MB, got %q", got)
	}
	if got := FormatFileSize(1259520); got != "1.2 MB" {
		t.Fatalf("expected 1.2 MB, got %q", got)
	}
}
