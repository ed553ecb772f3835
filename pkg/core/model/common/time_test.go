package common

import (
	"testing"
	"time"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "RFC3339格式",
			input: "2025-11-09T17:44:55+08:00",
			want:  time.Date(2025, 11, 9, 17, 44, 55, 0, time.FixedZone("", 8*3600)),
		},
		{
			name:  "标准格式带空格",
			input: "2025-11-09 17:44:55",
			want:  time.Date(2025, 11, 9, 17, 44, 55, 0, time.Local),
		},
		{
			name:  "datetime-local格式",
			input: "2025-11-09T17:44",
			want:  time.Date(2025, 11, 9, 17, 44, 0, 0, time.Local),
		},
		{
			name:  "日期格式",
			input: "2025-11-09",
			want:  time.Date(2025, 11, 9, 0, 0, 0, 0, time.Local),
		},
		{
			name:  "斜杠日期格式",
			input: "2025/11/09",
			want:  time.Date(2025, 11, 9, 0, 0, 0, 0, time.Local),
		},
		{
			name:    "空字符串",
			input:   "  ",
			wantErr: true,
		},
		{
			name:    "无效格式",
			input:   "invalid-time",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTime(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTime() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("ParseTime() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseTimeOrNow(t *testing.T) {
	before := time.Now()
	got := ParseTimeOrNow("")
	after := time.Now()
	if got.Before(before) || got.After(after) {
		t.Errorf("ParseTimeOrNow(\"\") = %v, want between %v and %v", got, before, after)
	}

	got = ParseTimeOrNow("2020-01-02")
	if !got.Equal(time.Date(2020, 1, 2, 0, 0, 0, 0, time.Local)) {
		t.Errorf("ParseTimeOrNow() = %v", got)
	}
}
