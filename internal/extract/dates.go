package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Indonesian month names, full and common OCR-shortened forms.
var monthNumbers = map[string]int{
	"JANUARI": 1, "JAN": 1,
	"FEBRUARI": 2, "PEBRUARI": 2, "FEB": 2,
	"MARET": 3, "MAR": 3, "MRT": 3,
	"APRIL": 4, "APR": 4,
	"MEI": 5,
	"JUNI": 6, "JUN": 6,
	"JULI": 7, "JUL": 7,
	"AGUSTUS": 8, "AGU": 8, "AGT": 8,
	"SEPTEMBER": 9, "SEP": 9, "SEPT": 9,
	"OKTOBER": 10, "OKT": 10,
	"NOVEMBER": 11, "NOV": 11, "NOPEMBER": 11,
	"DESEMBER": 12, "DES": 12,
}

var (
	reDateWords   = regexp.MustCompile(`(?i)\b(\d{1,2})\s+([A-Za-z]+)\s+(\d{4})\b`)
	reDateNumeric = regexp.MustCompile(`\b(\d{1,2})[-/.](\d{1,2})[-/.](\d{4})\b`)
)

// normalizeDate converts "17 Agustus 1995" or "17-08-1995" style dates to
// yyyy-MM-dd. Returns "" when nothing parseable is found; callers drop the
// field rather than guess.
func normalizeDate(s string) string {
	if m := reDateWords.FindStringSubmatch(s); m != nil {
		if month, ok := monthNumbers[strings.ToUpper(m[2])]; ok {
			day, _ := strconv.Atoi(m[1])
			if day >= 1 && day <= 31 {
				return fmt.Sprintf("%s-%02d-%02d", m[3], month, day)
			}
		}
	}

	if m := reDateNumeric.FindStringSubmatch(s); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		if day >= 1 && day <= 31 && month >= 1 && month <= 12 {
			return fmt.Sprintf("%s-%02d-%02d", m[3], month, day)
		}
	}

	return ""
}
