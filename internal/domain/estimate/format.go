package estimate

import (
	"strconv"
	"time"
)

// FormatDate renders t as YYYY年MM月DD日.
func FormatDate(t time.Time) string {
	return t.Format("2006年01月02日")
}

// FormatYen renders n with a yen sign and thousands separators, e.g. ¥49,500.
func FormatYen(n int64) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	digits := strconv.FormatInt(n, 10)
	out := make([]byte, 0, len(digits)+len(digits)/3)
	for i := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, digits[i])
	}
	return sign + "¥" + string(out)
}

func PDFFileName(estimateNumber string) string {
	return "estimate_" + estimateNumber + ".pdf"
}
