package utils

import (
	"math"
	"strconv"
	"strings"
)

// FormatINR renders a rupee amount with Indian digit grouping, e.g.
// 1234567 -> "INR 12,34,567". Paise are rounded away.
func FormatINR(amount float64) string {
	n := int64(math.Round(amount))
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	return "INR " + sign + groupIndian(n)
}

// groupIndian groups the last three digits, then every two.
func groupIndian(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	head, tail := s[:len(s)-3], s[len(s)-3:]
	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	if head != "" {
		parts = append([]string{head}, parts...)
	}
	return strings.Join(parts, ",") + "," + tail
}
