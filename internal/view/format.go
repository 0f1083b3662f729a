// Copyright (c) 2026 GolpoHub. All rights reserved.

package view

import (
	"strconv"
	"strings"
	"time"
)

// FormatCount abbreviates large counters for cards: 1234 → "1.2k".
func FormatCount(n int64) string {
	if n >= 1000 {
		return strconv.FormatFloat(float64(n)/1000, 'f', 1, 64) + "k"
	}
	return strconv.FormatInt(n, 10)
}

var bengaliDigits = strings.NewReplacer(
	"0", "০", "1", "১", "2", "২", "3", "৩", "4", "৪",
	"5", "৫", "6", "৬", "7", "৭", "8", "৮", "9", "৯",
)

// BengaliDigits replaces ASCII digits in s with Bengali digits.
func BengaliDigits(s string) string {
	return bengaliDigits.Replace(s)
}

var bengaliMonths = [12]string{
	"জানুয়ারী", "ফেব্রুয়ারী", "মার্চ", "এপ্রিল", "মে", "জুন",
	"জুলাই", "আগস্ট", "সেপ্টেম্বর", "অক্টোবর", "নভেম্বর", "ডিসেম্বর",
}

// FormatDate renders t as a long Bengali date, e.g. "১৯ অক্টোবর, ২০২৬".
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	day := BengaliDigits(strconv.Itoa(t.Day()))
	year := BengaliDigits(strconv.Itoa(t.Year()))
	return day + " " + bengaliMonths[t.Month()-1] + ", " + year
}
