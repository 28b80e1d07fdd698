package views

import (
	"net/url"
	"strconv"
	"time"
)

var months = [...]string{"Ocak", "Şubat", "Mart", "Nisan", "Mayıs", "Haziran", "Temmuz", "Ağustos", "Eylül", "Ekim", "Kasım", "Aralık"}

// FormatDate formats t as "2 Ocak 2024".
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return strconv.Itoa(t.Day()) + " " + months[t.Month()-1] + " " + strconv.Itoa(t.Year())
}

// FormatDateTime formats t as "2 Ocak 2024 15:04" in local time.
func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	t = t.Local()
	return FormatDate(t) + " " + t.Format("15:04")
}

func urlQueryEscape(s string) string { return url.QueryEscape(s) }
