package calculator

import (
	"fmt"
	"time"
)

const (
	LocalePtBR = "pt-BR"
	LocaleEnUS = "en-US"
)

var monthsPtBR = [12]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// formatDate renders t as a long date with a two-digit day.
func formatDate(locale string, t time.Time) string {
	switch locale {
	case LocaleEnUS:
		return fmt.Sprintf("%s %02d, %d", t.Month(), t.Day(), t.Year())
	default:
		return fmt.Sprintf("%02d de %s de %d", t.Day(), monthsPtBR[t.Month()-1], t.Year())
	}
}

func formatTime(locale string, t time.Time) string {
	switch locale {
	case LocaleEnUS:
		return t.Format("3:04:05 PM")
	default:
		return t.Format("15:04:05")
	}
}
