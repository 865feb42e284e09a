package tui

import (
	"strings"

	"github.com/MKhiriev/go-statement-list/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  " + helpStyle.Render("q: выход"))

	return b.String()
}

// fitText cuts v to max runes, marking the cut with "...".
func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

func variantTitle(v models.Variant) string {
	switch v {
	case models.VariantStatements:
		return "Выписки"
	case models.VariantCertificates:
		return "Справки"
	default:
		return v.String()
	}
}

func renderChips(active models.Variant) string {
	chips := make([]string, 0, len(models.Variants))
	for _, v := range models.Variants {
		style := chipStyle
		if v == active {
			style = activeChipStyle
		}
		chips = append(chips, style.Render(variantTitle(v)))
	}
	return strings.Join(chips, " ")
}
