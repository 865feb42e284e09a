package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-statement-list/internal/app"
	"github.com/MKhiriev/go-statement-list/internal/service"
	"github.com/MKhiriev/go-statement-list/models"
)

// listModel is the client-side copy of one variant.
type listModel struct {
	items   []models.Item
	idx     int
	state   service.ListState
	empty   bool
	loaded  bool
	lastErr error
}

func (m *listModel) replace(items []models.Item) {
	m.items = items
	m.loaded = true
	m.clampCursor()
}

func (m *listModel) clampCursor() {
	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m listModel) current() (models.Item, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.Item{}, false
	}
	return m.items[m.idx], true
}

type badge struct {
	label string
	tone  string
}

var stateBadges = map[models.LifecycleState]badge{
	models.StateNew:                        {"Новая", "waiting"},
	models.StateProcessing:                 {"В обработке", "waiting"},
	models.StateReady:                      {"Готово", "ok"},
	models.StateError:                      {"Ошибка", "failed"},
	models.StatePhysicalInDelivery:         {"Доставляется", "mail"},
	models.StatePhysicalDelivered:          {"Доставлено", "ok"},
	models.StatePhysicalConfirmationNeeded: {"Ждёт подтверждения", "waiting"},
	models.StatePhysicalConfirmed:          {"Подтверждено", "ok"},
}

func renderBadge(state models.LifecycleState) string {
	b, ok := stateBadges[state]
	if !ok {
		return "[" + string(state) + "]"
	}
	return badgeStyles[b.tone].Render("[" + b.label + "]")
}

func renderRow(item models.Item, selected bool, width int) string {
	cursor := "  "
	if selected {
		cursor = "> "
	}

	title := fitText(item.Payload.Title, width)
	line := fmt.Sprintf("%s%s  %s  %s",
		cursor, item.OrderingKey.Local().Format("02.01.2006 15:04"), title, renderBadge(item.State))
	if selected {
		line = selectedStyle.Render(line)
	}

	if item.Payload.Subtitle != "" {
		line += "\n      " + helpStyle.Render(fitText(item.Payload.Subtitle, width))
	}
	return line
}

func (m listModel) View(spinnerView string, width int) string {
	var b strings.Builder

	switch {
	case m.state == service.ListFetchingFirstPage && len(m.items) == 0:
		b.WriteString(spinnerView + " Загрузка...\n")
	case m.loaded && m.empty:
		b.WriteString(app.MsgEmptyList + "\n")
	default:
		for i, item := range m.items {
			b.WriteString(renderRow(item, i == m.idx, width))
			b.WriteString("\n")
		}
		if m.state == service.ListFetchingNextPage {
			b.WriteString(spinnerView + " Загрузка следующей страницы...\n")
		}
	}

	if m.lastErr != nil {
		b.WriteString("\n" + errorStyle.Render("Ошибка: "+humanizeServerUnavailableError(m.lastErr)) + "\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
