package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-statement-list/internal/app"
	"github.com/MKhiriev/go-statement-list/internal/logger"
	"github.com/MKhiriev/go-statement-list/internal/reconcile"
	"github.com/MKhiriev/go-statement-list/internal/service"
	"github.com/MKhiriev/go-statement-list/models"
)

const defaultRowWidth = 60

var errNothingToCopy = errors.New(app.MsgNothingToCopy)

// StatementDetails loads the full card of a statement. The tracking link of
// physically delivered statements is only present there.
type StatementDetails interface {
	GetStatement(ctx context.Context, companyID, id string) (models.StatementDetail, error)
}

type appModel struct {
	ctx       context.Context
	lists     service.ListService
	details   StatementDetails
	companyID string
	buildInfo models.AppBuildInfo
	copyText  func(string) error
	logger    *logger.Logger

	active   models.Variant
	variants map[models.Variant]*listModel
	spinner  spinner.Model
	width    int

	status        string
	showConfirm   bool
	confirm       confirmModel
	showBuildInfo bool
}

func newAppModel(ctx context.Context, lists service.ListService, details StatementDetails, companyID string, buildInfo models.AppBuildInfo, logger *logger.Logger) appModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	variants := make(map[models.Variant]*listModel, len(models.Variants))
	for _, v := range models.Variants {
		variants[v] = &listModel{}
	}

	return appModel{
		ctx:       ctx,
		lists:     lists,
		details:   details,
		companyID: companyID,
		buildInfo: buildInfo,
		copyText:  clipboard.WriteAll,
		logger:    logger,
		active:    models.VariantStatements,
		variants:  variants,
		spinner:   sp,
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdFetch(m.active))
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.updateKeys(msg)
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case snapshotMsg:
		l := m.list(msg.variant)
		l.replace(msg.items)
		l.lastErr = nil
	case diffMsg:
		l := m.list(msg.variant)
		applied, err := reconcile.Apply(l.items, msg.ops)
		if err != nil {
			// local copy diverged, take the session's result as is
			m.logger.Warn().Err(err).
				Str("func", "appModel.Update").
				Str("variant", msg.variant.String()).
				Msg("diff does not apply to local list")
			applied = msg.items
		}
		l.replace(applied)
		l.lastErr = nil
	case stateOnlyMsg:
		m.list(msg.variant).replace(msg.items)
	case listErrorMsg:
		m.list(msg.variant).lastErr = msg.err
	case emptyMsg:
		l := m.list(msg.variant)
		l.empty = msg.isEmpty
		l.loaded = true
	case listStateMsg:
		m.list(msg.variant).state = msg.state

	case commandErrMsg:
		if errors.Is(msg.err, service.ErrSessionStopped) {
			return m, tea.Quit
		}
		m.status = humanizeServerUnavailableError(msg.err)
		return m, cmdClearStatus()
	case copiedMsg:
		m.status = app.MsgCopied
		return m, cmdClearStatus()
	case copyFailedMsg:
		m.status = humanizeServerUnavailableError(msg.err)
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
	}

	return m, nil
}

func (m appModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) && !m.showConfirm {
		return m, tea.Quit
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.esc, keys.buildInfo) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	if m.showConfirm {
		switch {
		case key.Matches(msg, keys.yes):
			m.showConfirm = false
			return m, m.cmdDelete(m.confirm.id)
		case key.Matches(msg, keys.no, keys.esc, keys.quit):
			m.showConfirm = false
		}
		return m, nil
	}

	l := m.list(m.active)

	switch {
	case key.Matches(msg, keys.tab):
		m.active = nextVariant(m.active)
		return m, m.cmdFetch(m.active)
	case key.Matches(msg, keys.refresh):
		return m, m.cmdFetch(m.active)
	case key.Matches(msg, keys.up):
		if l.idx > 0 {
			l.idx--
		}
	case key.Matches(msg, keys.down):
		if l.idx < len(l.items)-1 {
			l.idx++
			return m, nil
		}
		if len(l.items) > 0 && l.state == service.ListIdle {
			return m, m.cmdFetchNext()
		}
	case key.Matches(msg, keys.delete):
		item, ok := l.current()
		if !ok {
			return m, nil
		}
		m.confirm = confirmModel{title: item.Payload.Title, id: item.ID}
		m.showConfirm = true
	case key.Matches(msg, keys.copy):
		item, ok := l.current()
		if !ok || m.active != models.VariantStatements || item.State != models.StatePhysicalInDelivery {
			m.status = app.MsgNothingToCopy
			return m, cmdClearStatus()
		}
		return m, m.cmdCopyTrackingLink(item.ID)
	case key.Matches(msg, keys.clear):
		return m, m.cmdClearAll()
	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = true
	}

	return m, nil
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo, m.companyID))
	}

	width := m.width - 20
	if width <= 0 {
		width = defaultRowWidth
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Statement List"))
	b.WriteString("  ")
	b.WriteString(helpStyle.Render(m.companyID))
	b.WriteString("\n\n")
	b.WriteString(renderChips(m.active))
	b.WriteString("\n\n")
	b.WriteString(m.list(m.active).View(m.spinner.View(), width))
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab: выписки/справки  ↑/↓: навигация  r: обновить  d: удалить  c: ссылка  x: очистить  v: версия  q: выход"))

	if m.showConfirm {
		b.WriteString("\n\n")
		b.WriteString(m.confirm.View())
	}

	return appStyle.Render(b.String())
}

func (m appModel) list(v models.Variant) *listModel {
	l, ok := m.variants[v]
	if !ok {
		l = &listModel{}
		m.variants[v] = l
	}
	return l
}

func nextVariant(v models.Variant) models.Variant {
	for i, candidate := range models.Variants {
		if candidate == v {
			return models.Variants[(i+1)%len(models.Variants)]
		}
	}
	return models.VariantStatements
}

// List session calls block until the owner goroutine takes the command, and
// the owner may be busy delivering a message to this program. They always
// run as commands, never inside Update.

func (m appModel) cmdFetch(variant models.Variant) tea.Cmd {
	lists := m.lists
	return func() tea.Msg {
		if err := lists.Fetch(variant); err != nil {
			return commandErrMsg{err: fmt.Errorf("fetch %s: %w", variant, err)}
		}
		return nil
	}
}

func (m appModel) cmdFetchNext() tea.Cmd {
	lists := m.lists
	return func() tea.Msg {
		if err := lists.FetchNext(); err != nil {
			return commandErrMsg{err: fmt.Errorf("fetch next page: %w", err)}
		}
		return nil
	}
}

func (m appModel) cmdDelete(id string) tea.Cmd {
	lists := m.lists
	return func() tea.Msg {
		if err := lists.DeleteAndRefresh(id); err != nil {
			return commandErrMsg{err: fmt.Errorf("delete %s: %w", id, err)}
		}
		return nil
	}
}

func (m appModel) cmdClearAll() tea.Cmd {
	lists := m.lists
	return func() tea.Msg {
		if err := lists.ClearAll(); err != nil {
			return commandErrMsg{err: fmt.Errorf("clear list: %w", err)}
		}
		return nil
	}
}

func (m appModel) cmdCopyTrackingLink(id string) tea.Cmd {
	ctx, details, companyID, copyText := m.ctx, m.details, m.companyID, m.copyText
	return func() tea.Msg {
		detail, err := details.GetStatement(ctx, companyID, id)
		if err != nil {
			return copyFailedMsg{err: err}
		}

		link := detail.TrackingLink()
		if link == "" {
			return copyFailedMsg{err: errNothingToCopy}
		}
		if err = copyText(link); err != nil {
			return copyFailedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{link: link}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
