package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gabiest/hostsdash/internal/core/domain"
	"github.com/gabiest/hostsdash/internal/core/services"
	"github.com/gabiest/hostsdash/pkg/ui"
)

// dashboardCmd represents the dashboard command
var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"dash"},
	Short:   "Launch interactive dashboard (alias: dash)",
	Long: `Launch a full-screen interactive dashboard for the asset inventory.

The dashboard provides:
- Live asset table refreshed from the server on a fixed interval
- KPI header with animated counters and availability
- Real-time search over name, MAC, IP, status and condition
- Quick actions: add, edit, delete, scan, copy IP

Keyboard Shortcuts:
  Navigation:
    ↑/k         Move up
    ↓/j         Move down
    g           Jump to top
    G           Jump to bottom

  Actions:
    a           Add asset
    e / Enter   Edit selected asset
    d           Delete asset (with confirmation)
    r           Refresh now
    s           Scan status (ping sweep)
    S           Scan network (discovery)
    y           Copy selected asset IP

  Views:
    /           Search mode
    Esc         Clear search / Exit mode
    ?           Show help

  General:
    q           Quit dashboard
    Ctrl+C      Force quit`,
	RunE: runDashboard,
}

func runDashboard(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	// Load initial data; a dead server still opens the dashboard so the
	// poller can recover once it comes back
	var loadErr error
	if err := inventoryService.Refresh(ctx); err != nil {
		loadErr = err
	}

	m := newDashboardModel(loadErr)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running dashboard: %w", err)
	}

	return nil
}

// Dashboard view modes
type viewMode int

const (
	modeList viewMode = iota
	modeSearch
	modeForm
	modeHelp
	modeConfirmDelete
)

// Form field indexes
const (
	fieldName = iota
	fieldMAC
	fieldIP
	fieldType
	fieldStatus
	fieldCondition
	fieldCount
)

// deleteTarget pins the asset identity at the moment 'd' was pressed, so a
// poll that reorders the table cannot redirect the confirmation.
type deleteTarget struct {
	id   int
	name string
}

// formState holds the add/edit inputs. editID is 0 for a new asset.
type formState struct {
	inputs []textinput.Model
	focus  int
	editID int
}

// Dashboard model
type dashboardModel struct {
	assets        []domain.Asset // Filtered view of the store
	cursor        int
	offset        int
	mode          viewMode
	searchInput   textinput.Model
	form          formState
	help          help.Model
	keys          dashKeyMap
	width         int
	height        int
	ready         bool
	message       string
	messageStyle  lipgloss.Style
	messageExpiry time.Time
	pendingDelete *deleteTarget

	// Animated KPI counters
	totalCount  ui.CountUp
	onlineCount ui.CountUp
	availCount  ui.CountUp
}

// Key bindings
type dashKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Top     key.Binding
	Bottom  key.Binding
	Add     key.Binding
	Edit    key.Binding
	Delete  key.Binding
	Refresh key.Binding
	ScanSt  key.Binding
	ScanNet key.Binding
	CopyIP  key.Binding
	Search  key.Binding
	Help    key.Binding
	Quit    key.Binding
	Escape  key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

func (k dashKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Add, k.Edit, k.Search, k.Help, k.Quit}
}

func (k dashKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.Add, k.Edit, k.Delete, k.Refresh},
		{k.ScanSt, k.ScanNet, k.CopyIP},
		{k.Search, k.Help, k.Escape, k.Quit},
	}
}

var dashKeys = dashKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "move up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "move down"),
	),
	Top: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "top"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("G"),
		key.WithHelp("G", "bottom"),
	),
	Add: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add asset"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e", "enter"),
		key.WithHelp("e/enter", "edit"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	ScanSt: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "scan status"),
	),
	ScanNet: key.NewBinding(
		key.WithKeys("S"),
		key.WithHelp("S", "scan network"),
	),
	CopyIP: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy IP"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("y", "Y"),
		key.WithHelp("y", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "N", "esc"),
		key.WithHelp("n/esc", "cancel"),
	),
}

func newDashboardModel(loadErr error) dashboardModel {
	ti := textinput.New()
	ti.Placeholder = "Buscar ativos..."
	ti.CharLimit = 100
	ti.Width = 50

	now := time.Now()
	assets := assetStore.Current()
	summary := services.Summarize(assets)
	animate := countUpDuration()

	m := dashboardModel{
		assets:      assets,
		cursor:      0,
		offset:      0,
		mode:        modeList,
		searchInput: ti,
		help:        help.New(),
		keys:        dashKeys,
		ready:       false,
		totalCount:  ui.NewCountUp(float64(summary.Total), animate, now),
		onlineCount: ui.NewCountUp(float64(summary.Online), animate, now),
		availCount:  ui.NewCountUp(summary.Availability(), animate, now),
	}

	if loadErr != nil {
		m.message = "Erro ao carregar ativos: " + loadErr.Error()
		m.messageStyle = ui.StyleError
		m.messageExpiry = now.Add(toastDuration())
	}

	return m
}

func countUpDuration() time.Duration {
	return time.Duration(appConfig.CountUpMillis) * time.Millisecond
}

func toastDuration() time.Duration {
	return time.Duration(appConfig.ToastSeconds) * time.Second
}

func pollInterval() time.Duration {
	return time.Duration(appConfig.PollIntervalSeconds) * time.Second
}

func (m dashboardModel) Init() tea.Cmd {
	return tea.Batch(schedulePoll(), frameTick())
}

// Messages

type statusMsg struct {
	message string
	style   lipgloss.Style
}

type clearMessageMsg struct{}

type assetsLoadedMsg struct {
	err error
}

type pollTickMsg struct{}

type frameMsg struct{}

type scanDoneMsg struct {
	label string
	err   error
}

func schedulePoll() tea.Cmd {
	return tea.Tick(pollInterval(), func(time.Time) tea.Msg {
		return pollTickMsg{}
	})
}

func frameTick() tea.Cmd {
	return tea.Tick(50*time.Millisecond, func(time.Time) tea.Msg {
		return frameMsg{}
	})
}

func refreshCmd() tea.Cmd {
	return func() tea.Msg {
		err := inventoryService.Refresh(getContext())
		if err == services.ErrRefreshInFlight {
			// Another refresh is already filling the store; drop this one
			return assetsLoadedMsg{}
		}
		return assetsLoadedMsg{err: err}
	}
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeSearch:
			return m.updateSearch(msg)
		case modeForm:
			return m.updateForm(msg)
		case modeHelp:
			return m.updateHelp(msg)
		case modeConfirmDelete:
			return m.updateConfirmDelete(msg)
		case modeList:
			return m.updateList(msg)
		}

	case statusMsg:
		m.message = msg.message
		m.messageStyle = msg.style
		m.messageExpiry = time.Now().Add(toastDuration())
		return m, nil

	case clearMessageMsg:
		if time.Now().After(m.messageExpiry) {
			m.message = ""
		}
		return m, nil

	case pollTickMsg:
		return m, tea.Batch(refreshCmd(), schedulePoll())

	case frameMsg:
		return m, frameTick()

	case assetsLoadedMsg:
		if msg.err != nil {
			m.message = "Erro ao carregar ativos: " + msg.err.Error()
			m.messageStyle = ui.StyleError
			m.messageExpiry = time.Now().Add(toastDuration())
			return m, nil
		}
		m.applySearch()
		m.retargetCounters()
		return m, nil

	case scanDoneMsg:
		if msg.err != nil {
			return m, toast("Falha no "+msg.label+": "+msg.err.Error(), ui.StyleError)
		}
		return m, tea.Batch(
			toast(ui.IconScan+" "+msg.label+" concluído", ui.StyleSuccess),
			func() tea.Msg { return assetsLoadedMsg{} },
		)
	}

	return m, nil
}

func toast(message string, style lipgloss.Style) tea.Cmd {
	return func() tea.Msg {
		return statusMsg{message: message, style: style}
	}
}

// retargetCounters restarts the KPI animations from their currently displayed
// values toward the fresh aggregates.
func (m *dashboardModel) retargetCounters() {
	now := time.Now()
	summary := services.Summarize(assetStore.Current())
	m.totalCount = m.totalCount.Retarget(float64(summary.Total), now)
	m.onlineCount = m.onlineCount.Retarget(float64(summary.Online), now)
	m.availCount = m.availCount.Retarget(summary.Availability(), now)
}

func (m dashboardModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
			m.adjustViewport()
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.assets)-1 {
			m.cursor++
			m.adjustViewport()
		}

	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
		m.offset = 0

	case key.Matches(msg, m.keys.Bottom):
		if len(m.assets) > 0 {
			m.cursor = len(m.assets) - 1
			m.adjustViewport()
		}

	case key.Matches(msg, m.keys.Add):
		m.openForm(nil)
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Edit):
		if len(m.assets) > 0 {
			asset := m.assets[m.cursor]
			m.openForm(&asset)
			return m, textinput.Blink
		}

	case key.Matches(msg, m.keys.Delete):
		if len(m.assets) > 0 {
			a := m.assets[m.cursor]
			m.pendingDelete = &deleteTarget{id: a.ID, name: a.DisplayName()}
			m.mode = modeConfirmDelete
		}

	case key.Matches(msg, m.keys.Refresh):
		return m, tea.Batch(
			toast("Atualizando...", ui.StyleInfo),
			refreshCmd(),
		)

	case key.Matches(msg, m.keys.ScanSt):
		return m, m.startScan("scan de status", inventoryService.ScanStatus)

	case key.Matches(msg, m.keys.ScanNet):
		return m, m.startScan("scan de rede", inventoryService.ScanNetwork)

	case key.Matches(msg, m.keys.CopyIP):
		if len(m.assets) > 0 {
			return m, m.copyIP(m.assets[m.cursor])
		}

	case key.Matches(msg, m.keys.Search):
		m.mode = modeSearch
		m.searchInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Help):
		m.mode = modeHelp
	}

	return m, nil
}

func (m dashboardModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = modeList
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.applySearch()
		return m, nil

	case msg.Type == tea.KeyEnter:
		// Keep the narrowed view, return to list navigation
		m.mode = modeList
		m.searchInput.Blur()
		return m, nil

	// Only arrow keys navigate in search mode; letters belong to the query
	case msg.Type == tea.KeyUp:
		if m.cursor > 0 {
			m.cursor--
			m.adjustViewport()
		}

	case msg.Type == tea.KeyDown:
		if m.cursor < len(m.assets)-1 {
			m.cursor++
			m.adjustViewport()
		}

	default:
		m.searchInput, cmd = m.searchInput.Update(msg)
		m.applySearch()
		return m, cmd
	}

	return m, nil
}

func (m dashboardModel) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Quit):
		m.mode = modeList
	}
	return m, nil
}

func (m dashboardModel) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		target := m.pendingDelete
		m.pendingDelete = nil
		m.mode = modeList
		return m, m.deleteConfirmed(target)

	case key.Matches(msg, m.keys.Cancel):
		m.pendingDelete = nil
		m.mode = modeList
	}
	return m, nil
}

func (m dashboardModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeList
		return m, nil

	case tea.KeyTab, tea.KeyDown:
		m.form.focus = (m.form.focus + 1) % fieldCount
		return m, m.focusField()

	case tea.KeyShiftTab, tea.KeyUp:
		m.form.focus = (m.form.focus - 1 + fieldCount) % fieldCount
		return m, m.focusField()

	case tea.KeyEnter:
		if m.form.focus < fieldCount-1 {
			m.form.focus++
			return m, m.focusField()
		}
		return m.submitForm()
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m *dashboardModel) openForm(asset *domain.Asset) {
	labels := []struct{ placeholder, value string }{
		{"Nome *", ""},
		{"Endereço MAC", ""},
		{"Endereço IP", ""},
		{"Tipo", ""},
		{"Status (Online/Offline)", ""},
		{"Condição", ""},
	}
	if asset != nil {
		labels[fieldName].value = asset.Name
		labels[fieldMAC].value = asset.MACAddress
		labels[fieldIP].value = asset.IPAddress
		labels[fieldType].value = asset.Type
		labels[fieldStatus].value = asset.Status
		labels[fieldCondition].value = asset.Condition
	}

	inputs := make([]textinput.Model, fieldCount)
	for i, l := range labels {
		ti := textinput.New()
		ti.Placeholder = l.placeholder
		ti.CharLimit = 120
		ti.Width = 40
		ti.SetValue(l.value)
		inputs[i] = ti
	}
	inputs[fieldName].Focus()

	m.form = formState{inputs: inputs, focus: fieldName}
	if asset != nil {
		m.form.editID = asset.ID
	}
	m.mode = modeForm
}

func (m *dashboardModel) focusField() tea.Cmd {
	for i := range m.form.inputs {
		if i == m.form.focus {
			m.form.inputs[i].Focus()
		} else {
			m.form.inputs[i].Blur()
		}
	}
	return textinput.Blink
}

// submitForm saves the asset. The form only closes on success; a rejected
// save keeps the inputs so the user can fix them.
func (m dashboardModel) submitForm() (tea.Model, tea.Cmd) {
	asset := domain.Asset{
		ID:         m.form.editID,
		Name:       strings.TrimSpace(m.form.inputs[fieldName].Value()),
		MACAddress: strings.TrimSpace(m.form.inputs[fieldMAC].Value()),
		IPAddress:  strings.TrimSpace(m.form.inputs[fieldIP].Value()),
		Type:       strings.TrimSpace(m.form.inputs[fieldType].Value()),
		Status:     strings.TrimSpace(m.form.inputs[fieldStatus].Value()),
		Condition:  strings.TrimSpace(m.form.inputs[fieldCondition].Value()),
	}

	result, err := inventoryService.Save(getContext(), asset)
	if err != nil {
		return m, toast(err.Error(), ui.StyleError)
	}

	m.mode = modeList
	m.applySearch()
	m.retargetCounters()

	verb := "atualizado"
	if result.Created {
		verb = "cadastrado"
	}
	return m, toast(fmt.Sprintf("%s Ativo %s: %s", ui.IconSuccess, verb, result.Asset.DisplayName()), ui.StyleSuccess)
}

func (m dashboardModel) deleteConfirmed(target *deleteTarget) tea.Cmd {
	return func() tea.Msg {
		if target == nil {
			return nil
		}

		if err := inventoryService.Delete(getContext(), target.id); err != nil {
			return statusMsg{
				message: "Falha ao excluir: " + err.Error(),
				style:   ui.StyleError,
			}
		}

		return tea.Sequence(
			func() tea.Msg {
				return statusMsg{
					message: fmt.Sprintf("%s Excluído: %s", ui.IconSuccess, target.name),
					style:   ui.StyleSuccess,
				}
			},
			func() tea.Msg {
				return assetsLoadedMsg{}
			},
		)()
	}
}

// startScan refuses to stack scans; the key only toasts while one is running.
func (m dashboardModel) startScan(label string, run func(ctx context.Context) error) tea.Cmd {
	if inventoryService.Scanning() {
		return toast("Escaneamento já em andamento", ui.StyleWarning)
	}

	return tea.Batch(
		toast(ui.IconScan+" Iniciando "+label+"...", ui.StyleInfo),
		func() tea.Msg {
			err := run(getContext())
			if err == services.ErrScanInFlight {
				return statusMsg{message: "Escaneamento já em andamento", style: ui.StyleWarning}
			}
			return scanDoneMsg{label: label, err: err}
		},
	)
}

func (m dashboardModel) copyIP(a domain.Asset) tea.Cmd {
	return func() tea.Msg {
		if a.IPAddress == "" {
			return statusMsg{message: "Ativo sem endereço IP", style: ui.StyleWarning}
		}
		if err := clipboard.WriteAll(a.IPAddress); err != nil {
			return statusMsg{message: "Falha ao copiar IP: " + err.Error(), style: ui.StyleError}
		}
		return statusMsg{message: "IP copiado: " + a.IPAddress, style: ui.StyleSuccess}
	}
}

func (m dashboardModel) View() string {
	if !m.ready {
		return "\n  Carregando dashboard..."
	}

	switch m.mode {
	case modeHelp:
		return m.viewHelp()
	case modeForm:
		return m.viewForm()
	case modeConfirmDelete:
		return m.viewConfirmDelete()
	default:
		return m.viewList()
	}
}

func (m dashboardModel) viewList() string {
	var s strings.Builder

	s.WriteString(m.renderHeader())
	s.WriteString("\n")

	if appConfig.ShowKPIHeader {
		s.WriteString(m.renderKPIs())
		s.WriteString("\n")
	}

	s.WriteString(m.renderSearchBar())
	s.WriteString("\n\n")

	s.WriteString(m.renderAssetList())

	if appConfig.HighlightJSON && len(m.assets) > 0 {
		s.WriteString("\n")
		s.WriteString(m.renderDetail())
	}

	s.WriteString("\n")
	s.WriteString(m.renderFooter())

	return s.String()
}

func (m dashboardModel) renderHeader() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(ui.ColorPrimary).
		Bold(true).
		Padding(0, 1)

	statsStyle := lipgloss.NewStyle().
		Foreground(ui.ColorMuted).
		Align(lipgloss.Right)

	title := titleStyle.Render(ui.IconAsset + " Hosts Dashboard")
	stats := statsStyle.Render(fmt.Sprintf("%d ativos  %s", assetStore.Len(), appConfig.ServerURL))

	titleWidth := lipgloss.Width(title)
	statsWidth := lipgloss.Width(stats)
	spacer := m.width - titleWidth - statsWidth
	if spacer < 0 {
		spacer = 0
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		title,
		strings.Repeat(" ", spacer),
		stats,
	)
}

// renderKPIs draws the animated counters row.
func (m dashboardModel) renderKPIs() string {
	now := time.Now()

	kpiStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorMuted).
		Padding(0, 2)

	total := kpiStyle.Render(fmt.Sprintf("Total\n%s", ui.StyleBold.Render(m.totalCount.Format(now, 0, ""))))
	online := kpiStyle.Render(fmt.Sprintf("Online\n%s", ui.StyleSuccess.Render(m.onlineCount.Format(now, 0, ""))))
	avail := kpiStyle.Render(fmt.Sprintf("Disponibilidade\n%s", ui.StyleInfo.Render(m.availCount.Format(now, 1, "%"))))

	return lipgloss.JoinHorizontal(lipgloss.Top, total, " ", online, " ", avail)
}

func (m dashboardModel) renderSearchBar() string {
	borderColor := ui.ColorMuted
	if m.mode == modeSearch {
		borderColor = ui.ColorPrimary
	}

	searchStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		Width(m.width - 4)

	prompt := ui.StyleMuted.Render("🔍 ")
	if m.mode == modeSearch {
		prompt = ui.StylePrimary.Render("🔍 ")
	}

	content := prompt + m.searchInput.View()
	if m.mode != modeSearch && m.searchInput.Value() == "" {
		content = prompt + ui.StyleMuted.Render("Pressione / para buscar...")
	}

	return searchStyle.Render(content)
}

func (m dashboardModel) renderAssetList() string {
	if len(m.assets) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(ui.ColorMuted).
			Italic(true).
			Padding(1, 4)
		return emptyStyle.Render(ui.EmptyTablePlaceholder)
	}

	listHeight := m.listHeight()
	start := m.offset
	end := m.offset + listHeight
	if end > len(m.assets) {
		end = len(m.assets)
	}

	table := ui.NewTable(ui.AssetColumns())
	for i := start; i < end; i++ {
		table.AddRow(ui.AssetRow(m.assets[i]))
	}

	// Mark the selected row with a cursor in front of the rendered table.
	// The first two lines are the header and separator.
	lines := strings.Split(table.Render(), "\n")
	var s strings.Builder
	for i, line := range lines {
		rowIdx := start + i - 2
		if i > 1 && rowIdx == m.cursor && rowIdx < len(m.assets) {
			s.WriteString(ui.StylePrimary.Render("▶ "))
		} else {
			s.WriteString("  ")
		}
		s.WriteString(line)
		s.WriteString("\n")
	}

	return s.String()
}

// renderDetail shows the selected asset as highlighted JSON.
func (m dashboardModel) renderDetail() string {
	asset := m.assets[m.cursor]
	data, err := json.MarshalIndent(asset, "", "  ")
	if err != nil {
		return ""
	}

	detailStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorMuted).
		Padding(0, 1)

	return detailStyle.Render(highlightJSON(string(data)))
}

func (m dashboardModel) renderFooter() string {
	var statusLine string
	if m.message != "" && time.Now().Before(m.messageExpiry) {
		statusLine = m.messageStyle.Render(m.message)
	} else if inventoryService.Scanning() {
		statusLine = ui.StyleWarning.Render(ui.IconScan + " Escaneando...")
	} else {
		statusLine = ui.StyleMuted.Render("Pronto")
	}

	helpHint := ui.StyleMuted.Render("[↑↓/jk] Navegar  [a] Adicionar  [e] Editar  [d] Excluir  [s/S] Scan  [/] Buscar  [?] Ajuda  [q] Sair")

	footerStyle := lipgloss.NewStyle().
		BorderTop(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ui.ColorMuted).
		Padding(0, 1)

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		statusLine,
		helpHint,
	)

	return footerStyle.Render(content)
}

func (m dashboardModel) viewForm() string {
	var s strings.Builder

	title := "Novo Ativo"
	if m.form.editID != 0 {
		title = fmt.Sprintf("Editar Ativo #%d", m.form.editID)
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorPrimary).
		Padding(1, 2)

	labels := []string{"Nome", "MAC", "IP", "Tipo", "Status", "Condição"}
	var form strings.Builder
	form.WriteString(ui.StyleHeader.Render(title))
	form.WriteString("\n\n")
	for i, input := range m.form.inputs {
		label := labels[i]
		if i == m.form.focus {
			form.WriteString(ui.StylePrimary.Render("▶ " + label))
		} else {
			form.WriteString(ui.StyleMuted.Render("  " + label))
		}
		form.WriteString("\n  ")
		form.WriteString(input.View())
		form.WriteString("\n")
	}
	form.WriteString("\n")
	form.WriteString(ui.StyleMuted.Render("[Tab/↑↓] Campo  [Enter] Salvar  [Esc] Cancelar"))

	box := boxStyle.Render(form.String())

	verticalPadding := (m.height - lipgloss.Height(box)) / 2
	if verticalPadding < 0 {
		verticalPadding = 0
	}
	for i := 0; i < verticalPadding; i++ {
		s.WriteString("\n")
	}
	s.WriteString(lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, box))

	return s.String()
}

func (m dashboardModel) viewConfirmDelete() string {
	if m.pendingDelete == nil {
		return ""
	}

	var s strings.Builder

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorWarning).
		Padding(1, 2).
		Width(60).
		Align(lipgloss.Center)

	titleStyle := lipgloss.NewStyle().
		Foreground(ui.ColorWarning).
		Bold(true)

	nameStyle := lipgloss.NewStyle().
		Foreground(ui.ColorPrimary).
		Bold(true)

	promptStyle := lipgloss.NewStyle().
		Foreground(ui.ColorDefault).
		MarginTop(1)

	content := fmt.Sprintf("%s\n\n%s\n%s\n\n%s",
		titleStyle.Render("⚠  Excluir Ativo?"),
		nameStyle.Render(m.pendingDelete.name),
		ui.StyleMuted.Render(fmt.Sprintf("id %d", m.pendingDelete.id)),
		promptStyle.Render("Pressione 'y' para confirmar, 'n' ou ESC para cancelar"),
	)

	box := boxStyle.Render(content)

	verticalPadding := (m.height - lipgloss.Height(box)) / 2
	if verticalPadding < 0 {
		verticalPadding = 0
	}
	for i := 0; i < verticalPadding; i++ {
		s.WriteString("\n")
	}
	s.WriteString(lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, box))

	return s.String()
}

func (m dashboardModel) viewHelp() string {
	var s strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(ui.ColorPrimary).
		Padding(1, 2)

	sectionStyle := lipgloss.NewStyle().
		Foreground(ui.ColorAccent).
		Bold(true).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(ui.ColorSuccess).
		Bold(true).
		Width(12)

	descStyle := lipgloss.NewStyle().
		Foreground(ui.ColorDefault)

	s.WriteString(titleStyle.Render("Hosts Dashboard - Atalhos de Teclado"))
	s.WriteString("\n\n")

	sections := []struct {
		title string
		keys  []struct{ key, desc string }
	}{
		{
			title: "Navegação",
			keys: []struct{ key, desc string }{
				{"↑ / k", "Mover para cima"},
				{"↓ / j", "Mover para baixo"},
				{"g", "Ir para o topo"},
				{"G", "Ir para o fim"},
			},
		},
		{
			title: "Ações",
			keys: []struct{ key, desc string }{
				{"a", "Adicionar ativo"},
				{"e / Enter", "Editar ativo selecionado"},
				{"d", "Excluir ativo (com confirmação)"},
				{"r", "Atualizar agora"},
				{"y", "Copiar IP do ativo"},
			},
		},
		{
			title: "Scans",
			keys: []struct{ key, desc string }{
				{"s", "Scan de status (ping)"},
				{"S", "Scan de rede (descoberta)"},
			},
		},
		{
			title: "Busca",
			keys: []struct{ key, desc string }{
				{"/", "Buscar (digite para filtrar)"},
				{"Esc", "Limpar busca / Cancelar"},
			},
		},
		{
			title: "Geral",
			keys: []struct{ key, desc string }{
				{"?", "Mostrar esta ajuda"},
				{"q", "Sair do dashboard"},
				{"Ctrl+C", "Forçar saída"},
			},
		},
	}

	for _, section := range sections {
		s.WriteString(sectionStyle.Render(section.title))
		s.WriteString("\n")
		for _, binding := range section.keys {
			s.WriteString("  ")
			s.WriteString(keyStyle.Render(binding.key))
			s.WriteString(descStyle.Render(binding.desc))
			s.WriteString("\n")
		}
	}

	s.WriteString("\n")
	s.WriteString(ui.StyleMuted.Render("  Pressione ESC ou ? para voltar ao dashboard"))
	s.WriteString("\n")

	return s.String()
}

func (m *dashboardModel) listHeight() int {
	reserved := 12
	if appConfig.ShowKPIHeader {
		reserved += 4
	}
	if appConfig.HighlightJSON {
		reserved += 10
	}
	h := m.height - reserved
	if h < 3 {
		h = 3
	}
	return h
}

func (m *dashboardModel) adjustViewport() {
	listHeight := m.listHeight()

	if m.cursor >= m.offset+listHeight {
		m.offset = m.cursor - listHeight + 1
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
}

// applySearch narrows the cached list; an empty query restores the full view.
func (m *dashboardModel) applySearch() {
	m.assets = inventoryService.Search(strings.TrimSpace(m.searchInput.Value()))

	if m.cursor >= len(m.assets) {
		m.cursor = len(m.assets) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.adjustViewport()
}

// highlightJSON applies terminal syntax highlighting to a JSON document.
func highlightJSON(content string) string {
	lexer := lexers.Get("json")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.TTY16m

	var buf strings.Builder
	iterator, err := lexer.Tokenise(nil, content)
	if err != nil {
		return content
	}

	if err := formatter.Format(&buf, style, iterator); err != nil {
		return content
	}

	return buf.String()
}
