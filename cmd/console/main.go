package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"userdeck/internal/client/gateway"
	"userdeck/internal/config"
	"userdeck/internal/controller"
	"userdeck/internal/models"
	"userdeck/internal/store"
	"userdeck/internal/ui"
)

type sessionState int

const (
	stateBrowse sessionState = iota
	stateForm
	stateConfirmDelete
)

var pageSizes = []int{5, 10, 25}

// intentMsg carries a reduced-ready intent back from a command.
type intentMsg struct{ intent store.Intent }

// debounceFiredMsg is the search quiet-window timer expiring.
type debounceFiredMsg struct{ gen uint64 }

// noticeExpireMsg dismisses the transient notification with id.
type noticeExpireMsg struct{ id int }

type notice struct {
	id      int
	text    string
	success bool
}

type keyMap struct {
	Search    key.Binding
	PrevPage  key.Binding
	NextPage  key.Binding
	PageSize  key.Binding
	New       key.Binding
	Edit      key.Binding
	Delete    key.Binding
	Toggle    key.Binding
	SelectAll key.Binding
	Filter    key.Binding
	Refresh   key.Binding
	Reset     key.Binding
	Dismiss   key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.New, k.Edit, k.Delete, k.Refresh, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Search, k.PrevPage, k.NextPage, k.PageSize},
		{k.New, k.Edit, k.Delete, k.Toggle, k.SelectAll},
		{k.Filter, k.Refresh, k.Reset, k.Dismiss, k.Quit},
	}
}

var keys = keyMap{
	Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	PrevPage:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "prev page")),
	NextPage:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next page")),
	PageSize:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "page size")),
	New:       key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
	Edit:      key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
	Delete:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	Toggle:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "mark row")),
	SelectAll: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "mark all")),
	Filter:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "company filter")),
	Refresh:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh/retry")),
	Reset:     key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "reset filters")),
	Dismiss:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "dismiss error")),
	Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

var formLabels = []string{
	"Name", "Email", "Username", "Phone", "Website",
	"Company name", "Catch phrase", "BS",
	"Street", "Suite", "City", "Zipcode",
}

type userForm struct {
	fields  []textinput.Model
	focus   int
	editing bool
	editID  int64
}

func newUserForm() userForm {
	fields := make([]textinput.Model, len(formLabels))
	for i, label := range formLabels {
		ti := textinput.New()
		ti.Placeholder = label
		ti.CharLimit = 120
		ti.Width = 40
		fields[i] = ti
	}
	fields[0].Focus()
	return userForm{fields: fields}
}

func (f *userForm) load(u models.User) {
	values := []string{
		u.Name, u.Email, u.Username, u.Phone, u.Website,
		u.Company.Name, u.Company.CatchPhrase, u.Company.BS,
		u.Address.Street, u.Address.Suite, u.Address.City, u.Address.Zipcode,
	}
	for i := range f.fields {
		f.fields[i].SetValue(values[i])
		f.fields[i].Blur()
	}
	f.focus = 0
	f.fields[0].Focus()
}

func (f *userForm) user() models.User {
	v := func(i int) string { return strings.TrimSpace(f.fields[i].Value()) }
	return models.User{
		Name:     v(0),
		Email:    v(1),
		Username: v(2),
		Phone:    v(3),
		Website:  v(4),
		Company:  models.Company{Name: v(5), CatchPhrase: v(6), BS: v(7)},
		Address:  models.Address{Street: v(8), Suite: v(9), City: v(10), Zipcode: v(11)},
	}
}

func (f *userForm) cycle(delta int) tea.Cmd {
	f.fields[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.fields)) % len(f.fields)
	return f.fields[f.focus].Focus()
}

type model struct {
	cfg     *config.Config
	log     zerolog.Logger
	gw      *gateway.Client
	planner *controller.Planner

	st            store.State
	state         sessionState
	companyFilter store.CompanyFilter

	table   table.Model
	rowIDs  []int64
	search  textinput.Model
	spinner spinner.Model
	help    help.Model
	form    userForm

	checked      map[int64]bool
	notice       *notice
	noticeSerial int
	errDismissed bool
	quitting     bool

	initialPlan controller.FetchPlan
}

func initialModel(cfg *config.Config, log zerolog.Logger) model {
	search := textinput.New()
	search.Placeholder = "Search customers..."
	search.CharLimit = 80
	search.Width = 36

	sp := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(ui.SelectedStyle))

	columns := []table.Column{
		{Title: "Name", Width: 22},
		{Title: "Username", Width: 14},
		{Title: "Email", Width: 26},
		{Title: "Phone", Width: 18},
		{Title: "Company", Width: 18},
		{Title: "Location", Width: 20},
	}
	t := table.New(table.WithColumns(columns), table.WithFocused(true), table.WithHeight(12))
	styles := table.DefaultStyles()
	styles.Header = ui.TableHeaderStyle
	styles.Selected = ui.TableSelectedStyle
	t.SetStyles(styles)

	planner := controller.NewPlanner(cfg.Debounce)
	st := store.NewState(cfg.PageSize)

	// The opening fetch is planned here so Init only has to dispatch
	// it; reducing the request intent now keeps the staleness guard in
	// step with the plan's sequence number.
	plan := planner.PlanList(st.Pagination.CurrentPage, st.Pagination.ItemsPerPage)
	st = store.Reduce(st, plan.RequestIntent())

	return model{
		cfg:           cfg,
		log:           log,
		gw:            gateway.New(cfg, log),
		planner:       planner,
		st:            st,
		initialPlan:   plan,
		state:         stateBrowse,
		companyFilter: store.CompanyFilterAll,
		table:         t,
		search:        search,
		spinner:       sp,
		help:          help.New(),
		form:          newUserForm(),
		checked:       map[int64]bool{},
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(tea.EnterAltScreen, m.spinner.Tick, m.fetchCmd(m.initialPlan))
}

// fetchCmd performs the planned fetch and resolves into the matching
// outcome intent; the sequence number travels with it so the reducer
// can reject it if a newer fetch superseded this one.
func (m model) fetchCmd(plan controller.FetchPlan) tea.Cmd {
	gw, timeout := m.gw, m.cfg.HTTPTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if plan.Category == controller.FetchSearch {
			res, err := gw.SearchAll(ctx, plan.Term, plan.Page, plan.Limit)
			if err != nil {
				return intentMsg{store.SearchFailed{Seq: plan.Seq, Message: err.Error()}}
			}
			return intentMsg{store.SearchSucceeded{
				Seq: plan.Seq, Users: res.Users, TotalCount: res.TotalCount,
				Page: res.Page, Limit: res.Limit, Term: res.Term,
			}}
		}

		res, err := gw.ListPage(ctx, plan.Page, plan.Limit)
		if err != nil {
			return intentMsg{store.ListFailed{Seq: plan.Seq, Message: err.Error()}}
		}
		return intentMsg{store.ListSucceeded{
			Seq: plan.Seq, Users: res.Users, TotalCount: res.TotalCount,
			Page: plan.Page, Limit: plan.Limit,
		}}
	}
}

func (m model) createCmd(data models.User) tea.Cmd {
	gw, timeout := m.gw, m.cfg.HTTPTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		created, err := gw.Create(ctx, data)
		if err != nil {
			return intentMsg{store.CreateFailed{Message: err.Error()}}
		}
		return intentMsg{store.CreateSucceeded{User: *created}}
	}
}

func (m model) updateCmd(id int64, data models.User) tea.Cmd {
	gw, timeout := m.gw, m.cfg.HTTPTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		updated, err := gw.Update(ctx, id, data)
		if err != nil {
			return intentMsg{store.UpdateFailed{Message: err.Error()}}
		}
		return intentMsg{store.UpdateSucceeded{User: *updated}}
	}
}

func (m model) deleteCmd(id int64) tea.Cmd {
	gw, timeout := m.gw, m.cfg.HTTPTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		deleted, err := gw.Remove(ctx, id)
		if err != nil {
			return intentMsg{store.DeleteFailed{Message: err.Error()}}
		}
		return intentMsg{store.DeleteSucceeded{ID: deleted}}
	}
}

func (m *model) showNotice(text string, success bool) tea.Cmd {
	m.noticeSerial++
	id := m.noticeSerial
	m.notice = &notice{id: id, text: text, success: success}
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return noticeExpireMsg{id: id}
	})
}

func (m *model) dispatch(plan controller.FetchPlan) tea.Cmd {
	m.st = store.Reduce(m.st, plan.RequestIntent())
	return m.fetchCmd(plan)
}

func (m *model) syncTable() {
	rows := m.st.DisplayRows(m.companyFilter)
	tableRows := make([]table.Row, 0, len(rows))
	m.rowIDs = m.rowIDs[:0]
	for _, r := range rows {
		mark := " "
		if m.checked[r.User.ID] {
			mark = "✓"
		}
		tableRows = append(tableRows, table.Row{
			mark + " " + r.User.Name, r.User.Username, r.User.Email,
			r.Phone, r.CompanyName, r.Location,
		})
		m.rowIDs = append(m.rowIDs, r.User.ID)
	}
	m.table.SetRows(tableRows)
	if m.table.Cursor() >= len(tableRows) && len(tableRows) > 0 {
		m.table.SetCursor(len(tableRows) - 1)
	}
}

func (m model) highlighted() (models.User, bool) {
	cur := m.table.Cursor()
	if cur < 0 || cur >= len(m.rowIDs) {
		return models.User{}, false
	}
	return m.st.UserByID(m.rowIDs[cur])
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case noticeExpireMsg:
		if m.notice != nil && m.notice.id == msg.id {
			m.notice = nil
		}
		return m, nil

	case debounceFiredMsg:
		// Only the latest keystroke's timer may trigger a fetch; older
		// generations were superseded while pending.
		if !m.planner.DebounceCurrent(msg.gen) || m.st.Filters.Search == "" {
			return m, nil
		}
		return m, m.dispatch(m.planner.PlanDebouncedSearch(m.st))

	case intentMsg:
		return m.applyIntent(msg.intent)

	case tea.WindowSizeMsg:
		if h := msg.Height - 14; h >= 3 {
			m.table.SetHeight(h)
		}
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case stateForm:
			return m.updateForm(msg)
		case stateConfirmDelete:
			return m.updateConfirm(msg)
		default:
			return m.updateBrowse(msg)
		}
	}

	return m, nil
}

// applyIntent reduces an outcome into the store and handles the view
// side effects (notices, form dismissal, table refresh).
func (m model) applyIntent(in store.Intent) (tea.Model, tea.Cmd) {
	prev := m.st
	m.st = store.Reduce(m.st, in)
	if prev.Err != m.st.Err {
		m.errDismissed = false
	}

	var cmd tea.Cmd
	switch in := in.(type) {
	case store.CreateSucceeded:
		cmd = m.showNotice(fmt.Sprintf("Customer %s added successfully", in.User.Name), true)
		m.state = stateBrowse
	case store.CreateFailed:
		// Modal stays open so the input can be corrected and resubmitted.
		cmd = m.showNotice("Error adding customer. Please try again.", false)
	case store.UpdateSucceeded:
		cmd = m.showNotice(fmt.Sprintf("Customer %s updated successfully", in.User.Name), true)
		m.state = stateBrowse
	case store.UpdateFailed:
		cmd = m.showNotice("Error updating customer. Please try again.", false)
	case store.DeleteSucceeded:
		cmd = m.showNotice("Customer deleted successfully", true)
		delete(m.checked, in.ID)
	case store.DeleteFailed:
		cmd = m.showNotice("Error deleting customer. Please try again.", false)
	}

	m.syncTable()
	return m, cmd
}

func (m model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.search.Focused() {
		switch msg.String() {
		case "esc", "enter":
			m.search.Blur()
			return m, nil
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}

		before := m.search.Value()
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		if m.search.Value() == before {
			return m, cmd
		}

		m.st = store.Reduce(m.st, store.SetSearchFilter{Term: m.search.Value()})
		gen, delay := m.planner.NoteKeystroke()
		debounce := tea.Tick(delay, func(time.Time) tea.Msg {
			return debounceFiredMsg{gen: gen}
		})
		return m, tea.Batch(cmd, debounce)
	}

	info := m.st.PaginationInfo()

	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, keys.Search):
		return m, m.search.Focus()

	case key.Matches(msg, keys.PrevPage):
		if !info.HasPrevPage {
			return m, nil
		}
		target := info.CurrentPage - 1
		m.st = store.Reduce(m.st, store.SetCurrentPage{Page: target})
		return m, m.dispatch(m.planner.PlanPageChange(m.st, target))

	case key.Matches(msg, keys.NextPage):
		if !info.HasNextPage {
			return m, nil
		}
		target := info.CurrentPage + 1
		m.st = store.Reduce(m.st, store.SetCurrentPage{Page: target})
		return m, m.dispatch(m.planner.PlanPageChange(m.st, target))

	case key.Matches(msg, keys.PageSize):
		next := nextPageSize(m.st.Pagination.ItemsPerPage)
		m.st = store.Reduce(m.st, store.SetItemsPerPage{Limit: next})
		return m, m.dispatch(m.planner.PlanPageSizeChange(m.st, next))

	case key.Matches(msg, keys.New):
		m.st = store.Reduce(m.st, store.ClearSelectedUser{})
		m.st = store.Reduce(m.st, store.ToggleCreateModal{})
		m.form = newUserForm()
		m.form.editing = false
		m.state = stateForm
		return m, textinput.Blink

	case key.Matches(msg, keys.Edit):
		u, ok := m.highlighted()
		if !ok {
			return m, nil
		}
		m.st = store.Reduce(m.st, store.SetSelectedUser{User: u})
		m.st = store.Reduce(m.st, store.ToggleEditModal{})
		m.form = newUserForm()
		m.form.editing = true
		m.form.editID = u.ID
		m.form.load(u)
		m.state = stateForm
		return m, textinput.Blink

	case key.Matches(msg, keys.Delete):
		u, ok := m.highlighted()
		if !ok {
			return m, nil
		}
		m.st = store.Reduce(m.st, store.SetSelectedUser{User: u})
		m.state = stateConfirmDelete
		return m, nil

	case key.Matches(msg, keys.Toggle):
		if u, ok := m.highlighted(); ok {
			if m.checked[u.ID] {
				delete(m.checked, u.ID)
			} else {
				m.checked[u.ID] = true
			}
			m.syncTable()
		}
		return m, nil

	case key.Matches(msg, keys.SelectAll):
		if len(m.checked) == len(m.rowIDs) {
			m.checked = map[int64]bool{}
		} else {
			for _, id := range m.rowIDs {
				m.checked[id] = true
			}
		}
		m.syncTable()
		return m, nil

	case key.Matches(msg, keys.Filter):
		m.companyFilter = m.companyFilter.Next()
		m.syncTable()
		return m, nil

	case key.Matches(msg, keys.Refresh):
		return m, m.dispatch(m.planner.PlanRefresh(m.st))

	case key.Matches(msg, keys.Reset):
		m.st = store.Reduce(m.st, store.ResetFilters{})
		m.search.SetValue("")
		m.companyFilter = store.CompanyFilterAll
		return m, m.dispatch(m.planner.PlanReset(m.st))

	case key.Matches(msg, keys.Dismiss):
		m.errDismissed = true
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "esc":
		m.st = store.Reduce(m.st, store.CloseAllModals{})
		m.st = store.Reduce(m.st, store.ClearSelectedUser{})
		m.state = stateBrowse
		return m, nil

	case "tab", "down":
		return m, m.form.cycle(1)

	case "shift+tab", "up":
		return m, m.form.cycle(-1)

	case "enter":
		if m.form.focus < len(m.form.fields)-1 {
			return m, m.form.cycle(1)
		}
		fallthrough

	case "ctrl+s":
		data := m.form.user()
		if m.form.editing {
			m.st = store.Reduce(m.st, store.UpdateRequested{})
			return m, m.updateCmd(m.form.editID, data)
		}
		m.st = store.Reduce(m.st, store.CreateRequested{})
		return m, m.createCmd(data)
	}

	var cmd tea.Cmd
	m.form.fields[m.form.focus], cmd = m.form.fields[m.form.focus].Update(msg)
	return m, cmd
}

func (m model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		m.state = stateBrowse
		if m.st.Selected == nil {
			return m, nil
		}
		id := m.st.Selected.ID
		m.st = store.Reduce(m.st, store.DeleteRequested{})
		return m, m.deleteCmd(id)

	case "n", "esc":
		m.st = store.Reduce(m.st, store.ClearSelectedUser{})
		m.state = stateBrowse
		return m, nil

	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func nextPageSize(current int) int {
	for i, s := range pageSizes {
		if s == current {
			return pageSizes[(i+1)%len(pageSizes)]
		}
	}
	return pageSizes[0]
}

func (m model) View() string {
	if m.quitting {
		return "Bye!\n"
	}

	header := ui.HeaderStyle.Render(" USERDECK ") + "\n"
	subHeader := ui.SubHeaderStyle.Render("Manage your customers efficiently") + "\n"

	switch m.state {
	case stateForm:
		return header + subHeader + m.formView()
	case stateConfirmDelete:
		return header + subHeader + m.confirmView()
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteString(subHeader)

	loading := m.st.LoadingStates()

	searchLine := "  " + ui.InputLabelStyle.Render("Search: ") + m.search.View()
	if m.companyFilter != store.CompanyFilterAll {
		searchLine += "  " + ui.MutedStyle.Render("filter: "+string(m.companyFilter))
	}
	if loading.IsAnyLoading {
		searchLine += "  " + m.spinner.View()
	}
	b.WriteString(searchLine + "\n")

	if m.st.Err != "" && !m.errDismissed {
		b.WriteString(ui.ErrorBannerStyle.Render("✘ "+m.st.Err+" — r: retry • x: dismiss") + "\n")
	}

	if res := m.st.SearchResults(); res.HasSearchTerm {
		line := fmt.Sprintf("%d results for %q", res.ResultCount, res.SearchTerm)
		if !res.HasResults {
			line = fmt.Sprintf("no results for %q", res.SearchTerm)
		}
		b.WriteString(ui.MutedStyle.PaddingLeft(2).Render(line) + "\n")
	}

	b.WriteString(m.table.View() + "\n")

	info := m.st.PaginationInfo()
	pager := fmt.Sprintf("%d-%d of %d • page %d/%d • %d per page",
		info.StartItem, info.EndItem, info.TotalItems,
		info.CurrentPage, info.TotalPages, info.ItemsPerPage)
	if len(m.checked) > 0 {
		pager += fmt.Sprintf(" • %d marked", len(m.checked))
	}
	b.WriteString(ui.MutedStyle.PaddingLeft(2).Render(pager) + "\n")

	if m.notice != nil {
		style := ui.NoticeSuccessStyle
		if !m.notice.success {
			style = ui.NoticeErrorStyle
		}
		b.WriteString(style.Render(m.notice.text) + "\n")
	}

	b.WriteString(ui.FooterStyle.Render(m.help.View(keys)))
	return b.String()
}

func (m model) formView() string {
	title := "Add customer"
	if m.form.editing {
		title = "Edit customer"
	}

	var b strings.Builder
	b.WriteString(ui.SectionTitleStyle.Render(title) + "\n\n")
	for i, field := range m.form.fields {
		label := ui.InfoKeyStyle.Render(formLabels[i])
		b.WriteString(label + " " + field.View() + "\n")
	}

	loading := m.st.LoadingStates()
	if loading.IsCreating || loading.IsUpdating {
		b.WriteString("\n" + m.spinner.View() + " saving...")
	}
	if m.notice != nil && !m.notice.success {
		b.WriteString("\n" + ui.NoticeErrorStyle.Render(m.notice.text))
	}

	body := ui.CardStyle.Render(b.String())
	footer := ui.FooterStyle.Render("▸ Tab: next field • Ctrl+S: save • Esc: cancel")
	return body + "\n" + footer
}

func (m model) confirmView() string {
	name := "this customer"
	if m.st.Selected != nil {
		name = m.st.Selected.Name
	}
	content := ui.ErrorTextStyle.Render("Delete "+name+"?") + "\n\n" +
		ui.MutedStyle.Render("This removes the record from the remote collection.")
	body := ui.CardStyle.Render(content)
	footer := ui.FooterStyle.Render("▸ y: delete • n: keep")
	return body + "\n" + footer
}

func main() {
	cfg := config.Load()

	logWriter := io.Discard
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			fmt.Printf("Error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logWriter = f
	}
	log := zerolog.New(logWriter).With().Timestamp().Logger()
	log.Info().Str("base_url", cfg.APIBaseURL).Int("page_size", cfg.PageSize).Msg("console starting")

	p := tea.NewProgram(initialModel(cfg, log))
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running userdeck: %v\n", err)
		os.Exit(1)
	}
}
