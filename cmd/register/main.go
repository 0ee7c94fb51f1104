package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"userdeck/internal/models"
	"userdeck/internal/register"
	"userdeck/internal/ui"
	"userdeck/internal/validation"
)

// Personal-step focus slots. Slot 3 is the greeting selector; the rest
// are text inputs.
const (
	slotFullName = iota
	slotEmail
	slotPhone
	slotGreeting
	slotLinkedin
	slotSocial
	personalSlots
)

// Content-step sections, in tab order. The educator-only sections are
// skipped for mentors.
const (
	secMentee = iota
	secSharing
	secYears
	secExpertise
	secEducation
	secCerts
	contentSections
)

type model struct {
	wiz *register.Wizard

	roleCursor int

	inputs        []textinput.Model // fullName, email, phone, linkedin, social
	personalFocus int
	greetingIdx   int

	section       int
	menteeCursor  int
	sharingCursor int
	expertiseIdx  int
	educationIdx  int
	yearsInput    textinput.Model
	certInput     textinput.Model

	submitted  *register.Submission
	jumpNotice string
	quitting   bool
}

func initialModel() model {
	placeholders := []string{
		"Full name", "Email", "Phone (10 digits)",
		"LinkedIn URL", "Social media URL",
	}
	inputs := make([]textinput.Model, len(placeholders))
	for i, p := range placeholders {
		ti := textinput.New()
		ti.Placeholder = p
		ti.CharLimit = 120
		ti.Width = 44
		inputs[i] = ti
	}

	years := textinput.New()
	years.Placeholder = "Years of experience"
	years.CharLimit = 2
	years.Width = 20

	certs := textinput.New()
	certs.Placeholder = "Path to certification file, enter to add"
	certs.CharLimit = 200
	certs.Width = 44

	return model{
		wiz:        register.NewWizard(),
		inputs:     inputs,
		yearsInput: years,
		certInput:  certs,
	}
}

func (m model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// syncBag copies the widget values into the wizard's data bag before
// any validation runs.
func (m *model) syncBag() {
	if len(register.RoleOptions) > 0 {
		m.wiz.Bag.Role = register.RoleOptions[m.roleCursor].Value()
	}
	m.wiz.Bag.FullName = strings.TrimSpace(m.inputs[0].Value())
	m.wiz.Bag.Email = strings.TrimSpace(m.inputs[1].Value())
	m.wiz.Bag.PhoneNumber = strings.TrimSpace(m.inputs[2].Value())
	m.wiz.Bag.Greeting = register.GreetingOptions[m.greetingIdx].Value()
	m.wiz.Bag.LinkedinURL = strings.TrimSpace(m.inputs[3].Value())
	m.wiz.Bag.SocialMediaURL = strings.TrimSpace(m.inputs[4].Value())

	if n, err := strconv.Atoi(strings.TrimSpace(m.yearsInput.Value())); err == nil {
		m.wiz.Bag.YearOfExperience = n
	} else {
		m.wiz.Bag.YearOfExperience = 0
	}
	m.wiz.Bag.AreaOfExpertise = register.AreaOfExpertiseOptions[m.expertiseIdx].Value()
	m.wiz.Bag.EducationBackground = register.EducationBackgroundOptions[m.educationIdx].Value()
}

func (m *model) educator() bool {
	return m.wiz.Bag.Role == validation.RoleEducator
}

func toggle(list []string, value string) []string {
	for i, v := range list {
		if v == value {
			return append(list[:i:i], list[i+1:]...)
		}
	}
	return append(list, value)
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	}

	if m.submitted != nil {
		if key.String() == "enter" {
			return initialModel(), textinput.Blink
		}
		if key.String() == "q" {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	switch key.String() {
	case "alt+1", "alt+2", "alt+3":
		m.syncBag()
		target := register.Step(key.String()[4] - '1')
		if err := m.wiz.Jump(target); err != nil {
			m.jumpNotice = err.Error()
		} else {
			m.jumpNotice = ""
		}
		return m.focusStep(), nil

	case "esc":
		m.wiz.Back()
		m.jumpNotice = ""
		return m.focusStep(), nil

	case "enter":
		// Enter advances the wizard, except on widgets where it has a
		// local meaning (adding a certification path, moving between
		// personal fields).
		switch m.wiz.Current {
		case register.StepPersonal:
			if m.personalFocus < personalSlots-1 {
				m.personalFocus++
				return m.focusPersonal(), nil
			}
		case register.StepContent:
			if m.section == secCerts && strings.TrimSpace(m.certInput.Value()) != "" {
				m.wiz.Bag.Certifications = append(m.wiz.Bag.Certifications, strings.TrimSpace(m.certInput.Value()))
				m.certInput.SetValue("")
				return m, nil
			}
		}

		m.syncBag()
		done, ok := m.wiz.Next()
		if !ok {
			return m, nil
		}
		if done {
			sub := m.wiz.Submit()
			m.submitted = &sub
		}
		return m.focusStep(), nil
	}

	switch m.wiz.Current {
	case register.StepRole:
		return m.updateRole(key)
	case register.StepPersonal:
		return m.updatePersonal(key)
	default:
		return m.updateContent(key)
	}
}

func (m model) updateRole(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "up", "k":
		if m.roleCursor > 0 {
			m.roleCursor--
		}
	case "down", "j":
		if m.roleCursor < len(register.RoleOptions)-1 {
			m.roleCursor++
		}
	case "q":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m model) focusStep() model {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.yearsInput.Blur()
	m.certInput.Blur()

	switch m.wiz.Current {
	case register.StepPersonal:
		m.personalFocus = slotFullName
		m.inputs[0].Focus()
	case register.StepContent:
		m.section = secMentee
	}
	return m
}

func (m model) focusPersonal() model {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	if idx, isInput := personalInputIndex(m.personalFocus); isInput {
		m.inputs[idx].Focus()
	}
	return m
}

// personalInputIndex maps a focus slot to its text input, when it has
// one (the greeting slot is a selector).
func personalInputIndex(slot int) (int, bool) {
	switch slot {
	case slotFullName:
		return 0, true
	case slotEmail:
		return 1, true
	case slotPhone:
		return 2, true
	case slotLinkedin:
		return 3, true
	case slotSocial:
		return 4, true
	}
	return 0, false
}

func (m model) updatePersonal(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "tab", "down":
		m.personalFocus = (m.personalFocus + 1) % personalSlots
		return m.focusPersonal(), nil
	case "shift+tab", "up":
		m.personalFocus = (m.personalFocus + personalSlots - 1) % personalSlots
		return m.focusPersonal(), nil
	}

	if m.personalFocus == slotGreeting {
		switch key.String() {
		case "left", "h":
			m.greetingIdx = (m.greetingIdx + len(register.GreetingOptions) - 1) % len(register.GreetingOptions)
		case "right", "l", " ":
			m.greetingIdx = (m.greetingIdx + 1) % len(register.GreetingOptions)
		}
		return m, nil
	}

	idx, _ := personalInputIndex(m.personalFocus)
	var cmd tea.Cmd
	m.inputs[idx], cmd = m.inputs[idx].Update(key)
	return m, cmd
}

func (m model) updateContent(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	sections := contentSections
	if !m.educator() {
		sections = secYears // mentee + sharing only
	}

	switch key.String() {
	case "tab":
		m.section = (m.section + 1) % sections
		return m.focusContent(), nil
	case "shift+tab":
		m.section = (m.section + sections - 1) % sections
		return m.focusContent(), nil
	}

	switch m.section {
	case secMentee:
		switch key.String() {
		case "up", "k":
			if m.menteeCursor > 0 {
				m.menteeCursor--
			}
		case "down", "j":
			if m.menteeCursor < len(register.MenteeLevelOptions)-1 {
				m.menteeCursor++
			}
		case " ":
			v := register.MenteeLevelOptions[m.menteeCursor].Value()
			m.wiz.Bag.MenteeLevel = toggle(m.wiz.Bag.MenteeLevel, v)
		}

	case secSharing:
		switch key.String() {
		case "up", "k":
			if m.sharingCursor > 0 {
				m.sharingCursor--
			}
		case "down", "j":
			if m.sharingCursor < len(register.SharingContentOptions)-1 {
				m.sharingCursor++
			}
		case " ":
			v := register.SharingContentOptions[m.sharingCursor].Value()
			m.wiz.Bag.SharingContent = toggle(m.wiz.Bag.SharingContent, v)
		}

	case secYears:
		var cmd tea.Cmd
		m.yearsInput, cmd = m.yearsInput.Update(key)
		return m, cmd

	case secExpertise:
		switch key.String() {
		case "left", "h":
			m.expertiseIdx = (m.expertiseIdx + len(register.AreaOfExpertiseOptions) - 1) % len(register.AreaOfExpertiseOptions)
		case "right", "l", " ":
			m.expertiseIdx = (m.expertiseIdx + 1) % len(register.AreaOfExpertiseOptions)
		}

	case secEducation:
		switch key.String() {
		case "left", "h":
			m.educationIdx = (m.educationIdx + len(register.EducationBackgroundOptions) - 1) % len(register.EducationBackgroundOptions)
		case "right", "l", " ":
			m.educationIdx = (m.educationIdx + 1) % len(register.EducationBackgroundOptions)
		}

	case secCerts:
		if key.String() == "backspace" && m.certInput.Value() == "" && len(m.wiz.Bag.Certifications) > 0 {
			m.wiz.Bag.Certifications = m.wiz.Bag.Certifications[:len(m.wiz.Bag.Certifications)-1]
			return m, nil
		}
		var cmd tea.Cmd
		m.certInput, cmd = m.certInput.Update(key)
		return m, cmd
	}

	return m, nil
}

func (m model) focusContent() model {
	m.yearsInput.Blur()
	m.certInput.Blur()
	switch m.section {
	case secYears:
		m.yearsInput.Focus()
	case secCerts:
		m.certInput.Focus()
	}
	return m
}

func (m model) View() string {
	if m.quitting {
		return "Bye!\n"
	}

	header := ui.HeaderStyle.Render(" BECOME AN EXPERT ") + "\n"
	tabs := m.tabsView() + "\n"

	if m.submitted != nil {
		return header + tabs + m.successView()
	}

	var body string
	switch m.wiz.Current {
	case register.StepRole:
		body = m.roleView()
	case register.StepPersonal:
		body = m.personalView()
	default:
		body = m.contentView()
	}

	footer := ui.FooterStyle.Render("▸ Enter: continue • Esc: back • Alt+1..3: jump to step • Ctrl+C: exit")
	if m.jumpNotice != "" {
		footer = ui.ErrorTextStyle.Render("✘ "+m.jumpNotice) + "\n" + footer
	}
	return header + tabs + body + "\n" + footer
}

func (m model) tabsView() string {
	var parts []string
	for _, s := range register.Steps() {
		label := fmt.Sprintf("%d. %s", int(s)+1, s.Label())
		style := ui.StepPendingStyle
		switch {
		case s == m.wiz.Current:
			style = ui.StepActiveStyle
		case m.wiz.Completed[s]:
			style = ui.StepDoneStyle
			label = "✓ " + label
		}
		parts = append(parts, style.Render(label))
	}
	return "  " + strings.Join(parts, " ")
}

func (m model) fieldError(field string) string {
	if msg, ok := m.wiz.Errors[field]; ok {
		return "\n" + ui.ErrorTextStyle.Render("✘ "+msg)
	}
	return ""
}

func (m model) roleView() string {
	var b strings.Builder
	b.WriteString(ui.SectionTitleStyle.Render(m.wiz.Current.Description()) + "\n\n")
	for i, opt := range register.RoleOptions {
		cursor := "  "
		line := opt.Label()
		if i == m.roleCursor {
			cursor = ui.SelectedStyle.Render("▸ ")
			line = ui.SelectedStyle.Render(line)
		}
		b.WriteString(cursor + line + "\n")
		b.WriteString("    " + ui.MutedStyle.Render(opt.Description()) + "\n")
	}
	b.WriteString(m.fieldError("role"))
	return ui.CardStyle.Render(b.String())
}

func (m model) personalView() string {
	var b strings.Builder
	b.WriteString(ui.SectionTitleStyle.Render(m.wiz.Current.Description()) + "\n\n")

	labels := []string{"Full name", "Email", "Phone", "LinkedIn", "Social media"}
	errKeys := []string{"fullName", "email", "phoneNumber", "linkedinUrl", "socialMediaUrl"}
	inputIdx := 0
	for slot := 0; slot < personalSlots; slot++ {
		if slot == slotGreeting {
			marker := "  "
			if m.personalFocus == slotGreeting {
				marker = ui.SelectedStyle.Render("▸ ")
			}
			b.WriteString(marker + ui.InfoKeyStyle.Render("Greeting") +
				selectorView(register.GreetingOptions, m.greetingIdx))
			b.WriteString(m.fieldError("greeting") + "\n")
			continue
		}
		b.WriteString("  " + ui.InfoKeyStyle.Render(labels[inputIdx]) + m.inputs[inputIdx].View())
		b.WriteString(m.fieldError(errKeys[inputIdx]) + "\n")
		inputIdx++
	}
	return ui.CardStyle.Render(b.String())
}

func selectorView(opts []models.Option, idx int) string {
	return ui.MutedStyle.Render("◂ ") + ui.InfoValueStyle.Render(opts[idx].Label()) + ui.MutedStyle.Render(" ▸")
}

func (m model) checklistView(title string, opts []models.Option, cursor int, chosen []string, active bool) string {
	var b strings.Builder
	style := ui.MutedStyle
	if active {
		style = ui.SectionTitleStyle
	}
	b.WriteString(style.Render(title) + "\n")
	for i, opt := range opts {
		mark := "[ ]"
		if contains(chosen, opt.Value()) {
			mark = "[✓]"
		}
		line := fmt.Sprintf("%s %s", mark, opt.Label())
		if active && i == cursor {
			line = ui.SelectedStyle.Render("▸ " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (m model) contentView() string {
	var b strings.Builder
	b.WriteString(ui.SectionTitleStyle.Render(m.wiz.Current.Description()) + "\n\n")

	b.WriteString(m.checklistView("Mentee levels", register.MenteeLevelOptions,
		m.menteeCursor, m.wiz.Bag.MenteeLevel, m.section == secMentee))
	b.WriteString(m.fieldError("menteeLevel") + "\n")

	b.WriteString(m.checklistView("Sharing topics", register.SharingContentOptions,
		m.sharingCursor, m.wiz.Bag.SharingContent, m.section == secSharing))
	b.WriteString(m.fieldError("sharingContent") + "\n")

	if m.educator() {
		b.WriteString(ui.InfoKeyStyle.Render("Years of exp.") + m.yearsInput.View())
		b.WriteString(m.fieldError("yearOfExperience") + "\n")

		b.WriteString(ui.InfoKeyStyle.Render("Expertise") +
			selectorView(register.AreaOfExpertiseOptions, m.expertiseIdx))
		b.WriteString(m.fieldError("areaOfExpertise") + "\n")

		b.WriteString(ui.InfoKeyStyle.Render("Education") +
			selectorView(register.EducationBackgroundOptions, m.educationIdx))
		b.WriteString(m.fieldError("educationBackground") + "\n")

		b.WriteString(ui.InfoKeyStyle.Render("Certifications") + m.certInput.View() + "\n")
		for _, c := range m.wiz.Bag.Certifications {
			b.WriteString("    " + ui.MutedStyle.Render("• "+c) + "\n")
		}
		b.WriteString(m.fieldError("certifications"))
	}

	return ui.CardStyle.Render(b.String())
}

func (m model) successView() string {
	sub := m.submitted
	var b strings.Builder
	b.WriteString(ui.SuccessStyle().Render("✓ Registration complete!") + "\n\n")
	b.WriteString(ui.MutedStyle.Render("We will get in touch soon.") + "\n\n")
	b.WriteString(ui.InfoKeyStyle.Render("Role") + ui.InfoValueStyle.Render(sub.Role) + "\n")
	b.WriteString(ui.InfoKeyStyle.Render("Name") + ui.InfoValueStyle.Render(sub.FullName) + "\n")
	b.WriteString(ui.InfoKeyStyle.Render("Email") + ui.InfoValueStyle.Render(sub.Email) + "\n")
	b.WriteString(ui.InfoKeyStyle.Render("Phone") + ui.InfoValueStyle.Render(sub.PhoneNumber) + "\n")
	b.WriteString(ui.InfoKeyStyle.Render("Mentees") + ui.InfoValueStyle.Render(strings.Join(sub.MenteeLevel, ", ")) + "\n")
	b.WriteString(ui.InfoKeyStyle.Render("Topics") + ui.InfoValueStyle.Render(strings.Join(sub.SharingContent, ", ")) + "\n")
	if sub.Role == validation.RoleEducator {
		b.WriteString(ui.InfoKeyStyle.Render("Experience") + ui.InfoValueStyle.Render(strconv.Itoa(sub.YearOfExperience)+" years") + "\n")
		b.WriteString(ui.InfoKeyStyle.Render("Expertise") + ui.InfoValueStyle.Render(sub.AreaOfExpertise) + "\n")
		b.WriteString(ui.InfoKeyStyle.Render("Education") + ui.InfoValueStyle.Render(sub.EducationBackground) + "\n")
		b.WriteString(ui.InfoKeyStyle.Render("Certifications") + ui.InfoValueStyle.Render(strings.Join(sub.Certifications, ", ")) + "\n")
	}
	body := ui.CardStyle.Render(b.String())
	footer := ui.FooterStyle.Render("▸ Enter: register another • q: exit")
	return body + "\n" + footer
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running registration: %v\n", err)
		os.Exit(1)
	}
}
