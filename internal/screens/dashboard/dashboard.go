package dashboard

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/glowpro/glowpro/internal/analysis"
	"github.com/glowpro/glowpro/internal/catalog"
	"github.com/glowpro/glowpro/internal/progress"
	"github.com/glowpro/glowpro/internal/quiz"
	"github.com/glowpro/glowpro/internal/router"
	"github.com/glowpro/glowpro/internal/routine"
	"github.com/glowpro/glowpro/internal/screen"
	"github.com/glowpro/glowpro/internal/screens/placeholder"
	"github.com/glowpro/glowpro/internal/store"
	"github.com/glowpro/glowpro/internal/ui/components"
	"github.com/glowpro/glowpro/internal/ui/layout"
	"github.com/glowpro/glowpro/internal/wizard"
)

// Session is what the dashboard shows: the results of the onboarding flow.
type Session struct {
	Answers quiz.Answers
	Photo   *analysis.Photo
	Result  *analysis.Result
}

// Dashboard is the tabbed main app shown after the analysis.
type Dashboard struct {
	ctx    context.Context
	events store.EventRepo
	now    func() time.Time

	session  Session
	routine  *routine.Tracker
	progress *progress.Tracker
	products []catalog.Product

	tab           wizard.Tab
	scroll        map[wizard.Tab]int
	expanded      routine.PeriodID
	stepCursor    int
	showGuide     bool
	productCursor int
	profileMenu   components.Menu
}

var _ screen.Screen = (*Dashboard)(nil)

// New creates the dashboard for a finished onboarding. events may be nil.
func New(ctx context.Context, events store.EventRepo, s Session) *Dashboard {
	d := &Dashboard{
		ctx:      ctx,
		events:   events,
		now:      time.Now,
		session:  s,
		routine:  routine.NewTracker(routine.DefaultPeriods()),
		products: catalog.Products(s.Answers.Text(quiz.IDSkinType)),
		scroll:   make(map[wizard.Tab]int),
		expanded: routine.Morning,
		// First morning step; row 0 is the morning header.
		stepCursor: 1,
	}
	d.progress = progress.NewTracker(progress.SeedSnapshot(d.photoRef(), d.now()))
	d.profileMenu = components.NewMenu([]components.MenuItem{
		{Label: "Refazer Quiz", Disabled: true},
		{Label: "Configurações", Action: func() tea.Cmd {
			return func() tea.Msg { return router.PushScreenMsg{Screen: placeholder.New("Configurações")} }
		}},
		{Label: "Sair", Action: func() tea.Cmd { return tea.Quit }},
	})
	return d
}

func (d *Dashboard) photoRef() string {
	if d.session.Photo == nil {
		return ""
	}
	return d.session.Photo.Name
}

// Tab returns the visible tab.
func (d *Dashboard) Tab() wizard.Tab { return d.tab }

// Routine returns the routine tracker.
func (d *Dashboard) Routine() *routine.Tracker { return d.routine }

// Progress returns the progress tracker.
func (d *Dashboard) Progress() *progress.Tracker { return d.progress }

func (d *Dashboard) Title() string {
	return d.tab.Label()
}

func (d *Dashboard) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "←→", Description: "Abas"}}
	switch d.tab {
	case wizard.TabProgress:
		hints = append(hints, layout.KeyHint{Key: "a", Description: "Nova foto"})
	case wizard.TabRoutine:
		hints = append(hints,
			layout.KeyHint{Key: "↑↓", Description: "Navegar"},
			layout.KeyHint{Key: "Espaço", Description: "Concluir/abrir"},
			layout.KeyHint{Key: "g", Description: "Guia facial"},
		)
	case wizard.TabProducts:
		hints = append(hints,
			layout.KeyHint{Key: "↑↓", Description: "Navegar"},
			layout.KeyHint{Key: "Enter", Description: "Detalhes"},
		)
	case wizard.TabProfile:
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Selecionar"})
	default:
		hints = append(hints, layout.KeyHint{Key: "↑↓", Description: "Rolar"})
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Sair"})
}

func (d *Dashboard) Init() tea.Cmd {
	return nil
}

func (d *Dashboard) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return d, nil
	}

	key := kmsg.String()
	switch key {
	case "right", "tab":
		d.tab = d.tab.Next()
		return d, nil
	case "left", "shift+tab":
		d.tab = d.tab.Prev()
		return d, nil
	case "1", "2", "3", "4", "5":
		d.tab = wizard.AllTabs()[key[0]-'1']
		return d, nil
	case "pgdown":
		d.scroll[d.tab] += 5
		return d, nil
	case "pgup":
		d.scroll[d.tab] = max(d.scroll[d.tab]-5, 0)
		return d, nil
	}

	switch d.tab {
	case wizard.TabProgress:
		return d, d.updateProgress(key)
	case wizard.TabRoutine:
		return d, d.updateRoutine(key)
	case wizard.TabProducts:
		return d, d.updateProducts(key)
	case wizard.TabProfile:
		var cmd tea.Cmd
		d.profileMenu, cmd = d.profileMenu.Update(msg)
		return d, cmd
	default:
		d.updateScroll(key)
		return d, nil
	}
}

// updateScroll moves a cursorless tab's viewport.
func (d *Dashboard) updateScroll(key string) {
	switch key {
	case "down", "j":
		d.scroll[d.tab]++
	case "up", "k":
		d.scroll[d.tab] = max(d.scroll[d.tab]-1, 0)
	}
}

// record returns a command that appends an activity event off the event loop.
func (d *Dashboard) record(kind store.ActivityKind, detail string) tea.Cmd {
	if d.events == nil {
		return nil
	}
	ctx, repo := d.ctx, d.events
	return func() tea.Msg {
		store.RecordActivity(ctx, repo, kind, detail)
		return nil
	}
}

func (d *Dashboard) View(width, height int) string {
	cw := components.ContentWidth(width)

	labels := make([]string, 0, len(wizard.AllTabs()))
	for _, t := range wizard.AllTabs() {
		labels = append(labels, t.Label())
	}
	tabBar := layout.RenderTabBar(labels, int(d.tab))

	var body string
	focus := -1
	switch d.tab {
	case wizard.TabHome:
		body = d.viewHome(cw)
	case wizard.TabProgress:
		body = d.viewProgress(cw)
	case wizard.TabRoutine:
		body, focus = d.viewRoutine(cw)
	case wizard.TabProducts:
		body, focus = d.viewProducts(cw)
	case wizard.TabProfile:
		body = d.viewProfile(cw)
	}

	bodyHeight := height - lipgloss.Height(tabBar) - 1
	body = d.clip(body, bodyHeight, focus)

	content := lipgloss.JoinVertical(lipgloss.Left, tabBar, "", body)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, content)
}

// clip returns the window of body that fits in height lines, starting at
// the tab's scroll offset and moved so the focus line stays visible.
func (d *Dashboard) clip(body string, height, focus int) string {
	lines := strings.Split(body, "\n")
	if height <= 0 || len(lines) <= height {
		d.scroll[d.tab] = 0
		return body
	}

	offset := d.scroll[d.tab]
	if focus >= 0 {
		if focus < offset {
			offset = focus
		} else if focus >= offset+height {
			offset = focus - height + 1
		}
	}
	offset = min(max(offset, 0), len(lines)-height)
	d.scroll[d.tab] = offset

	return strings.Join(lines[offset:offset+height], "\n")
}
