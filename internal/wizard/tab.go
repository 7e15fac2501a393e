package wizard

// Tab selects which dashboard view is visible.
type Tab int

const (
	TabHome Tab = iota
	TabProgress
	TabRoutine
	TabProducts
	TabProfile
)

// AllTabs returns the dashboard tabs in navigation order.
func AllTabs() []Tab {
	return []Tab{TabHome, TabProgress, TabRoutine, TabProducts, TabProfile}
}

// Label returns the navigation label for the tab.
func (t Tab) Label() string {
	switch t {
	case TabHome:
		return "Início"
	case TabProgress:
		return "Progresso"
	case TabRoutine:
		return "Rotina"
	case TabProducts:
		return "Produtos"
	case TabProfile:
		return "Perfil"
	default:
		return ""
	}
}

// Next returns the tab to the right, wrapping around.
func (t Tab) Next() Tab {
	return Tab((int(t) + 1) % len(AllTabs()))
}

// Prev returns the tab to the left, wrapping around.
func (t Tab) Prev() Tab {
	n := len(AllTabs())
	return Tab((int(t) - 1 + n) % n)
}
