package placeholder

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
)

func TestPlaceholderScreen(t *testing.T) {
	p := New("Configurações")
	assert.Equal(t, "Configurações", p.Title())
	assert.Nil(t, p.Init())

	next, cmd := p.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Same(t, p, next)
	assert.Nil(t, cmd)

	view := p.View(80, 20)
	assert.Contains(t, view, "Em breve")
	assert.Contains(t, view, "Configurações")
}
