package tui

import (
	"fmt"
	"strings"
)

// View renders the inspector: a header naming the bundle and context, the
// resolved tree in a scrollable viewport, and a key hint footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	header := titleStyle.Render(fmt.Sprintf("%s — %s", m.bundle.Name(), m.ctx))

	body := m.renderResolved()
	if m.ready {
		body = m.viewport.View()
	}

	footer := helpStyle.Render("a: appearance  i: idiom  ↑/↓: scroll  q: quit")

	return strings.Join([]string{header, body, footer}, "\n")
}

// renderResolved formats the resolved document in paint order, so what reads
// top-to-bottom on screen is what a renderer would draw first-to-last.
func (m Model) renderResolved() string {
	if m.resolveErr != nil {
		return errorStyle.Render(fmt.Sprintf("resolution failed: %v", m.resolveErr))
	}

	var b strings.Builder
	b.WriteString(sectionStyle.Render("background"))
	b.WriteString("\n  ")
	b.WriteString(valueStyle.Render(m.resolved.Fill.String()))
	b.WriteString("\n")

	for gi, group := range m.resolved.GroupsInPaintOrder() {
		b.WriteString(sectionStyle.Render(fmt.Sprintf("group %d", gi)))
		b.WriteString(fmt.Sprintf("  blur=%g specular=%t", group.BlurMaterial, group.Specular))
		if group.Hidden {
			b.WriteString(dimStyle.Render("  (hidden)"))
		}
		b.WriteString("\n")

		for _, layer := range group.LayersInPaintOrder() {
			name := layer.Name
			if name == "" {
				name = layer.ImageName
			}
			line := fmt.Sprintf("  %s  image=%s opacity=%g blend=%s scale=%g",
				name, layer.ImageName, layer.Opacity, layer.BlendMode, layer.Position.Scale)
			if layer.Fill != nil {
				line += fmt.Sprintf(" fill=%s", layer.Fill.String())
			}
			if layer.Hidden {
				b.WriteString(dimStyle.Render(line))
			} else {
				b.WriteString(valueStyle.Render(line))
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}
