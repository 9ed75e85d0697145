// Package tui provides an interactive halo explorer built on Bubble Tea.
//
// The explorer re-renders the rotation curve as halo parameters are
// adjusted from the keyboard:
//
//	up/down    - select parameter
//	left/right - decrease/increase the selected parameter
//	l          - toggle log-spaced radii
//	r          - reset to defaults
//	q          - quit
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/halosim/internal/astro"
	"github.com/san-kum/halosim/internal/config"
	"github.com/san-kum/halosim/internal/curve"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	red    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

const (
	paramMass = iota
	paramScaleRadius
	paramConcentration
	numParams
)

var paramLabels = [numParams]string{"total mass", "scale radius", "concentration"}

type Explorer struct {
	totalMass     float64
	scaleRadius   float64
	concentration float64

	cursor  int
	logGrid bool

	halo   *astro.Halo
	result *curve.Result
	err    error

	width  int
	height int
}

func NewExplorer(cfg *config.Config) *Explorer {
	e := &Explorer{
		totalMass:     cfg.Halo.TotalMass,
		scaleRadius:   cfg.Halo.ScaleRadius,
		concentration: cfg.Halo.Concentration,
		logGrid:       cfg.Grid.Log,
		width:         80,
		height:        24,
	}
	e.resample()
	return e
}

func (e *Explorer) resample() {
	e.halo, e.err = astro.NewHaloWithConcentration(e.totalMass, e.scaleRadius, e.concentration)
	if e.err != nil {
		e.result = nil
		return
	}
	g := curve.Grid{
		Min:    e.scaleRadius / 20,
		Max:    e.halo.VirialRadius() * 1.2,
		Points: 70,
		Log:    e.logGrid,
	}
	e.result, e.err = curve.Sample(e.halo, g)
}

func (e *Explorer) Init() tea.Cmd { return nil }

func (e *Explorer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		e.width = msg.Width
		e.height = msg.Height
		return e, nil
	case tea.KeyMsg:
		return e.handleKey(msg)
	}
	return e, nil
}

func (e *Explorer) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return e, tea.Quit
	case "up", "k":
		if e.cursor > 0 {
			e.cursor--
		}
	case "down", "j":
		if e.cursor < numParams-1 {
			e.cursor++
		}
	case "left", "h":
		e.adjust(-1)
	case "right":
		e.adjust(1)
	case "l":
		e.logGrid = !e.logGrid
		e.resample()
	case "r":
		e.totalMass = config.DefaultTotalMass
		e.scaleRadius = config.DefaultScaleRadius
		e.concentration = config.DefaultConcentration
		e.resample()
	}
	return e, nil
}

func (e *Explorer) adjust(dir int) {
	switch e.cursor {
	case paramMass:
		if dir > 0 {
			e.totalMass *= 1.25
		} else {
			e.totalMass /= 1.25
		}
	case paramScaleRadius:
		e.scaleRadius += float64(dir)
		if e.scaleRadius < 1 {
			e.scaleRadius = 1
		}
	case paramConcentration:
		e.concentration += float64(dir) * 0.5
		if e.concentration < 0.5 {
			e.concentration = 0.5
		}
	}
	e.resample()
}

func (e *Explorer) View() string {
	var b strings.Builder

	b.WriteString(cyan.Render("halo explorer"))
	b.WriteString(dim.Render("  (NFW rotation curve)"))
	b.WriteString("\n\n")

	if e.err != nil {
		b.WriteString(red.Render(fmt.Sprintf("error: %v", e.err)))
		b.WriteString("\n")
		return b.String()
	}

	plotWidth := e.width - 12
	if plotWidth < 30 {
		plotWidth = 30
	}
	graph := asciigraph.Plot(e.result.Velocities,
		asciigraph.Height(12),
		asciigraph.Width(plotWidth),
		asciigraph.Caption("v (km/s) vs radius"),
	)
	b.WriteString(graph)
	b.WriteString("\n\n")

	values := [numParams]string{
		fmt.Sprintf("%.3g Msun", e.totalMass),
		fmt.Sprintf("%.1f kpc", e.scaleRadius),
		fmt.Sprintf("%.1f", e.concentration),
	}
	for i := 0; i < numParams; i++ {
		marker := "  "
		style := white
		if i == e.cursor {
			marker = "> "
			style = yellow
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n",
			marker,
			style.Render(fmt.Sprintf("%-14s", paramLabels[i])),
			style.Render(values[i]),
		))
	}

	b.WriteString("\n")
	b.WriteString(green.Render(fmt.Sprintf("v_peak %.1f km/s at %.1f kpc   v_virial %.1f km/s",
		e.result.Metrics["v_peak"],
		e.result.Metrics["r_peak"],
		e.result.Metrics["v_virial"],
	)))
	grid := "linear"
	if e.logGrid {
		grid = "log"
	}
	b.WriteString("\n")
	b.WriteString(dim.Render(fmt.Sprintf("grid: %s   ↑/↓ select  ←/→ adjust  l log grid  r reset  q quit", grid)))
	b.WriteString("\n")

	return b.String()
}

// Run starts the explorer in the terminal's alt screen.
func Run(cfg *config.Config) error {
	p := tea.NewProgram(NewExplorer(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
