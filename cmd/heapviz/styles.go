package main

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.Color("#7D56F4")
	errorColor   = lipgloss.Color("#FF4B4B")
	mutedColor   = lipgloss.Color("#666666")

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	statusStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	messageStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(errorColor)

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)
)
