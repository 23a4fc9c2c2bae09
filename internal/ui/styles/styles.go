package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	Accent = lipgloss.Color("#f4722b")

	Black       = lipgloss.Color("#111111")
	Gray        = lipgloss.Color("#3e3e3e")
	GrayLight   = lipgloss.Color("240")
	GrayDark    = lipgloss.Color("#2f3030")
	GrayDarkAlt = lipgloss.Color("#0f0f0f")
	White       = lipgloss.Color("#cccccc")

	Red   = lipgloss.Color("#B8383B")
	Blue  = lipgloss.Color("#5885A2")
	Green = lipgloss.Color("#4d7455")
	Gold  = lipgloss.Color("#ffd700")
	Plum  = lipgloss.Color("#8650ac")

	ContainerBorder      = lipgloss.DoubleBorder()
	ContainerStyle       = lipgloss.NewStyle().Border(ContainerBorder).BorderForeground(Gray)
	ContainerStyleActive = lipgloss.NewStyle().Border(ContainerBorder).BorderForeground(Blue)

	HeaderContainerStyle  = lipgloss.NewStyle().Align(lipgloss.Center)
	ContentContainerStyle = lipgloss.NewStyle().Align(lipgloss.Center)
	FooterContainerStyle  = lipgloss.NewStyle().Align(lipgloss.Center)

	FocusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	BlurredStyle = lipgloss.NewStyle().Foreground(GrayLight)
	CursorStyle  = FocusedStyle
	NoStyle      = lipgloss.NewStyle()
	HelpStyle    = BlurredStyle

	FocusedSubmitButton = lipgloss.NewStyle().Foreground(Accent).Render("[ Submit ]")
	BlurredSubmitButton = fmt.Sprintf("[ %s ]", BlurredStyle.Render("Submit"))

	// Cards.
	CardStyle         = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Gray).Padding(0, 1)
	CardStyleSelected = CardStyle.BorderForeground(Accent)
	CardName          = lipgloss.NewStyle().Bold(true).Foreground(Gold)
	CardID            = lipgloss.NewStyle().Foreground(Blue)
	CardImage         = lipgloss.NewStyle().Foreground(GrayLight).Italic(true)
	Button            = lipgloss.NewStyle().Foreground(White).Background(GrayDark).Padding(0, 1)
	ButtonActive      = lipgloss.NewStyle().Foreground(Black).Background(Accent).Bold(true).Padding(0, 1)
	ButtonDanger      = lipgloss.NewStyle().Foreground(White).Background(Red).Padding(0, 1)

	// Detail panel.
	DetailName       = lipgloss.NewStyle().Bold(true).Foreground(Gold).MarginBottom(1)
	DetailBreed      = lipgloss.NewStyle().Foreground(Green).Bold(true)
	DetailTeam       = lipgloss.NewStyle().Foreground(Plum)
	DetailUnassigned = lipgloss.NewStyle().Foreground(GrayLight).Italic(true)
	PanelLabel       = lipgloss.NewStyle().Foreground(GrayLight).Align(lipgloss.Right).Width(10)
	PanelValue       = lipgloss.NewStyle().Width(40)

	StatusVersion = lipgloss.NewStyle().Foreground(Green).Bold(true).Align(lipgloss.Center).PaddingRight(1)
	StatusHelp    = lipgloss.NewStyle().Foreground(Gray).Bold(true).Align(lipgloss.Center).PaddingRight(1)
	StatusCohort  = lipgloss.NewStyle().Foreground(Accent).PaddingRight(2).PaddingLeft(1).Bold(true)
	StatusCount   = lipgloss.NewStyle().Foreground(Blue).PaddingRight(2).Bold(true)
	StatusError   = lipgloss.NewStyle().Foreground(Red).Align(lipgloss.Right).Bold(true).PaddingRight(2)
	StatusMessage = lipgloss.NewStyle().Foreground(Green).Align(lipgloss.Right).Bold(true).PaddingRight(2)

	InfoMessage  = lipgloss.NewStyle().Align(lipgloss.Center).Padding(1)
	ErrorMessage = InfoMessage.Foreground(Red)

	HelpBox = lipgloss.NewStyle().Padding(3)

	IconDog    = "🐶"
	IconImage  = "🖼"
	IconBone   = "🦴"
	IconError  = "🚨"
	IconLoader = "🐾"
)

func DetailRow(label string, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		PanelLabel.Render(label+" "),
		PanelValue.Render(value))
}

// WrapX will wrap a centered string with the supplied character up to the length specified.
func WrapX(width int, value string, character string) string {
	all := width - lipgloss.Width(value)
	if all <= 0 {
		return value
	}

	return strings.Repeat(character, all/2) + value + strings.Repeat(character, all/2)
}

func TitleBorder(border lipgloss.Border, width int, title string) lipgloss.Border {
	border.Top = WrapX(width, "║"+title+"║", border.Top)

	return border
}
