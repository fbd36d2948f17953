package ui

import (
	"fmt"
	"strings"

	"chessforge/internal/engine"
	"github.com/charmbracelet/lipgloss"
)

// Terminal size constants.
const (
	// minTerminalWidth is the minimum terminal width for the UI to render properly.
	minTerminalWidth = 40

	// minTerminalHeight is the minimum terminal height for the UI to render properly.
	minTerminalHeight = 20
)

// Style helper methods that use the theme colors.
// These methods return lipgloss styles based on the model's current theme.

// titleStyle returns the style for the main application title.
func (m Model) titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(m.theme.TitleText).
		Align(lipgloss.Center).
		Padding(1, 0)
}

// menuItemStyle returns the style for regular (unselected) menu items.
func (m Model) menuItemStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(m.theme.MenuNormal).
		Padding(0, 2)
}

// selectedItemStyle returns the style for the currently selected menu item.
func (m Model) selectedItemStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(m.theme.MenuSelected).
		Bold(true).
		Padding(0, 2)
}

// helpStyle returns the style for help text and instructions.
func (m Model) helpStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(m.theme.HelpText).
		Padding(1, 0)
}

// errorStyle returns the style for error messages.
func (m Model) errorStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(m.theme.ErrorText).
		Bold(true).
		Padding(1, 0)
}

// statusStyle returns the style for status messages.
func (m Model) statusStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(m.theme.StatusText).
		Padding(1, 0)
}

// cursorStyle returns the style for the cursor indicator.
func (m Model) cursorStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(m.theme.MenuSelected).
		Bold(true)
}

// whiteTurnStyle returns the style for white's turn indicator.
func (m Model) whiteTurnStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(m.theme.WhiteTurnText).
		Bold(true)
}

// blackTurnStyle returns the style for black's turn indicator.
func (m Model) blackTurnStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(m.theme.BlackTurnText).
		Bold(true)
}

// turnStyle returns the appropriate style for the current turn.
func (m Model) turnStyle() lipgloss.Style {
	if m.game != nil && m.game.SideToMove == engine.Black {
		return m.blackTurnStyle()
	}
	return m.whiteTurnStyle()
}

// breadcrumbStyle returns the style for navigation breadcrumbs.
func (m Model) breadcrumbStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(m.theme.HelpText).
		Italic(true)
}

// menuPrimaryStyle returns the style for primary menu items (New Game, Start).
func (m Model) menuPrimaryStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(m.theme.MenuPrimary).
		Bold(true).
		Padding(0, 2)
}

// menuSecondaryStyle returns the style for secondary menu items (Settings, Load Game, Exit).
func (m Model) menuSecondaryStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(m.theme.MenuSecondary).
		Padding(0, 2)
}

// selectedPrimaryStyle returns the style for selected primary menu items.
func (m Model) selectedPrimaryStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(m.theme.MenuSelected).
		Bold(true).
		Padding(0, 2)
}

// selectedSecondaryStyle returns the style for selected secondary menu items.
func (m Model) selectedSecondaryStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(m.theme.MenuSelected).
		Padding(0, 2)
}

// menuSeparatorStyle returns the style for menu separators.
func (m Model) menuSeparatorStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(m.theme.MenuSeparator)
}

// renderMenuSeparator returns a styled horizontal separator line for menus.
func (m Model) renderMenuSeparator() string {
	separator := "  ────────────────"
	return m.menuSeparatorStyle().Render(separator)
}

// isPrimaryAction returns true if the menu option is a primary action.
func isPrimaryAction(option string) bool {
	switch option {
	case "New Game", "Play Again":
		return true
	default:
		return false
	}
}

// renderBreadcrumb renders the navigation breadcrumb if present.
// Returns an empty string if there's no breadcrumb to display.
func (m Model) renderBreadcrumb() string {
	bc := m.breadcrumb()
	if bc == "" {
		return ""
	}
	return m.breadcrumbStyle().Render(bc) + "\n\n"
}

// renderHelpText conditionally renders help text based on config.
// Returns empty string if help text is disabled.
func (m Model) renderHelpText(text string) string {
	if !m.config.ShowHelpText {
		return ""
	}
	return m.helpStyle().Render(text)
}

// renderMinSizeWarning renders a warning when the terminal is too small.
func (m Model) renderMinSizeWarning() string {
	var b strings.Builder

	warnStyle := lipgloss.NewStyle().
		Foreground(m.theme.ErrorText).
		Bold(true)

	b.WriteString(warnStyle.Render("Terminal too small"))
	b.WriteString("\n\n")

	infoStyle := lipgloss.NewStyle().
		Foreground(m.theme.HelpText)

	b.WriteString(infoStyle.Render(fmt.Sprintf("Current: %dx%d", m.termWidth, m.termHeight)))
	b.WriteString("\n")
	b.WriteString(infoStyle.Render(fmt.Sprintf("Minimum: %dx%d", minTerminalWidth, minTerminalHeight)))
	b.WriteString("\n\n")
	b.WriteString(infoStyle.Render("Please resize your terminal."))

	return b.String()
}

// View renders the UI based on the current model state.
// This function is called by Bubbletea on every update to generate
// the string that will be displayed in the terminal.
func (m Model) View() string {
	// Check if terminal is too small to render properly
	if m.termWidth > 0 && m.termHeight > 0 {
		if m.termWidth < minTerminalWidth || m.termHeight < minTerminalHeight {
			return m.renderMinSizeWarning()
		}
	}

	// If the shortcuts overlay is active, render it over the current view
	if m.showShortcutsOverlay {
		return m.renderShortcutsOverlay()
	}

	switch m.screen {
	case ScreenMainMenu:
		return m.renderMainMenu()
	case ScreenGameTypeSelect:
		return m.renderGameTypeSelect()
	case ScreenBotSelect:
		return m.renderBotSelect()
	case ScreenColorSelect:
		return m.renderColorSelect()
	case ScreenFENInput:
		return m.renderFENInput()
	case ScreenGamePlay:
		return m.renderGamePlay()
	case ScreenGameOver:
		return m.renderGameOver()
	case ScreenSettings:
		return m.renderSettings()
	case ScreenDrawPrompt:
		return m.renderDrawPrompt()
	default:
		return "Unknown screen"
	}
}

// renderMainMenu renders the main menu screen with title, menu options,
// cursor indicator, help text, and any error or status messages.
// Menu is organized with visual separators between primary actions (game-related) and
// secondary actions (settings/exit).
func (m Model) renderMainMenu() string {
	var b strings.Builder

	// Render the application title
	title := m.titleStyle().Render("ChessForge")
	b.WriteString(title)
	b.WriteString("\n\n")

	// Track when separator has been inserted
	// Main menu structure: New Game, Load Game | Settings, Exit
	separatorInserted := false

	// Render menu options with cursor indicator for selected item
	for i, option := range m.menuOptions {
		// Check if we need to insert a separator before this item
		// Insert separator before "Settings" to separate game actions from app actions
		if option == "Settings" && !separatorInserted {
			b.WriteString(m.renderMenuSeparator())
			b.WriteString("\n")
			separatorInserted = true
		}

		cursor := "  " // Two spaces for non-selected items
		optionText := option

		isPrimary := isPrimaryAction(option)

		if i == m.menuSelection {
			// Highlight the selected item with focus indicator
			if isPrimary {
				cursor = m.cursorStyle().Render(">> ")
				optionText = m.selectedPrimaryStyle().Render(option)
			} else {
				cursor = m.cursorStyle().Render(" > ")
				optionText = m.selectedSecondaryStyle().Render(option)
			}
		} else {
			// Regular menu item styling
			if isPrimary {
				optionText = m.menuPrimaryStyle().Render(option)
			} else {
				optionText = m.menuSecondaryStyle().Render(option)
			}
		}

		b.WriteString(fmt.Sprintf("%s%s\n", cursor, optionText))
	}

	// Render help text
	helpText := m.renderHelpText("arrows/jk: navigate | enter: select | q: quit")
	if helpText != "" {
		b.WriteString("\n")
		b.WriteString(helpText)
	}

	// Render error message if present
	if m.errorMsg != "" {
		b.WriteString("\n\n")
		errorText := m.errorStyle().Render(fmt.Sprintf("Error: %s", m.errorMsg))
		b.WriteString(errorText)
	}

	// Render status message if present
	if m.statusMsg != "" {
		b.WriteString("\n\n")
		statusText := m.statusStyle().Render(m.statusMsg)
		b.WriteString(statusText)
	}

	return b.String()
}

// renderGameTypeSelect renders the GameTypeSelect screen with title, game type options,
// cursor indicator, help text, and any error or status messages.
// Game type options are styled with visual hierarchy - game modes are primary actions.
func (m Model) renderGameTypeSelect() string {
	var b strings.Builder

	// Render the application title
	title := m.titleStyle().Render("ChessForge")
	b.WriteString(title)
	b.WriteString("\n")

	// Render breadcrumb navigation
	b.WriteString(m.renderBreadcrumb())

	// Render screen header
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(m.theme.TitleText).
		Padding(0, 0, 1, 0)
	header := headerStyle.Render("Select Game Type:")
	b.WriteString(header)
	b.WriteString("\n")

	// Render menu options with cursor indicator for selected item
	// All game type options are primary actions
	for i, option := range m.menuOptions {
		cursor := "  " // Two spaces for non-selected items
		optionText := option

		if i == m.menuSelection {
			// Highlight the selected item with prominent focus indicator
			cursor = m.cursorStyle().Render(">> ")
			optionText = m.selectedPrimaryStyle().Render(option)
		} else {
			// Primary styling for all game type options
			optionText = m.menuPrimaryStyle().Render(option)
		}

		b.WriteString(fmt.Sprintf("%s%s\n", cursor, optionText))
	}

	// Render help text
	helpText := m.renderHelpText("ESC: back to menu | arrows/jk: navigate | enter: select")
	if helpText != "" {
		b.WriteString("\n")
		b.WriteString(helpText)
	}

	// Render error message if present
	if m.errorMsg != "" {
		b.WriteString("\n\n")
		errorText := m.errorStyle().Render(fmt.Sprintf("Error: %s", m.errorMsg))
		b.WriteString(errorText)
	}

	// Render status message if present
	if m.statusMsg != "" {
		b.WriteString("\n\n")
		statusText := m.statusStyle().Render(m.statusMsg)
		b.WriteString(statusText)
	}

	return b.String()
}

// renderBotSelect renders the BotSelect screen with title, bot difficulty options,
// cursor indicator, help text, and any error or status messages.
func (m Model) renderBotSelect() string {
	var b strings.Builder

	// Render the application title
	title := m.titleStyle().Render("ChessForge")
	b.WriteString(title)
	b.WriteString("\n")

	// Render breadcrumb navigation
	b.WriteString(m.renderBreadcrumb())

	// Render screen header
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(m.theme.TitleText).
		Padding(0, 0, 1, 0)
	header := headerStyle.Render("Select Bot Difficulty:")
	b.WriteString(header)
	b.WriteString("\n")

	// Render menu options with cursor indicator for selected item
	for i, option := range m.menuOptions {
		cursor := "  " // Two spaces for non-selected items
		optionText := option

		if i == m.menuSelection {
			// Highlight the selected item with focus indicator
			cursor = m.cursorStyle().Render(">> ")
			optionText = m.selectedPrimaryStyle().Render(option)
		} else {
			// Primary styling for difficulty options
			optionText = m.menuPrimaryStyle().Render(option)
		}

		b.WriteString(fmt.Sprintf("%s%s\n", cursor, optionText))
	}

	// Render help text
	helpText := m.renderHelpText("ESC: back to game type | arrows/jk: navigate | enter: select")
	if helpText != "" {
		b.WriteString("\n")
		b.WriteString(helpText)
	}

	// Render error message if present
	if m.errorMsg != "" {
		b.WriteString("\n\n")
		errorText := m.errorStyle().Render(fmt.Sprintf("Error: %s", m.errorMsg))
		b.WriteString(errorText)
	}

	// Render status message if present
	if m.statusMsg != "" {
		b.WriteString("\n\n")
		statusText := m.statusStyle().Render(m.statusMsg)
		b.WriteString(statusText)
	}

	return b.String()
}

// renderColorSelect renders the ColorSelect screen with title, color options,
// cursor indicator, help text, and any error or status messages.
func (m Model) renderColorSelect() string {
	var b strings.Builder

	// Render the application title
	title := m.titleStyle().Render("ChessForge")
	b.WriteString(title)
	b.WriteString("\n")

	// Render breadcrumb navigation
	b.WriteString(m.renderBreadcrumb())

	// Render screen header
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(m.theme.TitleText).
		Padding(0, 0, 1, 0)
	header := headerStyle.Render("Select Your Color:")
	b.WriteString(header)
	b.WriteString("\n")

	// Render menu options with cursor indicator for selected item
	for i, option := range m.menuOptions {
		cursor := "  " // Two spaces for non-selected items
		optionText := option

		if i == m.menuSelection {
			// Highlight the selected item with focus indicator
			cursor = m.cursorStyle().Render(">> ")
			optionText = m.selectedPrimaryStyle().Render(option)
		} else {
			// Primary styling for color options
			optionText = m.menuPrimaryStyle().Render(option)
		}

		b.WriteString(fmt.Sprintf("%s%s\n", cursor, optionText))
	}

	// Render help text
	helpText := m.renderHelpText("ESC: back to difficulty | arrows/jk: navigate | enter: select")
	if helpText != "" {
		b.WriteString("\n")
		b.WriteString(helpText)
	}

	// Render error message if present
	if m.errorMsg != "" {
		b.WriteString("\n\n")
		errorText := m.errorStyle().Render(fmt.Sprintf("Error: %s", m.errorMsg))
		b.WriteString(errorText)
	}

	// Render status message if present
	if m.statusMsg != "" {
		b.WriteString("\n\n")
		statusText := m.statusStyle().Render(m.statusMsg)
		b.WriteString(statusText)
	}

	return b.String()
}

// renderGamePlay renders the GamePlay screen showing the chess board.
// Displays the title, board, turn indicator, input prompt, help text, and messages.
func (m Model) renderGamePlay() string {
	var b strings.Builder

	// Render the application title
	title := m.titleStyle().Render("ChessForge")
	b.WriteString(title)
	b.WriteString("\n\n")

	// Render the chess board with selection highlighting
	renderer := NewBoardRendererWithTheme(m.config, m.theme)
	boardStr := renderer.RenderWithSelection(m.game.Board, m.selectedSquare, m.validMoves, m.blinkOn)
	b.WriteString(boardStr)

	// Render turn indicator with turn-based color
	b.WriteString("\n\n")
	turnText := "White to move"
	turnStyle := m.whiteTurnStyle()
	if m.game.SideToMove == engine.Black {
		turnText = "Black to move"
		turnStyle = m.blackTurnStyle()
	}
	b.WriteString(turnStyle.Render(turnText))

	// Render input prompt with turn-based color for the input text
	b.WriteString("\n\n")
	inputPrompt := lipgloss.NewStyle().
		Foreground(m.theme.MenuNormal).
		Render("Enter move: ")
	inputText := turnStyle.Render(m.input)
	b.WriteString(inputPrompt + inputText)

	// Add help text
	helpText := m.renderHelpText("ESC: menu | type move (e.g. e4, Nf3) | Commands: resign, offerdraw, showfen, menu")
	if helpText != "" {
		b.WriteString("\n\n")
		b.WriteString(helpText)
	}

	// Render error message if present
	if m.errorMsg != "" {
		b.WriteString("\n\n")
		errorText := m.errorStyle().Render(fmt.Sprintf("Error: %s", m.errorMsg))
		b.WriteString(errorText)
	}

	// Render status message if present
	if m.statusMsg != "" {
		b.WriteString("\n\n")
		statusText := m.statusStyle().Render(m.statusMsg)
		b.WriteString(statusText)
	}

	// Render move history if enabled
	if m.config.ShowMoveHistory && len(m.moveHistory) > 0 {
		b.WriteString("\n\n")

		// Move history header
		historyHeaderStyle := lipgloss.NewStyle().
			Bold(true).
			Foreground(m.theme.TitleText)
		historyHeader := historyHeaderStyle.Render("Move History:")
		b.WriteString(historyHeader)
		b.WriteString("\n")

		// Format and display move history
		historyText := m.formatMoveHistory()
		historyStyle := lipgloss.NewStyle().
			Foreground(m.theme.MenuSelected)
		history := historyStyle.Render(historyText)
		b.WriteString(history)
		b.WriteString("\n")
	}

	return b.String()
}

// getGameResultMessage returns a human-readable message describing the game result.
// It analyzes the game status and winner to generate an appropriate message.
// If resignedBy is not -1, it indicates which player resigned.
// If drawByAgreement is true, the game ended by mutual agreement.
func getGameResultMessage(g *engine.Game, resignedBy int8, drawByAgreement bool) string {
	// Check for draw by agreement first
	if drawByAgreement {
		return "Draw by agreement"
	}

	// Check for resignation
	if resignedBy != -1 {
		if resignedBy == int8(engine.White) {
			return "White resigned - Black wins"
		}
		return "Black resigned - White wins"
	}

	// Otherwise, check the game status
	status := g.Status()

	switch status {
	case engine.Checkmate:
		winner, _ := g.Winner()
		if winner == engine.White {
			return "Checkmate! White wins"
		}
		return "Checkmate! Black wins"

	case engine.Stalemate:
		return "Stalemate - Draw"

	case engine.DrawThreefoldRepetition, engine.DrawFivefoldRepetition:
		return "Draw by repetition"

	case engine.DrawFiftyMoveRule:
		return "Draw by fifty-move rule"

	case engine.DrawSeventyFiveMoveRule:
		return "Draw by seventy-five-move rule"

	case engine.DrawInsufficientMaterial:
		return "Draw by insufficient material"

	default:
		return "Game Over"
	}
}

// renderGameOver renders the GameOver screen showing the game result,
// final board position, move count, and options to continue.
func (m Model) renderGameOver() string {
	var b strings.Builder

	// Render the application title
	title := m.titleStyle().Render("ChessForge")
	b.WriteString(title)
	b.WriteString("\n\n")

	// Render game result message
	resultMsg := getGameResultMessage(m.game, m.resignedBy, m.drawByAgreement)
	resultStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFD700")).
		Align(lipgloss.Center).
		Padding(1, 0)
	b.WriteString(resultStyle.Render(resultMsg))
	b.WriteString("\n\n")

	// Render the final board position
	renderer := NewBoardRenderer(m.config)
	boardStr := renderer.Render(m.game.Board)
	b.WriteString(boardStr)

	// Render move count
	b.WriteString("\n\n")
	moveCountMsg := fmt.Sprintf("Game ended after %d moves", m.game.FullMoveNumber)
	moveCountStyle := lipgloss.NewStyle().
		Foreground(m.theme.MenuNormal).
		Align(lipgloss.Center)
	b.WriteString(moveCountStyle.Render(moveCountMsg))

	// Render options
	b.WriteString("\n\n")
	optionsText := "Press 'n' for New Game  |  Press 'm' for Main Menu  |  Press 'q' to Quit"
	optionsStyle := lipgloss.NewStyle().
		Foreground(m.theme.MenuSelected).
		Align(lipgloss.Center)
	b.WriteString(optionsStyle.Render(optionsText))

	// Render help text
	helpText := m.renderHelpText("ESC/m: menu | n: new game | q: quit")
	if helpText != "" {
		b.WriteString("\n\n")
		b.WriteString(helpText)
	}

	return b.String()
}

// renderSettings renders the Settings screen showing display configuration options.
// Each option displays its current value and can be toggled by the user.
// Settings are grouped with visual separators between display options and appearance options.
func (m Model) renderSettings() string {
	var b strings.Builder

	// Render the application title
	title := m.titleStyle().Render("ChessForge")
	b.WriteString(title)
	b.WriteString("\n")

	// Render breadcrumb navigation
	b.WriteString(m.renderBreadcrumb())

	// Render screen header
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(m.theme.TitleText).
		Padding(0, 0, 1, 0)
	header := headerStyle.Render("Settings")
	b.WriteString(header)
	b.WriteString("\n")

	// Define toggle settings options with their current values
	// The order here determines the settingsSelection index (0-4 for toggles)
	// Group 1 (Display): Use Unicode, Show Coordinates, Use Colors
	// Group 2 (Info): Show Move History, Show Help Text
	toggleOptions := []struct {
		label   string
		enabled bool
		group   int // 1 = display, 2 = info
	}{
		{"Use Unicode Pieces", m.config.UseUnicode, 1},
		{"Show Coordinates", m.config.ShowCoords, 1},
		{"Use Colors", m.config.UseColors, 1},
		{"Show Move History", m.config.ShowMoveHistory, 2},
		{"Show Help Text", m.config.ShowHelpText, 2},
	}

	currentGroup := 0

	// Render each toggle option with its current state
	for i, option := range toggleOptions {
		// Insert separator when changing groups
		if option.group != currentGroup && currentGroup != 0 {
			b.WriteString(m.renderMenuSeparator())
			b.WriteString("\n")
		}
		currentGroup = option.group

		cursor := "  " // Two spaces for non-selected items

		// Determine checkbox state
		checkbox := "[ ]"
		if option.enabled {
			checkbox = "[X]"
		}

		// Build the option text
		optionText := fmt.Sprintf("%s %s", option.label, checkbox)

		if i == m.settingsSelection {
			// Highlight the selected item with focus indicator
			cursor = m.cursorStyle().Render(">> ")
			optionText = m.selectedItemStyle().Render(optionText)
		} else {
			// Regular menu item styling
			optionText = m.menuItemStyle().Render(optionText)
		}

		b.WriteString(fmt.Sprintf("%s%s\n", cursor, optionText))
	}

	// Add separator before theme option
	b.WriteString(m.renderMenuSeparator())
	b.WriteString("\n")

	// Render the Theme option (index 5)
	// Get theme display name with proper capitalization
	themeDisplayName := getThemeDisplayName(m.config.Theme)
	themeCursor := "  "
	themeText := fmt.Sprintf("Theme: %s", themeDisplayName)

	if m.settingsSelection == 5 {
		themeCursor = m.cursorStyle().Render(">> ")
		themeText = m.selectedItemStyle().Render(themeText)
	} else {
		themeText = m.menuItemStyle().Render(themeText)
	}
	b.WriteString(fmt.Sprintf("%s%s\n", themeCursor, themeText))

	// Render help text
	helpText := m.renderHelpText("ESC: back | arrows/jk: navigate | enter/space: toggle/cycle")
	if helpText != "" {
		b.WriteString("\n")
		b.WriteString(helpText)
	}

	// Render error message if present
	if m.errorMsg != "" {
		b.WriteString("\n\n")
		errorText := m.errorStyle().Render(fmt.Sprintf("Error: %s", m.errorMsg))
		b.WriteString(errorText)
	}

	// Render status message if present
	if m.statusMsg != "" {
		b.WriteString("\n\n")
		statusText := m.statusStyle().Render(m.statusMsg)
		b.WriteString(statusText)
	}

	return b.String()
}

// renderFENInput renders the FEN input screen where users can load a chess position from FEN notation.
// Displays input field, instructions, example FEN, help text, and any error messages.
func (m Model) renderFENInput() string {
	var b strings.Builder

	// Render the application title
	title := m.titleStyle().Render("ChessForge")
	b.WriteString(title)
	b.WriteString("\n")

	// Render breadcrumb navigation
	b.WriteString(m.renderBreadcrumb())

	// Render screen header
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(m.theme.TitleText).
		Padding(0, 0, 1, 0)
	header := headerStyle.Render("Load Game from FEN")
	b.WriteString(header)
	b.WriteString("\n")

	// Instructions
	instructions := "Enter a FEN string to load a chess position:\n\n"
	b.WriteString(instructions)

	// Input field with cursor
	// Render the text input component
	b.WriteString(m.fenInput.View())
	b.WriteString("\n\n")

	// Example
	exampleStyle := lipgloss.NewStyle().
		Foreground(m.theme.HelpText)
	example := exampleStyle.Render("Example: rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	b.WriteString(example)
	b.WriteString("\n\n")

	// Help text
	helpText := m.renderHelpText("ESC: back to menu | enter: load position")
	if helpText != "" {
		b.WriteString(helpText)
	}

	// Error message if present
	if m.errorMsg != "" {
		b.WriteString("\n\n")
		errorText := m.errorStyle().Render(fmt.Sprintf("Error: %s", m.errorMsg))
		b.WriteString(errorText)
	}

	return b.String()
}

// renderDrawPrompt renders the Draw Prompt screen asking the opponent to accept or decline a draw offer.
// Displays a title, message indicating which player offered the draw, two options (Accept/Decline), and help text.
func (m Model) renderDrawPrompt() string {
	var b strings.Builder

	// Render the application title
	title := m.titleStyle().Render("ChessForge")
	b.WriteString(title)
	b.WriteString("\n\n")

	// Render prompt title
	promptTitle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFD700")).
		Align(lipgloss.Center).
		Padding(1, 0).
		Render("Draw Offer")
	b.WriteString(promptTitle)
	b.WriteString("\n\n")

	// Render prompt message based on who offered the draw
	offerMessage := "White offers a draw. Accept?"
	if m.drawOfferedBy == int8(engine.Black) {
		offerMessage = "Black offers a draw. Accept?"
	}
	promptMessage := lipgloss.NewStyle().
		Foreground(m.theme.MenuNormal).
		Padding(0, 2).
		Render(offerMessage)
	b.WriteString(promptMessage)
	b.WriteString("\n\n")

	// Define the draw prompt options
	options := []string{"Accept", "Decline"}

	// Render each option with cursor indicator
	for i, option := range options {
		cursor := "  " // Two spaces for non-selected items
		optionText := option

		if i == m.drawPromptSelection {
			// Highlight the selected item with focus indicator
			cursor = m.cursorStyle().Render(">> ")
			optionText = m.selectedPrimaryStyle().Render(option)
		} else {
			// Primary styling for options
			optionText = m.menuPrimaryStyle().Render(option)
		}

		b.WriteString(fmt.Sprintf("%s%s\n", cursor, optionText))
	}

	// Render help text
	b.WriteString("\n")
	helpText := m.helpStyle().Render("Use arrow keys to select, Enter to confirm, ESC to cancel")
	b.WriteString(helpText)

	// Render error message if present
	if m.errorMsg != "" {
		b.WriteString("\n\n")
		errorText := m.errorStyle().Render(fmt.Sprintf("Error: %s", m.errorMsg))
		b.WriteString(errorText)
	}

	// Render status message if present
	if m.statusMsg != "" {
		b.WriteString("\n\n")
		statusText := m.statusStyle().Render(m.statusMsg)
		b.WriteString(statusText)
	}

	return b.String()
}

// botDifficultyName returns the display name for a bot difficulty.
func botDifficultyName(d BotDifficulty) string {
	switch d {
	case BotEasy:
		return "Easy"
	case BotMedium:
		return "Medium"
	case BotHard:
		return "Hard"
	default:
		return "Unknown"
	}
}

// formatMoveHistory formats the move history for display with a header.
// Returns an empty string if there are no moves to display.
// Format: "Move History: 1. e4 e5 2. Nf3 Nc6"
func (m Model) formatMoveHistory() string {
	if len(m.moveHistory) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("Move History: ")

	// Replay moves on a fresh game to format them as SAN
	replay := engine.New()

	for i := 0; i < len(m.moveHistory); i += 2 {
		moveNum := (i / 2) + 1

		// Format white's move
		whiteSAN := FormatSAN(replay, m.moveHistory[i])
		_ = replay.ApplyMove(m.moveHistory[i])

		// Format black's move (if exists)
		if i+1 < len(m.moveHistory) {
			blackSAN := FormatSAN(replay, m.moveHistory[i+1])
			_ = replay.ApplyMove(m.moveHistory[i+1])
			b.WriteString(fmt.Sprintf("%d. %s %s", moveNum, whiteSAN, blackSAN))

			// Add space only if there are more moves to come
			if i+2 < len(m.moveHistory) {
				b.WriteString(" ")
			}
		} else {
			// Only white's move (game in progress)
			b.WriteString(fmt.Sprintf("%d. %s", moveNum, whiteSAN))
		}
	}

	return b.String()
}

// getThemeDisplayName returns a display-friendly name for a theme.
// Converts the internal theme name string to a capitalized display name.
func getThemeDisplayName(themeName string) string {
	switch themeName {
	case ThemeNameModern:
		return "Modern"
	case ThemeNameMinimalist:
		return "Minimalist"
	case ThemeNameClassic:
		return "Classic"
	default:
		return "Classic"
	}
}

// renderShortcutsOverlay renders a full-screen modal overlay displaying all keyboard shortcuts.
// The overlay is organized by context (Global, Menu, Settings, Gameplay).
func (m Model) renderShortcutsOverlay() string {
	var b strings.Builder

	// Title style for the overlay
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(m.theme.TitleText).
		Align(lipgloss.Center).
		Padding(1, 0)

	// Section header style
	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(m.theme.MenuSelected).
		Padding(1, 0, 0, 0)

	// Shortcut key style (left column)
	keyStyle := lipgloss.NewStyle().
		Foreground(m.theme.MenuSelected).
		Bold(true).
		Width(15)

	// Description style (right column)
	descStyle := lipgloss.NewStyle().
		Foreground(m.theme.MenuNormal)

	// Hint style for the footer
	hintStyle := lipgloss.NewStyle().
		Foreground(m.theme.HelpText).
		Italic(true).
		Padding(2, 0, 0, 0)

	// Render title
	b.WriteString(titleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n")

	// Helper function to render a shortcut line
	renderShortcut := func(key, description string) {
		b.WriteString(keyStyle.Render(key))
		b.WriteString(descStyle.Render(description))
		b.WriteString("\n")
	}

	// Global shortcuts
	b.WriteString(sectionStyle.Render("Global"))
	b.WriteString("\n")
	renderShortcut("?", "Show this help overlay")
	renderShortcut("n", "Start new game")
	renderShortcut("s", "Open settings")
	renderShortcut("Ctrl+C", "Quit application")
	renderShortcut("q", "Quit")
	renderShortcut("Esc", "Go back / Cancel")

	// Menu navigation
	b.WriteString(sectionStyle.Render("Menu Navigation"))
	b.WriteString("\n")
	renderShortcut("Up / k", "Move selection up")
	renderShortcut("Down / j", "Move selection down")
	renderShortcut("Enter", "Select / Confirm")

	// Settings
	b.WriteString(sectionStyle.Render("Settings"))
	b.WriteString("\n")
	renderShortcut("Up / k", "Previous setting")
	renderShortcut("Down / j", "Next setting")
	renderShortcut("Enter/Space", "Toggle / Cycle setting")

	// Gameplay
	b.WriteString(sectionStyle.Render("Gameplay"))
	b.WriteString("\n")
	renderShortcut("Type move", "Enter move (e.g., e4, Nf3, O-O)")
	renderShortcut("Click", "Select a piece, click again to move it")
	renderShortcut("Enter", "Submit move")
	renderShortcut("resign", "Resign the game")
	renderShortcut("offerdraw", "Offer a draw")
	renderShortcut("showfen", "Show/copy FEN position")
	renderShortcut("menu", "Return to menu")

	// Footer hint
	b.WriteString(hintStyle.Render("Press any key to close"))

	return b.String()
}
