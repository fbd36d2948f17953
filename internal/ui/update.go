package ui

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"chessforge/internal/bot"
	"chessforge/internal/config"
	"chessforge/internal/engine"
	"chessforge/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

// BotMoveMsg is sent when the bot has selected a move.
type BotMoveMsg struct {
	move engine.Move
}

// BotMoveErrorMsg is sent when the bot encounters an error during move selection.
type BotMoveErrorMsg struct {
	err error
}

// Init initializes the model. Called once at program start.
// Returns nil as no initial commands are needed for the basic menu interface.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the model state.
// This is the core of the Elm architecture - all state changes happen here.
// It takes a message (user input, events, etc.) and returns an updated model
// and optionally a command to execute.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.MouseMsg:
		return m.handleMouseEvent(msg)
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		return m, nil
	case BotMoveMsg:
		return m.handleBotMove(msg)
	case BotMoveErrorMsg:
		return m.handleBotMoveError(msg)
	}

	return m, nil
}

// handleKeyPress processes keyboard input and routes it to the appropriate handler.
// Global keys like quit are handled first, then screen-specific keys are delegated
// to the current screen's handler.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c always quits immediately, overlay or no overlay.
	if msg.String() == "ctrl+c" {
		if m.botEngine != nil {
			_ = m.botEngine.Close()
		}
		return m, tea.Quit
	}

	// Any key dismisses the shortcuts overlay without otherwise affecting state.
	if m.showShortcutsOverlay {
		m.showShortcutsOverlay = false
		return m, nil
	}

	// '?' opens the shortcuts overlay, except while the current screen accepts
	// free-form text (where '?' is a character the user might want to type).
	if msg.String() == "?" && !m.isInTextInputMode() {
		m.showShortcutsOverlay = true
		return m, nil
	}

	// Handle the remaining global quit key (work from any screen except
	// GamePlay where 'q' is a resign/text-input char)
	if msg.String() == "q" {
		// Only quit directly if not in GamePlay screen
		if m.screen != ScreenGamePlay {
			if m.botEngine != nil {
				_ = m.botEngine.Close()
			}
			return m, tea.Quit
		}
		// Otherwise, let the GamePlay handler deal with it
	}

	// Handle screen-specific keys based on current screen
	switch m.screen {
	case ScreenMainMenu:
		return m.handleMainMenuKeys(msg)
	case ScreenGameTypeSelect:
		return m.handleGameTypeSelectKeys(msg)
	case ScreenBotSelect:
		return m.handleBotSelectKeys(msg)
	case ScreenColorSelect:
		return m.handleColorSelectKeys(msg)
	case ScreenFENInput:
		return m.handleFENInputKeys(msg)
	case ScreenGamePlay:
		return m.handleGamePlayKeys(msg)
	case ScreenGameOver:
		return m.handleGameOverKeys(msg)
	case ScreenSettings:
		return m.handleSettingsKeys(msg)
	case ScreenDrawPrompt:
		return m.handleDrawPromptKeys(msg)
	default:
		// Other screens will be implemented in future tasks
		return m, nil
	}
}

// handleMainMenuKeys handles keyboard input for the main menu screen.
// Supports arrow keys and vi-style navigation (j/k), Enter to select,
// and wraps around at top and bottom of the menu.
func (m Model) handleMainMenuKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Clear any previous error or status messages when user takes action
	m.errorMsg = ""
	m.statusMsg = ""

	switch msg.String() {
	case "up", "k":
		// Move selection up
		if m.menuSelection > 0 {
			m.menuSelection--
		} else {
			// Wrap to bottom of menu
			m.menuSelection = len(m.menuOptions) - 1
		}

	case "down", "j":
		// Move selection down
		if m.menuSelection < len(m.menuOptions)-1 {
			m.menuSelection++
		} else {
			// Wrap to top of menu
			m.menuSelection = 0
		}

	case "enter":
		return m.handleMainMenuSelection()
	}

	return m, nil
}

// handleMainMenuSelection executes the action for the currently selected menu option.
func (m Model) handleMainMenuSelection() (tea.Model, tea.Cmd) {
	selected := m.menuOptions[m.menuSelection]

	switch selected {
	case "Exit":
		return m, tea.Quit

	case "New Game":
		// Transition to game type selection screen using navigation stack
		m.pushScreen(ScreenGameTypeSelect)
		// Set up menu options for game type selection
		m.menuOptions = []string{"Player vs Player", "Player vs Bot"}
		m.menuSelection = 0
		// Clear any previous status messages
		m.statusMsg = ""
		m.errorMsg = ""
		// Clear any previous input
		m.input = ""

	case "Load Game":
		// Transition to FEN input screen using navigation stack
		m.pushScreen(ScreenFENInput)
		// Reset and focus the text input
		m.fenInput.SetValue("")
		m.fenInput.Focus()
		// Clear any previous status messages
		m.statusMsg = ""
		m.errorMsg = ""

	case "Settings":
		// Transition to settings screen using navigation stack
		m.pushScreen(ScreenSettings)
		m.settingsSelection = 0
		// Clear any previous status messages
		m.statusMsg = ""
		m.errorMsg = ""
	}

	return m, nil
}

// handleGameTypeSelectKeys handles keyboard input for the game type selection screen.
// Supports arrow keys and vi-style navigation (j/k), Enter to select,
// ESC to return to main menu, and wraps around at top and bottom of the menu.
func (m Model) handleGameTypeSelectKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Clear any previous error or status messages when user takes action
	m.errorMsg = ""
	m.statusMsg = ""

	switch msg.String() {
	case "up", "k":
		// Move selection up
		if m.menuSelection > 0 {
			m.menuSelection--
		} else {
			// Wrap to bottom of menu
			m.menuSelection = len(m.menuOptions) - 1
		}

	case "down", "j":
		// Move selection down
		if m.menuSelection < len(m.menuOptions)-1 {
			m.menuSelection++
		} else {
			// Wrap to top of menu
			m.menuSelection = 0
		}

	case "enter":
		return m.handleGameTypeSelection()

	case "esc":
		// Return to previous screen using navigation stack
		m.popScreen()
		// Rebuild menu options in case we're back at main menu
		if m.screen == ScreenMainMenu {
			m.menuOptions = buildMainMenuOptions()
		}
		m.menuSelection = 0
		m.errorMsg = ""
		m.statusMsg = ""
	}

	return m, nil
}

// resetForNewGame clears per-game state (resignation, draw offers, history,
// input) shared by every path that starts a fresh game.
func (m *Model) resetForNewGame() {
	m.moveHistory = []engine.Move{}
	m.clearNavStack()
	m.statusMsg = ""
	m.errorMsg = ""
	m.input = ""
	m.resignedBy = -1
	m.drawOfferedBy = -1
	m.drawOfferedByWhite = false
	m.drawOfferedByBlack = false
	m.drawByAgreement = false
	m.selectedSquare = nil
	m.validMoves = nil
}

// handleGameTypeSelection executes the action for the currently selected game type option.
// "Player vs Player" starts a new PvP game. "Player vs Bot" goes to difficulty selection.
func (m Model) handleGameTypeSelection() (tea.Model, tea.Cmd) {
	selected := m.menuOptions[m.menuSelection]

	switch selected {
	case "Player vs Player":
		m.gameType = GameTypePvP
		m.game = engine.New()
		m.resetForNewGame()
		m.screen = ScreenGamePlay

	case "Player vs Bot":
		m.gameType = GameTypePvBot
		// Transition to bot difficulty selection screen using navigation stack
		m.pushScreen(ScreenBotSelect)
		m.menuOptions = []string{"Easy", "Medium", "Hard"}
		m.menuSelection = 0
		m.statusMsg = ""
		m.errorMsg = ""
	}

	return m, nil
}

// handleGamePlayKeys handles keyboard input for the GamePlay screen.
// Supports text input for entering chess moves in SAN or coordinate notation
// (e.g., "Nf3" or "e2e4"). Regular characters are appended to input,
// backspace deletes, and enter submits.
func (m Model) handleGamePlayKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// 'q' quits the application directly; no game state is persisted.
	if msg.String() == "q" || msg.String() == "Q" {
		if m.botEngine != nil {
			_ = m.botEngine.Close()
		}
		return m, tea.Quit
	}

	// 'esc' returns to the main menu, abandoning the in-progress game.
	if msg.String() == "esc" {
		if m.botEngine != nil {
			_ = m.botEngine.Close()
			m.botEngine = nil
		}
		m.game = nil
		m.screen = ScreenMainMenu
		m.menuOptions = buildMainMenuOptions()
		m.menuSelection = 0
		m.input = ""
		m.errorMsg = ""
		m.statusMsg = ""
		return m, nil
	}

	switch msg.Type {
	case tea.KeyBackspace:
		// Remove the last character from input
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
		// Clear error messages when user modifies input
		m.errorMsg = ""

	case tea.KeyEnter:
		// Parse and execute the move or command if input is not empty
		if m.input != "" {
			return m.handleGamePlayInput()
		}

	case tea.KeyRunes:
		// Clear error messages when user starts typing a new move
		m.errorMsg = ""
		// Append the typed character(s) to the input
		m.input += string(msg.Runes)
	}

	return m, nil
}

// handleGameOverKeys handles keyboard input for the GameOver screen.
// Supports 'n' for new game, 'm' for main menu, 'esc' for main menu, and 'q' for quit.
func (m Model) handleGameOverKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "n", "N":
		// Clean up bot engine if it exists
		if m.botEngine != nil {
			_ = m.botEngine.Close()
			m.botEngine = nil
		}
		// Start a new game - go through game type selection
		m.game = nil
		m.moveHistory = []engine.Move{}
		m.screen = ScreenGameTypeSelect
		m.input = ""
		m.errorMsg = ""
		m.statusMsg = ""
		// Set up menu options for game type selection
		m.menuOptions = []string{"Player vs Player", "Player vs Bot"}
		m.menuSelection = 0
		// Reset draw offer state
		m.drawOfferedBy = -1
		m.drawOfferedByWhite = false
		m.drawOfferedByBlack = false
		m.drawByAgreement = false

	case "m", "M", "esc":
		// Clean up bot engine if it exists
		if m.botEngine != nil {
			_ = m.botEngine.Close()
			m.botEngine = nil
		}
		// Return to main menu
		m.screen = ScreenMainMenu
		m.game = nil
		m.moveHistory = []engine.Move{}
		m.input = ""
		m.errorMsg = ""
		m.statusMsg = ""
		// Reset menu options to main menu
		m.menuOptions = buildMainMenuOptions()
		m.menuSelection = 0

	case "q", "Q":
		// Clean up bot engine if it exists
		if m.botEngine != nil {
			_ = m.botEngine.Close()
		}
		// Quit the application
		return m, tea.Quit
	}

	return m, nil
}

// handleSettingsKeys handles keyboard input for the Settings screen.
// Supports arrow keys and vi-style navigation (j/k), Space or Enter to toggle/cycle,
// ESC to return to main menu, and wraps around at top and bottom of the settings.
func (m Model) handleSettingsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Clear any previous error or status messages when user takes action
	m.errorMsg = ""
	m.statusMsg = ""

	// Number of settings options (5 toggles + 1 theme selector)
	numSettings := 6 // UseUnicode, ShowCoords, UseColors, ShowMoveHistory, ShowHelpText, Theme

	switch msg.String() {
	case "up", "k":
		// Move selection up
		if m.settingsSelection > 0 {
			m.settingsSelection--
		} else {
			// Wrap to bottom of settings
			m.settingsSelection = numSettings - 1
		}

	case "down", "j":
		// Move selection down
		if m.settingsSelection < numSettings-1 {
			m.settingsSelection++
		} else {
			// Wrap to top of settings
			m.settingsSelection = 0
		}

	case "enter", " ":
		// Toggle the selected setting
		return m.toggleSelectedSetting()

	case "esc", "q", "b", "backspace":
		// Return to previous screen using navigation stack
		m.popScreen()
		// Rebuild menu options if we're back at main menu
		if m.screen == ScreenMainMenu {
			m.menuOptions = buildMainMenuOptions()
		}
		m.menuSelection = 0
		m.errorMsg = ""
		m.statusMsg = ""
	}

	return m, nil
}

// toggleSelectedSetting toggles the currently selected setting and saves the config.
// For boolean settings, it toggles between true/false.
// For the theme setting, it cycles through: Classic -> Modern -> Minimalist -> Classic.
func (m Model) toggleSelectedSetting() (tea.Model, tea.Cmd) {
	// Toggle or cycle the selected setting based on settingsSelection index
	switch m.settingsSelection {
	case 0: // Use Unicode Pieces
		m.config.UseUnicode = !m.config.UseUnicode
	case 1: // Show Coordinates
		m.config.ShowCoords = !m.config.ShowCoords
	case 2: // Use Colors
		m.config.UseColors = !m.config.UseColors
	case 3: // Show Move History
		m.config.ShowMoveHistory = !m.config.ShowMoveHistory
	case 4: // Show Help Text
		m.config.ShowHelpText = !m.config.ShowHelpText
	case 5: // Theme
		// Cycle through themes: Classic -> Modern -> Minimalist -> Classic
		m.config.Theme = cycleTheme(m.config.Theme)
		// Update the theme in the model immediately for visual feedback
		m.theme = GetTheme(ParseThemeName(m.config.Theme))
	}

	// Save the configuration immediately
	err := config.SaveConfig(m.config)
	if err != nil {
		m.errorMsg = fmt.Sprintf("Failed to save settings: %v", err)
	} else {
		m.statusMsg = "Setting saved successfully"
	}

	return m, nil
}

// cycleTheme cycles through theme names: classic -> modern -> minimalist -> classic.
func cycleTheme(current string) string {
	switch current {
	case ThemeNameClassic:
		return ThemeNameModern
	case ThemeNameModern:
		return ThemeNameMinimalist
	case ThemeNameMinimalist:
		return ThemeNameClassic
	default:
		// Unknown theme, reset to modern (next after classic)
		return ThemeNameModern
	}
}

// handleFENInputKeys handles keyboard input for the FEN Input screen.
// Supports text input for entering FEN strings, Enter to parse and load,
// and Esc to return to main menu.
func (m Model) handleFENInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.String() {
	case "esc":
		// Return to previous screen using navigation stack
		m.popScreen()
		// Rebuild menu options if we're back at main menu
		if m.screen == ScreenMainMenu {
			m.menuOptions = buildMainMenuOptions()
		}
		m.menuSelection = 0
		m.errorMsg = ""
		m.statusMsg = ""
		m.fenInput.SetValue("")
		return m, nil

	case "enter":
		// Try to parse and load the FEN string
		fenString := m.fenInput.Value()
		if fenString == "" {
			m.errorMsg = "Please enter a FEN string"
			return m, nil
		}

		// Parse the FEN string using the engine
		g, err := engine.ParseFEN(fenString)
		if err != nil {
			// Show parsing error to user
			m.errorMsg = fmt.Sprintf("Invalid FEN: %v", err)
			return m, nil
		}

		// Successfully loaded - start gameplay with the loaded position
		m.game = g
		m.resetForNewGame()
		m.screen = ScreenGamePlay
		m.gameType = GameTypePvP
		m.fenInput.SetValue("")
		return m, nil

	default:
		// Delegate to the text input component for regular typing
		m.fenInput, cmd = m.fenInput.Update(msg)
		// Clear error message when user starts typing
		if msg.Type == tea.KeyRunes || msg.Type == tea.KeyBackspace {
			m.errorMsg = ""
		}
	}

	return m, cmd
}

// handleGamePlayInput processes user input during gameplay.
// It first checks if the input is a special command (resign, showfen, menu),
// and if not, attempts to parse and execute it as a chess move.
func (m Model) handleGamePlayInput() (tea.Model, tea.Cmd) {
	// Get the trimmed and lowercased input for command matching
	input := strings.TrimSpace(strings.ToLower(m.input))

	// Check for special commands first
	switch input {
	case "resign":
		return m.handleResignCommand()
	case "showfen":
		return m.handleShowFenCommand()
	case "menu":
		return m.handleMenuCommand()
	case "offerdraw":
		return m.handleOfferDrawCommand()
	default:
		// Not a command, try to parse as a move
		return m.handleMoveInput()
	}
}

// handleResignCommand handles the "resign" command.
// The current player resigns, and the game transitions to GameOver screen.
func (m Model) handleResignCommand() (tea.Model, tea.Cmd) {
	// Mark which player resigned
	m.resignedBy = int8(m.game.SideToMove)

	// Transition to game over screen
	m.screen = ScreenGameOver

	// Clear input
	m.input = ""
	m.errorMsg = ""
	m.statusMsg = ""

	return m, nil
}

// handleShowFenCommand handles the "showfen" command.
// It displays the current FEN string and copies it to clipboard if possible.
func (m Model) handleShowFenCommand() (tea.Model, tea.Cmd) {
	// Get the FEN string for the current game
	fen := m.game.ToFEN()

	// Try to copy to clipboard
	err := util.CopyToClipboard(fen)
	if err != nil {
		// Show FEN with clipboard error message
		m.statusMsg = fmt.Sprintf("FEN: %s (Failed to copy to clipboard: %v)", fen, err)
	} else {
		// Show FEN with success message
		m.statusMsg = fmt.Sprintf("FEN: %s (Copied to clipboard)", fen)
	}

	// Clear input and error messages
	m.input = ""
	m.errorMsg = ""

	return m, nil
}

// handleMenuCommand handles the "menu" command, returning to the main menu
// and abandoning the in-progress game.
func (m Model) handleMenuCommand() (tea.Model, tea.Cmd) {
	if m.botEngine != nil {
		_ = m.botEngine.Close()
		m.botEngine = nil
	}
	m.game = nil
	m.screen = ScreenMainMenu
	m.menuOptions = buildMainMenuOptions()
	m.menuSelection = 0

	// Clear input and messages
	m.input = ""
	m.errorMsg = ""
	m.statusMsg = ""

	return m, nil
}

// afterMoveApplied runs the bookkeeping shared by every path that applies a
// move to the game (text input and mouse input): check for a terminal
// position and, for bot games, trigger the bot's reply.
func (m Model) afterMoveApplied() (tea.Model, tea.Cmd) {
	if m.game.IsTerminated() {
		m.screen = ScreenGameOver
		if m.botEngine != nil {
			_ = m.botEngine.Close()
			m.botEngine = nil
		}
		return m, nil
	}

	if m.gameType == GameTypePvBot {
		return m.makeBotMove()
	}

	return m, nil
}

// handleMoveInput parses and executes a chess move.
// It tries SAN notation first, then falls back to coordinate notation.
func (m Model) handleMoveInput() (tea.Model, tea.Cmd) {
	// Try SAN parsing first
	move, err := ParseSAN(m.game, m.input)
	if err != nil {
		// Fall back to coordinate notation
		move, err = engine.ParseMove(m.input)
		if err != nil {
			// Show parsing error to user
			m.errorMsg = fmt.Sprintf("Invalid move: %v", err)
			return m, nil
		}
	}

	// Try to apply the move to the game
	err = m.game.ApplyMove(move)
	if err != nil {
		// Show move execution error to user
		m.errorMsg = err.Error()
		return m, nil
	}

	// Move was successful - clear input and error messages
	m.input = ""
	m.errorMsg = ""
	m.statusMsg = ""
	m.selectedSquare = nil
	m.validMoves = nil

	// Add move to history
	m.moveHistory = append(m.moveHistory, move)

	return m.afterMoveApplied()
}

// handleOfferDrawCommand handles the "offerdraw" command.
// A player offers a draw to their opponent, which can be accepted or declined.
func (m Model) handleOfferDrawCommand() (tea.Model, tea.Cmd) {
	// Check if this player already offered a draw
	if (m.game.SideToMove == engine.White && m.drawOfferedByWhite) ||
		(m.game.SideToMove == engine.Black && m.drawOfferedByBlack) {
		m.errorMsg = "You have already offered a draw this game"
		m.input = ""
		return m, nil
	}

	// Mark who offered the draw
	m.drawOfferedBy = int8(m.game.SideToMove)
	if m.game.SideToMove == engine.White {
		m.drawOfferedByWhite = true
	} else {
		m.drawOfferedByBlack = true
	}

	// Transition to draw prompt
	m.screen = ScreenDrawPrompt
	m.drawPromptSelection = 0
	m.input = ""
	m.errorMsg = ""
	m.statusMsg = ""

	return m, nil
}

// handleDrawPromptKeys handles keyboard input for the Draw Prompt screen.
// Supports arrow keys to navigate between Accept/Decline, Enter to confirm, and ESC to cancel.
func (m Model) handleDrawPromptKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Clear any previous error or status messages when user takes action
	m.errorMsg = ""
	m.statusMsg = ""

	switch msg.String() {
	case "up", "k":
		// Move selection up (toggle between Accept and Decline)
		if m.drawPromptSelection > 0 {
			m.drawPromptSelection--
		} else {
			// Wrap to bottom (only 2 options)
			m.drawPromptSelection = 1
		}

	case "down", "j":
		// Move selection down (toggle between Accept and Decline)
		if m.drawPromptSelection < 1 {
			m.drawPromptSelection++
		} else {
			// Wrap to top
			m.drawPromptSelection = 0
		}

	case "enter":
		// Execute the selected action
		if m.drawPromptSelection == 0 {
			// User selected "Accept" - end game in draw
			m.drawByAgreement = true
			m.screen = ScreenGameOver
			m.input = ""
			m.errorMsg = ""
			m.statusMsg = ""
		} else {
			// User selected "Decline" - return to game
			m.screen = ScreenGamePlay
			m.statusMsg = "Draw offer declined"
			m.input = ""
			m.errorMsg = ""
			// Reset draw offered by so another offer can be made
			m.drawOfferedBy = -1
		}

	case "esc":
		// Cancel and return to game
		m.screen = ScreenGamePlay
		m.statusMsg = "Draw offer cancelled"
		m.input = ""
		m.errorMsg = ""
		// Reset draw offered by and the flag for the player who offered
		if m.drawOfferedBy == int8(engine.White) {
			m.drawOfferedByWhite = false
		} else if m.drawOfferedBy == int8(engine.Black) {
			m.drawOfferedByBlack = false
		}
		m.drawOfferedBy = -1
	}

	return m, nil
}

// handleBotSelectKeys handles keyboard input for the bot difficulty selection screen.
// Supports arrow keys and vi-style navigation (j/k), Enter to select,
// ESC to return to game type selection, and wraps around at top and bottom of the menu.
func (m Model) handleBotSelectKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Clear any previous error or status messages when user takes action
	m.errorMsg = ""
	m.statusMsg = ""

	switch msg.String() {
	case "up", "k":
		// Move selection up
		if m.menuSelection > 0 {
			m.menuSelection--
		} else {
			// Wrap to bottom of menu
			m.menuSelection = len(m.menuOptions) - 1
		}

	case "down", "j":
		// Move selection down
		if m.menuSelection < len(m.menuOptions)-1 {
			m.menuSelection++
		} else {
			// Wrap to top of menu
			m.menuSelection = 0
		}

	case "enter":
		return m.handleBotDifficultySelection()

	case "esc":
		// Return to previous screen using navigation stack
		m.popScreen()
		// Rebuild menu options for game type selection if we're back there
		if m.screen == ScreenGameTypeSelect {
			m.menuOptions = []string{"Player vs Player", "Player vs Bot"}
		}
		m.menuSelection = 0
		m.errorMsg = ""
		m.statusMsg = ""
	}

	return m, nil
}

// handleColorSelectKeys handles keyboard input for the color selection screen.
// Supports arrow keys and vi-style navigation (j/k), Enter to select,
// ESC to return to bot difficulty selection, and wraps around at top and bottom of the menu.
func (m Model) handleColorSelectKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Clear any previous error or status messages when user takes action
	m.errorMsg = ""
	m.statusMsg = ""

	switch msg.String() {
	case "up", "k":
		// Move selection up
		if m.menuSelection > 0 {
			m.menuSelection--
		} else {
			// Wrap to bottom of menu
			m.menuSelection = len(m.menuOptions) - 1
		}

	case "down", "j":
		// Move selection down
		if m.menuSelection < len(m.menuOptions)-1 {
			m.menuSelection++
		} else {
			// Wrap to top of menu
			m.menuSelection = 0
		}

	case "enter":
		return m.handleColorSelection()

	case "esc":
		// Return to previous screen using navigation stack
		m.popScreen()
		// Rebuild menu options for bot selection if we're back there
		if m.screen == ScreenBotSelect {
			m.menuOptions = []string{"Easy", "Medium", "Hard"}
		}
		m.menuSelection = 0
		m.errorMsg = ""
		m.statusMsg = ""
	}

	return m, nil
}

// handleColorSelection executes the action for the currently selected color.
// Sets the user's color and starts a new game.
// If user plays Black, triggers bot's opening move.
func (m Model) handleColorSelection() (tea.Model, tea.Cmd) {
	selected := m.menuOptions[m.menuSelection]

	switch selected {
	case "Play as White":
		m.userColor = engine.White
	case "Play as Black":
		m.userColor = engine.Black
	}

	// Create a new game from the standard starting position
	m.game = engine.New()
	m.resetForNewGame()
	m.screen = ScreenGamePlay

	// If user plays Black, bot should make the opening move
	if m.userColor == engine.Black {
		return m.makeBotMove()
	}

	return m, nil
}

// handleBotDifficultySelection executes the action for the currently selected bot difficulty.
// Sets the bot difficulty and transitions to color selection.
func (m Model) handleBotDifficultySelection() (tea.Model, tea.Cmd) {
	selected := m.menuOptions[m.menuSelection]

	switch selected {
	case "Easy":
		m.botDifficulty = BotEasy
	case "Medium":
		m.botDifficulty = BotMedium
	case "Hard":
		m.botDifficulty = BotHard
	}

	// Transition to color selection screen using navigation stack
	m.pushScreen(ScreenColorSelect)
	m.menuOptions = []string{"Play as White", "Play as Black"}
	m.menuSelection = 0
	m.statusMsg = ""
	m.errorMsg = ""

	return m, nil
}

// makeBotMove initiates a bot move calculation asynchronously.
// It displays a thinking message, creates the appropriate bot engine based on difficulty,
// and returns a command that will execute the move selection in a goroutine.
func (m Model) makeBotMove() (Model, tea.Cmd) {
	// Display thinking message
	m.statusMsg = getRandomThinkingMessage()

	// Create bot engine based on difficulty
	var botEngine bot.Engine
	var err error
	switch m.botDifficulty {
	case BotEasy:
		botEngine, err = bot.NewRandomEngine()
	case BotMedium:
		botEngine, err = bot.NewMinimaxEngine(bot.Medium)
	case BotHard:
		botEngine, err = bot.NewMinimaxEngine(bot.Hard)
	}

	if err != nil {
		return m, func() tea.Msg {
			return BotMoveErrorMsg{err: err}
		}
	}

	// Store engine for cleanup
	m.botEngine = botEngine
	game := m.game
	difficulty := m.botDifficulty

	// Execute bot move asynchronously
	return m, func() tea.Msg {
		// Track start time for minimum delay enforcement
		startTime := time.Now()

		// Determine minimum delay based on difficulty
		minDelay := getMinimumBotDelay(difficulty)

		ctx := context.Background()
		move, err := botEngine.SelectMove(ctx, game)
		if err != nil {
			return BotMoveErrorMsg{err: err}
		}

		// Enforce minimum delay for natural feel
		elapsed := time.Since(startTime)
		if elapsed < minDelay {
			time.Sleep(minDelay - elapsed)
		}

		return BotMoveMsg{move: move}
	}
}

// getMinimumBotDelay returns the minimum delay for bot moves based on difficulty.
// This ensures bot moves feel natural and not instantaneous, especially for Easy difficulty.
// The delay is randomized within a range to add variety and feel more human-like.
func getMinimumBotDelay(difficulty BotDifficulty) time.Duration {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	switch difficulty {
	case BotEasy:
		// Easy: 1-2 seconds (random for variety)
		// Random engine returns instantly, so this is critical
		minSeconds := 1.0 + rng.Float64() // 1.0 to 2.0 seconds
		return time.Duration(minSeconds * float64(time.Second))
	case BotMedium:
		// Medium: 1-2 seconds minimum
		// Minimax usually takes 2-4 seconds naturally, so this is a safety net
		minSeconds := 1.0 + rng.Float64() // 1.0 to 2.0 seconds
		return time.Duration(minSeconds * float64(time.Second))
	case BotHard:
		// Hard: 1 second minimum
		// Minimax usually takes 4-8 seconds naturally, so delay rarely needed
		return 1 * time.Second
	default:
		// Fallback to 1 second
		return 1 * time.Second
	}
}

// handleBotMove processes a successful bot move.
// It applies the move to the game, clears the status message, adds the move to history,
// and checks if the game is over.
func (m Model) handleBotMove(msg BotMoveMsg) (tea.Model, tea.Cmd) {
	// Try to apply the move to the game
	err := m.game.ApplyMove(msg.move)
	if err != nil {
		// Invalid move from bot - show error
		m.errorMsg = fmt.Sprintf("Bot generated invalid move: %v", err)
		m.statusMsg = ""
		return m, nil
	}

	// Move was successful - clear status message
	m.statusMsg = ""
	m.errorMsg = ""

	// Add move to history
	m.moveHistory = append(m.moveHistory, msg.move)

	// Check if the game is over after this move
	if m.game.IsTerminated() {
		m.screen = ScreenGameOver
		// Clean up bot engine
		if m.botEngine != nil {
			_ = m.botEngine.Close()
			m.botEngine = nil
		}
	}

	return m, nil
}

// handleBotMoveError processes a bot move error.
// It displays the error message to the user and clears the thinking status.
func (m Model) handleBotMoveError(msg BotMoveErrorMsg) (tea.Model, tea.Cmd) {
	m.errorMsg = fmt.Sprintf("Bot error: %v", msg.err)
	m.statusMsg = ""
	return m, nil
}
