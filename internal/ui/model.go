package ui

import (
	"chessforge/internal/bot"
	"chessforge/internal/engine"
	"github.com/charmbracelet/bubbles/textinput"
)

// Screen represents the current UI screen state in the application.
// The application navigates between different screens based on user interaction.
type Screen int

const (
	// ScreenMainMenu is the initial screen showing main menu options
	ScreenMainMenu Screen = iota
	// ScreenGameTypeSelect allows the user to choose between PvP or PvBot
	ScreenGameTypeSelect
	// ScreenBotSelect allows the user to choose bot difficulty
	ScreenBotSelect
	// ScreenColorSelect allows the user to choose their color in bot games
	ScreenColorSelect
	// ScreenFENInput allows the user to load a game from FEN notation
	ScreenFENInput
	// ScreenGamePlay is the main game screen where chess is played
	ScreenGamePlay
	// ScreenGameOver is displayed when the game ends
	ScreenGameOver
	// ScreenSettings allows the user to configure display options
	ScreenSettings
	// ScreenDrawPrompt is displayed when one player offers a draw
	ScreenDrawPrompt
)

// GameType represents the type of chess game being played.
type GameType int

const (
	// GameTypePvP is a player vs player game
	GameTypePvP GameType = iota
	// GameTypePvBot is a player vs bot game
	GameTypePvBot
)

// BotDifficulty represents the difficulty level of the chess bot.
type BotDifficulty int

const (
	// BotEasy is the easiest bot difficulty level
	BotEasy BotDifficulty = iota
	// BotMedium is the medium bot difficulty level
	BotMedium
	// BotHard is the hardest bot difficulty level
	BotHard
)

// Model is the Bubbletea application model that holds all application state.
// It implements the tea.Model interface (Init, Update, View methods).
type Model struct {
	// Game state
	// game holds the current chess game state from the engine (board, turn,
	// clocks, history, and terminal status all live here)
	game *engine.Game
	// moveHistory stores all moves made in the current game
	moveHistory []engine.Move

	// UI state
	// screen tracks which screen is currently being displayed
	screen Screen
	// navStack tracks the navigation history for back navigation
	navStack []Screen
	// config holds display configuration options
	config Config
	// theme holds the current color theme for UI rendering
	theme Theme
	// termWidth holds the current terminal width in characters
	termWidth int
	// termHeight holds the current terminal height in lines
	termHeight int

	// Input state
	// input holds the current user input text
	input string
	// fenInput holds the text input component for FEN string entry
	fenInput textinput.Model
	// errorMsg holds any error message to display to the user
	errorMsg string
	// statusMsg holds status information to display to the user
	statusMsg string

	// Menu state
	// menuSelection tracks the currently selected menu item index
	menuSelection int
	// menuOptions holds the list of options available in the current menu
	menuOptions []string
	// settingsSelection tracks the currently selected setting in the settings screen
	settingsSelection int
	// drawPromptSelection tracks the currently selected option in the draw prompt (0=Accept, 1=Decline)
	drawPromptSelection int

	// Game metadata
	// gameType indicates whether this is PvP or PvBot
	gameType GameType
	// botDifficulty stores the selected bot difficulty
	botDifficulty BotDifficulty
	// botEngine holds the chess bot engine instance for PvBot games
	botEngine bot.Engine
	// userColor stores the color the user is playing (White or Black) in bot games
	userColor engine.Color
	// resignedBy indicates which player resigned (White, Black, or -1 for no resignation)
	resignedBy int8
	// drawOfferedBy indicates which color offered a draw (-1 if none)
	drawOfferedBy int8
	// drawOfferedByWhite tracks if White has already offered a draw this game
	drawOfferedByWhite bool
	// drawOfferedByBlack tracks if Black has already offered a draw this game
	drawOfferedByBlack bool
	// drawByAgreement indicates if the game ended by draw agreement
	drawByAgreement bool

	// Overlay state
	// showShortcutsOverlay indicates whether the keyboard shortcuts help overlay is displayed
	showShortcutsOverlay bool

	// Mouse interaction state
	// selectedSquare holds the currently selected piece's square for mouse interaction
	// nil means no piece is currently selected
	selectedSquare *engine.Square
	// validMoves stores the valid destination squares for the currently selected piece
	// This is computed when a piece is selected and used to validate move execution
	validMoves []engine.Square
	// blinkOn controls the blinking highlight state for selected squares
	// Toggles every 500ms when a piece is selected to create a blinking effect
	blinkOn bool
}

// NewModel creates and initializes a new Model with the provided configuration.
// The model always starts at the main menu screen.
func NewModel(config Config) Model {
	// Initialize the text input for FEN entry
	ti := textinput.New()
	ti.Placeholder = "Enter FEN string..."
	ti.CharLimit = 100
	ti.Width = 80

	// Load theme based on config
	theme := GetTheme(ParseThemeName(config.Theme))

	return Model{
		// Initialize with no game (created when starting a new game)
		game:        nil,
		moveHistory: []engine.Move{},

		// Always start at main menu
		screen: ScreenMainMenu,

		// Use the provided configuration
		config: config,

		// Use the loaded theme
		theme: theme,

		// Initialize input state
		input:     "",
		fenInput:  ti,
		errorMsg:  "",
		statusMsg: "",

		// Initialize main menu
		menuSelection: 0,
		menuOptions:   buildMainMenuOptions(),

		// Initialize settings
		settingsSelection: 0,

		// Default game metadata
		gameType:      GameTypePvP,
		botDifficulty: BotEasy,
		resignedBy:    -1, // No resignation

		// Initialize draw offer state
		drawOfferedBy:      -1, // No draw offer
		drawOfferedByWhite: false,
		drawOfferedByBlack: false,
		drawByAgreement:    false,
	}
}

// buildMainMenuOptions constructs the main menu options array.
func buildMainMenuOptions() []string {
	return []string{"New Game", "Load Game", "Settings", "Exit"}
}

// View renders the current state of the UI as a string.
// This is called by Bubbletea to display the interface.
// The actual rendering logic is implemented in view.go.
