package ports

// Clipboard moves exchange text to and from the system clipboard
type Clipboard interface {
	ReadText() (string, error)
	WriteText(text string) error
	IsAvailable() bool
}
