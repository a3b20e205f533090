package telegram

// reply is one outbound message: the text plus an optional grid of
// quick-reply buttons.
type reply struct {
	text     string
	keyboard [][]string
}
