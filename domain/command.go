package domain

// SendMessage is the command accepted by the messaging service. Content may
// be empty only when ImageURL is set; the image reference itself is opaque to
// the core.
type SendMessage struct {
	SenderID   string `validate:"required"`
	ReceiverID string `validate:"required,nefield=SenderID"`
	Content    string `validate:"required_without=ImageURL"`
	ImageURL   string
}
