package mail

// Message is a fully rendered notification, ready for the SMTP sender.
// Rendering is pure; nothing here touches the network.
type Message struct {
	FromName string
	To       string
	Subject  string
	HTML     string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	Secure   bool
}
