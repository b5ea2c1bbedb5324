package discord

type FileMessage struct {
	ChannelID   string
	Content     string
	Filename    string
	ContentType string
	FileBody    []byte
}

// Notifier delivers finished reports to a Discord text channel.
type Notifier interface {
	ChannelID() string
	SendChannelMessageWithFile(msg FileMessage) error
}

// NoopNotifier is used when Discord delivery is not configured.
type NoopNotifier struct{}

func (NoopNotifier) ChannelID() string { return "" }

func (NoopNotifier) SendChannelMessageWithFile(FileMessage) error { return nil }
