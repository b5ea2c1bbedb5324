package discord

import (
	"bytes"
	"fmt"

	"github.com/bwmarrin/discordgo"
	discordpkg "github.com/foxseedlab/nokchwi/internal/discord"
)

// Client posts over the REST API only; no gateway connection is opened.
type Client struct {
	session   *discordgo.Session
	channelID string
}

func NewClient(token, channelID string) (discordpkg.Notifier, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	return &Client{session: s, channelID: channelID}, nil
}

func (c *Client) ChannelID() string {
	return c.channelID
}

func (c *Client) SendChannelMessageWithFile(msg discordpkg.FileMessage) error {
	channelID := msg.ChannelID
	if channelID == "" {
		channelID = c.channelID
	}
	contentType := msg.ContentType
	if contentType == "" {
		contentType = "text/plain"
	}
	_, err := c.session.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Content: msg.Content,
		Files: []*discordgo.File{
			{Name: msg.Filename, ContentType: contentType, Reader: bytes.NewReader(msg.FileBody)},
		},
	})
	return err
}
