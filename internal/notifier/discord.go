package notifier

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/tulipkids/funwalk-api/internal/models"
)

type Notifier interface {
	NotifyPaidRegistration(reg models.Registration) error
}

type DiscordNotifier struct {
	session   *discordgo.Session
	channelID string
}

func NewDiscordNotifier(session *discordgo.Session, channelID string) *DiscordNotifier {
	return &DiscordNotifier{
		session:   session,
		channelID: channelID,
	}
}

func (n *DiscordNotifier) NotifyPaidRegistration(reg models.Registration) error {
	if n.session == nil {
		return fmt.Errorf("discord session is nil")
	}
	if n.channelID == "" {
		return fmt.Errorf("discord channel ID is empty")
	}

	txID := "-"
	if reg.TransactionID != nil {
		txID = *reg.TransactionID
	}

	tulipStr := ""
	if reg.IsTulipParent {
		tulipStr = "\n**Tulip Kids parent** 🌷"
	}

	message := fmt.Sprintf("🎉 **New Paid Registration**\n**Name:** %s\n**Family:** %s\n**Participants:** %d adults, %d kids\n**Amount:** $%d\n**Transaction:** %s%s",
		reg.Name,
		reg.FamilyCategory,
		reg.AdultCount,
		reg.KidsCount,
		reg.TotalAmount,
		txID,
		tulipStr,
	)

	_, err := n.session.ChannelMessageSend(n.channelID, message)
	if err != nil {
		log.Printf("Failed to send discord message: %v", err)
		return err
	}

	return nil
}
