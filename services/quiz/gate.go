package quiz

import (
	"context"
	"log/slog"

	"github.com/m3rciful/quizbot/core/logger"

	tele "gopkg.in/telebot.v4"
)

// MembershipClient is the slice of the Telegram API the gate needs.
// *tele.Bot satisfies it.
type MembershipClient interface {
	ChatMemberOf(chat, user tele.Recipient) (*tele.ChatMember, error)
}

// satisfiedStatuses are the membership statuses that pass the gate.
var satisfiedStatuses = map[string]struct{}{
	"member":        {},
	"administrator": {},
	"creator":       {},
	"owner":         {},
}

// channelRef lets the gate address a channel by "@username" or numeric id.
type channelRef string

func (r channelRef) Recipient() string { return string(r) }

// Gate answers whether a user is subscribed to the required channel.
// It holds no state; one membership query per call, no retries.
type Gate struct {
	client  MembershipClient
	channel channelRef
}

// NewGate builds a gate against the given channel identifier.
func NewGate(client MembershipClient, channel string) *Gate {
	return &Gate{client: client, channel: channelRef(channel)}
}

// IsMember reports whether the user currently satisfies the subscription
// requirement. Any transport failure counts as "not a member": the gate
// fails closed and never surfaces the error to the caller.
func (g *Gate) IsMember(ctx context.Context, userID int64) bool {
	member, err := g.client.ChatMemberOf(g.channel, &tele.User{ID: userID})
	if err != nil {
		logger.Warn(ctx, "service.quiz", "gate.check",
			slog.String("status", "fail"),
			slog.Int64("user_id", userID),
			slog.String("channel", string(g.channel)),
			slog.String("err", logger.SanitizeLimit(err.Error(), 256)),
		)
		return false
	}

	_, ok := satisfiedStatuses[string(member.Role)]
	logger.Debug(ctx, "service.quiz", "gate.check",
		slog.String("status", "ok"),
		slog.Int64("user_id", userID),
		slog.String("role", string(member.Role)),
		slog.Bool("subscribed", ok),
	)
	return ok
}
