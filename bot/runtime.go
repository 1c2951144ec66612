package bot

import (
	"errors"
	"sync/atomic"

	tele "gopkg.in/telebot.v4"
)

var errBotNotStarted = errors.New("bot: not started yet")

// botRef is a late-bound handle to the running bot. The bot instance is
// created inside the telegram runtime, after the services that need it
// are already wired, so collaborators hold this reference and it is
// resolved once in the OnStart hook.
type botRef struct {
	ptr atomic.Pointer[tele.Bot]
}

func (r *botRef) set(b *tele.Bot) {
	r.ptr.Store(b)
}

func (r *botRef) bot() (*tele.Bot, error) {
	b := r.ptr.Load()
	if b == nil {
		return nil, errBotNotStarted
	}
	return b, nil
}

// ChatMemberOf satisfies quiz.MembershipClient for the subscription gate.
func (r *botRef) ChatMemberOf(chat, user tele.Recipient) (*tele.ChatMember, error) {
	b, err := r.bot()
	if err != nil {
		return nil, err
	}
	return b.ChatMemberOf(chat, user)
}

// Send delivers a message outside of an update context, e.g. the
// operator notification.
func (r *botRef) Send(to tele.Recipient, what interface{}, opts ...interface{}) error {
	b, err := r.bot()
	if err != nil {
		return err
	}
	_, err = b.Send(to, what, opts...)
	return err
}
