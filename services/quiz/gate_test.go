package quiz

import (
	"context"
	"errors"
	"testing"

	tele "gopkg.in/telebot.v4"
)

type fakeMembershipClient struct {
	role      string
	err       error
	chat      string
	recipient string
}

func (f *fakeMembershipClient) ChatMemberOf(chat, user tele.Recipient) (*tele.ChatMember, error) {
	f.chat = chat.Recipient()
	f.recipient = user.Recipient()
	if f.err != nil {
		return nil, f.err
	}
	return &tele.ChatMember{Role: tele.MemberStatus(f.role)}, nil
}

func TestGateAcceptedStatuses(t *testing.T) {
	for _, role := range []string{"member", "administrator", "creator", "owner"} {
		client := &fakeMembershipClient{role: role}
		gate := NewGate(client, "@channel")
		if !gate.IsMember(context.Background(), 42) {
			t.Fatalf("role %q should satisfy the gate", role)
		}
	}
}

func TestGateRejectedStatuses(t *testing.T) {
	for _, role := range []string{"left", "kicked", "restricted", ""} {
		client := &fakeMembershipClient{role: role}
		gate := NewGate(client, "@channel")
		if gate.IsMember(context.Background(), 42) {
			t.Fatalf("role %q should not satisfy the gate", role)
		}
	}
}

func TestGateFailsClosedOnError(t *testing.T) {
	client := &fakeMembershipClient{err: errors.New("telegram: timeout")}
	gate := NewGate(client, "@channel")
	if gate.IsMember(context.Background(), 42) {
		t.Fatal("transport failure must count as not subscribed")
	}
}

func TestGateAddressesConfiguredChannel(t *testing.T) {
	client := &fakeMembershipClient{role: "member"}
	gate := NewGate(client, "@my_channel")
	gate.IsMember(context.Background(), 77)
	if client.chat != "@my_channel" {
		t.Fatalf("queried chat %q, want @my_channel", client.chat)
	}
	if client.recipient != "77" {
		t.Fatalf("queried user %q, want 77", client.recipient)
	}
}
