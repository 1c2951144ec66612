package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

const validConfig = `
telegram:
  token: "123:abc"
  admin_id: 42
quiz:
  channel_id: "@channel"
  channel_invite_link: "https://t.me/channel"
database:
  host: localhost
  port: "5432"
  user: u
  password: p
  name: n
  sslmode: disable
`

func TestLoadValid(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Core.Telegram.AdminID != 42 {
		t.Fatalf("admin_id = %d, want 42", cfg.Core.Telegram.AdminID)
	}
	if cfg.Quiz.ChannelID != "@channel" {
		t.Fatalf("channel_id = %q", cfg.Quiz.ChannelID)
	}
	if cfg.Quiz.PsychologistUsername != "@psychologist" {
		t.Fatalf("psychologist default = %q", cfg.Quiz.PsychologistUsername)
	}
	if cfg.CoreConfig() != &cfg.Core {
		t.Fatal("CoreConfig must expose the embedded core config")
	}
}

func TestLoadRequiresChannel(t *testing.T) {
	body := `
telegram:
  token: "123:abc"
  admin_id: 42
`
	if _, err := Load(writeConfig(t, body)); err == nil {
		t.Fatal("expected error for missing channel_id")
	}
}

func TestLoadRequiresAdmin(t *testing.T) {
	body := `
telegram:
  token: "123:abc"
quiz:
  channel_id: "@channel"
`
	if _, err := Load(writeConfig(t, body)); err == nil {
		t.Fatal("expected error for missing admin_id")
	}
}

func TestLoadRejectsBareContact(t *testing.T) {
	body := `
telegram:
  token: "123:abc"
  admin_id: 42
quiz:
  channel_id: "@channel"
  psychologist_username: "no_at_sign"
`
	if _, err := Load(writeConfig(t, body)); err == nil {
		t.Fatal("expected error for contact without @")
	}
}

func TestLoadRejectsNegativePacing(t *testing.T) {
	body := `
telegram:
  token: "123:abc"
  admin_id: 42
quiz:
  channel_id: "@channel"
  broadcast_pacing_ms: -1
`
	if _, err := Load(writeConfig(t, body)); err == nil {
		t.Fatal("expected error for negative pacing")
	}
}
