package redact

import (
	"strings"
	"testing"
)

func TestBuildContextClassification(t *testing.T) {
	env := map[string]string{
		"API_SECRET":       "abcd1234",
		"DB_PASSWORD":      "hunter2!",
		"MY_TOKEN":         "tok-value",
		"SSH_KEY_PATH":     "/etc/keys/id",
		"BIIP_PROJECT":     "orion-internal",
		"SAFE_VAR":         "not-harvested",
		"EMPTY_SECRET":     "",
		"BLANK_TOKEN":      "   ",
		"lowercase_secret": "quiet-value",
	}
	ctx := BuildContext(env, "", "tester", "/home/tester")

	if got, want := ctx.SecretCount(), 6; got != want {
		t.Fatalf("SecretCount = %d, want %d", got, want)
	}

	s := New(ctx)
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"keyword secret", "token=abcd1234", "token=••••••••"},
		{"password value", "login with hunter2!", "login with ••••••••"},
		{"lowercase env name", "found quiet-value here", "found •••••••• here"},
		{"custom pattern token", "deploying orion-internal now", "deploying •••◆••• now"},
		{"safe var untouched", "value not-harvested stays", "value not-harvested stays"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Process(tt.input); got != tt.want {
				t.Errorf("Process(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestBuildContextDotenv(t *testing.T) {
	dotenv := "# comment line\nAPP_SECRET=\"from-dotenv\"\nBIIP_HOST=internal.example\nPLAIN=noise\n"
	ctx := BuildContext(nil, dotenv, "", "")

	if got, want := ctx.SecretCount(), 2; got != want {
		t.Fatalf("SecretCount = %d, want %d", got, want)
	}

	s := New(ctx)
	if got := s.Process("secret is from-dotenv"); got != "secret is ••••••••" {
		t.Errorf("dotenv secret not redacted: %q", got)
	}
	if got := s.Process("host internal.example up"); got != "host •••◆••• up" {
		t.Errorf("dotenv custom pattern not redacted: %q", got)
	}
}

func TestBuildContextMalformedDotenv(t *testing.T) {
	// Garbage .env content is silently ignored; it is not an error.
	ctx := BuildContext(map[string]string{"A_SECRET": "still-works"}, "%%% not env syntax\x01", "", "")
	s := New(ctx)
	if got := s.Process("value still-works"); !strings.Contains(got, "••••••••") {
		t.Errorf("env harvesting broken by malformed dotenv: %q", got)
	}
}

func TestBuildContextOrdersLongestFirst(t *testing.T) {
	env := map[string]string{
		"SHORT_SECRET": "abcd1234",
		"LONG_SECRET":  "prefix-abcd1234-suffix",
	}
	ctx := BuildContext(env, "", "", "")

	if ctx.secrets[0].value != "prefix-abcd1234-suffix" {
		t.Errorf("longest literal not first: %q", ctx.secrets[0].value)
	}
}

func TestBuildContextCustomWinsOverKeyword(t *testing.T) {
	// The same value reachable through both classifications gets the
	// custom token.
	env := map[string]string{
		"BIIP_THING": "shared-value",
		"THE_SECRET": "shared-value",
	}
	ctx := BuildContext(env, "", "", "")
	if got, want := ctx.SecretCount(), 1; got != want {
		t.Fatalf("SecretCount = %d, want %d", got, want)
	}
	s := New(ctx)
	if got := s.Process("x shared-value y"); got != "x •••◆••• y" {
		t.Errorf("custom classification did not win: %q", got)
	}
}

func TestBuildContextTrimsHome(t *testing.T) {
	ctx := BuildContext(nil, "", " alice ", "/home/alice/")
	if ctx.Username != "alice" {
		t.Errorf("Username = %q", ctx.Username)
	}
	if ctx.HomeDir != "/home/alice" {
		t.Errorf("HomeDir = %q", ctx.HomeDir)
	}
}
