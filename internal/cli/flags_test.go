package cli

import (
	"testing"

	"github.com/spf13/cobra"

	"rearranger/config"
)

func TestApplyOverrides(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	registerOverrides(cmd)

	err := cmd.ParseFlags([]string{
		"--source", "corpus.txt",
		"-a",
		"--kick-chance", "20",
		"--jabberwocky-chance", "30",
		"--seed", "9",
	})
	if err != nil {
		t.Fatal(err)
	}

	c := config.DefaultConfig()
	c.Policy.GetAttempts = 3
	c.Files.Output = "kept.txt"
	applyOverrides(cmd, c)

	if c.Files.Source != "corpus.txt" {
		t.Errorf("expected source override, got %q", c.Files.Source)
	}
	if !c.Policy.Alphabetical {
		t.Error("expected alphabetical override")
	}
	if c.Newlines.KickChance != 20 || c.Random.Seed != 9 {
		t.Errorf("expected kick 20 and seed 9, got %d and %d", c.Newlines.KickChance, c.Random.Seed)
	}
	if !c.Jabberwocky.Enabled || c.Jabberwocky.Chance != 30 {
		t.Errorf("expected jabberwocky enabled at 30, got %+v", c.Jabberwocky)
	}
	if c.Policy.GetAttempts != 3 || c.Files.Output != "kept.txt" {
		t.Error("unset flags must not override the config")
	}
}

func TestApplyOverrides_LimitBounds(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	registerOverrides(cmd)

	err := cmd.ParseFlags([]string{
		"--count-min", "2",
		"--count-max", "40",
		"--percent-min", "0.5",
		"--percent-max", "12.5",
	})
	if err != nil {
		t.Fatal(err)
	}

	c := config.DefaultConfig()
	applyOverrides(cmd, c)

	want := config.LimitConfig{CountMin: 2, CountMax: 40, PercentMin: 0.5, PercentMax: 12.5}
	if c.Limits != want {
		t.Errorf("expected limits %+v, got %+v", want, c.Limits)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("expected valid limits, got %v", err)
	}
}
