// Package config defines the PromoTicker configuration format and helpers for
// loading or saving it to disk.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	// AppID is the stable application identifier used for config storage.
	AppID = "promoticker"
	// AppConfigSubdir is the OS-specific directory that holds the config file.
	AppConfigSubdir = "PromoTicker"
	// AppConfigName is the JSON file stored on disk.
	AppConfigName = "config.json"

	// DefaultWidth is the preferred window width when no persisted value exists.
	DefaultWidth = 900
	// DefaultHeight fits the control bar plus a few banners.
	DefaultHeight = 220
	// MinWindowWidth keeps the control bar readable.
	MinWindowWidth = 480
	// MinWindowHeight keeps at least the control bar and one banner visible.
	MinWindowHeight = 80

	// DefaultDurationMs is the time one content width takes to scroll by.
	DefaultDurationMs = 8000
	// DefaultTickerIntervalMs approximates a 60 Hz display.
	DefaultTickerIntervalMs = 16
	// DefaultAnnouncementEveryMs is how long each announcement stays up.
	DefaultAnnouncementEveryMs = 6000

	// FrameSourceAnimation drives marquees from the toolkit's animation loop.
	FrameSourceAnimation = "animation"
	// FrameSourceTicker drives marquees from a timer.
	FrameSourceTicker = "ticker"
)

// Banner is one scrolling promotion strip.
type Banner struct {
	Text       string `json:"text"`
	DurationMs int    `json:"durationMs"`
	Reverse    bool   `json:"reverse,omitempty"`
}

// Duration returns DurationMs as a time.Duration.
func (b Banner) Duration() time.Duration {
	return time.Duration(b.DurationMs) * time.Millisecond
}

// Config aggregates every user-facing preference persisted between sessions.
type Config struct {
	WindowW             int      `json:"windowW"`
	WindowH             int      `json:"windowH"`
	FrameSource         string   `json:"frameSource"`
	TickerIntervalMs    int      `json:"tickerIntervalMs"`
	Banners             []Banner `json:"banners"`
	Announcements       []string `json:"announcements,omitempty"`
	AnnouncementEveryMs int      `json:"announcementEveryMs"`
}

// ConfigDir resolves the writable directory that should contain the config file.
func ConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppConfigSubdir), nil
}

// ConfigPath is a helper that returns the full path to config.json.
func ConfigPath() (string, error) {
	d, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, AppConfigName), nil
}

// Load reads the config from disk, falling back to defaults when no file
// exists yet.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := Default()
			// Try saving an initial config, but still return defaults even if it fails.
			_ = cfg.Save()
			return cfg, nil
		}
		return nil, err
	}

	cfg := &Config{}
	if err := json.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("config parse error: %w", err)
	}
	cfg.applyRuntimeDefaults()
	return cfg, nil
}

// Save persists the configuration to disk, creating directories as needed.
func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// AppID returns the stable identifier used by the GUI framework.
func (c *Config) AppID() string { return AppID }

// TickerInterval returns TickerIntervalMs as a time.Duration.
func (c *Config) TickerInterval() time.Duration {
	return time.Duration(c.TickerIntervalMs) * time.Millisecond
}

// AnnouncementEvery returns AnnouncementEveryMs as a time.Duration.
func (c *Config) AnnouncementEvery() time.Duration {
	return time.Duration(c.AnnouncementEveryMs) * time.Millisecond
}

// DefaultBanners are shown until the user configures their own.
func DefaultBanners() []Banner {
	return []Banner{
		{Text: "Summer sale: 30% off all sandals", DurationMs: DefaultDurationMs},
		{Text: "Free delivery on orders over 50", DurationMs: 12000, Reverse: true},
		{Text: "New arrivals every Friday", DurationMs: 6000},
	}
}

// DefaultAnnouncements rotate in the control bar.
func DefaultAnnouncements() []string {
	return []string{
		"Store opens at 9:00",
		"Loyalty members get double points this week on every purchase in store and online",
	}
}

// Default builds an in-memory config populated with safe defaults.
func Default() *Config {
	cfg := &Config{
		WindowW:             DefaultWidth,
		WindowH:             DefaultHeight,
		FrameSource:         FrameSourceAnimation,
		TickerIntervalMs:    DefaultTickerIntervalMs,
		Banners:             DefaultBanners(),
		Announcements:       DefaultAnnouncements(),
		AnnouncementEveryMs: DefaultAnnouncementEveryMs,
	}
	cfg.applyRuntimeDefaults()
	return cfg
}

// applyRuntimeDefaults normalizes config values after a load or when defaults
// are constructed, ensuring the UI always receives sane inputs.
func (c *Config) applyRuntimeDefaults() {
	if c.WindowW == 0 {
		c.WindowW = DefaultWidth
	}
	if c.WindowW < MinWindowWidth {
		c.WindowW = MinWindowWidth
	}
	if c.WindowH == 0 {
		c.WindowH = DefaultHeight
	}
	if c.WindowH < MinWindowHeight {
		c.WindowH = MinWindowHeight
	}
	switch strings.ToLower(strings.TrimSpace(c.FrameSource)) {
	case FrameSourceTicker:
		c.FrameSource = FrameSourceTicker
	default:
		c.FrameSource = FrameSourceAnimation
	}
	if c.TickerIntervalMs <= 0 {
		c.TickerIntervalMs = DefaultTickerIntervalMs
	}
	if c.AnnouncementEveryMs <= 0 {
		c.AnnouncementEveryMs = DefaultAnnouncementEveryMs
	}

	banners := c.Banners[:0]
	for _, b := range c.Banners {
		b.Text = strings.TrimSpace(b.Text)
		if b.Text == "" {
			continue
		}
		if b.DurationMs <= 0 {
			b.DurationMs = DefaultDurationMs
		}
		banners = append(banners, b)
	}
	if len(banners) == 0 {
		banners = DefaultBanners()
	}
	c.Banners = banners

	announcements := c.Announcements[:0]
	for _, a := range c.Announcements {
		if a = strings.TrimSpace(a); a != "" {
			announcements = append(announcements, a)
		}
	}
	c.Announcements = announcements
}
