package config

import (
	"os"
	"strings"
)

// Settings resolves notification-channel endpoints and owner display
// settings for a given user key, preferring a per-user override
// (<NAME>_<UPPERCASED USER>) over the global default. Injected wherever a
// per-user value is needed; nothing reads ambient globals at call sites.
type Settings interface {
	PushPlusToken(user string) string
	BarkURL(user string) string
	CarTitle(user string) string
	PhoneNumber(user string) string
	ExternalURL() string
}

type EnvSettings struct {
	defaults NotifyConfig
	lookup   func(string) (string, bool)
}

func NewEnvSettings(defaults NotifyConfig) *EnvSettings {
	return &EnvSettings{defaults: defaults, lookup: os.LookupEnv}
}

// NewStaticSettings returns a resolver with no per-user overrides. Test use.
func NewStaticSettings(defaults NotifyConfig) *EnvSettings {
	return &EnvSettings{
		defaults: defaults,
		lookup:   func(string) (string, bool) { return "", false },
	}
}

func (s *EnvSettings) resolve(name, user, fallback string) string {
	if v, ok := s.lookup(name + "_" + strings.ToUpper(user)); ok && v != "" {
		return v
	}
	return fallback
}

func (s *EnvSettings) PushPlusToken(user string) string {
	return s.resolve("PUSHPLUS_TOKEN", user, s.defaults.PushPlusToken)
}

func (s *EnvSettings) BarkURL(user string) string {
	return s.resolve("BARK_URL", user, s.defaults.BarkURL)
}

func (s *EnvSettings) CarTitle(user string) string {
	return s.resolve("CAR_TITLE", user, s.defaults.CarTitle)
}

func (s *EnvSettings) PhoneNumber(user string) string {
	return s.resolve("PHONE_NUMBER", user, s.defaults.PhoneNumber)
}

func (s *EnvSettings) ExternalURL() string {
	return strings.TrimSuffix(s.defaults.ExternalURL, "/")
}
