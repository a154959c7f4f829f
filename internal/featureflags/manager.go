// Package featureflags evaluates the FEATURE_FLAGS setting.
package featureflags

import (
	"hash/fnv"
	"sort"
	"strconv"
	"strings"
)

// LocalizedView gates the derived post + localized content endpoint.
const LocalizedView = "localized_view"

// Manager holds flags parsed from a comma-separated key=value list, for
// example "localized_view=on" or "localized_view=25%". Values are on/true/1,
// off/false/0 or a percentage rolled out by subject.
type Manager struct {
	raw   map[string]string
	rules map[string]int
}

// NewManager parses raw once. Malformed pairs are skipped and unreadable
// values count as off.
func NewManager(raw string) *Manager {
	m := &Manager{raw: map[string]string{}, rules: map[string]int{}}

	for _, pair := range strings.Split(raw, ",") {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		key, value = normalize(key), normalize(value)
		if key == "" || value == "" {
			continue
		}
		m.raw[key] = value
		m.rules[key] = percentOf(value)
	}
	return m
}

// percentOf maps a flag value onto the share of subjects it enables.
func percentOf(value string) int {
	switch value {
	case "on", "true", "1":
		return 100
	case "off", "false", "0":
		return 0
	}
	pct, err := strconv.Atoi(strings.TrimSuffix(value, "%"))
	if err != nil || !strings.HasSuffix(value, "%") || pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// Rollout returns the share (0-100) of subjects name is enabled for.
// Unknown flags are at 0.
func (m *Manager) Rollout(name string) int {
	if m == nil {
		return 0
	}
	return m.rules[normalize(name)]
}

// Enabled reports whether name is on for subject. Partial rollouts hash the
// subject, so the same subject always gets the same answer; an empty subject
// only passes a full rollout.
func (m *Manager) Enabled(name, subject string) bool {
	switch pct := m.Rollout(name); {
	case pct >= 100:
		return true
	case pct <= 0 || subject == "":
		return false
	default:
		return bucket(name, subject) < pct
	}
}

// Names returns the configured flag names in sorted order.
func (m *Manager) Names() []string {
	if m == nil {
		return nil
	}
	out := make([]string, 0, len(m.rules))
	for k := range m.rules {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Raw returns a copy of the configured values as written.
func (m *Manager) Raw() map[string]string {
	out := map[string]string{}
	if m == nil {
		return out
	}
	for k, v := range m.raw {
		out[k] = v
	}
	return out
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func bucket(name, subject string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(normalize(name) + ":" + subject))
	return int(h.Sum32() % 100)
}
