// Junction - Multi-Source Aggregation and Correlation for Homelab Dashboards
// Copyright 2026 Junction contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/junctionhq/junction

// Package classify implements the TP-Link device fingerprint classifier.
//
// Classification combines two independent signals: the MAC address OUI (the
// first three octets identify the hardware vendor regardless of naming) and
// model-identifier patterns in the device's hostname and display name.
// Pattern groups are evaluated in a fixed order because families overlap
// textually: every Kasa KP1xx model code contains a Tapo P1xx model code as a
// strict substring, so Kasa must be checked before Tapo or "kp115-plug"
// would be misattributed to Tapo.
package classify

import "strings"

// Classification is the vendor/family taxonomy.
type Classification string

const (
	Kasa    Classification = "kasa"
	Tapo    Classification = "tapo"
	TapoHub Classification = "tapo-hub"
	Unknown Classification = "unknown"
)

// Fingerprint is the classifier's verdict for one device. Classification is
// total: it is always produced, falling back to Unknown.
type Fingerprint struct {
	MACPrefixMatched bool
	Classification   Classification
	Model            string // extracted model code, empty when none matched
}

// ShouldReport applies the reporting rule: a device appears in classifier
// output when either signal is positive, but an Unknown classification needs
// MAC evidence. Hostname text alone never justifies reporting an unknown
// vendor device; arbitrary hostnames would flood the output otherwise.
func (f Fingerprint) ShouldReport() bool {
	if f.Classification != Unknown {
		return true
	}
	return f.MACPrefixMatched
}

// tplinkOUIs holds the TP-Link hardware vendor prefixes (lowercase,
// colon-separated first three octets).
var tplinkOUIs = map[string]bool{
	"50:c7:bf": true,
	"1c:3b:f3": true,
	"68:ff:7b": true,
	"b0:95:75": true,
	"ac:84:c6": true,
	"00:5f:67": true,
	"60:32:b1": true,
	"5c:e9:31": true,
	"b0:be:76": true,
	"c0:c9:e3": true,
	"ac:15:a2": true,
	"98:da:c4": true,
	"6c:5a:b0": true,
	"b4:b0:24": true,
	"9c:a2:f4": true,
	"00:31:92": true,
	"30:de:4b": true,
	"a8:42:a1": true,
	"78:8c:b5": true,
	"d8:07:b6": true,
}

// family is one ordered group of model-identifier patterns. guard, when set,
// can veto a raw pattern hit (negative guard).
type family struct {
	class    Classification
	patterns []string
	guard    func(name string, idx int) bool
}

// families is evaluated strictly in order. Kasa first: its KP1xx codes are
// superstrings of Tapo's P1xx codes. The hub sub-family guards against the
// Kasa KH-prefix convention so "kh100" stays a Kasa device. The two bare
// brand names are last-resort fallbacks.
var families = []family{
	{
		class: Kasa,
		patterns: []string{
			"hs100", "hs103", "hs105", "hs110", "hs200", "hs210", "hs220", "hs300",
			"kp100", "kp105", "kp115", "kp125", "kp200", "kp303", "kp400",
			"ep10", "ep25", "ep40",
			"kl50", "kl60", "kl110", "kl125", "kl130", "kl135", "kl400", "kl430",
			"kh100",
		},
	},
	{
		class: Tapo,
		patterns: []string{
			"p100", "p105", "p110", "p115", "p125", "p135", "p300", "p304",
			"l510", "l520", "l530", "l535", "l610", "l630", "l900", "l920", "l930",
			"t100", "t110", "t300", "t310", "t315",
		},
	},
	{
		class:    TapoHub,
		patterns: []string{"h100", "h200"},
		// Kasa's hub line uses a leading K (KH100); a preceding 'k' means
		// this is not a Tapo hub.
		guard: func(name string, idx int) bool {
			return idx == 0 || name[idx-1] != 'k'
		},
	},
	{class: Kasa, patterns: []string{"kasa"}},
	{class: Tapo, patterns: []string{"tapo"}},
}

// Classify is a pure function over (macAddress, hostname, displayName).
func Classify(mac, hostname, displayName string) Fingerprint {
	f := Fingerprint{
		MACPrefixMatched: matchOUI(mac),
		Classification:   Unknown,
	}

	name := strings.ToLower(hostname + " " + displayName)
	for _, fam := range families {
		for _, pat := range fam.patterns {
			idx := strings.Index(name, pat)
			if idx < 0 {
				continue
			}
			if fam.guard != nil && !fam.guard(name, idx) {
				continue
			}
			f.Classification = fam.class
			f.Model = extractModel(name, idx, pat)
			return f
		}
	}
	return f
}

// matchOUI reports whether the address's first three octets belong to the
// vendor prefix table. Matching is case-insensitive and accepts ':' or '-'
// separators.
func matchOUI(mac string) bool {
	norm := strings.ToLower(strings.ReplaceAll(mac, "-", ":"))
	if len(norm) < 8 {
		return false
	}
	return tplinkOUIs[norm[:8]]
}

// extractModel widens a pattern hit to the full surrounding alphanumeric
// model code, so matching "kp125" in "kp125m-kitchen" yields KP125M. Bare
// brand-name hits ("kasa", "tapo") carry no model; the pattern itself is
// returned upper-cased only when it looks like a model code (contains a
// digit).
func extractModel(name string, idx int, pat string) string {
	end := idx + len(pat)
	for end < len(name) && isAlnum(name[end]) {
		end++
	}
	code := name[idx:end]
	if !strings.ContainsAny(code, "0123456789") {
		return ""
	}
	return strings.ToUpper(code)
}

func isAlnum(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= '0' && c <= '9'
}

// DeviceType maps a fingerprint to the coarse device vocabulary used by the
// TP-Link tooling: plug, plug_energy, power_strip, bulb, hub. Empty for
// unknown devices and bare brand matches.
func DeviceType(f Fingerprint) string {
	if f.Model == "" {
		return ""
	}
	model := f.Model
	switch {
	case f.Classification == TapoHub,
		strings.HasPrefix(model, "KH"):
		return "hub"
	case strings.HasPrefix(model, "HS3"),
		strings.HasPrefix(model, "KP303"),
		strings.HasPrefix(model, "KP400"),
		strings.HasPrefix(model, "P300"),
		strings.HasPrefix(model, "P304"):
		return "power_strip"
	case strings.HasPrefix(model, "KL"),
		strings.HasPrefix(model, "L5"),
		strings.HasPrefix(model, "L6"),
		strings.HasPrefix(model, "L9"):
		return "bulb"
	case strings.HasPrefix(model, "HS110"),
		strings.HasPrefix(model, "KP115"),
		strings.HasPrefix(model, "KP125"),
		strings.HasPrefix(model, "P110"),
		strings.HasPrefix(model, "P115"),
		strings.HasPrefix(model, "P125"):
		return "plug_energy"
	case strings.HasPrefix(model, "T1"), strings.HasPrefix(model, "T3"):
		return "sensor"
	default:
		return "plug"
	}
}
