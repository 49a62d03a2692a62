// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package theme renders the dealership's public site from a SiteConfig.
// Rendering is pure: the same config and vehicle list always produce the
// same HTML. The editor preview and the public pages share one template,
// so the chat's live preview is exactly what publishing ships.
package theme

import (
	"strings"

	"github.com/shopspring/decimal"
)

// safeTextColors maps a background token to a readable text color of
// the same hue. Both the preview accents and the public site use this
// single table, so the two can never disagree.
var safeTextColors = map[string]string{
	"bg-indigo-600":  "text-indigo-600",
	"bg-indigo-500":  "text-indigo-500",
	"bg-indigo-900":  "text-indigo-900",
	"bg-blue-600":    "text-blue-600",
	"bg-blue-500":    "text-blue-500",
	"bg-blue-900":    "text-blue-900",
	"bg-red-600":     "text-red-600",
	"bg-red-500":     "text-red-500",
	"bg-emerald-600": "text-emerald-600",
	"bg-green-600":   "text-green-600",
	"bg-green-500":   "text-green-500",
	"bg-slate-900":   "text-slate-900",
	"bg-black":       "text-black",
	"bg-gray-900":    "text-gray-900",
	"bg-violet-600":  "text-violet-600",
	"bg-purple-600":  "text-purple-600",
	"bg-amber-500":   "text-amber-500",
	"bg-amber-600":   "text-amber-600",
	"bg-orange-500":  "text-orange-500",
	"bg-pink-600":    "text-pink-600",
}

// SafeTextColor resolves a background token to its readable text color.
// Unknown or empty tokens fall back to indigo.
func SafeTextColor(bgClass string) string {
	if c, ok := safeTextColors[bgClass]; ok {
		return c
	}
	return "text-indigo-600"
}

// FormatBRL renders a price the Brazilian way: R$ 1.234,56.
func FormatBRL(value decimal.Decimal) string {
	s := value.StringFixed(2)

	negative := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	parts := strings.SplitN(s, ".", 2)
	intPart, decPart := parts[0], parts[1]

	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(digit)
	}

	out := "R$ " + b.String() + "," + decPart
	if negative {
		out = "-" + out
	}
	return out
}

// FormatKM renders mileage with thousand separators: 28.000 km.
func FormatKM(value int) string {
	s := decimal.NewFromInt(int64(value)).StringFixed(0)
	negative := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	var b strings.Builder
	for i, digit := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(digit)
	}
	out := b.String() + " km"
	if negative {
		out = "-" + out
	}
	return out
}
