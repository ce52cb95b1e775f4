package entities

import "strings"

// DefaultPowerProvider is used when the location names no known emirate.
const DefaultPowerProvider = "ADDC – Abu Dhabi"

type powerProvider struct {
	emirate  string
	provider string
}

// Ordered: the first emirate contained in the location wins.
var powerProviders = []powerProvider{
	{emirate: "Abu Dhabi", provider: "ADDC – Abu Dhabi"},
	{emirate: "Dubai", provider: "DEWA – Dubai"},
	{emirate: "Sharjah", provider: "SEWA – Sharjah"},
	{emirate: "Ajman", provider: "EWE – Ajman"},
	{emirate: "Umm Al Quwain", provider: "EWE – Umm Al Quwain"},
	{emirate: "Ras Al Khaimah", provider: "FEWA – Ras Al Khaimah"},
	{emirate: "Fujairah", provider: "EWE – Fujairah"},
}

// PowerProviders lists the selectable providers.
func PowerProviders() []string {
	out := make([]string, 0, len(powerProviders))
	for _, p := range powerProviders {
		out = append(out, p.provider)
	}
	return out
}

// DetectPowerProvider maps a project location to its utility provider.
func DetectPowerProvider(location string) string {
	loc := strings.ToLower(strings.TrimSpace(location))
	if loc == "" {
		return DefaultPowerProvider
	}
	for _, p := range powerProviders {
		if strings.Contains(loc, strings.ToLower(p.emirate)) {
			return p.provider
		}
	}
	return DefaultPowerProvider
}
