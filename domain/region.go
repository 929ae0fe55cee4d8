package domain

import (
	"strings"
)

// Discord voice regions grouped by continent. Used to prefer nodes near a guild's voice server.
var voiceRegionGroups = map[string][]string{
	"asia": {"hongkong", "india", "japan", "singapore", "southafrica", "sydney"},
	"eu":   {"amsterdam", "eu-central", "eu-west", "europe", "frankfurt", "london", "russia"},
	"us":   {"brazil", "us-central", "us-east", "us-south", "us-west"},
}

var voiceRegionToGroup = func() map[string]string {
	out := make(map[string]string)
	for group, regions := range voiceRegionGroups {
		for _, r := range regions {
			out[r] = group
		}
	}
	return out
}()

// RegionGroup returns the continent group ("asia", "eu", "us") of a region, or "" when unknown.
// A region that is itself a group name maps to that group.
func RegionGroup(region string) string {
	region = strings.ToLower(strings.TrimSpace(region))
	if _, ok := voiceRegionGroups[region]; ok {
		return region
	}
	if g, ok := voiceRegionToGroup[region]; ok {
		return g
	}
	for name, g := range voiceRegionToGroup {
		if strings.HasPrefix(region, name) {
			return g
		}
	}
	return ""
}

// RegionFromEndpoint derives the voice region from a Discord voice endpoint such as
// "eu-west123.discord.media:443". Returns "" when the endpoint has no recognisable region.
func RegionFromEndpoint(endpoint string) string {
	host := strings.ToLower(endpoint)
	if i := strings.Index(host, "://"); i >= 0 {
		host = host[i+3:]
	}
	if i := strings.IndexAny(host, ".:"); i >= 0 {
		host = host[:i]
	}
	host = strings.TrimRight(host, "0123456789")
	if host == "" {
		return ""
	}
	if RegionGroup(host) == "" {
		return ""
	}
	return host
}
