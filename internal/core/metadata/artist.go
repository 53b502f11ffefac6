package metadata

import "strings"

// ParsedArtists splits an artist credit into the lead artist and any
// featured collaborators, in credit order.
type ParsedArtists struct {
	Primary  string
	Featured []string
}

// ParseArtists standardizes featuring notation in a raw artist string and
// splits it into a primary artist and featured artists. Empty input yields
// an empty primary and no featured artists.
func ParseArtists(artist string) ParsedArtists {
	if strings.TrimSpace(artist) == "" {
		return ParsedArtists{Featured: []string{}}
	}

	segments := strings.Split(standardizeCollaborations(artist), " feat ")

	parsed := ParsedArtists{
		Primary:  strings.TrimSpace(segments[0]),
		Featured: []string{},
	}
	for _, seg := range segments[1:] {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		parsed.Featured = append(parsed.Featured, seg)
	}
	return parsed
}
