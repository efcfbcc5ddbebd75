package core

// Playlist is an ordered sequence of tracks. The head of the slice is the
// next track to play.
type Playlist []Track

// IDs returns the track IDs in playlist order.
func (p Playlist) IDs() []string {
	ids := make([]string, len(p))
	for i, t := range p {
		ids[i] = t.ID
	}
	return ids
}

// Clone returns an independent copy of the playlist.
func (p Playlist) Clone() Playlist {
	out := make(Playlist, len(p))
	copy(out, p)
	return out
}
