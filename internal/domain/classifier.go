package domain

import (
	"path"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Vovarama1992/bestelerim/internal/models"
)

var (
	audioExt = map[string]bool{"mp3": true, "wav": true, "ogg": true, "m4a": true, "flac": true, "aac": true}
	videoExt = map[string]bool{"mp4": true, "webm": true, "mov": true, "avi": true, "mkv": true}
)

// Classify maps a filename to its media kind by extension, case-insensitively.
// ok is false for anything outside the audio and video sets.
func Classify(filename string) (kind models.MediaKind, ok bool) {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(filename), "."))
	switch {
	case audioExt[ext]:
		return models.KindAudio, true
	case videoExt[ext]:
		return models.KindVideo, true
	}
	return "", false
}

// DisplayName turns "my_song-1.mp3" into "My Song 1": the extension is
// dropped, every '-' and '_' becomes a space and the first letter of each
// whitespace-delimited token is uppercased. The rest of a token keeps its case.
// Anything after the last '.' counts as the extension, so applying DisplayName
// to its own output is a no-op only when that output has no dot:
// "Mr._Smith.mp3" gives "Mr. Smith", and "Mr. Smith" gives "Mr".
func DisplayName(filename string) string {
	stem := strings.TrimSuffix(filename, path.Ext(filename))
	stem = strings.NewReplacer("-", " ", "_", " ").Replace(stem)

	var sb strings.Builder
	sb.Grow(len(stem))

	atStart := true
	for len(stem) > 0 {
		r, size := utf8.DecodeRuneInString(stem)
		if r == utf8.RuneError && size == 1 {
			// битый байт пропускаем как есть
			sb.WriteString(stem[:1])
			stem = stem[1:]
			atStart = false
			continue
		}
		stem = stem[size:]

		if unicode.IsSpace(r) {
			atStart = true
			sb.WriteRune(r)
			continue
		}
		if atStart {
			r = unicode.ToUpper(r)
			atStart = false
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
