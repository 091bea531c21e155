package upload

import (
	"mime"
	"net/http"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
)

const SVGContentType = "image/svg+xml"

var objectNames = mustGenerator(21)

func mustGenerator(length int) func() string {
	gen, err := nanoid.Standard(length)
	if err != nil {
		panic(err)
	}
	return gen
}

// IsSVG accepts a file by declared MIME type or by extension.
func IsSVG(filename, contentType string) bool {
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil && mediaType == SVGContentType {
		return true
	}
	return strings.HasSuffix(strings.ToLower(filename), ".svg")
}

// ObjectPath is where an uploaded SVG is stored: a random name under the
// uploader's id, so two uploads of the same file never collide.
func ObjectPath(userID uuid.UUID) string {
	return userID.String() + "/" + objectNames() + ".svg"
}

// Avatars are raster only; an SVG avatar would be script served from our origin.
var avatarTypes = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpg",
	"image/gif":  "gif",
	"image/webp": "webp",
}

// DetectAvatar sniffs the first bytes of an upload. The declared type and
// file name are ignored.
func DetectAvatar(head []byte) (contentType, ext string, ok bool) {
	contentType = http.DetectContentType(head)
	ext, ok = avatarTypes[contentType]
	return contentType, ext, ok
}

// AvatarContentType is the type an avatar object is served with, or "" for
// objects that are not raster avatars.
func AvatarContentType(objectPath string) string {
	ext := strings.TrimPrefix(strings.ToLower(path.Ext(objectPath)), ".")
	for contentType, e := range avatarTypes {
		if e == ext {
			return contentType
		}
	}
	return ""
}

// AvatarPath names an avatar object after its owner and the upload time.
func AvatarPath(userID uuid.UUID, ext string, now time.Time) string {
	return userID.String() + "-" + strconv.FormatInt(now.UnixMilli(), 10) + "." + ext
}

// DisplayName derives an SVG's name from the client's file name, dropping
// any directory part a browser may have sent.
func DisplayName(filename string) string {
	base := strings.TrimSpace(path.Base(strings.ReplaceAll(filename, "\\", "/")))
	if base == "" || base == "." || base == "/" || strings.EqualFold(base, ".svg") {
		return "untitled.svg"
	}
	return base
}

// DownloadName is the file name an SVG is saved under by a browser.
func DownloadName(name string) string {
	if strings.HasSuffix(strings.ToLower(name), ".svg") {
		return name
	}
	return name + ".svg"
}

// NormalizeTags trims tags, drops empty ones and removes duplicates while
// keeping first-seen order. Comma separated entries are split.
func NormalizeTags(raw []string) []string {
	tags := []string{}
	seen := map[string]bool{}
	for _, entry := range raw {
		for _, tag := range strings.Split(entry, ",") {
			tag = strings.TrimSpace(tag)
			if tag == "" || seen[tag] {
				continue
			}
			seen[tag] = true
			tags = append(tags, tag)
		}
	}
	return tags
}
