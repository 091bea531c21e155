package database

import "strings"

// SortKey names the ordering of a listing. Every ordering ends with the row
// id so repeated queries return rows in the same order.
type SortKey string

const (
	SortName      SortKey = "name"
	SortRecent    SortKey = "recent"
	SortUpdated   SortKey = "updated"
	SortViews     SortKey = "views"
	SortDownloads SortKey = "downloads"
	SortTrending  SortKey = "trending"
)

// ParseSortKey maps user input onto a SortKey, falling back to def.
// "date" and "newest" are accepted as aliases of "recent".
func ParseSortKey(s string, def SortKey) SortKey {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "name":
		return SortName
	case "recent", "date", "newest":
		return SortRecent
	case "updated":
		return SortUpdated
	case "views":
		return SortViews
	case "downloads":
		return SortDownloads
	case "trending":
		return SortTrending
	default:
		return def
	}
}

func svgOrderBy(key SortKey) string {
	switch key {
	case SortRecent, SortUpdated:
		return "s.created_at DESC, s.id"
	case SortViews:
		return "s.views DESC, s.id"
	case SortDownloads:
		return "s.downloads DESC, s.id"
	case SortTrending:
		return "(s.views + s.downloads) DESC, s.id"
	default:
		return "s.name ASC, s.id"
	}
}

func projectOrderBy(key SortKey) string {
	switch key {
	case SortRecent:
		return "p.created_at DESC, p.id"
	case SortUpdated:
		return "p.updated_at DESC, p.id"
	case SortViews:
		return "total_views DESC, p.id"
	case SortDownloads:
		return "total_downloads DESC, p.id"
	case SortTrending:
		// Output aliases only resolve as bare ORDER BY items, so the
		// aggregates are spelled out.
		return "(COALESCE(SUM(s.views), 0) + COALESCE(SUM(s.downloads), 0) + COUNT(s.id) FILTER (WHERE s.favorited)) DESC, p.id"
	default:
		return "p.name ASC, p.id"
	}
}
