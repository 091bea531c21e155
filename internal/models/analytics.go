package models

// UsageTotals are per-user aggregates over everything the user owns.
type UsageTotals struct {
	Projects     int64 `json:"projects"`
	SVGs         int64 `json:"svgs"`
	Views        int64 `json:"views"`
	Downloads    int64 `json:"downloads"`
	Favorites    int64 `json:"favorites"`
	StorageBytes int64 `json:"storage_bytes"`
}
