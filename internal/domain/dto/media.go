package dto

import "folio/internal/domain/model"

// MediaItem is a media row plus its resolved URL.
type MediaItem struct {
	model.Media
	URL string `json:"url"`
}

type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// MediaPage is the admin listing shape.
type MediaPage struct {
	Media      []MediaItem `json:"media"`
	Pagination Pagination  `json:"pagination"`
}

type SectionStat struct {
	Section   string `json:"section"`
	Count     int64  `json:"count"`
	TotalSize int64  `json:"totalSize" gorm:"column:total_size"`
}

type TypeStat struct {
	MediaType string `json:"media_type"`
	Count     int64  `json:"count"`
}

type DailyCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type MediaStats struct {
	Total     int64         `json:"total"`
	Sections  []SectionStat `json:"sections"`
	Types     []TypeStat    `json:"types"`
	TotalSize int64         `json:"totalSize"`
}

type DashboardSummary struct {
	TotalMedia   int64 `json:"totalMedia"`
	TotalImages  int64 `json:"totalImages"`
	TotalVideos  int64 `json:"totalVideos"`
	TotalStorage int64 `json:"totalStorage"`
}

type Dashboard struct {
	Summary       DashboardSummary `json:"summary"`
	RecentUploads []MediaItem      `json:"recentUploads"`
	SectionStats  []SectionStat    `json:"sectionStats"`
	RecentStats   []DailyCount     `json:"recentStats"`
}
