package entity

import (
	"sort"
	"time"
)

type AdType string

const (
	AdTypeAdsense AdType = "adsense"
	AdTypeBanner  AdType = "banner"
)

func (t AdType) Valid() bool {
	return t == AdTypeAdsense || t == AdTypeBanner
}

type AdPosition string

const (
	PositionHeader        AdPosition = "header"
	PositionSidebar       AdPosition = "sidebar"
	PositionArticleTop    AdPosition = "article-top"
	PositionArticleMiddle AdPosition = "article-middle"
	PositionArticleBottom AdPosition = "article-bottom"
)

func (p AdPosition) Valid() bool {
	switch p {
	case PositionHeader, PositionSidebar, PositionArticleTop, PositionArticleMiddle, PositionArticleBottom:
		return true
	}
	return false
}

type Advertisement struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Type             AdType     `json:"type"`
	Position         AdPosition `json:"position"`
	AdsenseCode      *string    `json:"adsense_code"`
	BannerImage      *string    `json:"banner_image"`
	BannerLink       *string    `json:"banner_link"`
	IsActive         bool       `json:"is_active"`
	Priority         int        `json:"priority"`
	ClicksCount      int        `json:"clicks_count"`
	ImpressionsCount int        `json:"impressions_count"`
	StartDate        *time.Time `json:"start_date"`
	EndDate          *time.Time `json:"end_date"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// Running reports whether the ad is active and now falls inside its
// optional start/end window.
func (a *Advertisement) Running(now time.Time) bool {
	if !a.IsActive {
		return false
	}
	if a.StartDate != nil && a.StartDate.After(now) {
		return false
	}
	if a.EndDate != nil && a.EndDate.Before(now) {
		return false
	}
	return true
}

// SelectAd returns the highest-priority running ad for position, or nil.
// Ties keep the input order.
func SelectAd(ads []*Advertisement, position AdPosition, now time.Time) *Advertisement {
	eligible := RunningAds(ads, position, now)
	if len(eligible) == 0 {
		return nil
	}
	sort.SliceStable(eligible, func(i, j int) bool {
		return eligible[i].Priority > eligible[j].Priority
	})
	return eligible[0]
}

// RunningAds keeps the running ads placed at position, preserving order.
func RunningAds(ads []*Advertisement, position AdPosition, now time.Time) []*Advertisement {
	out := make([]*Advertisement, 0, len(ads))
	for _, ad := range ads {
		if ad.Position == position && ad.Running(now) {
			out = append(out, ad)
		}
	}
	return out
}
