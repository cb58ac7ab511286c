package entity

type DashboardStats struct {
	TotalPosts        int64 `json:"totalPosts"`
	PublishedPosts    int64 `json:"publishedPosts"`
	DraftPosts        int64 `json:"draftPosts"`
	TotalCategories   int64 `json:"totalCategories"`
	TotalTags         int64 `json:"totalTags"`
	TotalViews        int64 `json:"totalViews"`
	TotalSubscribers  int64 `json:"totalSubscribers"`
	ActiveSubscribers int64 `json:"activeSubscribers"`
}
