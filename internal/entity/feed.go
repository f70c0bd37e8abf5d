package entity

type SortField string

const (
	SortByCreatedAt SortField = "created_at"
	SortByLikes     SortField = "likes"
)

type SortOrder string

const (
	SortDesc SortOrder = "desc"
	SortAsc  SortOrder = "asc"
)

const (
	DefaultFeedLimit = 10
	MaxFeedLimit     = 50
)

// FeedQuery is a listFeed request as received from the viewer.
type FeedQuery struct {
	ViewerID  uint
	Skip      int
	Limit     int
	UserID    *uint
	SortBy    SortField
	SortOrder SortOrder
}

// FeedFilter selects candidate posts for the feed query. Exactly one of
// FollowerID and AuthorID is set. Limit 0 means no limit.
type FeedFilter struct {
	FollowerID uint
	AuthorID   uint
	Skip       int
	Limit      int
	SortBy     SortField
	SortOrder  SortOrder
}
