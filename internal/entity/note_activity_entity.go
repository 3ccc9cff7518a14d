package entity

type ViewResult struct {
	Viewed      bool
	Incremented bool
}

type LikeResult struct {
	Liked bool
}
