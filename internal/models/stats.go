package models

// AuthorBlogs is an author with the number of blogs attributed to it.
type AuthorBlogs struct {
	Author string `json:"author"`
	Blogs  int    `json:"blogs"`
}

// AuthorLikes is an author with the sum of likes over its blogs.
type AuthorLikes struct {
	Author string `json:"author"`
	Likes  int    `json:"likes"`
}

// BlogStats summarizes a list of blogs. Pointer fields are nil for an empty list.
type BlogStats struct {
	TotalLikes int
	Favorite   *BlogDB
	MostBlogs  *AuthorBlogs
	MostLikes  *AuthorLikes
}
