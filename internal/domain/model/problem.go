package model

// ProblemURLPrefix is prepended to a title slug to build the canonical problem URL.
const ProblemURLPrefix = "https://leetcode.com/problems/"

// Problem represents a LeetCode problem listed under a company tag.
type Problem struct {
	Title      string
	Slug       string
	Difficulty string
}

// URL returns the canonical problem URL.
func (p Problem) URL() string {
	return ProblemURL(p.Slug)
}

// ProblemURL builds the canonical URL for a title slug.
func ProblemURL(slug string) string {
	return ProblemURLPrefix + slug
}
