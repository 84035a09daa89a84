package client

// PortfolioManager builds a Manager over the portfolio endpoints.
func PortfolioManager(c *Client, confirm func(id string) bool) *Manager[Portfolio, PortfolioDraft] {
	return NewManager(Ops[Portfolio, PortfolioDraft]{
		List:   c.ListPortfolio,
		Create: c.CreatePortfolio,
		Update: c.UpdatePortfolio,
		Delete: c.DeletePortfolio,
		IDOf:   func(p Portfolio) string { return p.ID },
	}, confirm)
}

// BlogManager builds a Manager over the admin blog endpoints. The list
// operation is the authenticated all-posts view, drafts included.
func BlogManager(c *Client, confirm func(id string) bool) *Manager[BlogPost, BlogPostDraft] {
	return NewManager(Ops[BlogPost, BlogPostDraft]{
		List:   c.ListAllBlogPosts,
		Create: c.CreateBlogPost,
		Update: c.UpdateBlogPost,
		Delete: c.DeleteBlogPost,
		IDOf:   func(p BlogPost) string { return p.ID },
	}, confirm)
}
