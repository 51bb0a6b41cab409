package routes

import (
	"net/http"

	"pokeblog/auth"
	"pokeblog/authors"
	"pokeblog/blogs"
	"pokeblog/categories"
	"pokeblog/indexer"
	"pokeblog/middleware"
	"pokeblog/pokemon"
	"pokeblog/ratelim"
	"pokeblog/search"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/blogpic/*filepath", http.Dir("static/blogpic"))
}

func AddAuthRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/auth/register", rl.Limit(auth.Register))
	router.POST("/api/auth/login", rl.Limit(auth.Login))
}

func AddBlogRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/blogs", blogs.ListBlogs)
	router.GET("/api/blogs/:slug", blogs.GetBlog)
	router.GET("/api/blogs/:slug/qr", blogs.GetBlogQR)

	router.POST("/api/blogs", rl.Limit(middleware.Authenticate(blogs.CreateBlog)))
	router.PUT("/api/blog/:id", middleware.Authenticate(blogs.UpdateBlog))
	router.DELETE("/api/blog/:id", middleware.Authenticate(blogs.DeleteBlog))
	router.POST("/api/blogs/image", rl.Limit(middleware.Authenticate(blogs.UploadImage)))
}

func AddCategoryRoutes(router *httprouter.Router) {
	router.GET("/api/categories", categories.ListCategories)
	router.GET("/api/categories/options", categories.ListCategoryOptions)
	router.POST("/api/categories", middleware.Authenticate(categories.CreateCategory))
	router.PUT("/api/categories/:id", middleware.Authenticate(categories.UpdateCategory))
	router.DELETE("/api/categories/:id", middleware.Authenticate(categories.DeleteCategory))
}

func AddAuthorRoutes(router *httprouter.Router) {
	router.GET("/api/authors", authors.ListAuthors)
	router.POST("/api/authors", middleware.Authenticate(authors.CreateAuthor))
}

func AddSearchRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/search", rl.Limit(search.SearchHandler))
	router.GET("/api/search/suggest", rl.Limit(search.SuggestHandler))
}

// AddIndexRoutes wires the reindex trigger surface. The webhook
// authenticates with the search admin key so external schedulers can
// call it; the admin route sits behind the editor JWT instead.
func AddIndexRoutes(router *httprouter.Router, api *indexer.ReindexAPI) {
	router.POST("/api/search/reindex", api.Reindex)
	router.GET("/api/search/reindex", api.Health)
	router.POST("/api/admin/reindex", middleware.Authenticate(api.AdminReindex))
}

func AddPokemonRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/pokemon", rl.Limit(pokemon.SearchPokemon))
	router.GET("/api/pokemon/:name", rl.Limit(pokemon.GetPokemon))
}
