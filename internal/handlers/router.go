package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-bloglist/internal/apperr"
	"github.com/sbilibin2017/gw-bloglist/internal/middlewares"
	httpSwagger "github.com/swaggo/http-swagger"
)

// RouterDeps holds everything the HTTP surface is built from.
type RouterDeps struct {
	Registerer Registerer
	Loginer    Loginer
	Users      UserLister
	Blogs      interface {
		BlogLister
		BlogGetter
		BlogCreator
		BlogUpdater
		BlogDeleter
	}
	Stats    StatsGetter
	Resolver middlewares.IdentityResolver

	// DB runs mutations inside a transaction. Nil disables transactions.
	DB *sqlx.DB

	// SwaggerURL is the location of doc.json. Empty disables /swagger.
	SwaggerURL string
}

// NewRouter builds the chi router. Reads are public; blog mutations pass
// the auth stage and then the transaction stage before their handler.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares.LoggingMiddleware)
	r.Use(chimiddleware.Recoverer)

	r.NotFound(unknownEndpoint)
	r.MethodNotAllowed(methodNotAllowed)

	tx := func(next http.Handler) http.Handler { return next }
	if d.DB != nil {
		tx = middlewares.TxMiddleware(d.DB)
	}

	r.Route("/api", func(r chi.Router) {
		r.Post("/login", NewLoginHandler(d.Loginer))

		r.Get("/users", NewListUsersHandler(d.Users))
		r.With(tx).Post("/users", NewRegisterHandler(d.Registerer))

		r.Get("/blogs", NewListBlogsHandler(d.Blogs))
		r.Get("/blogs/stats", NewBlogStatsHandler(d.Stats))
		r.Get("/blogs/{id}", NewGetBlogHandler(d.Blogs))

		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(d.Resolver))
			r.Use(tx)

			r.Post("/blogs", NewCreateBlogHandler(d.Blogs))
			r.Put("/blogs/{id}", NewUpdateBlogHandler(d.Blogs))
			r.Delete("/blogs/{id}", NewDeleteBlogHandler(d.Blogs))
		})
	})

	if d.SwaggerURL != "" {
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(d.SwaggerURL)))
	}

	return r
}

func unknownEndpoint(w http.ResponseWriter, r *http.Request) {
	apperr.Write(w, apperr.NotFound("unknown endpoint"))
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	apperr.Write(w, apperr.MethodNotAllowed(r.Method))
}
