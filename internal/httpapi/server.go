package httpapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"tasktracker/internal/auth"
	"tasktracker/internal/service"
)

// Server bundles the domain services behind the HTTP boundary.
type Server struct {
	users      *service.UserService
	categories *service.CategoryService
	tags       *service.TagService
	tasks      *service.TaskService
	signer     *auth.TokenSigner
}

func NewServer(
	users *service.UserService,
	categories *service.CategoryService,
	tags *service.TagService,
	tasks *service.TaskService,
	signer *auth.TokenSigner,
) *Server {
	return &Server{
		users:      users,
		categories: categories,
		tags:       tags,
		tasks:      tasks,
		signer:     signer,
	}
}

// Router builds the chi route tree.
func (s *Server) Router(corsOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Post("/auth/register", s.handleRegister)
	r.Post("/auth/login", s.handleLogin)

	r.Route("/users", func(r chi.Router) {
		r.Get("/", s.handleListUsers)
		r.Post("/", s.handleCreateUser)
		r.Get("/username/{username}", s.handleGetUserByUsername)
		r.Get("/{id}", s.handleGetUser)
		r.Put("/{id}", s.handleUpdateUser)
		r.Delete("/{id}", s.handleDeleteUser)
	})

	r.Route("/categories", func(r chi.Router) {
		r.Get("/", s.handleListCategories)
		r.Post("/", s.handleCreateCategory)
		r.Get("/{id}", s.handleGetCategory)
		r.Put("/{id}", s.handleUpdateCategory)
		r.Delete("/{id}", s.handleDeleteCategory)
	})

	r.Route("/tags", func(r chi.Router) {
		r.Get("/", s.handleListTags)
		r.Post("/", s.handleCreateTag)
		r.Get("/{id}", s.handleGetTag)
		r.Put("/{id}", s.handleUpdateTag)
		r.Delete("/{id}", s.handleDeleteTag)
	})

	r.Route("/tasks", func(r chi.Router) {
		r.Get("/", s.handleListTasks)
		r.Post("/", s.handleCreateTask)
		r.Get("/status/{status}", s.handleTasksByStatus)
		r.Get("/priority/{priority}", s.handleTasksByPriority)
		r.Get("/category/{categoryId}", s.handleTasksByCategory)
		r.Get("/tag/{tagId}", s.handleTasksByTag)
		r.Get("/due-between", s.handleTasksDueBetween)
		r.Get("/{id}", s.handleGetTask)
		r.Put("/{id}", s.handleUpdateTask)
		r.Delete("/{id}", s.handleDeleteTask)
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	return r
}

// idParam parses a numeric chi URL parameter.
func idParam(r *http.Request, name string) (uint, bool) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// userIDQuery parses the required userId query parameter that scopes every
// task operation.
func userIDQuery(r *http.Request) (uint, bool) {
	raw := r.URL.Query().Get("userId")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
