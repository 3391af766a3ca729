package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/caffeinepub/task-queue/internal/backend/service"
	"github.com/caffeinepub/task-queue/internal/backend/store"
	"github.com/caffeinepub/task-queue/pkg/backendsdk"
	"github.com/caffeinepub/task-queue/pkg/httpx"
	"github.com/caffeinepub/task-queue/pkg/jwtx"
	"github.com/caffeinepub/task-queue/pkg/slogx"

	_ "github.com/caffeinepub/task-queue/api/backend" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeySet
	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store   *store.Store
	Origins *service.OriginService

	// DevMode echoes generated verification codes in responses.
	DevMode bool

	// TrustClientVerification enables the routes that let a client set its
	// own verification code or mark itself verified.
	TrustClientVerification bool
}

func NewRouter(
	keys *jwtx.KeySet,
	verifier jwtx.Verifier,
	buildVersion string,
	st *store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       slogx.OrDiscard(logger),
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerOrigins()
	r.registerAuth()
	r.registerProfile()
	r.registerVerification()
	r.registerFitness()
	r.registerTasks()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Task Queue Backend API
//	@version		0.1.0
//	@description	Account, session and per-account data storage for the task queue and fitness clients.
//	@description
//	@description				Every call except origin minting and health checks is scoped to an origin.
//	@description				Mint one with POST /v1/origins and send its token as a bearer token.
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Origin token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// scopedFunc is a handler that runs against the services of the calling
// origin.
type scopedFunc func(w http.ResponseWriter, r *http.Request, b *service.Backend)

// scoped authenticates the origin token, rate limits per origin and
// resolves the origin's Backend.
func (r *Router) scoped(limit httpx.RateLimitConfig, h scopedFunc) http.Handler {
	inner := http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		originID, ok := httpx.OriginIDFromContext(req.Context())
		if !ok {
			backendsdk.ErrInvalidToken.WriteError(w)
			return
		}
		b, err := r.Origins.Backend(originID)
		if err != nil {
			slogx.FromContext(req.Context()).Warn("origin token with malformed subject",
				slog.String("origin_id", originID),
			)
			backendsdk.ErrInvalidToken.WriteError(w)
			return
		}
		h(w, req, b)
	})

	return httpx.Chain(inner,
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByOrigin(limit),
	)
}

func (r *Router) registerOrigins() {
	h := &OriginHandler{Origins: r.Origins}

	// Minting is unauthenticated, so keep it tight per IP.
	r.Mux.Handle("POST /v1/origins",
		httpx.Chain(http.HandlerFunc(h.HandleMint),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{}

	r.Mux.Handle("GET /v1/auth/email-exists", r.scoped(httpx.LenientLimit, h.HandleEmailExists))

	// Credential routes are additionally limited per IP and email so one
	// origin cannot be used to guess passwords across accounts.
	r.Mux.Handle("POST /v1/auth/register",
		httpx.Chain(r.scoped(httpx.ModerateLimit, h.HandleRegister),
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "email"),
		),
	)
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(r.scoped(httpx.ModerateLimit, h.HandleLogin),
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "email"),
		),
	)
	r.Mux.Handle("POST /v1/auth/logout", r.scoped(httpx.LenientLimit, h.HandleLogout))
}

func (r *Router) registerProfile() {
	h := &ProfileHandler{}

	r.Mux.Handle("GET /v1/profile", r.scoped(httpx.LenientLimit, h.HandleGet))
	r.Mux.Handle("PUT /v1/profile", r.scoped(httpx.ModerateLimit, h.HandleUpdate))
	r.Mux.Handle("DELETE /v1/profile", r.scoped(httpx.StrictLimit, h.HandleDelete))
	r.Mux.Handle("POST /v1/profile/password", r.scoped(httpx.StrictLimit, h.HandleChangePassword))
	r.Mux.Handle("POST /v1/onboarding/complete", r.scoped(httpx.ModerateLimit, h.HandleCompleteOnboarding))
}

func (r *Router) registerVerification() {
	h := &VerificationHandler{DevMode: r.DevMode}

	r.Mux.Handle("POST /v1/verification/code", r.scoped(httpx.StrictLimit, h.HandleGenerate))
	r.Mux.Handle("POST /v1/verification/confirm", r.scoped(httpx.StrictLimit, h.HandleConfirm))

	if r.TrustClientVerification {
		r.Mux.Handle("PUT /v1/verification/code", r.scoped(httpx.StrictLimit, h.HandleIssue))
		r.Mux.Handle("POST /v1/verification/mark", r.scoped(httpx.StrictLimit, h.HandleMark))
	}
}

func (r *Router) registerFitness() {
	h := &FitnessHandler{}

	r.Mux.Handle("GET /v1/onboarding", r.scoped(httpx.LenientLimit, h.HandleGetOnboarding))
	r.Mux.Handle("PUT /v1/onboarding", r.scoped(httpx.ModerateLimit, h.HandleSaveOnboarding))

	r.Mux.Handle("GET /v1/workouts", r.scoped(httpx.LenientLimit, h.HandleListWorkouts))
	r.Mux.Handle("POST /v1/workouts", r.scoped(httpx.LenientLimit, h.HandleLogWorkout))

	r.Mux.Handle("GET /v1/progress", r.scoped(httpx.LenientLimit, h.HandleListProgress))
	r.Mux.Handle("POST /v1/progress", r.scoped(httpx.LenientLimit, h.HandleAddProgress))

	r.Mux.Handle("GET /v1/notifications", r.scoped(httpx.LenientLimit, h.HandleGetNotifications))
	r.Mux.Handle("PUT /v1/notifications", r.scoped(httpx.ModerateLimit, h.HandleSaveNotifications))

	r.Mux.Handle("GET /v1/leaderboard", r.scoped(httpx.LenientLimit, h.HandleLeaderboard))
}

func (r *Router) registerTasks() {
	h := &TasksHandler{}

	r.Mux.Handle("GET /v1/tasks", r.scoped(httpx.LenientLimit, h.HandleList))
	r.Mux.Handle("POST /v1/tasks", r.scoped(httpx.LenientLimit, h.HandleSave))
	r.Mux.Handle("PUT /v1/tasks", r.scoped(httpx.ModerateLimit, h.HandleReplace))
	r.Mux.Handle("DELETE /v1/tasks/{id}", r.scoped(httpx.LenientLimit, h.HandleDelete))

	r.Mux.Handle("GET /v1/categories", r.scoped(httpx.LenientLimit, h.HandleListCategories))
	r.Mux.Handle("POST /v1/categories", r.scoped(httpx.LenientLimit, h.HandleAddCategory))
	r.Mux.Handle("DELETE /v1/categories/{name}", r.scoped(httpx.LenientLimit, h.HandleDeleteCategory))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}
