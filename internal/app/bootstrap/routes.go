// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	accountsfeature "github.com/dalemusser/coursehub/internal/app/features/accounts"
	coursesfeature "github.com/dalemusser/coursehub/internal/app/features/courses"
	healthfeature "github.com/dalemusser/coursehub/internal/app/features/health"
	profilesfeature "github.com/dalemusser/coursehub/internal/app/features/profiles"
	teachercoursesfeature "github.com/dalemusser/coursehub/internal/app/features/teachercourses"
	accountstore "github.com/dalemusser/coursehub/internal/app/store/accounts"
	coursestore "github.com/dalemusser/coursehub/internal/app/store/courses"
	profilestore "github.com/dalemusser/coursehub/internal/app/store/profiles"
	teachercoursestore "github.com/dalemusser/coursehub/internal/app/store/teachercourses"
	"github.com/dalemusser/coursehub/internal/app/uploads"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: any DB or backend clients bundled in DBDeps
//   - logger: the fully configured zap.Logger for this app
//
// CourseHub mounts the JSON API feature routers (catalog courses, teacher
// courses, profiles, accounts, health) and serves the upload directory at
// both the configured prefix and /static for frontend compatibility.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	ingestor := uploads.NewIngestor(appCfg.UploadDir, appCfg.UploadURLPrefix)

	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Uploaded thumbnails and avatars, served statically
	r.Handle(appCfg.UploadURLPrefix+"/*", fileserver.Handler(appCfg.UploadURLPrefix, appCfg.UploadDir))
	r.Handle("/static/*", fileserver.Handler("/static", appCfg.UploadDir))

	// Course catalog
	coursesHandler := coursesfeature.NewHandler(coursestore.New(deps.MongoDatabase), logger)
	r.Mount("/courses", coursesfeature.Routes(coursesHandler))

	// Teacher-authored courses
	tcHandler := teachercoursesfeature.NewHandler(teachercoursestore.New(deps.MongoDatabase), ingestor, logger)
	r.Mount("/teacher_courses", teachercoursesfeature.Routes(tcHandler))

	// Teacher profiles
	profilesHandler := profilesfeature.NewHandler(profilestore.New(deps.MongoDatabase), ingestor, logger)
	r.Mount("/profile", profilesfeature.Routes(profilesHandler))

	// Registration and login
	accountsHandler := accountsfeature.NewHandler(accountstore.New(deps.MongoDatabase), logger)
	r.Mount("/", accountsfeature.Routes(accountsHandler))

	return r, nil
}
