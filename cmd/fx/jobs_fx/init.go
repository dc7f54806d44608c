package jobs_fx

import (
	"net/http"
	"os"
	"time"

	"go.uber.org/fx"
	"gorm.io/gorm"
	"pathwise/internal/api/controllers"
	"pathwise/internal/repositories"
	"pathwise/internal/services"
	mem "pathwise/pkg/memcache"
)

// searchCacheTTL keeps repeated listing queries off the upstream API.
const searchCacheTTL = 10 * time.Minute

var Module = fx.Provide(
	provideSavedJobRepo,
	provideSearchCache,
	provideJobService,
	provideJobsController)

func provideSavedJobRepo(db *gorm.DB) repositories.SavedJobRepository {
	return repositories.NewSavedJobRepository(db)
}

func provideSearchCache() *mem.SearchCache {
	return mem.NewSearchCache(searchCacheTTL)
}

func provideJobService(cache *mem.SearchCache, savedJobs repositories.SavedJobRepository) services.JobServiceInterface {
	return services.NewJobService(
		&http.Client{Timeout: 30 * time.Second},
		"",
		os.Getenv("RAPIDAPI_KEY"),
		cache,
		savedJobs,
	)
}

func provideJobsController(jobService services.JobServiceInterface) *controllers.JobsController {
	return controllers.NewJobsController(jobService)
}
