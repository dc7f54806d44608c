package roadmap_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"pathwise/internal/api/controllers"
	"pathwise/internal/repositories"
	"pathwise/internal/services"
	"pathwise/pkg/utils"
)

var Module = fx.Provide(
	provideRoadmapRepo, provideRoadmapService, provideRoadmapController)

func provideRoadmapRepo(db *gorm.DB) repositories.RoadmapRepository {
	return repositories.NewRoadmapRepository(db)
}

func provideRoadmapService(
	completion utils.CompletionClientInterface,
	roadmaps repositories.RoadmapRepository,
) services.RoadmapServiceInterface {
	return services.NewRoadmapService(completion, roadmaps)
}

func provideRoadmapController(roadmapService services.RoadmapServiceInterface) *controllers.RoadmapController {
	return controllers.NewRoadmapController(roadmapService)
}
