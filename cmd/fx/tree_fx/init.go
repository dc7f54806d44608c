package tree_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"pathwise/internal/api/controllers"
	"pathwise/internal/repositories"
	"pathwise/internal/services"
	"pathwise/pkg/utils"
)

var Module = fx.Provide(
	provideCareerTreeRepo, provideCareerTreeService, provideCareerTreeController)

func provideCareerTreeRepo(db *gorm.DB) repositories.CareerTreeRepository {
	return repositories.NewCareerTreeRepository(db)
}

func provideCareerTreeService(
	completion utils.CompletionClientInterface,
	trees repositories.CareerTreeRepository,
) services.CareerTreeServiceInterface {
	return services.NewCareerTreeService(completion, trees)
}

func provideCareerTreeController(treeService services.CareerTreeServiceInterface) *controllers.CareerTreeController {
	return controllers.NewCareerTreeController(treeService)
}
