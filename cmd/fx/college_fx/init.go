package college_fx

import (
	"go.uber.org/fx"
	"pathwise/internal/api/controllers"
	"pathwise/internal/services"
	"pathwise/pkg/utils"
)

var Module = fx.Provide(
	provideCollegeService, provideCollegeController)

func provideCollegeService(completion utils.CompletionClientInterface) services.CollegeServiceInterface {
	return services.NewCollegeService(completion)
}

func provideCollegeController(collegeService services.CollegeServiceInterface) *controllers.CollegeController {
	return controllers.NewCollegeController(collegeService)
}
