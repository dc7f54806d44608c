package quiz_fx

import (
	"time"

	"go.uber.org/fx"
	"gorm.io/gorm"
	"pathwise/internal/api/controllers"
	"pathwise/internal/repositories"
	"pathwise/internal/services"
	mem "pathwise/pkg/memcache"
	"pathwise/pkg/utils"
)

// flowTTL is the inactivity window after which an abandoned quiz run is
// dropped from memory.
const flowTTL = 30 * time.Minute

var Module = fx.Provide(
	provideQuizSessionRepo,
	provideCareerQuizService,
	provideFlowStore,
	provideQuizFlowService,
	provideCareerQuizController,
	provideQuizFlowController)

func provideQuizSessionRepo(db *gorm.DB) repositories.QuizSessionRepository {
	return repositories.NewQuizSessionRepository(db)
}

func provideCareerQuizService(
	completion utils.CompletionClientInterface,
	sessions repositories.QuizSessionRepository,
) services.CareerQuizServiceInterface {
	return services.NewCareerQuizService(completion, sessions)
}

func provideFlowStore() *mem.FlowStore {
	return mem.NewFlowStore(flowTTL)
}

func provideQuizFlowService(
	flows *mem.FlowStore,
	quiz services.CareerQuizServiceInterface,
) services.QuizFlowServiceInterface {
	return services.NewQuizFlowService(flows, quiz)
}

func provideCareerQuizController(quiz services.CareerQuizServiceInterface) *controllers.CareerQuizController {
	return controllers.NewCareerQuizController(quiz)
}

func provideQuizFlowController(flow services.QuizFlowServiceInterface) *controllers.QuizFlowController {
	return controllers.NewQuizFlowController(flow)
}
