package bootstrap

import (
	"log"

	"legalchat-be/internal/config"
	"legalchat-be/internal/controller"
	"legalchat-be/internal/pkg/logger"
	"legalchat-be/internal/repository/unitofwork"
	"legalchat-be/internal/service"
	"legalchat-be/pkg/agent"
	"legalchat-be/pkg/llm/factory"
	"legalchat-be/pkg/tool"
	"legalchat-be/pkg/tool/scraper"
	"legalchat-be/pkg/tool/websearch"

	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController controller.IChatController
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. LLM Provider
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.LLMBaseURL,
		cfg.Keys.Groq,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 3. Agent Tooling
	registry := tool.NewRegistry(
		websearch.NewDuckDuckGoSearch(),
		scraper.NewLawNotesScraper(cfg.Tools.LawNotesURL),
	)
	legalAgent := agent.New(llmProvider, registry)

	// 4. Services
	chatService := service.NewChatService(uowFactory, legalAgent, sysLogger)

	// 5. Controllers
	return &Container{
		ChatController: controller.NewChatController(chatService),
	}
}
